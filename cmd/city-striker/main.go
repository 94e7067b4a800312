package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/city-striker/audio"
	"github.com/lixenwraith/city-striker/config"
	"github.com/lixenwraith/city-striker/core"
	"github.com/lixenwraith/city-striker/engine"
	"github.com/lixenwraith/city-striker/game"
	"github.com/lixenwraith/city-striker/input"
	"github.com/lixenwraith/city-striker/network"
	"github.com/lixenwraith/city-striker/parameter"
	"github.com/lixenwraith/city-striker/render"
)

func main() {
	fs := flag.CommandLine
	flags := registerFlags(fs)
	flag.Parse()

	cfg, err := config.Load(flags.config)
	if err == nil {
		flags.apply(fs, cfg)
		err = cfg.Validate()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "city-striker: %v\n", err)
		os.Exit(2)
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, cancel, cfg); err != nil {
		log.Printf("exit: %v", err)
		fmt.Fprintf(os.Stderr, "city-striker: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cancel context.CancelFunc, cfg *config.Config) error {
	var sound *audio.SoundManager
	opts := game.Options{Seed: cfg.Seed, Logger: log.Default()}

	// Audio failure is never fatal, the manager falls back to silent mode
	if !cfg.Headless {
		sound = audio.NewSoundManager(&audio.AudioConfig{
			Enabled:      cfg.AudioEnabled,
			MasterVolume: cfg.Volume(),
			SampleRate:   parameter.AudioSampleRate,
		}, log.Default())
		if err := sound.Start(); err != nil {
			log.Printf("audio: %v (continuing without audio)", err)
		} else {
			defer sound.Stop()
			opts.Audio = sound
		}
	}

	g := game.New(opts)

	publish := func(game.Snapshot) {}
	if cfg.BridgeAddr != "" {
		netCfg := network.DefaultConfig()
		netCfg.Address = cfg.BridgeAddr
		netCfg.Codec = cfg.BridgeCodec
		netCfg.Logger = log.Default()

		srv, err := network.NewServer(g, netCfg)
		if err != nil {
			return err
		}
		core.Go(func() {
			if err := srv.ListenAndServe(ctx); err != nil {
				log.Printf("bridge: %v", err)
				cancel()
			}
		})
		publish = srv.Publish
	}

	if cfg.Headless {
		err := g.Run(ctx, cfg.TickRate, publish)
		snap := g.Snapshot()
		fmt.Printf("run %s: frame %d, wave %d, score %d, kills %d\n",
			snap.RunID, snap.Frame, snap.State.Wave, snap.State.Score, snap.State.EnemiesKilled)
		return err
	}

	return runTerminal(ctx, g, opts.Audio, cfg.TickRate, publish)
}

// runTerminal owns the screen: input and rendering share the tick goroutine
func runTerminal(ctx context.Context, g *game.Game, sound engine.AudioPlayer, tickRate int, publish func(game.Snapshot)) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	defer screen.Fini()
	core.SetCrashReset(screen.Fini)

	renderer := render.NewRenderer(screen)
	machine := input.NewMachine()

	events := make(chan tcell.Event, 256)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	})

	muted := func() bool { return sound == nil || sound.IsMuted() }

	ticker := time.NewTicker(time.Second / time.Duration(tickRate))
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			intent := machine.Process(ev, time.Now())
			if intent == nil {
				continue
			}
			switch intent.Type {
			case input.IntentQuit:
				return nil
			case input.IntentResize:
				screen.Sync()
			case input.IntentToggleMute:
				if sound != nil {
					sound.ToggleMute()
				}
			case input.IntentRestart:
				if g.IsGameOver() {
					machine.Reset()
					g.Restart()
				}
			case input.IntentShoot:
				g.Shoot()
			case input.IntentReload:
				g.Reload()
			case input.IntentJetpackStart:
				g.JetpackStart()
			case input.IntentJetpackStop:
				g.JetpackStop()
			}

		case now := <-ticker.C:
			dt := min(now.Sub(last), parameter.MaxFrameDelta)
			last = now

			g.SetInput(machine.State(now))
			snap := g.Step(dt)
			publish(snap)
			renderer.Draw(snap, muted())
		}
	}
}
