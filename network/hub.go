package network

import (
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/lixenwraith/city-striker/core"
	"github.com/lixenwraith/city-striker/game"
	"github.com/lixenwraith/city-striker/status"
)

// PeerID uniquely identifies a connected renderer
type PeerID uint32

// peer is one websocket subscriber
type peer struct {
	id    PeerID
	conn  *websocket.Conn
	codec Codec

	// Send queue; never closed, writeLoop exits on closeCh
	send chan []byte

	closeCh   chan struct{}
	closeOnce sync.Once
}

func (p *peer) close() {
	p.closeOnce.Do(func() {
		close(p.closeCh)
		p.conn.Close()
	})
}

// enqueue returns false when the queue is full
func (p *peer) enqueue(data []byte) bool {
	select {
	case p.send <- data:
		return true
	default:
		return false
	}
}

// Hub fans snapshots out to subscribers and feeds their input to the controller
type Hub struct {
	cfg    *Config
	codec  Codec
	ctrl   Controller
	logger *log.Logger

	mu     sync.RWMutex
	peers  map[PeerID]*peer
	nextID atomic.Uint32

	statClients *atomic.Int64
	statFrames  *atomic.Int64
	statDropped *atomic.Int64
	statInbound *atomic.Int64
}

// NewHub creates a hub encoding outbound frames with the configured codec
func NewHub(ctrl Controller, cfg *Config) (*Hub, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	codec, err := ParseCodec(cfg.Codec)
	if err != nil {
		return nil, err
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	reg := ctrl.Status()
	return &Hub{
		cfg:         cfg,
		codec:       codec,
		ctrl:        ctrl,
		logger:      logger,
		peers:       make(map[PeerID]*peer),
		statClients: reg.Ints.Get(status.KeyBridgeClients),
		statFrames:  reg.Ints.Get(status.KeyBridgeFrames),
		statDropped: reg.Ints.Get(status.KeyBridgeDropped),
		statInbound: reg.Ints.Get(status.KeyBridgeInbound),
	}, nil
}

// Count returns connected subscribers
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.peers)
}

// Serve runs a subscriber session until the connection fails or is dropped
// codec nil selects the hub default
func (h *Hub) Serve(conn *websocket.Conn, codec Codec) {
	if codec == nil {
		codec = h.codec
	}
	p := &peer{
		id:      PeerID(h.nextID.Add(1)),
		conn:    conn,
		codec:   codec,
		send:    make(chan []byte, h.cfg.SendQueueSize),
		closeCh: make(chan struct{}),
	}

	h.mu.Lock()
	h.peers[p.id] = p
	h.statClients.Store(int64(len(h.peers)))
	h.mu.Unlock()
	h.logger.Printf("bridge: peer %d connected from %s (%s)", p.id, conn.RemoteAddr(), codec.Name())

	defer func() {
		p.close()
		h.mu.Lock()
		delete(h.peers, p.id)
		h.statClients.Store(int64(len(h.peers)))
		h.mu.Unlock()
		h.logger.Printf("bridge: peer %d disconnected", p.id)
	}()

	// Late joiners see the current state before the next tick
	snap := h.ctrl.Snapshot()
	if data, err := codec.Encode(&snap); err == nil {
		p.enqueue(data)
	}

	core.Go(func() { h.writeLoop(p) })
	h.readLoop(p)
}

// Broadcast encodes snap once per codec in use and queues it to every subscriber
// Subscribers whose queue is full are disconnected
func (h *Hub) Broadcast(snap game.Snapshot) {
	encoded := make(map[string][]byte, 2)
	var slow []*peer

	h.mu.RLock()
	for _, p := range h.peers {
		data, ok := encoded[p.codec.Name()]
		if !ok {
			var err error
			if data, err = p.codec.Encode(&snap); err != nil {
				h.logger.Printf("bridge: encode %s frame: %v", p.codec.Name(), err)
				continue
			}
			encoded[p.codec.Name()] = data
		}
		if !p.enqueue(data) {
			slow = append(slow, p)
		}
	}
	h.mu.RUnlock()

	for _, p := range slow {
		h.statDropped.Add(1)
		h.logger.Printf("bridge: peer %d too slow, dropping", p.id)
		p.close()
	}
	h.statFrames.Add(1)
}

// Close disconnects every subscriber
func (h *Hub) Close() {
	h.mu.RLock()
	peers := make([]*peer, 0, len(h.peers))
	for _, p := range h.peers {
		peers = append(peers, p)
	}
	h.mu.RUnlock()

	for _, p := range peers {
		p.close()
	}
}

// readLoop decodes inbound frames by message type and applies them
func (h *Hub) readLoop(p *peer) {
	conn := p.conn
	conn.SetReadLimit(h.cfg.ReadLimit)
	conn.SetReadDeadline(time.Now().Add(h.cfg.PongTimeout))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(h.cfg.PongTimeout))
	})

	for {
		frameType, payload, err := conn.ReadMessage()
		if err != nil {
			return
		}
		conn.SetReadDeadline(time.Now().Add(h.cfg.PongTimeout))

		codec, ok := codecForFrame(frameType)
		if !ok {
			continue
		}

		var msg ClientMessage
		if err := codec.Decode(payload, &msg); err != nil {
			h.logger.Printf("bridge: discarding malformed message from peer %d: %v", p.id, err)
			continue
		}
		if err := msg.Apply(h.ctrl); err != nil {
			h.logger.Printf("bridge: peer %d: %v", p.id, err)
			continue
		}
		h.statInbound.Add(1)
	}
}

// writeLoop is the only writer on the connection
func (h *Hub) writeLoop(p *peer) {
	ping := time.NewTicker(h.cfg.PingInterval)
	defer ping.Stop()
	defer p.close()

	for {
		select {
		case <-p.closeCh:
			return
		case data := <-p.send:
			p.conn.SetWriteDeadline(time.Now().Add(h.cfg.WriteTimeout))
			if err := p.conn.WriteMessage(p.codec.FrameType(), data); err != nil {
				return
			}
		case <-ping.C:
			p.conn.SetWriteDeadline(time.Now().Add(h.cfg.WriteTimeout))
			if err := p.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
