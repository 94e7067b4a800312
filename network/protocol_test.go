package network

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/city-striker/event"
	"github.com/lixenwraith/city-striker/game"
	"github.com/lixenwraith/city-striker/status"
)

// fakeController records what the bridge forwards
type fakeController struct {
	mu     sync.Mutex
	inputs []game.Input
	events []event.EventType
	reg    *status.Registry
}

func newFakeController() *fakeController {
	return &fakeController{reg: status.NewRegistry()}
}

func (f *fakeController) SetInput(in game.Input) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inputs = append(f.inputs, in)
}

func (f *fakeController) Send(et event.EventType) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, et)
}

func (f *fakeController) Snapshot() game.Snapshot {
	return game.Snapshot{RunID: "fake-run"}
}

func (f *fakeController) Status() *status.Registry { return f.reg }

func (f *fakeController) recorded() ([]game.Input, []event.EventType) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]game.Input(nil), f.inputs...), append([]event.EventType(nil), f.events...)
}

func TestApplyForwardsInputAndEvents(t *testing.T) {
	ctrl := newFakeController()
	msg := ClientMessage{
		Input:  &game.Input{Forward: true, Yaw: 0.5},
		Events: []string{"shoot-request", "jetpack-start", "game-reset"},
	}

	require.NoError(t, msg.Apply(ctrl))

	inputs, events := ctrl.recorded()
	require.Len(t, inputs, 1)
	assert.True(t, inputs[0].Forward)
	assert.Equal(t, 0.5, inputs[0].Yaw)
	assert.Equal(t, []event.EventType{
		event.EventShootRequest, event.EventJetpackStart, event.EventGameReset,
	}, events)
}

func TestApplyWithoutInputKeepsHeldKeys(t *testing.T) {
	ctrl := newFakeController()
	msg := ClientMessage{Events: []string{"reload-request"}}

	require.NoError(t, msg.Apply(ctrl))

	inputs, events := ctrl.recorded()
	assert.Empty(t, inputs)
	assert.Equal(t, []event.EventType{event.EventReloadRequest}, events)
}

func TestApplyRejectsInternalEvents(t *testing.T) {
	for _, name := range []string{"reload-complete", "teleport", ""} {
		t.Run(name, func(t *testing.T) {
			ctrl := newFakeController()
			msg := ClientMessage{
				Input:  &game.Input{Jump: true},
				Events: []string{"shoot-request", name},
			}

			err := msg.Apply(ctrl)
			require.ErrorIs(t, err, ErrRejectedEvent)

			inputs, events := ctrl.recorded()
			assert.Empty(t, inputs, "rejected message applies nothing")
			assert.Empty(t, events)
		})
	}
}
