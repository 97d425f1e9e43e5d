// internal/game/session_test.go
package game

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jason-s-yu/monopoly/engine"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockBroadcaster captures game events for testing assertions.
type mockBroadcaster struct {
	mu        sync.Mutex
	allEvents []GameEvent
}

func (mb *mockBroadcaster) broadcastFn(ev GameEvent) {
	mb.mu.Lock()
	defer mb.mu.Unlock()
	mb.allEvents = append(mb.allEvents, ev)
}

func (mb *mockBroadcaster) findEventByType(eventType GameEventType) *GameEvent {
	mb.mu.Lock()
	defer mb.mu.Unlock()
	for i := len(mb.allEvents) - 1; i >= 0; i-- {
		if mb.allEvents[i].Type == eventType {
			return &mb.allEvents[i]
		}
	}
	return nil
}

func quietLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// setupTestSession starts a two player session with decks in load order.
func setupTestSession(t *testing.T) (*Session, *mockBroadcaster, context.CancelFunc) {
	t.Helper()
	s, err := NewSession([]string{"Alice", "Bob"}, engine.DefaultHouseRules(), nil, quietLogger())
	require.NoError(t, err)
	mb := &mockBroadcaster{}
	s.BroadcastFn = mb.broadcastFn

	ctx, cancel := context.WithCancel(context.Background())
	s.Start(ctx)
	t.Cleanup(func() {
		cancel()
		select {
		case <-s.Done():
		case <-time.After(time.Second):
			t.Error("engine goroutine did not stop")
		}
	})
	return s, mb, cancel
}

func submit(t *testing.T, s *Session, d1, d2 int) SyncState {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	st, err := s.SubmitRoll(ctx, d1, d2)
	require.NoError(t, err)
	return st
}

func TestNewSessionPlayerCount(t *testing.T) {
	_, err := NewSession([]string{"Alice"}, engine.DefaultHouseRules(), nil, quietLogger())
	assert.Error(t, err)

	s, err := NewSession([]string{"Alice", "Bob", "Carol"}, engine.HouseRules{Interactive: true}, nil, quietLogger())
	require.NoError(t, err)
	assert.False(t, s.Engine.Rules.Interactive, "web sessions never prompt")
	require.Len(t, s.Players, 3)
	assert.NotEqual(t, s.Players[0].ID, s.Players[1].ID)
	assert.Equal(t, 2, s.Players[2].Index)
}

func TestSubmitRollBeforeStart(t *testing.T) {
	s, err := NewSession([]string{"Alice", "Bob"}, engine.DefaultHouseRules(), nil, quietLogger())
	require.NoError(t, err)
	_, err = s.SubmitRoll(context.Background(), 1, 2)
	assert.ErrorIs(t, err, ErrNotStarted)
}

func TestSubmitRollBuysStreet(t *testing.T) {
	s, mb, _ := setupTestSession(t)

	st := submit(t, s, 1, 2)
	assert.Equal(t, 1, st.Turn)
	assert.True(t, st.AwaitingRoll)
	assert.Equal(t, s.Players[1].ID, st.CurrentPlayerID)

	alice := st.Players[0]
	assert.Equal(t, 3, alice.Position)
	assert.Equal(t, 1440, alice.Cash)
	require.Len(t, alice.Assets, 1)
	assert.Equal(t, 3, alice.Assets[0].Index)
	assert.True(t, st.Players[1].IsCurrentTurn)

	ev := mb.findEventByType(EventTurnSettled)
	require.NotNil(t, ev)
	require.NotNil(t, ev.State)
	assert.Equal(t, 1, ev.State.Turn)

	ev = mb.findEventByType(EventAwaitingRoll)
	require.NotNil(t, ev)
	require.NotNil(t, ev.PlayerID)
	assert.Equal(t, s.Players[1].ID, *ev.PlayerID)
}

func TestSubmitRollDoublesKeepTurn(t *testing.T) {
	s, _, _ := setupTestSession(t)

	st := submit(t, s, 3, 3)
	assert.Equal(t, 0, st.Turn)
	assert.Equal(t, s.Players[0].ID, st.CurrentPlayerID)
	assert.Equal(t, 0, st.Players[0].Position, "doubles are summed before moving")

	st = submit(t, s, 1, 2)
	assert.Equal(t, 1, st.Turn)
	assert.Equal(t, 9, st.Players[0].Position)
	assert.Equal(t, 1380, st.Players[0].Cash)
}

func TestSubmitRollRejectsInvalidDice(t *testing.T) {
	s, _, _ := setupTestSession(t)

	_, err := s.SubmitRoll(context.Background(), 0, 7)
	assert.ErrorIs(t, err, engine.ErrInvalidAction)

	st := s.State()
	assert.Equal(t, 0, st.Turn)
	assert.Equal(t, 0, st.Players[0].Position)
}

func TestSessionStopsOnCancel(t *testing.T) {
	s, mb, cancel := setupTestSession(t)
	submit(t, s, 1, 2)

	cancel()
	assert.ErrorIs(t, s.Wait(), context.Canceled)

	_, err := s.SubmitRoll(context.Background(), 1, 2)
	assert.ErrorIs(t, err, ErrGameOver)

	st := s.State()
	assert.True(t, st.GameOver)
	assert.False(t, st.AwaitingRoll)
	assert.NotNil(t, mb.findEventByType(EventGameEnd))
}

func TestPersistKeepsOrder(t *testing.T) {
	s, err := NewSession([]string{"Alice", "Bob"}, engine.DefaultHouseRules(), nil, quietLogger())
	require.NoError(t, err)
	go s.writer()

	var (
		mu    sync.Mutex
		turns []int
	)
	record := func(turn int, delay time.Duration) func(context.Context) error {
		return func(context.Context) error {
			time.Sleep(delay)
			mu.Lock()
			defer mu.Unlock()
			turns = append(turns, turn)
			return nil
		}
	}
	s.persist(record(1, 50*time.Millisecond))
	s.persist(record(2, 0))
	s.persist(record(3, 0))
	close(s.writes)

	select {
	case <-s.flushed:
	case <-time.After(time.Second):
		t.Fatal("writer did not drain")
	}
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []int{1, 2, 3}, turns)
}

func TestWriterDrainsWhenGameEnds(t *testing.T) {
	s, _, cancel := setupTestSession(t)
	submit(t, s, 1, 2)
	cancel()
	<-s.Done()
	select {
	case <-s.flushed:
	case <-time.After(time.Second):
		t.Fatal("writer still running after the game ended")
	}
}

func TestStateStandings(t *testing.T) {
	s, _, _ := setupTestSession(t)
	submit(t, s, 1, 2)

	st := s.State()
	// Alice swapped $60 for a street worth $60, so both are worth $1500 and seat order holds.
	assert.Equal(t, []uuid.UUID{s.Players[0].ID, s.Players[1].ID}, st.Standings)
	assert.Equal(t, 1500, st.Players[0].NetWorth)
	assert.Nil(t, st.WinnerID)
	assert.Equal(t, 16, st.ChanceSize)
	assert.Equal(t, 16, st.CommunityChestSize)
}

func TestAutopilot(t *testing.T) {
	ctx := context.Background()
	var a Autopilot

	act, err := a.ChooseAction(ctx, engine.Player{}, engine.MenuTrouble,
		[]engine.MenuAction{engine.ActionSellStreet, engine.ActionSellHouse, engine.ActionMortgage, engine.ActionEndTurn, engine.ActionLeaveGame})
	require.NoError(t, err)
	assert.Equal(t, engine.ActionSellHouse, act)

	act, err = a.ChooseAction(ctx, engine.Player{}, engine.MenuTrouble,
		[]engine.MenuAction{engine.ActionSellStreet, engine.ActionEndTurn, engine.ActionLeaveGame})
	require.NoError(t, err)
	assert.Equal(t, engine.ActionLeaveGame, act)

	act, err = a.ChooseAction(ctx, engine.Player{}, engine.MenuOptional,
		[]engine.MenuAction{engine.ActionBuyHouse, engine.ActionEndTurn})
	require.NoError(t, err)
	assert.Equal(t, engine.ActionEndTurn, act)

	idx, err := a.ChooseStreet(ctx, "", []engine.StreetOption{{Index: 6}, {Index: 8}})
	require.NoError(t, err)
	assert.Equal(t, 6, idx)

	_, err = a.ChoosePlayer(ctx, "", nil)
	assert.ErrorIs(t, err, engine.ErrInputCancelled)
	_, err = a.EnterAmount(ctx, "")
	assert.ErrorIs(t, err, engine.ErrInputCancelled)
}
