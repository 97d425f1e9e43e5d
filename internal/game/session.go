// internal/game/session.go
package game

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jason-s-yu/monopoly/engine"
	"github.com/jason-s-yu/monopoly/internal/cache"
	"github.com/jason-s-yu/monopoly/internal/database"
	"github.com/jason-s-yu/monopoly/internal/models"
	"github.com/sirupsen/logrus"
)

// GameEventType names an event pushed to websocket clients.
type GameEventType string

const (
	EventAwaitingRoll GameEventType = "game_awaiting_roll" // The engine is waiting for the current player's dice.
	EventTurnSettled  GameEventType = "game_turn_settled"  // A turn completed; State holds the settled table.
	EventPlayerLeft   GameEventType = "player_left"
	EventGameEnd      GameEventType = "game_end"
	EventSyncState    GameEventType = "private_sync_state" // Full state sent to a newly connected client.
)

var (
	// ErrGameOver is returned when dice arrive after the engine stopped.
	ErrGameOver = errors.New("game is over")
	// ErrNotStarted is returned when dice arrive before Start.
	ErrNotStarted = errors.New("game has not started")
)

const (
	// persistTimeout bounds every background Redis or Postgres write.
	persistTimeout = 2 * time.Second
	// persistQueue is how many writes may wait for the session's writer.
	persistQueue = 64
)

// GameEvent is broadcast to every connected client.
type GameEvent struct {
	Type     GameEventType          `json:"type"`
	PlayerID *uuid.UUID             `json:"playerId,omitempty"`
	Payload  map[string]interface{} `json:"payload,omitempty"`
	State    *SyncState             `json:"state,omitempty"`
}

// rollRequest carries one dice submission to the engine goroutine. settled is
// closed once the engine has applied the roll and needs input again or stops.
type rollRequest struct {
	die1, die2 int
	settled    chan struct{}
}

// Session runs one engine game behind a mutex, feeding it dice that arrive
// over HTTP. Decisions the web surface cannot ask for are taken by Autopilot.
type Session struct {
	ID      uuid.UUID
	Players []models.Player // Indexed like Engine.Players.
	Engine  *engine.Game    // Authoritative game state.

	Mu sync.Mutex // Held by the engine goroutine except while it waits for dice.

	// BroadcastFn sends an event to all connected clients. Called with Mu held.
	BroadcastFn func(ev GameEvent)

	log         logrus.FieldLogger
	rolls       chan rollRequest
	pending     chan struct{} // settled channel of the roll being applied
	awaiting    bool
	started     bool
	finished    bool
	err         error
	done        chan struct{}
	writes      chan func(ctx context.Context) error // applied in order by writer
	flushed     chan struct{}                        // closed once writes is drained
	actionIndex int
	lastLeft    []bool
}

// NewSession creates a non-interactive engine game for names. extra observers
// receive every settled snapshot after the session's own bookkeeping.
func NewSession(names []string, rules engine.HouseRules, perm engine.Permuter, log logrus.FieldLogger, extra ...engine.Observer) (*Session, error) {
	if len(names) < engine.MinPlayers || len(names) > engine.MaxPlayers {
		return nil, fmt.Errorf("need %d to %d players, got %d", engine.MinPlayers, engine.MaxPlayers, len(names))
	}
	rules.Interactive = false
	g, err := engine.NewGame(names, rules, perm)
	if err != nil {
		return nil, err
	}

	s := &Session{
		ID:       uuid.New(),
		Engine:   g,
		rolls:    make(chan rollRequest),
		done:     make(chan struct{}),
		writes:   make(chan func(ctx context.Context) error, persistQueue),
		flushed:  make(chan struct{}),
		lastLeft: make([]bool, len(names)),
	}
	s.log = log.WithField("game", s.ID)
	g.Log = s.log
	g.Observer = append(engine.Observers{engine.ObserverFunc(s.onTurn)}, extra...)

	s.Players = make([]models.Player, len(names))
	for i, name := range names {
		s.Players[i] = models.Player{ID: uuid.New(), Name: name, Index: i}
	}
	return s, nil
}

// Start launches the engine goroutine. It returns immediately; Wait blocks
// until the game stops.
func (s *Session) Start(ctx context.Context) {
	s.Mu.Lock()
	if s.started {
		s.Mu.Unlock()
		return
	}
	s.started = true
	go s.writer()
	names := make([]string, len(s.Players))
	for i, p := range s.Players {
		names[i] = p.Name
	}
	s.logAction(uuid.Nil, "game_start", map[string]interface{}{"players": names})
	s.Mu.Unlock()

	s.persist(func(ctx context.Context) error { return database.CreateGame(ctx, s.ID, names) })

	go s.run(ctx)
}

func (s *Session) run(ctx context.Context) {
	s.Mu.Lock()
	err := s.Engine.Run(ctx, &remoteInput{s: s})
	s.settle()
	s.awaiting = false
	s.finished = true
	s.err = err
	if err != nil && !errors.Is(err, context.Canceled) {
		s.log.WithError(err).Error("game stopped")
	}

	state := s.syncState()
	payload := map[string]interface{}{"turn": state.Turn}
	if state.WinnerID != nil {
		payload["winner"] = state.WinnerID.String()
	}
	s.logAction(uuid.Nil, string(EventGameEnd), payload)
	s.fireEvent(GameEvent{Type: EventGameEnd, Payload: payload, State: &state})
	s.Mu.Unlock()

	s.persist(func(ctx context.Context) error { return database.MarkEnded(ctx, s.ID) })
	close(s.writes)
	close(s.done)
}

// SubmitRoll hands two dice faces to the engine and returns the state once
// the roll has been applied.
func (s *Session) SubmitRoll(ctx context.Context, die1, die2 int) (SyncState, error) {
	if err := engine.ValidateFaces(die1, die2); err != nil {
		return SyncState{}, err
	}
	s.Mu.Lock()
	started := s.started
	s.Mu.Unlock()
	if !started {
		return SyncState{}, ErrNotStarted
	}

	req := rollRequest{die1: die1, die2: die2, settled: make(chan struct{})}
	select {
	case s.rolls <- req:
	case <-s.done:
		return SyncState{}, ErrGameOver
	case <-ctx.Done():
		return SyncState{}, ctx.Err()
	}

	select {
	case <-req.settled:
	case <-s.done:
	case <-ctx.Done():
		return SyncState{}, ctx.Err()
	}

	s.Mu.Lock()
	defer s.Mu.Unlock()
	return s.syncState(), nil
}

// State returns the current table.
func (s *Session) State() SyncState {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	return s.syncState()
}

// Done is closed when the engine goroutine exits.
func (s *Session) Done() <-chan struct{} { return s.done }

// Wait blocks until the game stops and returns the engine's error.
func (s *Session) Wait() error {
	<-s.done
	s.Mu.Lock()
	defer s.Mu.Unlock()
	return s.err
}

// settle releases the submitter of the roll that has just been applied.
// Assumes lock is held by caller.
func (s *Session) settle() {
	if s.pending != nil {
		close(s.pending)
		s.pending = nil
	}
}

// onTurn runs on the engine goroutine after every completed turn.
// Assumes lock is held by caller.
func (s *Session) onTurn(snap engine.Snapshot) {
	for i, pv := range snap.Players {
		if pv.Left && !s.lastLeft[i] {
			s.lastLeft[i] = true
			id := s.Players[i].ID
			s.logAction(id, string(EventPlayerLeft), nil)
			s.fireEvent(GameEvent{Type: EventPlayerLeft, PlayerID: &id})
		}
	}

	state := s.syncState()
	s.logAction(uuid.Nil, "turn_settled", map[string]interface{}{"turn": snap.Turn})
	s.fireEvent(GameEvent{Type: EventTurnSettled, State: &state})

	s.persist(func(ctx context.Context) error { return cache.PublishState(ctx, s.ID, state) })
	s.persist(func(ctx context.Context) error { return database.InsertSnapshot(ctx, s.ID, snap.Turn, state) })
}

// persist queues a storage write for the session's writer. Writes land in
// the order they were queued, so an older state never overwrites a newer one.
func (s *Session) persist(write func(ctx context.Context) error) {
	s.writes <- write
}

// writer applies queued writes one at a time until writes is closed.
// Unconfigured stores are skipped quietly.
func (s *Session) writer() {
	defer close(s.flushed)
	for write := range s.writes {
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		err := write(ctx)
		cancel()
		if err != nil && !errors.Is(err, cache.ErrNotConfigured) && !errors.Is(err, database.ErrNotConfigured) {
			s.log.WithError(err).Warn("persisting game state failed")
		}
	}
}

// fireEvent broadcasts ev via BroadcastFn.
// Assumes lock is held by caller.
func (s *Session) fireEvent(ev GameEvent) {
	if s.BroadcastFn != nil {
		s.BroadcastFn(ev)
	} else {
		s.log.WithField("event", ev.Type).Debug("no broadcaster, event dropped")
	}
}

// logAction queues an action record on Redis for the history consumer.
// Assumes lock is held by caller.
func (s *Session) logAction(actorID uuid.UUID, actionType string, payload map[string]interface{}) {
	s.actionIndex++
	if payload == nil {
		payload = make(map[string]interface{})
	}
	rec := cache.GameActionRecord{
		GameID:        s.ID,
		ActionIndex:   s.actionIndex,
		ActorUserID:   actorID,
		ActionType:    actionType,
		ActionPayload: payload,
		Timestamp:     time.Now().UnixMilli(),
	}
	s.persist(func(ctx context.Context) error { return cache.PublishGameAction(ctx, rec) })
}
