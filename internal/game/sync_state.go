// internal/game/sync_state.go
package game

import (
	"github.com/google/uuid"
	"github.com/jason-s-yu/monopoly/engine"
)

// SyncPlayer is one seat of the table as sent to clients.
type SyncPlayer struct {
	PlayerID uuid.UUID `json:"playerId"`
	engine.PlayerView
	IsCurrentTurn bool `json:"isCurrentTurn"`
}

// SyncState is the full table state returned by /state, /roll-dice and the
// websocket sync events.
type SyncState struct {
	GameID             uuid.UUID    `json:"gameId"`
	Started            bool         `json:"started"`
	GameOver           bool         `json:"gameOver"`
	Turn               int          `json:"turn"`
	CurrentPlayerID    uuid.UUID    `json:"currentPlayerId"`
	AwaitingRoll       bool         `json:"awaitingRoll"` // True while the engine is blocked on the next dice.
	WinnerID           *uuid.UUID   `json:"winnerId,omitempty"`
	Standings          []uuid.UUID  `json:"standings"` // Richest first, departed players last.
	ChanceSize         int          `json:"chanceSize"`
	CommunityChestSize int          `json:"communityChestSize"`
	Players            []SyncPlayer `json:"players"`
}

// syncState builds the current SyncState.
// Assumes lock is held by caller.
func (s *Session) syncState() SyncState {
	snap := s.Engine.Snapshot()
	st := SyncState{
		GameID:             s.ID,
		Started:            s.started,
		GameOver:           s.finished || s.Engine.Over(),
		Turn:               snap.Turn,
		AwaitingRoll:       s.awaiting,
		ChanceSize:         s.Engine.Chance.Len(),
		CommunityChestSize: s.Engine.CommunityChest.Len(),
		Players:            make([]SyncPlayer, len(snap.Players)),
	}
	if !st.GameOver {
		st.CurrentPlayerID = s.Players[snap.Active].ID
	}
	if w, ok := s.Engine.Winner(); ok {
		id := s.Players[w].ID
		st.WinnerID = &id
	}
	for _, idx := range s.Engine.Standings() {
		st.Standings = append(st.Standings, s.Players[idx].ID)
	}
	for i, pv := range snap.Players {
		st.Players[i] = SyncPlayer{
			PlayerID:      s.Players[i].ID,
			PlayerView:    pv,
			IsCurrentTurn: !st.GameOver && i == snap.Active,
		}
	}
	return st
}
