package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jason-s-yu/monopoly/internal/cache"
	"github.com/jason-s-yu/monopoly/internal/database"
	"github.com/sirupsen/logrus"
)

// handleHistory returns the last settled state stored for a game, from
// Postgres when configured and otherwise from Redis.
func handleHistory(log logrus.FieldLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		gameID, err := uuid.Parse(chi.URLParam(r, "gameID"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid game id")
			return
		}

		_, state, err := database.LatestSnapshot(r.Context(), gameID)
		if errors.Is(err, database.ErrNotConfigured) {
			state, err = cache.LatestState(r.Context(), gameID)
		}
		switch {
		case errors.Is(err, cache.ErrNotConfigured):
			writeError(w, http.StatusServiceUnavailable, "no game history store configured")
			return
		case err != nil:
			log.WithError(err).WithField("game", gameID).Error("loading game history failed")
			writeError(w, http.StatusInternalServerError, "loading game history failed")
			return
		case state == nil:
			writeError(w, http.StatusNotFound, "no state stored for game")
			return
		}
		writeJSON(w, http.StatusOK, json.RawMessage(state))
	}
}
