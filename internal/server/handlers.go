package server

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/jason-s-yu/monopoly/engine"
	"github.com/jason-s-yu/monopoly/internal/auth"
	"github.com/jason-s-yu/monopoly/internal/game"
	"github.com/jason-s-yu/monopoly/internal/models"
)

func handlePing() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("pong"))
	}
}

func handleLogin(authn *auth.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !authn.Enabled() {
			writeError(w, http.StatusNotFound, "login is disabled")
			return
		}
		var creds models.Credentials
		if err := readJSON(r, &creds); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		token, err := authn.Login(creds.Password)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "invalid password")
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"token": token})
	}
}

func handleState(session *game.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, session.State())
	}
}

func handleRollDice(session *game.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body map[string]interface{}
		if err := readJSON(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		roll, err := decodeDiceRoll(body)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		state, err := session.SubmitRoll(r.Context(), roll.Dice1, roll.Dice2)
		if err != nil {
			writeError(w, rollStatus(err), err.Error())
			return
		}
		writeJSON(w, http.StatusOK, state)
	}
}

// rollStatus maps a SubmitRoll error to an HTTP status.
func rollStatus(err error) int {
	switch {
	case errors.Is(err, engine.ErrInvalidAction):
		return http.StatusBadRequest
	case errors.Is(err, game.ErrGameOver), errors.Is(err, game.ErrNotStarted):
		return http.StatusConflict
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

// bankerMiddleware requires a bearer token from /login when a banker password is configured.
func bankerMiddleware(authn *auth.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if authn.Enabled() {
				token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
				if !ok || authn.Verify(token) != nil {
					writeError(w, http.StatusUnauthorized, "not authenticated")
					return
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}
