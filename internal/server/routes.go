package server

import (
	"github.com/go-chi/chi/v5"
	"github.com/jason-s-yu/monopoly/internal/auth"
	"github.com/jason-s-yu/monopoly/internal/game"
	"github.com/sirupsen/logrus"
)

func addRoutes(r chi.Router, log logrus.FieldLogger, session *game.Session, authn *auth.Authenticator, broker *Broker) {
	r.Get("/ping", handlePing())
	r.Post("/login", handleLogin(authn))
	r.Get("/state", handleState(session))
	r.Get("/history/{gameID}", handleHistory(log))
	r.Get("/ws", handleWS(log, session, authn, broker))

	r.Group(func(r chi.Router) {
		r.Use(bankerMiddleware(authn))
		r.Post("/roll-dice", handleRollDice(session))
	})
}
