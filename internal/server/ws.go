package server

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/coder/websocket"
	"github.com/jason-s-yu/monopoly/internal/auth"
	"github.com/jason-s-yu/monopoly/internal/game"
	"github.com/jason-s-yu/monopoly/internal/models"
	"github.com/sirupsen/logrus"
)

// wsReply is sent back to the client that sent an action.
type wsReply struct {
	Type  string          `json:"type"`
	Error string          `json:"error,omitempty"`
	State *game.SyncState `json:"state,omitempty"`
}

// handleWS streams game events. Clients may send {"actionType":"sync"} to get
// the full state, or {"actionType":"roll_dice","payload":{"dice1":3,"dice2":4}}
// when they are allowed to roll (auth disabled, or ?token= from /login).
func handleWS(log logrus.FieldLogger, session *game.Session, authn *auth.Authenticator, broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		canRoll := !authn.Enabled() || authn.Verify(r.URL.Query().Get("token")) == nil

		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			InsecureSkipVerify: true,
		})
		if err != nil {
			log.WithError(err).Error("websocket accept failed")
			return
		}
		defer conn.CloseNow()

		ctx, cancel := context.WithCancel(r.Context())
		defer cancel()

		ch := broker.Subscribe()
		defer broker.Unsubscribe(ch)

		state := session.State()
		if err := writeWS(ctx, conn, game.GameEvent{Type: game.EventSyncState, State: &state}); err != nil {
			return
		}

		go func() {
			defer cancel()
			for {
				_, msg, err := conn.Read(ctx)
				if err != nil {
					log.WithError(err).Debug("websocket read ended")
					return
				}
				reply := handleWSAction(ctx, session, canRoll, msg)
				if err := writeWS(ctx, conn, reply); err != nil {
					return
				}
			}
		}()

		for {
			select {
			case <-ctx.Done():
				conn.Close(websocket.StatusNormalClosure, "")
				return
			case data := <-ch:
				if err := conn.Write(ctx, websocket.MessageText, data); err != nil {
					log.WithError(err).Debug("websocket write failed")
					return
				}
			}
		}
	}
}

func handleWSAction(ctx context.Context, session *game.Session, canRoll bool, msg []byte) wsReply {
	var action models.GameAction
	if err := json.Unmarshal(msg, &action); err != nil {
		return wsReply{Type: "error", Error: "invalid message"}
	}
	switch action.ActionType {
	case "sync":
		state := session.State()
		return wsReply{Type: string(game.EventSyncState), State: &state}
	case "roll_dice":
		if !canRoll {
			return wsReply{Type: "error", Error: "not authenticated"}
		}
		roll, err := decodeDiceRoll(action.Payload)
		if err != nil {
			return wsReply{Type: "error", Error: err.Error()}
		}
		state, err := session.SubmitRoll(ctx, roll.Dice1, roll.Dice2)
		if err != nil {
			return wsReply{Type: "error", Error: err.Error()}
		}
		return wsReply{Type: "roll_applied", State: &state}
	}
	return wsReply{Type: "error", Error: "unknown action " + action.ActionType}
}

func writeWS(ctx context.Context, conn *websocket.Conn, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return conn.Write(ctx, websocket.MessageText, data)
}
