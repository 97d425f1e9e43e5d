// internal/models/models.go
package models

import "github.com/google/uuid"

// Player is a seat at the table as seen by the service layer.
type Player struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Index int       `json:"index"` // Position in the engine's player list.
}

// DiceRoll is the body of POST /roll-dice. Faces arrive as numbers or numeric strings.
type DiceRoll struct {
	Dice1 int `json:"dice1" mapstructure:"dice1"`
	Dice2 int `json:"dice2" mapstructure:"dice2"`
}

// GameAction is a generic client message on the websocket.
type GameAction struct {
	ActionType string                 `json:"actionType" mapstructure:"actionType"`
	Payload    map[string]interface{} `json:"payload,omitempty" mapstructure:"payload"`
}

// Credentials is the body of POST /login.
type Credentials struct {
	Password string `json:"password"`
}
