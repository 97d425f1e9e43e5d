package server

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/jason-s-yu/monopoly/internal/models"
	"github.com/mitchellh/mapstructure"
)

// intHookFunc accepts dice faces sent as numeric strings and rejects
// fractional numbers instead of truncating them.
func intHookFunc() mapstructure.DecodeHookFunc {
	return func(from reflect.Kind, to reflect.Kind, data interface{}) (interface{}, error) {
		if to != reflect.Int {
			return data, nil
		}
		switch from {
		case reflect.String:
			return strconv.Atoi(strings.TrimSpace(data.(string)))
		case reflect.Float64:
			f := data.(float64)
			if f != math.Trunc(f) {
				return nil, fmt.Errorf("%v is not a whole number", f)
			}
		}
		return data, nil
	}
}

// decodeDiceRoll reads a roll from a loosely typed body. Both {"dice1":3,"dice2":4}
// and {"dice_roll":{"dice1":3,"dice2":4}} are accepted.
func decodeDiceRoll(body map[string]interface{}) (models.DiceRoll, error) {
	if nested, ok := body["dice_roll"].(map[string]interface{}); ok {
		body = nested
	}
	var roll models.DiceRoll
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: intHookFunc(),
		Result:     &roll,
		TagName:    "mapstructure",
	})
	if err != nil {
		return roll, err
	}
	if err := dec.Decode(body); err != nil {
		return roll, fmt.Errorf("decoding dice: %w", err)
	}
	if _, ok := body["dice1"]; !ok {
		return roll, fmt.Errorf("dice1 is required")
	}
	if _, ok := body["dice2"]; !ok {
		return roll, fmt.Errorf("dice2 is required")
	}
	return roll, nil
}
