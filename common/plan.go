// Package common holds the sampling-plan document model shared by the
// dice-rng tools.
package common

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mitchellh/mapstructure"
)

type DrawSpec interface{}

// RangeSpec parameterizes a "range" draw: uniform integers on the
// inclusive interval [Min, Max].
type RangeSpec struct {
	Min int `json:"min" mapstructure:"min"`
	Max int `json:"max" mapstructure:"max"`
}

// DiceSpec parameterizes a "dice" draw: the sum of Dice rolls of a
// Sides-sided die.
type DiceSpec struct {
	Dice  int `json:"dice" mapstructure:"dice"`
	Sides int `json:"sides" mapstructure:"sides"`
}

type DrawHeader struct {
	Name  string `json:"name"`
	Mode  string `json:"mode"`
	Count uint   `json:"count"`
}

type Draw struct {
	DrawHeader

	Spec DrawSpec `json:"spec"`
}

// Plan describes a reproducible batch of draws. Exactly one of Seed and
// State should be set; with neither the executing tool seeds from
// entropy and the plan is no longer reproducible.
type Plan struct {
	Seed  *uint64  `json:"seed"`
	State []uint64 `json:"state"`
	Draws []Draw   `json:"draws"`
}

// ParsePlan decodes a JSON plan document. Mode-specific specs arrive as
// generic maps and get a second, typed decoding pass per draw.
func ParsePlan(body []byte) (plan Plan, err error) {
	if err = json.Unmarshal(body, &plan); err != nil {
		return
	}

	if len(plan.Draws) == 0 {
		err = errors.New("plan contains no draws")
		return
	}

	for k, v := range plan.Draws {
		if v.Count == 0 {
			err = errors.New(fmt.Sprintf("draw at index %d has a zero count", k))
			return
		}

		switch v.Mode {
		case "raw", "u32", "real":
			plan.Draws[k].Spec = nil
		case "range":
			var spec RangeSpec
			if err = mapstructure.Decode(v.Spec, &spec); err != nil {
				err = errors.New(fmt.Sprintf("draw at index %d does not carry a range spec", k))
				return
			}

			plan.Draws[k].Spec = spec
		case "dice":
			var spec DiceSpec
			if err = mapstructure.Decode(v.Spec, &spec); err != nil {
				err = errors.New(fmt.Sprintf("draw at index %d does not carry a dice spec", k))
				return
			}

			if spec.Dice < 1 || spec.Sides < 2 {
				err = errors.New(fmt.Sprintf("draw at index %d wants %d dice with %d sides", k, spec.Dice, spec.Sides))
				return
			}

			plan.Draws[k].Spec = spec
		default:
			err = errors.New(fmt.Sprintf("draw at index %d has unknown mode %q", k, v.Mode))
			return
		}
	}

	return
}
