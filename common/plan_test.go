package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePlan(t *testing.T) {
	body := []byte(`{
		"seed": 42,
		"draws": [
			{"name": "d20", "mode": "dice", "count": 10, "spec": {"dice": 1, "sides": 20}},
			{"name": "loot", "mode": "range", "count": 5, "spec": {"min": 1, "max": 6}},
			{"name": "noise", "mode": "real", "count": 3}
		]
	}`)

	plan, err := ParsePlan(body)
	require.NoError(t, err)

	require.NotNil(t, plan.Seed)
	assert.Equal(t, uint64(42), *plan.Seed)
	require.Len(t, plan.Draws, 3)

	assert.Equal(t, "d20", plan.Draws[0].Name)
	assert.Equal(t, DiceSpec{Dice: 1, Sides: 20}, plan.Draws[0].Spec)

	assert.Equal(t, "loot", plan.Draws[1].Name)
	assert.Equal(t, RangeSpec{Min: 1, Max: 6}, plan.Draws[1].Spec)

	assert.Equal(t, uint(3), plan.Draws[2].Count)
	assert.Nil(t, plan.Draws[2].Spec)
}

func TestParsePlanWithState(t *testing.T) {
	body := []byte(`{
		"state": [1, 2],
		"draws": [{"name": "raw", "mode": "raw", "count": 1}]
	}`)

	plan, err := ParsePlan(body)
	require.NoError(t, err)

	assert.Nil(t, plan.Seed)
	assert.Equal(t, []uint64{1, 2}, plan.State)
}

func TestParsePlanUnknownMode(t *testing.T) {
	body := []byte(`{"draws": [{"name": "x", "mode": "gaussian", "count": 1}]}`)

	_, err := ParsePlan(body)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown mode")
}

func TestParsePlanBadDiceSpec(t *testing.T) {
	body := []byte(`{"draws": [{"name": "x", "mode": "dice", "count": 1, "spec": {"dice": 0, "sides": 1}}]}`)

	_, err := ParsePlan(body)
	assert.Error(t, err)
}

func TestParsePlanZeroCount(t *testing.T) {
	body := []byte(`{"draws": [{"name": "x", "mode": "raw", "count": 0}]}`)

	_, err := ParsePlan(body)
	assert.Error(t, err)
}

func TestParsePlanEmpty(t *testing.T) {
	_, err := ParsePlan([]byte(`{"draws": []}`))
	assert.Error(t, err)

	_, err = ParsePlan([]byte(`not json`))
	assert.Error(t, err)
}
