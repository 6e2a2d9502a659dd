package tracker

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateRejectsGarbage(t *testing.T) {
	_, _, err := Migrate([]byte("not json"))
	assert.Error(t, err)

	_, _, err = Migrate([]byte(`{"oops":"object not array"}`))
	assert.Error(t, err)
}

func TestMigrateEmptyList(t *testing.T) {
	list, rewritten, err := Migrate([]byte(`[]`))
	require.NoError(t, err)
	assert.False(t, rewritten)
	assert.Empty(t, list)
}

func TestMigrateDefaultsAndRecomputes(t *testing.T) {
	raw := []byte(`[
		{
			"name": "  Store Cup ",
			"deck": " Zoro Red ",
			"wins": 99,
			"losses": 99,
			"rounds": [
				{"result": "win", "order": "1", "dice": true},
				{"result": "L"},
				{"result": "W", "isBye": true}
			]
		}
	]`)

	list, rewritten, err := Migrate(raw)
	require.NoError(t, err)
	assert.False(t, rewritten)
	require.Len(t, list, 1)

	got := list[0]
	assert.NotEmpty(t, got.ID)
	assert.NotZero(t, got.Date)
	assert.Equal(t, "Store Cup", got.Name)
	assert.Equal(t, "Zoro Red", got.Deck)
	assert.False(t, got.Finalized)

	// Stored counters are ignored when round detail exists.
	assert.Equal(t, 2, got.Wins)
	assert.Equal(t, 1, got.Losses)

	require.Len(t, got.Rounds, 3)
	assert.Equal(t, 1, got.Rounds[0].Num)
	assert.Equal(t, 2, got.Rounds[1].Num)
	assert.Equal(t, OrderFirst, got.Rounds[0].Order)
	assert.Equal(t, DiceWon, got.Rounds[0].Dice)
	assert.True(t, got.Rounds[2].IsBye)
}

func TestMigrateKeepsLegacyCounters(t *testing.T) {
	raw := []byte(`[{"id":"t1","name":"Old Cup","deck":"Law","wins":4,"losses":2}]`)

	list, _, err := Migrate(raw)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 4, list[0].Wins)
	assert.Equal(t, 2, list[0].Losses)
	assert.Empty(t, list[0].Rounds)
}

func TestMigrateRewritesColorEmoji(t *testing.T) {
	raw := []byte(`[
		{
			"id": "t1",
			"deck": "🟢 Zoro (OP01)",
			"rounds": [{"opponentLeader": "🔴 Luffy", "result": "win"}]
		}
	]`)

	list, rewritten, err := Migrate(raw)
	require.NoError(t, err)
	assert.True(t, rewritten)
	assert.Equal(t, "G Zoro (OP01)", list[0].Deck)
	assert.Equal(t, "R Luffy", list[0].Rounds[0].OpponentLeader)

	// Re-migrating the rewritten form is a no-op.
	again, err := json.Marshal(list)
	require.NoError(t, err)
	list2, rewritten2, err := Migrate(again)
	require.NoError(t, err)
	assert.False(t, rewritten2)
	assert.Equal(t, list[0].Deck, list2[0].Deck)
}

func TestMigrateToleratesWrongTypes(t *testing.T) {
	raw := []byte(`[
		{
			"id": 12,
			"name": null,
			"deck": 7.5,
			"date": "1700000000000",
			"wins": "3",
			"finalized": "yes",
			"rounds": [{"id": 9, "num": "4", "opponentLeader": 1, "result": 0}]
		}
	]`)

	list, _, err := Migrate(raw)
	require.NoError(t, err)
	require.Len(t, list, 1)

	got := list[0]
	assert.Equal(t, "12", got.ID)
	assert.Equal(t, "7.5", got.Deck)
	assert.Equal(t, int64(1700000000000), got.Date)
	assert.False(t, got.Finalized)

	r := got.Rounds[0]
	assert.Equal(t, "9", r.ID)
	assert.Equal(t, 4, r.Num)
	assert.Equal(t, "1", r.OpponentLeader)
	assert.Equal(t, ResultLoss, r.Result)
}
