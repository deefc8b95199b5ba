package models_test

import (
	"testing"

	"naval-tables/feature/weapons/models"

	"github.com/stretchr/testify/assert"
)

func TestRecord_ShipViews(t *testing.T) {
	br := 7.0
	r := models.Record{Ships: []models.Ship{
		{ID: "germ_bismarck", Name: "Bismarck", Type: "Battleship", BattleRating: &br},
		{ID: "germ_scharnhorst", Name: "Scharnhorst", Type: "Battlecruiser"},
	}}

	assert.Equal(t, []string{"germ_bismarck", "germ_scharnhorst"}, r.ShipIDs())
	assert.Equal(t, []string{"Bismarck", "Scharnhorst"}, r.ShipNames())
	assert.Equal(t, []string{"Battleship", "Battlecruiser"}, r.ShipTypes())
	assert.Equal(t, []float64{7.0}, r.BattleRatings())
}

func TestRecord_NoShips(t *testing.T) {
	var r models.Record
	assert.Empty(t, r.ShipNames())
	assert.Empty(t, r.BattleRatings())
}
