package main

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/cubes/config"
	"github.com/stretchr/testify/assert"
)

func TestTickRate(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, ebiten.SyncWithFPS, tickRate(cfg))

	cfg.TPS = 30
	assert.Equal(t, 30, tickRate(cfg))
}

func TestTickSeconds(t *testing.T) {
	assert.InDelta(t, 1.0/60.0, tickSeconds(0), 1e-9)
	assert.InDelta(t, 1.0/144.0, tickSeconds(144), 1e-9)
}
