package utils

import (
	"git.gammaspectra.live/P2Pool/pool-dashboard/types"
	"github.com/stretchr/testify/assert"
	"strings"
	"testing"
	"time"
)

func TestChart(t *testing.T) {
	p := NewPositionChart(32, 4096)
	for i := 0; i < 4096; i++ {
		p.Add(i, 1)
	}
	assert.EqualValues(t, 4096, p.Total())
	assert.EqualValues(t, 128, p.Resolution())
	assert.Equal(t, "[<"+strings.Repeat("+", 32)+"<]", p.String())
}

func TestChartIncrement(t *testing.T) {
	p := NewPositionChart(8, 8)
	for i := 0; i < 8; i++ {
		p.Add(i, uint64(i))
	}
	p.Add(8, 1)
	p.Add(-1, 1)
	assert.Equal(t, "[<7654321.<]", p.String())
	assert.Equal(t, "[<7|654321.<]", p.StringWithSeparator(1))

	p.SetIdle('_')
	assert.Equal(t, "[<7654321_<]", p.String())
}

func TestBlocksPositionChart(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	blocks := []types.Block{
		{Timestamp: now.Add(-time.Minute * 5)},
		{Timestamp: now.Add(-time.Minute * 10)},
		{Timestamp: now.Add(-time.Hour * 23)},
		{Timestamp: now.Add(-time.Hour * 25)},
		{Timestamp: now.Add(time.Minute)},
	}

	chart := NewBlocksPositionChart(blocks, now, time.Hour*24, 24)
	assert.EqualValues(t, 4, chart.Total())
	assert.Equal(t, "[<1"+strings.Repeat(".", 22)+"3<]", chart.String())
}
