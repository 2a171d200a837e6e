package utils

import (
	"git.gammaspectra.live/P2Pool/pool-dashboard/types"
	"slices"
	"time"
)

// PositionChart buckets events into a fixed width text timeline, most recent on the right.
type PositionChart struct {
	totalItems uint64
	bucket     []uint64
	idle       byte
}

func (p *PositionChart) Add(index int, value uint64) {
	if index < 0 || index >= int(p.totalItems) {
		return
	}
	if len(p.bucket) == 1 {
		p.bucket[0] += value
		return
	}
	i := uint64(index) / ((p.totalItems + uint64(len(p.bucket)) - 1) / uint64(len(p.bucket)))
	p.bucket[i] += value
}

func (p *PositionChart) Total() (result uint64) {
	for _, e := range p.bucket {
		result += e
	}
	return
}

func (p *PositionChart) Size() uint64 {
	return uint64(len(p.bucket))
}

func (p *PositionChart) Resolution() uint64 {
	return p.totalItems / uint64(len(p.bucket))
}

func (p *PositionChart) SetIdle(idleChar byte) {
	p.idle = idleChar
}

func (p *PositionChart) String() string {
	position := make([]byte, 2*2+len(p.bucket))
	position[0], position[1] = '[', '<'
	position[len(position)-2], position[len(position)-1] = '<', ']'
	for i, e := range reversed(p.bucket) {
		position[2+i] = p.symbol(e)
	}

	return string(position)
}

func (p *PositionChart) StringWithSeparator(index int) string {
	if index < 0 || index >= int(p.totalItems) {
		return p.String()
	}
	separatorIndex := int(uint64(index) / ((p.totalItems + uint64(len(p.bucket)) - 1) / uint64(len(p.bucket))))
	position := make([]byte, 1+2*2+len(p.bucket))
	position[0], position[1] = '[', '<'
	position[2+separatorIndex] = '|'
	position[len(position)-2], position[len(position)-1] = '<', ']'
	for i, e := range reversed(p.bucket) {
		if i >= separatorIndex {
			i++
		}
		position[2+i] = p.symbol(e)
	}

	return string(position)
}

func (p *PositionChart) symbol(e uint64) byte {
	if e > 9 {
		return '+'
	} else if e > 0 {
		return 0x30 + byte(e)
	}
	return p.idle
}

func reversed(s []uint64) []uint64 {
	c := slices.Clone(s)
	slices.Reverse(c)
	return c
}

func NewPositionChart(size uint64, totalItems uint64) *PositionChart {
	return &PositionChart{
		totalItems: totalItems,
		bucket:     make([]uint64, size),
		idle:       '.',
	}
}

// NewBlocksPositionChart places blocks found within window before now on a minute resolution timeline.
func NewBlocksPositionChart(blocks []types.Block, now time.Time, window time.Duration, size uint64) *PositionChart {
	chart := NewPositionChart(size, uint64(window/time.Minute))
	for _, b := range blocks {
		if b.Timestamp.After(now) {
			chart.Add(0, 1)
			continue
		}
		chart.Add(int(now.Sub(b.Timestamp)/time.Minute), 1)
	}
	return chart
}
