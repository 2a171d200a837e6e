package views

import (
	"fmt"
	"git.gammaspectra.live/P2Pool/pool-dashboard/types"
	"github.com/valyala/quicktemplate"
	"math"
	"strconv"
	"time"
)

type PositionGraphDivider struct {
	StartValue float64
	EndValue   float64
	Label      string
	Color      string
	Border     string
}

type PositionGraphPoint struct {
	X, Y               float64
	Link, Color, Label string
	Square             bool
}

const DefaultBlocksPositionChartDuration = time.Hour * 24 * 7

// NewBlocksPositionGraph plots block effort against time found, over the x duration before now
func NewBlocksPositionGraph(pool *types.PoolCoin, blocks []types.Block, now time.Time, x time.Duration) (dividersX, dividersY []PositionGraphDivider, points []PositionGraphPoint) {
	xSeconds := x.Seconds()
	var highestEffort float64

	for _, b := range blocks {
		var p PositionGraphPoint
		var effortNumber float64
		if b.Effort != nil {
			effortNumber = *b.Effort
		}

		p.Label = fmt.Sprintf("Block %d %s", b.BlockHeight, time_elapsed_short(b.Timestamp))
		p.X = (xSeconds - now.Sub(b.Timestamp).Seconds()) / xSeconds
		if p.X < 0 {
			//do not include if it is over chart
			continue
		}
		p.X = min(p.X, 1)

		//cap unlikely odds from chart
		effortPosition := min(effortNumber, 600)
		p.Y = effortPosition
		if effortPosition > highestEffort {
			highestEffort = effortPosition
		}

		if effortNumber > 0.0 {
			p.Label += fmt.Sprintf(" / %.2f%%", effortNumber)
			p.Color = effort_color(effortNumber)
			if effortPosition < effortNumber {
				//max, display darker
				p.Color = "#222222"
			}
		}

		p.Link = poolUrl(pool, "blocks")

		if b.Synthetic {
			p.Label += " (estimated)"
			p.Square = true
		}

		points = append(points, p)
	}

	highestEffortInt := max(1, int(math.Ceil(highestEffort/100)))
	highestEffort = float64(highestEffortInt * 100)
	//adjust y
	for i := range points {
		points[i].Y = (highestEffort - points[i].Y) / highestEffort
	}

	for i := highestEffortInt; i > 0; i-- {
		dividersY = append(dividersY, PositionGraphDivider{
			StartValue: float64(i*100) / highestEffort,
			EndValue:   float64((i-1)*100) / highestEffort,
			Label:      strconv.FormatUint(uint64(i*100), 10) + "%",
		})
	}

	for d := time.Hour * 24; d < x; d += time.Hour * 24 {
		dividersX = append(dividersX, PositionGraphDivider{
			StartValue: d.Seconds() / xSeconds,
			EndValue:   d.Seconds() / xSeconds,
			Label:      "-" + strconv.Itoa(int(d/(time.Hour*24))) + "d",
		})
	}

	return dividersX, dividersY, points
}

// NewHashratePositionGraph plots pool hashrate samples across their full time span
func NewHashratePositionGraph(stats []types.HistoricalStat) (dividersX, dividersY []PositionGraphDivider, points []PositionGraphPoint) {
	if len(stats) == 0 {
		return nil, nil, nil
	}

	first, last := stats[0].Timestamp, stats[len(stats)-1].Timestamp
	span := last.Sub(first).Seconds()

	var highest float64
	for _, s := range stats {
		highest = max(highest, s.Hashrate)
	}
	if highest <= 0 {
		highest = 1
	}
	// headroom above the highest sample
	highest *= 1.25

	for _, s := range stats {
		var p PositionGraphPoint
		if span > 0 {
			p.X = s.Timestamp.Sub(first).Seconds() / span
		} else {
			p.X = 1
		}
		p.Y = (highest - s.Hashrate) / highest
		p.Label = fmt.Sprintf("%s: %s, %d miners", utc_date(s.Timestamp), hashrate(s.Hashrate), s.ConnectedMiners)
		p.Color = "#14f195"
		p.Square = s.Synthetic
		points = append(points, p)
	}

	const levels = 4
	for i := levels; i > 0; i-- {
		dividersY = append(dividersY, PositionGraphDivider{
			StartValue: float64(i) / levels,
			EndValue:   float64(i-1) / levels,
			Label:      hashrate(highest * float64(i) / levels),
		})
	}

	return dividersX, dividersY, points
}

func percentStyle(v float64) string {
	return strconv.FormatFloat(v*100, 'f', 3, 64) + "%"
}

func StreamPositionGraph(qw *quicktemplate.Writer, dividersX, dividersY []PositionGraphDivider, points []PositionGraphPoint) {
	qw.N().S(`<div class="position-graph">`)
	for _, d := range dividersY {
		qw.N().S(`<div class="divider-y" style="top:`)
		qw.N().S(percentStyle(1 - d.StartValue))
		qw.N().S(`;height:`)
		qw.N().S(percentStyle(d.StartValue - d.EndValue))
		qw.N().S(`"><span>`)
		qw.E().S(d.Label)
		qw.N().S(`</span></div>`)
	}
	for _, d := range dividersX {
		qw.N().S(`<div class="divider-x" style="right:`)
		qw.N().S(percentStyle(d.EndValue))
		qw.N().S(`;width:`)
		qw.N().S(percentStyle(d.StartValue - d.EndValue))
		if d.Color != "" {
			qw.N().S(`;background-color:`)
			qw.E().S(d.Color)
		}
		if d.Border != "" {
			qw.N().S(`;border:`)
			qw.E().S(d.Border)
		}
		qw.N().S(`"><span>`)
		qw.E().S(d.Label)
		qw.N().S(`</span></div>`)
	}
	for _, p := range points {
		if p.Link != "" {
			qw.N().S(`<a href="`)
			qw.E().S(p.Link)
			qw.N().S(`"`)
		} else {
			qw.N().S(`<span`)
		}
		qw.N().S(` class="point`)
		if p.Square {
			qw.N().S(` square`)
		}
		qw.N().S(`" title="`)
		qw.E().S(p.Label)
		qw.N().S(`" style="left:`)
		qw.N().S(percentStyle(p.X))
		qw.N().S(`;top:`)
		qw.N().S(percentStyle(p.Y))
		if p.Color != "" {
			qw.N().S(`;background-color:`)
			qw.E().S(p.Color)
		}
		qw.N().S(`"></`)
		if p.Link != "" {
			qw.N().S(`a>`)
		} else {
			qw.N().S(`span>`)
		}
	}
	qw.N().S(`</div>`)
}
