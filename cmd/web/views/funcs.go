package views

import (
	"git.gammaspectra.live/P2Pool/pool-dashboard/utils"
	"github.com/hako/durafmt"
	"github.com/mazznoer/colorgrad"
	"math"
	"strconv"
	"time"
)

func utc_date(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.UTC().Format("02-01-2006 15:04:05 MST")
}

func time_elapsed_short(t time.Time) string {
	if t.IsZero() {
		return "never"
	}
	diff := time.Since(t).Truncate(time.Second)
	if diff < time.Second {
		return "just now"
	}
	return durafmt.Parse(diff).LimitFirstN(1).String() + " ago"
}

func time_duration_long(seconds uint64) string {
	if seconds == 0 {
		return "-"
	}
	return durafmt.Parse(time.Second * time.Duration(seconds)).LimitFirstN(2).String()
}

func si_units[T int64 | uint64 | int | float64](v T, n ...int) string {
	if len(n) > 0 {
		return utils.SiUnits(float64(v), n[0])
	} else {
		return utils.SiUnits(float64(v), 3)
	}
}

func hashrate(v float64) string {
	return utils.FormatHashrate(v)
}

func amount(v float64, symbol string) string {
	return utils.FormatAmount(v, 8, symbol)
}

func percent(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64) + "%"
}

func shorten(value string) string {
	return utils.Shorten(value, 10)
}

var effortColorGradient = colorgrad.RdYlBu()

const effortRangeStart = 0.15
const effortRangeEnd = 0.85

// effort_color maps an effort percentage to a blue (lucky) to red (unlucky) colour
func effort_color(effort float64) string {
	probability := 1 - math.Exp(-effort/100)

	// rescale
	probability *= effortRangeEnd - effortRangeStart
	probability += effortRangeStart

	return effortColorGradient.At(1 - probability).Hex()
}
