package views

import (
	"git.gammaspectra.live/P2Pool/pool-dashboard/types"
	"github.com/valyala/quicktemplate"
)

type StatsPage struct {
	BasePage
	Pool  *types.PoolCoin
	Stats []types.HistoricalStat
}

func (p *StatsPage) StreamTitle(qw *quicktemplate.Writer) {
	qw.E().S(p.Pool.Coin.DisplayName())
	qw.N().S(` Stats`)
}

func (p *StatsPage) StreamContent(qw *quicktemplate.Writer) {
	streamPoolHeader(qw, p.Context(), p.Pool, "stats")
	qw.N().S(`<section>
<h2>Pool Hashrate</h2>
`)
	for _, s := range p.Stats {
		if s.Synthetic {
			qw.N().S(`<p class="notice">No recorded history is available for this pool, the figures below are estimates around its current statistics.</p>
`)
			break
		}
	}
	dividersX, dividersY, points := NewHashratePositionGraph(p.Stats)
	if len(points) > 0 {
		StreamPositionGraph(qw, dividersX, dividersY, points)
	}
	qw.N().S(`<table class="history">
`)
	streamHeaderRow(qw, "Date", "Hashrate", "Shares / Second", "Miners")
	qw.N().S(`<tbody>
`)
	if len(p.Stats) == 0 {
		streamEmptyRow(qw, 4, "No statistics available.")
	}
	// most recent first
	for i := len(p.Stats) - 1; i >= 0; i-- {
		s := p.Stats[i]
		qw.N().S(`<tr>`)
		streamCell(qw, utc_date(s.Timestamp))
		streamCell(qw, hashrate(s.Hashrate))
		streamCell(qw, si_units(s.SharesPerSecond, 2))
		qw.N().S(`<td>`)
		qw.N().DL(int64(s.ConnectedMiners))
		qw.N().S(`</td></tr>
`)
	}
	qw.N().S(`</tbody>
</table>
</section>`)
}
