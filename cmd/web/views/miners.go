package views

import (
	"git.gammaspectra.live/P2Pool/pool-dashboard/types"
	"github.com/valyala/quicktemplate"
)

type MinersPage struct {
	BasePage
	Pool      *types.PoolCoin
	TopMiners []types.TopMiner
}

func (p *MinersPage) StreamTitle(qw *quicktemplate.Writer) {
	qw.E().S(p.Pool.Coin.DisplayName())
	qw.N().S(` Miners`)
}

func (p *MinersPage) StreamContent(qw *quicktemplate.Writer) {
	streamPoolHeader(qw, p.Context(), p.Pool, "miners")
	qw.N().S(`<section>
<h2>Top Miners</h2>
`)
	streamTopMinersTable(qw, p.Pool, p.TopMiners)
	qw.N().S(`</section>`)
}

func streamTopMinersTable(qw *quicktemplate.Writer, pool *types.PoolCoin, miners []types.TopMiner) {
	qw.N().S(`<table class="miners">
`)
	streamHeaderRow(qw, "#", "Miner", "Worker", "Hashrate", "Shares / Second", "Share")
	qw.N().S(`<tbody>
`)
	if len(miners) == 0 {
		streamEmptyRow(qw, 6, "No active miners.")
	}
	for i, m := range miners {
		qw.N().S(`<tr><td>`)
		qw.N().D(i + 1)
		qw.N().S(`</td><td class="mono"><a href="`)
		qw.E().S(poolUrl(pool, "dashboard"))
		qw.N().S(`?wallet=`)
		qw.N().U(m.Address)
		qw.N().S(`" title="`)
		qw.E().S(m.Address)
		qw.N().S(`">`)
		qw.E().S(shorten(m.Address))
		qw.N().S(`</a></td>`)
		streamCell(qw, m.Worker)
		streamCell(qw, hashrate(m.Hashrate))
		if m.SharesPerSecond != nil {
			streamCell(qw, si_units(*m.SharesPerSecond, 3))
		} else {
			streamCell(qw, "-")
		}
		if pool.PoolStats.PoolHashrate > 0 {
			streamCell(qw, percent(m.Hashrate/pool.PoolStats.PoolHashrate*100))
		} else {
			streamCell(qw, "-")
		}
		qw.N().S(`</tr>
`)
	}
	qw.N().S(`</tbody>
</table>
`)
}
