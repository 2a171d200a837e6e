package views

import (
	"git.gammaspectra.live/P2Pool/pool-dashboard/types"
	"github.com/valyala/quicktemplate"
)

type IndexPage struct {
	BasePage
	Pools []types.PoolCoin
}

func (p *IndexPage) StreamTitle(qw *quicktemplate.Writer) {
	qw.N().S(`Pools`)
}

func (p *IndexPage) StreamContent(qw *quicktemplate.Writer) {
	ctx := p.Context()
	qw.N().S(`<section>
<h1>Mining Pools</h1>
<table class="pools">
`)
	streamHeaderRow(qw, "Coin", "Algorithm", "Scheme", "Miners", "Pool Hashrate", "Network Hashrate", "Fee", "")
	qw.N().S(`<tbody>
`)
	if len(p.Pools) == 0 {
		streamEmptyRow(qw, 8, "No pools are available at the moment.")
	}
	for i := range p.Pools {
		pool := &p.Pools[i]
		qw.N().S(`<tr><td><a class="coin" href="`)
		qw.E().S(poolUrl(pool, ""))
		qw.N().S(`"><img src="`)
		qw.E().S(ctx.CoinImage(pool.Coin))
		qw.N().S(`" alt="" width="24" height="24"> `)
		qw.E().S(pool.Coin.DisplayName())
		qw.N().S(` <small>`)
		qw.E().S(pool.Coin.Symbol)
		qw.N().S(`</small></a></td>`)
		streamCell(qw, pool.Coin.Algorithm)
		streamCell(qw, pool.PaymentProcessing.PayoutScheme)
		qw.N().S(`<td>`)
		qw.N().DL(int64(pool.PoolStats.ConnectedMiners))
		qw.N().S(`</td>`)
		streamCell(qw, hashrate(pool.PoolStats.PoolHashrate))
		streamCell(qw, hashrate(pool.NetworkStats.NetworkHashrate))
		streamCell(qw, percent(pool.PoolFeePercent))
		qw.N().S(`<td><a class="button" href="`)
		qw.E().S(poolUrl(pool, "connect"))
		qw.N().S(`">Connect</a></td></tr>
`)
	}
	qw.N().S(`</tbody>
</table>
</section>`)
}
