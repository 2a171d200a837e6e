package views

import (
	"git.gammaspectra.live/P2Pool/pool-dashboard/types"
	"github.com/valyala/quicktemplate"
	"strconv"
)

type AllBlocksPage struct {
	BasePage
	Blocks []types.Block
}

func (p *AllBlocksPage) StreamTitle(qw *quicktemplate.Writer) {
	qw.N().S(`Blocks`)
}

func (p *AllBlocksPage) StreamContent(qw *quicktemplate.Writer) {
	qw.N().S(`<section>
<h1>Blocks Found</h1>
<p>Recent blocks found across all pools.</p>
`)
	streamBlocksTable(qw, nil, p.Blocks)
	qw.N().S(`</section>`)
}

type AllPaymentsPage struct {
	BasePage
	Payments []types.PoolPayment
}

func (p *AllPaymentsPage) StreamTitle(qw *quicktemplate.Writer) {
	qw.N().S(`Payments`)
}

func (p *AllPaymentsPage) StreamContent(qw *quicktemplate.Writer) {
	qw.N().S(`<section>
<h1>Payments</h1>
<p>Recent payouts to miners across all pools.</p>
`)
	for _, payment := range p.Payments {
		if payment.Synthetic {
			qw.N().S(`<p class="notice">Some pools do not publish their payment history, their entries are estimates based on total payouts.</p>
`)
			break
		}
	}
	qw.N().S(`<table class="payments">
`)
	streamHeaderRow(qw, "Pool", "Date", "Miner", "Amount", "Transaction", "Status")
	qw.N().S(`<tbody>
`)
	if len(p.Payments) == 0 {
		streamEmptyRow(qw, 6, "No payments yet.")
	}
	for _, payment := range p.Payments {
		qw.N().S(`<tr><td><a href="/pools/`)
		qw.N().U(payment.PoolId)
		qw.N().S(`/payments">`)
		qw.E().S(payment.PoolName)
		qw.N().S(`</a></td>`)
		streamCell(qw, utc_date(payment.Timestamp))
		qw.N().S(`<td class="mono" title="`)
		qw.E().S(payment.MinerAddress)
		qw.N().S(`">`)
		qw.E().S(shorten(payment.MinerAddress))
		qw.N().S(`</td>`)
		streamCell(qw, amount(payment.Amount, payment.CoinType))
		qw.N().S(`<td class="mono" title="`)
		qw.E().S(payment.TxHash)
		qw.N().S(`">`)
		qw.E().S(shorten(payment.TxHash))
		qw.N().S(`</td>`)
		if payment.Confirmed {
			streamCell(qw, "Confirmed")
		} else {
			streamCell(qw, "Pending")
		}
		qw.N().S(`</tr>
`)
	}
	qw.N().S(`</tbody>
</table>
</section>`)
}

type AllMinersPage struct {
	BasePage
	Miners []types.MinerSummary
}

func (p *AllMinersPage) StreamTitle(qw *quicktemplate.Writer) {
	qw.N().S(`Top Miners`)
}

func (p *AllMinersPage) StreamContent(qw *quicktemplate.Writer) {
	qw.N().S(`<section>
<h1>Top Miners</h1>
<p>The most active miners across all pools.</p>
<table class="miners">
`)
	streamHeaderRow(qw, "#", "Miner", "Total Hashrate", "Pools")
	qw.N().S(`<tbody>
`)
	if len(p.Miners) == 0 {
		streamEmptyRow(qw, 4, "No active miners.")
	}
	for i, m := range p.Miners {
		qw.N().S(`<tr><td>`)
		qw.N().D(i + 1)
		qw.N().S(`</td><td class="mono" title="`)
		qw.E().S(m.Address)
		qw.N().S(`">`)
		qw.E().S(shorten(m.Address))
		qw.N().S(`</td>`)
		streamCell(qw, hashrate(m.TotalHashrate))
		qw.N().S(`<td><ul class="pools">`)
		for _, share := range m.Pools {
			qw.N().S(`<li><a href="/pools/`)
			qw.N().U(share.PoolId)
			qw.N().S(`/dashboard?wallet=`)
			qw.N().U(m.Address)
			qw.N().S(`">`)
			qw.E().S(share.PoolName)
			qw.N().S(`</a> `)
			qw.E().S(hashrate(share.Hashrate))
			qw.N().S(`</li>`)
		}
		qw.N().S(`</ul></td></tr>
`)
	}
	qw.N().S(`</tbody>
</table>
</section>`)
}

type NetworkStatsPage struct {
	BasePage
	Summary types.PoolsSummary
	Pools   []types.PoolCoin
}

func (p *NetworkStatsPage) StreamTitle(qw *quicktemplate.Writer) {
	qw.N().S(`Stats`)
}

func (p *NetworkStatsPage) StreamContent(qw *quicktemplate.Writer) {
	qw.N().S(`<section>
<h1>Pool Statistics</h1>
<div class="stats">`)
	streamStat(qw, "Pools", strconv.Itoa(p.Summary.Pools))
	streamStat(qw, "Total Hashrate", hashrate(p.Summary.TotalHashrate))
	streamStat(qw, "Active Miners", strconv.FormatUint(p.Summary.ActiveMiners, 10))
	streamStat(qw, "Blocks Mined", strconv.FormatUint(p.Summary.BlocksMined, 10))
	qw.N().S(`</div>
<table class="pools">
`)
	streamHeaderRow(qw, "Pool", "Hashrate", "Miners", "Blocks", "Last Block")
	qw.N().S(`<tbody>
`)
	if len(p.Pools) == 0 {
		streamEmptyRow(qw, 5, "No pools are available at the moment.")
	}
	for i := range p.Pools {
		pool := &p.Pools[i]
		qw.N().S(`<tr><td><a href="`)
		qw.E().S(poolUrl(pool, "stats"))
		qw.N().S(`">`)
		qw.E().S(pool.Coin.DisplayName())
		qw.N().S(`</a></td>`)
		streamCell(qw, hashrate(pool.PoolStats.PoolHashrate))
		qw.N().S(`<td>`)
		qw.N().DL(int64(pool.PoolStats.ConnectedMiners))
		qw.N().S(`</td><td>`)
		qw.N().DL(int64(pool.TotalBlocks))
		qw.N().S(`</td>`)
		streamCell(qw, time_elapsed_short(pool.LastPoolBlockTime))
		qw.N().S(`</tr>
`)
	}
	qw.N().S(`</tbody>
</table>
</section>`)
}
