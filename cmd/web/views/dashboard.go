package views

import (
	"git.gammaspectra.live/P2Pool/pool-dashboard/types"
	"github.com/valyala/quicktemplate"
)

type DashboardPage struct {
	BasePage
	Pool   *types.PoolCoin
	Wallet string
	Stats  *types.MinerStats
	// Error is shown next to the wallet form
	Error string
}

func (p *DashboardPage) StreamTitle(qw *quicktemplate.Writer) {
	qw.E().S(p.Pool.Coin.DisplayName())
	qw.N().S(` Dashboard`)
}

func (p *DashboardPage) StreamContent(qw *quicktemplate.Writer) {
	pool := p.Pool
	streamPoolHeader(qw, p.Context(), pool, "dashboard")
	qw.N().S(`<section>
<form method="get" action="`)
	qw.E().S(poolUrl(pool, "dashboard"))
	qw.N().S(`" class="wallet-form">
<label for="wallet">Wallet Address</label>
<input id="wallet" name="wallet" class="mono" placeholder="Enter your `)
	qw.E().S(pool.Coin.DisplayName())
	qw.N().S(` wallet address" value="`)
	qw.E().S(p.Wallet)
	qw.N().S(`" maxlength="64">
<button type="submit">Lookup</button>
</form>
`)
	if p.Error != "" {
		qw.N().S(`<p class="form-error">`)
		qw.E().S(p.Error)
		qw.N().S(`</p>
`)
	}
	qw.N().S(`</section>
`)

	stats := p.Stats
	if stats == nil {
		return
	}

	qw.N().S(`<section class="stats">
<h2 class="mono">`)
	qw.E().S(stats.WalletAddress)
	qw.N().S(`</h2>
`)
	if stats.Simulated {
		qw.N().S(`<p class="notice">No per-wallet data is published by this pool. These figures are estimates derived from the pool's overall statistics.</p>
`)
	}
	streamStat(qw, "Hashrate", hashrate(stats.Hashrate))
	streamStat(qw, "Shares / Second", si_units(stats.SharesPerSecond, 3))
	qw.N().S(`<div class="stat"><span class="label">Shares / Day</span><span class="value">`)
	qw.N().DL(int64(stats.Shares))
	qw.N().S(`</span></div>`)
	streamStat(qw, "Estimated Earnings / Day", amount(stats.EstimatedEarnings, pool.Coin.Symbol))
	streamStat(qw, "Pending Balance", amount(stats.PendingBalance, pool.Coin.Symbol))
	streamStat(qw, "Total Paid", amount(stats.TotalPaid, pool.Coin.Symbol))
	qw.N().S(`
</section>
<section>
<h2>Workers</h2>
<table class="workers">
`)
	streamHeaderRow(qw, "Name", "Hashrate", "Shares / Second")
	qw.N().S(`<tbody>
`)
	if len(stats.Workers) == 0 {
		streamEmptyRow(qw, 3, "No active workers.")
	}
	for _, w := range stats.Workers {
		qw.N().S(`<tr>`)
		streamCell(qw, w.Name)
		streamCell(qw, hashrate(w.Hashrate))
		streamCell(qw, si_units(w.SharesPerSecond, 3))
		qw.N().S(`</tr>
`)
	}
	qw.N().S(`</tbody>
</table>
</section>
<section>
<h2>Payouts</h2>
<table class="payouts">
`)
	streamHeaderRow(qw, "Date", "Amount", "Transaction")
	qw.N().S(`<tbody>
`)
	if len(stats.Payouts) == 0 {
		streamEmptyRow(qw, 3, "No payouts yet.")
	}
	for _, payout := range stats.Payouts {
		qw.N().S(`<tr>`)
		streamCell(qw, utc_date(payout.Timestamp))
		streamCell(qw, amount(payout.Amount, pool.Coin.Symbol))
		qw.N().S(`<td class="mono" title="`)
		qw.E().S(payout.TxHash)
		qw.N().S(`">`)
		qw.E().S(shorten(payout.TxHash))
		qw.N().S(`</td></tr>
`)
	}
	qw.N().S(`</tbody>
</table>
</section>`)
}
