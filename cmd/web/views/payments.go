package views

import (
	"git.gammaspectra.live/P2Pool/pool-dashboard/types"
	"git.gammaspectra.live/P2Pool/pool-dashboard/utils"
	"github.com/valyala/quicktemplate"
)

type PaymentsPage struct {
	BasePage
	Pool     *types.PoolCoin
	Payments []types.PoolPayment
}

func (p *PaymentsPage) StreamTitle(qw *quicktemplate.Writer) {
	qw.E().S(p.Pool.Coin.DisplayName())
	qw.N().S(` Payments`)
}

func (p *PaymentsPage) StreamContent(qw *quicktemplate.Writer) {
	streamPoolHeader(qw, p.Context(), p.Pool, "payments")
	qw.N().S(`<section>
<h2>Payments</h2>
`)
	for _, payment := range p.Payments {
		if payment.Synthetic {
			qw.N().S(`<p class="notice">Payment history is not published by this pool, the entries below are estimates based on its total payouts.</p>
`)
			break
		}
	}
	qw.N().S(`<table class="payments">
`)
	streamHeaderRow(qw, "Date", "Miner", "Amount", "Transaction", "Status")
	qw.N().S(`<tbody>
`)
	if len(p.Payments) == 0 {
		streamEmptyRow(qw, 5, "No payments yet.")
	}
	for _, payment := range p.Payments {
		qw.N().S(`<tr>`)
		streamCell(qw, utc_date(payment.Timestamp))
		qw.N().S(`<td class="mono" title="`)
		qw.E().S(payment.MinerAddress)
		qw.N().S(`">`)
		qw.E().S(shorten(payment.MinerAddress))
		qw.N().S(`</td>`)
		streamCell(qw, amount(payment.Amount, p.Pool.Coin.Symbol))
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
<p>Total: `)
	qw.E().S(amount(utils.SumAmounts(p.Payments, func(payment types.PoolPayment) float64 {
		return payment.Amount
	}), p.Pool.Coin.Symbol))
	qw.N().S(`</p>
</section>`)
}
