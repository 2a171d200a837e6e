package views

import (
	"git.gammaspectra.live/P2Pool/pool-dashboard/types"
	"github.com/valyala/quicktemplate"
)

type ConnectPage struct {
	BasePage
	Pool *types.PoolCoin
}

func (p *ConnectPage) StreamTitle(qw *quicktemplate.Writer) {
	qw.N().S(`Connect to `)
	qw.E().S(p.Pool.Coin.DisplayName())
}

func (p *ConnectPage) StreamContent(qw *quicktemplate.Writer) {
	pool := p.Pool
	streamPoolHeader(qw, p.Context(), pool, "connect")
	streamPorts(qw, pool)
	qw.N().S(`<section>
<h2>Miner Configuration</h2>
<ol>
<li>Pick a stratum URL from the table above matching your hardware.</li>
<li>Use your `)
	qw.E().S(pool.Coin.DisplayName())
	qw.N().S(` wallet address as the username, optionally followed by <code>.workername</code>.</li>
<li>Any password is accepted, <code>x</code> is customary.</li>
</ol>
<pre class="mono">`)
	if pool.ConnectionDetails != nil && len(pool.ConnectionDetails.Ports) > 0 {
		qw.N().S(`-o `)
		qw.E().S(pool.ConnectionDetails.Ports[0].StratumUrl)
		qw.N().S(` -u YOUR_WALLET_ADDRESS.worker -p x`)
	} else {
		qw.N().S(`-o stratum+tcp://POOL_HOST:PORT -u YOUR_WALLET_ADDRESS.worker -p x`)
	}
	qw.N().S(`</pre>
<p>Payout scheme: <strong>`)
	qw.E().S(pool.PaymentProcessing.PayoutScheme)
	qw.N().S(`</strong>, minimum payment `)
	qw.E().S(amount(pool.PaymentProcessing.MinimumPayment, pool.Coin.Symbol))
	qw.N().S(`, pool fee `)
	qw.E().S(percent(pool.PoolFeePercent))
	qw.N().S(`.</p>
</section>`)
}

func streamPorts(qw *quicktemplate.Writer, pool *types.PoolCoin) {
	qw.N().S(`<section>
<h2>Stratum Ports</h2>
<table class="ports">
`)
	streamHeaderRow(qw, "Name", "Stratum URL", "Difficulty", "VarDiff")
	qw.N().S(`<tbody>
`)
	if pool.ConnectionDetails == nil || len(pool.ConnectionDetails.Ports) == 0 {
		streamEmptyRow(qw, 4, "This pool does not advertise any ports.")
	} else {
		for _, port := range pool.ConnectionDetails.Ports {
			qw.N().S(`<tr>`)
			streamCell(qw, port.Name)
			qw.N().S(`<td class="mono"><input readonly value="`)
			qw.E().S(port.StratumUrl)
			qw.N().S(`" onclick="this.select()"></td>`)
			streamCell(qw, si_units(port.Difficulty, 2))
			if port.VarDiff() {
				streamCell(qw, si_units(port.MinDiff, 2)+" - "+si_units(port.MaxDiff, 2))
			} else {
				streamCell(qw, "-")
			}
			qw.N().S(`</tr>
`)
		}
	}
	qw.N().S(`</tbody>
</table>
</section>
`)
}

// ConnectAllPage lists the stratum endpoints of every pool
type ConnectAllPage struct {
	BasePage
	Pools []types.PoolCoin
}

func (p *ConnectAllPage) StreamTitle(qw *quicktemplate.Writer) {
	qw.N().S(`Connect`)
}

func (p *ConnectAllPage) StreamContent(qw *quicktemplate.Writer) {
	ctx := p.Context()
	qw.N().S(`<h1>Connect</h1>
`)
	if len(p.Pools) == 0 {
		qw.N().S(`<p class="empty">No pools are available at the moment.</p>`)
	}
	for i := range p.Pools {
		pool := &p.Pools[i]
		qw.N().S(`<h2 class="pool-title"><a href="`)
		qw.E().S(poolUrl(pool, "connect"))
		qw.N().S(`"><img class="coin" src="`)
		qw.E().S(ctx.CoinImage(pool.Coin))
		qw.N().S(`" alt="" width="24" height="24"> `)
		qw.E().S(pool.Coin.DisplayName())
		qw.N().S(`</a> <small>`)
		qw.E().S(pool.PaymentProcessing.PayoutScheme)
		qw.N().S(`</small></h2>
`)
		streamPorts(qw, pool)
	}
}
