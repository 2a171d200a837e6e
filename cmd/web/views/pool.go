package views

import (
	cmdutils "git.gammaspectra.live/P2Pool/pool-dashboard/cmd/utils"
	"git.gammaspectra.live/P2Pool/pool-dashboard/types"
	"github.com/valyala/quicktemplate"
	"time"
)

const recentItems = 10

type PoolPage struct {
	BasePage
	Details  types.PoolDetails
	Timeline *cmdutils.PositionChart
	Now      time.Time
}

func (p *PoolPage) StreamTitle(qw *quicktemplate.Writer) {
	qw.E().S(p.Details.Pool.Coin.DisplayName())
	qw.N().S(` Pool`)
}

func (p *PoolPage) StreamContent(qw *quicktemplate.Writer) {
	pool := p.Details.Pool
	ctx := p.Context()
	streamPoolHeader(qw, ctx, pool, "")

	qw.N().S(`<section class="stats">
<h2>Pool</h2>
`)
	streamStat(qw, "Pool Hashrate", hashrate(pool.PoolStats.PoolHashrate))
	qw.N().S(`<div class="stat"><span class="label">Miners / Workers</span><span class="value">`)
	qw.N().DL(int64(pool.PoolStats.ConnectedMiners))
	qw.N().S(` / `)
	qw.N().DL(int64(pool.PoolStats.ConnectedWorkers))
	qw.N().S(`</span></div>`)
	streamStat(qw, "Shares / Second", si_units(pool.PoolStats.SharesPerSecond, 2))
	streamStat(qw, "Pool Fee", percent(pool.PoolFeePercent))
	streamStat(qw, "Total Paid", amount(pool.TotalPaid, pool.Coin.Symbol))
	qw.N().S(`<div class="stat"><span class="label">Total Blocks</span><span class="value">`)
	qw.N().DL(int64(pool.TotalBlocks))
	qw.N().S(`</span></div>`)
	streamStat(qw, "Last Block Found", time_elapsed_short(pool.LastPoolBlockTime))
	streamStat(qw, "Minimum Payment", amount(pool.PaymentProcessing.MinimumPayment, pool.Coin.Symbol))
	streamStat(qw, "Payout Interval", time_duration_long(pool.PaymentProcessing.Interval))
	qw.N().S(`
</section>
<section class="stats">
<h2>Network</h2>
`)
	streamStat(qw, "Network Hashrate", hashrate(pool.NetworkStats.NetworkHashrate))
	streamStat(qw, "Network Difficulty", si_units(pool.NetworkStats.NetworkDifficulty, 3))
	qw.N().S(`<div class="stat"><span class="label">Block Height</span><span class="value">`)
	qw.N().DL(int64(pool.NetworkStats.BlockHeight))
	qw.N().S(`</span></div>`)
	streamStat(qw, "Last Network Block", time_elapsed_short(pool.NetworkStats.LastNetworkBlockTime))
	streamStat(qw, "Block Reward", amount(pool.BlockReward, pool.Coin.Symbol))
	qw.N().S(`<div class="stat"><span class="label">Peers</span><span class="value">`)
	qw.N().DL(int64(pool.NetworkStats.ConnectedPeers))
	qw.N().S(`</span></div>`)
	if pool.NetworkStats.NodeVersion != "" {
		streamStat(qw, "Node Version", pool.NetworkStats.NodeVersion)
	}
	qw.N().S(`
</section>
`)

	streamPorts(qw, pool)

	if p.Timeline != nil {
		qw.N().S(`<section>
<h2>Blocks Found (last 24h)</h2>
<code class="timeline">`)
		qw.E().S(p.Timeline.String())
		qw.N().S(`</code>
`)
		dividersX, dividersY, points := NewBlocksPositionGraph(pool, p.Details.RecentBlocks, p.Now, DefaultBlocksPositionChartDuration)
		if len(points) > 0 {
			StreamPositionGraph(qw, dividersX, dividersY, points)
		}
		qw.N().S(`</section>
`)
	}

	qw.N().S(`<section>
<h2>Recent Blocks</h2>
`)
	blocks := p.Details.RecentBlocks
	if len(blocks) > recentItems {
		blocks = blocks[:recentItems]
	}
	streamBlocksTable(qw, pool, blocks)
	qw.N().S(`<a href="`)
	qw.E().S(poolUrl(pool, "blocks"))
	qw.N().S(`">All blocks</a>
</section>
<section>
<h2>Top Miners</h2>
`)
	miners := p.Details.TopMiners
	if len(miners) > recentItems {
		miners = miners[:recentItems]
	}
	streamTopMinersTable(qw, pool, miners)
	qw.N().S(`</section>`)
}
