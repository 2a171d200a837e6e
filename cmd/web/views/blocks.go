package views

import (
	"git.gammaspectra.live/P2Pool/pool-dashboard/types"
	"github.com/valyala/quicktemplate"
)

type BlocksPage struct {
	BasePage
	Pool   *types.PoolCoin
	Blocks []types.Block
}

func (p *BlocksPage) StreamTitle(qw *quicktemplate.Writer) {
	qw.E().S(p.Pool.Coin.DisplayName())
	qw.N().S(` Blocks`)
}

func (p *BlocksPage) StreamContent(qw *quicktemplate.Writer) {
	streamPoolHeader(qw, p.Context(), p.Pool, "blocks")
	qw.N().S(`<section>
<h2>Blocks</h2>
`)
	streamBlocksTable(qw, p.Pool, p.Blocks)
	qw.N().S(`</section>`)
}

// streamBlocksTable renders blocks of pool, or of every pool with a pool column when pool is nil
func streamBlocksTable(qw *quicktemplate.Writer, pool *types.PoolCoin, blocks []types.Block) {
	qw.N().S(`<table class="blocks">
`)
	columns := []string{"Height", "Found", "Reward", "Effort", "Confirmations", "Status", "Miner"}
	if pool == nil {
		columns = append([]string{"Pool"}, columns...)
	}
	streamHeaderRow(qw, columns...)
	qw.N().S(`<tbody>
`)
	if len(blocks) == 0 {
		streamEmptyRow(qw, len(columns), "No blocks found yet.")
	}
	for _, b := range blocks {
		qw.N().S(`<tr`)
		if b.Synthetic {
			qw.N().S(` class="estimated" title="Derived from the pool's last block"`)
		}
		qw.N().S(`>`)
		symbol := b.CoinType
		if pool != nil {
			symbol = pool.Coin.Symbol
		} else {
			qw.N().S(`<td><a href="/pools/`)
			qw.N().U(b.PoolId)
			qw.N().S(`/blocks">`)
			qw.E().S(b.PoolName)
			qw.N().S(`</a></td>`)
		}
		qw.N().S(`<td>`)
		qw.N().DL(int64(b.BlockHeight))
		qw.N().S(`</td><td title="`)
		qw.E().S(utc_date(b.Timestamp))
		qw.N().S(`">`)
		qw.E().S(time_elapsed_short(b.Timestamp))
		qw.N().S(`</td>`)
		streamCell(qw, amount(b.Reward, symbol))
		if b.Effort != nil {
			qw.N().S(`<td style="color:`)
			qw.E().S(effort_color(*b.Effort))
			qw.N().S(`">`)
			qw.E().S(percent(*b.Effort))
			qw.N().S(`</td>`)
		} else {
			streamCell(qw, "-")
		}
		if b.Confirmations != nil {
			qw.N().S(`<td>`)
			qw.N().DL(int64(*b.Confirmations))
			qw.N().S(`</td>`)
		} else {
			streamCell(qw, "-")
		}
		streamCell(qw, b.Status)
		qw.N().S(`<td class="mono" title="`)
		qw.E().S(b.MinerAddress)
		qw.N().S(`">`)
		qw.E().S(shorten(b.MinerAddress))
		qw.N().S(`</td></tr>
`)
	}
	qw.N().S(`</tbody>
</table>
`)
}
