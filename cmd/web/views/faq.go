package views

import (
	"github.com/valyala/quicktemplate"
)

type FAQ struct {
	Question string
	// Answer is trusted HTML
	Answer string
}

var DefaultFAQs = []FAQ{
	{
		Question: "How do I start mining?",
		Answer:   `Open the <a href="/connect">Connect</a> page, pick the stratum URL of the pool you want to mine on and configure your mining software with your wallet address as the username.`,
	},
	{
		Question: "What are the pool fees?",
		Answer:   `Each pool lists its fee on the <a href="/">pool list</a> and on its own overview page.`,
	},
	{
		Question: "How often are payouts made?",
		Answer:   `Payouts are processed on each pool's payout interval once your balance reaches the minimum payment shown on the pool's Connect tab.`,
	},
	{
		Question: "What does PPLNS mean?",
		Answer:   `Pay Per Last N Shares. Rewards of each found block are split between the miners who submitted the last N shares before it.`,
	},
	{
		Question: "Why is my hashrate not shown on the dashboard?",
		Answer:   `Check that your miner uses the stratum URL and wallet address exactly as shown. Statistics can take a few minutes to appear after you start mining.`,
	},
	{
		Question: "Why are some figures marked as estimates?",
		Answer:   `When a pool does not publish per-wallet statistics, payments or history, the dashboard derives approximate values from the pool's overall statistics and labels them as estimates.`,
	},
}

type FAQPage struct {
	BasePage
	FAQs []FAQ
}

func (p *FAQPage) StreamTitle(qw *quicktemplate.Writer) {
	qw.N().S(`FAQ & Support`)
}

func (p *FAQPage) StreamContent(qw *quicktemplate.Writer) {
	ctx := p.Context()
	qw.N().S(`<section>
<h1>Frequently Asked Questions</h1>
`)
	if len(p.FAQs) == 0 {
		qw.N().S(`<p class="empty">No FAQs available at this time.</p>
`)
	}
	for _, faq := range p.FAQs {
		qw.N().S(`<div class="faq"><h3>`)
		qw.E().S(faq.Question)
		qw.N().S(`</h3><p>`)
		qw.N().S(faq.Answer)
		qw.N().S(`</p></div>
`)
	}
	qw.N().S(`</section>
<section>
<h2>Support</h2>
`)
	streamSupportContact(qw, ctx)
	qw.N().S(`</section>`)
}

func streamSupportContact(qw *quicktemplate.Writer, ctx *GlobalRequestContext) {
	if ctx.Support.Email == "" && ctx.Support.Telegram == "" && ctx.Support.X == "" {
		qw.N().S(`<p>No support contact has been configured.</p>
`)
		return
	}
	qw.N().S(`<ul class="contact">
`)
	if ctx.Support.Email != "" {
		qw.N().S(`<li><strong>Email:</strong> <a href="mailto:`)
		qw.E().S(ctx.Support.Email)
		qw.N().S(`">`)
		qw.E().S(ctx.Support.Email)
		qw.N().S(`</a></li>
`)
	}
	if ctx.Support.Telegram != "" {
		qw.N().S(`<li><strong>Telegram:</strong> <a href="`)
		qw.E().S(ctx.Support.Telegram)
		qw.N().S(`" rel="nofollow noopener" target="_blank">Join our Telegram</a></li>
`)
	}
	if ctx.Support.X != "" {
		qw.N().S(`<li><strong>X:</strong> <a href="`)
		qw.E().S(ctx.Support.X)
		qw.N().S(`" rel="nofollow noopener" target="_blank">Follow us on X</a></li>
`)
	}
	qw.N().S(`</ul>
`)
}
