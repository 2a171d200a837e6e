package views

import (
	"github.com/valyala/quicktemplate"
)

type AboutPage struct {
	BasePage
}

func (p *AboutPage) StreamTitle(qw *quicktemplate.Writer) {
	qw.N().S(`About Us`)
}

func (p *AboutPage) StreamContent(qw *quicktemplate.Writer) {
	ctx := p.Context()
	qw.N().S(`<section>
<h1>About `)
	qw.E().S(ctx.Title())
	qw.N().S(`</h1>
<p>`)
	qw.E().S(ctx.Title())
	qw.N().S(` runs mining pools for several coins. Every pool publishes its hashrate, found blocks, payments and top miners on this site, refreshed on each visit.</p>
<p>Pick a pool from the <a href="/">pool list</a> to see its statistics, or head to the <a href="/connect">Connect</a> page to start mining.</p>
</section>
<section>
<h2>Contact</h2>
`)
	streamSupportContact(qw, ctx)
	qw.N().S(`</section>`)
}
