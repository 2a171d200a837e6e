// Package views renders the site pages. They are maintained by hand against the quicktemplate
// Writer API, following the Stream/Write function shape qtc emits, and have no .qtpl sources.
package views

import (
	"bytes"
	"git.gammaspectra.live/P2Pool/pool-dashboard/types"
	"github.com/valyala/quicktemplate"
	"io"
	"net/url"
)

type Page interface {
	StreamTitle(qw *quicktemplate.Writer)
	StreamContent(qw *quicktemplate.Writer)
}

type ContextSetterPage interface {
	Page
	SetContext(ctx *GlobalRequestContext)
	Context() *GlobalRequestContext
}

type BasePage struct {
	ctx *GlobalRequestContext
}

func (p *BasePage) SetContext(ctx *GlobalRequestContext) {
	p.ctx = ctx
}

func (p *BasePage) Context() *GlobalRequestContext {
	if p.ctx == nil {
		return &GlobalRequestContext{}
	}
	return p.ctx
}

func StreamPageTemplate(qw *quicktemplate.Writer, p ContextSetterPage) {
	ctx := p.Context()
	qw.N().S(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>`)
	p.StreamTitle(qw)
	qw.N().S(` - `)
	qw.E().S(ctx.Title())
	qw.N().S(`</title>
<link rel="stylesheet" href="/static/style.css">
</head>
<body>
<header>
<a class="brand" href="/">`)
	qw.E().S(ctx.Title())
	qw.N().S(`</a>
<nav><a href="/">Pools</a><a href="/blocks">Blocks</a><a href="/payments">Payments</a><a href="/miners">Miners</a><a href="/stats">Stats</a><a href="/connect">Connect</a><a href="/faq">FAQ</a><a href="/about-us">About Us</a></nav>
</header>
<main>
`)
	p.StreamContent(qw)
	qw.N().S(`
</main>
<footer>
<span>`)
	qw.E().S(ctx.Title())
	qw.N().S(`</span>`)
	streamSupportLinks(qw, ctx)
	qw.N().S(`
</footer>
</body>
</html>
`)
}

func WritePageTemplate(w io.Writer, p ContextSetterPage) {
	qw := quicktemplate.AcquireWriter(w)
	StreamPageTemplate(qw, p)
	quicktemplate.ReleaseWriter(qw)
}

func PageTemplate(p ContextSetterPage) string {
	var buf bytes.Buffer
	WritePageTemplate(&buf, p)
	return buf.String()
}

func streamSupportLinks(qw *quicktemplate.Writer, ctx *GlobalRequestContext) {
	if ctx.Support.Email != "" {
		qw.N().S(` <a href="mailto:`)
		qw.E().S(ctx.Support.Email)
		qw.N().S(`">`)
		qw.E().S(ctx.Support.Email)
		qw.N().S(`</a>`)
	}
	if ctx.Support.Telegram != "" {
		qw.N().S(` <a href="`)
		qw.E().S(ctx.Support.Telegram)
		qw.N().S(`" rel="nofollow noopener" target="_blank">Telegram</a>`)
	}
	if ctx.Support.X != "" {
		qw.N().S(` <a href="`)
		qw.E().S(ctx.Support.X)
		qw.N().S(`" rel="nofollow noopener" target="_blank">X</a>`)
	}
}

func poolUrl(pool *types.PoolCoin, resource string) string {
	u := "/pools/" + url.PathEscape(pool.Id)
	if resource != "" {
		u += "/" + resource
	}
	return u
}

var poolTabs = []struct {
	Resource string
	Label    string
}{
	{"", "Overview"},
	{"blocks", "Blocks"},
	{"payments", "Payments"},
	{"miners", "Miners"},
	{"stats", "Stats"},
	{"connect", "Connect"},
	{"dashboard", "Dashboard"},
}

// streamPoolHeader renders the breadcrumb, coin heading and tab navigation shared by pool pages
func streamPoolHeader(qw *quicktemplate.Writer, ctx *GlobalRequestContext, pool *types.PoolCoin, active string) {
	qw.N().S(`<div class="breadcrumb"><a href="/">Pools</a> / <a href="`)
	qw.E().S(poolUrl(pool, ""))
	qw.N().S(`">`)
	qw.E().S(pool.Coin.DisplayName())
	qw.N().S(`</a>`)
	for _, tab := range poolTabs {
		if tab.Resource == active && active != "" {
			qw.N().S(` / `)
			qw.E().S(tab.Label)
		}
	}
	qw.N().S(`</div>
<h1 class="pool-title"><img class="coin" src="`)
	qw.E().S(ctx.CoinImage(pool.Coin))
	qw.N().S(`" alt="" width="32" height="32"> `)
	qw.E().S(pool.Coin.DisplayName())
	qw.N().S(` <small>`)
	qw.E().S(pool.Coin.Symbol)
	qw.N().S(` &middot; `)
	qw.E().S(pool.PaymentProcessing.PayoutScheme)
	qw.N().S(`</small></h1>
<nav class="tabs">`)
	for _, tab := range poolTabs {
		qw.N().S(`<a href="`)
		qw.E().S(poolUrl(pool, tab.Resource))
		qw.N().S(`"`)
		if tab.Resource == active {
			qw.N().S(` class="active"`)
		}
		qw.N().S(`>`)
		qw.E().S(tab.Label)
		qw.N().S(`</a>`)
	}
	qw.N().S(`</nav>
`)
}

func streamCell(qw *quicktemplate.Writer, value string) {
	qw.N().S(`<td>`)
	qw.E().S(value)
	qw.N().S(`</td>`)
}

func streamHeaderRow(qw *quicktemplate.Writer, columns ...string) {
	qw.N().S(`<thead><tr>`)
	for _, c := range columns {
		qw.N().S(`<th>`)
		qw.E().S(c)
		qw.N().S(`</th>`)
	}
	qw.N().S(`</tr></thead>
`)
}

func streamEmptyRow(qw *quicktemplate.Writer, columns int, message string) {
	qw.N().S(`<tr><td class="empty" colspan="`)
	qw.N().D(columns)
	qw.N().S(`">`)
	qw.E().S(message)
	qw.N().S(`</td></tr>`)
}

func streamStat(qw *quicktemplate.Writer, label, value string) {
	qw.N().S(`<div class="stat"><span class="label">`)
	qw.E().S(label)
	qw.N().S(`</span><span class="value">`)
	qw.E().S(value)
	qw.N().S(`</span></div>`)
}
