package views

import (
	"fmt"
	"github.com/valyala/quicktemplate"
)

type ErrorPage struct {
	BasePage
	Code    int
	Message string
	Error   any
}

func NewErrorPage(code int, message string, err any) *ErrorPage {
	return &ErrorPage{
		Code:    code,
		Message: message,
		Error:   err,
	}
}

func (p *ErrorPage) StreamTitle(qw *quicktemplate.Writer) {
	qw.N().D(p.Code)
	qw.N().S(` `)
	qw.E().S(p.Message)
}

func (p *ErrorPage) StreamContent(qw *quicktemplate.Writer) {
	qw.N().S(`<section class="error">
<h1>`)
	qw.E().S(p.Message)
	qw.N().S(`</h1>
`)
	switch e := p.Error.(type) {
	case nil:
	case string:
		qw.N().S(`<p>`)
		qw.E().S(e)
		qw.N().S(`</p>
`)
	case error:
		qw.N().S(`<p>`)
		qw.E().S(e.Error())
		qw.N().S(`</p>
`)
	default:
		qw.N().S(`<pre>`)
		qw.E().S(fmt.Sprintf("%v", e))
		qw.N().S(`</pre>
`)
	}
	qw.N().S(`<a class="button" href="/">Return to Home</a>
</section>`)
}
