package views

import (
	"git.gammaspectra.live/P2Pool/pool-dashboard/types"
	"github.com/stretchr/testify/assert"
	"testing"
	"time"
)

func TestTimeElapsedShort(t *testing.T) {
	assert.Equal(t, "never", time_elapsed_short(time.Time{}))
	assert.Equal(t, "just now", time_elapsed_short(time.Now().Add(time.Minute)))
	assert.Equal(t, "2 hours ago", time_elapsed_short(time.Now().Add(-time.Hour*2-time.Minute*5)))
}

func TestUtcDate(t *testing.T) {
	assert.Equal(t, "-", utc_date(time.Time{}))
	assert.Equal(t, "10-03-2024 12:00:00 UTC", utc_date(time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)))
}

func TestEffortColor(t *testing.T) {
	lucky, unlucky := effort_color(10), effort_color(400)
	assert.Len(t, lucky, 7)
	assert.NotEqual(t, lucky, unlucky)
	assert.Equal(t, unlucky, effort_color(400))
}

func TestCoinImage(t *testing.T) {
	ctx := &GlobalRequestContext{ImageDomains: []string{"img.example.com"}}

	tests := []struct {
		logo     string
		expected string
	}{
		{"", DefaultCoinImage},
		{"https://img.example.com/btc.png", "https://img.example.com/btc.png"},
		{"https://IMG.example.com/btc.png", "https://IMG.example.com/btc.png"},
		{"https://evil.example.com/btc.png", DefaultCoinImage},
		{"javascript:alert(1)", DefaultCoinImage},
		{"/relative.png", DefaultCoinImage},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, ctx.CoinImage(types.Coin{Logo: tt.logo}), tt.logo)
	}
}

func TestPageTemplate(t *testing.T) {
	page := NewErrorPage(404, "Pool Not Found", "Pool <x> not found")
	page.SetContext(&GlobalRequestContext{SiteTitle: "Example & Co"})

	html := PageTemplate(page)
	assert.Contains(t, html, "<title>404 Pool Not Found - Example &amp; Co</title>")
	assert.Contains(t, html, "Pool &lt;x&gt; not found")
	assert.Contains(t, html, `href="/">Return to Home`)
}
