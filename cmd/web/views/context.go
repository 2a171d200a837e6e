package views

import (
	"git.gammaspectra.live/P2Pool/pool-dashboard/types"
	"net/url"
	"slices"
	"strings"
)

const DefaultCoinImage = "/static/coin.svg"

type GlobalRequestContext struct {
	SiteTitle string
	// ImageDomains hosts allowed to serve coin logos
	ImageDomains []string
	Support      struct {
		Email    string
		Telegram string
		X        string
	}
	Pool *types.PoolCoin
}

func (ctx *GlobalRequestContext) Title() string {
	if ctx.SiteTitle == "" {
		return "Mining Pool"
	}
	return ctx.SiteTitle
}

// CoinImage returns the coin logo when its host is allow-listed, the default icon otherwise
func (ctx *GlobalRequestContext) CoinImage(coin types.Coin) string {
	if coin.Logo == "" {
		return DefaultCoinImage
	}
	u, err := url.Parse(coin.Logo)
	if err != nil || (u.Scheme != "https" && u.Scheme != "http") {
		return DefaultCoinImage
	}
	if !slices.Contains(ctx.ImageDomains, strings.ToLower(u.Hostname())) {
		return DefaultCoinImage
	}
	return u.String()
}
