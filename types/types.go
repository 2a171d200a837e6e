package types

// Coin identifies a mineable currency. Every field defaults to an empty string.
type Coin struct {
	Type      string `json:"type"`
	Name      string `json:"name"`
	Symbol    string `json:"symbol"`
	Website   string `json:"website"`
	Market    string `json:"market"`
	Family    string `json:"family"`
	Algorithm string `json:"algorithm"`
	Twitter   string `json:"twitter"`
	Telegram  string `json:"telegram"`
	Discord   string `json:"discord"`
	Logo      string `json:"logo,omitempty"`
}

// DisplayName returns the coin name, falling back to the symbol.
func (c Coin) DisplayName() string {
	if c.Name != "" {
		return c.Name
	}
	return c.Symbol
}
