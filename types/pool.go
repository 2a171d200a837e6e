package types

import "time"

type PoolStats struct {
	ConnectedMiners  uint64  `json:"connectedMiners"`
	ConnectedWorkers uint64  `json:"connectedWorkers"`
	PoolHashrate     float64 `json:"poolHashrate"`
	SharesPerSecond  float64 `json:"sharesPerSecond"`
}

// NetworkStats describes the coin's blockchain, not the pool.
type NetworkStats struct {
	NetworkType          string    `json:"networkType"`
	NetworkHashrate      float64   `json:"networkHashrate"`
	NetworkDifficulty    float64   `json:"networkDifficulty"`
	NextNetworkTarget    string    `json:"nextNetworkTarget"`
	NextNetworkBits      string    `json:"nextNetworkBits"`
	LastNetworkBlockTime time.Time `json:"lastNetworkBlockTime"`
	BlockHeight          uint64    `json:"blockHeight"`
	ConnectedPeers       uint64    `json:"connectedPeers"`
	NodeVersion          string    `json:"nodeVersion"`
	RewardType           string    `json:"rewardType"`
}

type Port struct {
	Port       uint16  `json:"port"`
	Name       string  `json:"name"`
	StratumUrl string  `json:"stratumUrl"`
	Difficulty float64 `json:"difficulty"`
	MinDiff    float64 `json:"minDiff"`
	MaxDiff    float64 `json:"maxDiff"`
}

// VarDiff reports whether the port advertises a variable difficulty range.
func (p Port) VarDiff() bool {
	return p.MinDiff > 0 || p.MaxDiff > 0
}

type ConnectionDetails struct {
	Ports []Port `json:"ports"`
}

type PaymentProcessing struct {
	PayoutScheme   string  `json:"payoutScheme"`
	MinimumPayment float64 `json:"minimumPayment"`
	// Interval payout interval in seconds, 0 when unknown
	Interval uint64 `json:"interval"`
}

const DefaultPayoutScheme = "PPLNS"

type PoolCoin struct {
	Id                string             `json:"id"`
	Coin              Coin               `json:"coin"`
	Address           string             `json:"address"`
	PoolStats         PoolStats          `json:"poolStats"`
	NetworkStats      NetworkStats       `json:"networkStats"`
	PoolFeePercent    float64            `json:"poolFeePercent"`
	ConnectionDetails *ConnectionDetails `json:"connectionDetails,omitempty"`
	PaymentProcessing PaymentProcessing  `json:"paymentProcessing"`
	TotalPaid         float64            `json:"totalPaid"`
	TotalBlocks       uint64             `json:"totalBlocks"`
	BlockReward       float64            `json:"blockReward"`
	LastPoolBlockTime time.Time          `json:"lastPoolBlockTime"`
}

// PoolDetails carries either a Pool or an Error, never both.
type PoolDetails struct {
	Pool         *PoolCoin  `json:"pool,omitempty"`
	RecentBlocks []Block    `json:"recentBlocks"`
	TopMiners    []TopMiner `json:"topMiners"`
	Error        string     `json:"error,omitempty"`
	// NotFound is set along with Error when the upstream does not know the pool
	NotFound bool `json:"notFound,omitempty"`
}

func (d PoolDetails) Ok() bool {
	return d.Pool != nil && d.Error == ""
}

// PoolsSummary totals every listed pool.
type PoolsSummary struct {
	Pools         int     `json:"pools"`
	TotalHashrate float64 `json:"totalHashrate"`
	ActiveMiners  uint64  `json:"activeMiners"`
	BlocksMined   uint64  `json:"blocksMined"`
}
