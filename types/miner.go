package types

import "time"

type TopMiner struct {
	Address         string   `json:"address"`
	Hashrate        float64  `json:"hashrate"`
	SharesPerSecond *float64 `json:"sharesPerSecond,omitempty"`
	Worker          string   `json:"worker,omitempty"`
}

type MinerPoolHashrate struct {
	PoolId   string  `json:"poolId"`
	PoolName string  `json:"poolName"`
	Hashrate float64 `json:"hashrate"`
}

// MinerSummary is one address's hashrate summed over every pool it mines on.
type MinerSummary struct {
	Address       string              `json:"address"`
	TotalHashrate float64             `json:"totalHashrate"`
	Pools         []MinerPoolHashrate `json:"pools"`
}

type Worker struct {
	Name            string  `json:"name"`
	Hashrate        float64 `json:"hashrate"`
	SharesPerSecond float64 `json:"sharesPerSecond"`
}

type Payout struct {
	Amount    float64   `json:"amount"`
	Timestamp time.Time `json:"timestamp"`
	TxHash    string    `json:"txHash"`
}

// MinerStats figures for one wallet. When Simulated is set they are an approximation
// derived from pool aggregates, not measured per-wallet data.
type MinerStats struct {
	WalletAddress     string   `json:"walletAddress"`
	PoolId            string   `json:"poolId"`
	Hashrate          float64  `json:"hashrate"`
	Shares            uint64   `json:"shares"`
	SharesPerSecond   float64  `json:"sharesPerSecond"`
	EstimatedEarnings float64  `json:"estimatedEarnings"`
	PendingBalance    float64  `json:"pendingBalance"`
	TotalPaid         float64  `json:"totalPaid"`
	Workers           []Worker `json:"workers"`
	Payouts           []Payout `json:"payouts"`
	Simulated         bool     `json:"simulated"`
}
