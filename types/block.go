package types

import "time"

type Block struct {
	PoolId        string    `json:"poolId"`
	PoolName      string    `json:"poolName"`
	CoinType      string    `json:"coinType"`
	BlockHeight   uint64    `json:"blockHeight"`
	Timestamp     time.Time `json:"timestamp"`
	Reward        float64   `json:"reward"`
	Confirmations *uint64   `json:"confirmations,omitempty"`
	// Effort percent of expected shares spent on this block
	Effort       *float64 `json:"effort,omitempty"`
	MinerAddress string   `json:"minerAddress,omitempty"`
	Status       string   `json:"status,omitempty"`
	Synthetic    bool     `json:"synthetic,omitempty"`
}
