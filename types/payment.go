package types

import "time"

type PoolPayment struct {
	PoolId       string    `json:"poolId"`
	PoolName     string    `json:"poolName,omitempty"`
	CoinType     string    `json:"coinType,omitempty"`
	MinerAddress string    `json:"minerAddress"`
	Amount       float64   `json:"amount"`
	Timestamp    time.Time `json:"timestamp"`
	TxHash       string    `json:"txHash"`
	Confirmed    bool      `json:"confirmed"`
	Synthetic    bool      `json:"synthetic,omitempty"`
}

type HistoricalStat struct {
	Timestamp       time.Time `json:"timestamp"`
	Hashrate        float64   `json:"hashrate"`
	SharesPerSecond float64   `json:"sharesPerSecond"`
	ConnectedMiners uint64    `json:"connectedMiners"`
	Synthetic       bool      `json:"synthetic,omitempty"`
}
