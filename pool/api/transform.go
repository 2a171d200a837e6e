package api

import (
	"fmt"
	"git.gammaspectra.live/P2Pool/pool-dashboard/types"
	"github.com/valyala/fastjson"
	"math"
	"strconv"
	"strings"
	"time"
)

// transformList normalizes each entry, dropping the ones fn rejects. The result is never nil.
func transformList[T any](values []*fastjson.Value, fn func(v *fastjson.Value) (T, bool)) []T {
	result := make([]T, 0, len(values))
	for _, v := range values {
		if v == nil {
			continue
		}
		if e, ok := fn(v); ok {
			result = append(result, e)
		}
	}
	return result
}

// listOf accepts both a bare array and an object wrapping it under key.
func listOf(v *fastjson.Value, key string) []*fastjson.Value {
	if v == nil {
		return nil
	}
	if v.Type() == fastjson.TypeArray {
		a, _ := v.Array()
		return a
	}
	return v.GetArray(key)
}

// objectOf accepts both a bare object and an object wrapping it under key.
func objectOf(v *fastjson.Value, key string) *fastjson.Value {
	if v == nil || v.Type() != fastjson.TypeObject {
		return nil
	}
	if inner := v.Get(key); inner != nil && inner.Type() == fastjson.TypeObject {
		return inner
	}
	return v
}

func rawNumber(v *fastjson.Value, keys ...string) (float64, bool) {
	if v == nil {
		return 0, false
	}
	x := v.Get(keys...)
	if x == nil {
		return 0, false
	}
	var f float64
	switch x.Type() {
	case fastjson.TypeNumber:
		var err error
		if f, err = x.Float64(); err != nil {
			return 0, false
		}
	case fastjson.TypeString:
		var err error
		if f, err = strconv.ParseFloat(strings.TrimSpace(string(x.GetStringBytes())), 64); err != nil {
			return 0, false
		}
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0, true
	}
	return f, true
}

// number reads a non-negative float, absent or mistyped values read as 0
func number(v *fastjson.Value, keys ...string) float64 {
	f, _ := rawNumber(v, keys...)
	return f
}

func optionalNumber(v *fastjson.Value, keys ...string) *float64 {
	if f, ok := rawNumber(v, keys...); ok {
		return &f
	}
	return nil
}

func integer(v *fastjson.Value, keys ...string) uint64 {
	f := number(v, keys...)
	if f >= math.MaxUint64 {
		return math.MaxUint64
	}
	return uint64(f)
}

func str(v *fastjson.Value, keys ...string) string {
	if v == nil {
		return ""
	}
	x := v.Get(keys...)
	if x == nil {
		return ""
	}
	switch x.Type() {
	case fastjson.TypeString:
		return string(x.GetStringBytes())
	case fastjson.TypeNumber:
		return x.String()
	default:
		return ""
	}
}

func boolean(v *fastjson.Value, keys ...string) bool {
	if v == nil {
		return false
	}
	x := v.Get(keys...)
	if x == nil {
		return false
	}
	switch x.Type() {
	case fastjson.TypeTrue:
		return true
	case fastjson.TypeString:
		b, _ := strconv.ParseBool(string(x.GetStringBytes()))
		return b
	default:
		return false
	}
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// timestamp reads either an ISO 8601 string or a unix time in seconds or milliseconds
func timestamp(v *fastjson.Value, keys ...string) time.Time {
	if v == nil {
		return time.Time{}
	}
	x := v.Get(keys...)
	if x == nil {
		return time.Time{}
	}
	switch x.Type() {
	case fastjson.TypeString:
		s := strings.TrimSpace(string(x.GetStringBytes()))
		for _, layout := range timestampLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t.UTC()
			}
		}
	case fastjson.TypeNumber:
		n := number(x)
		if n <= 0 {
			return time.Time{}
		}
		if n > 1e12 {
			return time.UnixMilli(int64(n)).UTC()
		}
		return time.Unix(int64(n), 0).UTC()
	}
	return time.Time{}
}

func coalesce[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}

func (c *Client) transformPool(v *fastjson.Value) (types.PoolCoin, bool) {
	return c.transformPoolWithId(v, "")
}

// transformPoolWithId uses fallbackId when the document carries no id of its own
func (c *Client) transformPoolWithId(v *fastjson.Value, fallbackId string) (types.PoolCoin, bool) {
	if v.Type() != fastjson.TypeObject {
		return types.PoolCoin{}, false
	}
	id := coalesce(str(v, "id"), fallbackId)
	if id == "" {
		return types.PoolCoin{}, false
	}

	pool := types.PoolCoin{
		Id: id,
		Coin: types.Coin{
			Type:      coalesce(str(v, "coin", "type"), id),
			Name:      coalesce(str(v, "coin", "name"), id),
			Symbol:    coalesce(str(v, "coin", "symbol"), strings.ToUpper(id)),
			Website:   str(v, "coin", "website"),
			Market:    str(v, "coin", "market"),
			Family:    str(v, "coin", "family"),
			Algorithm: str(v, "coin", "algorithm"),
			Twitter:   str(v, "coin", "twitter"),
			Telegram:  str(v, "coin", "telegram"),
			Discord:   str(v, "coin", "discord"),
			Logo:      coalesce(str(v, "coin", "logo"), str(v, "coin", "icon")),
		},
		Address: str(v, "address"),
		PoolStats: types.PoolStats{
			ConnectedMiners:  integer(v, "poolStats", "connectedMiners"),
			ConnectedWorkers: integer(v, "poolStats", "connectedWorkers"),
			PoolHashrate:     number(v, "poolStats", "poolHashrate"),
			SharesPerSecond:  number(v, "poolStats", "sharesPerSecond"),
		},
		NetworkStats: types.NetworkStats{
			NetworkType:          str(v, "networkStats", "networkType"),
			NetworkHashrate:      number(v, "networkStats", "networkHashrate"),
			NetworkDifficulty:    number(v, "networkStats", "networkDifficulty"),
			NextNetworkTarget:    str(v, "networkStats", "nextNetworkTarget"),
			NextNetworkBits:      str(v, "networkStats", "nextNetworkBits"),
			LastNetworkBlockTime: timestamp(v, "networkStats", "lastNetworkBlockTime"),
			BlockHeight:          integer(v, "networkStats", "blockHeight"),
			ConnectedPeers:       integer(v, "networkStats", "connectedPeers"),
			NodeVersion:          str(v, "networkStats", "nodeVersion"),
			RewardType:           str(v, "networkStats", "rewardType"),
		},
		PoolFeePercent: number(v, "poolFeePercent"),
		PaymentProcessing: types.PaymentProcessing{
			PayoutScheme:   coalesce(str(v, "paymentProcessing", "payoutScheme"), types.DefaultPayoutScheme),
			MinimumPayment: number(v, "paymentProcessing", "minimumPayment"),
			Interval:       integer(v, "paymentProcessing", "interval"),
		},
		TotalPaid:         number(v, "totalPaid"),
		TotalBlocks:       integer(v, "totalBlocks"),
		BlockReward:       number(v, "blockReward"),
		LastPoolBlockTime: coalesce(timestamp(v, "lastPoolBlockTime"), timestamp(v, "poolStats", "lastPoolBlockTime")),
	}

	if ports := c.transformPorts(id, v); len(ports) > 0 {
		pool.ConnectionDetails = &types.ConnectionDetails{Ports: ports}
	}

	return pool, true
}

// transformPorts reads the ports object keyed by port number, keeping document order.
// An array of objects carrying a "port" field is accepted as well.
func (c *Client) transformPorts(poolId string, v *fastjson.Value) (ports []types.Port) {
	makePort := func(port uint64, d *fastjson.Value) {
		if port == 0 || port > math.MaxUint16 {
			return
		}
		ports = append(ports, types.Port{
			Port:       uint16(port),
			Name:       coalesce(str(d, "name"), fmt.Sprintf("Port %d", port)),
			StratumUrl: c.stratumUrl(poolId, port),
			Difficulty: number(d, "difficulty"),
			MinDiff:    number(d, "varDiff", "minDiff"),
			MaxDiff:    number(d, "varDiff", "maxDiff"),
		})
	}

	x := v.Get("ports")
	if x == nil {
		return nil
	}
	switch x.Type() {
	case fastjson.TypeObject:
		o, _ := x.Object()
		o.Visit(func(key []byte, d *fastjson.Value) {
			port, err := strconv.ParseUint(string(key), 10, 64)
			if err != nil {
				return
			}
			makePort(port, d)
		})
	case fastjson.TypeArray:
		a, _ := x.Array()
		for _, d := range a {
			makePort(integer(d, "port"), d)
		}
	}
	return ports
}

// transformBlock reads a block without its pool labels, see labelBlocks
func (c *Client) transformBlock(poolId string) func(v *fastjson.Value) (types.Block, bool) {
	return func(v *fastjson.Value) (types.Block, bool) {
		if v.Type() != fastjson.TypeObject {
			return types.Block{}, false
		}
		b := types.Block{
			PoolId:       coalesce(str(v, "poolId"), poolId),
			BlockHeight:  coalesce(integer(v, "blockHeight"), integer(v, "height")),
			Timestamp:    coalesce(timestamp(v, "created"), timestamp(v, "timestamp"), c.now().UTC()),
			Reward:       number(v, "reward"),
			MinerAddress: coalesce(str(v, "miner"), str(v, "minerAddress")),
			Status:       str(v, "status"),
		}
		if confirmations, ok := rawNumber(v, "confirmations"); ok {
			n := uint64(confirmations)
			b.Confirmations = &n
		}
		// upstream reports effort as a ratio of expected shares
		if effort := optionalNumber(v, "effort"); effort != nil {
			percent := *effort * 100
			b.Effort = &percent
		}
		return b, true
	}
}

func labelBlocks(blocks []types.Block, pool *types.PoolCoin) {
	for i := range blocks {
		if pool != nil {
			blocks[i].PoolName = coalesce(pool.Coin.Name, pool.Id)
			blocks[i].CoinType = coalesce(pool.Coin.Type, pool.Id)
		} else {
			blocks[i].PoolName = blocks[i].PoolId
			blocks[i].CoinType = blocks[i].PoolId
		}
	}
}

func labelPayments(payments []types.PoolPayment, pool *types.PoolCoin) {
	for i := range payments {
		payments[i].PoolName = coalesce(pool.Coin.Name, pool.Id)
		payments[i].CoinType = coalesce(pool.Coin.Type, pool.Id)
	}
}

func transformTopMiner(v *fastjson.Value) (types.TopMiner, bool) {
	if v.Type() != fastjson.TypeObject {
		return types.TopMiner{}, false
	}
	return types.TopMiner{
		Address:         coalesce(str(v, "address"), str(v, "miner")),
		Hashrate:        number(v, "hashrate"),
		SharesPerSecond: optionalNumber(v, "sharesPerSecond"),
		Worker:          str(v, "worker"),
	}, true
}

func (c *Client) transformPayment(poolId string) func(v *fastjson.Value) (types.PoolPayment, bool) {
	return func(v *fastjson.Value) (types.PoolPayment, bool) {
		if v.Type() != fastjson.TypeObject {
			return types.PoolPayment{}, false
		}
		return types.PoolPayment{
			PoolId:       coalesce(str(v, "poolId"), poolId),
			MinerAddress: coalesce(str(v, "address"), str(v, "minerAddress")),
			Amount:       number(v, "amount"),
			Timestamp:    coalesce(timestamp(v, "created"), timestamp(v, "timestamp"), c.now().UTC()),
			TxHash:       coalesce(str(v, "transactionConfirmationData"), str(v, "txHash")),
			Confirmed:    boolean(v, "confirmed"),
		}, true
	}
}

func transformHistoricalStat(v *fastjson.Value) (types.HistoricalStat, bool) {
	t := coalesce(timestamp(v, "created"), timestamp(v, "timestamp"))
	if t.IsZero() {
		return types.HistoricalStat{}, false
	}
	return types.HistoricalStat{
		Timestamp:       t,
		Hashrate:        coalesce(number(v, "poolHashrate"), number(v, "hashrate")),
		SharesPerSecond: number(v, "sharesPerSecond"),
		ConnectedMiners: integer(v, "connectedMiners"),
	}, true
}

func transformWorker(name string, v *fastjson.Value) types.Worker {
	return types.Worker{
		Name:            coalesce(str(v, "name"), name),
		Hashrate:        number(v, "hashrate"),
		SharesPerSecond: number(v, "sharesPerSecond"),
	}
}

func (c *Client) transformMinerStats(wallet, poolId string, v *fastjson.Value) *types.MinerStats {
	stats := &types.MinerStats{
		WalletAddress:  wallet,
		PoolId:         poolId,
		PendingBalance: number(v, "pendingBalance"),
		TotalPaid:      number(v, "totalPaid"),
		Workers:        make([]types.Worker, 0),
		Payouts:        make([]types.Payout, 0),
	}

	if a := v.GetArray("workers"); a != nil {
		for _, w := range a {
			stats.Workers = append(stats.Workers, transformWorker("", w))
		}
	} else if o := v.GetObject("performance", "workers"); o != nil {
		o.Visit(func(key []byte, w *fastjson.Value) {
			stats.Workers = append(stats.Workers, transformWorker(coalesce(string(key), "default"), w))
		})
	}

	stats.Hashrate = number(v, "hashrate")
	stats.SharesPerSecond = number(v, "sharesPerSecond")
	if stats.Hashrate == 0 && stats.SharesPerSecond == 0 {
		for _, w := range stats.Workers {
			stats.Hashrate += w.Hashrate
			stats.SharesPerSecond += w.SharesPerSecond
		}
	}
	stats.Shares = uint64(math.Round(stats.SharesPerSecond * day.Seconds()))

	payouts := v.GetArray("payments")
	if payouts == nil {
		payouts = v.GetArray("payouts")
	}
	stats.Payouts = append(stats.Payouts, transformList(payouts, transformPayout)...)
	return stats
}

func transformPayout(v *fastjson.Value) (types.Payout, bool) {
	t := coalesce(timestamp(v, "created"), timestamp(v, "timestamp"))
	if t.IsZero() {
		return types.Payout{}, false
	}
	return types.Payout{
		Amount:    number(v, "amount"),
		Timestamp: t,
		TxHash:    coalesce(str(v, "transactionConfirmationData"), str(v, "txHash")),
	}, true
}
