package main

import (
	"errors"
	"git.gammaspectra.live/P2Pool/pool-dashboard/cmd/httputils"
	"git.gammaspectra.live/P2Pool/pool-dashboard/pool/api"
	"git.gammaspectra.live/P2Pool/pool-dashboard/utils"
	"net/http"
	"strings"
)

// minerStatsHandler serves /api/miner-stats?wallet=&pool=, pool defaults to the first listed pool
func minerStatsHandler(client *api.Client) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		params := request.URL.Query()
		wallet := strings.TrimSpace(params.Get("wallet"))
		poolId := strings.TrimSpace(params.Get("pool"))

		if wallet == "" {
			_ = httputils.WriteJsonError(request, writer, http.StatusBadRequest, "Wallet address is required")
			return
		}
		if err := api.ValidateWalletAddress(wallet); err != nil {
			_ = httputils.WriteJsonError(request, writer, http.StatusBadRequest, "Invalid wallet address format")
			return
		}

		if poolId == "" {
			if pools := client.Pools(request.Context()); len(pools) > 0 {
				poolId = pools[0].Id
			} else {
				_ = httputils.WriteJsonError(request, writer, http.StatusBadRequest, "Pool is required")
				return
			}
		}

		stats, err := client.MinerStats(request.Context(), wallet, poolId)
		if err != nil {
			switch {
			case errors.Is(err, api.ErrInvalidInput):
				_ = httputils.WriteJsonError(request, writer, http.StatusBadRequest, "Invalid wallet address format")
			case errors.Is(err, api.ErrMissingParameter):
				_ = httputils.WriteJsonError(request, writer, http.StatusBadRequest, "Pool is required")
			case errors.Is(err, api.ErrNotFound):
				_ = httputils.WriteJsonError(request, writer, http.StatusNotFound, "Pool not found")
			default:
				utils.Errorf(logPrefix, "miner stats %s on %s: %s", wallet, poolId, err)
				_ = httputils.WriteJsonError(request, writer, http.StatusInternalServerError, "Failed to fetch miner stats")
			}
			return
		}

		if err = httputils.WriteJson(request, writer, http.StatusOK, stats); err != nil {
			utils.Errorf(logPrefix, "error encoding miner stats: %s", err)
		}
	}
}
