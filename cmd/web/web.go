package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	cmdutils "git.gammaspectra.live/P2Pool/pool-dashboard/cmd/utils"
	"git.gammaspectra.live/P2Pool/pool-dashboard/cmd/web/views"
	"git.gammaspectra.live/P2Pool/pool-dashboard/pool/api"
	"git.gammaspectra.live/P2Pool/pool-dashboard/types"
	"git.gammaspectra.live/P2Pool/pool-dashboard/utils"
	"github.com/gorilla/mux"
	"github.com/valyala/quicktemplate"
	"golang.org/x/sync/errgroup"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"strings"
	"sync"
	"time"
)

const logPrefix = "WEB"

func splitList(s string) (result []string) {
	for _, e := range strings.Split(s, ",") {
		if e = strings.ToLower(strings.TrimSpace(e)); e != "" {
			result = append(result, e)
		}
	}
	return result
}

func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds)

	listen := flag.String("listen", "0.0.0.0:8444", "Address and port to serve the site on.")
	apiUrl := flag.String("api-url", os.Getenv("API_URL"), "Base URL of the upstream pool API. Defaults to API_URL environment variable, when empty a built-in set of placeholder pools is served.")
	stratumHost := flag.String("stratum-host", "", "Host advertised in stratum URLs, {id} is replaced by the pool id. Defaults to {id}.<api host>.")
	cacheTime := flag.Uint("cache-ttl", 0, "Seconds to cache upstream API responses for. 0 disables caching.")
	timeout := flag.Uint("timeout", 15, "Upstream API request timeout in seconds.")
	debugListen := flag.String("debug-listen", "", "Provide a bind address and port to expose a pprof HTTP API on it.")
	debug := flag.Bool("debug", false, "Log notices and debug messages.")
	flag.Parse()

	if *debug {
		utils.GlobalLogLevel |= utils.LogLevelNotice | utils.LogLevelDebug
	}

	var client *api.Client
	if *apiUrl == "" {
		utils.Logf(logPrefix, "upstream API url is not set, serving placeholder pools")
		client = api.NewPlaceholderClient()
	} else {
		client = api.NewClient(*apiUrl)
	}
	client.Client.Timeout = time.Second * time.Duration(*timeout)
	if *stratumHost != "" {
		client.StratumHost = *stratumHost
	}
	client.SetCacheTime(time.Second * time.Duration(*cacheTime))

	baseContext := views.GlobalRequestContext{
		SiteTitle:    os.Getenv("SITE_TITLE"),
		ImageDomains: splitList(os.Getenv("IMAGE_DOMAINS")),
	}
	baseContext.Support.Email = os.Getenv("SUPPORT_EMAIL")
	baseContext.Support.Telegram = os.Getenv("SUPPORT_TELEGRAM")
	baseContext.Support.X = os.Getenv("SUPPORT_X")

	server := &http.Server{
		Addr:        *listen,
		ReadTimeout: time.Second * 2,
		Handler:     newHandler(client, baseContext),
	}

	if *debugListen != "" {
		go func() {
			if err := http.ListenAndServe(*debugListen, nil); err != nil {
				log.Panic(err)
			}
		}()
	}

	utils.Logf(logPrefix, "listening on %s, upstream %s", *listen, client.Host)

	if err := server.ListenAndServe(); err != nil {
		log.Panic(err)
	}
}

// newHandler builds the site router. Only GET and HEAD requests are served.
func newHandler(client *api.Client, baseContext views.GlobalRequestContext) http.Handler {
	var responseBufferPool sync.Pool
	responseBufferPool.New = func() any {
		return make([]byte, 0, 1024*64)
	}

	renderPage := func(request *http.Request, writer http.ResponseWriter, page views.ContextSetterPage, pool ...*types.PoolCoin) {
		w := bytes.NewBuffer(responseBufferPool.Get().([]byte))
		status := http.StatusOK
		if errorPage, ok := page.(*views.ErrorPage); ok && errorPage.Code != 0 {
			status = errorPage.Code
		}
		defer func() {
			defer responseBufferPool.Put(w.Bytes()[:0])
			writer.WriteHeader(status)
			_, _ = writer.Write(w.Bytes())
		}()

		ctx := baseContext
		if len(pool) > 0 {
			ctx.Pool = pool[0]
		}

		defer func() {
			if err := recover(); err != nil {
				utils.Errorf(logPrefix, "panic rendering %s: %v", request.URL.Path, err)

				defer func() {
					// error page error'd
					if err := recover(); err != nil {
						w = bytes.NewBuffer(nil)
						writer.Header().Set("content-type", "text/plain")
						_, _ = w.Write([]byte(fmt.Sprintf("%s", err)))
					}
				}()
				w = bytes.NewBuffer(nil)
				status = http.StatusInternalServerError
				errorPage := views.NewErrorPage(http.StatusInternalServerError, "Internal Server Error", err)
				errorPage.SetContext(&ctx)

				views.WritePageTemplate(w, errorPage)
			}
		}()

		page.SetContext(&ctx)

		bufferedWriter := quicktemplate.AcquireWriter(w)
		defer quicktemplate.ReleaseWriter(bufferedWriter)
		views.StreamPageTemplate(bufferedWriter, page)
	}

	// poolErrorPage maps a failed pool lookup to the page shown instead of the pool
	poolErrorPage := func(id string, err error) *views.ErrorPage {
		if errors.Is(err, api.ErrNotFound) {
			return views.NewErrorPage(http.StatusNotFound, "Pool Not Found", fmt.Sprintf("Pool %s not found", id))
		}
		return views.NewErrorPage(http.StatusBadGateway, "Pool Unavailable", "Failed to load pool data")
	}

	setRefresh := func(writer http.ResponseWriter, request *http.Request, seconds int) {
		if request.URL.Query().Has("refresh") {
			writer.Header().Set("refresh", fmt.Sprintf("%d", seconds))
		}
	}

	// withPool loads the pool alongside another resource of it
	withPool := func(ctx context.Context, id string, fetch func(ctx context.Context)) (pool *types.PoolCoin, err error) {
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			pool, err = client.LookupPool(gctx, id)
			return nil
		})
		g.Go(func() error {
			fetch(gctx)
			return nil
		})
		_ = g.Wait()
		return pool, err
	}

	serveMux := mux.NewRouter()

	serveMux.HandleFunc("/", func(writer http.ResponseWriter, request *http.Request) {
		setRefresh(writer, request, 120)

		renderPage(request, writer, &views.IndexPage{
			Pools: client.Pools(request.Context()),
		})
	})

	serveMux.HandleFunc("/connect", func(writer http.ResponseWriter, request *http.Request) {
		renderPage(request, writer, &views.ConnectAllPage{
			Pools: client.Pools(request.Context()),
		})
	})

	serveMux.HandleFunc("/blocks", func(writer http.ResponseWriter, request *http.Request) {
		setRefresh(writer, request, 120)

		renderPage(request, writer, &views.AllBlocksPage{
			Blocks: client.AllBlocks(request.Context()),
		})
	})

	serveMux.HandleFunc("/payments", func(writer http.ResponseWriter, request *http.Request) {
		setRefresh(writer, request, 600)

		renderPage(request, writer, &views.AllPaymentsPage{
			Payments: client.AllPayments(request.Context()),
		})
	})

	serveMux.HandleFunc("/miners", func(writer http.ResponseWriter, request *http.Request) {
		setRefresh(writer, request, 120)

		renderPage(request, writer, &views.AllMinersPage{
			Miners: client.AllTopMiners(request.Context()),
		})
	})

	serveMux.HandleFunc("/stats", func(writer http.ResponseWriter, request *http.Request) {
		setRefresh(writer, request, 120)

		pools := client.Pools(request.Context())
		renderPage(request, writer, &views.NetworkStatsPage{
			Summary: api.Summarize(pools),
			Pools:   pools,
		})
	})

	serveMux.HandleFunc("/faq", func(writer http.ResponseWriter, request *http.Request) {
		renderPage(request, writer, &views.FAQPage{
			FAQs: views.DefaultFAQs,
		})
	})

	serveMux.HandleFunc("/about-us", func(writer http.ResponseWriter, request *http.Request) {
		renderPage(request, writer, &views.AboutPage{})
	})

	serveMux.HandleFunc("/pools/{id}", func(writer http.ResponseWriter, request *http.Request) {
		setRefresh(writer, request, 120)
		id := mux.Vars(request)["id"]

		details := client.PoolDetails(request.Context(), id)
		if !details.Ok() {
			code := http.StatusBadGateway
			if details.NotFound {
				code = http.StatusNotFound
			}
			renderPage(request, writer, views.NewErrorPage(code, details.Error, nil))
			return
		}

		now := time.Now()
		renderPage(request, writer, &views.PoolPage{
			Details:  details,
			Timeline: cmdutils.NewBlocksPositionChart(details.RecentBlocks, now, time.Hour*24, 48),
			Now:      now,
		}, details.Pool)
	})

	serveMux.HandleFunc("/pools/{id}/blocks", func(writer http.ResponseWriter, request *http.Request) {
		setRefresh(writer, request, 120)
		id := mux.Vars(request)["id"]

		var blocks []types.Block
		pool, err := withPool(request.Context(), id, func(ctx context.Context) {
			blocks = client.PoolBlocks(ctx, id)
		})
		if err != nil {
			renderPage(request, writer, poolErrorPage(id, err))
			return
		}

		renderPage(request, writer, &views.BlocksPage{
			Pool:   pool,
			Blocks: blocks,
		}, pool)
	})

	serveMux.HandleFunc("/pools/{id}/payments", func(writer http.ResponseWriter, request *http.Request) {
		setRefresh(writer, request, 600)
		id := mux.Vars(request)["id"]

		var payments []types.PoolPayment
		pool, err := withPool(request.Context(), id, func(ctx context.Context) {
			payments = client.PoolPayments(ctx, id)
		})
		if err != nil {
			renderPage(request, writer, poolErrorPage(id, err))
			return
		}

		renderPage(request, writer, &views.PaymentsPage{
			Pool:     pool,
			Payments: payments,
		}, pool)
	})

	serveMux.HandleFunc("/pools/{id}/miners", func(writer http.ResponseWriter, request *http.Request) {
		setRefresh(writer, request, 120)
		id := mux.Vars(request)["id"]

		var miners []types.TopMiner
		pool, err := withPool(request.Context(), id, func(ctx context.Context) {
			miners = client.TopMiners(ctx, id)
		})
		if err != nil {
			renderPage(request, writer, poolErrorPage(id, err))
			return
		}

		renderPage(request, writer, &views.MinersPage{
			Pool:      pool,
			TopMiners: miners,
		}, pool)
	})

	serveMux.HandleFunc("/pools/{id}/stats", func(writer http.ResponseWriter, request *http.Request) {
		setRefresh(writer, request, 600)
		id := mux.Vars(request)["id"]

		var stats []types.HistoricalStat
		pool, err := withPool(request.Context(), id, func(ctx context.Context) {
			stats = client.HistoricalStats(ctx, id)
		})
		if err != nil {
			renderPage(request, writer, poolErrorPage(id, err))
			return
		}

		renderPage(request, writer, &views.StatsPage{
			Pool:  pool,
			Stats: stats,
		}, pool)
	})

	serveMux.HandleFunc("/pools/{id}/connect", func(writer http.ResponseWriter, request *http.Request) {
		id := mux.Vars(request)["id"]

		pool, err := client.LookupPool(request.Context(), id)
		if err != nil {
			renderPage(request, writer, poolErrorPage(id, err))
			return
		}

		renderPage(request, writer, &views.ConnectPage{
			Pool: pool,
		}, pool)
	})

	serveMux.HandleFunc("/pools/{id}/dashboard", func(writer http.ResponseWriter, request *http.Request) {
		setRefresh(writer, request, 300)
		id := mux.Vars(request)["id"]
		wallet := strings.TrimSpace(request.URL.Query().Get("wallet"))

		page := &views.DashboardPage{
			Wallet: wallet,
		}

		if wallet == "" {
			pool, err := client.LookupPool(request.Context(), id)
			if err != nil {
				renderPage(request, writer, poolErrorPage(id, err))
				return
			}
			page.Pool = pool
			renderPage(request, writer, page, pool)
			return
		}

		if err := api.ValidateWalletAddress(wallet); err != nil {
			pool, err := client.LookupPool(request.Context(), id)
			if err != nil {
				renderPage(request, writer, poolErrorPage(id, err))
				return
			}
			page.Pool = pool
			page.Error = "Invalid wallet address format"
			renderPage(request, writer, page, pool)
			return
		}

		var stats *types.MinerStats
		var statsErr error
		pool, err := withPool(request.Context(), id, func(ctx context.Context) {
			stats, statsErr = client.MinerStats(ctx, wallet, id)
		})
		if err != nil {
			renderPage(request, writer, poolErrorPage(id, err))
			return
		}

		page.Pool = pool
		if statsErr != nil {
			utils.Errorf(logPrefix, "miner stats %s on %s: %s", wallet, id, statsErr)
			page.Error = "Failed to load miner statistics, please try again later"
		} else {
			page.Stats = stats
		}
		renderPage(request, writer, page, pool)
	})

	serveMux.HandleFunc("/api/miner-stats", minerStatsHandler(client))

	serveMux.PathPrefix("/static/").Handler(staticHandler())

	serveMux.NotFoundHandler = http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		renderPage(request, writer, views.NewErrorPage(http.StatusNotFound, "Page Not Found", nil))
	})

	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if request.Method != "GET" && request.Method != "HEAD" {
			writer.WriteHeader(http.StatusForbidden)
			return
		}

		writer.Header().Set("content-type", "text/html; charset=utf-8")

		serveMux.ServeHTTP(writer, request.WithContext(api.WithRequestCache(request.Context())))
	})
}
