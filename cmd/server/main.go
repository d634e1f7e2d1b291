package main

import (
	"os"

	"github.com/ethereum/go-ethereum/common"
	"github.com/sirupsen/logrus"

	"swapform/internal/amm"
	"swapform/internal/asset"
	"swapform/internal/config"
	"swapform/internal/infra/pricefeed"
	"swapform/internal/infra/reserves"
	"swapform/internal/infra/tokenmeta"
	"swapform/internal/quote"
	"swapform/internal/service"
	transport "swapform/internal/transport/http"
)

func main() {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "cfg/config.yaml"
	}

	cfg := config.Load(path)

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	book := asset.Book{
		Native: asset.Ref{Addr: common.HexToAddress(cfg.NativeAddress), Decimals: cfg.NativeDecimals},
		Bridge: asset.Ref{Addr: common.HexToAddress(cfg.BridgeAddress), Decimals: cfg.BridgeDecimals},
	}

	pool, err := reserves.NewClient(cfg.RPCURL, common.HexToAddress(cfg.PairAddress), book, cfg.RequestTimeout)
	if err != nil {
		log.Fatalf("reserves.NewClient: %v", err)
	}

	feed, err := pricefeed.NewClient(cfg.PriceFeedURL, cfg.RequestTimeout)
	if err != nil {
		log.Fatalf("pricefeed.NewClient: %v", err)
	}

	// The native asset is not a contract, so its metadata must be seeded.
	// The bridge asset is seeded too when a symbol is configured.
	seed := map[common.Address]asset.Meta{
		book.Native.Addr: {Symbol: cfg.NativeSymbol, Decimals: cfg.NativeDecimals},
	}
	if cfg.BridgeSymbol != "" {
		seed[book.Bridge.Addr] = asset.Meta{Symbol: cfg.BridgeSymbol, Decimals: cfg.BridgeDecimals}
	}
	meta, err := tokenmeta.NewClient(cfg.RPCURL, seed, cfg.RequestTimeout)
	if err != nil {
		log.Fatalf("tokenmeta.NewClient: %v", err)
	}

	router := quote.NewRouter(amm.NewEngine(cfg.Engine), pool, feed, log)
	svc := service.NewSwapService(book, router, meta, cfg.Engine)

	srv, err := transport.NewServer(svc, &cfg, log)
	if err != nil {
		log.Fatalf("transport.NewServer: %v", err)
	}

	if err := srv.ListenAndServe(cfg.ListenAddr); err != nil {
		log.Fatalf("srv.ListenAndServe: %v", err)
	}
}
