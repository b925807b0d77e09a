package main

import (
	"fmt"
	"log/slog"

	log "github.com/charmbracelet/log"
	"github.com/junubipay/paylink/infra/provider/memorylinks"
	"github.com/junubipay/paylink/infra/provider/mockpayment"
	"github.com/junubipay/paylink/pkg/config"
	checkoutsvc "github.com/junubipay/paylink/pkg/service/checkout"
	linksvc "github.com/junubipay/paylink/pkg/service/link"
	"github.com/junubipay/paylink/webapi"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	logger := slog.Default()
	cfg, err := config.Load(".env", logger)
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	// The store and the payment provider are collaborator boundaries; the
	// in-memory store and the mock provider serve local development.
	store := memorylinks.New(nil)
	payments := mockpayment.NewMockPaymentProvider()

	linkSvc := linksvc.New(store, logger, nil)
	checkoutSvc := checkoutsvc.New(store, payments, cfg.Currency, logger, nil)

	app := webapi.NewApp(linkSvc, checkoutSvc, cfg)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("starting server",
		"env", cfg.Env,
		"address", addr,
		"currency", cfg.Currency,
	)
	return app.Listen(addr)
}
