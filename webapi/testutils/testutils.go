// Package testutils builds a fully wired test app around the in-memory
// collaborators so webapi handler tests run without external services.
package testutils

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/junubipay/paylink/infra/provider/memorylinks"
	"github.com/junubipay/paylink/infra/provider/mockpayment"
	"github.com/junubipay/paylink/pkg/config"
	checkoutsvc "github.com/junubipay/paylink/pkg/service/checkout"
	linksvc "github.com/junubipay/paylink/pkg/service/link"
	"github.com/junubipay/paylink/webapi"
)

// TestApp bundles the app with its collaborators so tests can seed links and
// script payment outcomes.
type TestApp struct {
	App      *fiber.App
	Store    *memorylinks.Store
	Payments *mockpayment.MockPaymentProvider
	Now      *time.Time
}

// NewTestApp wires the full webapi against in-memory collaborators with a
// controllable clock.
func NewTestApp() *TestApp {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	store := memorylinks.New(clock)
	payments := mockpayment.NewMockPaymentProvider()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.App{Env: "test", Currency: "SSP"}

	linkSvc := linksvc.New(store, logger, clock)
	checkoutSvc := checkoutsvc.New(store, payments, cfg.Currency, logger, clock)

	return &TestApp{
		App:      webapi.NewApp(linkSvc, checkoutSvc, cfg),
		Store:    store,
		Payments: payments,
		Now:      &now,
	}
}

// MakeRequest performs a request against the app with an optional JSON body.
func (ta *TestApp) MakeRequest(method, target, body string) *http.Response {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	resp, err := ta.App.Test(req, -1)
	if err != nil {
		panic(err)
	}
	return resp
}
