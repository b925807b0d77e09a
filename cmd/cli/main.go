// Command cli walks a full payment-link lifecycle against the in-memory
// collaborators: create a link, resolve it as a customer would, submit a
// checkout on each rail and show the outcomes.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/junubipay/paylink/infra/provider/memorylinks"
	"github.com/junubipay/paylink/infra/provider/mockpayment"
	"github.com/junubipay/paylink/pkg/domain/checkout"
	"github.com/junubipay/paylink/pkg/domain/link"
	checkoutsvc "github.com/junubipay/paylink/pkg/service/checkout"
	linksvc "github.com/junubipay/paylink/pkg/service/link"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	ctx := context.Background()

	store := memorylinks.New(nil)
	payments := mockpayment.NewMockPaymentProvider()
	linkSvc := linksvc.New(store, logger, nil)
	checkoutSvc := checkoutsvc.New(store, payments, "SSP", logger, nil)

	header := color.New(color.FgCyan, color.Bold)
	ok := color.New(color.FgGreen)
	warn := color.New(color.FgYellow)

	header.Println("== Creating a payment link ==")
	expiry := time.Now().Add(24 * time.Hour)
	created, err := linkSvc.Create(ctx, link.CreateInput{
		Title:             "Invoice #1",
		Description:       "Service fee",
		AllowCustomAmount: false,
		Amount:            "500",
		ExpiresAt:         &expiry,
		AllowedMethods:    []link.PaymentMethod{link.MethodMTNMoMo, link.MethodDigicash},
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "create failed:", err)
		os.Exit(1)
	}
	ok.Printf("created %s (%s), status %s\n", created.Title, created.ID, linkSvc.StatusOf(created))

	header.Println("== Customer resolves the link ==")
	sess, err := checkoutSvc.Start(ctx, created.ID)
	if err != nil {
		fmt.Fprintln(os.Stderr, "resolve failed:", err)
		os.Exit(1)
	}
	ok.Printf("session %s is %s, method preselected: %s\n",
		sess.ID(), sess.State(), sess.SelectedMethod())

	header.Println("== Customer pays with MTN MoMo ==")
	err = checkoutSvc.Submit(ctx, sess, checkout.CustomerInput{
		Name:        "Akech Deng",
		PhoneNumber: "+211 912 345 678",
		Email:       "akech@example.com",
	}, "")
	if err != nil {
		fmt.Fprintln(os.Stderr, "submit failed:", err)
		os.Exit(1)
	}
	ok.Printf("state %s, transaction %s\n", sess.State(), sess.TransactionID())

	header.Println("== Second customer pays with Digicash ==")
	sess2, err := checkoutSvc.Start(ctx, created.ID)
	if err != nil {
		fmt.Fprintln(os.Stderr, "resolve failed:", err)
		os.Exit(1)
	}
	if err := sess2.SelectMethod(link.MethodDigicash); err != nil {
		fmt.Fprintln(os.Stderr, "select method failed:", err)
		os.Exit(1)
	}
	err = checkoutSvc.Submit(ctx, sess2, checkout.CustomerInput{
		Name:        "Nyandeng Garang",
		PhoneNumber: "+211923456789",
	}, "")
	if err != nil {
		fmt.Fprintln(os.Stderr, "submit failed:", err)
		os.Exit(1)
	}
	warn.Printf("state %s (provider confirms asynchronously), transaction %s\n",
		sess2.State(), sess2.TransactionID())

	refreshed, status, err := linkSvc.Get(ctx, created.ID)
	if err != nil {
		fmt.Fprintln(os.Stderr, "get failed:", err)
		os.Exit(1)
	}
	header.Println("== Link after checkouts ==")
	ok.Printf("status %s, clicks %d\n", status, refreshed.ClickCount)
}
