// Package lnpulse is a typed Go client for the LNPulse Lightning-wallet
// API: wallets, invoices, payments, lightning addresses, transactions,
// webhooks, API keys, backup/restore, and L402 paywall authentication, over
// HTTP and Server-Sent Events.
//
// # Basic Usage
//
//	client, err := lnpulse.New(lnpulse.Config{
//	    BaseURL: "https://api.lnpulse.io",
//	    APIKey:  "lnp_live_...",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	inv, err := client.Invoices.Create(ctx, lnpulse.CreateInvoiceParams{
//	    Amount: 21_000,
//	    Memo:   "coffee",
//	})
//
// # Streaming
//
// Watch endpoints and the wallet-wide event stream decode Server-Sent
// Events into typed records. Streams block until the server delivers a
// record, end with io.EOF, and fail promptly when their context is
// cancelled. Always close them:
//
//	watch, err := client.Invoices.Watch(ctx, inv.PaymentHash, lnpulse.WatchParams{Timeout: 60})
//	if err != nil {
//	    return err
//	}
//	defer watch.Close()
//
//	for {
//	    ev, err := watch.Next()
//	    if errors.Is(err, io.EOF) {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Println(ev.Type, ev.Data.Status)
//	}
//
// # Errors
//
// Non-2xx responses surface as *Error values classified by status code.
// Check them with errors.As or the Is* helpers:
//
//	if lnpulse.IsNotFound(err) {
//	    ...
//	}
package lnpulse
