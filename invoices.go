package lnpulse

import (
	"context"
	"net/url"
)

// InvoicesService creates, lists, and watches invoices.
type InvoicesService struct {
	client *Client
}

// Create registers a new invoice.
func (s *InvoicesService) Create(ctx context.Context, params CreateInvoiceParams) (*Invoice, error) {
	if err := validateParams(params); err != nil {
		return nil, err
	}
	inv, err := post[Invoice](ctx, s.client, apiPrefix+"/invoices", params)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

// Get returns one invoice by payment hash.
func (s *InvoicesService) Get(ctx context.Context, paymentHash string) (*Invoice, error) {
	inv, err := get[Invoice](ctx, s.client, apiPrefix+"/invoices/"+url.PathEscape(paymentHash))
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

// List returns invoices, newest first.
func (s *InvoicesService) List(ctx context.Context, params ListParams) ([]Invoice, error) {
	return get[[]Invoice](ctx, s.client, apiPrefix+"/invoices"+params.query())
}

// Watch opens a stream of status events for one invoice. The stream stays
// open until the invoice reaches a final state, the server-side timeout
// fires, or ctx is cancelled.
func (s *InvoicesService) Watch(ctx context.Context, paymentHash string, params WatchParams) (*WatchStream[Invoice], error) {
	path := apiPrefix + "/invoices/" + url.PathEscape(paymentHash) + "/watch" + params.query()
	st, err := s.client.stream(ctx, path, true)
	if err != nil {
		return nil, err
	}
	return &WatchStream[Invoice]{stream: st}, nil
}
