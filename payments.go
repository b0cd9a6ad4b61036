package lnpulse

import (
	"context"
	"net/url"
)

// PaymentsService sends, lists, and watches payments.
type PaymentsService struct {
	client *Client
}

// Send pays a BOLT11 invoice.
func (s *PaymentsService) Send(ctx context.Context, params SendPaymentParams) (*Payment, error) {
	if err := validateParams(params); err != nil {
		return nil, err
	}
	p, err := post[Payment](ctx, s.client, apiPrefix+"/payments", params)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// SendToAddress pays a lightning address.
func (s *PaymentsService) SendToAddress(ctx context.Context, params SendToAddressParams) (*Payment, error) {
	if err := validateParams(params); err != nil {
		return nil, err
	}
	p, err := post[Payment](ctx, s.client, apiPrefix+"/payments/address", params)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Get returns one payment by payment hash.
func (s *PaymentsService) Get(ctx context.Context, paymentHash string) (*Payment, error) {
	p, err := get[Payment](ctx, s.client, apiPrefix+"/payments/"+url.PathEscape(paymentHash))
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns payments, newest first.
func (s *PaymentsService) List(ctx context.Context, params ListParams) ([]Payment, error) {
	return get[[]Payment](ctx, s.client, apiPrefix+"/payments"+params.query())
}

// Watch opens a stream of status events for one payment. The stream stays
// open until the payment settles or fails, the server-side timeout fires,
// or ctx is cancelled.
func (s *PaymentsService) Watch(ctx context.Context, paymentHash string, params WatchParams) (*WatchStream[Payment], error) {
	path := apiPrefix + "/payments/" + url.PathEscape(paymentHash) + "/watch" + params.query()
	st, err := s.client.stream(ctx, path, true)
	if err != nil {
		return nil, err
	}
	return &WatchStream[Payment]{stream: st}, nil
}
