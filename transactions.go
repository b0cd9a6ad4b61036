package lnpulse

import (
	"context"
	"net/url"
)

// TransactionsService lists the wallet ledger.
type TransactionsService struct {
	client *Client
}

// List returns ledger entries, newest first.
func (s *TransactionsService) List(ctx context.Context, params ListParams) ([]Transaction, error) {
	return get[[]Transaction](ctx, s.client, apiPrefix+"/transactions"+params.query())
}

// Get returns one ledger entry.
func (s *TransactionsService) Get(ctx context.Context, id string) (*Transaction, error) {
	tx, err := get[Transaction](ctx, s.client, apiPrefix+"/transactions/"+url.PathEscape(id))
	if err != nil {
		return nil, err
	}
	return &tx, nil
}
