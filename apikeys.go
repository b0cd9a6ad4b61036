package lnpulse

import (
	"context"
	"net/url"
)

// APIKeysService manages API keys for the wallet.
type APIKeysService struct {
	client *Client
}

// Create issues a new API key. The secret is only present in this response.
func (s *APIKeysService) Create(ctx context.Context, params CreateAPIKeyParams) (*APIKey, error) {
	if err := validateParams(params); err != nil {
		return nil, err
	}
	k, err := post[APIKey](ctx, s.client, apiPrefix+"/keys", params)
	if err != nil {
		return nil, err
	}
	return &k, nil
}

// List returns all API keys, secrets redacted.
func (s *APIKeysService) List(ctx context.Context) ([]APIKey, error) {
	return get[[]APIKey](ctx, s.client, apiPrefix+"/keys")
}

// Revoke permanently disables an API key.
func (s *APIKeysService) Revoke(ctx context.Context, id string) error {
	return del(ctx, s.client, apiPrefix+"/keys/"+url.PathEscape(id))
}
