package lnpulse

import (
	"context"
	"net/url"
)

// WebhooksService manages webhook subscriptions.
type WebhooksService struct {
	client *Client
}

// Create registers a new webhook. The returned webhook carries the signing
// secret; it is not included in later reads.
func (s *WebhooksService) Create(ctx context.Context, params CreateWebhookParams) (*Webhook, error) {
	if err := validateParams(params); err != nil {
		return nil, err
	}
	w, err := post[Webhook](ctx, s.client, apiPrefix+"/webhooks", params)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// List returns all webhooks.
func (s *WebhooksService) List(ctx context.Context) ([]Webhook, error) {
	return get[[]Webhook](ctx, s.client, apiPrefix+"/webhooks")
}

// Get returns one webhook.
func (s *WebhooksService) Get(ctx context.Context, id string) (*Webhook, error) {
	w, err := get[Webhook](ctx, s.client, apiPrefix+"/webhooks/"+url.PathEscape(id))
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// Update patches one webhook.
func (s *WebhooksService) Update(ctx context.Context, id string, params UpdateWebhookParams) (*Webhook, error) {
	w, err := patch[Webhook](ctx, s.client, apiPrefix+"/webhooks/"+url.PathEscape(id), params)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// Delete removes one webhook.
func (s *WebhooksService) Delete(ctx context.Context, id string) error {
	return del(ctx, s.client, apiPrefix+"/webhooks/"+url.PathEscape(id))
}
