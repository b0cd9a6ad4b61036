package lnpulse

import (
	"context"
	"net/url"
)

// AddressesService manages the wallet's lightning addresses. Address path
// segments are user-supplied and always percent-encoded.
type AddressesService struct {
	client *Client
}

// List returns all lightning addresses attached to the wallet.
func (s *AddressesService) List(ctx context.Context) ([]LightningAddress, error) {
	return get[[]LightningAddress](ctx, s.client, apiPrefix+"/addresses")
}

// Create registers a new lightning address.
func (s *AddressesService) Create(ctx context.Context, params CreateAddressParams) (*LightningAddress, error) {
	if err := validateParams(params); err != nil {
		return nil, err
	}
	a, err := post[LightningAddress](ctx, s.client, apiPrefix+"/addresses", params)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Get returns one lightning address.
func (s *AddressesService) Get(ctx context.Context, address string) (*LightningAddress, error) {
	a, err := get[LightningAddress](ctx, s.client, apiPrefix+"/addresses/"+url.PathEscape(address))
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Update patches one lightning address.
func (s *AddressesService) Update(ctx context.Context, address string, params UpdateAddressParams) (*LightningAddress, error) {
	a, err := patch[LightningAddress](ctx, s.client, apiPrefix+"/addresses/"+url.PathEscape(address), params)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Delete removes one lightning address.
func (s *AddressesService) Delete(ctx context.Context, address string) error {
	return del(ctx, s.client, apiPrefix+"/addresses/"+url.PathEscape(address))
}
