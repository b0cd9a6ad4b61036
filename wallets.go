package lnpulse

import "context"

// WalletsService operates on the wallet the credential is bound to.
type WalletsService struct {
	client *Client
}

// Get returns the authenticated wallet.
func (s *WalletsService) Get(ctx context.Context) (*Wallet, error) {
	w, err := get[Wallet](ctx, s.client, apiPrefix+"/wallet")
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// Update renames the wallet.
func (s *WalletsService) Update(ctx context.Context, params UpdateWalletParams) (*Wallet, error) {
	if err := validateParams(params); err != nil {
		return nil, err
	}
	w, err := patch[Wallet](ctx, s.client, apiPrefix+"/wallet", params)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// Balance returns the wallet balance in millisatoshis.
func (s *WalletsService) Balance(ctx context.Context) (*Balance, error) {
	b, err := get[Balance](ctx, s.client, apiPrefix+"/wallet/balance")
	if err != nil {
		return nil, err
	}
	return &b, nil
}
