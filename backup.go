package lnpulse

import "context"

// BackupService exports and restores wallet backups.
type BackupService struct {
	client *Client
}

// Export returns the wallet backup payload. The server responds with an
// opaque non-JSON body, which is returned verbatim.
func (s *BackupService) Export(ctx context.Context) (string, error) {
	return get[string](ctx, s.client, apiPrefix+"/backup")
}

// Restore uploads a backup payload previously produced by Export.
func (s *BackupService) Restore(ctx context.Context, payload string) error {
	_, err := post[struct{}](ctx, s.client, apiPrefix+"/backup/restore", payload)
	return err
}
