package lnpulse

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWebhooks_Create(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v1/webhooks" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var params CreateWebhookParams
		json.NewDecoder(r.Body).Decode(&params)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(Webhook{
			ID:      "wh1",
			URL:     params.URL,
			Events:  params.Events,
			Secret:  "whsec_abc",
			Enabled: true,
		})
	}))
	defer srv.Close()

	c := newTestClient(t, srv)
	hook, err := c.Webhooks.Create(context.Background(), CreateWebhookParams{
		URL:    "https://example.com/hook",
		Events: []string{"invoice.settled"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hook.Secret != "whsec_abc" {
		t.Errorf("secret = %q, want %q", hook.Secret, "whsec_abc")
	}
}

func TestWebhooks_CreateRejectsInvalidParams(t *testing.T) {
	c, err := New(Config{BaseURL: "https://api.lnpulse.io"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := c.Webhooks.Create(context.Background(), CreateWebhookParams{URL: "not a url"}); err == nil {
		t.Fatal("expected a validation error")
	}
	if _, err := c.Webhooks.Create(context.Background(), CreateWebhookParams{URL: "https://example.com"}); err == nil {
		t.Fatal("expected a validation error for empty events")
	}
}

func TestWebhooks_UpdateAndDelete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPatch:
			if r.URL.Path != "/v1/webhooks/wh1" {
				t.Errorf("path = %q, want /v1/webhooks/wh1", r.URL.Path)
			}
			var params UpdateWebhookParams
			json.NewDecoder(r.Body).Decode(&params)
			if params.Enabled == nil || *params.Enabled {
				t.Errorf("enabled = %v, want false", params.Enabled)
			}
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(Webhook{ID: "wh1", Enabled: false})
		case http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		default:
			t.Errorf("unexpected method %s", r.Method)
		}
	}))
	defer srv.Close()

	c := newTestClient(t, srv)
	disabled := false
	hook, err := c.Webhooks.Update(context.Background(), "wh1", UpdateWebhookParams{Enabled: &disabled})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hook.Enabled {
		t.Error("expected the webhook to be disabled")
	}

	if err := c.Webhooks.Delete(context.Background(), "wh1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
