package lnpulse

import (
	"fmt"
	"testing"
)

func TestClassify_StatusMapping(t *testing.T) {
	tests := []struct {
		status int
		kind   Kind
	}{
		{400, KindBadRequest},
		{401, KindUnauthorized},
		{403, KindForbidden},
		{404, KindNotFound},
		{409, KindConflict},
		{500, KindGeneric},
		{402, KindGeneric},
		{429, KindGeneric},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d", tt.status), func(t *testing.T) {
			body := []byte(`{"detail":"raw body"}`)
			apiErr := Classify(tt.status, body)
			if apiErr == nil {
				t.Fatal("expected an error, got nil")
			}
			if apiErr.Kind != tt.kind {
				t.Errorf("kind = %v, want %v", apiErr.Kind, tt.kind)
			}
			if apiErr.StatusCode != tt.status {
				t.Errorf("status = %d, want %d", apiErr.StatusCode, tt.status)
			}
			if apiErr.Body != string(body) {
				t.Errorf("body = %q, want it preserved verbatim", apiErr.Body)
			}
		})
	}
}

func TestClassify_SuccessStatuses(t *testing.T) {
	for _, status := range []int{200, 201, 204, 299} {
		if apiErr := Classify(status, nil); apiErr != nil {
			t.Errorf("status %d: expected nil, got %v", status, apiErr)
		}
	}
}

func TestClassify_MessageExtraction(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"message field", `{"message":"wallet not found"}`, "wallet not found"},
		{"error field", `{"error":"no such wallet"}`, "no such wallet"},
		{"message preferred over error", `{"message":"first","error":"second"}`, "first"},
		{"malformed body falls back", `<html>oops</html>`, "Not Found"},
		{"empty body falls back", ``, "Not Found"},
		{"json without either field falls back", `{"detail":"x"}`, "Not Found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr := Classify(404, []byte(tt.body))
			if apiErr.Message != tt.want {
				t.Errorf("message = %q, want %q", apiErr.Message, tt.want)
			}
			if apiErr.Body != tt.body {
				t.Errorf("body = %q, want it preserved verbatim", apiErr.Body)
			}
		})
	}
}

func TestClassify_GenericFallbackUsesStatusText(t *testing.T) {
	apiErr := Classify(500, nil)
	if apiErr.Message != "Internal Server Error" {
		t.Errorf("message = %q, want %q", apiErr.Message, "Internal Server Error")
	}

	apiErr = Classify(599, nil)
	if apiErr.Message != "HTTP 599" {
		t.Errorf("message = %q, want %q", apiErr.Message, "HTTP 599")
	}
}

func TestErrorPredicates(t *testing.T) {
	tests := []struct {
		status int
		check  func(error) bool
	}{
		{400, IsBadRequest},
		{401, IsUnauthorized},
		{403, IsForbidden},
		{404, IsNotFound},
		{409, IsConflict},
	}
	for _, tt := range tests {
		err := error(Classify(tt.status, nil))
		if !tt.check(err) {
			t.Errorf("predicate for %d returned false", tt.status)
		}
		// Wrapping must not break classification.
		if !tt.check(fmt.Errorf("request failed: %w", err)) {
			t.Errorf("predicate for %d returned false on wrapped error", tt.status)
		}
	}
	if IsNotFound(Classify(409, nil)) {
		t.Error("IsNotFound matched a conflict error")
	}
}

func TestError_ErrorString(t *testing.T) {
	apiErr := Classify(404, []byte(`{"message":"no such invoice"}`))
	got := apiErr.Error()
	want := "lnpulse: not_found (HTTP 404): no such invoice"
	if got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
