package lnpulse

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"
)

func TestParseL402Challenge(t *testing.T) {
	header := `L402 macaroon="AgEEbHNhdA==", invoice="lnbc100n1..."`
	challenge, err := ParseL402Challenge(header)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if challenge.Macaroon != "AgEEbHNhdA==" {
		t.Errorf("macaroon = %q, want %q", challenge.Macaroon, "AgEEbHNhdA==")
	}
	if challenge.Invoice != "lnbc100n1..." {
		t.Errorf("invoice = %q, want %q", challenge.Invoice, "lnbc100n1...")
	}
}

func TestParseL402Challenge_LegacyScheme(t *testing.T) {
	challenge, err := ParseL402Challenge(`LSAT macaroon="m", invoice="i"`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if challenge.Macaroon != "m" || challenge.Invoice != "i" {
		t.Errorf("challenge = %+v, want macaroon=m invoice=i", challenge)
	}
}

func TestParseL402Challenge_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"wrong scheme", `Bearer realm="api"`},
		{"missing invoice", `L402 macaroon="m"`},
		{"missing macaroon", `L402 invoice="i"`},
		{"empty", ``},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseL402Challenge(tt.header); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}

func TestL402Token_Authorization(t *testing.T) {
	token := L402Token{Macaroon: "AgEEbHNhdA==", Preimage: "deadbeef"}
	want := "L402 AgEEbHNhdA==:deadbeef"
	if got := token.Authorization(); got != want {
		t.Errorf("Authorization() = %q, want %q", got, want)
	}
}

func TestVerifyPreimage(t *testing.T) {
	preimage := []byte("secret-preimage-value-0123456789")
	hash := sha256.Sum256(preimage)

	ok, err := VerifyPreimage(hex.EncodeToString(preimage), hex.EncodeToString(hash[:]))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Error("expected the preimage to verify")
	}

	ok, err = VerifyPreimage(hex.EncodeToString(preimage), hex.EncodeToString(make([]byte, 32)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("expected a mismatched hash to fail verification")
	}

	if _, err := VerifyPreimage("not-hex", "00"); err == nil {
		t.Error("expected an error for a non-hex preimage")
	}
}
