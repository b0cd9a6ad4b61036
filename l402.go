package lnpulse

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// l402Scheme is the authentication scheme name used in challenge and
// Authorization headers. Servers predating the rename may still send "LSAT";
// both are accepted when parsing.
const l402Scheme = "L402"

// L402Challenge is a parsed paywall challenge from a 402 response's
// WWW-Authenticate header. The caller pays the invoice, then combines the
// macaroon with the payment preimage into an L402Token.
type L402Challenge struct {
	// Macaroon is the base64-encoded credential to present after payment.
	Macaroon string
	// Invoice is the BOLT11 invoice gating access.
	Invoice string
}

// ParseL402Challenge parses a WWW-Authenticate header of the form
//
//	L402 macaroon="...", invoice="..."
func ParseL402Challenge(header string) (*L402Challenge, error) {
	value := strings.TrimSpace(header)

	var rest string
	switch {
	case strings.HasPrefix(value, l402Scheme+" "):
		rest = value[len(l402Scheme)+1:]
	case strings.HasPrefix(value, "LSAT "):
		rest = value[len("LSAT "):]
	default:
		return nil, fmt.Errorf("lnpulse: not an L402 challenge: %q", header)
	}

	var challenge L402Challenge
	for _, part := range strings.Split(rest, ",") {
		key, val, found := strings.Cut(strings.TrimSpace(part), "=")
		if !found {
			continue
		}
		val = strings.Trim(val, `"`)
		switch key {
		case "macaroon":
			challenge.Macaroon = val
		case "invoice":
			challenge.Invoice = val
		}
	}

	if challenge.Macaroon == "" || challenge.Invoice == "" {
		return nil, fmt.Errorf("lnpulse: incomplete L402 challenge: %q", header)
	}
	return &challenge, nil
}

// L402Token is a paid paywall credential: the challenge macaroon paired
// with the preimage obtained by paying the challenge invoice.
type L402Token struct {
	Macaroon string
	Preimage string
}

// Authorization returns the Authorization header value for the token.
func (t *L402Token) Authorization() string {
	return l402Scheme + " " + t.Macaroon + ":" + t.Preimage
}

// VerifyPreimage reports whether the hex preimage hashes to the hex payment
// hash, confirming the invoice for that hash was actually paid.
func VerifyPreimage(preimage, paymentHash string) (bool, error) {
	raw, err := hex.DecodeString(preimage)
	if err != nil {
		return false, fmt.Errorf("lnpulse: decode preimage: %w", err)
	}
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:]) == strings.ToLower(paymentHash), nil
}
