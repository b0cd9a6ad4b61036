package lnpulse

import (
	"net/url"
	"strconv"
	"time"
)

// InvoiceStatus is the lifecycle state of an invoice.
type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "pending"
	InvoiceStatusSettled InvoiceStatus = "settled"
	InvoiceStatusExpired InvoiceStatus = "expired"
)

// PaymentStatus is the lifecycle state of an outgoing payment.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusSettled PaymentStatus = "settled"
	PaymentStatusFailed  PaymentStatus = "failed"
)

// Wallet is the authenticated wallet.
type Wallet struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Currency  string    `json:"currency"`
	Balance   int64     `json:"balance"`
	CreatedAt time.Time `json:"createdAt"`
}

// Balance is the wallet balance in millisatoshis.
type Balance struct {
	Balance int64 `json:"balance"`
}

// UpdateWalletParams renames the wallet.
type UpdateWalletParams struct {
	Name string `json:"name" validate:"required"`
}

// Invoice is a BOLT11 invoice owned by the wallet.
type Invoice struct {
	Number         int64         `json:"number"`
	PaymentHash    string        `json:"paymentHash"`
	PaymentRequest string        `json:"paymentRequest"`
	Amount         int64         `json:"amount"`
	Memo           string        `json:"memo,omitempty"`
	Status         InvoiceStatus `json:"status"`
	Preimage       string        `json:"preimage,omitempty"`
	CreatedAt      time.Time     `json:"createdAt"`
	ExpiresAt      time.Time     `json:"expiresAt"`
	SettledAt      *time.Time    `json:"settledAt,omitempty"`
}

// CreateInvoiceParams describes a new invoice. Amount is in millisatoshis.
type CreateInvoiceParams struct {
	Amount          int64  `json:"amount" validate:"required,gt=0"`
	Memo            string `json:"memo,omitempty"`
	DescriptionHash string `json:"descriptionHash,omitempty"`
	// Expiry is the invoice lifetime in seconds. Zero uses the server
	// default.
	Expiry int `json:"expiry,omitempty" validate:"gte=0"`
}

// Payment is an outgoing payment.
type Payment struct {
	Number      int64         `json:"number"`
	PaymentHash string        `json:"paymentHash"`
	Preimage    string        `json:"preimage,omitempty"`
	Invoice     string        `json:"invoice,omitempty"`
	Amount      int64         `json:"amount"`
	Fee         int64         `json:"fee"`
	Status      PaymentStatus `json:"status"`
	CreatedAt   time.Time     `json:"createdAt"`
	SettledAt   *time.Time    `json:"settledAt,omitempty"`
}

// SendPaymentParams pays a BOLT11 invoice. Amount is only required for
// zero-amount invoices.
type SendPaymentParams struct {
	Invoice string `json:"invoice" validate:"required"`
	Amount  int64  `json:"amount,omitempty" validate:"gte=0"`
}

// SendToAddressParams pays a lightning address.
type SendToAddressParams struct {
	Address string `json:"address" validate:"required"`
	Amount  int64  `json:"amount" validate:"required,gt=0"`
	Comment string `json:"comment,omitempty"`
}

// Transaction is one wallet ledger entry.
type Transaction struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Amount      int64     `json:"amount"`
	Fee         int64     `json:"fee"`
	PaymentHash string    `json:"paymentHash,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// LightningAddress is a receiving address attached to the wallet.
type LightningAddress struct {
	Address     string    `json:"address"`
	Description string    `json:"description,omitempty"`
	MinSendable int64     `json:"minSendable"`
	MaxSendable int64     `json:"maxSendable"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CreateAddressParams registers a new lightning address.
type CreateAddressParams struct {
	Address     string `json:"address" validate:"required"`
	Description string `json:"description,omitempty"`
	MinSendable int64  `json:"minSendable,omitempty" validate:"gte=0"`
	MaxSendable int64  `json:"maxSendable,omitempty" validate:"gte=0"`
}

// UpdateAddressParams patches an existing lightning address. Nil fields are
// left unchanged.
type UpdateAddressParams struct {
	Description *string `json:"description,omitempty"`
	MinSendable *int64  `json:"minSendable,omitempty"`
	MaxSendable *int64  `json:"maxSendable,omitempty"`
}

// Webhook is a subscription delivering wallet events to a URL.
type Webhook struct {
	ID        string    `json:"id"`
	URL       string    `json:"url"`
	Events    []string  `json:"events"`
	Secret    string    `json:"secret,omitempty"`
	Enabled   bool      `json:"enabled"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateWebhookParams registers a new webhook.
type CreateWebhookParams struct {
	URL    string   `json:"url" validate:"required,url"`
	Events []string `json:"events" validate:"required,min=1"`
}

// UpdateWebhookParams patches a webhook. Nil fields are left unchanged.
type UpdateWebhookParams struct {
	URL     *string  `json:"url,omitempty"`
	Events  []string `json:"events,omitempty"`
	Enabled *bool    `json:"enabled,omitempty"`
}

// APIKey is a credential for the wallet. Key is only populated in the
// response to Create.
type APIKey struct {
	ID         string     `json:"id"`
	Label      string     `json:"label"`
	Key        string     `json:"key,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	LastUsedAt *time.Time `json:"lastUsedAt,omitempty"`
}

// CreateAPIKeyParams describes a new API key.
type CreateAPIKeyParams struct {
	Label string `json:"label" validate:"required"`
}

// ListParams controls pagination for list endpoints.
type ListParams struct {
	// Limit caps the number of returned items. Zero uses the server
	// default.
	Limit int
	// After resumes listing after the given item identifier.
	After string
}

// query renders the pagination parameters as a query-string suffix, or an
// empty string when unset.
func (p ListParams) query() string {
	q := url.Values{}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.After != "" {
		q.Set("after", p.After)
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

// WatchParams controls a watch stream.
type WatchParams struct {
	// Timeout asks the server to close the stream after the given number
	// of seconds. Zero disables the server-side timeout and the stream
	// blocks until an event arrives or the context is cancelled.
	Timeout int
}

// query renders the watch parameters as a query-string suffix.
func (p WatchParams) query() string {
	if p.Timeout <= 0 {
		return ""
	}
	return "?timeout=" + strconv.Itoa(p.Timeout)
}
