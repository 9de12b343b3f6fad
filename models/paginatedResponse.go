package models

import (
	"github.com/benthecarman/ldk-server-cli/data"
)

// PaginatedResponse wraps one page of a listing for display. The order of
// List is the server-provided order and must not be disturbed. NextPageToken
// holds the page cursor formatted as "token:index"; when the server reports
// no further pages the field is omitted from serialized output rather than
// rendered empty.
type PaginatedResponse[T any] struct {
	List          []T     `json:"list"`
	NextPageToken *string `json:"next_page_token,omitempty"`
}

// PaymentListing is a page of display payments
type PaymentListing = PaginatedResponse[Payment]

// ForwardedPaymentListing is a page of forwarded payments, passed through as
// received from the node API
type ForwardedPaymentListing = PaginatedResponse[data.ForwardedPayment]

// PaymentDetails is the display form of a payment details lookup. Payment is
// omitted from serialized output when no payment was found.
type PaymentDetails struct {
	Payment *Payment `json:"payment,omitempty"`
}
