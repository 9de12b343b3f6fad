package data

// PageToken identifies the position at which the next page of a paginated
// listing begins. The token itself is opaque to the client.
type PageToken struct {
	Token string `json:"token"`
	Index uint64 `json:"index"`
}

// ListPaymentsRequest is the request body for the ListPayments endpoint
type ListPaymentsRequest struct {
	PageToken *PageToken `json:"page_token,omitempty"`
}

// ListPaymentsResponse represents a response from the node API ListPayments endpoint
type ListPaymentsResponse struct {
	Payments      []Payment  `json:"payments"`
	NextPageToken *PageToken `json:"next_page_token,omitempty"`
}

// GetPaymentDetailsRequest is the request body for the GetPaymentDetails endpoint
type GetPaymentDetailsRequest struct {
	PaymentID string `json:"payment_id"`
}

// GetPaymentDetailsResponse represents a response from the node API
// GetPaymentDetails endpoint. Payment is unset when no payment matched.
type GetPaymentDetailsResponse struct {
	Payment *Payment `json:"payment,omitempty"`
}

// ListForwardedPaymentsRequest is the request body for the ListForwardedPayments endpoint
type ListForwardedPaymentsRequest struct {
	PageToken *PageToken `json:"page_token,omitempty"`
}

// ListForwardedPaymentsResponse represents a response from the node API
// ListForwardedPayments endpoint
type ListForwardedPaymentsResponse struct {
	ForwardedPayments []ForwardedPayment `json:"forwarded_payments"`
	NextPageToken     *PageToken         `json:"next_page_token,omitempty"`
}
