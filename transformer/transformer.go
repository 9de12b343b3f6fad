package transformer

import (
	"fmt"

	"github.com/benthecarman/ldk-server-cli/data"
	"github.com/benthecarman/ldk-server-cli/models"
)

// Transformer provides an interface by which to adapt node API responses
// into display models
type Transformer interface {
	GetPaymentListing(response data.ListPaymentsResponse) models.PaymentListing
	GetPaymentDetails(response data.GetPaymentDetailsResponse) models.PaymentDetails
	GetForwardedPaymentListing(response data.ListForwardedPaymentsResponse) models.ForwardedPaymentListing
}

// Transform implements the Transformer interface
type Transform struct{}

// New returns a new implementation of the Transformer interface
func New() *Transform {

	return &Transform{}
}

// GetPaymentListing adapts a ListPayments response into a display listing,
// normalizing each payment and formatting the page cursor. Server ordering
// is preserved.
func (t *Transform) GetPaymentListing(response data.ListPaymentsResponse) models.PaymentListing {

	list := make([]models.Payment, 0, len(response.Payments))
	for _, payment := range response.Payments {
		list = append(list, NormalizePayment(payment))
	}

	return models.PaymentListing{
		List:          list,
		NextPageToken: FormatPageToken(response.NextPageToken),
	}
}

// GetPaymentDetails adapts a GetPaymentDetails response, omitting the
// payment entirely when none was found
func (t *Transform) GetPaymentDetails(response data.GetPaymentDetailsResponse) models.PaymentDetails {

	if response.Payment == nil {
		return models.PaymentDetails{}
	}

	payment := NormalizePayment(*response.Payment)
	return models.PaymentDetails{Payment: &payment}
}

// GetForwardedPaymentListing adapts a ListForwardedPayments response.
// Forwarded payments need no normalization and map through unchanged.
func (t *Transform) GetForwardedPaymentListing(response data.ListForwardedPaymentsResponse) models.ForwardedPaymentListing {

	list := make([]data.ForwardedPayment, 0, len(response.ForwardedPayments))
	list = append(list, response.ForwardedPayments...)

	return models.ForwardedPaymentListing{
		List:          list,
		NextPageToken: FormatPageToken(response.NextPageToken),
	}
}

// FormatPageToken renders a page cursor as the literal "token:index", or nil
// when there is no cursor. The format is a contract with callers that feed
// the token back in as input and must not change.
func FormatPageToken(token *data.PageToken) *string {
	if token == nil {
		return nil
	}
	formatted := fmt.Sprintf("%s:%d", token.Token, token.Index)
	return &formatted
}

// NormalizePayment converts a raw payment record into its display form:
// direction and status codes become their canonical textual names and the
// payment mechanism variant is rewritten with secret bytes hex encoded.
// Normalization is total; it never fails on a well-formed payment.
func NormalizePayment(payment data.Payment) models.Payment {

	return models.Payment{
		ID:                    payment.ID,
		Kind:                  normalizeKind(payment.Kind),
		AmountMsat:            payment.AmountMsat,
		FeePaidMsat:           payment.FeePaidMsat,
		Direction:             payment.Direction.Name(),
		Status:                payment.Status.Name(),
		LatestUpdateTimestamp: payment.LatestUpdateTimestamp,
	}
}

// normalizeKind dispatches on the payment mechanism variant. An unset
// variant, or a tag this build does not recognize, degrades to an absent
// kind rather than an error; a listing may legitimately contain payments
// with no mechanism assigned yet.
func normalizeKind(kind *data.PaymentKind) *models.PaymentKind {

	if kind == nil {
		return nil
	}

	switch {
	case kind.Onchain != nil:
		return &models.PaymentKind{Onchain: &models.Onchain{}}

	case kind.Bolt11 != nil:
		return &models.PaymentKind{Bolt11: &models.Bolt11{
			Hash:     kind.Bolt11.Hash,
			Preimage: kind.Bolt11.Preimage,
			Secret:   encodeSecret(kind.Bolt11.Secret),
		}}

	case kind.Bolt11Jit != nil:
		return &models.PaymentKind{Bolt11Jit: &models.Bolt11Jit{
			Hash:                       kind.Bolt11Jit.Hash,
			Preimage:                   kind.Bolt11Jit.Preimage,
			Secret:                     encodeSecret(kind.Bolt11Jit.Secret),
			LspFeeLimits:               kind.Bolt11Jit.LspFeeLimits,
			CounterpartySkimmedFeeMsat: kind.Bolt11Jit.CounterpartySkimmedFeeMsat,
		}}

	case kind.Bolt12Offer != nil:
		return &models.PaymentKind{Bolt12Offer: &models.Bolt12Offer{
			Hash:      kind.Bolt12Offer.Hash,
			Preimage:  kind.Bolt12Offer.Preimage,
			Secret:    encodeSecret(kind.Bolt12Offer.Secret),
			OfferID:   kind.Bolt12Offer.OfferID,
			PayerNote: kind.Bolt12Offer.PayerNote,
			Quantity:  kind.Bolt12Offer.Quantity,
		}}

	case kind.Bolt12Refund != nil:
		return &models.PaymentKind{Bolt12Refund: &models.Bolt12Refund{
			Hash:      kind.Bolt12Refund.Hash,
			Preimage:  kind.Bolt12Refund.Preimage,
			Secret:    encodeSecret(kind.Bolt12Refund.Secret),
			PayerNote: kind.Bolt12Refund.PayerNote,
			Quantity:  kind.Bolt12Refund.Quantity,
		}}

	case kind.Spontaneous != nil:
		return &models.PaymentKind{Spontaneous: &models.Spontaneous{
			Hash:     kind.Spontaneous.Hash,
			Preimage: kind.Spontaneous.Preimage,
		}}
	}

	return nil
}
