package models

import (
	"github.com/benthecarman/ldk-server-cli/data"
)

// Payment is the display form of a payment record. Enumerations are carried
// as their canonical textual names and opaque byte fields as hex strings so
// the record can be read, grepped and re-supplied as input. Optional fields
// use pointers so that absent values are omitted from serialized output
// entirely; downstream scripts parse presence-of-key as a signal.
type Payment struct {
	ID                    string       `json:"id"`
	Kind                  *PaymentKind `json:"kind,omitempty"`
	AmountMsat            *uint64      `json:"amount_msat,omitempty"`
	FeePaidMsat           *uint64      `json:"fee_paid_msat,omitempty"`
	Direction             string       `json:"direction"`
	Status                string       `json:"status"`
	LatestUpdateTimestamp uint64       `json:"latest_update_timestamp"`
}

// PaymentKind is the display form of the payment mechanism variant. Exactly
// one field is set for a recognized variant; an unset or unrecognized
// variant is represented by omitting the kind altogether.
type PaymentKind struct {
	Onchain      *Onchain      `json:"onchain,omitempty"`
	Bolt11       *Bolt11       `json:"bolt11,omitempty"`
	Bolt11Jit    *Bolt11Jit    `json:"bolt11_jit,omitempty"`
	Bolt12Offer  *Bolt12Offer  `json:"bolt12_offer,omitempty"`
	Bolt12Refund *Bolt12Refund `json:"bolt12_refund,omitempty"`
	Spontaneous  *Spontaneous  `json:"spontaneous,omitempty"`
}

// Onchain is the display form of an on-chain payment
type Onchain struct{}

// Bolt11 is the display form of a BOLT 11 payment. Secret is hex encoded.
type Bolt11 struct {
	Hash     string  `json:"hash"`
	Preimage *string `json:"preimage,omitempty"`
	Secret   *string `json:"secret,omitempty"`
}

// Bolt11Jit is the display form of a BOLT 11 payment received through a
// just-in-time channel open. The LSP fee limits and skimmed fee are carried
// through structurally as received.
type Bolt11Jit struct {
	Hash                       string             `json:"hash"`
	Preimage                   *string            `json:"preimage,omitempty"`
	Secret                     *string            `json:"secret,omitempty"`
	LspFeeLimits               *data.LspFeeLimits `json:"lsp_fee_limits,omitempty"`
	CounterpartySkimmedFeeMsat *uint64            `json:"counterparty_skimmed_fee_msat,omitempty"`
}

// Bolt12Offer is the display form of a BOLT 12 offer payment
type Bolt12Offer struct {
	Hash      *string `json:"hash,omitempty"`
	Preimage  *string `json:"preimage,omitempty"`
	Secret    *string `json:"secret,omitempty"`
	OfferID   string  `json:"offer_id"`
	PayerNote *string `json:"payer_note,omitempty"`
	Quantity  *uint64 `json:"quantity,omitempty"`
}

// Bolt12Refund is the display form of a BOLT 12 refund payment
type Bolt12Refund struct {
	Hash      *string `json:"hash,omitempty"`
	Preimage  *string `json:"preimage,omitempty"`
	Secret    *string `json:"secret,omitempty"`
	PayerNote *string `json:"payer_note,omitempty"`
	Quantity  *uint64 `json:"quantity,omitempty"`
}

// Spontaneous is the display form of a spontaneous payment
type Spontaneous struct {
	Hash     string  `json:"hash"`
	Preimage *string `json:"preimage,omitempty"`
}
