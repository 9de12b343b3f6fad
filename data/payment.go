package data

// PaymentDirection is the wire enumeration for the direction of a payment.
type PaymentDirection int32

const (
	DirectionInbound  PaymentDirection = 0
	DirectionOutbound PaymentDirection = 1
)

// PaymentStatus is the wire enumeration for the status of a payment.
type PaymentStatus int32

const (
	StatusPending   PaymentStatus = 0
	StatusSucceeded PaymentStatus = 1
	StatusFailed    PaymentStatus = 2
)

var directionNames = map[PaymentDirection]string{
	DirectionInbound:  "INBOUND",
	DirectionOutbound: "OUTBOUND",
}

var statusNames = map[PaymentStatus]string{
	StatusPending:   "PENDING",
	StatusSucceeded: "SUCCEEDED",
	StatusFailed:    "FAILED",
}

// Name returns the canonical textual name of the direction. A code this
// build does not know about resolves to the zero value's name, matching the
// upstream schema's accessor behaviour.
func (d PaymentDirection) Name() string {
	if name, ok := directionNames[d]; ok {
		return name
	}
	return directionNames[DirectionInbound]
}

// Name returns the canonical textual name of the status. A code this build
// does not know about resolves to the zero value's name.
func (s PaymentStatus) Name() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return statusNames[StatusPending]
}

// Payment represents a payment record as returned by the node control API
type Payment struct {
	ID                    string           `json:"id"`
	Kind                  *PaymentKind     `json:"kind,omitempty"`
	AmountMsat            *uint64          `json:"amount_msat,omitempty"`
	FeePaidMsat           *uint64          `json:"fee_paid_msat,omitempty"`
	Direction             PaymentDirection `json:"direction"`
	Status                PaymentStatus    `json:"status"`
	LatestUpdateTimestamp uint64           `json:"latest_update_timestamp"`
}

// PaymentKind is the payment mechanism variant of a payment. The upstream
// API guarantees at most one of the fields is set.
type PaymentKind struct {
	Onchain      *Onchain      `json:"onchain,omitempty"`
	Bolt11       *Bolt11       `json:"bolt11,omitempty"`
	Bolt11Jit    *Bolt11Jit    `json:"bolt11_jit,omitempty"`
	Bolt12Offer  *Bolt12Offer  `json:"bolt12_offer,omitempty"`
	Bolt12Refund *Bolt12Refund `json:"bolt12_refund,omitempty"`
	Spontaneous  *Spontaneous  `json:"spontaneous,omitempty"`
}

// Onchain is an on-chain payment. It carries no fields of its own; presence
// of the record is the signal.
type Onchain struct{}

// Bolt11 is a payment against a BOLT 11 invoice
type Bolt11 struct {
	Hash     string  `json:"hash"`
	Preimage *string `json:"preimage,omitempty"`
	Secret   []byte  `json:"secret,omitempty"`
}

// Bolt11Jit is a BOLT 11 payment received through a just-in-time channel open
type Bolt11Jit struct {
	Hash                       string        `json:"hash"`
	Preimage                   *string       `json:"preimage,omitempty"`
	Secret                     []byte        `json:"secret,omitempty"`
	LspFeeLimits               *LspFeeLimits `json:"lsp_fee_limits,omitempty"`
	CounterpartySkimmedFeeMsat *uint64       `json:"counterparty_skimmed_fee_msat,omitempty"`
}

// LspFeeLimits are the channel-opening fee limits negotiated with the LSP
type LspFeeLimits struct {
	MaxTotalOpeningFeeMsat           *uint64 `json:"max_total_opening_fee_msat,omitempty"`
	MaxProportionalOpeningFeePpmMsat *uint64 `json:"max_proportional_opening_fee_ppm_msat,omitempty"`
}

// Bolt12Offer is a payment against a BOLT 12 offer
type Bolt12Offer struct {
	Hash      *string `json:"hash,omitempty"`
	Preimage  *string `json:"preimage,omitempty"`
	Secret    []byte  `json:"secret,omitempty"`
	OfferID   string  `json:"offer_id"`
	PayerNote *string `json:"payer_note,omitempty"`
	Quantity  *uint64 `json:"quantity,omitempty"`
}

// Bolt12Refund is a payment against a BOLT 12 refund
type Bolt12Refund struct {
	Hash      *string `json:"hash,omitempty"`
	Preimage  *string `json:"preimage,omitempty"`
	Secret    []byte  `json:"secret,omitempty"`
	PayerNote *string `json:"payer_note,omitempty"`
	Quantity  *uint64 `json:"quantity,omitempty"`
}

// Spontaneous is a payment made without an invoice
type Spontaneous struct {
	Hash     string  `json:"hash"`
	Preimage *string `json:"preimage,omitempty"`
}
