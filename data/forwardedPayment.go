package data

// ForwardedPayment represents a payment forwarded through the node, as
// returned by the node control API. Forwarded payments need no display
// normalization and are passed through to output as received.
type ForwardedPayment struct {
	PrevChannelID               string  `json:"prev_channel_id"`
	NextChannelID               string  `json:"next_channel_id"`
	PrevUserChannelID           string  `json:"prev_user_channel_id"`
	NextUserChannelID           *string `json:"next_user_channel_id,omitempty"`
	TotalFeeEarnedMsat          *uint64 `json:"total_fee_earned_msat,omitempty"`
	SkimmedFeeMsat              *uint64 `json:"skimmed_fee_msat,omitempty"`
	ClaimFromOnchainTx          bool    `json:"claim_from_onchain_tx"`
	OutboundAmountForwardedMsat *uint64 `json:"outbound_amount_forwarded_msat,omitempty"`
}
