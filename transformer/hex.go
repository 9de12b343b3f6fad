package transformer

import (
	"encoding/hex"
)

// EncodeBytes renders an opaque byte sequence as lowercase hexadecimal with
// no prefix or separators, two characters per byte. It is total over all
// inputs; an empty sequence yields the empty string.
func EncodeBytes(b []byte) string {
	return hex.EncodeToString(b)
}

// encodeSecret hex encodes an optional secret/preimage byte field,
// preserving absence.
func encodeSecret(b []byte) *string {
	if b == nil {
		return nil
	}
	encoded := EncodeBytes(b)
	return &encoded
}
