package data

import (
	"encoding/json"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	. "github.com/stretchr/testify/assert"
)

func TestUnitEnumNames(t *testing.T) {

	Convey("direction codes resolve to their canonical names", t, func() {
		Equal(t, DirectionInbound.Name(), "INBOUND")
		Equal(t, DirectionOutbound.Name(), "OUTBOUND")
	})

	Convey("status codes resolve to their canonical names", t, func() {
		Equal(t, StatusPending.Name(), "PENDING")
		Equal(t, StatusSucceeded.Name(), "SUCCEEDED")
		Equal(t, StatusFailed.Name(), "FAILED")
	})

	Convey("unknown codes resolve to the zero value's name", t, func() {
		Equal(t, PaymentDirection(7).Name(), "INBOUND")
		Equal(t, PaymentStatus(9).Name(), "PENDING")
	})
}

func TestUnitPaymentDecoding(t *testing.T) {

	Convey("a wire payment with a bolt11 kind decodes its base64 secret bytes", t, func() {
		raw := `{
			"id": "p1",
			"kind": {"bolt11": {"hash": "abc", "secret": "3q0="}},
			"amount_msat": 1000,
			"direction": 1,
			"status": 1,
			"latest_update_timestamp": 1723540515
		}`

		var payment Payment
		err := json.Unmarshal([]byte(raw), &payment)

		So(err, ShouldBeNil)
		So(payment.Kind.Bolt11, ShouldNotBeNil)
		So(payment.Kind.Bolt11.Secret, ShouldResemble, []byte{0xde, 0xad})
		So(payment.Direction, ShouldEqual, DirectionOutbound)
		So(*payment.AmountMsat, ShouldEqual, 1000)
	})

	Convey("a wire payment without a kind decodes with the kind unset", t, func() {
		var payment Payment
		err := json.Unmarshal([]byte(`{"id": "p2", "direction": 0, "status": 0}`), &payment)

		So(err, ShouldBeNil)
		So(payment.Kind, ShouldBeNil)
	})
}
