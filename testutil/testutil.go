package testutil

import (
	"net/http"
	"net/http/httptest"
	"net/url"
)

// ListPaymentsResponseFixture is a canned node API ListPayments response
// holding a bolt11 payment with a secret (raw bytes 0xde 0xad, base64 on the
// wire), a payment with no mechanism assigned yet, and a further page.
const ListPaymentsResponseFixture = `{
    "payments": [
        {
            "id": "p1",
            "kind": {
                "bolt11": {
                    "hash": "abc",
                    "secret": "3q0="
                }
            },
            "amount_msat": 1000,
            "direction": 1,
            "status": 1,
            "latest_update_timestamp": 1723540515
        },
        {
            "id": "p2",
            "direction": 0,
            "status": 0,
            "latest_update_timestamp": 1723540520
        }
    ],
    "next_page_token": {
        "token": "xyz",
        "index": 5
    }
}`

// PaymentDetailsResponseFixture is a canned node API GetPaymentDetails
// response for a settled spontaneous payment.
const PaymentDetailsResponseFixture = `{
    "payment": {
        "id": "p3",
        "kind": {
            "spontaneous": {
                "hash": "f00d",
                "preimage": "feed"
            }
        },
        "amount_msat": 2500,
        "fee_paid_msat": 12,
        "direction": 0,
        "status": 1,
        "latest_update_timestamp": 1723541000
    }
}`

// ForwardedPaymentsResponseFixture is a canned node API
// ListForwardedPayments response with a single forward and no further pages.
const ForwardedPaymentsResponseFixture = `{
    "forwarded_payments": [
        {
            "prev_channel_id": "chan-in",
            "next_channel_id": "chan-out",
            "prev_user_channel_id": "42",
            "total_fee_earned_msat": 150,
            "claim_from_onchain_tx": false,
            "outbound_amount_forwarded_msat": 99850
        }
    ]
}`

func CreateMockClient(hasResponseBody bool, status int, responseBody string) *http.Client {

	mockStreamServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if hasResponseBody {
			w.Write([]byte(responseBody))
		}
		w.WriteHeader(status)
	}))

	transport := &http.Transport{
		Proxy: func(req *http.Request) (*url.URL, error) {
			return url.Parse(mockStreamServer.URL)
		},
	}

	httpClient := &http.Client{Transport: transport}

	return httpClient
}
