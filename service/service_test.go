package service

import (
	"bytes"
	"errors"
	"net/http"
	"testing"

	"github.com/benthecarman/ldk-server-cli/data"
	"github.com/benthecarman/ldk-server-cli/models"
	"github.com/benthecarman/ldk-server-cli/node"
	"github.com/benthecarman/ldk-server-cli/transformer"
	"github.com/golang/mock/gomock"
	. "github.com/smartystreets/goconvey/convey"
)

const nodeAPIURL = "nodeAPIURL"
const apiKey = "apiKey"

func createMockService(mockNode *node.MockFetcher, mockTransformer *transformer.MockTransformer, out *bytes.Buffer) *Service {

	return &Service{
		Client:      &http.Client{},
		NodeAPIURL:  nodeAPIURL,
		APIKey:      apiKey,
		Node:        mockNode,
		Transformer: mockTransformer,
		Out:         out,
	}
}

// Creates a somewhat mocked out Service instance that importantly uses a real
// Transformer (Transform) allowing a form of integration testing as far as
// the service and transformer are concerned.
func createMockServiceWithRealTransformer(mockNode *node.MockFetcher, out *bytes.Buffer) *Service {

	return &Service{
		Client:      &http.Client{},
		NodeAPIURL:  nodeAPIURL,
		APIKey:      apiKey,
		Node:        mockNode,
		Transformer: transformer.New(),
		Out:         out,
	}
}

func TestUnitListPayments(t *testing.T) {

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	Convey("Successful listing renders the transformed page", t, func() {
		out := &bytes.Buffer{}
		mockNode := node.NewMockFetcher(ctrl)
		mockTransformer := transformer.NewMockTransformer(ctrl)
		svc := createMockService(mockNode, mockTransformer, out)

		response := data.ListPaymentsResponse{Payments: []data.Payment{{ID: "p1"}}}
		token := "xyz:5"
		listing := models.PaymentListing{List: []models.Payment{{ID: "p1", Direction: "OUTBOUND", Status: "SUCCEEDED"}}, NextPageToken: &token}

		mockNode.EXPECT().ListPayments(nodeAPIURL, svc.Client, apiKey, nil).Return(response, 200, nil)
		mockTransformer.EXPECT().GetPaymentListing(response).Return(listing)

		err := svc.ListPayments("")

		So(err, ShouldBeNil)
		So(out.String(), ShouldContainSubstring, `"id": "p1"`)
		So(out.String(), ShouldContainSubstring, `"next_page_token": "xyz:5"`)
	})

	Convey("A supplied page token is parsed and forwarded to the node", t, func() {
		out := &bytes.Buffer{}
		mockNode := node.NewMockFetcher(ctrl)
		mockTransformer := transformer.NewMockTransformer(ctrl)
		svc := createMockService(mockNode, mockTransformer, out)

		expectedToken := &data.PageToken{Token: "xyz", Index: 5}
		mockNode.EXPECT().ListPayments(nodeAPIURL, svc.Client, apiKey, expectedToken).Return(data.ListPaymentsResponse{}, 200, nil)
		mockTransformer.EXPECT().GetPaymentListing(gomock.Any()).Return(models.PaymentListing{List: []models.Payment{}})

		err := svc.ListPayments("xyz:5")

		So(err, ShouldBeNil)
	})

	Convey("A malformed page token fails before any fetch", t, func() {
		out := &bytes.Buffer{}
		mockNode := node.NewMockFetcher(ctrl)
		mockTransformer := transformer.NewMockTransformer(ctrl)
		svc := createMockService(mockNode, mockTransformer, out)

		mockNode.EXPECT().ListPayments(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		err := svc.ListPayments("no-colon-here")

		So(err, ShouldNotBeNil)
		So(out.String(), ShouldBeEmpty)
	})

	Convey("A fetch error is propagated and nothing is rendered", t, func() {
		out := &bytes.Buffer{}
		mockNode := node.NewMockFetcher(ctrl)
		mockTransformer := transformer.NewMockTransformer(ctrl)
		svc := createMockService(mockNode, mockTransformer, out)

		fetchErr := errors.New("connection refused")
		mockNode.EXPECT().ListPayments(nodeAPIURL, svc.Client, apiKey, nil).Return(data.ListPaymentsResponse{}, 500, fetchErr)
		mockTransformer.EXPECT().GetPaymentListing(gomock.Any()).Times(0)

		err := svc.ListPayments("")

		So(err, ShouldEqual, fetchErr)
		So(out.String(), ShouldBeEmpty)
	})

	Convey("Listing through the real transformer renders the full display contract", t, func() {
		out := &bytes.Buffer{}
		mockNode := node.NewMockFetcher(ctrl)
		svc := createMockServiceWithRealTransformer(mockNode, out)

		amount := uint64(1000)
		response := data.ListPaymentsResponse{
			Payments: []data.Payment{
				{
					ID:         "p1",
					Kind:       &data.PaymentKind{Bolt11: &data.Bolt11{Hash: "abc", Secret: []byte{0xde, 0xad}}},
					AmountMsat: &amount,
					Direction:  data.DirectionOutbound,
					Status:     data.StatusSucceeded,
				},
				{ID: "p2"},
			},
			NextPageToken: &data.PageToken{Token: "xyz", Index: 5},
		}

		mockNode.EXPECT().ListPayments(nodeAPIURL, svc.Client, apiKey, nil).Return(response, 200, nil)

		err := svc.ListPayments("")

		So(err, ShouldBeNil)
		So(out.String(), ShouldContainSubstring, `"secret": "dead"`)
		So(out.String(), ShouldContainSubstring, `"direction": "OUTBOUND"`)
		So(out.String(), ShouldContainSubstring, `"status": "SUCCEEDED"`)
		So(out.String(), ShouldContainSubstring, `"next_page_token": "xyz:5"`)
		So(out.String(), ShouldNotContainSubstring, `"preimage"`)
	})
}

func TestUnitGetPaymentDetails(t *testing.T) {

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	Convey("A payment that is not found renders an empty record", t, func() {
		out := &bytes.Buffer{}
		mockNode := node.NewMockFetcher(ctrl)
		svc := createMockServiceWithRealTransformer(mockNode, out)

		mockNode.EXPECT().GetPaymentDetails(nodeAPIURL, svc.Client, apiKey, "missing").Return(data.GetPaymentDetailsResponse{}, 200, nil)

		err := svc.GetPaymentDetails("missing")

		So(err, ShouldBeNil)
		So(out.String(), ShouldEqual, "{}\n")
	})

	Convey("A found payment is rendered in display form", t, func() {
		out := &bytes.Buffer{}
		mockNode := node.NewMockFetcher(ctrl)
		svc := createMockServiceWithRealTransformer(mockNode, out)

		response := data.GetPaymentDetailsResponse{
			Payment: &data.Payment{ID: "p3", Direction: data.DirectionInbound, Status: data.StatusFailed},
		}
		mockNode.EXPECT().GetPaymentDetails(nodeAPIURL, svc.Client, apiKey, "p3").Return(response, 200, nil)

		err := svc.GetPaymentDetails("p3")

		So(err, ShouldBeNil)
		So(out.String(), ShouldContainSubstring, `"id": "p3"`)
		So(out.String(), ShouldContainSubstring, `"status": "FAILED"`)
		So(out.String(), ShouldNotContainSubstring, `"kind"`)
	})
}

func TestUnitListForwardedPayments(t *testing.T) {

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	Convey("Forwarded payments render as received with the cursor formatted", t, func() {
		out := &bytes.Buffer{}
		mockNode := node.NewMockFetcher(ctrl)
		svc := createMockServiceWithRealTransformer(mockNode, out)

		fee := uint64(150)
		response := data.ListForwardedPaymentsResponse{
			ForwardedPayments: []data.ForwardedPayment{{PrevChannelID: "chan-in", NextChannelID: "chan-out", TotalFeeEarnedMsat: &fee}},
			NextPageToken:     &data.PageToken{Token: "fwd", Index: 3},
		}
		mockNode.EXPECT().ListForwardedPayments(nodeAPIURL, svc.Client, apiKey, nil).Return(response, 200, nil)

		err := svc.ListForwardedPayments("")

		So(err, ShouldBeNil)
		So(out.String(), ShouldContainSubstring, `"prev_channel_id": "chan-in"`)
		So(out.String(), ShouldContainSubstring, `"total_fee_earned_msat": 150`)
		So(out.String(), ShouldContainSubstring, `"next_page_token": "fwd:3"`)
	})
}

func TestUnitParsePageToken(t *testing.T) {

	Convey("an empty value means no cursor", t, func() {
		token, err := ParsePageToken("")
		So(err, ShouldBeNil)
		So(token, ShouldBeNil)
	})

	Convey("token:index splits into its parts", t, func() {
		token, err := ParsePageToken("xyz:5")
		So(err, ShouldBeNil)
		So(token.Token, ShouldEqual, "xyz")
		So(token.Index, ShouldEqual, 5)
	})

	Convey("only the last colon separates the index, so opaque tokens with colons survive", t, func() {
		token, err := ParsePageToken("a:b:7")
		So(err, ShouldBeNil)
		So(token.Token, ShouldEqual, "a:b")
		So(token.Index, ShouldEqual, 7)
	})

	Convey("a value without a colon is rejected", t, func() {
		_, err := ParsePageToken("xyz")
		So(err, ShouldNotBeNil)
	})

	Convey("a non-numeric index is rejected", t, func() {
		_, err := ParsePageToken("xyz:five")
		So(err, ShouldNotBeNil)
	})
}
