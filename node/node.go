package node

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"

	"github.com/benthecarman/ldk-server-cli/data"
	"github.com/benthecarman/ldk-server-cli/keys"
	"github.com/companieshouse/chs.go/log"
)

// Paths of the node control API endpoints this client calls
const (
	listPaymentsPath          = "/ListPayments"
	getPaymentDetailsPath     = "/GetPaymentDetails"
	listForwardedPaymentsPath = "/ListForwardedPayments"
)

// InvalidNodeAPIResponse is returned when an invalid status is returned from the node api
type InvalidNodeAPIResponse struct {
	status int
}

// Error provides a consistent error when receiving an invalid response status from the node api
func (e *InvalidNodeAPIResponse) Error() string {
	return fmt.Sprintf("invalid status returned from node api: [%d]", e.status)
}

// Fetcher provides an interface by which to fetch records from the node control API
type Fetcher interface {
	ListPayments(nodeAPIURL string, HTTPClient *http.Client, apiKey string, pageToken *data.PageToken) (data.ListPaymentsResponse, int, error)
	GetPaymentDetails(nodeAPIURL string, HTTPClient *http.Client, apiKey string, paymentID string) (data.GetPaymentDetailsResponse, int, error)
	ListForwardedPayments(nodeAPIURL string, HTTPClient *http.Client, apiKey string, pageToken *data.PageToken) (data.ListForwardedPaymentsResponse, int, error)
}

// Fetch implements the Fetcher interface
type Fetch struct{}

// New returns a new implementation of the Fetcher interface
func New() *Fetch {

	return &Fetch{}
}

// ListPayments executes a ListPayments request against the node API,
// resuming from pageToken when one is supplied
func (impl *Fetch) ListPayments(nodeAPIURL string, HTTPClient *http.Client, apiKey string, pageToken *data.PageToken) (data.ListPaymentsResponse, int, error) {
	var r data.ListPaymentsResponse

	log.Trace("POST request to the node api to list payments", log.Data{keys.Request: nodeAPIURL + listPaymentsPath})

	statusCode, err := impl.post(nodeAPIURL+listPaymentsPath, HTTPClient, apiKey, data.ListPaymentsRequest{PageToken: pageToken}, &r)
	return r, statusCode, err
}

// GetPaymentDetails executes a GetPaymentDetails request against the node API
func (impl *Fetch) GetPaymentDetails(nodeAPIURL string, HTTPClient *http.Client, apiKey string, paymentID string) (data.GetPaymentDetailsResponse, int, error) {
	var r data.GetPaymentDetailsResponse

	log.Trace("POST request to the node api to get payment details", log.Data{keys.Request: nodeAPIURL + getPaymentDetailsPath, keys.PaymentID: paymentID})

	statusCode, err := impl.post(nodeAPIURL+getPaymentDetailsPath, HTTPClient, apiKey, data.GetPaymentDetailsRequest{PaymentID: paymentID}, &r)
	return r, statusCode, err
}

// ListForwardedPayments executes a ListForwardedPayments request against the node API
func (impl *Fetch) ListForwardedPayments(nodeAPIURL string, HTTPClient *http.Client, apiKey string, pageToken *data.PageToken) (data.ListForwardedPaymentsResponse, int, error) {
	var r data.ListForwardedPaymentsResponse

	log.Trace("POST request to the node api to list forwarded payments", log.Data{keys.Request: nodeAPIURL + listForwardedPaymentsPath})

	statusCode, err := impl.post(nodeAPIURL+listForwardedPaymentsPath, HTTPClient, apiKey, data.ListForwardedPaymentsRequest{PageToken: pageToken}, &r)
	return r, statusCode, err
}

// post sends a JSON request body to the given endpoint and decodes the JSON
// response into response. Any non-OK status yields an InvalidNodeAPIResponse.
func (impl *Fetch) post(url string, HTTPClient *http.Client, apiKey string, request interface{}, response interface{}) (int, error) {

	body, err := json.Marshal(request)
	if err != nil {
		return 0, err
	}

	req, err := http.NewRequest("POST", url, bytes.NewReader(body))
	if err != nil {
		return 0, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	res, err := HTTPClient.Do(req)
	if err != nil {
		return 500, err
	}

	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return res.StatusCode, &InvalidNodeAPIResponse{res.StatusCode}
	}

	responseBody, err := ioutil.ReadAll(res.Body)
	if err != nil {
		return res.StatusCode, err
	}

	if err := json.Unmarshal(responseBody, response); err != nil {
		return res.StatusCode, err
	}

	return res.StatusCode, nil
}
