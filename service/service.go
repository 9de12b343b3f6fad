package service

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/benthecarman/ldk-server-cli/config"
	"github.com/benthecarman/ldk-server-cli/data"
	"github.com/benthecarman/ldk-server-cli/keys"
	"github.com/benthecarman/ldk-server-cli/node"
	"github.com/benthecarman/ldk-server-cli/transformer"
	"github.com/companieshouse/chs.go/log"
)

// Service wires the node API client and the display transformer together
// behind the CLI commands. Each operation fetches a response from the node,
// adapts it for display and renders it as JSON to Out.
type Service struct {
	Client      *http.Client
	NodeAPIURL  string
	APIKey      string
	Node        node.Fetcher
	Transformer transformer.Transformer
	Out         io.Writer
}

// New creates a new instance of service with the given ldk-server-cli config,
// writing command output to out
func New(cfg *config.Config, out io.Writer) *Service {

	return &Service{
		Client:      &http.Client{Timeout: time.Duration(cfg.HTTPTimeout) * time.Second},
		NodeAPIURL:  cfg.NodeAPIURL,
		APIKey:      cfg.APIKey,
		Node:        node.New(),
		Transformer: transformer.New(),
		Out:         out,
	}
}

// ListPayments fetches one page of payments from the node and renders the
// display listing. pageToken resumes a previous listing and must be the
// "token:index" string a previous page reported, or empty for the first page.
func (svc *Service) ListPayments(pageToken string) error {

	token, err := ParsePageToken(pageToken)
	if err != nil {
		log.Error(err, log.Data{keys.PageToken: pageToken})
		return err
	}

	response, statusCode, err := svc.Node.ListPayments(svc.NodeAPIURL, svc.Client, svc.APIKey, token)
	if err != nil {
		log.Error(err, log.Data{keys.StatusCode: statusCode})
		return err
	}

	return svc.render(svc.Transformer.GetPaymentListing(response))
}

// GetPaymentDetails fetches a single payment by id and renders it. A payment
// that is not found renders as a record with no payment key.
func (svc *Service) GetPaymentDetails(paymentID string) error {

	response, statusCode, err := svc.Node.GetPaymentDetails(svc.NodeAPIURL, svc.Client, svc.APIKey, paymentID)
	if err != nil {
		log.Error(err, log.Data{keys.StatusCode: statusCode, keys.PaymentID: paymentID})
		return err
	}

	return svc.render(svc.Transformer.GetPaymentDetails(response))
}

// ListForwardedPayments fetches one page of forwarded payments from the node
// and renders the listing
func (svc *Service) ListForwardedPayments(pageToken string) error {

	token, err := ParsePageToken(pageToken)
	if err != nil {
		log.Error(err, log.Data{keys.PageToken: pageToken})
		return err
	}

	response, statusCode, err := svc.Node.ListForwardedPayments(svc.NodeAPIURL, svc.Client, svc.APIKey, token)
	if err != nil {
		log.Error(err, log.Data{keys.StatusCode: statusCode})
		return err
	}

	return svc.render(svc.Transformer.GetForwardedPaymentListing(response))
}

// render serializes a display record as indented JSON. Absent optional
// fields are dropped by the display models themselves; render adds no
// policy of its own.
func (svc *Service) render(v interface{}) error {

	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(svc.Out, string(out))
	return err
}

// ParsePageToken splits a "token:index" string back into a page cursor. The
// split is on the last colon so opaque tokens containing colons survive a
// round trip. An empty string means no cursor and yields nil.
func ParsePageToken(value string) (*data.PageToken, error) {

	if value == "" {
		return nil, nil
	}

	i := strings.LastIndex(value, ":")
	if i < 0 {
		return nil, fmt.Errorf("invalid page token '%s': expected token:index", value)
	}

	index, err := strconv.ParseUint(value[i+1:], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid page token index in '%s': %s", value, err)
	}

	return &data.PageToken{Token: value[:i], Index: index}, nil
}
