package handlers

import (
	"github.com/benthecarman/ldk-server-cli/service"
	"github.com/urfave/cli/v2"
)

// Init registers the CLI commands, each dispatching to the supplied service
func Init(svc *service.Service) []*cli.Command {

	return []*cli.Command{
		{
			Name:  "list-payments",
			Usage: "List payments known to the node, one page at a time",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "page-token",
					Usage: "Resume listing from a page token formatted as token:index",
				},
			},
			Action: func(c *cli.Context) error {
				return svc.ListPayments(c.String("page-token"))
			},
		},
		{
			Name:  "payment-details",
			Usage: "Fetch the details of a single payment",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "id",
					Usage:    "Payment id",
					Required: true,
				},
			},
			Action: func(c *cli.Context) error {
				return svc.GetPaymentDetails(c.String("id"))
			},
		},
		{
			Name:  "list-forwarded-payments",
			Usage: "List payments forwarded through the node, one page at a time",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "page-token",
					Usage: "Resume listing from a page token formatted as token:index",
				},
			},
			Action: func(c *cli.Context) error {
				return svc.ListForwardedPayments(c.String("page-token"))
			},
		},
	}
}
