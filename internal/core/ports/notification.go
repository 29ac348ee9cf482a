package ports

import (
	"context"
)

// NotificationClient delivers outbound customer messages. Implementations
// post to an external messaging gateway; the core only decides when and what
// to send.
type NotificationClient interface {
	// SendOTPMessage dispatches a one-time code to the recipient contact,
	// labelled with the fulfillment unit it completes.
	SendOTPMessage(ctx context.Context, recipient, code, unitLabel string) error

	// SendCustomerUpdate sends a free-form status update to the customer.
	SendCustomerUpdate(ctx context.Context, recipient, subject, body string) error
}
