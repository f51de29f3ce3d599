// Package card defines the resolved virtual-card payload rendered by the
// detail panel. The payload is produced elsewhere (file, caller, surrounding
// application); this package only models and formats it.
package card

import (
	"fmt"
	"time"
)

// Status enumerates the lifecycle states of a virtual card.
type Status string

const (
	StatusActive  Status = "active"
	StatusPaused  Status = "paused"
	StatusDeleted Status = "deleted"
)

// DisplayTimeLayout is the fixed 24-hour layout for the panel timestamp.
const DisplayTimeLayout = "02.01.2006, 15:04:05"

// FieldPlaceholder is shown for number/expiry/code while the issuer has not
// released them.
const FieldPlaceholder = "not available"

// FallbackBillingAddress is displayed when the card carries no billing
// address of its own.
const FallbackBillingAddress = "131 Lupine Drive, Torrington, WY 82240"

// Card is a resolved virtual payment card. Number, Expiry and SecurityCode
// are empty strings until the issuer releases them.
type Card struct {
	ID               string     `json:"id"`
	CreditLimitCents int64      `json:"credit_limit_cents"`
	Status           Status     `json:"status"`
	Number           string     `json:"number,omitempty"`
	Expiry           string     `json:"expiry,omitempty"`
	SecurityCode     string     `json:"security_code,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	DeletedAt        *time.Time `json:"deleted_at,omitempty"`
	BillingAddress   string     `json:"billing_address,omitempty"`
}

// Result is the resolved card-lookup outcome handed to the panel: an
// upstream error message, a card, or neither (nothing to show).
type Result struct {
	Card *Card  `json:"card,omitempty"`
	Err  string `json:"error,omitempty"`
}

// HasFullDetails reports whether number, expiry and security code are all
// present. The payment-form tutorial is only rendered for such cards.
func (c *Card) HasFullDetails() bool {
	return c.Number != "" && c.Expiry != "" && c.SecurityCode != ""
}

// DisplayTime returns the panel timestamp: the deletion time when the card
// was deleted, the creation time otherwise.
func (c *Card) DisplayTime() string {
	t := c.CreatedAt
	if c.DeletedAt != nil {
		t = *c.DeletedAt
	}
	return t.Format(DisplayTimeLayout)
}

// FormatLimit renders the credit limit for the badge next to the identifier.
// Whole-dollar limits drop the cents.
func (c *Card) FormatLimit() string {
	dollars := c.CreditLimitCents / 100
	cents := c.CreditLimitCents % 100
	if cents == 0 {
		return fmt.Sprintf("$%d", dollars)
	}
	return fmt.Sprintf("$%d.%02d", dollars, cents)
}

// DisplayBillingAddress returns the card's billing address, or the fixed
// fallback when absent.
func (c *Card) DisplayBillingAddress() string {
	if c.BillingAddress == "" {
		return FallbackBillingAddress
	}
	return c.BillingAddress
}
