// Package payload reads pre-resolved card payloads. The surrounding
// application (or the user) produces the payload file; no network retrieval
// happens here.
package payload

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"cardpanel/internal/card"

	"github.com/google/uuid"
)

// Load reads a resolved card payload from a JSON file. The card identifier,
// when present, must be a UUID.
func Load(path string) (*card.Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read payload %s: %w", path, err)
	}

	var res card.Result
	if err := json.Unmarshal(data, &res); err != nil {
		return nil, fmt.Errorf("parse payload %s: %w", path, err)
	}

	if res.Card != nil && res.Card.ID != "" {
		if _, err := uuid.Parse(res.Card.ID); err != nil {
			return nil, fmt.Errorf("payload %s: card id %q is not a UUID: %w", path, res.Card.ID, err)
		}
	}

	return &res, nil
}

// Sample returns a demo payload with full card details, suitable for trying
// the panel without a real card.
func Sample() *card.Result {
	created := time.Now().Add(-48 * time.Hour).Truncate(time.Second)
	return &card.Result{
		Card: &card.Card{
			ID:               uuid.NewString(),
			CreditLimitCents: 50000,
			Status:           card.StatusActive,
			Number:           "4111 1111 1111 1111",
			Expiry:           "12/27",
			SecurityCode:     "123",
			CreatedAt:        created,
		},
	}
}

// Encode writes a payload as indented JSON, the format Load expects.
func Encode(res *card.Result) ([]byte, error) {
	return json.MarshalIndent(res, "", "  ")
}
