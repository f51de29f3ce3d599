package payload

import (
	"os"
	"path/filepath"
	"testing"

	"cardpanel/internal/card"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func writePayload(t *testing.T, res *card.Result) string {
	t.Helper()
	data, err := Encode(res)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "payload.json")
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func TestLoadRoundTrip(t *testing.T) {
	want := Sample()
	path := writePayload(t, want)

	got, err := Load(path)
	require.NoError(t, err)

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("payload mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadErrorPayload(t *testing.T) {
	path := writePayload(t, &card.Result{Err: "card lookup failed"})

	got, err := Load(path)
	require.NoError(t, err)
	require.Nil(t, got.Card)
	require.Equal(t, "card lookup failed", got.Err)
}

func TestLoadRejectsNonUUIDIdentifier(t *testing.T) {
	path := writePayload(t, &card.Result{Card: &card.Card{ID: "card-42"}})

	_, err := Load(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "not a UUID")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestLoadMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "payload.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestSampleHasFullDetails(t *testing.T) {
	res := Sample()
	require.NotNil(t, res.Card)
	require.True(t, res.Card.HasFullDetails())

	_, err := uuid.Parse(res.Card.ID)
	require.NoError(t, err)
}
