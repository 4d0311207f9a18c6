package token

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestIssuer() *Issuer {
	return NewIssuer([]byte("test-jwt-secret"), time.Hour)
}

func TestIssueValidate_Roundtrip(t *testing.T) {
	t.Parallel()

	iss := newTestIssuer()

	raw, err := iss.Issue(42, "alice")
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	claims, err := iss.Validate(raw)
	require.NoError(t, err)

	assert.Equal(t, "alice", claims.Username)
	id, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)

	require.NotNil(t, claims.IssuedAt)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, claims.IssuedAt.Time.Add(time.Hour), claims.ExpiresAt.Time, time.Second)
	assert.NotEmpty(t, claims.ID)
}

func TestValidate_Expired(t *testing.T) {
	t.Parallel()

	iss := newTestIssuer()
	issued := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	raw, err := iss.WithClock(func() time.Time { return issued }).Issue(1, "alice")
	require.NoError(t, err)

	// Still valid one minute before expiry.
	_, err = iss.WithClock(func() time.Time { return issued.Add(59 * time.Minute) }).Validate(raw)
	require.NoError(t, err)

	_, err = iss.WithClock(func() time.Time { return issued.Add(61 * time.Minute) }).Validate(raw)
	require.ErrorIs(t, err, ErrExpired)
}

func TestValidate_TamperedSignature(t *testing.T) {
	t.Parallel()

	iss := newTestIssuer()
	raw, err := iss.Issue(1, "alice")
	require.NoError(t, err)

	parts := strings.Split(raw, ".")
	require.Len(t, parts, 3)

	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = iss.Validate(tampered)
	require.ErrorIs(t, err, ErrBadSignature)
}

func TestValidate_WrongSecret(t *testing.T) {
	t.Parallel()

	raw, err := newTestIssuer().Issue(1, "alice")
	require.NoError(t, err)

	_, err = NewIssuer([]byte("other-secret"), time.Hour).Validate(raw)
	require.ErrorIs(t, err, ErrBadSignature)
}

func TestValidate_Malformed(t *testing.T) {
	t.Parallel()

	iss := newTestIssuer()

	for _, raw := range []string{"", "not-a-token", "a.b"} {
		_, err := iss.Validate(raw)
		require.Error(t, err, raw)
		assert.True(t, errors.Is(err, ErrMalformed), "expected malformed for %q, got %v", raw, err)
	}
}
