package sec

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

/*
TestNewTokenService_RejectsShortSecret verifies the minimum secret length.
*/
func TestNewTokenService_RejectsShortSecret(t *testing.T) {
	_, err := NewTokenService("too-short", "inkwell.dev")
	assert.Error(t, err)
}

/*
TestTokenService_RoundTrip verifies that a minted visitor token verifies
back to the same claims.
*/
func TestTokenService_RoundTrip(t *testing.T) {
	service, err := NewTokenService(testSecret, "inkwell.dev")
	require.NoError(t, err)

	token, err := service.GenerateVisitorToken("visitor-123", "fp-abc", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "visitor-123", claims.VisitorID)
	assert.Equal(t, "fp-abc", claims.Fingerprint)
	assert.Equal(t, "inkwell.dev", claims.Issuer)
	assert.Equal(t, "visitor-123", claims.Subject)
}

/*
TestTokenService_RejectsTamperedToken verifies signature validation.
*/
func TestTokenService_RejectsTamperedToken(t *testing.T) {
	service, err := NewTokenService(testSecret, "inkwell.dev")
	require.NoError(t, err)

	token, err := service.GenerateVisitorToken("visitor-123", "", time.Hour)
	require.NoError(t, err)

	// Flip a character in the signature segment.
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	signature := []byte(parts[2])
	if signature[0] == 'A' {
		signature[0] = 'B'
	} else {
		signature[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(signature)

	_, err = service.VerifyToken(tampered)
	assert.Error(t, err)
}

/*
TestTokenService_RejectsExpiredToken verifies expiry enforcement.
*/
func TestTokenService_RejectsExpiredToken(t *testing.T) {
	service, err := NewTokenService(testSecret, "inkwell.dev")
	require.NoError(t, err)

	token, err := service.GenerateVisitorToken("visitor-123", "", -time.Minute)
	require.NoError(t, err)

	_, err = service.VerifyToken(token)
	assert.Error(t, err)
}

/*
TestTokenService_RejectsForeignSecret verifies that tokens minted with a
different secret do not verify.
*/
func TestTokenService_RejectsForeignSecret(t *testing.T) {
	serviceA, err := NewTokenService(testSecret, "inkwell.dev")
	require.NoError(t, err)
	serviceB, err := NewTokenService("fedcba9876543210fedcba9876543210", "inkwell.dev")
	require.NoError(t, err)

	token, err := serviceA.GenerateVisitorToken("visitor-123", "", time.Hour)
	require.NoError(t, err)

	_, err = serviceB.VerifyToken(token)
	assert.Error(t, err)
}

/*
TestFingerprint verifies determinism and input sensitivity of the digest.
*/
func TestFingerprint(t *testing.T) {
	a := Fingerprint("Mozilla/5.0", "en-US", "203.0.113.7")
	b := Fingerprint("Mozilla/5.0", "en-US", "203.0.113.7")
	c := Fingerprint("Mozilla/5.0", "en-US", "203.0.113.8")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 64)
}
