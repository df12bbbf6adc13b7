// Package signature verifies Shopify webhook signatures: the base64 encoded
// HMAC-SHA256 of the raw request body keyed by the app's shared secret.
package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"strings"
)

var (
	ErrMissing  = errors.New("signature: missing signature")
	ErrMismatch = errors.New("signature: signature mismatch")
)

// Sign returns the base64 encoded HMAC-SHA256 of body.
func Sign(secret string, body []byte) string {
	return base64.StdEncoding.EncodeToString(digest(secret, body))
}

// Verify checks signature against body. The body must be the exact bytes
// received; a re-encoded payload will not match.
func Verify(secret string, body []byte, signature string) error {
	signature = strings.TrimSpace(signature)
	if signature == "" {
		return ErrMissing
	}
	got, err := base64.StdEncoding.DecodeString(signature)
	if err != nil {
		return ErrMismatch
	}
	if !hmac.Equal(got, digest(secret, body)) {
		return ErrMismatch
	}
	return nil
}

func digest(secret string, body []byte) []byte {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return mac.Sum(nil)
}
