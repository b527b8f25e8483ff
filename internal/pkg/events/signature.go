package events

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/yigit/coursecraft/internal/pkg/apperrors"
)

// SignatureHeader carries the HMAC of a webhook body
const SignatureHeader = "X-Signature"

const signaturePrefix = "sha256="

// Sign returns the header value for body: "sha256=" followed by the hex
// HMAC-SHA256 of the body under key.
func Sign(key, body []byte) string {
	mac := hmac.New(sha256.New, key)
	mac.Write(body)
	return signaturePrefix + hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature checks header against body. An empty key disables the check.
func VerifySignature(key, body []byte, header string) error {
	if len(key) == 0 {
		return nil
	}
	if !strings.HasPrefix(header, signaturePrefix) {
		return apperrors.ErrInvalidSignature
	}

	got, err := hex.DecodeString(strings.TrimPrefix(header, signaturePrefix))
	if err != nil {
		return apperrors.ErrInvalidSignature
	}

	mac := hmac.New(sha256.New, key)
	mac.Write(body)
	if !hmac.Equal(got, mac.Sum(nil)) {
		return apperrors.ErrInvalidSignature
	}
	return nil
}
