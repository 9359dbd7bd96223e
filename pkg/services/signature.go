package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// ComputeSignature returns the hex HMAC-SHA256 of timestamp + "." + body
// under the pre-shared webhook secret.
func ComputeSignature(secret, timestamp string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(timestamp))
	mac.Write([]byte("."))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature checks the signature header against the recomputed HMAC
// in constant time. The header may carry a comma-delimited list; only the
// first element counts.
func VerifySignature(secret, timestamp string, body []byte, header string) bool {
	if secret == "" || header == "" {
		return false
	}
	provided := header
	if i := strings.Index(header, ","); i >= 0 {
		provided = header[:i]
	}
	provided = strings.TrimSpace(provided)
	expected := ComputeSignature(secret, timestamp, body)
	return hmac.Equal([]byte(provided), []byte(expected))
}
