package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerifySignature(t *testing.T) {
	secret := "whsec_test"
	body := []byte(`{"type":"user.created"}`)
	ts := "1724500000"
	sig := ComputeSignature(secret, ts, body)

	t.Run("accepts valid signature", func(t *testing.T) {
		assert.True(t, VerifySignature(secret, ts, body, sig))
	})

	t.Run("accepts first element of comma list", func(t *testing.T) {
		assert.True(t, VerifySignature(secret, ts, body, sig+",v0=garbage"))
	})

	t.Run("rejects tampered body", func(t *testing.T) {
		assert.False(t, VerifySignature(secret, ts, []byte(`{"type":"user.deleted"}`), sig))
	})

	t.Run("rejects tampered timestamp", func(t *testing.T) {
		assert.False(t, VerifySignature(secret, "1724500001", body, sig))
	})

	t.Run("rejects wrong secret", func(t *testing.T) {
		assert.False(t, VerifySignature("whsec_other", ts, body, sig))
	})

	t.Run("rejects empty header or secret", func(t *testing.T) {
		assert.False(t, VerifySignature(secret, ts, body, ""))
		assert.False(t, VerifySignature("", ts, body, sig))
	})
}
