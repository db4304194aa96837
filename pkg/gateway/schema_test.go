package gateway

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePayload(t *testing.T) {
	t.Run("should accept a full payload", func(t *testing.T) {
		raw := []byte(`{"prompt":"Hi","user_id":"u1","email":"u1@example.com","name":"User One"}`)
		assert.NoError(t, ValidatePayload(raw))
	})

	t.Run("should accept an empty object", func(t *testing.T) {
		assert.NoError(t, ValidatePayload([]byte(`{}`)))
	})

	t.Run("should accept an empty body", func(t *testing.T) {
		assert.NoError(t, ValidatePayload(nil))
	})

	t.Run("should tolerate unknown fields", func(t *testing.T) {
		raw := []byte(`{"prompt":"Hi","extra":42}`)
		assert.NoError(t, ValidatePayload(raw))
	})

	t.Run("should reject wrongly typed fields", func(t *testing.T) {
		raw := []byte(`{"prompt":123}`)
		err := ValidatePayload(raw)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid payload")
	})

	t.Run("should reject malformed JSON", func(t *testing.T) {
		assert.Error(t, ValidatePayload([]byte(`{"prompt":`)))
	})
}
