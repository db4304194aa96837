package gateway

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

const payloadSchema = `{
	"type": "object",
	"properties": {
		"prompt":  {"type": "string"},
		"user_id": {"type": "string"},
		"email":   {"type": "string"},
		"name":    {"type": "string"}
	},
	"additionalProperties": true
}`

var payloadSchemaLoader = gojsonschema.NewStringLoader(payloadSchema)

// ValidatePayload checks the raw JSON body against the payload schema.
// Unknown fields are tolerated; known fields must have the right type.
func ValidatePayload(raw []byte) error {
	if len(raw) == 0 {
		return nil
	}

	result, err := gojsonschema.Validate(payloadSchemaLoader, gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return fmt.Errorf("failed to validate payload: %w", err)
	}

	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return fmt.Errorf("invalid payload: %s", strings.Join(msgs, "; "))
	}

	return nil
}
