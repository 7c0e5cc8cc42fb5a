package vision

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// recordSchemaJSON describes the shape Normalize is expected to emit: four
// nullable string fields, with the documented format per field.
const recordSchemaJSON = `{
	"type": "object",
	"additionalProperties": false,
	"required": ["vendor", "date", "amount", "currency"],
	"properties": {
		"vendor":   {"type": ["string", "null"]},
		"date":     {"type": ["string", "null"], "pattern": "^\\d{4}-\\d{2}-\\d{2}$"},
		"amount":   {"type": ["string", "null"], "pattern": "^-?\\d+(\\.\\d+)?$"},
		"currency": {"type": ["string", "null"], "pattern": "^[A-Z]{3}$"}
	}
}`

var recordSchema = jsonschema.MustCompileString("record.json", recordSchemaJSON)

// CheckRecord validates a normalized record against the wire schema. The
// check is advisory: Normalize passes date and currency values through
// without format enforcement, so a mismatch only means the model answered in
// an unusual shape. Callers log the result; they never alter the record.
func CheckRecord(rec Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("decode record: %w", err)
	}
	return recordSchema.Validate(v)
}
