package vision

import (
	"encoding/json"
	"errors"
	"io"
	"strings"
)

// Normalize turns raw model text into a type-pure Record. It never fails: a
// response with no JSON object, or one that does not parse, degrades to an
// all-null record. Malformed output is an expected outcome of a generative
// model, not an exceptional one.
//
// The candidate object is the substring from the first '{' to the last '}'.
// The model is prompted to return only JSON but may still wrap it in prose;
// the bracket scan tolerates wrapper text without a full JSON scanner.
func Normalize(raw string) Record {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end < start {
		return Record{}
	}

	// UseNumber preserves the model's literal decimal text, so a numeric
	// amount like 250.5 becomes exactly "250.5".
	dec := json.NewDecoder(strings.NewReader(raw[start : end+1]))
	dec.UseNumber()

	var obj map[string]any
	if err := dec.Decode(&obj); err != nil {
		return Record{}
	}
	// The candidate must be exactly one JSON object. Trailing content means
	// the scan grabbed more than an object, so the candidate as a whole is
	// malformed.
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return Record{}
	}

	// One rule per field. Empty string, JSON null, absent key, and any
	// unexpected type all normalize to nil.
	var rec Record
	rec.Vendor = stringField(obj, "vendor") // no trimming or case changes
	rec.Date = stringField(obj, "date")     // passed through as received
	rec.Amount = amountField(obj)
	if cur := stringField(obj, "currency"); cur != nil {
		upper := strings.ToUpper(*cur)
		rec.Currency = &upper
	}
	return rec
}

func stringField(obj map[string]any, key string) *string {
	s, ok := obj[key].(string)
	if !ok || s == "" {
		return nil
	}
	return &s
}

// amountField additionally accepts JSON numbers, coerced to their canonical
// decimal string form.
func amountField(obj map[string]any) *string {
	switch v := obj["amount"].(type) {
	case string:
		if v == "" {
			return nil
		}
		return &v
	case json.Number:
		s := v.String()
		return &s
	default:
		return nil
	}
}
