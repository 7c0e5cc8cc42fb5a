package vision

// Record contains the structured fields extracted from one invoice. A nil
// field means the model could not locate that value on the document.
type Record struct {
	Vendor   *string `json:"vendor"`
	Date     *string `json:"date"`     // ISO 8601 calendar date (YYYY-MM-DD)
	Amount   *string `json:"amount"`   // decimal text, no separators or currency symbols
	Currency *string `json:"currency"` // 3-letter ISO 4217 code, upper case
}
