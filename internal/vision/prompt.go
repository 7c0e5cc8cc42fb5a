package vision

import "time"

// Model sampling configuration. Invoices are heterogeneous free-text
// documents; a rigid output contract plus low-temperature sampling is what
// keeps generative answers structurally parseable.
const (
	defaultModelName = "gemini-1.5-flash"

	modelTemperature     = 0.1
	modelTopP            = 0.95
	modelTopK            = 40
	modelMaxOutputTokens = 1024

	// requestTimeout bounds one model round trip. Exceeding it surfaces as
	// ErrUnavailable, never a crash.
	requestTimeout = 30 * time.Second
)

// extractionPrompt is the single static instruction sent with every document.
// It names exactly four output keys, their formats, and the rule that
// unlocatable fields must be null rather than omitted or guessed.
const extractionPrompt = `You are an expert invoice data extraction system. Your task is to analyze the provided invoice image and extract specific data fields.

INSTRUCTIONS:
1. Carefully examine the entire invoice image
2. Extract the following fields with precision:
   - Vendor Name: The company or business that issued the invoice
   - Invoice Date: The date the invoice was issued (format: YYYY-MM-DD)
   - Total Amount: The final total amount due (numeric value only, no currency symbols)
   - Currency: The currency code (e.g., USD, EUR, GBP, CNY, JPY)

RULES:
- If a field cannot be found or is unclear, use null
- For dates, always convert to YYYY-MM-DD format
- For amounts, extract only the numeric value without thousand separators
- For currency, use standard 3-letter ISO currency codes
- Do NOT include any explanations or additional text

OUTPUT FORMAT:
Return ONLY a valid JSON object with exactly these keys:
{
  "vendor": "string or null",
  "date": "YYYY-MM-DD or null",
  "amount": "number as string or null",
  "currency": "string or null"
}`
