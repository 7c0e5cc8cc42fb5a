package vision

import "math"

const fieldCount = 4

// Score returns the completeness of a record as a percentage: non-null
// fields over the four total, rounded to the nearest integer. The only
// possible values are 0, 25, 50, 75 and 100. This is a completeness proxy,
// not a calibrated probability.
func Score(rec Record) int {
	var found int
	for _, f := range []*string{rec.Vendor, rec.Date, rec.Amount, rec.Currency} {
		if f != nil {
			found++
		}
	}
	return int(math.Round(float64(found) / fieldCount * 100))
}
