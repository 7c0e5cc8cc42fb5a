package vision

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("CheckRecord", func() {
	It("should accept a well-formed record", func() {
		rec := Record{
			Vendor:   strptr("Acme"),
			Date:     strptr("2024-01-15"),
			Amount:   strptr("250.5"),
			Currency: strptr("USD"),
		}
		Expect(CheckRecord(rec)).To(Succeed())
	})

	It("should accept an all-null record", func() {
		Expect(CheckRecord(Record{})).To(Succeed())
	})

	It("should flag a date that is not in ISO form", func() {
		rec := Record{Date: strptr("January 15, 2024")}
		Expect(CheckRecord(rec)).NotTo(Succeed())
	})

	It("should flag a currency that is not a three-letter code", func() {
		// Normalize upper-cases without validating, so prose survives into
		// the record; the check reports it but the value is kept.
		rec := Record{Currency: strptr("US DOLLARS")}
		Expect(CheckRecord(rec)).NotTo(Succeed())
		Expect(rec.Currency).To(HaveValue(Equal("US DOLLARS")))
	})

	It("should flag a non-numeric amount", func() {
		rec := Record{Amount: strptr("about 250")}
		Expect(CheckRecord(rec)).NotTo(Succeed())
	})
})
