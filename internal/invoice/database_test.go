package invoice

import (
	"errors"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/vectralogic/invoice-extractor/internal/vision"
)

var _ = Describe("BoltDB", func() {
	var (
		tmpDir string
		dbPath string
		db     *BoltDB
	)

	newTestInvoice := func(id string) *Invoice {
		vendor := "Acme Logistics"
		date := "2024-01-15"
		amount := "250.50"
		currency := "USD"
		return &Invoice{
			ID:    id,
			Owner: "alice",
			Record: vision.Record{
				Vendor:   &vendor,
				Date:     &date,
				Amount:   &amount,
				Currency: &currency,
			},
			Confidence:  100,
			Filename:    id + "_invoice.png",
			ContentType: "image/png",
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
		}
	}

	BeforeEach(func() {
		tmpDir = GinkgoT().TempDir()
		dbPath = filepath.Join(tmpDir, "test.db")
		var err error
		db, err = NewBoltDB(dbPath)
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		if db != nil {
			db.Close()
		}
	})

	Describe("SaveInvoice", func() {
		var (
			inv *Invoice
			err error
		)

		BeforeEach(func() {
			inv = newTestInvoice("test-id")
		})

		JustBeforeEach(func() {
			err = db.SaveInvoice(inv)
		})

		When("saving succeeds", func() {
			It("should not return an error", func() {
				Expect(err).NotTo(HaveOccurred())
			})

			It("should save the invoice to the database", func() {
				saved, getErr := db.GetInvoice("test-id")
				Expect(getErr).NotTo(HaveOccurred())
				Expect(saved.ID).To(Equal("test-id"))
			})
		})
	})

	Describe("GetInvoice", func() {
		var (
			invoiceID string
			inv       *Invoice
			err       error
		)

		JustBeforeEach(func() {
			inv, err = db.GetInvoice(invoiceID)
		})

		When("invoice exists", func() {
			BeforeEach(func() {
				invoiceID = "test-id"
				Expect(db.SaveInvoice(newTestInvoice("test-id"))).NotTo(HaveOccurred())
			})

			It("should not return an error", func() {
				Expect(err).NotTo(HaveOccurred())
			})

			It("should return the correct invoice", func() {
				Expect(inv.ID).To(Equal("test-id"))
				Expect(inv.Owner).To(Equal("alice"))
				Expect(inv.Confidence).To(Equal(100))
			})

			It("should round-trip the record fields", func() {
				Expect(inv.Record.Vendor).To(HaveValue(Equal("Acme Logistics")))
				Expect(inv.Record.Date).To(HaveValue(Equal("2024-01-15")))
				Expect(inv.Record.Amount).To(HaveValue(Equal("250.50")))
				Expect(inv.Record.Currency).To(HaveValue(Equal("USD")))
			})
		})

		When("the record has null fields", func() {
			BeforeEach(func() {
				invoiceID = "partial-id"
				partial := newTestInvoice("partial-id")
				partial.Record.Date = nil
				partial.Record.Currency = nil
				partial.Confidence = 50
				Expect(db.SaveInvoice(partial)).NotTo(HaveOccurred())
			})

			It("should keep them null after the round trip", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(inv.Record.Vendor).To(HaveValue(Equal("Acme Logistics")))
				Expect(inv.Record.Date).To(BeNil())
				Expect(inv.Record.Currency).To(BeNil())
			})
		})

		When("invoice does not exist", func() {
			var expectedErr error

			BeforeEach(func() {
				invoiceID = "nonexistent"
				expectedErr = errors.New("invoice not found: nonexistent")
			})

			It("returns the error", func() {
				Expect(err).To(MatchError(expectedErr))
			})
		})
	})

	Describe("ListInvoices", func() {
		var (
			invoices []*Invoice
			err      error
		)

		JustBeforeEach(func() {
			invoices, err = db.ListInvoices()
		})

		When("invoices exist", func() {
			BeforeEach(func() {
				Expect(db.SaveInvoice(newTestInvoice("id1"))).NotTo(HaveOccurred())
				Expect(db.SaveInvoice(newTestInvoice("id2"))).NotTo(HaveOccurred())
			})

			It("should not return an error", func() {
				Expect(err).NotTo(HaveOccurred())
			})

			It("should return all invoices", func() {
				Expect(invoices).To(HaveLen(2))
			})
		})

		When("no invoices exist", func() {
			It("should not return an error", func() {
				Expect(err).NotTo(HaveOccurred())
			})

			It("should return an empty list", func() {
				Expect(invoices).To(BeEmpty())
			})
		})
	})

	Describe("DeleteInvoice", func() {
		var (
			invoiceID string
			err       error
		)

		JustBeforeEach(func() {
			err = db.DeleteInvoice(invoiceID)
		})

		When("invoice exists", func() {
			BeforeEach(func() {
				invoiceID = "test-id"
				Expect(db.SaveInvoice(newTestInvoice("test-id"))).NotTo(HaveOccurred())
			})

			It("should not return an error", func() {
				Expect(err).NotTo(HaveOccurred())
			})

			It("should remove the invoice from the database", func() {
				_, getErr := db.GetInvoice("test-id")
				Expect(getErr).To(HaveOccurred())
			})
		})

		When("invoice does not exist", func() {
			BeforeEach(func() {
				invoiceID = "nonexistent"
			})

			It("should not return an error", func() {
				Expect(err).NotTo(HaveOccurred())
			})
		})
	})

	Describe("Close", func() {
		It("should not return an error", func() {
			err := db.Close()
			Expect(err).NotTo(HaveOccurred())
		})
	})
})
