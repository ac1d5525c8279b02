package payment

import "github.com/shopspring/decimal"

// Document is the read-only view of a financial document the encoders work on.
// It is passed by value and never modified.
type Document struct {
	// Identifier is the document number, e.g. "ACC-SINV-2024-00001".
	// The reference number is derived from it.
	Identifier string
	// Type is the document type, e.g. "Sales Invoice". It selects the
	// human-readable label used in payment descriptions.
	Type string

	PayeeName   string
	PayeeStreet string
	// PayeeCity holds postal code and city, e.g. "10000 Zagreb".
	PayeeCity string

	// Amount is the payable total. Currency is decided by the encoder.
	Amount decimal.Decimal

	PayeeIBAN string
	PayeeBIC  string

	// Department optionally classifies the issuing department and drives
	// IBAN selection through an IBANResolver.
	Department string
}

var documentLabels = map[string]string{
	"Sales Invoice":  "Račun br.",
	"Quotation":      "Ponuda br.",
	"Purchase Order": "Narudžba br.",
	"Delivery Note":  "Otpremnica br.",
}

const defaultDocumentLabel = "Dokument br."

// DocumentLabel returns the Croatian label printed in front of the reference
// number for the given document type.
func DocumentLabel(docType string) string {
	if label, ok := documentLabels[docType]; ok {
		return label
	}
	return defaultDocumentLabel
}
