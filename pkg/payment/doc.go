// Package payment builds the text payloads that banking apps read from
// payment barcodes printed on invoices.
//
// Two grammars are supported:
//
//   - HUB30 (HRVHUB30), the Croatian payment-slip format carried in a PDF417
//     symbol. 15 newline-separated fields, ASCII only, amount as a 15-digit
//     count of cents.
//   - BCD, the European Payments Council QR format for SEPA credit
//     transfers. 12 newline-separated fields, UTF-8, amount as "EUR1500.00".
//
// Both encoders work on a read-only Document and never change the number or
// order of fields: empty values are emitted as empty lines.
//
// # Usage
//
//	dir := payment.NewIBANDirectory(map[string]string{
//		"Montaža": "HR9123600001503417252",
//	})
//
//	doc := payment.Document{
//		Identifier: "ACC-SINV-2024-00001",
//		Type:       "Sales Invoice",
//		PayeeName:  "Moja Tvrtka d.o.o.",
//		Amount:     decimal.RequireFromString("1500.00"),
//		PayeeIBAN:  "HR1234567890123456789",
//		Department: "Montaža",
//	}
//
//	hub30, err := payment.HUB30Encoder{IBANs: dir}.Encode(doc)
//	if err != nil {
//		// handle error
//	}
//
// # Reference numbers
//
// The reference number ("poziv na broj") is derived from the document
// identifier with ExtractReference: with four or more dash-separated segments
// it keeps segments 1 to 3, with three it keeps all of them, otherwise it
// keeps the first 10 characters.
//
// # Error Handling
//
// Every error wraps ErrEncoding, so callers can separate payload problems
// from rendering problems:
//
//	if errors.Is(err, payment.ErrEncoding) {
//		// the document cannot be expressed in the grammar
//	}
package payment
