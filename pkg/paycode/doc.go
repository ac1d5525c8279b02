// Package paycode turns financial document views into scannable payment
// codes.
//
// A Generator composes the building blocks of this module:
//
//	payment.Document -> payload encoder -> symbol renderer -> autocrop -> PNG
//
// and exposes four named operations:
//
//   - PaymentPDF417: HRVHUB30 payload as a PDF417 symbol for Croatian slips
//   - PaymentQR: SEPA BCD payload as a QR symbol
//   - DocumentBarcode: the document identifier as a linear barcode
//   - DocumentQR: the document identifier as a QR symbol
//
// Each returns an *Artifact carrying the payload, the final image and its PNG
// bytes. Artifact.DataURI gives the inline form, Generator.Save persists it
// through a file.Storage.
//
// # Usage
//
//	cfg, err := paycode.LoadConfig()
//	if err != nil {
//		return err
//	}
//	gen, err := paycode.New(cfg, paycode.WithLogger(log))
//	if err != nil {
//		return err
//	}
//
//	art, err := gen.PaymentPDF417(doc)
//	if err != nil {
//		// handle error
//		return err
//	}
//	uri, _ := art.DataURI()
//
// # Configuration
//
// LoadConfig reads PAYCODE_* variables, for example PAYCODE_CURRENCY,
// PAYCODE_DEPARTMENT_IBANS=sales:HR12...,support:HR34..., PAYCODE_QR_LEVEL,
// PAYCODE_PAYMENT_QR_BOX_SIZE, PAYCODE_PDF417_COLUMNS or
// PAYCODE_BARCODE_SYMBOLOGY. Save writes to PAYCODE_STORAGE_DIR or to the
// bucket in PAYCODE_S3_BUCKET. See Config.
//
// # Error Handling
//
// Errors from the lower layers are returned unchanged:
//
//	errors.Is(err, payment.ErrEncoding) // document cannot be encoded
//	errors.Is(err, symbol.ErrCapacity)  // payload does not fit the symbol
//	errors.Is(err, symbol.ErrRender)    // renderer rejected payload or options
//	errors.Is(err, datauri.ErrPackaging) // PNG or storage step failed
package paycode
