package payment

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// BCD (EPC069-12 "SEPA credit transfer" QR) grammar constants.
const (
	BCDServiceTag     = "BCD"
	BCDVersion        = "002"
	BCDCharsetUTF8    = "1"
	BCDIdentification = "SCT"
	BCDFieldCount     = 12

	bcdNameWidth      = 70
	bcdReferenceWidth = 35
	bcdMemoWidth      = 140
	bcdMaxPayloadSize = 331
)

// RemittanceMode selects which remittance fields of a BCD payload are filled.
type RemittanceMode string

const (
	// RemittanceBoth fills the structured and the unstructured field.
	// Strict EPC readers accept only one of them.
	RemittanceBoth RemittanceMode = "both"
	// RemittanceStructured fills only the structured reference.
	RemittanceStructured RemittanceMode = "structured"
	// RemittanceUnstructured fills only the free-text description.
	RemittanceUnstructured RemittanceMode = "unstructured"
)

// BCDEncoder builds the 12-line EPC QR payload for SEPA credit transfers.
//
// The zero value encodes EUR amounts, fills both remittance fields and takes
// the IBAN from the document itself.
type BCDEncoder struct {
	// Currency prefixes the amount, EUR when empty.
	Currency string
	// Purpose is the optional 4-letter purpose code.
	Purpose string
	// Remittance selects the remittance fields, RemittanceBoth when empty.
	Remittance RemittanceMode
	// IBANs picks the payee account. Nil uses Document.PayeeIBAN.
	IBANs IBANResolver
}

// Encode returns the newline-joined payload.
func (e BCDEncoder) Encode(doc Document) (string, error) {
	fields, err := e.Fields(doc)
	if err != nil {
		return "", err
	}
	payload := strings.Join(fields, "\n")
	if len(payload) > bcdMaxPayloadSize {
		return "", fmt.Errorf("%w: %d bytes, limit %d", ErrPayloadTooLong, len(payload), bcdMaxPayloadSize)
	}
	return payload, nil
}

// Fields returns the payload as its ordered field table:
//
//	 1 service tag      BCD
//	 2 version          002
//	 3 character set    1 (UTF-8)
//	 4 identification   SCT
//	 5 BIC              optional
//	 6 payee name
//	 7 payee IBAN
//	 8 amount           EUR1500.00
//	 9 purpose code
//	10 structured reference
//	11 blank
//	12 unstructured description
func (e BCDEncoder) Fields(doc Document) ([]string, error) {
	currency := valueOr(e.Currency, DefaultCurrency)
	if !currencyPattern.MatchString(currency) {
		return nil, fmt.Errorf("%w: currency %q", ErrInvalidField, currency)
	}
	if e.Purpose != "" && !purposePattern.MatchString(e.Purpose) {
		return nil, fmt.Errorf("%w: purpose code %q", ErrInvalidField, e.Purpose)
	}
	mode := e.Remittance
	if mode == "" {
		mode = RemittanceBoth
	}
	switch mode {
	case RemittanceBoth, RemittanceStructured, RemittanceUnstructured:
	default:
		return nil, fmt.Errorf("%w: remittance mode %q", ErrInvalidField, mode)
	}

	for _, s := range []string{doc.Identifier, doc.Type, doc.PayeeName, doc.PayeeBIC} {
		if !utf8.ValidString(s) {
			return nil, ErrInvalidUTF8
		}
	}

	if strings.TrimSpace(doc.Identifier) == "" {
		return nil, ErrMalformedIdentifier
	}
	reference := SingleLine(ExtractReference(strings.TrimSpace(doc.Identifier)))
	if utf8.RuneCountInString(reference) > bcdReferenceWidth {
		return nil, fmt.Errorf("%w: %q exceeds %d characters", ErrReferenceTooLong, reference, bcdReferenceWidth)
	}

	name := strings.TrimSpace(SingleLine(doc.PayeeName))
	if name == "" {
		return nil, fmt.Errorf("%w: payee name is required", ErrInvalidField)
	}

	bic := strings.ToUpper(strings.TrimSpace(doc.PayeeBIC))
	if bic != "" && (len(bic) != 8 && len(bic) != 11 || !IsASCII(bic)) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBIC, bic)
	}

	iban, err := resolveIBAN(e.IBANs, doc)
	if err != nil {
		return nil, err
	}

	amount, err := FormatDecimalAmount(currency, doc.Amount)
	if err != nil {
		return nil, err
	}

	structured := reference
	description := truncate(DocumentLabel(doc.Type)+" "+reference, bcdMemoWidth)
	switch mode {
	case RemittanceStructured:
		description = ""
	case RemittanceUnstructured:
		structured = ""
	}

	fields := []string{
		BCDServiceTag,
		BCDVersion,
		BCDCharsetUTF8,
		BCDIdentification,
		bic,
		truncate(name, bcdNameWidth),
		iban,
		amount,
		e.Purpose,
		structured,
		"",
		description,
	}
	return fields, nil
}
