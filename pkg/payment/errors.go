package payment

import (
	"errors"
	"fmt"
)

// ErrEncoding is the category of every error produced while building a payload.
// Match it with errors.Is to tell encoding failures apart from rendering ones.
var ErrEncoding = errors.New("payment: encoding failed")

var (
	// ErrNegativeAmount is returned when the document total is below zero.
	ErrNegativeAmount = fmt.Errorf("%w: amount must not be negative", ErrEncoding)

	// ErrAmountOverflow is returned when the amount does not fit the grammar's amount field.
	ErrAmountOverflow = fmt.Errorf("%w: amount exceeds field width", ErrEncoding)

	// ErrNonASCII is returned when an identifier-type field carries non-ASCII characters.
	ErrNonASCII = fmt.Errorf("%w: field must contain ASCII characters only", ErrEncoding)

	// ErrMalformedIdentifier is returned when the document identifier is empty.
	ErrMalformedIdentifier = fmt.Errorf("%w: malformed document identifier", ErrEncoding)

	// ErrMissingIBAN is returned when no payee IBAN can be resolved for a document.
	ErrMissingIBAN = fmt.Errorf("%w: payee IBAN is missing", ErrEncoding)

	// ErrReferenceTooLong is returned when the reference number exceeds the field width.
	ErrReferenceTooLong = fmt.Errorf("%w: reference number too long", ErrEncoding)

	// ErrInvalidBIC is returned when a BIC is present but is neither 8 nor 11 characters.
	ErrInvalidBIC = fmt.Errorf("%w: BIC must be 8 or 11 characters", ErrEncoding)

	// ErrInvalidUTF8 is returned when a UTF-8 grammar receives invalid text.
	ErrInvalidUTF8 = fmt.Errorf("%w: text is not valid UTF-8", ErrEncoding)

	// ErrPayloadTooLong is returned when the serialized payload exceeds the grammar limit.
	ErrPayloadTooLong = fmt.Errorf("%w: payload too long", ErrEncoding)

	// ErrInvalidField is returned for encoder settings that violate the grammar
	// (currency, model or purpose code shape).
	ErrInvalidField = fmt.Errorf("%w: invalid field value", ErrEncoding)
)
