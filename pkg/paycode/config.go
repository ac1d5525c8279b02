package paycode

import (
	"encoding/hex"
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/dmitrymomot/paycode/pkg/config"
	"github.com/dmitrymomot/paycode/pkg/file"
	"github.com/dmitrymomot/paycode/pkg/payment"
	"github.com/dmitrymomot/paycode/pkg/symbol"
)

// EnvPrefix is prepended to every variable read by LoadConfig.
const EnvPrefix = "PAYCODE_"

// Config holds the generator settings. Tags name the environment variables
// read by LoadConfig, without EnvPrefix.
type Config struct {
	// Currency is the ISO 4217 code used by both payload grammars.
	Currency string `env:"CURRENCY" envDefault:"EUR"`
	// HUB30Model is the reference model, e.g. HR00 or HR01.
	HUB30Model string `env:"HUB30_MODEL" envDefault:"HR00"`
	// HUB30Purpose is the optional 4-letter purpose code of HUB30 payloads.
	HUB30Purpose string `env:"HUB30_PURPOSE"`
	// BCDPurpose is the optional 4-letter purpose code of BCD payloads.
	BCDPurpose string `env:"BCD_PURPOSE"`
	// BCDRemittance picks the BCD remittance fields.
	BCDRemittance payment.RemittanceMode `env:"BCD_REMITTANCE" envDefault:"both"`
	// DepartmentIBANs maps department to payee IBAN, e.g. "sales:HR12...,hr:HR34...".
	DepartmentIBANs map[string]string `env:"DEPARTMENT_IBANS" envSeparator:"," envKeyValSeparator:":"`

	// Background is the hex colour autocrop trims away.
	Background string `env:"BACKGROUND" envDefault:"#ffffff"`

	// PaymentQR renders BCD payloads, QR renders document identifiers.
	PaymentQR symbol.QROptions     `envPrefix:"PAYMENT_QR_"`
	QR        symbol.QROptions     `envPrefix:"QR_"`
	PDF417    symbol.PDF417Options `envPrefix:"PDF417_"`
	Barcode   symbol.LinearOptions `envPrefix:"BARCODE_"`

	// StorageDir enables local file storage for Save when set.
	StorageDir string `env:"STORAGE_DIR"`
	// StorageURL is the public URL prefix of StorageDir.
	StorageURL string `env:"STORAGE_URL"`
	// S3 enables S3 storage for Save when S3.Bucket is set. It cannot be
	// combined with StorageDir.
	S3 file.S3Config `envPrefix:"S3_"`
}

// DefaultConfig returns the settings used when no environment is set.
// Payment QR codes use 5px modules, document QR codes 10px.
func DefaultConfig() Config {
	paymentQR := symbol.DefaultQROptions()
	paymentQR.BoxSize = 5

	return Config{
		Currency:      payment.DefaultCurrency,
		HUB30Model:    payment.DefaultHUB30Model,
		BCDRemittance: payment.RemittanceBoth,
		Background:    "#ffffff",
		PaymentQR:     paymentQR,
		QR:            symbol.DefaultQROptions(),
		PDF417:        symbol.DefaultPDF417Options(),
		Barcode:       symbol.DefaultLinearOptions(),
	}
}

// LoadConfig reads Config from PAYCODE_* variables, after merging the given
// dotenv files (or .env when present). Unset variables keep the value from
// DefaultConfig.
func LoadConfig(files ...string) (Config, error) {
	cfg := DefaultConfig()
	if err := config.LoadPrefixed(&cfg, EnvPrefix, files...); err != nil {
		return Config{}, errors.Join(ErrInvalidConfig, err)
	}
	return cfg, nil
}

// ParseColor parses "#rgb", "#rrggbb" or "#rrggbbaa", with or without '#'.
func ParseColor(s string) (color.Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) == 6 {
		h += "ff"
	}
	b, err := hex.DecodeString(h)
	if err != nil || len(b) != 4 {
		return nil, fmt.Errorf("%w: colour %q", ErrInvalidConfig, s)
	}
	return color.NRGBA{R: b[0], G: b[1], B: b[2], A: b[3]}, nil
}
