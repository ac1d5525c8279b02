package paycode

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dmitrymomot/paycode/pkg/autocrop"
	"github.com/dmitrymomot/paycode/pkg/datauri"
	"github.com/dmitrymomot/paycode/pkg/file"
	"github.com/dmitrymomot/paycode/pkg/logger"
	"github.com/dmitrymomot/paycode/pkg/payment"
	"github.com/dmitrymomot/paycode/pkg/symbol"
)

// Artifact is a rendered code ready for embedding.
type Artifact struct {
	Kind    symbol.Kind
	Payload string
	Image   image.Image
	PNG     []byte
}

// DataURI returns the PNG as a data:image/png;base64 URI.
func (a *Artifact) DataURI() (string, error) {
	return datauri.Encode(a.PNG)
}

// Generator runs document views through encoder, renderer, autocrop and
// PNG packaging. It is immutable after New and safe for concurrent use.
type Generator struct {
	hub30 payment.HUB30Encoder
	bcd   payment.BCDEncoder

	paymentQR symbol.QROptions
	qr        symbol.QROptions
	pdf417    symbol.PDF417Options
	barcode   symbol.LinearOptions

	background color.Color
	storage    file.Storage
	log        *slog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.log = l
		}
	}
}

// WithStorage sets where Save writes, overriding Config.StorageDir and
// Config.S3.
func WithStorage(s file.Storage) Option {
	return func(g *Generator) {
		if s != nil {
			g.storage = s
		}
	}
}

// WithIBANResolver replaces the department mapping from Config.
func WithIBANResolver(r payment.IBANResolver) Option {
	return func(g *Generator) {
		if r != nil {
			g.hub30.IBANs = r
			g.bcd.IBANs = r
		}
	}
}

// New builds a Generator from cfg. Start from DefaultConfig or LoadConfig;
// renderer options are not filled in for a zero Config.
func New(cfg Config, opts ...Option) (*Generator, error) {
	bg := symbol.Background()
	if cfg.Background != "" {
		c, err := ParseColor(cfg.Background)
		if err != nil {
			return nil, err
		}
		bg = c
	}

	ibans := payment.NewIBANDirectory(cfg.DepartmentIBANs)
	g := &Generator{
		hub30: payment.HUB30Encoder{
			Currency: cfg.Currency,
			Model:    cfg.HUB30Model,
			Purpose:  cfg.HUB30Purpose,
			IBANs:    ibans,
		},
		bcd: payment.BCDEncoder{
			Currency:   cfg.Currency,
			Purpose:    cfg.BCDPurpose,
			Remittance: cfg.BCDRemittance,
			IBANs:      ibans,
		},
		paymentQR:  cfg.PaymentQR,
		qr:         cfg.QR,
		pdf417:     cfg.PDF417,
		barcode:    cfg.Barcode,
		background: bg,
		log:        logger.Discard(),
	}
	for _, opt := range opts {
		opt(g)
	}

	if g.storage == nil {
		storage, err := newStorage(cfg)
		if err != nil {
			return nil, errors.Join(ErrInvalidConfig, err)
		}
		g.storage = storage
	}

	return g, nil
}

// newStorage picks the Save backend: S3 when a bucket is set, a local
// directory when StorageDir is set, none otherwise.
func newStorage(cfg Config) (file.Storage, error) {
	switch {
	case cfg.S3.Enabled() && cfg.StorageDir != "":
		return nil, fmt.Errorf("storage dir %q and S3 bucket %q are both set", cfg.StorageDir, cfg.S3.Bucket)
	case cfg.S3.Enabled():
		// Building the client only reads local AWS config, nothing is sent.
		s, err := file.NewS3Storage(context.Background(), cfg.S3)
		if err != nil {
			return nil, err
		}
		return s, nil
	case cfg.StorageDir != "":
		s, err := file.NewLocalStorage(cfg.StorageDir, cfg.StorageURL)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
	return nil, nil
}

// HUB30Payload returns the HRVHUB30 text for doc.
func (g *Generator) HUB30Payload(doc payment.Document) (string, error) {
	return g.hub30.Encode(doc)
}

// BCDPayload returns the SEPA BCD text for doc.
func (g *Generator) BCDPayload(doc payment.Document) (string, error) {
	return g.bcd.Encode(doc)
}

// PaymentPDF417 renders the HUB30 payload of doc as a cropped PDF417 symbol.
func (g *Generator) PaymentPDF417(doc payment.Document) (*Artifact, error) {
	payload, err := g.HUB30Payload(doc)
	if err != nil {
		return nil, g.fail(doc, symbol.KindPDF417, err)
	}
	return g.build(doc, symbol.KindPDF417, payload, true, func(p string) (*symbol.Symbol, error) {
		return symbol.RenderPDF417(p, g.pdf417)
	})
}

// PaymentQR renders the BCD payload of doc as a cropped QR symbol.
func (g *Generator) PaymentQR(doc payment.Document) (*Artifact, error) {
	payload, err := g.BCDPayload(doc)
	if err != nil {
		return nil, g.fail(doc, symbol.KindQR, err)
	}
	return g.build(doc, symbol.KindQR, payload, true, func(p string) (*symbol.Symbol, error) {
		return symbol.RenderQR(p, g.paymentQR)
	})
}

// DocumentBarcode renders the document identifier as a linear barcode. The
// quiet zone and caption are kept.
func (g *Generator) DocumentBarcode(doc payment.Document) (*Artifact, error) {
	return g.build(doc, symbol.KindLinear, doc.Identifier, false, func(p string) (*symbol.Symbol, error) {
		return symbol.RenderLinear(p, g.barcode)
	})
}

// DocumentQR renders the document identifier as a cropped QR symbol.
func (g *Generator) DocumentQR(doc payment.Document) (*Artifact, error) {
	return g.build(doc, symbol.KindQR, doc.Identifier, true, func(p string) (*symbol.Symbol, error) {
		return symbol.RenderQR(p, g.qr)
	})
}

// Save writes the artifact PNG to the configured storage. An empty path
// becomes "<kind>/<uuid>.png".
func (g *Generator) Save(ctx context.Context, a *Artifact, path string) (*file.File, error) {
	if g.storage == nil {
		return nil, ErrNoStorage
	}
	if a == nil {
		return nil, fmt.Errorf("%w: nil artifact", datauri.ErrPackaging)
	}
	if path == "" {
		path = fmt.Sprintf("%s/%s.png", a.Kind, uuid.NewString())
	}

	uri, err := a.DataURI()
	if err != nil {
		return nil, err
	}
	f, err := datauri.Save(ctx, g.storage, uri, path)
	if err != nil {
		g.log.ErrorContext(ctx, "save failed", logger.Path(path), logger.Error(err))
		return nil, err
	}

	g.log.DebugContext(ctx, "artifact saved", logger.Symbology(string(a.Kind)), logger.Path(f.RelativePath))
	return f, nil
}

func (g *Generator) build(doc payment.Document, kind symbol.Kind, payload string, crop bool, render func(string) (*symbol.Symbol, error)) (*Artifact, error) {
	sym, err := render(payload)
	if err != nil {
		return nil, g.fail(doc, kind, err)
	}

	img := sym.Image
	if crop {
		img = autocrop.Crop(img, g.background)
	}

	data, err := datauri.EncodePNG(img)
	if err != nil {
		return nil, g.fail(doc, kind, err)
	}

	g.log.Debug("symbol rendered",
		logger.Document(doc.Identifier),
		logger.Symbology(string(sym.Kind)),
		logger.PayloadSize(len(payload)),
	)

	return &Artifact{
		Kind:    sym.Kind,
		Payload: payload,
		Image:   img,
		PNG:     data,
	}, nil
}

func (g *Generator) fail(doc payment.Document, kind symbol.Kind, err error) error {
	g.log.Error("code generation failed",
		logger.Document(doc.Identifier),
		logger.Symbology(string(kind)),
		logger.Error(err),
	)
	return err
}
