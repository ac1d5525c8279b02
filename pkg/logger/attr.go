package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Document records the document identifier under the key "document".
func Document(id string) slog.Attr {
	return slog.String("document", id)
}

// Symbology records the barcode kind or symbology under the key "symbology".
func Symbology(name string) slog.Attr {
	return slog.String("symbology", name)
}

// PayloadSize records the encoded payload length in bytes.
func PayloadSize(n int) slog.Attr {
	return slog.Int("payload_size", n)
}

// Path records a storage path under the key "path".
func Path(p string) slog.Attr {
	return slog.String("path", p)
}

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}
