package processor

import (
	"compress/flate"
	"compress/gzip"
	"context"
	"errors"
	"io"
	"io/fs"

	"github.com/helixir/medline/internal/domain"
	"github.com/helixir/medline/internal/medline"
)

// Error kinds used as the "kind" metric label.
const (
	KindMalformed       = "malformed_xml"
	KindMissingRequired = "missing_required"
	KindInvalidEnum     = "invalid_enum"
	KindUnsupported     = "unsupported"
	KindIO              = "io"
	KindCanceled        = "canceled"
	KindOther           = "other"
)

// ErrorKind classifies err for metrics and logs.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return KindCanceled
	case errors.Is(err, medline.ErrMissingRequiredField):
		return KindMissingRequired
	case errors.Is(err, medline.ErrInvalidEnumValue):
		return KindInvalidEnum
	case errors.Is(err, domain.ErrUnsupportedDocument):
		return KindUnsupported
	case isStreamError(err):
		return KindIO
	case errors.Is(err, medline.ErrMalformedXML):
		return KindMalformed
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, fs.ErrPermission):
		return KindIO
	default:
		return KindOther
	}
}

// isStreamError reports whether err comes from reading the input rather than
// from its content, such as a truncated or corrupt gzip stream.
func isStreamError(err error) bool {
	if errors.Is(err, gzip.ErrHeader) || errors.Is(err, gzip.ErrChecksum) || errors.Is(err, io.ErrUnexpectedEOF) {
		return true
	}
	var corrupt flate.CorruptInputError
	if errors.As(err, &corrupt) {
		return true
	}
	var pathErr *fs.PathError
	return errors.As(err, &pathErr)
}
