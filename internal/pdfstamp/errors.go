package pdfstamp

import "errors"

var (
	ErrUnreadable      = errors.New("pdfstamp: template is not a readable PDF")
	ErrEncrypted       = errors.New("pdfstamp: encrypted templates are not supported")
	ErrPageCount       = errors.New("pdfstamp: template must have exactly one page")
	ErrSizeMismatch    = errors.New("pdfstamp: overlay size does not match template page")
	ErrInvalidElement  = errors.New("pdfstamp: invalid page element")
	ErrUnsupportedFont = errors.New("pdfstamp: unsupported font")
)
