package parser

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyContent means the payload had no extractable text at all.
	ErrEmptyContent = errors.New("empty content")

	// ErrScannedPDF is a redirect signal: the PDF carries no usable text
	// layer and should go through the image strategy instead.
	ErrScannedPDF = errors.New("scanned pdf without text layer")

	// ErrBinaryDocx means ZIP/package markers were present but no paragraph
	// structure could be read, so the payload is unrecoverable binary.
	ErrBinaryDocx = errors.New("binary docx payload is unparseable")

	// ErrCorruptedData flags extraction output dominated by binary or
	// markup artifacts.
	ErrCorruptedData = errors.New("extracted data is corrupted")

	// ErrRemoteTimeout marks a remote strategy that exceeded its deadline.
	ErrRemoteTimeout = errors.New("remote parsing service timed out")

	// ErrAllStrategiesFailed is terminal: every chain entry, including the
	// manual-fallback template, was exhausted.
	ErrAllStrategiesFailed = errors.New("all parsing strategies failed")
)

// FileTooLargeError is returned by the classifier when a payload exceeds
// the per-format size ceiling.
type FileTooLargeError struct {
	Size  int64
	MaxMB int
}

func (e *FileTooLargeError) Error() string {
	return fmt.Sprintf("file too large: %d bytes (max %d MB)", e.Size, e.MaxMB)
}

// UnsupportedTypeError is warning-level: the type is not in the supported
// set but best-effort text extraction may still work.
type UnsupportedTypeError struct {
	ContentType string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported content type: %s", e.ContentType)
}
