package stego

import (
	"errors"
	"fmt"
)

// Error kinds. Every failure returned by Encrypt, Decrypt and GetInfo wraps
// exactly one of these, so callers can branch with errors.Is.
var (
	ErrUnsupportedHeaderVersion = errors.New("unsupported header version")
	ErrPayloadTooLarge          = errors.New("payload too large")
	ErrAllocationOverflow       = errors.New("allocation overflow")
	ErrImageTooSmall            = errors.New("image too small")
	ErrTruncatedHeader          = errors.New("truncated header")
	ErrLegacyUnsupported        = errors.New("legacy format unsupported")
)

// Error is the failure reported across the package boundary. Msg is a short
// summary for a status line; Description is suitable for a dialog or log.
type Error struct {
	Kind        error
	Msg         string
	Description string
}

func (e *Error) Error() string {
	if e.Description == "" || e.Description == e.Msg {
		return e.Msg
	}
	return fmt.Sprintf("%s: %s", e.Msg, e.Description)
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func newError(kind error, msg, description string) *Error {
	return &Error{Kind: kind, Msg: msg, Description: description}
}

const corruptOrWrongPassword = "file is corrupt or password is wrong"

func errUnsupportedHeader(version byte) *Error {
	return newError(ErrUnsupportedHeaderVersion,
		"header could not be read or password is wrong",
		fmt.Sprintf("header version %d is newer than %d", version, CurrentVersion))
}

func errCorrupt(kind error, description string) *Error {
	return newError(kind, corruptOrWrongPassword, description)
}
