package stego

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"image"

	"github.com/andresmejia3/delfin/pkg/envelope"
)

// VerifyResult summarises a successful extraction.
type VerifyResult struct {
	Version     byte
	PayloadSize int
	PixelsUsed  int
	SHA256      string

	Sealed    bool // the payload is an envelope that opened cleanly
	InnerSize int  // size of the envelope contents
}

// Verify extracts the payload like Decrypt but only reports on it. A sealed
// payload must also open, which checks its parity when present.
func Verify(ctx context.Context, img image.Image, opts ...Option) (*VerifyResult, error) {
	header, payload, err := decrypt(ctx, img, newOptions(opts))
	if err != nil {
		return nil, err
	}

	sum := sha256.Sum256(payload)
	result := &VerifyResult{
		Version:     header.Version,
		PayloadSize: len(payload),
		PixelsUsed:  pixelsFor(HeaderSize + len(payload)),
		SHA256:      hex.EncodeToString(sum[:]),
	}

	if envelope.IsSealed(payload) {
		inner, err := envelope.Open(payload)
		if err != nil {
			return nil, err
		}
		result.Sealed = true
		result.InnerSize = len(inner)
	}
	return result, nil
}

// pixelsFor is the number of pixels n hidden bytes occupy.
func pixelsFor(n int) int {
	pairs := n * pairsPerByte
	return (pairs + pairsPerPixel - 1) / pairsPerPixel
}
