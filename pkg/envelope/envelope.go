// Package envelope wraps a payload before it is hidden so it can optionally
// be compressed and protected with Reed-Solomon parity. The envelope lives
// inside the hidden payload; the carrier format is unaffected.
package envelope

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
)

// Magic marks a sealed payload.
var Magic = []byte("DLFE")

const (
	flagCompressed byte = 1 << iota
	flagParity

	knownFlags = flagCompressed | flagParity
	prefixSize = 5
)

var (
	ErrNotSealed    = errors.New("envelope: data is not sealed")
	ErrUnknownFlags = errors.New("envelope: unknown flags")
	ErrCorrupt      = errors.New("envelope: corrupt body")
)

// Options selects the layers applied by Seal.
type Options struct {
	Compress bool
	ECC      bool
}

func (o Options) flags() byte {
	var f byte
	if o.Compress {
		f |= flagCompressed
	}
	if o.ECC {
		f |= flagParity
	}
	return f
}

// Seal compresses data and then adds parity, as requested by opts.
func Seal(data []byte, opts Options) ([]byte, error) {
	body := data
	var err error

	if opts.Compress {
		if body, err = compressZstd(body); err != nil {
			return nil, fmt.Errorf("envelope: compress: %w", err)
		}
		log.Debug().Int("raw", len(data)).Int("compressed", len(body)).Msg("Compressed payload")
	}
	if opts.ECC {
		if body, err = addParity(body); err != nil {
			return nil, fmt.Errorf("envelope: parity: %w", err)
		}
		log.Debug().Int("size", len(body)).Msg("Added Reed-Solomon parity")
	}

	out := make([]byte, 0, prefixSize+len(body))
	out = append(out, Magic...)
	out = append(out, opts.flags())
	return append(out, body...), nil
}

// IsSealed reports whether data starts with an envelope prefix.
func IsSealed(data []byte) bool {
	return len(data) >= prefixSize && bytes.Equal(data[:len(Magic)], Magic)
}

// Open reverses Seal. A damaged parity-protected body is repaired when at
// most one shard is affected.
func Open(data []byte) ([]byte, error) {
	if !IsSealed(data) {
		return nil, ErrNotSealed
	}
	flags := data[len(Magic)]
	if flags&^knownFlags != 0 {
		return nil, fmt.Errorf("%w: %#02x", ErrUnknownFlags, flags)
	}

	body := data[prefixSize:]
	var err error

	if flags&flagParity != 0 {
		if body, err = removeParity(body); err != nil {
			return nil, err
		}
	}
	if flags&flagCompressed != 0 {
		if body, err = decompressZstd(body); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
		}
	}

	// Never alias the caller's buffer.
	if flags == 0 {
		body = append([]byte(nil), body...)
	}
	return body, nil
}
