package stego

import (
	"context"
	"crypto/cipher"
	"fmt"
	"image"
	"io"
	"math"

	"github.com/rs/zerolog/log"
)

// The context is polled once per this many payload bytes.
const cancelCheckInterval = 4096

// Encrypt hides payload in a copy of img and returns the copy. The header
// and payload are masked when a passphrase is set. img itself is never
// modified, and nothing is returned when ctx is canceled mid-way.
func Encrypt(ctx context.Context, img image.Image, payload []byte, opts ...Option) (*image.NRGBA, error) {
	o := newOptions(opts)

	if o.version > CurrentVersion {
		return nil, newError(ErrUnsupportedHeaderVersion, "unsupported header version",
			fmt.Sprintf("cannot write header version %d; newest is %d", o.version, CurrentVersion))
	}
	if len(payload) > math.MaxInt32 {
		return nil, newError(ErrPayloadTooLarge, "file too large",
			fmt.Sprintf("%d bytes exceeds the %d bytes a header can describe", len(payload), math.MaxInt32))
	}

	width, height := img.Bounds().Dx(), img.Bounds().Dy()
	capacity := Capacity(width, height)
	required := HeaderSize + len(payload)

	log.Debug().Int("width", width).Int("height", height).Msg("Image dimensions")
	log.Debug().Int("capacity", capacity).Int("required", required).Uint8("version", o.version).Msg("Checking capacity")

	if capacity < required {
		return nil, newError(ErrImageTooSmall, "image too small",
			fmt.Sprintf("image holds %d bytes but %d are required", capacity, required))
	}

	header := NewHeader(o.version, int32(len(payload)))
	headerBytes, err := header.MarshalBinary()
	if err != nil {
		return nil, err
	}
	body := make([]byte, len(payload))
	copy(body, payload)

	if o.passphrase != "" {
		stream, err := o.suite.legacy(o.passphrase)
		if err != nil {
			return nil, keystreamError(err)
		}
		stream.XORKeyStream(headerBytes, headerBytes)

		if !header.UsesLegacyPayloadCipher() {
			if stream, err = o.suite.current(o.passphrase); err != nil {
				return nil, keystreamError(err)
			}
		}
		stream.XORKeyStream(body, body)
		log.Debug().Msg("Masked header and payload")
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	outputImage := copyImage(img)
	writer := NewPixelWriter(outputImage)

	if _, err := writer.Write(headerBytes); err != nil {
		return nil, err
	}

	bar := o.newProgressBar(len(body), "encoding")
	for i, b := range body {
		if i%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		if err := writer.WriteByte(b); err != nil {
			return nil, err
		}
		bar.Add(1)
	}
	if err := writer.Flush(); err != nil {
		return nil, err
	}
	bar.Finish()

	log.Debug().Int("pixels", writer.Pixels()).Msg("Encoded the payload into the image")
	return outputImage, nil
}

// Decrypt recovers the payload hidden in img. A wrong passphrase usually
// surfaces as ErrUnsupportedHeaderVersion, ErrPayloadTooLarge or
// ErrAllocationOverflow, and occasionally as a payload of garbage.
func Decrypt(ctx context.Context, img image.Image, opts ...Option) ([]byte, error) {
	_, payload, err := decrypt(ctx, img, newOptions(opts))
	return payload, err
}

// decrypt returns the decoded header along with the payload so callers that
// report on the header do not have to read it again.
func decrypt(ctx context.Context, img image.Image, o *options) (*Header, []byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	src := asNRGBA(img)
	width, height := src.Bounds().Dx(), src.Bounds().Dy()
	capacity := Capacity(width, height)

	log.Debug().Int("width", width).Int("height", height).Int("capacity", capacity).Msg("Image dimensions")

	if capacity < HeaderSize {
		return nil, nil, newError(ErrImageTooSmall, "image too small",
			fmt.Sprintf("image holds %d bytes, fewer than a header", capacity))
	}

	var stream cipher.Stream
	if o.passphrase != "" {
		var err error
		if stream, err = o.suite.legacy(o.passphrase); err != nil {
			return nil, nil, keystreamError(err)
		}
	}

	reader := NewPixelReader(src)
	header, err := readHeader(reader, stream)
	if err != nil {
		return nil, nil, err
	}

	log.Debug().Uint8("version", header.Version).Int32("size", header.FileSize).Msg("Decoded header")

	if err := checkDeclaredSize(header, capacity); err != nil {
		return nil, nil, err
	}

	if stream != nil && !header.UsesLegacyPayloadCipher() {
		if stream, err = o.suite.current(o.passphrase); err != nil {
			return nil, nil, keystreamError(err)
		}
	}

	payload := make([]byte, header.FileSize)
	bar := o.newProgressBar(len(payload), "decoding")
	for i := range payload {
		if i%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, nil, err
			}
		}
		b, err := reader.ReadByte()
		if err != nil {
			return nil, nil, errCorrupt(ErrPayloadTooLarge, "image ended before the payload")
		}
		payload[i] = b
		bar.Add(1)
	}
	bar.Finish()

	if stream != nil {
		stream.XORKeyStream(payload, payload)
	}

	log.Debug().Int("pixels", reader.Pixels()).Msg("Decoded the payload from the image")
	return header, payload, nil
}

// readHeader feeds unmasked bytes from r into a fresh Header until it is
// complete. stream may be nil.
func readHeader(r io.ByteReader, stream cipher.Stream) (*Header, error) {
	header := &Header{}
	one := make([]byte, 1)

	for !header.IsComplete() {
		b, err := r.ReadByte()
		if err != nil {
			return nil, newError(ErrTruncatedHeader, "header is incomplete", "image ended inside the header")
		}
		if stream != nil {
			one[0] = b
			stream.XORKeyStream(one, one)
			b = one[0]
		}
		header.AddByte(b)
		if header.IsUnsupported() {
			return nil, errUnsupportedHeader(header.Version)
		}
	}
	return header, nil
}

// checkDeclaredSize rejects sizes that cannot be real. The capacity check
// comes first so that a negative size is reported as an allocation overflow.
func checkDeclaredSize(header *Header, capacity int) error {
	if int64(capacity) < int64(header.Size())+int64(header.FileSize) {
		return errCorrupt(ErrPayloadTooLarge,
			fmt.Sprintf("header declares %d bytes but the image holds at most %d", header.FileSize, capacity-header.Size()))
	}
	if header.FileSize < 0 {
		return errCorrupt(ErrAllocationOverflow,
			fmt.Sprintf("header declares a negative size (%d)", header.FileSize))
	}
	return nil
}

func keystreamError(err error) error {
	if _, ok := err.(*Error); ok {
		return err
	}
	return fmt.Errorf("failed to initialise keystream: %w", err)
}

// asNRGBA avoids a copy when img already has the layout the codec reads.
func asNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok {
		return n
	}
	return copyImage(img)
}
