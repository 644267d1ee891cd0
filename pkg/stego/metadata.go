package stego

import (
	"crypto/cipher"
	"image"
)

// Info describes the header hidden in an image.
type Info struct {
	Version          byte
	HeaderSize       int
	PayloadSize      int64
	Capacity         int
	Width            int
	Height           int
	Encrypted        bool // a passphrase was used to read the header
	LegacyPayloadKey bool // the payload continues the header keystream
}

// GetInfo reads only the header of img. Without the right passphrase the
// header of a masked image decodes to garbage, which is reported the same
// way Decrypt reports it.
func GetInfo(img image.Image, opts ...Option) (*Info, error) {
	o := newOptions(opts)

	src := asNRGBA(img)
	width, height := src.Bounds().Dx(), src.Bounds().Dy()
	capacity := Capacity(width, height)

	if capacity < HeaderSize {
		return nil, newError(ErrImageTooSmall, "image too small to contain header", "")
	}

	var stream cipher.Stream
	if o.passphrase != "" {
		var err error
		if stream, err = o.suite.legacy(o.passphrase); err != nil {
			return nil, keystreamError(err)
		}
	}

	header, err := readHeader(NewPixelReader(src), stream)
	if err != nil {
		return nil, err
	}
	if err := checkDeclaredSize(header, capacity); err != nil {
		return nil, err
	}

	return &Info{
		Version:          header.Version,
		HeaderSize:       header.Size(),
		PayloadSize:      int64(header.FileSize),
		Capacity:         capacity,
		Width:            width,
		Height:           height,
		Encrypted:        o.passphrase != "",
		LegacyPayloadKey: header.UsesLegacyPayloadCipher(),
	}, nil
}
