package stego

// Header versions and their properties:
//
//	version | size | byte 0   bytes 1-4          | payload cipher
//	--------+------+----------------------------+------------------------
//	0       | 5    | version  size (big-endian) | continues header stream
//	1       | 5    | version  size (big-endian) | fresh current stream
const (
	LegacyVersion  byte = 0
	CurrentVersion byte = 1

	HeaderSize = 5
)

// Header frames the hidden payload. The zero value is an empty header ready
// to be fed with AddByte.
type Header struct {
	Version  byte
	FileSize int32

	scanned     int
	complete    bool
	unsupported bool
}

// NewHeader returns a complete header for a payload of size bytes.
func NewHeader(version byte, size int32) *Header {
	return &Header{
		Version:  version,
		FileSize: size,
		scanned:  HeaderSize,
		complete: true,
	}
}

// AddByte consumes the next header byte. Once the version byte turns out to
// be unsupported no further bytes are interpreted, since the length of an
// unknown header cannot be known.
func (h *Header) AddByte(b byte) {
	if h.unsupported || h.complete {
		return
	}

	if h.scanned == 0 {
		h.Version = b
		h.scanned++
		if h.Version > CurrentVersion {
			h.unsupported = true
		}
		return
	}

	// versions 0 and 1 share the layout
	h.FileSize = h.FileSize<<8 | int32(b)
	h.scanned++
	if h.scanned == HeaderSize {
		h.complete = true
	}
}

func (h *Header) IsComplete() bool {
	return h.complete
}

func (h *Header) IsUnsupported() bool {
	return h.unsupported
}

// Size is the encoded length of the header.
func (h *Header) Size() int {
	return HeaderSize
}

// UsesLegacyPayloadCipher reports whether the payload keeps the header's
// keystream instead of switching to the current one.
func (h *Header) UsesLegacyPayloadCipher() bool {
	return h.Version == LegacyVersion
}

// MarshalBinary encodes the header as version followed by the big-endian size.
func (h *Header) MarshalBinary() ([]byte, error) {
	buf := make([]byte, HeaderSize)
	buf[0] = h.Version
	buf[1] = byte(h.FileSize >> 24)
	buf[2] = byte(h.FileSize >> 16)
	buf[3] = byte(h.FileSize >> 8)
	buf[4] = byte(h.FileSize)
	return buf, nil
}

// UnmarshalBinary resets h and feeds it data one byte at a time.
func (h *Header) UnmarshalBinary(data []byte) error {
	*h = Header{}
	for _, b := range data {
		h.AddByte(b)
		if h.unsupported {
			return errUnsupportedHeader(h.Version)
		}
		if h.complete {
			return nil
		}
	}
	return newError(ErrTruncatedHeader, "header is incomplete",
		"expected 5 header bytes")
}
