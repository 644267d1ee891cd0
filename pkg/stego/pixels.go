package stego

import (
	"image"
	"io"
)

const (
	pairsPerPixel = 3
	pairsPerByte  = 4
	pairMask      = 0x03
	keepMask      = 0xFC
)

// pairBuffer queues 2-bit values between the byte side and the pixel side.
// Six slots cover the worst case of a partial pixel plus one byte.
type pairBuffer struct {
	pairs [6]uint8
	n     int
}

func (p *pairBuffer) push(v uint8) {
	p.pairs[p.n] = v & pairMask
	p.n++
}

// drop discards the oldest k pairs.
func (p *pairBuffer) drop(k int) {
	copy(p.pairs[:], p.pairs[k:p.n])
	p.n -= k
}

// PixelReader extracts bytes from the two low bits of the R, G and B
// channels of each pixel, in row-major order.
type PixelReader struct {
	img     *image.NRGBA
	stepper *pixelStepper
	buf     pairBuffer
}

var _ io.ByteReader = (*PixelReader)(nil)

func NewPixelReader(img *image.NRGBA) *PixelReader {
	return &PixelReader{
		img:     img,
		stepper: makePixelStepper(img.Bounds()),
	}
}

// ReadByte returns the next hidden byte, or io.EOF once the pixels cannot
// supply four more pairs.
func (r *PixelReader) ReadByte() (byte, error) {
	for r.buf.n < pairsPerByte {
		x, y, err := r.stepper.next()
		if err != nil {
			return 0, io.EOF
		}
		pixel := getPixel(r.img, x, y)
		r.buf.push(pixel[0])
		r.buf.push(pixel[1])
		r.buf.push(pixel[2])
	}

	p := r.buf.pairs
	b := p[0]<<6 | p[1]<<4 | p[2]<<2 | p[3]
	r.buf.drop(pairsPerByte)
	return b, nil
}

// Pixels reports how many pixels have been read.
func (r *PixelReader) Pixels() int {
	return r.stepper.numPixelsVisited
}

// PixelWriter hides bytes in the two low bits of the R, G and B channels of
// each pixel, in row-major order. The upper six bits of every channel and
// the alpha channel are left as they were.
type PixelWriter struct {
	img     *image.NRGBA
	stepper *pixelStepper
	buf     pairBuffer
}

var (
	_ io.ByteWriter = (*PixelWriter)(nil)
	_ io.Writer     = (*PixelWriter)(nil)
)

func NewPixelWriter(img *image.NRGBA) *PixelWriter {
	return &PixelWriter{
		img:     img,
		stepper: makePixelStepper(img.Bounds()),
	}
}

// WriteByte queues b, most significant pair first, and writes every complete
// pixel's worth of pairs.
func (w *PixelWriter) WriteByte(b byte) error {
	for shift := 6; shift >= 0; shift -= 2 {
		w.buf.push(b >> uint(shift))
	}
	for w.buf.n >= pairsPerPixel {
		if err := w.writePixel(); err != nil {
			return err
		}
	}
	return nil
}

func (w *PixelWriter) Write(p []byte) (int, error) {
	for i, b := range p {
		if err := w.WriteByte(b); err != nil {
			return i, err
		}
	}
	return len(p), nil
}

// Flush pads the last partial pixel with zero pairs and writes it.
func (w *PixelWriter) Flush() error {
	if w.buf.n == 0 {
		return nil
	}
	for w.buf.n < pairsPerPixel {
		w.buf.push(0)
	}
	return w.writePixel()
}

// Pixels reports how many pixels have been written.
func (w *PixelWriter) Pixels() int {
	return w.stepper.numPixelsVisited
}

func (w *PixelWriter) writePixel() error {
	x, y, err := w.stepper.next()
	if err != nil {
		return newError(ErrImageTooSmall, "image too small", err.Error())
	}
	pixel := getPixel(w.img, x, y)
	for c := 0; c < pairsPerPixel; c++ {
		pixel[c] = pixel[c]&keepMask | w.buf.pairs[c]
	}
	w.buf.drop(pairsPerPixel)
	return nil
}
