package stego

import (
	"errors"
	"image"
)

var errStepperExhausted = errors.New("more steps taken than pixels in the image")

// pixelStepper walks the pixels of an image in row-major order, so the n-th
// pixel visited is (n % width, n / width) relative to the image origin.
type pixelStepper struct {
	x      int
	y      int
	bounds image.Rectangle

	numPixelsVisited int
}

func makePixelStepper(bounds image.Rectangle) *pixelStepper {
	return &pixelStepper{
		x:      bounds.Min.X,
		y:      bounds.Min.Y,
		bounds: bounds,
	}
}

func (self *pixelStepper) done() bool {
	return self.bounds.Empty() || self.y >= self.bounds.Max.Y
}

// next returns the current pixel coordinates and advances the cursor.
func (self *pixelStepper) next() (int, int, error) {
	if self.done() {
		return 0, 0, errStepperExhausted
	}

	x, y := self.x, self.y
	self.numPixelsVisited++

	self.x++
	if self.x >= self.bounds.Max.X {
		self.x = self.bounds.Min.X
		self.y++
	}

	return x, y, nil
}
