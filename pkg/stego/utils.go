package stego

import (
	"image"
	"image/draw"
)

func getPixel(img *image.NRGBA, x int, y int) []uint8 {
	index := img.PixOffset(x, y)
	return img.Pix[index : index+4]
}

// copyImage returns a non-premultiplied copy of img. An *image.NRGBA is
// copied byte for byte so hidden bits survive even under zero alpha.
func copyImage(img image.Image) *image.NRGBA {
	bounds := img.Bounds()
	outputImage := image.NewNRGBA(bounds)

	if src, ok := img.(*image.NRGBA); ok {
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			i := src.PixOffset(bounds.Min.X, y)
			j := outputImage.PixOffset(bounds.Min.X, y)
			copy(outputImage.Pix[j:j+4*bounds.Dx()], src.Pix[i:i+4*bounds.Dx()])
		}
		return outputImage
	}

	draw.Draw(outputImage, bounds, img, bounds.Min, draw.Src)
	return outputImage
}

// Capacity is the number of bytes, header included, that a width×height
// image can carry at two bits in each of three channels per pixel.
func Capacity(width, height int) int {
	if width <= 0 || height <= 0 {
		return 0
	}
	return width * height * pairsPerPixel * 2 / 8
}

// PayloadCapacity is Capacity minus the header.
func PayloadCapacity(width, height int) int {
	c := Capacity(width, height) - HeaderSize
	if c < 0 {
		return 0
	}
	return c
}
