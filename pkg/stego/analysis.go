package stego

import (
	"fmt"
	"image"
	"image/color"
	"math"
)

// AnalysisResult holds metrics about the comparison between two images.
type AnalysisResult struct {
	MSE             float64 // Mean Squared Error over R, G and B
	PSNR            float64 // Peak Signal-to-Noise Ratio (dB)
	ChangedPixels   int
	ChangedChannels int
	MaxDelta        int  // largest absolute change of any color channel
	AlphaChanged    bool // hiding never touches alpha, so this flags tampering
}

// Analyze compares a cover image with its stego copy. It returns metrics and
// a heatmap in which untouched pixels are black and changed pixels shade from
// green (small change) to red (the full two-bit range).
func Analyze(original, stego image.Image, opts ...Option) (*AnalysisResult, *image.NRGBA, error) {
	o := newOptions(opts)

	bounds := original.Bounds()
	if bounds != stego.Bounds() {
		return nil, nil, fmt.Errorf("image dimensions do not match: %v vs %v", bounds, stego.Bounds())
	}

	img1 := asNRGBA(original)
	img2 := asNRGBA(stego)
	heatmap := image.NewNRGBA(bounds)
	result := &AnalysisResult{}
	var sumSquaredError float64

	bar := o.newProgressBar(bounds.Dx()*bounds.Dy(), "analyzing")
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			bar.Add(1)
			p1 := getPixel(img1, x, y)
			p2 := getPixel(img2, x, y)

			diffSum := 0
			for i := 0; i < 3; i++ {
				diff := int(p1[i]) - int(p2[i])
				if diff < 0 {
					diff = -diff
				}
				if diff > 0 {
					result.ChangedChannels++
				}
				if diff > result.MaxDelta {
					result.MaxDelta = diff
				}
				sumSquaredError += float64(diff * diff)
				diffSum += diff
			}
			if p1[3] != p2[3] {
				result.AlphaChanged = true
			}

			if diffSum == 0 {
				heatmap.SetNRGBA(x, y, color.NRGBA{A: 255})
				continue
			}
			result.ChangedPixels++
			// 3 channels × 3 levels is the largest change the codec makes.
			intensity := uint8(math.Min(255, float64(diffSum)*255/9))
			heatmap.SetNRGBA(x, y, color.NRGBA{R: intensity, G: 255 - intensity, A: 255})
		}
	}
	bar.Finish()

	totalPixels := float64(bounds.Dx() * bounds.Dy())
	if totalPixels > 0 {
		result.MSE = sumSquaredError / (totalPixels * 3.0)
	}
	result.PSNR = 10 * math.Log10((255*255)/result.MSE)

	return result, heatmap, nil
}
