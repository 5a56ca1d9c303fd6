// Package imageproc prepares rendered page images for OCR. All functions
// are pure: they read their input image and allocate a new one.
package imageproc

import (
	"image"
	"image/color"
)

const (
	// blankSampleCap bounds the number of pixels sampled by IsBlank.
	blankSampleCap = 1000

	// thresholdFloor is the minimum binarization threshold. Scanned
	// paystubs are rarely legitimately darker; a lower Otsu result is
	// treated as histogram noise. Very dark scans may be over-whitened
	// as a consequence.
	thresholdFloor = 100
)

// IsBlank reports whether an image appears to be a single flat color.
// It samples an evenly-distributed subset of pixels using two coprime
// strides (97 and 101) so the walk never aligns with table rules or other
// periodic page structure, and compares each sample against the first.
// Fewer than 1% differing samples means blank.
func IsBlank(img image.Image) bool {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w == 0 || h == 0 {
		return true
	}

	sampleSize := w * h / 100
	if sampleSize > blankSampleCap {
		sampleSize = blankSampleCap
	}

	fr, fg, fb, fa := img.At(bounds.Min.X, bounds.Min.Y).RGBA()

	different := 0
	for i := 0; i < sampleSize; i++ {
		x := bounds.Min.X + (i*97)%w
		y := bounds.Min.Y + (i*101)%h
		r, g, b, a := img.At(x, y).RGBA()
		if r != fr || g != fg || b != fb || a != fa {
			different++
		}
	}

	return different < sampleSize/100
}

// Grayscale converts an image to 8-bit grayscale using luminosity
// weighting (0.299R + 0.587G + 0.114B).
func Grayscale(img image.Image) *image.Gray {
	bounds := img.Bounds()
	gray := image.NewGray(bounds)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			v := luminosity(uint8(r>>8), uint8(g>>8), uint8(b>>8))
			gray.SetGray(x, y, color.Gray{Y: v})
		}
	}

	return gray
}

// Binarize converts an image to pure black and white for OCR. It
// grayscales with luminosity weighting, picks a global threshold with
// Otsu's method over the intensity histogram, clamps the threshold to a
// floor of 100, and maps every pixel to 0 or 255.
func Binarize(img image.Image) *image.Gray {
	bounds := img.Bounds()
	gray := image.NewGray(bounds)

	var histogram [256]int
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			v := luminosity(uint8(r>>8), uint8(g>>8), uint8(b>>8))
			histogram[v]++
			gray.SetGray(x, y, color.Gray{Y: v})
		}
	}

	threshold := OtsuThreshold(histogram, bounds.Dx()*bounds.Dy())
	if threshold < thresholdFloor {
		threshold = thresholdFloor
	}

	for i, v := range gray.Pix {
		if int(v) > threshold {
			gray.Pix[i] = 255
		} else {
			gray.Pix[i] = 0
		}
	}

	return gray
}

// OtsuThreshold computes the intensity threshold maximizing inter-class
// variance wB*wF*(mB-mF)^2 over the cumulative histogram. It runs in one
// pass over the 256 bins, never over pixels. Returns 128 when the
// histogram is degenerate (single class).
func OtsuThreshold(histogram [256]int, totalPixels int) int {
	var sum float64
	for i, count := range histogram {
		sum += float64(i) * float64(count)
	}

	var sumB float64
	wB := 0
	maxVariance := 0.0
	threshold := 128

	for t := 0; t < 256; t++ {
		wB += histogram[t]
		if wB == 0 {
			continue
		}
		wF := totalPixels - wB
		if wF == 0 {
			break
		}

		sumB += float64(t) * float64(histogram[t])
		mB := sumB / float64(wB)
		mF := (sum - sumB) / float64(wF)

		variance := float64(wB) * float64(wF) * (mB - mF) * (mB - mF)
		if variance > maxVariance {
			maxVariance = variance
			threshold = t
		}
	}

	return threshold
}

func luminosity(r, g, b uint8) uint8 {
	return uint8(0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b))
}
