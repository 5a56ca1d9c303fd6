package imageproc

import (
	"image"
	"image/color"
	"testing"
)

func uniformImage(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestIsBlank_UniformImage(t *testing.T) {
	img := uniformImage(100, 100, color.White)
	if !IsBlank(img) {
		t.Error("uniform white image should be blank")
	}

	img = uniformImage(100, 100, color.Black)
	if !IsBlank(img) {
		t.Error("uniform black image should be blank")
	}
}

func TestIsBlank_ImageWithContent(t *testing.T) {
	img := uniformImage(100, 100, color.White)
	// Darken the left half so well over 1% of samples differ from the
	// first pixel.
	for y := 0; y < 100; y++ {
		for x := 0; x < 50; x++ {
			img.Set(x, y, color.Black)
		}
	}

	if IsBlank(img) {
		t.Error("half-black image should not be blank")
	}
}

func TestIsBlank_EmptyImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 0, 0))
	if !IsBlank(img) {
		t.Error("zero-size image should be blank")
	}
}

func TestGrayscale_LuminosityWeights(t *testing.T) {
	tests := []struct {
		name string
		in   color.RGBA
		want uint8
	}{
		{"red", color.RGBA{R: 255, A: 255}, 76},
		{"green", color.RGBA{G: 255, A: 255}, 149},
		{"blue", color.RGBA{B: 255, A: 255}, 29},
		{"white", color.RGBA{R: 255, G: 255, B: 255, A: 255}, 255},
		{"black", color.RGBA{A: 255}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := uniformImage(4, 4, tt.in)
			gray := Grayscale(img)
			if got := gray.GrayAt(0, 0).Y; got != tt.want {
				t.Errorf("expected gray value %d, got %d", tt.want, got)
			}
		})
	}
}

func TestOtsuThreshold_BimodalHistogram(t *testing.T) {
	// Two separated intensity clusters: ink around 45-55, paper around
	// 195-205. The threshold must land strictly between them.
	var histogram [256]int
	total := 0
	for i := 45; i <= 55; i++ {
		histogram[i] = 100
		total += 100
	}
	for i := 195; i <= 205; i++ {
		histogram[i] = 100
		total += 100
	}

	threshold := OtsuThreshold(histogram, total)
	if threshold < 55 || threshold >= 195 {
		t.Errorf("expected threshold between clusters (55-194), got %d", threshold)
	}
}

func TestOtsuThreshold_DarkClustersBelowFloor(t *testing.T) {
	// Both clusters in the dark range: the raw Otsu result sits below
	// the binarization floor of 100.
	var histogram [256]int
	total := 0
	for i := 15; i <= 25; i++ {
		histogram[i] = 100
		total += 100
	}
	for i := 75; i <= 85; i++ {
		histogram[i] = 100
		total += 100
	}

	threshold := OtsuThreshold(histogram, total)
	if threshold >= 100 {
		t.Errorf("expected raw threshold below 100 for dark clusters, got %d", threshold)
	}
	if threshold < 15 || threshold >= 75 {
		t.Errorf("expected threshold between dark clusters, got %d", threshold)
	}
}

func TestOtsuThreshold_DegenerateHistogram(t *testing.T) {
	var histogram [256]int
	histogram[128] = 1000

	if got := OtsuThreshold(histogram, 1000); got != 128 {
		t.Errorf("expected default threshold 128 for single-class histogram, got %d", got)
	}
}

func TestBinarize_ProducesPureBlackAndWhite(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if (x+y)%2 == 0 {
				img.Set(x, y, color.RGBA{R: 30, G: 30, B: 30, A: 255})
			} else {
				img.Set(x, y, color.RGBA{R: 220, G: 220, B: 220, A: 255})
			}
		}
	}

	out := Binarize(img)
	for i, v := range out.Pix {
		if v != 0 && v != 255 {
			t.Fatalf("pixel %d is %d, expected pure black or white", i, v)
		}
	}
}

func TestBinarize_ThresholdFloorApplied(t *testing.T) {
	// Both intensity clusters (20 and 80) sit below the floor of 100.
	// Without the clamp the 80s would come out white; with it every pixel
	// is below the applied threshold and maps to black.
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if x < 5 {
				img.Set(x, y, color.RGBA{R: 20, G: 20, B: 20, A: 255})
			} else {
				img.Set(x, y, color.RGBA{R: 80, G: 80, B: 80, A: 255})
			}
		}
	}

	out := Binarize(img)
	for i, v := range out.Pix {
		if v != 0 {
			t.Fatalf("pixel %d is %d, expected all black under clamped threshold", i, v)
		}
	}
}
