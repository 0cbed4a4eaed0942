package stats

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
)

const binWidthPixels = 50

var barColor = color.RGBA{G: 0xff, A: 0xff}

// Histogram bins a distribution into equal-width bins.
type Histogram struct {
	Distribution *Distribution
	Bins         []int
	BinWidth     float64
}

// NewHistogram uses 1+floor(sqrt(n)) bins spanning the distribution's range.
func NewHistogram(dist *Distribution) *Histogram {
	count := 1 + int(math.Sqrt(float64(dist.Size())))
	width := dist.Range / float64(count)
	return &Histogram{
		Distribution: dist,
		Bins:         binValues(dist, count, width),
		BinWidth:     width,
	}
}

func binValues(dist *Distribution, count int, width float64) []int {
	bins := make([]int, count)
	for _, v := range dist.Data {
		idx := 0
		if width > 0 {
			idx = int((v - dist.Min) / width)
		}
		if idx >= count {
			idx = count - 1
		}
		bins[idx]++
	}
	return bins
}

// Image draws the histogram as green bars on a square white canvas.
func (h *Histogram) Image() image.Image {
	size := binWidthPixels * len(h.Bins)
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	maxBin := 0
	for _, count := range h.Bins {
		maxBin = max(maxBin, count)
	}
	if maxBin == 0 {
		return img
	}

	bar := image.NewUniform(barColor)
	for i, count := range h.Bins {
		height := int(float64(count) / float64(maxBin) * float64(size))
		x := i * binWidthPixels
		rect := image.Rect(x, size-height, x+binWidthPixels, size)
		draw.Draw(img, rect, bar, image.Point{}, draw.Src)
	}
	return img
}

// WritePNG encodes the histogram image as PNG.
func (h *Histogram) WritePNG(w io.Writer) error {
	if err := png.Encode(w, h.Image()); err != nil {
		return fmt.Errorf("encode histogram: %w", err)
	}
	return nil
}
