package ai

import (
	"bytes"
	"fmt"

	"github.com/ardanlabs/connect4/cmd/connect/engine"
	"github.com/fogleman/gg"
)

// Image geometry.
const (
	imageWidth  = 190
	imageHeight = 165
	imageMargin = 20
	imageGap    = 25
	imageRadius = 10
)

// GenerateImage draws the board as a PNG: one circle per cell laid out row
// by row from the top, green for empty, blue for player A and red for
// player B.
func GenerateImage(s engine.State) ([]byte, error) {
	dc := gg.NewContext(imageWidth, imageHeight)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	y := float64(imageMargin)

	for row := range engine.Rows {
		x := float64(imageMargin)

		for col := range engine.Cols {
			switch s.At(col, row) {
			case engine.MarkerA:
				dc.SetRGB(0, 0, 1)
			case engine.MarkerB:
				dc.SetRGB(1, 0, 0)
			default:
				dc.SetRGB(0, 1, 0)
			}

			dc.DrawCircle(x, y, imageRadius)
			dc.Fill()

			x += imageGap
		}

		y += imageGap
	}

	var b bytes.Buffer
	if err := dc.EncodePNG(&b); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}

	return b.Bytes(), nil
}
