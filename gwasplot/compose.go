package gwasplot

import (
	"bytes"
	"image"
	"image/png"
	"io"

	"github.com/carbocation/pfx"
	"github.com/fogleman/gg"
	"github.com/wcharczuk/go-chart/v2"
)

// renderPanel renders a chart to an in-memory image so that multi-panel
// figures can be composited before encoding.
func renderPanel(graph chart.Chart) (image.Image, error) {
	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, pfx.Err(err)
	}

	img, err := png.Decode(buffer)
	if err != nil {
		return nil, pfx.Err(err)
	}

	return img, nil
}

// sideBySide lays panels out horizontally on a white canvas, top-aligned.
func sideBySide(panels ...image.Image) image.Image {
	var width, height int
	for _, panel := range panels {
		width += panel.Bounds().Dx()
		if h := panel.Bounds().Dy(); h > height {
			height = h
		}
	}

	dc := gg.NewContext(width, height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	x := 0
	for _, panel := range panels {
		dc.DrawImage(panel, x, 0)
		x += panel.Bounds().Dx()
	}

	return dc.Image()
}

func writePNG(w io.Writer, img image.Image) error {
	return pfx.Err(png.Encode(w, img))
}
