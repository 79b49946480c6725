package export

import (
	"fmt"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/drawing"

	"github.com/piwi3910/CabCut/internal/model"
)

// DXF layout constants (mm). Panels are placed left to right with a fixed
// gap, wrapping to a new row when the running width exceeds rowWrapWidth.
const (
	dxfGap       = 50.0
	rowWrapWidth = 3000.0
	cmToMM       = 10.0
)

// ExportDXF writes every physical piece of the part list as a rectangle
// outline in a DXF drawing, one layer per part name. Dimensions are
// converted from centimeters to millimeters. Parts with a non-positive
// width or height are skipped.
func ExportDXF(path string, parts []model.Part) error {
	d := dxf.NewDrawing()

	var x, y, rowHeight float64
	drawn := 0
	layers := map[string]bool{}
	for _, p := range parts {
		if p.Width <= 0 || p.Height <= 0 {
			continue
		}

		if layers[p.Name] {
			if err := d.ChangeLayer(p.Name); err != nil {
				return fmt.Errorf("failed to switch to layer %q: %w", p.Name, err)
			}
		} else {
			if _, err := d.AddLayer(p.Name, dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
				return fmt.Errorf("failed to add layer %q: %w", p.Name, err)
			}
			layers[p.Name] = true
		}

		w := p.Width * cmToMM
		h := p.Height * cmToMM
		for piece := 0; piece < p.Qty; piece++ {
			if x > 0 && x+w > rowWrapWidth {
				x = 0
				y += rowHeight + dxfGap
				rowHeight = 0
			}
			drawRect(d, x, y, w, h)
			x += w + dxfGap
			if h > rowHeight {
				rowHeight = h
			}
			drawn++
		}
	}

	if drawn == 0 {
		return fmt.Errorf("no parts with positive dimensions to export")
	}
	return d.SaveAs(path)
}

// drawRect draws an axis-aligned rectangle outline on the current layer.
func drawRect(d *drawing.Drawing, x, y, w, h float64) {
	d.Line(x, y, 0, x+w, y, 0)
	d.Line(x+w, y, 0, x+w, y+h, 0)
	d.Line(x+w, y+h, 0, x, y+h, 0)
	d.Line(x, y+h, 0, x, y, 0)
}
