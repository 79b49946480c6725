// Package export provides functionality for exporting computed cut lists
// to various file formats.
package export

import (
	"fmt"
	"sort"

	"github.com/go-pdf/fpdf"

	"github.com/piwi3910/CabCut/internal/engine"
	"github.com/piwi3910/CabCut/internal/model"
)

// Page layout constants (A4 portrait in mm).
const (
	pageWidth    = 210.0
	pageHeight   = 297.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	rowHeight    = 6.0
)

// ExportCutListPDF generates a PDF cut list for a computed unit: a parts
// table followed by material usage and cost sections. title appears in the
// page header, typically the unit type and dimensions.
func ExportCutListPDF(path, title string, summary engine.Summary) error {
	if len(summary.Items) == 0 {
		return fmt.Errorf("no parts to export")
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, marginBottom)
	pdf.AddPage()

	// Title
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 8, title, "", 1, "L", false, 0, "")

	// Stats line
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetX(marginLeft)
	stats := fmt.Sprintf("Parts: %d | Pieces: %d | Area: %.4f m² | Edge band: %.2f m",
		summary.Totals.TotalParts, summary.Totals.TotalQty,
		summary.Totals.TotalAreaM2, summary.Totals.TotalEdgeBandM)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 1, "L", false, 0, "")

	// Separator line
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.4)
	y := pdf.GetY() + 2
	pdf.Line(marginLeft, y, pageWidth-marginRight, y)
	pdf.SetY(y + 3)

	renderPartsTable(pdf, summary.Items)
	renderUsageSection(pdf, summary)

	// Footer
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, "Generated by CabCut - Cabinet Cut List Calculator", "", 0, "C", false, 0, "")

	return pdf.OutputFileAndClose(path)
}

// renderPartsTable draws the cut-list table starting at the current Y position.
func renderPartsTable(pdf *fpdf.Fpdf, parts []model.Part) {
	colWidths := []float64{48, 22, 22, 14, 12, 24, 20, 18}
	headers := []string{"Part", "Width (cm)", "Height (cm)", "Thk", "Qty", "Edges", "Area m²", "Band m"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	xPos := marginLeft
	for i, header := range headers {
		pdf.SetX(xPos)
		pdf.CellFormat(colWidths[i], rowHeight, header, "1", 0, "C", true, 0, "")
		xPos += colWidths[i]
	}
	pdf.Ln(rowHeight)

	pdf.SetFont("Helvetica", "", 9)
	for i, p := range parts {
		thickness := "-"
		if p.Depth > 0 {
			thickness = fmt.Sprintf("%.1f", p.Depth)
		}
		rowData := []string{
			p.Name,
			fmt.Sprintf("%.2f", p.Width),
			fmt.Sprintf("%.2f", p.Height),
			thickness,
			fmt.Sprintf("%d", p.Qty),
			p.Edges.String(),
			fmt.Sprintf("%.4f", p.AreaM2),
			fmt.Sprintf("%.2f", p.EdgeBandM),
		}

		// Alternate row background
		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}

		xPos = marginLeft
		for j, cell := range rowData {
			align := "C"
			if j == 0 {
				align = "L"
			}
			pdf.SetX(xPos)
			pdf.CellFormat(colWidths[j], rowHeight, cell, "1", 0, align, true, 0, "")
			xPos += colWidths[j]
		}
		pdf.Ln(rowHeight)
	}
}

// renderUsageSection draws material usage and cost lines below the table.
func renderUsageSection(pdf *fpdf.Fpdf, summary engine.Summary) {
	y := pdf.GetY() + 6
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Material Usage", "", 1, "L", false, 0, "")

	usageItems := []struct {
		label string
		value string
	}{
		{"Plywood sheets", fmt.Sprintf("%.2f", summary.MaterialUsage.PlywoodSheets)},
		{"Edge band", fmt.Sprintf("%.2f m", summary.MaterialUsage.EdgeBandM)},
		{"Total area", fmt.Sprintf("%.4f m²", summary.MaterialUsage.TotalAreaM2)},
	}

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range usageItems {
		pdf.SetX(marginLeft + 5)
		pdf.CellFormat(50, 6, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(40, 6, item.value, "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
	}

	if len(summary.Costs) == 0 {
		return
	}

	pdf.Ln(3)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetX(marginLeft)
	pdf.CellFormat(100, 7, "Cost Estimate", "", 1, "L", false, 0, "")

	// Stable ordering, total last
	keys := make([]string, 0, len(summary.Costs))
	for k := range summary.Costs {
		if k != "total_cost" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	if _, ok := summary.Costs["total_cost"]; ok {
		keys = append(keys, "total_cost")
	}

	pdf.SetFont("Helvetica", "", 10)
	for _, k := range keys {
		pdf.SetX(marginLeft + 5)
		pdf.CellFormat(50, 6, costLabel(k)+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(40, 6, fmt.Sprintf("%.2f", summary.Costs[k]), "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
	}
}

func costLabel(key string) string {
	switch key {
	case "material_cost":
		return "Material"
	case "edge_band_cost":
		return "Edge band"
	case "total_cost":
		return "Total"
	default:
		return key
	}
}
