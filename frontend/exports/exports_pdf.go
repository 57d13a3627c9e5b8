package exports

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"strconv"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
	"github.com/jung-kurt/gofpdf"

	"herbadmin/frontend/collective"
	"herbadmin/models"
)

// renderCollectivePDF builds the printable collective order for the
// supplier.
func renderCollectivePDF(batchName string, rows []collective.Row) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Sammelbestellung", false)
	pdf.AddPage()

	translator := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 12, translator("Sammelbestellung"), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 8, translator(batchName), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(120, 8, translator("Kräuter"), "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 8, translator("Anzahl"), "1", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	for _, row := range rows {
		pdf.CellFormat(120, 8, translator(row.HerbName), "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 8, strconv.FormatFloat(row.Quantity, 'f', -1, 64), "1", 1, "R", false, 0, "")
	}

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// renderPackingSlipPDF builds the per-order packing slip. The barcode
// carries the external order id so the slip can be scanned back to the
// order.
func renderPackingSlipPDF(order models.Order, herbs map[int64]models.Herb) ([]byte, error) {
	barcodePNG, err := renderCode128PNG(order.ExternalID, 1200, 220)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Packzettel", false)
	pdf.AddPage()

	translator := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 12, translator("Packzettel"), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 7, translator(order.FirstName+" "+order.LastName), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, translator(order.Mail), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(120, 8, translator("Kräuter"), "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 8, translator("Anzahl"), "1", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	for _, line := range order.Lines {
		name := herbs[line.HerbID].Name
		if name == "" {
			name = fmt.Sprintf("Kraut %d", line.HerbID)
		}
		pdf.CellFormat(120, 8, translator(name), "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 8, strconv.FormatFloat(line.Quantity, 'f', -1, 64), "1", 1, "R", false, 0, "")
	}

	opt := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: false}
	imageName := "order-barcode-" + order.ExternalID
	pdf.RegisterImageOptionsReader(imageName, opt, bytes.NewReader(barcodePNG))
	pageW, pageH := pdf.GetPageSize()
	imgW := 120.0
	imgH := 24.0
	x := (pageW - imgW) / 2
	y := pageH - 50
	pdf.ImageOptions(imageName, x, y, imgW, imgH, false, opt, 0, "")

	pdf.SetY(y + imgH + 2)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, order.ExternalID, "", 1, "C", false, 0, "")

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func renderCode128PNG(value string, width, height int) ([]byte, error) {
	code, err := code128.Encode(value)
	if err != nil {
		return nil, err
	}
	scaled, err := barcode.Scale(code, width, height)
	if err != nil {
		return nil, err
	}
	normalized := toNRGBA(scaled)
	var barcodePNG bytes.Buffer
	if err := png.Encode(&barcodePNG, normalized); err != nil {
		return nil, err
	}
	return barcodePNG.Bytes(), nil
}

func toNRGBA(src image.Image) *image.NRGBA {
	bounds := src.Bounds()
	dst := image.NewNRGBA(bounds)
	draw.Draw(dst, bounds, src, bounds.Min, draw.Src)
	return dst
}
