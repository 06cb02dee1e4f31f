package export

import (
	"fmt"
	"io"
	"os"

	"github.com/jung-kurt/gofpdf"

	"SignDesk/internal/state"
)

// ReceiptInfo is printed above the signature.
type ReceiptInfo struct {
	Name     string
	Number   string
	SignedAt string
}

const (
	pageMargin = 20.0 // mm
	boxWidth   = 170.0
	boxHeight  = 60.0
)

// Receipt writes a one page PDF with the contract header and the submitted
// signature drawn stroke by stroke, scaled into a fixed box.
func Receipt(w io.Writer, info ReceiptInfo, r state.Receipt) error {
	p := gofpdf.New("P", "mm", "A4", "")
	p.SetTitle("Signature receipt "+info.Number, true)
	p.AddPage()

	p.SetFont("Helvetica", "B", 16)
	p.CellFormat(0, 10, "Signature receipt", "", 1, "L", false, 0, "")
	p.Ln(4)

	p.SetFont("Helvetica", "", 11)
	rows := [][2]string{
		{"Contract", info.Number},
		{"Signer", info.Name},
		{"Signed at", info.SignedAt},
		{"Contract ID", r.ContractID},
	}
	for _, row := range rows {
		p.CellFormat(35, 7, row[0], "", 0, "L", false, 0, "")
		p.CellFormat(0, 7, p.UnicodeTranslatorFromDescriptor("")(row[1]), "", 1, "L", false, 0, "")
	}
	p.Ln(6)

	top := p.GetY()
	p.SetDrawColor(200, 200, 200)
	p.SetLineWidth(0.2)
	p.Rect(pageMargin, top, boxWidth, boxHeight, "D")

	drawStrokes(p, r, pageMargin, top)

	if err := p.Output(w); err != nil {
		return fmt.Errorf("write receipt: %w", err)
	}
	return nil
}

func drawStrokes(p *gofpdf.Fpdf, r state.Receipt, left, top float64) {
	if r.Width <= 0 || r.Height <= 0 {
		return
	}
	scale := min(boxWidth/float64(r.Width), boxHeight/float64(r.Height))

	p.SetDrawColor(0, 0, 0)
	p.SetLineWidth(0.5)
	p.SetLineCapStyle("round")
	p.SetLineJoinStyle("round")
	for _, st := range r.Strokes() {
		if len(st) == 1 {
			x, y := left+st[0].X*scale, top+st[0].Y*scale
			p.Line(x, y, x, y)
			continue
		}
		for i := 1; i < len(st); i++ {
			p.Line(
				left+st[i-1].X*scale, top+st[i-1].Y*scale,
				left+st[i].X*scale, top+st[i].Y*scale,
			)
		}
	}
}

// ReceiptFile writes the receipt to path.
func ReceiptFile(path string, info ReceiptInfo, r state.Receipt) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Receipt(f, info, r); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
