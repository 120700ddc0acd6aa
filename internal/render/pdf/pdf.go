// Package pdf writes laid-out pages as a PDF document using fpdf core fonts.
package pdf

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"codeberg.org/go-pdf/fpdf"
	"github.com/charmbracelet/log"
	"github.com/gompdf/blockpdf/internal/pagination"
	"github.com/gompdf/blockpdf/internal/style"
	"github.com/gompdf/blockpdf/internal/text"
)

// Producer is written into the document info when none is configured.
const Producer = "blockpdf"

// Renderer handles rendering to PDF
type Renderer struct {
	Logger *log.Logger
}

// RenderOptions contains options for rendering
type RenderOptions struct {
	Title    string
	Author   string
	Subject  string
	Keywords string
	Creator  string
	Producer string
	// CreationDate fixes the creation and modification timestamps. The zero
	// value uses the current time.
	CreationDate time.Time
	// NoCompression disables stream compression.
	NoCompression bool
}

// NewRenderer creates a new PDF renderer
func NewRenderer() *Renderer {
	return &Renderer{Logger: log.New(io.Discard)}
}

// Render writes pages as a PDF to w. Page coordinates are bottom-up and are
// flipped to fpdf's top-down space here.
func (r *Renderer) Render(pages []*pagination.Page, w io.Writer, options RenderOptions) error {
	if len(pages) == 0 {
		return fmt.Errorf("no pages to render")
	}
	first := pages[0]
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: first.Width, Ht: first.Height},
	})
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(0, 0, 0)
	pdf.SetCompression(!options.NoCompression)
	pdf.SetCatalogSort(true)

	producer := options.Producer
	if producer == "" {
		producer = Producer
	}
	pdf.SetTitle(options.Title, true)
	pdf.SetAuthor(options.Author, true)
	pdf.SetSubject(options.Subject, true)
	pdf.SetKeywords(options.Keywords, true)
	pdf.SetCreator(options.Creator, true)
	pdf.SetProducer(producer, true)
	if !options.CreationDate.IsZero() {
		pdf.SetCreationDate(options.CreationDate)
		pdf.SetModificationDate(options.CreationDate)
	}

	images := make(map[string]bool)
	for _, page := range pages {
		pdf.AddPageFormat("P", fpdf.SizeType{Wd: page.Width, Ht: page.Height})
		for _, op := range page.Ops {
			switch o := op.(type) {
			case pagination.TextOp:
				r.drawText(pdf, page.Height, o)
			case pagination.RectOp:
				r.drawRect(pdf, page.Height, o)
			case pagination.ImageOp:
				r.drawImage(pdf, page.Height, o, images)
			}
		}
		if pdf.Err() {
			return fmt.Errorf("failed to render page %d: %w", page.Number, pdf.Error())
		}
	}
	r.Logger.Debug("writing pdf", "pages", len(pages), "images", len(images))

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to write pdf: %w", err)
	}
	return nil
}

func (r *Renderer) drawText(pdf *fpdf.Fpdf, pageH float64, o pagination.TextOp) {
	if o.Text == "" {
		return
	}
	pdf.SetFont(o.Font.Family, o.Font.StyleString(), o.Font.Size)
	setTextColor(pdf, o.Color)
	pdf.Text(o.X, pageH-o.Y, text.Encode(o.Text))
	if o.Link != "" && o.Width > 0 {
		top := pageH - (o.Y + o.Font.Size*0.8)
		pdf.LinkString(o.X, top, o.Width, o.Font.Size, o.Link)
	}
}

func (r *Renderer) drawRect(pdf *fpdf.Fpdf, pageH float64, o pagination.RectOp) {
	mode := ""
	if o.Fill != nil {
		setFillColor(pdf, *o.Fill)
		mode += "F"
	}
	if o.Stroke != nil {
		setDrawColor(pdf, *o.Stroke)
		lw := o.LineWidth
		if lw <= 0 {
			lw = 1
		}
		pdf.SetLineWidth(lw)
		mode += "D"
	}
	if mode == "" {
		return
	}
	top := pageH - (o.Y + o.H)
	if o.Radius > 0 {
		pdf.RoundedRect(o.X, top, o.W, o.H, o.Radius, "1234", mode)
		return
	}
	pdf.Rect(o.X, top, o.W, o.H, mode)
}

// drawImage registers each payload once under its name and places it.
func (r *Renderer) drawImage(pdf *fpdf.Fpdf, pageH float64, o pagination.ImageOp, seen map[string]bool) {
	opts := fpdf.ImageOptions{ImageType: "PNG", AllowNegativePosition: true}
	if !seen[o.Name] {
		pdf.RegisterImageOptionsReader(o.Name, opts, bytes.NewReader(o.Data))
		if pdf.Err() {
			r.Logger.Warn("failed to embed image", "name", o.Name, "err", pdf.Error())
			pdf.ClearError()
			return
		}
		seen[o.Name] = true
	}
	pdf.ImageOptions(o.Name, o.X, pageH-(o.Y+o.H), o.W, o.H, false, opts, 0, "")
}

func setTextColor(pdf *fpdf.Fpdf, c style.Color) {
	pdf.SetTextColor(int(c.R), int(c.G), int(c.B))
}

func setFillColor(pdf *fpdf.Fpdf, c style.Color) {
	pdf.SetFillColor(int(c.R), int(c.G), int(c.B))
}

func setDrawColor(pdf *fpdf.Fpdf, c style.Color) {
	pdf.SetDrawColor(int(c.R), int(c.G), int(c.B))
}
