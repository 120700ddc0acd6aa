package api

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/gompdf/blockpdf/internal/convert"
	"github.com/gompdf/blockpdf/internal/layout"
	"github.com/gompdf/blockpdf/internal/pagination"
	"github.com/gompdf/blockpdf/internal/res"
)

// Options represents configuration options for the block document converter
type Options struct {
	// Page dimensions
	PageWidth  float64
	PageHeight float64
	// Margin applies to all four sides
	Margin float64

	// Image options
	// DefaultDPI is assumed for images without resolution metadata
	DefaultDPI     float64
	MaxImageWidth  float64
	MaxImageHeight float64

	// Resource paths searched for relative image sources and icon overrides
	ResourcePaths []string

	// Document metadata
	Title    string
	Author   string
	Subject  string
	Keywords string
	Creator  string
	// CreationDate fixes the PDF timestamps for reproducible output
	CreationDate  time.Time
	NoCompression bool

	// Output format; anything but "pdf" goes through an office converter
	Format           string
	OfficeCandidates []string

	// Logger receives diagnostics. Nil discards them.
	Logger *log.Logger
}

// Option is a function that modifies Options
type Option func(*Options)

// DefaultOptions returns the default options
func DefaultOptions() Options {
	return Options{
		// A4 with 2cm margins
		PageWidth:  PageSizeA4Width,
		PageHeight: PageSizeA4Height,
		Margin:     pagination.DefaultMargin,

		DefaultDPI:     res.DefaultDPI,
		MaxImageWidth:  layout.DefaultMaxImageSize,
		MaxImageHeight: layout.DefaultMaxImageSize,

		ResourcePaths: []string{},
		Creator:       "blockpdf",

		Format:           convert.FormatPDF,
		OfficeCandidates: append([]string(nil), convert.DefaultCandidates...),
	}
}

// Geometry returns the page frame described by the options.
func (o Options) Geometry() pagination.Geometry {
	return pagination.Geometry{Width: o.PageWidth, Height: o.PageHeight, Margin: o.Margin}
}

// WithPageSize sets the page size
func WithPageSize(width, height float64) Option {
	return func(o *Options) {
		o.PageWidth = width
		o.PageHeight = height
	}
}

// WithMargin sets the page margin
func WithMargin(margin float64) Option {
	return func(o *Options) {
		o.Margin = margin
	}
}

// WithDefaultDPI sets the resolution assumed for images without metadata
func WithDefaultDPI(dpi float64) Option {
	return func(o *Options) {
		o.DefaultDPI = dpi
	}
}

// WithMaxImageSize bounds placed images
func WithMaxImageSize(width, height float64) Option {
	return func(o *Options) {
		o.MaxImageWidth = width
		o.MaxImageHeight = height
	}
}

// WithResourcePath adds a path to search for resources
func WithResourcePath(path string) Option {
	return func(o *Options) {
		o.ResourcePaths = append(o.ResourcePaths, path)
	}
}

// WithTitle sets the document title
func WithTitle(title string) Option {
	return func(o *Options) {
		o.Title = title
	}
}

// WithAuthor sets the document author
func WithAuthor(author string) Option {
	return func(o *Options) {
		o.Author = author
	}
}

// WithSubject sets the document subject
func WithSubject(subject string) Option {
	return func(o *Options) {
		o.Subject = subject
	}
}

// WithKeywords sets the document keywords
func WithKeywords(keywords string) Option {
	return func(o *Options) {
		o.Keywords = keywords
	}
}

// WithCreationDate fixes the document timestamps
func WithCreationDate(t time.Time) Option {
	return func(o *Options) {
		o.CreationDate = t
	}
}

// WithFormat sets the output format
func WithFormat(format string) Option {
	return func(o *Options) {
		o.Format = format
	}
}

// WithLogger sets the diagnostics logger
func WithLogger(logger *log.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// Standard page sizes in points (1/72 inch)
const (
	PageSizeA3Width  = 841.89
	PageSizeA3Height = 1190.55
	PageSizeA4Width  = 595.28
	PageSizeA4Height = 841.89
	PageSizeA5Width  = 419.53
	PageSizeA5Height = 595.28

	// US Letter and Legal
	PageSizeLetterWidth  = 612
	PageSizeLetterHeight = 792
	PageSizeLegalWidth   = 612
	PageSizeLegalHeight  = 1008
)

// WithPageSizeA4 sets the page size to A4
func WithPageSizeA4() Option {
	return WithPageSize(PageSizeA4Width, PageSizeA4Height)
}

// WithPageSizeLetter sets the page size to US Letter
func WithPageSizeLetter() Option {
	return WithPageSize(PageSizeLetterWidth, PageSizeLetterHeight)
}

// WithPageSizeLegal sets the page size to US Legal
func WithPageSizeLegal() Option {
	return WithPageSize(PageSizeLegalWidth, PageSizeLegalHeight)
}
