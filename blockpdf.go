// Package blockpdf converts block documents (the Editor.js JSON format) into
// paginated PDF files.
package blockpdf

import (
	"github.com/gompdf/blockpdf/pkg/api"
)

type Converter = api.Converter
type Options = api.Options
type Option = api.Option

func New(opts ...Option) *Converter                         { return api.New(opts...) }
func NewWithOptions(options Options) *Converter             { return api.NewWithOptions(options) }
func DefaultOptions() Options                               { return api.DefaultOptions() }
func LoadConfig(path string, base Options) (Options, error) { return api.LoadConfig(path, base) }

var (
	WithPageSize       = api.WithPageSize
	WithMargin         = api.WithMargin
	WithDefaultDPI     = api.WithDefaultDPI
	WithMaxImageSize   = api.WithMaxImageSize
	WithResourcePath   = api.WithResourcePath
	WithTitle          = api.WithTitle
	WithAuthor         = api.WithAuthor
	WithSubject        = api.WithSubject
	WithKeywords       = api.WithKeywords
	WithCreationDate   = api.WithCreationDate
	WithFormat         = api.WithFormat
	WithLogger         = api.WithLogger
	WithPageSizeA4     = api.WithPageSizeA4
	WithPageSizeLetter = api.WithPageSizeLetter
	WithPageSizeLegal  = api.WithPageSizeLegal
)

const (
	PageSizeA3Width  = api.PageSizeA3Width
	PageSizeA3Height = api.PageSizeA3Height
	PageSizeA4Width  = api.PageSizeA4Width
	PageSizeA4Height = api.PageSizeA4Height
	PageSizeA5Width  = api.PageSizeA5Width
	PageSizeA5Height = api.PageSizeA5Height

	PageSizeLetterWidth  = api.PageSizeLetterWidth
	PageSizeLetterHeight = api.PageSizeLetterHeight
	PageSizeLegalWidth   = api.PageSizeLegalWidth
	PageSizeLegalHeight  = api.PageSizeLegalHeight
)
