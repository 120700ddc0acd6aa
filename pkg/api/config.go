package api

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gompdf/blockpdf/internal/pagination"
)

// ErrInvalidConfig is returned for config files that decode but make no sense.
var ErrInvalidConfig = errors.New("invalid config")

type fileConfig struct {
	Page struct {
		Size   string   `toml:"size"`
		Width  *float64 `toml:"width"`
		Height *float64 `toml:"height"`
		Margin *float64 `toml:"margin"`
	} `toml:"page"`
	Image struct {
		DefaultDPI *float64 `toml:"default_dpi"`
		MaxWidth   *float64 `toml:"max_width"`
		MaxHeight  *float64 `toml:"max_height"`
	} `toml:"image"`
	Metadata struct {
		Title    *string `toml:"title"`
		Author   *string `toml:"author"`
		Subject  *string `toml:"subject"`
		Keywords *string `toml:"keywords"`
		Creator  *string `toml:"creator"`
	} `toml:"metadata"`
	Output struct {
		Format      string   `toml:"format"`
		Office      []string `toml:"office"`
		Compression *bool    `toml:"compression"`
	} `toml:"output"`
	Assets struct {
		Paths []string `toml:"paths"`
	} `toml:"assets"`
}

// LoadConfig reads a TOML config file over base. Keys absent from the file
// keep their base value; unknown keys are an error.
func LoadConfig(path string, base Options) (Options, error) {
	var fc fileConfig
	md, err := toml.DecodeFile(path, &fc)
	if err != nil {
		return base, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return base, fmt.Errorf("%w: unknown keys in %s: %s", ErrInvalidConfig, path, strings.Join(keys, ", "))
	}
	return fc.apply(base)
}

func (fc fileConfig) apply(o Options) (Options, error) {
	if fc.Page.Size != "" {
		size, ok := pagination.SizeByName(fc.Page.Size)
		if !ok {
			return o, fmt.Errorf("%w: unknown page size %q", ErrInvalidConfig, fc.Page.Size)
		}
		o.PageWidth, o.PageHeight = size.Width, size.Height
	}
	setFloat(&o.PageWidth, fc.Page.Width)
	setFloat(&o.PageHeight, fc.Page.Height)
	setFloat(&o.Margin, fc.Page.Margin)
	if err := o.Geometry().Validate(); err != nil {
		return o, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	setFloat(&o.DefaultDPI, fc.Image.DefaultDPI)
	setFloat(&o.MaxImageWidth, fc.Image.MaxWidth)
	setFloat(&o.MaxImageHeight, fc.Image.MaxHeight)
	if o.DefaultDPI <= 0 {
		return o, fmt.Errorf("%w: default_dpi must be positive", ErrInvalidConfig)
	}

	setString(&o.Title, fc.Metadata.Title)
	setString(&o.Author, fc.Metadata.Author)
	setString(&o.Subject, fc.Metadata.Subject)
	setString(&o.Keywords, fc.Metadata.Keywords)
	setString(&o.Creator, fc.Metadata.Creator)

	if fc.Output.Format != "" {
		o.Format = fc.Output.Format
	}
	if len(fc.Output.Office) > 0 {
		o.OfficeCandidates = fc.Output.Office
	}
	if fc.Output.Compression != nil {
		o.NoCompression = !*fc.Output.Compression
	}
	o.ResourcePaths = append(append([]string(nil), o.ResourcePaths...), fc.Assets.Paths...)
	return o, nil
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
