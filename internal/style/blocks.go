package style

// Centimeter in PDF points.
const Centimeter = 72 / 2.54

// HeaderSize returns the font size for a header level. Level 1 is 32pt and
// levels 2..6 shrink by 2pt from 28pt.
func HeaderSize(level int) float64 {
	if level <= 1 {
		return 32
	}
	if level > 6 {
		level = 6
	}
	return float64(20 + (6-level)*2)
}

// Header returns the style of a header at level.
func Header(level int) Paragraph {
	size := HeaderSize(level)
	return Paragraph{
		Font:    Helvetica(size).WithBold(),
		Color:   Black,
		Leading: size * 1.2,
		Align:   AlignLeft,
	}
}

// Body is the justified serif paragraph style.
func Body() Paragraph {
	return Paragraph{Font: Times(12), Color: Black, Leading: 15, Align: AlignJustify}
}

// ListItem is the style of list item text.
func ListItem() Paragraph {
	return Paragraph{Font: Helvetica(12), Color: Black, Leading: 14, Align: AlignLeft}
}

// ListLabel is the font of bullets and item numbers.
func ListLabel() Font { return Helvetica(12).WithBold() }

// ChecklistItem is the style of checklist item text.
func ChecklistItem() Paragraph {
	return Paragraph{Font: Helvetica(12), Color: Black, Leading: 15, Align: AlignLeft}
}

// QuoteText is the style of a quote body.
func QuoteText(align Align) Paragraph {
	return Paragraph{Font: Helvetica(14).WithItalic(), Color: Black, Leading: 18, Align: align}
}

// QuoteCaption is the style of a quote attribution.
func QuoteCaption(align Align) Paragraph {
	return Paragraph{Font: Helvetica(10), Color: Black, Leading: 12, Align: align}
}

// WarningText is the style of a warning body.
func WarningText() Paragraph {
	return Paragraph{Font: Helvetica(13), Color: Black, Leading: 18, Align: AlignLeft}
}

// CodeText is the monospaced style of code blocks.
func CodeText() Paragraph {
	return Paragraph{Font: Courier(10.5), Color: White, Leading: 14, Align: AlignLeft}
}

// Delimiter is the font of the section marker.
func Delimiter() Font { return Helvetica(16).WithBold() }

// TableCell is the style of table cell text.
func TableCell() Paragraph {
	return Paragraph{Font: Helvetica(12), Color: Black, Leading: 14.4, Align: AlignCenter}
}

// ImageCaption is the style of an image caption.
func ImageCaption() Paragraph {
	return Paragraph{Font: Helvetica(9).WithItalic(), Color: Gray, Leading: 11, Align: AlignCenter}
}

// Box colors.
var (
	QuoteFill      = Hex("#FFF9C4")
	WarningFill    = Hex("#FFF2CC")
	WarningStroke  = Hex("#F7D972")
	CodeFill       = Hex("#2D2D2D")
	CodeStroke     = Hex("#444444")
	DelimiterColor = Hex("#3498DB")
	TableHeader    = Hex("#D3D3D3")
	TableGrid      = Gray
	LinkColor      = Blue
)
