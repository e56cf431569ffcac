package md2office

// FitMode is the table autofit policy.
type FitMode int

const (
	// FitContents keeps natural column widths; the table is narrower
	// than or equal to the available width.
	FitContents FitMode = iota

	// FitWindow stretches the table to exactly the available width and
	// shrinks the font by the same ratio, floored at the minimum.
	FitWindow
)

// String returns the lowercase mode name used in serialized output.
func (m FitMode) String() string {
	if m == FitWindow {
		return "window"
	}
	return "contents"
}

// TableLayout is the layout decision for one table.
type TableLayout struct {
	Mode         FitMode
	ColumnWidths []float64 // inches, same order as columns
	FontSize     float64   // points, after scaling and flooring
	Scale        float64   // applied width/font ratio, 1.0 in contents-fit
}

// characters-per-inch estimate for natural column width. 10 cpi matches a
// 12pt monospaced fallback and errs wide for proportional fonts.
const charsPerInch = 10.0

// minColumnWidth keeps empty columns visible, inches.
const minColumnWidth = 0.4

// LayoutTable decides the autofit mode for a table against the available
// content width. Pure function of its inputs: no hidden state,
// deterministic, and idempotent - feeding a contents-fit result's widths
// back in yields contents-fit again, since their sum already fits.
func LayoutTable(natural []float64, available, nominalFont, minFont float64) TableLayout {
	widths := make([]float64, len(natural))
	total := 0.0
	for i, w := range natural {
		if w < minColumnWidth {
			w = minColumnWidth
		}
		widths[i] = w
		total += w
	}

	if total <= available || len(widths) == 0 {
		return TableLayout{
			Mode:         FitContents,
			ColumnWidths: widths,
			FontSize:     nominalFont,
			Scale:        1.0,
		}
	}

	// Window-fit: scale columns proportionally so relative emphasis is
	// preserved. The last column absorbs float rounding so the widths
	// sum to exactly the available width.
	scale := available / total
	sum := 0.0
	for i := range widths {
		widths[i] *= scale
		if i < len(widths)-1 {
			sum += widths[i]
		}
	}
	widths[len(widths)-1] = available - sum

	font := nominalFont * scale
	if font < minFont {
		font = minFont
	}

	return TableLayout{
		Mode:         FitWindow,
		ColumnWidths: widths,
		FontSize:     font,
		Scale:        scale,
	}
}

// NaturalWidths estimates per-column content widths for a table from the
// longest cell in each column, header included.
func NaturalWidths(t Table) []float64 {
	widths := make([]float64, len(t.Header))
	for i, h := range t.Header {
		widths[i] = cellWidth(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			if w := cellWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

// cellWidth estimates the rendered width of one cell in inches.
func cellWidth(text StyledText) float64 {
	n := len([]rune(text.PlainString()))
	w := float64(n) / charsPerInch
	if w < minColumnWidth {
		w = minColumnWidth
	}
	return w
}
