package types

import "errors"

// Style validation errors.
var (
	ErrCellSizeInvalid   = errors.New("cell dimensions must be positive")
	ErrSpacingInvalid    = errors.New("margin, gutter, and caption height must not be negative")
	ErrBackgroundInvalid = errors.New("background must be a #rrggbb hex color")
)

// Style holds the render parameters for a figure. All lengths are pixels.
type Style struct {
	CellWidth     int    `json:"cell_width" yaml:"cell_width"`
	CellHeight    int    `json:"cell_height" yaml:"cell_height"`
	Margin        int    `json:"margin" yaml:"margin"`
	Gutter        int    `json:"gutter" yaml:"gutter"`
	CaptionHeight int    `json:"caption_height" yaml:"caption_height"`
	Background    string `json:"background" yaml:"background"`
}

// DefaultStyle returns the render parameters used when a figure specifies
// none.
func DefaultStyle() Style {
	return Style{
		CellWidth:     320,
		CellHeight:    240,
		Margin:        24,
		Gutter:        12,
		CaptionHeight: 28,
		Background:    "#ffffff",
	}
}

// Validate checks that the Style is renderable.
func (s Style) Validate() error {
	if s.CellWidth < 1 || s.CellHeight < 1 {
		return ErrCellSizeInvalid
	}
	if s.Margin < 0 || s.Gutter < 0 || s.CaptionHeight < 0 {
		return ErrSpacingInvalid
	}
	if !validHexColor(s.Background) {
		return ErrBackgroundInvalid
	}
	return nil
}

// validHexColor reports whether s is a #rrggbb color.
func validHexColor(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	for _, c := range s[1:] {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
