package session

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/studiowebux/notepad/internal/types"
)

const (
	// MinFontSize is the floor for DecreaseFontSize
	MinFontSize = 2
	// FontSizeStep is the increment used by the A+/A- commands
	FontSizeStep = 2
)

// ErrInvalidColor is returned for a colour that cannot be parsed
var ErrInvalidColor = errors.New("invalid color")

// namedColors maps the colour names accepted by the colour prompt to hex
var namedColors = map[string]string{
	"black":   "#000000",
	"white":   "#ffffff",
	"red":     "#ff0000",
	"green":   "#008000",
	"lime":    "#00ff00",
	"blue":    "#0000ff",
	"yellow":  "#ffff00",
	"cyan":    "#00ffff",
	"magenta": "#ff00ff",
	"orange":  "#ffa500",
	"purple":  "#800080",
	"gray":    "#808080",
	"grey":    "#808080",
	"navy":    "#000080",
	"maroon":  "#800000",
	"teal":    "#008080",
	"olive":   "#808000",
	"silver":  "#c0c0c0",
	"brown":   "#a52a2a",
	"pink":    "#ffc0cb",
}

// ParseColor normalises a colour name or #rgb/#rrggbb value to #rrggbb
func ParseColor(input string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(input))
	if hex, ok := namedColors[value]; ok {
		value = hex
	}
	if !strings.HasPrefix(value, "#") {
		value = "#" + value
	}

	c, err := colorful.Hex(value)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidColor, input)
	}
	return c.Hex(), nil
}

// Presentation is the session's font and colour state
type Presentation struct {
	FontFamily string
	FontSize   int
	// TextArea colours apply to the editing area
	TextArea types.ColorPair
	// Window is the background of everything around the text area
	Window    string
	Dark      bool
	Highlight string
}

func newPresentation(fontFamily string, fontSize int, dark bool, highlight string) Presentation {
	if fontSize < MinFontSize {
		fontSize = MinFontSize
	}
	p := Presentation{
		FontFamily: fontFamily,
		FontSize:   fontSize,
		Highlight:  highlight,
	}
	p.applyTheme(dark)
	return p
}

func (p *Presentation) applyTheme(dark bool) {
	pair := types.LightTheme
	if dark {
		pair = types.DarkTheme
	}
	p.TextArea = pair
	p.Window = pair.Background
	p.Dark = dark
}

// IncreaseFontSize grows the font by one step
func (s *Session) IncreaseFontSize() int {
	s.presentation.FontSize += FontSizeStep
	return s.presentation.FontSize
}

// DecreaseFontSize shrinks the font by one step, never below MinFontSize
func (s *Session) DecreaseFontSize() int {
	if s.presentation.FontSize > MinFontSize {
		s.presentation.FontSize = max(s.presentation.FontSize-FontSizeStep, MinFontSize)
	}
	return s.presentation.FontSize
}

// SetFontColor applies a colour to the whole text area's foreground.
// An empty choice (cancelled picker) leaves the colour unchanged.
func (s *Session) SetFontColor(input string) error {
	if strings.TrimSpace(input) == "" {
		return nil
	}
	color, err := ParseColor(input)
	if err != nil {
		return err
	}
	s.presentation.TextArea.Foreground = color
	return nil
}

// ToggleDarkMode flips between the light and dark colour pairs for both the
// text area and the window
func (s *Session) ToggleDarkMode() bool {
	s.presentation.applyTheme(!s.presentation.Dark)
	return s.presentation.Dark
}

// Presentation returns a copy of the presentation state
func (s *Session) Presentation() Presentation {
	return s.presentation
}
