package term

import "github.com/gdamore/tcell/v2"

// Theme holds the styles the host draws with.
type Theme struct {
	Text      tcell.Style
	Selection tcell.Style
	Box       tcell.Style
	Caret     tcell.Style
	Status    tcell.Style
}

// NewTheme builds a theme from color names or "#rrggbb" values for the
// selection background, the live box background and the caret.
func NewTheme(selection, box, caret string) Theme {
	return Theme{
		Text:      tcell.StyleDefault,
		Selection: tcell.StyleDefault.Background(tcell.GetColor(selection)),
		Box:       tcell.StyleDefault.Background(tcell.GetColor(box)),
		Caret:     tcell.StyleDefault.Background(tcell.GetColor(caret)).Foreground(tcell.ColorBlack),
		Status:    tcell.StyleDefault.Reverse(true),
	}
}

// DefaultTheme matches the default configuration colors.
func DefaultTheme() Theme {
	return NewTheme("#264f78", "#3a3d41", "white")
}
