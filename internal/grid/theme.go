package grid

import (
	"github.com/dshills/deeplus/internal/config"
	"github.com/dshills/deeplus/internal/renderer/core"
)

// Theme holds the colours used by View and Loading.
type Theme struct {
	Background    core.Color
	Foreground    core.Color
	Muted         core.Color
	Tile          core.Color
	Highlight     core.Color
	HighlightText core.Color
	Error         core.Color
}

// ThemeFromConfig parses the configured colour strings.
func ThemeFromConfig(c config.Theme) (Theme, error) {
	var t Theme
	fields := []struct {
		dst *core.Color
		src string
	}{
		{&t.Background, c.Background},
		{&t.Foreground, c.Foreground},
		{&t.Muted, c.Muted},
		{&t.Tile, c.Tile},
		{&t.Highlight, c.Highlight},
		{&t.HighlightText, c.HighlightText},
		{&t.Error, c.Error},
	}
	for _, f := range fields {
		col, err := core.ParseColor(f.src)
		if err != nil {
			return Theme{}, err
		}
		*f.dst = col
	}
	return t, nil
}

// DefaultTheme returns the theme of the default configuration.
func DefaultTheme() Theme {
	t, err := ThemeFromConfig(config.Default().UI.Theme)
	if err != nil {
		panic("grid: invalid default theme: " + err.Error())
	}
	return t
}

func (t Theme) base() core.Style {
	return core.NewStyle(t.Foreground).WithBackground(t.Background)
}

func (t Theme) rowTitle() core.Style {
	return core.NewStyle(t.Foreground).WithBackground(t.Background).Bold()
}

func (t Theme) tile() core.Style {
	return core.NewStyle(t.Foreground).WithBackground(t.Tile)
}

func (t Theme) tileMuted() core.Style {
	return core.NewStyle(t.Muted).WithBackground(t.Tile)
}

func (t Theme) highlight() core.Style {
	return core.NewStyle(t.HighlightText).WithBackground(t.Highlight).Bold()
}

// highlightMuted is the secondary text of the focused tile.
func (t Theme) highlightMuted() core.Style {
	return core.NewStyle(t.HighlightText.Blend(t.Highlight, 0.35)).WithBackground(t.Highlight)
}

// status is drawn slightly lighter than the background.
func (t Theme) status() core.Style {
	return core.NewStyle(t.Foreground).WithBackground(t.Background.Blend(t.Foreground, 0.12))
}

func (t Theme) errorText() core.Style {
	return core.NewStyle(t.Error).WithBackground(t.Background).Bold()
}

func (t Theme) muted() core.Style {
	return core.NewStyle(t.Muted).WithBackground(t.Background)
}
