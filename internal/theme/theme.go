// Package theme provides theme definitions and management for the TUI.
package theme

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/chmouel/diff-folders/internal/models"
)

// Theme defines all colours used in the application UI.
type Theme struct {
	Accent    lipgloss.Color
	AccentFg  lipgloss.Color // Foreground colour for text on Accent background
	AccentDim lipgloss.Color
	BorderDim lipgloss.Color
	MutedFg   lipgloss.Color
	TextFg    lipgloss.Color
	InsertFg  lipgloss.Color // New entries and inserted lines
	DeleteFg  lipgloss.Color // Deleted entries and removed lines
	ModifyFg  lipgloss.Color // Modified entries
	InfoFg    lipgloss.Color
	ErrorFg   lipgloss.Color
	Light     bool
}

// Theme names.
const (
	DraculaName         = "dracula"
	DraculaLightName    = "dracula-light"
	NarnaName           = "narna"
	SolarizedDarkName   = "solarized-dark"
	SolarizedLightName  = "solarized-light"
	GruvboxDarkName     = "gruvbox-dark"
	NordName            = "nord"
	CatppuccinMochaName = "catppuccin-mocha"
)

// Dracula returns the Dracula theme (dark background, vibrant colours).
func Dracula() *Theme {
	return &Theme{
		Accent:    lipgloss.Color("#BD93F9"), // Purple
		AccentFg:  lipgloss.Color("#282A36"),
		AccentDim: lipgloss.Color("#44475A"), // Current Line
		BorderDim: lipgloss.Color("#44475A"),
		MutedFg:   lipgloss.Color("#6272A4"), // Comment
		TextFg:    lipgloss.Color("#F8F8F2"),
		InsertFg:  lipgloss.Color("#50FA7B"),
		DeleteFg:  lipgloss.Color("#FF5555"),
		ModifyFg:  lipgloss.Color("#F1FA8C"),
		InfoFg:    lipgloss.Color("#8BE9FD"),
		ErrorFg:   lipgloss.Color("#FFB86C"),
	}
}

// DraculaLight returns the Dracula theme adapted for light backgrounds.
func DraculaLight() *Theme {
	return &Theme{
		Accent:    lipgloss.Color("#c6dbe5"),
		AccentFg:  lipgloss.Color("#24292F"),
		AccentDim: lipgloss.Color("#F3E8FF"), // Light purple wash
		BorderDim: lipgloss.Color("#E8E8E8"),
		MutedFg:   lipgloss.Color("#6E7781"),
		TextFg:    lipgloss.Color("#24292F"),
		InsertFg:  lipgloss.Color("#059669"),
		DeleteFg:  lipgloss.Color("#DC2626"),
		ModifyFg:  lipgloss.Color("#CA8A04"),
		InfoFg:    lipgloss.Color("#0891B2"),
		ErrorFg:   lipgloss.Color("#D97706"),
		Light:     true,
	}
}

// Narna returns a balanced dark theme with blue accents.
func Narna() *Theme {
	return &Theme{
		Accent:    lipgloss.Color("#41ADFF"),
		AccentFg:  lipgloss.Color("#0D1117"),
		AccentDim: lipgloss.Color("#1A2230"),
		BorderDim: lipgloss.Color("#20252D"),
		MutedFg:   lipgloss.Color("#8B949E"),
		TextFg:    lipgloss.Color("#E6EDF3"),
		InsertFg:  lipgloss.Color("#3FB950"),
		DeleteFg:  lipgloss.Color("#F47067"),
		ModifyFg:  lipgloss.Color("#F2CC60"),
		InfoFg:    lipgloss.Color("#7CE0F3"),
		ErrorFg:   lipgloss.Color("#E3B341"),
	}
}

// SolarizedDark returns the Solarized dark theme.
func SolarizedDark() *Theme {
	return &Theme{
		Accent:    lipgloss.Color("#268BD2"),
		AccentFg:  lipgloss.Color("#FDF6E3"),
		AccentDim: lipgloss.Color("#073642"),
		BorderDim: lipgloss.Color("#073642"),
		MutedFg:   lipgloss.Color("#586E75"),
		TextFg:    lipgloss.Color("#EEE8D5"),
		InsertFg:  lipgloss.Color("#859900"),
		DeleteFg:  lipgloss.Color("#DC322F"),
		ModifyFg:  lipgloss.Color("#B58900"),
		InfoFg:    lipgloss.Color("#2AA198"),
		ErrorFg:   lipgloss.Color("#CB4B16"),
	}
}

// SolarizedLight returns the Solarized light theme.
func SolarizedLight() *Theme {
	return &Theme{
		Accent:    lipgloss.Color("#268BD2"),
		AccentFg:  lipgloss.Color("#FDF6E3"),
		AccentDim: lipgloss.Color("#EEE8D5"),
		BorderDim: lipgloss.Color("#E4DDC7"),
		MutedFg:   lipgloss.Color("#93A1A1"),
		TextFg:    lipgloss.Color("#073642"),
		InsertFg:  lipgloss.Color("#859900"),
		DeleteFg:  lipgloss.Color("#DC322F"),
		ModifyFg:  lipgloss.Color("#B58900"),
		InfoFg:    lipgloss.Color("#2AA198"),
		ErrorFg:   lipgloss.Color("#CB4B16"),
		Light:     true,
	}
}

// GruvboxDark returns the Gruvbox dark theme.
func GruvboxDark() *Theme {
	return &Theme{
		Accent:    lipgloss.Color("#FABD2F"),
		AccentFg:  lipgloss.Color("#282828"),
		AccentDim: lipgloss.Color("#3C3836"),
		BorderDim: lipgloss.Color("#3C3836"),
		MutedFg:   lipgloss.Color("#928374"),
		TextFg:    lipgloss.Color("#EBDBB2"),
		InsertFg:  lipgloss.Color("#B8BB26"),
		DeleteFg:  lipgloss.Color("#FB4934"),
		ModifyFg:  lipgloss.Color("#FABD2F"),
		InfoFg:    lipgloss.Color("#83A598"),
		ErrorFg:   lipgloss.Color("#FE8019"),
	}
}

// Nord returns the Nord theme.
func Nord() *Theme {
	return &Theme{
		Accent:    lipgloss.Color("#88C0D0"),
		AccentFg:  lipgloss.Color("#2E3440"),
		AccentDim: lipgloss.Color("#3B4252"),
		BorderDim: lipgloss.Color("#434C5E"),
		MutedFg:   lipgloss.Color("#81A1C1"),
		TextFg:    lipgloss.Color("#E5E9F0"),
		InsertFg:  lipgloss.Color("#A3BE8C"),
		DeleteFg:  lipgloss.Color("#BF616A"),
		ModifyFg:  lipgloss.Color("#EBCB8B"),
		InfoFg:    lipgloss.Color("#88C0D0"),
		ErrorFg:   lipgloss.Color("#D08770"),
	}
}

// CatppuccinMocha returns the Catppuccin Mocha theme.
func CatppuccinMocha() *Theme {
	return &Theme{
		Accent:    lipgloss.Color("#B4BEFE"),
		AccentFg:  lipgloss.Color("#1E1E2E"),
		AccentDim: lipgloss.Color("#313244"),
		BorderDim: lipgloss.Color("#313244"),
		MutedFg:   lipgloss.Color("#6C7086"),
		TextFg:    lipgloss.Color("#CDD6F4"),
		InsertFg:  lipgloss.Color("#A6E3A1"),
		DeleteFg:  lipgloss.Color("#F38BA8"),
		ModifyFg:  lipgloss.Color("#F9E2AF"),
		InfoFg:    lipgloss.Color("#89DCEB"),
		ErrorFg:   lipgloss.Color("#FAB387"),
	}
}

// GetTheme returns a theme by name, or Dracula if not found.
func GetTheme(name string) *Theme {
	switch name {
	case DraculaLightName:
		return DraculaLight()
	case NarnaName:
		return Narna()
	case SolarizedDarkName:
		return SolarizedDark()
	case SolarizedLightName:
		return SolarizedLight()
	case GruvboxDarkName:
		return GruvboxDark()
	case NordName:
		return Nord()
	case CatppuccinMochaName:
		return CatppuccinMocha()
	default:
		return Dracula()
	}
}

// AvailableThemes returns a list of available theme names.
func AvailableThemes() []string {
	return []string{
		DraculaName,
		DraculaLightName,
		NarnaName,
		SolarizedDarkName,
		SolarizedLightName,
		GruvboxDarkName,
		NordName,
		CatppuccinMochaName,
	}
}

// LineColor maps a semantic line colour to the theme.
func (t *Theme) LineColor(c models.Color) lipgloss.Color {
	switch c {
	case models.ColorDelete:
		return t.DeleteFg
	case models.ColorInsert:
		return t.InsertFg
	case models.ColorInfo:
		return t.InfoFg
	case models.ColorError:
		return t.ErrorFg
	case models.ColorEqual:
		return t.TextFg
	default:
		return t.TextFg
	}
}

// StatusColor maps an entry status to the colour of its list row.
func (t *Theme) StatusColor(s models.Status) lipgloss.Color {
	switch s {
	case models.StatusNew:
		return t.InsertFg
	case models.StatusDeleted:
		return t.DeleteFg
	case models.StatusModified:
		return t.ModifyFg
	case models.StatusNormal:
		return t.TextFg
	default:
		return t.TextFg
	}
}

// MarkdownStyle returns the glamour standard style matching the theme background.
func (t *Theme) MarkdownStyle() string {
	if t.Light {
		return "light"
	}
	return "dark"
}
