package theme

import (
	"context"
	"strings"

	applog "oceanbistro/internal/log"
)

// Mode identifies the display mode of the site.
type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"

	// DefaultMode applies when neither a stored preference nor a system hint exists.
	DefaultMode = Light
)

// Valid reports whether m is one of the two supported modes.
func (m Mode) Valid() bool {
	return m == Light || m == Dark
}

// Toggle returns the opposite mode.
func (m Mode) Toggle() Mode {
	if m == Light {
		return Dark
	}
	return Light
}

func (m Mode) String() string {
	return string(m)
}

// ParseMode accepts exactly the stored literals "light" and "dark".
func ParseMode(value string) (Mode, bool) {
	mode := Mode(value)
	return mode, mode.Valid()
}

// Palette holds the colour and shadow values for one mode.
type Palette struct {
	Name         Mode
	Primary      string
	Secondary    string
	Success      string
	Error        string
	Background   string
	Surface      string
	Text         string
	MutedText    string
	Border       string
	GradientFrom string
	GradientTo   string
	Shadow       string
}

var catalogue = map[Mode]Palette{
	Light: {
		Name:         Light,
		Primary:      "#2563EB",
		Secondary:    "#F59E0B",
		Success:      "#F59E0B",
		Error:        "#EF4444",
		Background:   "#f9fafb",
		Surface:      "#ffffff",
		Text:         "#111827",
		MutedText:    "#6B7280",
		Border:       "#E5E7EB",
		GradientFrom: "rgba(37, 99, 235, 0.08)",
		GradientTo:   "#F9FAFB",
		Shadow:       "0 10px 30px rgba(0,0,0,0.06)",
	},
	Dark: {
		Name:         Dark,
		Primary:      "#60A5FA",
		Secondary:    "#FBBF24",
		Success:      "#FBBF24",
		Error:        "#F87171",
		Background:   "#0B1220",
		Surface:      "#111827",
		Text:         "#F9FAFB",
		MutedText:    "#9CA3AF",
		Border:       "#1F2937",
		GradientFrom: "rgba(96, 165, 250, 0.10)",
		GradientTo:   "#0B1220",
		Shadow:       "0 10px 30px rgba(0,0,0,0.35)",
	},
}

// PaletteFor returns the palette registered for mode, falling back to light.
func PaletteFor(mode Mode) Palette {
	if value, ok := catalogue[mode]; ok {
		return value
	}
	return catalogue[Light]
}

// Variable is a single CSS custom property written to the document root.
type Variable struct {
	Name  string
	Value string
}

// Variables lists the custom properties for p in a stable order.
func (p Palette) Variables() []Variable {
	return []Variable{
		{Name: "--clr-primary", Value: p.Primary},
		{Name: "--clr-secondary", Value: p.Secondary},
		{Name: "--clr-success", Value: p.Success},
		{Name: "--clr-error", Value: p.Error},
		{Name: "--bg", Value: p.Background},
		{Name: "--surface", Value: p.Surface},
		{Name: "--text", Value: p.Text},
		{Name: "--muted-text", Value: p.MutedText},
		{Name: "--border", Value: p.Border},
		{Name: "--gradient-from", Value: p.GradientFrom},
		{Name: "--gradient-to", Value: p.GradientTo},
		{Name: "--shadow", Value: p.Shadow},
	}
}

// Presentation is everything the rendering layer needs to paint a mode:
// the data-theme marker, the palette and the root style declarations.
type Presentation struct {
	Mode      Mode
	Palette   Palette
	Variables []Variable
}

// Apply resolves the presentation for mode. Unknown modes present as light.
func Apply(mode Mode) Presentation {
	palette := PaletteFor(mode)
	return Presentation{
		Mode:      palette.Name,
		Palette:   palette,
		Variables: palette.Variables(),
	}
}

// Style renders the variables as an inline style attribute value.
func (p Presentation) Style() string {
	var b strings.Builder
	for i, v := range p.Variables {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(v.Name)
		b.WriteString(": ")
		b.WriteString(v.Value)
		b.WriteByte(';')
	}
	return b.String()
}

// VariableMap returns the variables keyed by name, suitable for JSON events.
func (p Presentation) VariableMap() map[string]string {
	out := make(map[string]string, len(p.Variables))
	for _, v := range p.Variables {
		out[v.Name] = v.Value
	}
	return out
}

// Store persists the chosen mode. Implementations may fail; callers in this
// package never surface those failures.
type Store interface {
	LoadMode(ctx context.Context) (string, error)
	SaveMode(ctx context.Context, mode string) error
}

// InitialMode returns the stored mode when it is valid, otherwise dark when
// the visitor's system prefers it, otherwise light.
func InitialMode(ctx context.Context, store Store, prefersDark bool) Mode {
	if store != nil {
		saved, err := store.LoadMode(ctx)
		if err != nil {
			applog.Debug(ctx, "theme preference unavailable", "error", err)
		} else if mode, ok := ParseMode(saved); ok {
			return mode
		} else if saved != "" {
			applog.Debug(ctx, "ignoring unrecognised theme preference", "value", saved)
		}
	}
	if prefersDark {
		return Dark
	}
	return DefaultMode
}

// Persist writes mode to store on a best-effort basis.
func Persist(ctx context.Context, store Store, mode Mode) {
	if store == nil {
		return
	}
	if err := store.SaveMode(ctx, mode.String()); err != nil {
		applog.Debug(ctx, "failed to persist theme preference", "mode", mode, "error", err)
	}
}

// PrefersDark interprets a Sec-CH-Prefers-Color-Scheme client hint value.
func PrefersDark(hint string) bool {
	value := strings.Trim(strings.TrimSpace(hint), `"`)
	return strings.EqualFold(value, string(Dark))
}
