package theme

// Option describes the toggle control shown while a mode is active.
type Option struct {
	Mode   Mode
	Target Mode
	Label  string
	Title  string
}

var options = map[Mode]Option{
	Light: {Mode: Light, Target: Dark, Label: "🌙 Dark", Title: "Switch to dark mode"},
	Dark:  {Mode: Dark, Target: Light, Label: "☀️ Light", Title: "Switch to light mode"},
}

// ToggleOption returns the control that switches away from mode.
func ToggleOption(mode Mode) Option {
	if value, ok := options[mode]; ok {
		return value
	}
	return options[DefaultMode]
}

// Options exposes both toggle states in light, dark order.
func Options() []Option {
	return []Option{options[Light], options[Dark]}
}
