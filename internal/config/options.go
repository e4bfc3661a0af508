package config

// Options is the full editor configuration.
type Options struct {
	Editor  EditorOptions  `toml:"editor" yaml:"editor"`
	History HistoryOptions `toml:"history" yaml:"history"`
}

// EditorOptions tunes text display and editing behavior.
type EditorOptions struct {
	// TabWidth is the display width of a tab character.
	TabWidth int `toml:"tab_width" yaml:"tab_width"`

	// IndentWidth is the shift applied by the indent operators.
	IndentWidth int `toml:"indent_width" yaml:"indent_width"`

	// UseSpaces indents with spaces instead of tabs.
	UseSpaces bool `toml:"use_spaces" yaml:"use_spaces"`

	// ScrollOff keeps this many lines visible around the cursor.
	ScrollOff int `toml:"scroll_off" yaml:"scroll_off"`
}

// HistoryOptions tunes the undo stack.
type HistoryOptions struct {
	// MaxUndo bounds the number of undoable edit groups.
	MaxUndo int `toml:"max_undo" yaml:"max_undo"`
}

// Default returns the built-in configuration.
func Default() Options {
	return Options{
		Editor: EditorOptions{
			TabWidth:    4,
			IndentWidth: 4,
			UseSpaces:   true,
			ScrollOff:   3,
		},
		History: HistoryOptions{
			MaxUndo: 1000,
		},
	}
}

// Normalize clamps out-of-range values back to their defaults.
func (o *Options) Normalize() {
	def := Default()

	if o.Editor.TabWidth <= 0 {
		o.Editor.TabWidth = def.Editor.TabWidth
	}
	if o.Editor.IndentWidth <= 0 {
		o.Editor.IndentWidth = def.Editor.IndentWidth
	}
	if o.Editor.ScrollOff < 0 {
		o.Editor.ScrollOff = def.Editor.ScrollOff
	}
	if o.History.MaxUndo <= 0 {
		o.History.MaxUndo = def.History.MaxUndo
	}
}

// IndentUnit returns one level of indentation as text.
func (o EditorOptions) IndentUnit() string {
	if !o.UseSpaces {
		return "\t"
	}

	unit := make([]byte, o.IndentWidth)
	for i := range unit {
		unit[i] = ' '
	}
	return string(unit)
}
