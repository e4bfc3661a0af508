package config

import (
	"os"
	"strconv"
)

// Environment variables overlaying the config file.
const (
	EnvTabWidth    = "VIMDOWN_TAB_WIDTH"
	EnvIndentWidth = "VIMDOWN_INDENT_WIDTH"
	EnvUseSpaces   = "VIMDOWN_USE_SPACES"
	EnvScrollOff   = "VIMDOWN_SCROLL_OFF"
	EnvMaxUndo     = "VIMDOWN_MAX_UNDO"
)

// ApplyEnv overlays VIMDOWN_* environment variables onto opts. Unset and
// unparsable variables leave the current value untouched.
func ApplyEnv(opts *Options) {
	envInt(EnvTabWidth, &opts.Editor.TabWidth)
	envInt(EnvIndentWidth, &opts.Editor.IndentWidth)
	envBool(EnvUseSpaces, &opts.Editor.UseSpaces)
	envInt(EnvScrollOff, &opts.Editor.ScrollOff)
	envInt(EnvMaxUndo, &opts.History.MaxUndo)
}

func envInt(name string, dst *int) {
	val, ok := os.LookupEnv(name)
	if !ok {
		return
	}
	if n, err := strconv.Atoi(val); err == nil {
		*dst = n
	}
}

func envBool(name string, dst *bool) {
	val, ok := os.LookupEnv(name)
	if !ok {
		return
	}
	if b, err := strconv.ParseBool(val); err == nil {
		*dst = b
	}
}
