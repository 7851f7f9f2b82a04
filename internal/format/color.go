package format

import (
	"io"
	"os"
	"strconv"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"hailview/internal/model"
)

const (
	ansiReset = "\x1b[0m"

	AnsiBold      = "\x1b[1;97m"
	AnsiDim       = "\x1b[38;5;240m"
	AnsiTimestamp = "\x1b[38;5;245m"
	AnsiUser      = "\x1b[38;5;220m"
	AnsiAgent     = "\x1b[38;5;44m"
	AnsiTool      = "\x1b[38;5;207m"
	AnsiError     = "\x1b[38;5;196m"
	AnsiLane      = "\x1b[38;5;109m"
)

// Colorize wraps text in code when enabled.
func Colorize(enabled bool, code string, text string) string {
	if !enabled {
		return text
	}
	return code + text + ansiReset
}

// KindColor picks the header color for an event.
func KindColor(kind model.Kind) string {
	switch kind {
	case model.KindUserMessage:
		return AnsiUser
	case model.KindAgentMessage, model.KindThinking:
		return AnsiAgent
	case model.KindToolCall, model.KindToolResult, model.KindShellCommand:
		return AnsiTool
	default:
		return AnsiDim
	}
}

// ResolveColor decides whether to emit ANSI codes: explicit flags first,
// then NO_COLOR, then TTY detection.
func ResolveColor(force, disable bool, out io.Writer) bool {
	if force {
		return true
	}
	if disable {
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	file, ok := out.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// DetermineWidth resolves the rendering width: an explicit wrap first, then
// the terminal, then COLUMNS, then 80.
func DetermineWidth(out *os.File, wrap int) int {
	if wrap > 0 {
		return wrap
	}
	if out != nil {
		if w, _, err := term.GetSize(int(out.Fd())); err == nil && w > 0 {
			return w
		}
	}
	if colsStr := os.Getenv("COLUMNS"); colsStr != "" {
		if v, err := strconv.Atoi(colsStr); err == nil && v > 0 {
			return v
		}
	}
	return 80
}
