package debugger

import (
	"github.com/chzyer/readline"
)

// Prompt reads operator input lines.
type Prompt interface {
	Readline() (string, error)
}

// Config of an interactive prompt.
type Config struct {
	Prompt      string // Prompt text.
	HistoryFile string // Command history file, if any.
}

// NewReadline creates an interactive prompt on the terminal.
// The caller must Close it.
func NewReadline(cfg Config) (*readline.Instance, error) {
	prompt := cfg.Prompt
	if len(prompt) == 0 {
		prompt = DEFAULT_PROMPT
	}

	return readline.NewEx(&readline.Config{
		Prompt:      prompt,
		HistoryFile: cfg.HistoryFile,
	})
}
