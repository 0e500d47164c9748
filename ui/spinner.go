package ui

import (
	"os"
	"time"

	"github.com/briandowns/spinner"
)

type SpinnerTokens []string

var (
	Dots  SpinnerTokens = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	Block SpinnerTokens = []string{"▁", "▂", "▃", "▄", "▅", "▆", "▇", "█", "▇", "▆", "▅", "▄", "▃", "▂"}
)

type SpinnerCfg struct {
	Message  string
	Tokens   []string
	Duration time.Duration
}

var s *spinner.Spinner

// StartSpinner starts the shared spinner. It does nothing when stdout is
// not a terminal so piped output stays clean.
func StartSpinner(cfg *SpinnerCfg) {
	if !SupportsANSICodes() {
		return
	}
	if cfg.Tokens == nil {
		cfg.Tokens = Dots
	}
	if cfg.Duration == 0 {
		cfg.Duration = 100 * time.Millisecond
	}
	s = spinner.New(cfg.Tokens, cfg.Duration)
	s.Writer = os.Stdout

	if cfg.Message != "" {
		s.Suffix = " " + cfg.Message
	}

	s.Start()
}

func StopSpinner(msg string) {
	if s == nil {
		if msg != "" {
			os.Stdout.WriteString(msg + "\n")
		}
		return
	}
	if msg != "" {
		s.FinalMSG = msg + "\n"
	}

	s.Stop()
	s = nil
}
