package terminal

import (
	"io"
	"time"

	"github.com/muesli/termenv"
)

// Color is one of the few colors the game paints with.
type Color int

const (
	Red Color = iota
	Green
	Yellow
	Blue
	Magenta
	Cyan
)

var ansiColors = map[Color]termenv.ANSIColor{
	Red:     termenv.ANSIRed,
	Green:   termenv.ANSIGreen,
	Yellow:  termenv.ANSIYellow,
	Blue:    termenv.ANSIBlue,
	Magenta: termenv.ANSIMagenta,
	Cyan:    termenv.ANSICyan,
}

// Sink is the platform capability the game needs from a terminal.
type Sink interface {
	Clear()
	Pause(d time.Duration)
	Colorize(text string, c Color) string
}

// TermSink implements Sink on top of termenv.
type TermSink struct {
	out   *termenv.Output
	sleep func(time.Duration)
}

// NewTermSink writes to w. With color off, or when w is not a terminal, text is left plain.
func NewTermSink(w io.Writer, color bool) *TermSink {
	var opts []termenv.OutputOption
	if !color {
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}
	return &TermSink{
		out:   termenv.NewOutput(w, opts...),
		sleep: time.Sleep,
	}
}

func (s *TermSink) Clear() {
	s.out.ClearScreen()
}

func (s *TermSink) Pause(d time.Duration) {
	if d > 0 {
		s.sleep(d)
	}
}

func (s *TermSink) Colorize(text string, c Color) string {
	ansi, ok := ansiColors[c]
	if !ok {
		return text
	}
	return s.out.String(text).Foreground(ansi).String()
}
