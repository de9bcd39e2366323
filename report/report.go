package report

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/koenigsberg/mapping"
	"github.com/katalvlaran/koenigsberg/solver"
)

// Console renders solver events. Solutions are written plainly to Out so
// they survive piping; everything else goes through the structured logger.
type Console struct {
	m   *mapping.Normalized
	out io.Writer
	log zerolog.Logger
}

// Option configures a Console.
type Option func(*Console)

// WithWriter redirects solution output. Default os.Stdout.
func WithWriter(w io.Writer) Option {
	return func(c *Console) {
		if w != nil {
			c.out = w
		}
	}
}

// WithLogger replaces the structured logger used for progress events.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Console) {
		c.log = log
	}
}

// NewConsole builds a reporter for trails over m. The default logger writes
// human-readable lines to stderr.
func NewConsole(m *mapping.Normalized, opts ...Option) *Console {
	c := &Console{
		m:   m,
		out: os.Stdout,
		log: NewLogger(os.Stderr),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// NewLogger builds the console-format zerolog logger used by default.
func NewLogger(w io.Writer) zerolog.Logger {
	cw := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
	}

	return zerolog.New(cw).With().Timestamp().Logger()
}

// Solution prints one complete trail as its original labels.
func (c *Console) Solution(trail []byte, index int) {
	fmt.Fprintf(c.out, "Solution %d: %s\n", index, c.render(trail))
}

// Abandoned logs one dead-end trail with the running counter.
func (c *Console) Abandoned(trail []byte, abandoned uint64) {
	c.log.Info().
		Uint64("abandoned", abandoned).
		Int("length", trailLength(trail)).
		Str("trail", c.render(trail)).
		Msg("abandoned trail")
}

// Chatter logs a high-level progress message.
func (c *Console) Chatter(msg string) {
	c.log.Info().Msg(msg)
}

// Saved logs a successful checkpoint write.
func (c *Console) Saved(snap solver.Snapshot) {
	c.log.Info().
		Int("solutions", len(snap.Solutions)).
		Int("exhausted", len(snap.Exhausted)).
		Uint64("abandoned", snap.Abandoned).
		Dur("elapsed", snap.Elapsed).
		Msg("checkpoint saved")
}

// SaveFailed logs a failed checkpoint write. The search continues, so this
// is a warning rather than an error.
func (c *Console) SaveFailed(err error) {
	c.log.Warn().Err(err).Msg("checkpoint save failed")
}

// render joins a trail's path labels; zero bytes past the walked prefix are
// skipped by TrailLabels.
func (c *Console) render(trail []byte) string {
	return strings.Join(c.m.TrailLabels(trail), " -> ")
}

func trailLength(trail []byte) int {
	for i, id := range trail {
		if id == 0 {
			return i
		}
	}

	return len(trail)
}
