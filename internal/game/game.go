package game

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Messages written to the player.
const (
	MsgWelcome  = "Guess the number!"
	MsgPrompt   = "Please input your guess."
	MsgEcho     = "You guessed: %d"
	MsgTooSmall = "Too small!"
	MsgTooBig   = "Too big!"
	MsgWin      = "You win!"
)

// ErrInputClosed is returned when the input stream ends before the secret is guessed.
var ErrInputClosed = errors.New("input closed before the number was guessed")

// Logger receives debug events. It never writes to the player's output.
type Logger interface {
	Log(format string, args ...interface{})
}

// Result summarizes a finished game.
type Result struct {
	// Secret is the value that was guessed.
	Secret uint32
	// Attempts counts lines read, including ones that failed to parse.
	Attempts int
	// Valid counts lines that parsed and received a verdict.
	Valid int
}

// Game is a single run of the guessing loop.
type Game struct {
	secret uint32
	in     *bufio.Reader
	out    io.Writer
	logger Logger
	colors map[Verdict]*color.Color
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the debug logger.
func WithLogger(l Logger) Option {
	return func(g *Game) {
		g.logger = l
	}
}

// WithColor turns colored verdict lines off when enabled is false.
// When enabled, color is still dropped unless out is a terminal.
func WithColor(enabled bool) Option {
	return func(g *Game) {
		if enabled {
			return
		}
		for _, c := range g.colors {
			c.DisableColor()
		}
	}
}

// New creates a game reading guesses from in and writing to out.
// The secret is drawn from src exactly once.
func New(in io.Reader, out io.Writer, src SecretSource, opts ...Option) *Game {
	g := &Game{
		secret: src.Secret(),
		in:     bufio.NewReader(in),
		out:    out,
		colors: map[Verdict]*color.Color{
			Less:    color.New(color.FgYellow),
			Greater: color.New(color.FgYellow),
			Equal:   color.New(color.FgGreen, color.Bold),
		},
	}
	if !isTerminal(out) {
		for _, c := range g.colors {
			c.DisableColor()
		}
	}
	for _, opt := range opts {
		opt(g)
	}
	g.log("secret drawn: %d", g.secret)
	return g
}

// Play runs the loop until the secret is guessed.
// It returns ErrInputClosed if the input ends first, and ctx.Err() if the
// context is done before a prompt.
func (g *Game) Play(ctx context.Context) (Result, error) {
	res := Result{Secret: g.secret}

	if _, err := fmt.Fprintln(g.out, MsgWelcome); err != nil {
		return res, fmt.Errorf("writing welcome: %w", err)
	}

	for {
		if err := ctx.Err(); err != nil {
			g.log("cancelled after %d attempts: %v", res.Attempts, err)
			return res, err
		}

		if _, err := fmt.Fprintln(g.out, MsgPrompt); err != nil {
			return res, fmt.Errorf("writing prompt: %w", err)
		}

		line, err := g.readLine()
		if err != nil {
			g.log("read failed after %d attempts: %v", res.Attempts, err)
			return res, err
		}
		res.Attempts++

		guess, ok := ParseGuess(line)
		if !ok {
			g.log("attempt %d: ignored %q", res.Attempts, line)
			continue
		}
		res.Valid++

		if _, err := fmt.Fprintf(g.out, MsgEcho+"\n", guess); err != nil {
			return res, fmt.Errorf("writing guess: %w", err)
		}

		verdict := Compare(guess, g.secret)
		g.log("attempt %d: guess %d is %s", res.Attempts, guess, verdict)

		if _, err := g.colors[verdict].Fprintln(g.out, verdict.Message()); err != nil {
			return res, fmt.Errorf("writing verdict: %w", err)
		}

		if verdict == Equal {
			g.log("won in %d attempts (%d valid)", res.Attempts, res.Valid)
			return res, nil
		}
	}
}

// readLine blocks until a full line is available. A final line without a
// trailing newline is returned as is; end-of-stream with no data is
// ErrInputClosed.
func (g *Game) readLine() (string, error) {
	line, err := g.in.ReadString('\n')
	if err == nil {
		return line, nil
	}
	if errors.Is(err, io.EOF) {
		if line != "" {
			return line, nil
		}
		return "", ErrInputClosed
	}
	return "", fmt.Errorf("reading guess: %w", err)
}

// isTerminal reports whether w is a file descriptor attached to a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (g *Game) log(format string, args ...interface{}) {
	if g.logger != nil {
		g.logger.Log(format, args...)
	}
}
