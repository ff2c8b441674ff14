// internal/terminal/terminal.go
//
// Line-based terminal front end.
// Responsibilities:
//   - Render the game (root word, score, used words) after every mutation.
//   - Read one command per line and forward it to the session manager.
//   - Show feedback for rejected submissions.
//
// Commands:
//   :new   start a new game in the current session
//   :quit  leave (EOF does the same)
//   other  submitted as a word

package terminal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/robalobadob/wordscramble/internal/game"
	"github.com/robalobadob/wordscramble/internal/store"
)

const (
	cmdNew  = ":new"
	cmdQuit = ":quit"
)

// Manager is the subset of session.Manager the terminal needs.
type Manager interface {
	Start(ctx context.Context) (store.Session, error)
	Submit(ctx context.Context, id, raw string) (game.Result, game.State, error)
	NewGame(ctx context.Context, id string) (game.State, error)
	End(ctx context.Context, id string) error
}

// UI writes game output to w.
type UI struct {
	mu sync.Mutex
	w  io.Writer
}

// New constructs a UI writing to w.
func New(w io.Writer) *UI { return &UI{w: w} }

// Render prints the full game state. It matches session.RenderFunc.
func (u *UI) Render(_ string, st game.State) {
	u.mu.Lock()
	defer u.mu.Unlock()
	var b strings.Builder
	fmt.Fprintf(&b, "\n== %s ==\n", st.RootWord)
	fmt.Fprintf(&b, "Score: %d\n", st.Score)
	for _, w := range st.UsedWords {
		fmt.Fprintf(&b, "  (%d) %s\n", game.LetterCount(w), w)
	}
	_, _ = io.WriteString(u.w, b.String())
}

// Feedback prints the outcome of a rejected submission.
func (u *UI) Feedback(res game.Result, root string) {
	if res.Verdict == game.RejectedEmpty {
		return
	}
	u.printf("! %s: %s\n", res.Title(), res.Message(root))
}

func (u *UI) printf(format string, args ...any) {
	u.mu.Lock()
	defer u.mu.Unlock()
	_, _ = fmt.Fprintf(u.w, format, args...)
}

// Run starts a session and processes lines from in until EOF, :quit or
// context cancellation. The session is ended before returning.
// Cancellation takes effect even while in is blocked waiting for input.
func Run(ctx context.Context, m Manager, ui *UI, in io.Reader) error {
	s, err := m.Start(ctx)
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	defer func() { _ = m.End(context.WithoutCancel(ctx), s.ID) }()

	root := s.State.RootWord
	ui.printf("Spell words from the root word. %s for a new game, %s to leave.\n", cmdNew, cmdQuit)

	done := make(chan struct{})
	defer close(done)
	lines, scanErr := readLines(in, done)

	for {
		if ctx.Err() != nil {
			return nil
		}
		var line string
		select {
		case <-ctx.Done():
			return nil
		case err := <-scanErr:
			return err
		case line = <-lines:
		}

		switch strings.TrimSpace(line) {
		case cmdQuit:
			return nil
		case cmdNew:
			st, err := m.NewGame(ctx, s.ID)
			if err != nil {
				return fmt.Errorf("new game: %w", err)
			}
			root = st.RootWord
		default:
			res, _, err := m.Submit(ctx, s.ID, line)
			if err != nil {
				return fmt.Errorf("submit: %w", err)
			}
			if !res.OK() {
				ui.Feedback(res, root)
			}
		}
	}
}

// readLines scans in on its own goroutine. Every line is delivered on the
// first channel before the scan result (nil at EOF) is sent on the second.
// The goroutine stops delivering once done is closed; a read already blocked
// on in is abandoned.
func readLines(in io.Reader, done <-chan struct{}) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-done:
				return
			}
		}
		errc <- sc.Err()
	}()
	return lines, errc
}
