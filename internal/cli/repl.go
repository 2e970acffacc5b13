package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"go.mydb/internal/config"
	"go.mydb/internal/engine"
	"go.mydb/internal/storage"
)

// shell reads one statement or meta command per line. Meta commands are
// forwarded to a cobra command tree, statements go to the engine.
type shell struct {
	db     *engine.Database
	in     io.Reader
	out    io.Writer
	prompt string
	meta   *cobra.Command
	closed bool

	promptStyle lipgloss.Style
	errStyle    lipgloss.Style
}

func newShell(db *engine.Database, cfg *config.Config, in io.Reader, out io.Writer) *shell {
	s := &shell{
		db:     db,
		in:     in,
		out:    out,
		prompt: cfg.Prompt,
	}

	r := lipgloss.NewRenderer(out)
	s.promptStyle = r.NewStyle()
	s.errStyle = r.NewStyle()
	if cfg.Color {
		s.promptStyle = s.promptStyle.Bold(true)
		s.errStyle = s.errStyle.Foreground(lipgloss.Color("9"))
	}

	s.meta = newMetaCommand(s)
	return s
}

// Run loops until .exit or end of input. Only fatal storage errors are
// returned without closing the table; a failed read still flushes it.
func (s *shell) Run() error {
	reader := bufio.NewReader(s.in)

	for !s.closed {
		fmt.Fprint(s.out, s.promptStyle.Render(s.prompt))

		// lines of any length, like getline
		line, rErr := reader.ReadString('\n')
		if rErr != nil && !errors.Is(rErr, io.EOF) {
			return errors.Join(rErr, s.close())
		}

		if input := strings.TrimSpace(line); input != "" {
			var err error
			if strings.HasPrefix(input, ".") {
				err = s.execMeta(input)
			} else {
				err = s.execStatement(input)
			}
			if err != nil {
				return err
			}
		}

		if rErr != nil && !s.closed {
			fmt.Fprintln(s.out)
			return s.close()
		}
	}
	return nil
}

func (s *shell) execMeta(input string) error {
	args := strings.Fields(input)

	cmd, _, err := s.meta.Find(args)
	if err != nil || cmd == s.meta {
		s.printErr("Unrecognized command '%s'.", input)
		return nil
	}

	s.meta.SetArgs(args)
	return s.meta.Execute()
}

func (s *shell) execStatement(input string) error {
	stmt, err := engine.Prepare(input)
	switch {
	case errors.Is(err, engine.ErrSyntax):
		s.printErr("Syntax error. Could not parse statement.")
		return nil
	case errors.Is(err, engine.ErrNegativeID):
		s.printErr("ID must be positive.")
		return nil
	case errors.Is(err, engine.ErrStringTooLong):
		s.printErr("String is too long.")
		return nil
	case err != nil:
		s.printErr("Unrecognized keyword at start of '%s'.", input)
		return nil
	}

	rows, err := s.db.Execute(stmt)
	if errors.Is(err, storage.ErrTableFull) {
		s.printErr("Error: Table full.")
		return nil
	}
	if storage.IsFatal(err) {
		return err
	}
	if err != nil {
		s.printErr("Error: %v.", err)
		return nil
	}

	for _, row := range rows {
		fmt.Fprintln(s.out, row)
	}
	fmt.Fprintln(s.out, "Executed.")
	return nil
}

func (s *shell) close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}

func (s *shell) printErr(format string, args ...any) {
	fmt.Fprintln(s.out, s.errStyle.Render(fmt.Sprintf(format, args...)))
}
