package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// longNameThreshold is the name length above which the long-name remark is used.
const longNameThreshold = 10

func newGreetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "greet [name]",
		Short: "Print a personalised greeting",
		Long:  "Greet the given name, or read one from standard input when no argument is supplied.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			name := ""
			if len(args) == 1 {
				name = strings.TrimSpace(args[0])
			}

			_, _ = fmt.Fprintln(out, "Hello, World!")
			if name == "" {
				if isTerminal(cmd.InOrStdin()) {
					_, _ = fmt.Fprint(out, "What is your name? ")
				}
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && line == "" {
					return fmt.Errorf("read name: %w", err)
				}
				name = strings.TrimSpace(line)
			}
			if name == "" {
				name = "stranger"
			}

			_, _ = fmt.Fprintf(out, "Nice to meet you, %s!\n", name)
			if len([]rune(name)) > longNameThreshold {
				_, _ = fmt.Fprintln(out, "You have a long name!")
			} else {
				_, _ = fmt.Fprintln(out, "Your name is quite short.")
			}

			_, _ = fmt.Fprintln(out, "\nCounting to 5:")
			for i := 1; i <= 5; i++ {
				_, _ = fmt.Fprintf(out, "Number %d\n", i)
			}

			_, _ = fmt.Fprintln(out, "\nThank you for trying primer!")
			return nil
		},
	}
}

// isTerminal reports whether r is an interactive terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
