package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"primer/internal/domain"
)

func newMenuCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Run the interactive demo menu",
		Long:  "A small read-eval-print loop over a fixed menu: greetings, two-number arithmetic, and string transforms. Invalid input re-prompts instead of exiting.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMenu(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

// menuSession holds the scanner and writer for one interactive run.
type menuSession struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// runMenu drives the menu loop until the quit sentinel or EOF.
// Malformed input never terminates the loop.
func runMenu(in io.Reader, out io.Writer) error {
	s := &menuSession{scanner: bufio.NewScanner(in), out: out}

	for {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "=== primer menu ===")
		fmt.Fprintln(out, "  1) greeting")
		fmt.Fprintln(out, "  2) arithmetic")
		fmt.Fprintln(out, "  3) string transforms")
		fmt.Fprintln(out, "  q) quit")

		choice, ok := s.prompt("Select an option: ")
		if !ok {
			return nil
		}

		switch strings.ToLower(choice) {
		case "1":
			if done := s.greeting(); done {
				return nil
			}
		case "2":
			if done := s.arithmetic(); done {
				return nil
			}
		case "3":
			if done := s.transforms(); done {
				return nil
			}
		case "q", "quit", "exit":
			fmt.Fprintln(out, "Goodbye!")
			return nil
		default:
			fmt.Fprintf(out, "Invalid option %q — please choose 1, 2, 3, or q.\n", choice)
		}
	}
}

// prompt prints the label and reads one trimmed line.
// ok is false on EOF.
func (s *menuSession) prompt(label string) (line string, ok bool) {
	fmt.Fprint(s.out, label)
	if !s.scanner.Scan() {
		fmt.Fprintln(s.out)
		return "", false
	}
	return strings.TrimSpace(s.scanner.Text()), true
}

// greeting reads a name and prints a greeting.
// The return value is true when input hit EOF.
func (s *menuSession) greeting() bool {
	name, ok := s.prompt("What is your name? ")
	if !ok {
		return true
	}
	if name == "" {
		name = "stranger"
	}
	fmt.Fprintf(s.out, "Hello, %s!\n", name)
	return false
}

func (s *menuSession) arithmetic() bool {
	a, ok := s.promptNumber("First number: ")
	if !ok {
		return true
	}
	b, ok := s.promptNumber("Second number: ")
	if !ok {
		return true
	}

	op, ok := s.prompt("Operation (+, -, *, /): ")
	if !ok {
		return true
	}

	result, err := applyOperation(a, b, op)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return false
	}
	fmt.Fprintf(s.out, "Result: %s %s %s = %s\n",
		formatNumber(a), op, formatNumber(b), formatNumber(result))
	return false
}

// promptNumber re-prompts until a valid number is entered or input ends.
func (s *menuSession) promptNumber(label string) (float64, bool) {
	for {
		line, ok := s.prompt(label)
		if !ok {
			return 0, false
		}
		n, err := strconv.ParseFloat(line, 64)
		if err != nil {
			fmt.Fprintf(s.out, "%q is not a number — try again.\n", line)
			continue
		}
		return n, true
	}
}

func (s *menuSession) transforms() bool {
	text, ok := s.prompt("Text to transform: ")
	if !ok {
		return true
	}
	fmt.Fprintf(s.out, "Upper:    %s\n", strings.ToUpper(text))
	fmt.Fprintf(s.out, "Lower:    %s\n", strings.ToLower(text))
	fmt.Fprintf(s.out, "Reversed: %s\n", reverseString(text))
	return false
}

func applyOperation(a, b float64, op string) (float64, error) {
	switch op {
	case "+":
		return a + b, nil
	case "-":
		return a - b, nil
	case "*":
		return a * b, nil
	case "/":
		if b == 0 {
			return 0, domain.ErrValidation("cannot divide by zero")
		}
		return a / b, nil
	default:
		return 0, domain.ErrValidation("unknown operation %q: use +, -, *, or /", op)
	}
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func reverseString(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
