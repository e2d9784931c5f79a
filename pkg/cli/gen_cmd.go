package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"primer/internal/domain"
	"primer/internal/toolkit"
)

func newGenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Small generators and checks",
	}

	var timed bool
	cmd.PersistentFlags().BoolVar(&timed, "timed", false, "Report execution time on stderr")

	cmd.AddCommand(newGenRandomCmd())
	cmd.AddCommand(newGenNowCmd())
	cmd.AddCommand(newGenFibCmd())
	cmd.AddCommand(newGenPalindromeCmd())
	cmd.AddCommand(newGenPasswordCmd())

	return cmd
}

// runTimed executes fn, optionally reporting its duration on stderr when the
// persistent --timed flag is set.
func runTimed(cmd *cobra.Command, fn func() error) error {
	timed, _ := cmd.Flags().GetBool("timed")
	if !timed {
		return fn()
	}
	_, elapsed, err := toolkit.TimedErr(func() (struct{}, error) {
		return struct{}{}, fn()
	})
	_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "elapsed: %s\n", elapsed.Round(time.Microsecond))
	return err
}

func newGenRandomCmd() *cobra.Command {
	var (
		min int64
		max int64
	)

	cmd := &cobra.Command{
		Use:   "random",
		Short: "Generate a random number in [min, max]",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTimed(cmd, func() error {
				n, err := toolkit.RandInt(min, max)
				if err != nil {
					return err
				}
				if getOutputFormat(cmd) == "json" {
					return printJSON(cmd.OutOrStdout(), map[string]int64{
						"value": n, "min": min, "max": max,
					})
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), n)
				return nil
			})
		},
	}

	cmd.Flags().Int64Var(&min, "min", 1, "Minimum value (inclusive)")
	cmd.Flags().Int64Var(&max, "max", 100, "Maximum value (inclusive)")

	return cmd
}

func newGenNowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "now",
		Short: "Print the current date and time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTimed(cmd, func() error {
				now := toolkit.Now()
				if getOutputFormat(cmd) == "json" {
					return printJSON(cmd.OutOrStdout(), map[string]string{"now": now})
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), now)
				return nil
			})
		},
	}
}

func newGenFibCmd() *cobra.Command {
	var seq bool

	cmd := &cobra.Command{
		Use:   "fib <n>",
		Short: "Compute the nth Fibonacci number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return domain.ErrValidation("%q is not an integer", args[0])
			}
			if n > 93 {
				return domain.ErrValidation("n must be at most 93 to avoid overflow, got %d", n)
			}
			return runTimed(cmd, func() error {
				if seq {
					values := toolkit.Sequence(n)
					if getOutputFormat(cmd) == "json" {
						return printJSON(cmd.OutOrStdout(), map[string]interface{}{
							"n": n, "sequence": values,
						})
					}
					for i, v := range values {
						_, _ = fmt.Fprintf(cmd.OutOrStdout(), "fib(%d) = %d\n", i, v)
					}
					return nil
				}
				v := toolkit.Fibonacci(n)
				if getOutputFormat(cmd) == "json" {
					return printJSON(cmd.OutOrStdout(), map[string]interface{}{
						"n": n, "value": v,
					})
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), v)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&seq, "seq", false, "Print the whole sequence up to n")

	return cmd
}

func newGenPalindromeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "palindrome <text>",
		Short: "Check whether text is a palindrome",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTimed(cmd, func() error {
				ok := toolkit.IsPalindrome(args[0])
				if getOutputFormat(cmd) == "json" {
					return printJSON(cmd.OutOrStdout(), map[string]interface{}{
						"text": args[0], "palindrome": ok,
					})
				}
				if ok {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%q is a palindrome\n", args[0])
				} else {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%q is not a palindrome\n", args[0])
				}
				return nil
			})
		},
	}
}

func newGenPasswordCmd() *cobra.Command {
	var (
		length    int
		noDigits  bool
		noSymbols bool
	)

	cmd := &cobra.Command{
		Use:   "password",
		Short: "Generate a random password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTimed(cmd, func() error {
				pw, err := toolkit.Password(length, toolkit.PasswordOptions{
					NoDigits:  noDigits,
					NoSymbols: noSymbols,
				})
				if err != nil {
					return err
				}
				if getOutputFormat(cmd) == "json" {
					return printJSON(cmd.OutOrStdout(), map[string]interface{}{
						"password": pw, "length": length,
					})
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), pw)
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&length, "length", 16, "Password length")
	cmd.Flags().BoolVar(&noDigits, "no-digits", false, "Exclude digits")
	cmd.Flags().BoolVar(&noSymbols, "no-symbols", false, "Exclude symbols")

	return cmd
}
