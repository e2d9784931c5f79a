// Package cli implements the primer command-line interface.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"primer/internal/domain"
)

var (
	version = "dev"
	commit  = "none"
)

// Execute runs the CLI.
func Execute() int {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		output, _ := rootCmd.PersistentFlags().GetString("output")
		if output == "json" {
			errObj := map[string]interface{}{
				"error": err.Error(),
			}
			var nf *domain.NotFoundError
			var verr *domain.ValidationError
			var conflict *domain.ConflictError
			switch {
			case errors.As(err, &nf):
				errObj["code"] = "not_found"
			case errors.As(err, &verr):
				errObj["code"] = "invalid_input"
			case errors.As(err, &conflict):
				errObj["code"] = "conflict"
			}
			_ = printJSON(os.Stdout, errObj)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

// rootState holds the resolved persistent options shared by subcommands.
type rootState struct {
	dbPath  string
	output  string
	profile string
	quiet   bool
}

func newRootCmd() *cobra.Command {
	st := &rootState{}

	rootCmd := &cobra.Command{
		Use:           "primer",
		Short:         "Introductory examples toolkit",
		Long:          "primer bundles a greeting program, an interactive menu, a person store, and a set of small generators into one command-line tool.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Load config from profile if flags/env not set
			cfg, err := LoadUserConfig()
			if err != nil {
				// Config file is optional
				cfg = &UserConfig{
					CurrentProfile: "default",
					Profiles:       map[string]Profile{},
				}
			}

			p := cfg.ActiveProfile(st.profile)

			// Apply precedence: flag > env > profile > default
			if !cmd.Flags().Changed("db") {
				if v := os.Getenv("PRIMER_DB"); v != "" {
					st.dbPath = v
				} else if p.DBPath != "" {
					st.dbPath = p.DBPath
				}
			}
			if !cmd.Flags().Changed("output") {
				if v := os.Getenv("PRIMER_OUTPUT"); v != "" {
					st.output = v
				} else if p.Output != "" {
					st.output = p.Output
				}
			}
			if err := validateOutputFormat(st.output); err != nil {
				return err
			}
			// Subcommands read the resolved value via the persistent flag.
			if err := cmd.Root().PersistentFlags().Set("output", st.output); err != nil {
				return err
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&st.dbPath, "db", "primer.sqlite", "Path to the SQLite store")
	rootCmd.PersistentFlags().StringVarP(&st.output, "output", "o", "table", "Output format (table, json)")
	rootCmd.PersistentFlags().StringVarP(&st.profile, "profile", "p", "", "Config profile to use")
	rootCmd.PersistentFlags().BoolVarP(&st.quiet, "quiet", "q", false, "Only output record identifiers")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newGreetCmd())
	rootCmd.AddCommand(newMenuCmd())
	rootCmd.AddCommand(newPersonCmd(st))
	rootCmd.AddCommand(newGenCmd())

	return rootCmd
}
