package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"primer/internal/domain"
	"primer/internal/toolkit"
)

func newPersonCmd(st *rootState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "person",
		Short: "Manage person records in the store",
	}

	cmd.AddCommand(newPersonCreateCmd(st))
	cmd.AddCommand(newPersonGetCmd(st))
	cmd.AddCommand(newPersonListCmd(st))
	cmd.AddCommand(newPersonDeleteCmd(st))
	cmd.AddCommand(newPersonGreetCmd(st))
	cmd.AddCommand(newPersonBirthdayCmd(st))
	cmd.AddCommand(newPersonChangeJobCmd(st))
	cmd.AddCommand(newPersonAuditCmd(st))

	return cmd
}

// personToRow renders a person as table cells.
func personToRow(p *domain.Person) []string {
	return []string{
		p.ID,
		p.Name,
		strconv.Itoa(p.Age),
		p.Occupation,
		toolkit.FormatTimestamp(p.CreatedAt),
	}
}

var personHeader = []string{"ID", "NAME", "AGE", "OCCUPATION", "CREATED"}

// personJSON is the JSON projection of a person.
type personJSON struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Age        int    `json:"age"`
	Occupation string `json:"occupation"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

func toPersonJSON(p *domain.Person) personJSON {
	return personJSON{
		ID:         p.ID,
		Name:       p.Name,
		Age:        p.Age,
		Occupation: p.Occupation,
		CreatedAt:  toolkit.FormatTimestamp(p.CreatedAt),
		UpdatedAt:  toolkit.FormatTimestamp(p.UpdatedAt),
	}
}

func printPerson(cmd *cobra.Command, st *rootState, p *domain.Person) error {
	if st.quiet {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), p.ID)
		return nil
	}
	if getOutputFormat(cmd) == "json" {
		return printJSON(cmd.OutOrStdout(), toPersonJSON(p))
	}
	return renderTable(cmd.OutOrStdout(), personHeader, [][]string{personToRow(p)})
}

func newPersonCreateCmd(st *rootState) *cobra.Command {
	var (
		name       string
		age        int
		occupation string
	)

	cmd := &cobra.Command{
		Use:     "create",
		Short:   "Create a new person",
		Example: `  primer person create --name Alice --age 28 --occupation "Software Engineer"`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, cleanup, err := openApp(st)
			if err != nil {
				return err
			}
			defer cleanup()

			p, err := a.Services.Person.Create(cmd.Context(), domain.CreatePersonRequest{
				Name:       name,
				Age:        age,
				Occupation: occupation,
			})
			if err != nil {
				return err
			}
			return printPerson(cmd, st, p)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Person name (required)")
	cmd.Flags().IntVar(&age, "age", 0, "Person age")
	cmd.Flags().StringVar(&occupation, "occupation", "", "Person occupation (required)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("occupation")

	return cmd
}

func newPersonGetCmd(st *rootState) *cobra.Command {
	var byName bool

	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Show a person by ID (or name with --by-name)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := openApp(st)
			if err != nil {
				return err
			}
			defer cleanup()

			var p *domain.Person
			if byName {
				p, err = a.Services.Person.GetByName(cmd.Context(), args[0])
			} else {
				p, err = a.Services.Person.GetByID(cmd.Context(), args[0])
			}
			if err != nil {
				return err
			}
			return printPerson(cmd, st, p)
		},
	}

	cmd.Flags().BoolVar(&byName, "by-name", false, "Look up by name instead of ID")

	return cmd
}

func newPersonListCmd(st *rootState) *cobra.Command {
	var (
		maxResults int
		pageToken  string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List persons",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, cleanup, err := openApp(st)
			if err != nil {
				return err
			}
			defer cleanup()

			page := domain.PageRequest{MaxResults: maxResults, PageToken: pageToken}
			persons, total, err := a.Services.Person.List(cmd.Context(), page)
			if err != nil {
				return err
			}

			if st.quiet {
				for i := range persons {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), persons[i].ID)
				}
				return nil
			}

			next := domain.NextPageToken(page.Offset(), page.Limit(), total)
			if getOutputFormat(cmd) == "json" {
				items := make([]personJSON, 0, len(persons))
				for i := range persons {
					items = append(items, toPersonJSON(&persons[i]))
				}
				return printJSON(cmd.OutOrStdout(), map[string]interface{}{
					"persons":         items,
					"total":           total,
					"next_page_token": next,
				})
			}

			rows := make([][]string, 0, len(persons))
			for i := range persons {
				rows = append(rows, personToRow(&persons[i]))
			}
			if err := renderTable(cmd.OutOrStdout(), personHeader, rows); err != nil {
				return err
			}
			if next != "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "\nNext page: --page-token %s\n", next)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&maxResults, "max-results", 0, "Maximum results per page")
	cmd.Flags().StringVar(&pageToken, "page-token", "", "Page token from a previous list call")

	return cmd
}

func newPersonDeleteCmd(st *rootState) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a person by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := openApp(st)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := a.Services.Person.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return printJSON(cmd.OutOrStdout(), map[string]string{
					"status": "deleted",
					"id":     args[0],
				})
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted person %s\n", args[0])
			return nil
		},
	}
}

func newPersonGreetCmd(st *rootState) *cobra.Command {
	return &cobra.Command{
		Use:   "greet <id>",
		Short: "Print a person's self-introduction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := openApp(st)
			if err != nil {
				return err
			}
			defer cleanup()

			msg, err := a.Services.Person.Greet(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printMessage(cmd, msg)
		},
	}
}

func newPersonBirthdayCmd(st *rootState) *cobra.Command {
	return &cobra.Command{
		Use:   "birthday <id>",
		Short: "Celebrate a person's birthday (increments age)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := openApp(st)
			if err != nil {
				return err
			}
			defer cleanup()

			msg, err := a.Services.Person.Birthday(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printMessage(cmd, msg)
		},
	}
}

func newPersonChangeJobCmd(st *rootState) *cobra.Command {
	return &cobra.Command{
		Use:   "change-job <id> <occupation>",
		Short: "Change a person's occupation",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := openApp(st)
			if err != nil {
				return err
			}
			defer cleanup()

			msg, err := a.Services.Person.ChangeJob(cmd.Context(), domain.ChangeJobRequest{
				PersonID:      args[0],
				NewOccupation: args[1],
			})
			if err != nil {
				return err
			}
			return printMessage(cmd, msg)
		},
	}
}

func newPersonAuditCmd(st *rootState) *cobra.Command {
	var (
		personName string
		action     string
		maxResults int
		pageToken  string
	)

	cmd := &cobra.Command{
		Use:   "audit",
		Short: "List the audit trail",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, cleanup, err := openApp(st)
			if err != nil {
				return err
			}
			defer cleanup()

			filter := domain.AuditFilter{
				Page: domain.PageRequest{MaxResults: maxResults, PageToken: pageToken},
			}
			if personName != "" {
				filter.PersonName = &personName
			}
			if action != "" {
				filter.Action = &action
			}

			entries, total, err := a.Services.Audit.List(cmd.Context(), filter)
			if err != nil {
				return err
			}

			if getOutputFormat(cmd) == "json" {
				type entryJSON struct {
					ID         string  `json:"id"`
					PersonName string  `json:"person_name"`
					Action     string  `json:"action"`
					Detail     *string `json:"detail,omitempty"`
					CreatedAt  string  `json:"created_at"`
				}
				items := make([]entryJSON, 0, len(entries))
				for _, e := range entries {
					items = append(items, entryJSON{
						ID:         e.ID,
						PersonName: e.PersonName,
						Action:     e.Action,
						Detail:     e.Detail,
						CreatedAt:  toolkit.FormatTimestamp(e.CreatedAt),
					})
				}
				return printJSON(cmd.OutOrStdout(), map[string]interface{}{
					"entries": items,
					"total":   total,
				})
			}

			rows := make([][]string, 0, len(entries))
			for _, e := range entries {
				detail := ""
				if e.Detail != nil {
					detail = *e.Detail
				}
				rows = append(rows, []string{
					e.PersonName, e.Action, detail, toolkit.FormatTimestamp(e.CreatedAt),
				})
			}
			return renderTable(cmd.OutOrStdout(),
				[]string{"PERSON", "ACTION", "DETAIL", "AT"}, rows)
		},
	}

	cmd.Flags().StringVar(&personName, "person", "", "Filter by person name")
	cmd.Flags().StringVar(&action, "action", "", "Filter by action")
	cmd.Flags().IntVar(&maxResults, "max-results", 0, "Maximum results per page")
	cmd.Flags().StringVar(&pageToken, "page-token", "", "Page token from a previous call")

	return cmd
}

// printMessage prints a single human-readable message, honoring JSON output.
func printMessage(cmd *cobra.Command, msg string) error {
	if getOutputFormat(cmd) == "json" {
		return printJSON(cmd.OutOrStdout(), map[string]string{"message": msg})
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), msg)
	return nil
}
