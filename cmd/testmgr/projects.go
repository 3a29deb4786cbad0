package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

func newProjectsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "Inspect and delete projects",
	}
	cmd.AddCommand(newProjectsListCmd(a))
	cmd.AddCommand(newProjectsDeleteCmd(a))
	return cmd
}

func newProjectsListCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			services, db, err := a.services(1)
			if err != nil {
				return err
			}
			defer closeDB(db)

			projects, err := services.Project.GetAll()
			if err != nil {
				return err
			}

			if asJSON {
				output, err := json.MarshalIndent(projects, "", "  ")
				if err != nil {
					return fmt.Errorf("marshal projects: %w", err)
				}
				fmt.Fprintln(a.out, string(output))
				return nil
			}

			w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tSTART\tEND")
			for _, p := range projects {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", p.ID, p.Name, formatDate(p.StartDate), formatDate(p.EndDate))
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")
	return cmd
}

func newProjectsDeleteCmd(a *app) *cobra.Command {
	var cascade bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a project",
		Long: `Delete a project by ID. Without --cascade the project must have no
components. With --cascade its test reports, test cases and components are
deleted first; test history entries are kept.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid project ID %q", args[0])
			}

			services, db, err := a.services(1)
			if err != nil {
				return err
			}
			defer closeDB(db)

			if !cascade {
				if err := services.Project.Delete(id); err != nil {
					return err
				}
				fmt.Fprintf(a.out, "Deleted project %d\n", id)
				return nil
			}

			result, err := services.Project.DeleteCascade(id)
			if result != nil {
				fmt.Fprintf(a.out, "Deleted %d test reports, %d test cases, %d components\n",
					result.TestReports, result.TestCases, result.Components)
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Deleted project %d (%d rows in total)\n", id, result.Total())
			return nil
		},
	}

	cmd.Flags().BoolVar(&cascade, "cascade", false, "also delete components, test cases and test reports")
	return cmd
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02")
}
