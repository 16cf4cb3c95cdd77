package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/cmlabs-hris/employee-dashboard-go/internal/domain/employee"
	"github.com/cmlabs-hris/employee-dashboard-go/internal/fixtures"
	"github.com/cmlabs-hris/employee-dashboard-go/internal/pkg/printview"
	employeeService "github.com/cmlabs-hris/employee-dashboard-go/internal/service/employee"
	"github.com/spf13/cobra"
)

func newEmployeesCmd(a *app) *cobra.Command {
	employeesCmd := &cobra.Command{
		Use:   "employees",
		Short: "Inspect the persisted employee records",
	}

	employeesCmd.AddCommand(newEmployeesListCmd(a))
	employeesCmd.AddCommand(newEmployeesStatsCmd(a))
	employeesCmd.AddCommand(newEmployeesPrintCmd(a))

	return employeesCmd
}

// withEmployees opens the configured store, loads the collection and hands
// the service to fn.
func (a *app) withEmployees(ctx context.Context, fn func(svc employee.EmployeeService) error) error {
	store, closeStore, err := openStore(ctx, a.cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	return fn(employeeService.NewEmployeeService(ctx, store))
}

func newEmployeesListCmd(a *app) *cobra.Command {
	var search, gender, status string
	var asJSON bool

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List employees matching the given filters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch employee.FilterPatch
			if cmd.Flags().Changed("search") {
				patch.Search = &search
			}
			if cmd.Flags().Changed("gender") {
				patch.Gender = &gender
			}
			if cmd.Flags().Changed("status") {
				patch.Status = &status
			}
			patch.Normalize()

			reference, err := fixtures.LoadReferenceData(a.cfg.ReferenceDataFile)
			if err != nil {
				return err
			}
			if err := patch.Validate(reference); err != nil {
				return err
			}

			return a.withEmployees(cmd.Context(), func(svc employee.EmployeeService) error {
				svc.SetFilters(patch)
				resp := employee.ListEmployeeResponse{
					Employees: svc.FilteredEmployees(),
					Filters:   svc.Filters(),
					Stats:     svc.Stats(),
				}

				if asJSON {
					enc := json.NewEncoder(cmd.OutOrStdout())
					enc.SetIndent("", "  ")
					return enc.Encode(resp)
				}
				return writeEmployeeTable(cmd.OutOrStdout(), resp.Employees)
			})
		},
	}

	listCmd.Flags().StringVar(&search, "search", "", "case-insensitive name substring")
	listCmd.Flags().StringVar(&gender, "gender", "", "gender to match (Male, Female, Other or all)")
	listCmd.Flags().StringVar(&status, "status", "", "status to match (active, inactive or all)")
	listCmd.Flags().BoolVar(&asJSON, "json", false, "print employees, filters and stats as JSON")

	return listCmd
}

func writeEmployeeTable(w io.Writer, employees []employee.Employee) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tGENDER\tDOB\tSTATE\tSTATUS")
	for _, emp := range employees {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", emp.ID, emp.Name, emp.Gender, emp.DOB, emp.State, emp.StatusLabel())
	}
	return tw.Flush()
}

func newEmployeesStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print total, active and inactive counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withEmployees(cmd.Context(), func(svc employee.EmployeeService) error {
				stats := svc.Stats()
				fmt.Fprintf(cmd.OutOrStdout(), "total: %d\nactive: %d\ninactive: %d\n", stats.Total, stats.Active, stats.Inactive)
				return nil
			})
		},
	}
}

func newEmployeesPrintCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "print <id>",
		Short: "Write the printable HTML sheet of one employee to stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := printview.NewRenderer()
			if err != nil {
				return err
			}

			return a.withEmployees(cmd.Context(), func(svc employee.EmployeeService) error {
				emp, ok := svc.GetByID(args[0])
				if !ok {
					return fmt.Errorf("%s: %w", args[0], employee.ErrEmployeeNotFound)
				}
				return renderer.EmployeeSheet(cmd.OutOrStdout(), emp)
			})
		},
	}
}
