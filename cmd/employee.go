package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"electroledger/internal/ledger"
	"electroledger/pkg/models"
)

var employeeCmd = &cobra.Command{
	Use:   "employee",
	Short: "Manage employees, work days and wages",
}

var employeeAddCmd = &cobra.Command{
	Use:     "add",
	Short:   "Hire an employee",
	Example: `  electroledger employee add --name "Omar" --wage 2000`,
	Args:    cobra.NoArgs,
	RunE:    runEmployeeAdd,
}

var employeeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List employees with their salaries",
	Args:  cobra.NoArgs,
	RunE:  runEmployeeList,
}

var employeeUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Change an employee",
	Args:  cobra.ExactArgs(1),
	RunE:  runEmployeeUpdate,
}

var employeeDaysCmd = &cobra.Command{
	Use:   "days <id> <n>",
	Short: "Add worked days",
	Args:  cobra.ExactArgs(2),
	RunE:  runEmployeeDays,
}

var employeePayCmd = &cobra.Command{
	Use:   "pay <id>",
	Short: "Mark wages paid and reset the work days",
	Args:  cobra.ExactArgs(1),
	RunE:  runEmployeePay,
}

var employeeUnpayCmd = &cobra.Command{
	Use:   "unpay <id>",
	Short: "Clear the paid mark",
	Args:  cobra.ExactArgs(1),
	RunE:  runEmployeeUnpay,
}

var employeeRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove an employee",
	Args:  cobra.ExactArgs(1),
	RunE:  runEmployeeRemove,
}

func init() {
	rootCmd.AddCommand(employeeCmd)
	employeeCmd.AddCommand(employeeAddCmd, employeeListCmd, employeeUpdateCmd,
		employeeDaysCmd, employeePayCmd, employeeUnpayCmd, employeeRemoveCmd)

	for _, c := range []*cobra.Command{employeeAddCmd, employeeUpdateCmd} {
		c.Flags().String("name", "", "Employee name")
		c.Flags().String("wage", "", "Daily wage (DA)")
	}
	employeeUpdateCmd.Flags().Int("days", 0, "Set the work days")
	employeeUpdateCmd.Flags().Bool("paid", false, "Set the paid flag")
}

func runEmployeeAdd(cmd *cobra.Command, args []string) error {
	wage, err := amountFlag(cmd, "wage")
	if err != nil {
		return err
	}
	name, _ := cmd.Flags().GetString("name")

	e, err := books.Employees.Add(cmd.Context(), models.NewEmployee{Name: name, DailyWage: wage})
	if err != nil {
		return err
	}
	return done(cmd, e, "تمت إضافة العامل %s (%s)", e.Name, e.ID)
}

type employeeRow struct {
	models.Employee
	Salary string `json:"salary"`
}

func runEmployeeList(cmd *cobra.Command, args []string) error {
	employees, err := books.Employees.List(cmd.Context())
	if err != nil {
		return err
	}

	rows := make([]employeeRow, 0, len(employees))
	t := &table{headers: []string{"ID", "الاسم", "الأجر اليومي", "الأيام", "الراتب", "مدفوع"}}
	for _, e := range employees {
		salary := ledger.EmployeeSalary(e)
		rows = append(rows, employeeRow{Employee: e, Salary: salary.String()})
		t.add(e.ID.String(), e.Name, money(e.DailyWage), fmt.Sprint(e.WorkDays.Int()), money(salary), yesNo(e.IsPaid))
	}
	t.footer = []string{"", "غير مدفوع", "", "", money(ledger.TotalUnpaidWages(employees)), ""}
	return render(cmd, rows, t)
}

func runEmployeeUpdate(cmd *cobra.Command, args []string) error {
	id := idArg(args)
	wage, err := optAmount(cmd, "wage")
	if err != nil {
		return err
	}
	patch := models.EmployeePatch{
		Name:      optString(cmd, "name"),
		DailyWage: wage,
		WorkDays:  optInt(cmd, "days"),
		IsPaid:    optBool(cmd, "paid"),
	}
	ok, err := books.Employees.Update(cmd.Context(), id, patch)
	if err != nil {
		return err
	}
	if !ok {
		return notFound("employee", id)
	}
	return done(cmd, map[string]interface{}{"id": id, "updated": true}, "تم تحديث العامل %s", id)
}

func runEmployeeDays(cmd *cobra.Command, args []string) error {
	id := idArg(args)
	n, err := intArg(args[1])
	if err != nil {
		return fmt.Errorf("days must be a whole number: %w", err)
	}
	return updateEmployee(cmd, id, func() (bool, error) {
		return books.Employees.AddWorkDays(cmd.Context(), id, n)
	})
}

func runEmployeePay(cmd *cobra.Command, args []string) error {
	id := idArg(args)
	return updateEmployee(cmd, id, func() (bool, error) {
		return books.Employees.MarkPaid(cmd.Context(), id)
	})
}

func runEmployeeUnpay(cmd *cobra.Command, args []string) error {
	id := idArg(args)
	return updateEmployee(cmd, id, func() (bool, error) {
		return books.Employees.MarkUnpaid(cmd.Context(), id)
	})
}

// updateEmployee runs change and reports the employee's new salary.
func updateEmployee(cmd *cobra.Command, id models.ID, change func() (bool, error)) error {
	ok, err := change()
	if err != nil {
		return err
	}
	if !ok {
		return notFound("employee", id)
	}
	e, _, err := books.Employees.Get(cmd.Context(), id)
	if err != nil {
		return err
	}
	return done(cmd, e, "%s: %d أيام، الراتب %s، مدفوع: %s",
		e.Name, e.WorkDays.Int(), money(ledger.EmployeeSalary(e)), yesNo(e.IsPaid))
}

func runEmployeeRemove(cmd *cobra.Command, args []string) error {
	id := idArg(args)
	ok, err := books.Employees.Remove(cmd.Context(), id)
	if err != nil {
		return err
	}
	if !ok {
		return notFound("employee", id)
	}
	return done(cmd, map[string]interface{}{"id": id, "removed": true}, "تم حذف العامل %s", id)
}
