package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/timeline-dev/timeline/internal/tuition"
)

func newStudentCommand() *cobra.Command {
	var dir string

	studentCmd := &cobra.Command{
		Use:   "student",
		Short: "Manage tuition students",
	}
	dirFlag(studentCmd, &dir)
	studentCmd.AddCommand(newStudentAddCommand(&dir))
	studentCmd.AddCommand(newStudentListCommand(&dir))
	return studentCmd
}

func newStudentAddCommand(dir *string) *cobra.Command {
	var subject string
	var rate string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a student",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ratePerClass, err := decimal.NewFromString(rate)
			if err != nil {
				return fmt.Errorf("parsing rate %q: %w", rate, err)
			}
			return runStudentAdd(*dir, args[0], subject, ratePerClass)
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "subject taught (required)")
	_ = cmd.MarkFlagRequired("subject")
	cmd.Flags().StringVar(&rate, "rate", "", "rate per class (required)")
	_ = cmd.MarkFlagRequired("rate")

	return cmd
}

func runStudentAdd(dir, name, subject string, rate decimal.Decimal) error {
	a, err := openApp(dir)
	if err != nil {
		return err
	}
	defer a.Close()

	student, err := a.tuition.AddStudent(tuition.StudentParams{
		Name:         name,
		Subject:      subject,
		RatePerClass: rate,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Added student %s (%s, %s/class)\n",
		student.Name, student.Subject, a.currency(student.RatePerClass.StringFixed(2)))
	return nil
}

func newStudentListCommand(dir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List students with attendance totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStudentList(*dir)
		},
	}
}

func runStudentList(dir string) error {
	a, err := openApp(dir)
	if err != nil {
		return err
	}
	defer a.Close()

	students := a.tuition.Students()
	if len(students) == 0 {
		fmt.Println("No students yet.")
		return nil
	}

	records := a.tuition.Records()
	for _, s := range students {
		taken, absent, earnings := tuition.StudentTotals(s, records)
		fmt.Printf("%s  %s (%s)  taken %d, absent %d, earned %s\n",
			s.ID, s.Name, s.Subject, taken, absent, a.currency(earnings.StringFixed(2)))
	}
	return nil
}
