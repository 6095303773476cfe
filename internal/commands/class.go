package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/timeline-dev/timeline/internal/model"
	"github.com/timeline-dev/timeline/internal/period"
	"github.com/timeline-dev/timeline/internal/tuition"
)

func newClassCommand() *cobra.Command {
	var dir string

	classCmd := &cobra.Command{
		Use:   "class",
		Short: "Mark and review class attendance",
	}
	dirFlag(classCmd, &dir)
	classCmd.AddCommand(newClassMarkCommand(&dir))
	classCmd.AddCommand(newClassCommentCommand(&dir))
	classCmd.AddCommand(newClassWeekCommand(&dir))
	return classCmd
}

func newClassMarkCommand(dir *string) *cobra.Command {
	var date string
	var status string

	cmd := &cobra.Command{
		Use:   "mark <student-id>",
		Short: "Mark a student's attendance for a day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClassMark(*dir, args[0], date, status)
		},
	}

	cmd.Flags().StringVar(&date, "date", time.Now().Format(model.DateFormat), "class date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&status, "status", "taken", "taken, absent or pending")

	return cmd
}

func runClassMark(dir, studentID, date, status string) error {
	a, err := openApp(dir)
	if err != nil {
		return err
	}
	defer a.Close()

	rec, err := a.tuition.MarkAttendance(tuition.MarkParams{
		StudentID: studentID,
		Date:      date,
		Status:    model.RecordStatus(status),
	})
	if err != nil {
		return err
	}

	fmt.Printf("Marked %s as %s on %s\n", studentID, rec.Status, rec.Date)
	return nil
}

func newClassCommentCommand(dir *string) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "comment <student-id> <text>",
		Short: "Attach a comment to a class day",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClassComment(*dir, args[0], date, args[1])
		},
	}

	cmd.Flags().StringVar(&date, "date", time.Now().Format(model.DateFormat), "class date (YYYY-MM-DD)")

	return cmd
}

func runClassComment(dir, studentID, date, text string) error {
	a, err := openApp(dir)
	if err != nil {
		return err
	}
	defer a.Close()

	rec, err := a.tuition.AttachComment(tuition.CommentParams{
		StudentID: studentID,
		Date:      date,
		Comment:   text,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Comment saved for %s on %s (status %s)\n", studentID, rec.Date, rec.Status)
	return nil
}

func newClassWeekCommand(dir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "week <student-id>",
		Short: "Show a student's attendance for the current week",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClassWeek(*dir, args[0])
		},
	}
}

func runClassWeek(dir, studentID string) error {
	a, err := openApp(dir)
	if err != nil {
		return err
	}
	defer a.Close()

	student, ok := a.tuition.Student(studentID)
	if !ok {
		return fmt.Errorf("no student with id %s", studentID)
	}

	week := period.WeekWindow(time.Now())
	byDate := tuition.RecordsByDate(a.tuition.Records(), studentID)

	fmt.Printf("%s (%s), week of %s\n", student.Name, student.Subject, week.Start)
	start, err := time.ParseInLocation(model.DateFormat, week.Start, time.Local)
	if err != nil {
		return fmt.Errorf("parsing week start: %w", err)
	}
	for i := 0; i < 7; i++ {
		day := start.AddDate(0, 0, i)
		date := day.Format(model.DateFormat)
		mark := "-"
		comment := ""
		if rec, ok := byDate[date]; ok {
			mark = string(rec.Status)
			if rec.Comment != "" {
				comment = "  // " + rec.Comment
			}
		}
		fmt.Printf("  %s %s  %s%s\n", day.Format("Mon"), date, mark, comment)
	}
	return nil
}
