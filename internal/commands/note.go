package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/timeline-dev/timeline/internal/model"
	"github.com/timeline-dev/timeline/internal/notes"
)

func newNoteCommand() *cobra.Command {
	var dir string

	noteCmd := &cobra.Command{
		Use:   "note",
		Short: "Manage quick, exam and class notes",
	}
	dirFlag(noteCmd, &dir)
	noteCmd.AddCommand(newNoteQuickCommand(&dir))
	noteCmd.AddCommand(newNoteExamCommand(&dir))
	noteCmd.AddCommand(newNoteClassCommand(&dir))
	noteCmd.AddCommand(newNoteRmCommand(&dir))
	noteCmd.AddCommand(newNoteListCommand(&dir))
	return noteCmd
}

func newNoteQuickCommand(dir *string) *cobra.Command {
	var content string

	cmd := &cobra.Command{
		Use:   "quick <title>",
		Short: "Add a quick note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(*dir)
			if err != nil {
				return err
			}
			defer a.Close()

			n, err := a.notes.AddQuick(notes.QuickParams{Title: args[0], Content: content})
			if err != nil {
				return err
			}
			fmt.Printf("Added quick note %q (%s)\n", n.Title, n.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&content, "content", "", "note body")

	return cmd
}

func newNoteExamCommand(dir *string) *cobra.Command {
	var subject, date, clock, location string

	cmd := &cobra.Command{
		Use:   "exam <title>",
		Short: "Add an exam note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(*dir)
			if err != nil {
				return err
			}
			defer a.Close()

			n, err := a.notes.AddExam(notes.ExamParams{
				Title:    args[0],
				Subject:  subject,
				Date:     date,
				Time:     clock,
				Location: location,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Added exam note %q on %s (%s)\n", n.Title, n.Date, n.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "exam subject (required)")
	_ = cmd.MarkFlagRequired("subject")
	cmd.Flags().StringVar(&date, "date", "", "exam date (YYYY-MM-DD, required)")
	_ = cmd.MarkFlagRequired("date")
	cmd.Flags().StringVar(&clock, "time", "", "exam time (HH:MM)")
	cmd.Flags().StringVar(&location, "location", "", "exam location")

	return cmd
}

func newNoteClassCommand(dir *string) *cobra.Command {
	var subject, day, clock, location string

	cmd := &cobra.Command{
		Use:   "class <title>",
		Short: "Add a weekly class note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(*dir)
			if err != nil {
				return err
			}
			defer a.Close()

			n, err := a.notes.AddClass(notes.ClassParams{
				Title:     args[0],
				Subject:   subject,
				DayOfWeek: day,
				Time:      clock,
				Location:  location,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Added class note %q every %s (%s)\n", n.Title, n.DayOfWeek, n.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "class subject (required)")
	_ = cmd.MarkFlagRequired("subject")
	cmd.Flags().StringVar(&day, "day", "", "day of week, e.g. Tuesday (required)")
	_ = cmd.MarkFlagRequired("day")
	cmd.Flags().StringVar(&clock, "time", "", "class time (HH:MM)")
	cmd.Flags().StringVar(&location, "location", "", "class location")

	return cmd
}

func newNoteRmCommand(dir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <note-id>",
		Short: "Delete a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(*dir)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.notes.Delete(args[0]); err != nil {
				return err
			}
			fmt.Println("Note deleted")
			return nil
		},
	}
}

func newNoteListCommand(dir *string) *cobra.Command {
	var noteType string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List notes of one type, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNoteList(*dir, noteType)
		},
	}

	cmd.Flags().StringVar(&noteType, "type", "quick", "quick, exam or class")

	return cmd
}

func runNoteList(dir, noteType string) error {
	a, err := openApp(dir)
	if err != nil {
		return err
	}
	defer a.Close()

	list := a.notes.ByType(model.NoteType(noteType))
	if len(list) == 0 {
		fmt.Println("No notes of this type.")
		return nil
	}

	for _, n := range list {
		detail := ""
		switch n.Type {
		case model.NoteQuick:
			detail = n.Content
		case model.NoteExam:
			detail = fmt.Sprintf("%s on %s %s at %s", n.Subject, n.Date, n.Time, n.Location)
		case model.NoteClass:
			detail = fmt.Sprintf("%s every %s %s at %s", n.Subject, n.DayOfWeek, n.Time, n.Location)
		}
		fmt.Printf("%s  %s  %s\n", n.ID, n.Title, detail)
	}
	return nil
}
