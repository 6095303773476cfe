package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/timeline-dev/timeline/internal/model"
	"github.com/timeline-dev/timeline/internal/schedule"
)

func newTaskCommand() *cobra.Command {
	var dir string

	taskCmd := &cobra.Command{
		Use:   "task",
		Short: "Manage scheduled tasks",
	}
	dirFlag(taskCmd, &dir)
	taskCmd.AddCommand(newTaskAddCommand(&dir))
	taskCmd.AddCommand(newTaskDoneCommand(&dir))
	taskCmd.AddCommand(newTaskRmCommand(&dir))
	taskCmd.AddCommand(newTaskListCommand(&dir))
	return taskCmd
}

func newTaskAddCommand(dir *string) *cobra.Command {
	var description string
	var date string
	var clock string
	var reminder string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTaskAdd(*dir, schedule.WorkParams{
				Title:        args[0],
				Description:  description,
				Date:         date,
				Time:         clock,
				ReminderType: model.ReminderType(reminder),
			})
		},
	}

	cmd.Flags().StringVar(&description, "desc", "", "task description")
	cmd.Flags().StringVar(&date, "date", time.Now().Format(model.DateFormat), "due date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&clock, "time", "09:00", "due time (HH:MM)")
	cmd.Flags().StringVar(&reminder, "reminder", "notification", "notification or alarm")

	return cmd
}

func runTaskAdd(dir string, params schedule.WorkParams) error {
	a, err := openApp(dir)
	if err != nil {
		return err
	}
	defer a.Close()

	w, err := a.schedule.AddWork(params)
	if err != nil {
		return err
	}

	fmt.Printf("Added task %q for %s %s (%s)\n", w.Title, w.Date, w.Time, w.ID)
	return nil
}

func newTaskDoneCommand(dir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "done <task-id>",
		Short: "Toggle a task's completed flag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTaskDone(*dir, args[0])
		},
	}
}

func runTaskDone(dir, workID string) error {
	a, err := openApp(dir)
	if err != nil {
		return err
	}
	defer a.Close()

	w, err := a.schedule.ToggleComplete(workID)
	if err != nil {
		return err
	}

	state := "completed"
	if !w.Completed {
		state = "reopened"
	}
	fmt.Printf("Task %q %s\n", w.Title, state)
	return nil
}

func newTaskRmCommand(dir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <task-id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTaskRm(*dir, args[0])
		},
	}
}

func runTaskRm(dir, workID string) error {
	a, err := openApp(dir)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.schedule.Delete(workID); err != nil {
		return err
	}
	fmt.Println("Task deleted")
	return nil
}

func newTaskListCommand(dir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List tasks grouped by today, upcoming and overdue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTaskList(*dir)
		},
	}
}

func runTaskList(dir string) error {
	a, err := openApp(dir)
	if err != nil {
		return err
	}
	defer a.Close()

	p := schedule.PartitionWorks(a.schedule.Works(), time.Now())

	printGroup := func(name string, works []model.ScheduledWork) {
		if len(works) == 0 {
			return
		}
		fmt.Printf("%s (%d)\n", name, len(works))
		for _, w := range works {
			mark := " "
			if w.Completed {
				mark = "x"
			}
			fmt.Printf("  [%s] %s %s  %s  (%s)\n", mark, w.Date, w.Time, w.Title, w.ID)
		}
	}

	if len(p.Today)+len(p.Upcoming)+len(p.Overdue) == 0 {
		fmt.Println("No tasks.")
		return nil
	}
	printGroup("Today", p.Today)
	printGroup("Upcoming", p.Upcoming)
	printGroup("Overdue", p.Overdue)
	return nil
}
