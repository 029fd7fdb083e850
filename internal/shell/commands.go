package shell

import (
	"fmt"
	"io"
	"strings"

	"github.com/cline-tools/cline"
	"github.com/cline-tools/cline/internal/tasks"
)

// BuildDispatcher registers the demo command set against a fresh dispatcher.
// Callbacks write their output to out; the model captures it per execution.
func BuildDispatcher(store *tasks.Store, out io.Writer, strict bool) (*cline.Dispatcher, error) {
	d := cline.NewWith(cline.Options{StrictRegistration: strict})

	var firstErr error
	register := func(err error) {
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	register(d.Register([]string{"help"}, func(args []string) error {
		fmt.Fprintln(out, "clinesh - interactive demo shell for the cline library")
		fmt.Fprintln(out, "Tab completes, Enter executes, Ctrl+C exits.")
		fmt.Fprintln(out, "Run 'commands' to list every registered command.")
		return nil
	}))

	register(d.Register([]string{"commands"}, func(args []string) error {
		for _, path := range d.Paths() {
			fmt.Fprintln(out, strings.Join(path, " "))
		}
		return nil
	}))

	register(d.Register([]string{"echo"}, func(args []string) error {
		fmt.Fprintln(out, strings.Join(args, " "))
		return nil
	}))

	register(d.Register([]string{"task", "add"}, func(args []string) error {
		if len(args) == 0 {
			return fmt.Errorf("task add: missing title")
		}
		task, err := store.Add(strings.Join(args, " "))
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "added %s (%s)\n", task.Title, shortID(task.ID))
		return nil
	}))

	register(d.Register([]string{"task", "list"}, func(args []string) error {
		includeDone := len(args) > 0 && args[0] == "all"
		list, err := store.List(includeDone)
		if err != nil {
			return err
		}
		if len(list) == 0 {
			fmt.Fprintln(out, "no tasks")
			return nil
		}
		for _, t := range list {
			marker := "[ ]"
			if t.Done {
				marker = "[x]"
			}
			fmt.Fprintf(out, "%s %s %s\n", marker, shortID(t.ID), t.Title)
		}
		return nil
	}))

	// Task ids only exist at runtime, so completion past "task done" is
	// answered by the store rather than the static tree.
	register(d.RegisterDynamic([]string{"task", "done"},
		func(args []string) error {
			if len(args) == 0 {
				return fmt.Errorf("task done: missing task id")
			}
			task, err := store.MarkDone(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "done %s %s\n", shortID(task.ID), task.Title)
			return nil
		},
		func(args []string) []string {
			return store.OpenIDs()
		}))

	return d, firstErr
}

// shortID trims a task uuid down to the prefix shown in listings. MarkDone
// accepts the prefix as long as it stays unambiguous.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
