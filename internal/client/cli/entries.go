package cli

import (
	"context"
	"strconv"

	"github.com/dmitrijs2005/gophdiary/internal/common"
)

var getMultiline = GetMultiline

// List reloads the user's entries and prints one "n: title" line each.
// The selection is cleared because the numbering may have changed.
func (a *App) List(ctx context.Context) error {
	if err := a.view.Refresh(ctx); err != nil {
		return a.report(ctx, err, "list")
	}
	a.printRows()
	return nil
}

func (a *App) printRows() {
	rows := a.view.Rows()
	if len(rows) == 0 {
		a.println("No entries yet. Use 'add' to write one.")
		return
	}
	for _, r := range rows {
		a.println(r.String())
	}
}

// Show selects the entry with the given number and prints its full text.
func (a *App) Show(ctx context.Context, args []string) error {
	if len(args) != 1 {
		a.println("Usage: show <n>")
		return nil
	}
	pos, err := strconv.Atoi(args[0])
	if err != nil {
		a.println("Usage: show <n>")
		return nil
	}
	if err := a.view.Select(pos); err != nil {
		return a.report(ctx, err, "show")
	}
	a.println("--- entry", pos, "---")
	a.println(a.view.Editor())
	return nil
}

// Add reads a multi-line entry and stores it.
func (a *App) Add(ctx context.Context) error {
	text, err := getMultiline(a.reader, "Enter entry text", a.out)
	if err != nil {
		return err
	}
	if err := a.view.Add(ctx, text); err != nil {
		return a.report(ctx, err, "add")
	}
	a.session.Debug(ctx, "entry added")
	a.println("Entry added!")
	a.printRows()
	return nil
}

// Edit replaces the text of the selected entry.
func (a *App) Edit(ctx context.Context) error {
	if a.view.Selected() == 0 {
		a.println("Select an entry to edit with 'show <n>'.")
		return common.ErrNoSelection
	}

	a.println("Current text:")
	a.println(a.view.Editor())
	text, err := getMultiline(a.reader, "Enter new text", a.out)
	if err != nil {
		return err
	}
	if err := a.view.Edit(ctx, text); err != nil {
		return a.report(ctx, err, "edit")
	}
	a.session.Debug(ctx, "entry edited")
	a.println("Entry updated!")
	a.printRows()
	return nil
}

// Delete removes the selected entry.
func (a *App) Delete(ctx context.Context) error {
	if a.view.Selected() == 0 {
		a.println("Select an entry to delete with 'show <n>'.")
		return common.ErrNoSelection
	}
	if err := a.view.Delete(ctx); err != nil {
		return a.report(ctx, err, "delete")
	}
	a.session.Debug(ctx, "entry deleted")
	a.println("Entry deleted!")
	a.printRows()
	return nil
}
