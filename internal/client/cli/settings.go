package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/dmitrijs2005/lifearchive/internal/archive"
	"github.com/dmitrijs2005/lifearchive/internal/filex"
)

func (a *App) Theme(ctx context.Context, args []string) error {
	if len(args) != 1 || !archive.Theme(args[0]).Valid() {
		printlnFn("Usage: theme <cream|navy|olive>")
		return errUsage
	}
	theme := archive.Theme(args[0])
	a.archive.Update(ctx, func(doc *archive.Document) { doc.Settings.Theme = theme })
	return nil
}

func (a *App) Visibility(ctx context.Context, args []string) error {
	if len(args) != 1 || !archive.Visibility(args[0]).Valid() {
		printlnFn("Usage: visibility <private|link>")
		return errUsage
	}
	v := archive.Visibility(args[0])
	a.archive.Update(ctx, func(doc *archive.Document) { doc.Settings.DefaultVisibility = v })
	return nil
}

// Export writes a dated backup file into the given directory, or the
// configured export directory.
func (a *App) Export(ctx context.Context, args []string) error {
	dir := a.config.ExportDir
	if len(args) > 0 {
		dir = args[0]
	}

	data, name, err := a.archive.Export()
	if err != nil {
		return err
	}
	path, err := filex.WriteFile(dir, name, data)
	if err != nil {
		return err
	}
	a.printf("Exported to %s\n", path)
	return nil
}

// Import replaces the archive with a backup file. Invalid JSON leaves the
// archive untouched.
func (a *App) Import(ctx context.Context, args []string) error {
	if len(args) != 1 {
		printlnFn("Usage: import <file>")
		return errUsage
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	report, err := a.archive.Import(ctx, data)
	if err != nil {
		return fmt.Errorf("backup file could not be read as JSON: %w", err)
	}
	if !report.Clean() {
		a.printf("Imported with %d corrections\n", len(report.Coercions))
	} else {
		a.printf("Imported\n")
	}
	a.warnDuplicateShareIDs()
	return nil
}

// warnDuplicateShareIDs reports share ids used by more than one entity;
// share lookups only reach the first of them.
func (a *App) warnDuplicateShareIDs() {
	if dups := a.document().DuplicateShareIDs(); len(dups) > 0 {
		a.printf("warning: duplicate share ids: %s\n", strings.Join(dups, ", "))
	}
}

func (a *App) Pull(ctx context.Context) error {
	doc, err := a.archive.Pull(ctx)
	if err != nil {
		return err
	}
	a.printf("Pulled archive updated at %s\n", doc.UpdatedAt)
	return nil
}

func (a *App) Push(ctx context.Context) error {
	if err := a.archive.Push(ctx); err != nil {
		return err
	}
	a.printf("Pushed\n")
	return nil
}

func (a *App) Refresh(ctx context.Context) error {
	doc := a.archive.Refresh(ctx)
	a.printf("Reloaded local archive updated at %s\n", doc.UpdatedAt)
	return nil
}

func (a *App) Status(ctx context.Context) error {
	doc := a.document()
	mode := a.Mode()
	if mode == "" {
		mode = "unknown"
	}
	a.printf("server: %s (%s)\n", a.config.ServerEndpointAddr, mode)
	a.printf("sync: %s, %d pending\n", a.archive.State(), a.archive.Pending())
	a.printf("updated at: %s\n", doc.UpdatedAt)
	a.printf("theme: %s, default visibility: %s\n", doc.Settings.Theme, doc.Settings.DefaultVisibility)
	a.warnDuplicateShareIDs()
	return nil
}

// Reset drops the local copy after confirmation and reloads the seed. The
// server copy is untouched and wins the next reconciliation.
func (a *App) Reset(ctx context.Context) error {
	ok, err := GetYesNo(a.reader, "Drop the local archive copy?", a.out)
	if err != nil || !ok {
		return err
	}
	if err := a.local.Reset(ctx); err != nil {
		return err
	}
	a.archive.Refresh(ctx)
	a.printf("Local archive reset\n")
	return nil
}
