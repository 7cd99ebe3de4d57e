package cli

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/hmarket/internal/client/services"
)

// Reset shows which keys are stored, asks for confirmation and then deletes
// every account, the theme and the tab session.
func (a *App) Reset(ctx context.Context) error {
	keys, err := a.dataService.StoredKeys(ctx)
	if err != nil {
		a.notifier.Error(services.Message(err))
		return err
	}
	if len(keys) == 0 {
		printlnFn("Nothing stored.")
		return nil
	}
	printlnFn("Stored: " + strings.Join(keys, ", "))

	answer, err := getSimpleText(a.reader, "Delete all accounts, the theme and the session? Type 'yes' to confirm", a.out)
	if err != nil {
		return err
	}
	if !strings.EqualFold(answer, "yes") {
		printlnFn("Reset cancelled.")
		return nil
	}

	if !a.notifier.Busy(ctx, "Clearing local data...") {
		return ctx.Err()
	}
	if err := a.dataService.Reset(ctx); err != nil {
		a.notifier.Error(services.Message(err))
		return err
	}
	a.notifier.Success("All local data cleared.")
	return nil
}
