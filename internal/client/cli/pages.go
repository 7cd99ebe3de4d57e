package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/hmarket/internal/client/models"
	"github.com/dmitrijs2005/hmarket/internal/client/services"
)

func (a *App) showPage(ctx context.Context, page models.Role) error {
	view, err := a.authService.OpenPage(ctx, page)
	if err != nil {
		return err
	}

	title := strings.ToUpper(string(page[:1])) + string(page[1:])
	printlnFn(fmt.Sprintf("== %s dashboard ==", title))
	printlnFn(fmt.Sprintf("Welcome, %s!", view.DisplayName))
	if view.RoleNote != "" {
		printlnFn(view.RoleNote)
	}
	return nil
}

// WhoAmI prints the current account.
func (a *App) WhoAmI(ctx context.Context) error {
	u, ok := a.authService.CurrentUser(ctx)
	if !ok {
		printlnFn("Not logged in.")
		return nil
	}
	printlnFn(fmt.Sprintf("%s <%s>, %s", u.DisplayName(), u.Email, u.Role))
	return nil
}

// ToggleTheme flips and persists the theme.
func (a *App) ToggleTheme(ctx context.Context) error {
	theme, err := a.themeService.Toggle(ctx)
	if err != nil {
		a.notifier.Error(services.Message(err))
		return err
	}
	printlnFn(fmt.Sprintf("Theme: %s", theme))
	return nil
}
