package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/hmarket/internal/client/models"
	"github.com/dmitrijs2005/hmarket/internal/client/services"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for the registration form and creates the account.
//
// On success it announces the redirect, waits the configured redirect delay
// and continues with the login prompt. Validation and storage failures are
// shown as error notifications and returned.
func (a *App) Register(ctx context.Context) error {
	var in services.RegisterInput
	var err error

	if in.Name, err = getSimpleText(a.reader, "Full name", a.out); err != nil {
		return err
	}
	if in.Email, err = getSimpleText(a.reader, "Email", a.out); err != nil {
		return err
	}

	password, err := getPassword(a.reader, "Password", a.out)
	if err != nil {
		return err
	}

	confirm, err := getPassword(a.reader, "Confirm password", a.out)
	if err != nil {
		return err
	}

	if in.Role, err = getSimpleText(a.reader, "Role (buyer/seller) [buyer]", a.out); err != nil {
		return err
	}
	in.Password, in.Confirm = string(password), string(confirm)

	if !a.notifier.Busy(ctx, "Creating account...") {
		return ctx.Err()
	}

	if _, err := a.authService.Register(ctx, in); err != nil {
		a.notifier.Error(services.Message(err))
		return err
	}

	a.notifier.Success(services.MsgAccountCreated)
	if !Wait(ctx, a.config.RedirectDelay) {
		return nil
	}
	return a.Login(ctx, "")
}

// Login prompts for credentials and signs in. role, when given, only adds a
// hint line above the prompt. After a successful login the user lands on
// the page of their own role.
func (a *App) Login(ctx context.Context, role string) error {
	if hint := services.RoleHint(role); hint != "" {
		printlnFn(hint)
	}

	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, "Password", a.out)
	if err != nil {
		return err
	}

	if !a.notifier.Busy(ctx, "Signing in...") {
		return ctx.Err()
	}

	user, err := a.authService.Login(ctx, services.LoginInput{Email: email, Password: string(password)})
	if err != nil {
		a.notifier.Error(services.Message(err))
		return err
	}

	return a.showPage(ctx, services.LandingPage(user))
}

// Logout ends the tab session and continues with the login prompt. It is
// safe to call when nobody is logged in.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		a.notifier.Error(services.Message(err))
		return err
	}
	a.notifier.Success("Logged out.")
	return a.Login(ctx, "")
}

// OpenPage shows a protected page, sending an anonymous user to the login
// prompt first.
func (a *App) OpenPage(ctx context.Context, page models.Role) error {
	err := a.showPage(ctx, page)
	if errors.Is(err, services.ErrLoginRequired) {
		a.notifier.Error(services.Message(err))
		return a.Login(ctx, "")
	}
	return err
}
