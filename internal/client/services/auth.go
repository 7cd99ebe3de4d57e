// Package services contains application services for the hmarket client.
// This file defines the authentication service: registration, login,
// logout and the gate in front of the buyer and seller pages.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/hmarket/internal/client/models"
	"github.com/dmitrijs2005/hmarket/internal/client/session"
	"github.com/dmitrijs2005/hmarket/internal/client/storage"
	"github.com/dmitrijs2005/hmarket/internal/client/validation"
	"github.com/dmitrijs2005/hmarket/internal/logging"
)

// ErrLoginRequired is returned when a protected page is opened without a
// current user. The caller sends the user to the login prompt.
var ErrLoginRequired = errors.New("login required")

// Messages for failures that are not field validation.
const (
	MsgSaveFailed     = "Could not save your changes. Please try again."
	MsgLoginRequired  = "Please log in to continue."
	MsgUnexpected     = "Something went wrong. Please try again."
	MsgAccountCreated = "Account created! Redirecting to login..."
)

// Directory is the part of the account directory the service uses.
type Directory interface {
	FindByEmail(ctx context.Context, email string) (models.User, bool)
	Create(ctx context.Context, user models.User) error
}

// Session is the tab session the service logs users in and out of.
type Session interface {
	Login(ctx context.Context, email, password string) (models.User, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (models.User, bool)
}

// RegisterInput is the raw registration form.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Confirm  string
	Role     string
}

// LoginInput is the raw login form.
type LoginInput struct {
	Email    string
	Password string
}

// PageView is what a protected page shows about the current user.
type PageView struct {
	Page        models.Role
	User        models.User
	DisplayName string
	// RoleNote is set when the user opened the other role's page.
	RoleNote string
}

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Register: validate the form, reject a taken email, create the account.
//   - Login: validate the form and start a session.
//   - Logout: end the session; safe to call when nobody is logged in.
//   - CurrentUser: resolve the session to an account.
//   - OpenPage: gate a buyer or seller page behind the session.
//
// Validation failures are *validation.FieldError values.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (models.User, error)
	Login(ctx context.Context, in LoginInput) (models.User, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (models.User, bool)
	OpenPage(ctx context.Context, page models.Role) (PageView, error)
}

type authService struct {
	dir     Directory
	session Session
	log     logging.Logger
}

// NewAuthService constructs an AuthService over the given directory and session.
func NewAuthService(dir Directory, sess Session, log logging.Logger) AuthService {
	return &authService{dir: dir, session: sess, log: log.With("component", "auth")}
}

// Register checks the fields in form order, then the role, then that the
// email is free. Name and email are trimmed; passwords are taken as typed.
func (a *authService) Register(ctx context.Context, in RegisterInput) (models.User, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)

	var form validation.Form
	form.Field("name", name, validation.Required(validation.MsgFillAllFields)).
		Field("email", email, validation.Required(validation.MsgFillAllFields)).
		Field("password", in.Password, validation.Required(validation.MsgFillAllFields)).
		Field("confirm", in.Confirm, validation.Required(validation.MsgFillAllFields)).
		Field("email", email, validation.Email()).
		Field("password", in.Password, validation.MinLength(validation.MinPasswordLength)).
		Field("confirm", in.Confirm, validation.Matches(in.Password))
	if err := form.Err(); err != nil {
		return models.User{}, err
	}

	role, err := models.ParseRole(in.Role)
	if err != nil {
		return models.User{}, form.Fail("role", validation.MsgInvalidRole).Err()
	}

	if _, taken := a.dir.FindByEmail(ctx, email); taken {
		return models.User{}, form.Fail("email", validation.MsgEmailTaken).Err()
	}

	user := models.User{Name: name, Email: email, Password: in.Password, Role: role}
	if err := a.dir.Create(ctx, user); err != nil {
		a.log.Error(ctx, "register failed", "email", email, "error", err)
		return models.User{}, err
	}

	a.log.Info(ctx, "account registered", "email", email, "role", role)
	return user, nil
}

func (a *authService) Login(ctx context.Context, in LoginInput) (models.User, error) {
	email := strings.TrimSpace(in.Email)

	var form validation.Form
	form.Field("email", email, validation.Required(validation.MsgLoginFieldsMissing)).
		Field("password", in.Password, validation.Required(validation.MsgLoginFieldsMissing))
	if err := form.Err(); err != nil {
		return models.User{}, err
	}

	user, err := a.session.Login(ctx, email, in.Password)
	if err != nil {
		if errors.Is(err, session.ErrInvalidCredentials) {
			a.log.Info(ctx, "login rejected", "email", email)
		} else {
			a.log.Error(ctx, "login failed", "email", email, "error", err)
		}
		return models.User{}, err
	}
	return user, nil
}

func (a *authService) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		a.log.Error(ctx, "logout failed", "error", err)
		return err
	}
	return nil
}

func (a *authService) CurrentUser(ctx context.Context) (models.User, bool) {
	return a.session.CurrentUser(ctx)
}

// OpenPage lets any logged-in user open either page; a user of the other
// role gets a note about their own role.
func (a *authService) OpenPage(ctx context.Context, page models.Role) (PageView, error) {
	user, ok := a.session.CurrentUser(ctx)
	if !ok {
		return PageView{}, ErrLoginRequired
	}

	view := PageView{Page: page, User: user, DisplayName: user.DisplayName()}
	if user.Role != page {
		view.RoleNote = fmt.Sprintf("Note: Your account role is %s.", user.Role)
	}
	return view, nil
}

// LandingPage is the page a user is sent to after login.
func LandingPage(user models.User) models.Role {
	if user.Role == models.RoleSeller {
		return models.RoleSeller
	}
	return models.RoleBuyer
}

// RoleHint is shown above the login prompt when it was opened for a role.
func RoleHint(role string) string {
	if role == "" {
		return ""
	}
	return fmt.Sprintf("You are signing in as a %s.", role)
}

// Message turns an error from this package into the text shown to the user.
func Message(err error) string {
	var fe *validation.FieldError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &fe):
		return fe.Message
	case errors.Is(err, session.ErrInvalidCredentials):
		return validation.MsgInvalidCredentials
	case errors.Is(err, ErrLoginRequired):
		return MsgLoginRequired
	case errors.Is(err, storage.ErrSaveFailed):
		return MsgSaveFailed
	default:
		return MsgUnexpected
	}
}
