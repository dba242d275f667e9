package cli

import (
	"context"
	"errors"
	"os"

	"github.com/dmitrijs2005/ramadankeeper/internal/common"
)

// Login prompts for credentials and establishes the session.
func (a *App) Login(ctx context.Context) error {
	usernameOrEmail, err := GetSimpleText(a.reader, "Enter username or email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := GetPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.users.Authenticate(ctx, usernameOrEmail, password)
	if err != nil {
		if errors.Is(err, common.ErrUnauthorized) {
			printlnFn("Incorrect username/email or password")
		} else {
			a.log.Error(ctx, "login failed", "error", err)
			printlnFn("Login failed, please try again")
		}
		return err
	}

	if err := a.session.Login(ctx, user); err != nil {
		a.log.Error(ctx, "session save failed", "error", err)
		return err
	}

	printlnFn("Welcome back, " + user.Username + "!")
	return nil
}

// Logout clears the session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		a.log.Error(ctx, "logout failed", "error", err)
		return err
	}
	printlnFn("Logged out")
	return nil
}
