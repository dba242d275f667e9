package cli

import (
	"context"
	"errors"
	"os"

	"github.com/dmitrijs2005/ramadankeeper/internal/common"
)

// Register prompts for the registration form, creates the account, and
// establishes it as the session user (auto-login). The first account ever
// created becomes the admin.
func (a *App) Register(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := GetPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}
	confirm, err := GetPassword("Confirm password", os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.users.Register(ctx, username, email, password, confirm)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrValidation):
			printlnFn(err.Error())
		case errors.Is(err, common.ErrDuplicateUser):
			printlnFn("Username or email already exists")
		default:
			a.log.Error(ctx, "registration failed", "error", err)
			printlnFn("Registration failed, please try again")
		}
		return err
	}

	if err := a.session.Login(ctx, user); err != nil {
		a.log.Error(ctx, "auto-login after registration failed", "error", err)
		return err
	}

	printlnFn("Account created, welcome " + user.Username + "!")
	if user.IsAdmin {
		printlnFn("You are the administrator of this tracker")
	}
	return nil
}
