package users

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dmitrijs2005/ramadankeeper/internal/common"
)

const minPasswordLength = 6

// Service implements registration and authentication over the persisted
// user list.
type Service struct {
	repo     Repository
	comparer CredentialComparer
	now      func() time.Time
}

func NewService(repo Repository, comparer CredentialComparer) *Service {
	return &Service{repo: repo, comparer: comparer, now: time.Now}
}

// Register validates the form fields, rejects duplicates, and appends the
// new user to the list. The first user ever registered becomes the admin.
// The caller is expected to establish the session (auto-login).
func (s *Service) Register(ctx context.Context, username, email, password, confirmPassword string) (*User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	if username == "" || email == "" || password == "" || confirmPassword == "" {
		return nil, fmt.Errorf("%w: all fields are required", common.ErrValidation)
	}
	if password != confirmPassword {
		return nil, fmt.Errorf("%w: passwords do not match", common.ErrValidation)
	}
	if utf8.RuneCountInString(password) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", common.ErrValidation, minPasswordLength)
	}

	list, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}

	// Case-sensitive exact match, same as the persisted format expects.
	for _, u := range list {
		if u.Username == username || u.Email == email {
			return nil, common.ErrDuplicateUser
		}
	}

	now := s.now()
	user := User{
		ID:       strconv.FormatInt(now.UnixMilli(), 10),
		Username: username,
		Email:    email,
		Password: password,
		JoinDate: now.Format(JoinDateLayout),
		IsAdmin:  len(list) == 0,
	}

	if err := s.repo.Replace(ctx, append(list, user)); err != nil {
		return nil, err
	}

	return &user, nil
}

// Authenticate scans the list for a user whose username or email equals the
// input and whose password matches. Returns common.ErrUnauthorized when no
// credential pair matches.
func (s *Service) Authenticate(ctx context.Context, usernameOrEmail, password string) (*User, error) {
	usernameOrEmail = strings.TrimSpace(usernameOrEmail)

	list, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}

	for i := range list {
		u := &list[i]
		if (u.Username == usernameOrEmail || u.Email == usernameOrEmail) &&
			s.comparer.Compare(u.Password, password) {
			found := *u
			return &found, nil
		}
	}

	return nil, common.ErrUnauthorized
}

// All returns the full registered-user list.
func (s *Service) All(ctx context.Context) ([]User, error) {
	return s.repo.All(ctx)
}

// Replace overwrites the user list wholesale (import path).
func (s *Service) Replace(ctx context.Context, list []User) error {
	return s.repo.Replace(ctx, list)
}
