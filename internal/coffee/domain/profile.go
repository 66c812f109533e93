package domain

import (
	"context"
	"errors"
	"regexp"

	"github.com/google/uuid"
)

type (
	// UserID is the messenger-assigned user identity, immutable once captured.
	UserID int64

	// ChatID is the delivery address of the private chat with the user.
	// For private chats messengers assign it the same value as UserID.
	ChatID int64
)

// Profile is the participant card. MemberID is the system-internal stable
// key used by all other stores; UserID is only scanned for during lookup.
type Profile struct {
	MemberID uuid.UUID
	UserID   UserID
	Email    string
	Name     string
	Position string
}

var ErrProfileNotFound = errors.New("profile not found")

type ProfileRepo interface {
	FindByUserID(ctx context.Context, id UserID) (*Profile, error)
	FindByMemberID(ctx context.Context, id uuid.UUID) (*Profile, error)
	FindAll(ctx context.Context) ([]Profile, error)
	Store(ctx context.Context, profile *Profile) error
	Clear(ctx context.Context) error
}

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+$`)

func IsValidEmail(email string) bool {
	return emailRegexp.MatchString(email)
}
