package registration

import (
	"github.com/google/uuid"

	"github.com/klwxsrx/random-coffee-bot/internal/coffee/domain"
)

type State int

const (
	StateAwaitingEmail State = iota
	StateAwaitingName
	StateAwaitingPosition
	StateConfirmingName
	StateConfirmingPosition
	StateShowingCard
)

// session is the draft profile collected during one conversation. It lives
// in memory only; a restart drops it and the next begin event starts over.
type session struct {
	State    State
	Chat     domain.ChatID
	MemberID uuid.UUID
	Email    string
	Name     string
	Position string
}

func (s *session) fillFromProfile(profile *domain.Profile) {
	s.MemberID = profile.MemberID
	s.Email = profile.Email
	s.Name = profile.Name
	s.Position = profile.Position
}

func (s *session) toProfile(user domain.UserID) *domain.Profile {
	return &domain.Profile{
		MemberID: s.MemberID,
		UserID:   user,
		Email:    s.Email,
		Name:     s.Name,
		Position: s.Position,
	}
}
