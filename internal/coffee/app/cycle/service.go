package cycle

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/klwxsrx/random-coffee-bot/internal/coffee/domain"
)

type Service struct {
	roster domain.RosterRepo
}

func NewService(roster domain.RosterRepo) *Service {
	return &Service{roster: roster}
}

// Join adds the member to the current cycle and returns the joined total.
func (s *Service) Join(ctx context.Context, member uuid.UUID, chat domain.ChatID) (int, error) {
	roster, err := s.roster.Get(ctx)
	if err != nil {
		return 0, fmt.Errorf("get roster: %w", err)
	}

	roster.Join(member, chat)
	err = s.roster.Store(ctx, roster)
	if err != nil {
		return 0, fmt.Errorf("store roster: %w", err)
	}

	return roster.JoinedCount(), nil
}

func (s *Service) Decline(ctx context.Context, member uuid.UUID, chat domain.ChatID) error {
	roster, err := s.roster.Get(ctx)
	if err != nil {
		return fmt.Errorf("get roster: %w", err)
	}

	roster.Decline(member, chat)
	err = s.roster.Store(ctx, roster)
	if err != nil {
		return fmt.Errorf("store roster: %w", err)
	}

	return nil
}

func (s *Service) JoinedCount(ctx context.Context) (int, error) {
	roster, err := s.roster.Get(ctx)
	if err != nil {
		return 0, fmt.Errorf("get roster: %w", err)
	}

	return roster.JoinedCount(), nil
}
