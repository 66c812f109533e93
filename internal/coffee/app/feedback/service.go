package feedback

import (
	"context"
	"fmt"

	"github.com/klwxsrx/random-coffee-bot/internal/coffee/app/transport"
	"github.com/klwxsrx/random-coffee-bot/internal/coffee/domain"
	"github.com/klwxsrx/random-coffee-bot/pkg/log"
)

type Service struct {
	feedback  domain.FeedbackRepo
	messenger transport.Messenger
	logger    log.Logger
}

func NewService(feedback domain.FeedbackRepo, messenger transport.Messenger, logger log.Logger) *Service {
	return &Service{
		feedback:  feedback,
		messenger: messenger,
		logger:    logger,
	}
}

func (s *Service) Ask(ctx context.Context, chat domain.ChatID) error {
	return s.messenger.SendButtons(ctx, chat, textAskFeedback, []transport.Button{
		{Label: buttonLabelRatingOK, Action: transport.Action(domain.RatingOK)},
		{Label: buttonLabelRatingGood, Action: transport.Action(domain.RatingGood)},
		{Label: buttonLabelRatingGreat, Action: transport.Action(domain.RatingGreat)},
	})
}

// HandleRating stores the rating, overwriting any previous one for the user.
func (s *Service) HandleRating(ctx context.Context, user domain.UserID, chat domain.ChatID, rating domain.RatingTag) error {
	if !rating.Valid() {
		return fmt.Errorf("unknown rating tag %q", rating)
	}

	err := s.feedback.Store(ctx, user, rating)
	if err != nil {
		return fmt.Errorf("store feedback: %w", err)
	}

	return s.messenger.SendText(ctx, chat, ratingResponses[rating])
}

var ratingResponses = map[domain.RatingTag]string{
	domain.RatingOK:    "Спасибо за отзыв! Очень надеюсь, что в следующий раз будет лучше :)",
	domain.RatingGood:  "Спасибо за отзыв! Надеюсь, что все прошло хорошо :)",
	domain.RatingGreat: "Спасибо за отзыв! Рад слышать, до встречи на следующем цикле :)",
}

const (
	textAskFeedback = "Расскажи, как прошла ваша встреча?"

	buttonLabelRatingOK    = "💚 - неплохо"
	buttonLabelRatingGood  = "💚💚 - хорошо"
	buttonLabelRatingGreat = "💚💚💚 - было круто"
)
