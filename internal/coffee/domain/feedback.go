package domain

import "context"

// RatingTag is the raw feedback button tag. Repeat submission overwrites
// the previous rating, no history is kept.
type RatingTag string

const (
	RatingOK    RatingTag = "feedback_1"
	RatingGood  RatingTag = "feedback_2"
	RatingGreat RatingTag = "feedback_3"
)

func (t RatingTag) Valid() bool {
	switch t {
	case RatingOK, RatingGood, RatingGreat:
		return true
	default:
		return false
	}
}

type FeedbackRepo interface {
	Store(ctx context.Context, user UserID, rating RatingTag) error
}
