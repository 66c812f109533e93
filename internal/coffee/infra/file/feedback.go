package file

import (
	"context"
	"strconv"
	"sync"

	"github.com/klwxsrx/random-coffee-bot/internal/coffee/domain"
	"github.com/klwxsrx/random-coffee-bot/pkg/log"
)

type feedbackRepo struct {
	mutex sync.Mutex
	doc   *document[map[string]string]
}

func NewFeedbackRepo(dir string, logger log.Logger) (domain.FeedbackRepo, error) {
	err := ensureDataDir(dir)
	if err != nil {
		return nil, err
	}

	return &feedbackRepo{
		doc: openDocument(dir, "FeedbackData", map[string]string{}, logger),
	}, nil
}

func (r *feedbackRepo) Store(ctx context.Context, user domain.UserID, rating domain.RatingTag) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.doc.Data[strconv.FormatInt(int64(user), 10)] = string(rating)
	r.doc.flush(ctx)
	return nil
}
