package file

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/klwxsrx/random-coffee-bot/internal/coffee/domain"
	"github.com/klwxsrx/random-coffee-bot/pkg/log"
)

type profileRecord struct {
	UserID   int64  `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Position string `json:"position"`
}

type profileRepo struct {
	mutex sync.Mutex
	doc   *document[map[uuid.UUID]profileRecord]
}

func NewProfileRepo(dir string, logger log.Logger) (domain.ProfileRepo, error) {
	err := ensureDataDir(dir)
	if err != nil {
		return nil, err
	}

	return &profileRepo{
		doc: openDocument(dir, "UserData", map[uuid.UUID]profileRecord{}, logger),
	}, nil
}

func (r *profileRepo) FindByUserID(_ context.Context, id domain.UserID) (*domain.Profile, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	for memberID, record := range r.doc.Data {
		if record.UserID == int64(id) {
			return recordToProfile(memberID, record), nil
		}
	}
	return nil, domain.ErrProfileNotFound
}

func (r *profileRepo) FindByMemberID(_ context.Context, id uuid.UUID) (*domain.Profile, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	record, ok := r.doc.Data[id]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	return recordToProfile(id, record), nil
}

func (r *profileRepo) FindAll(_ context.Context) ([]domain.Profile, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	profiles := make([]domain.Profile, 0, len(r.doc.Data))
	for memberID, record := range r.doc.Data {
		profiles = append(profiles, *recordToProfile(memberID, record))
	}
	return profiles, nil
}

func (r *profileRepo) Store(ctx context.Context, profile *domain.Profile) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.doc.Data[profile.MemberID] = profileRecord{
		UserID:   int64(profile.UserID),
		Email:    profile.Email,
		Name:     profile.Name,
		Position: profile.Position,
	}
	r.doc.flush(ctx)
	return nil
}

func (r *profileRepo) Clear(ctx context.Context) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.doc.Data = map[uuid.UUID]profileRecord{}
	r.doc.flush(ctx)
	return nil
}

func recordToProfile(memberID uuid.UUID, record profileRecord) *domain.Profile {
	return &domain.Profile{
		MemberID: memberID,
		UserID:   domain.UserID(record.UserID),
		Email:    record.Email,
		Name:     record.Name,
		Position: record.Position,
	}
}
