package coffee

import (
	"context"
	"fmt"
	"math/rand/v2"

	datasql "github.com/klwxsrx/random-coffee-bot/data/sql/coffee"
	"github.com/klwxsrx/random-coffee-bot/internal/coffee/app/admin"
	"github.com/klwxsrx/random-coffee-bot/internal/coffee/app/cycle"
	"github.com/klwxsrx/random-coffee-bot/internal/coffee/app/feedback"
	"github.com/klwxsrx/random-coffee-bot/internal/coffee/app/matching"
	"github.com/klwxsrx/random-coffee-bot/internal/coffee/app/registration"
	"github.com/klwxsrx/random-coffee-bot/internal/coffee/domain"
	infrafile "github.com/klwxsrx/random-coffee-bot/internal/coffee/infra/file"
	infrasql "github.com/klwxsrx/random-coffee-bot/internal/coffee/infra/sql"
	"github.com/klwxsrx/random-coffee-bot/internal/coffee/infra/telegram"
	"github.com/klwxsrx/random-coffee-bot/pkg/event"
	"github.com/klwxsrx/random-coffee-bot/pkg/log"
	pkgsql "github.com/klwxsrx/random-coffee-bot/pkg/sql"
)

type StorageBackend string

const (
	StorageBackendFile     StorageBackend = "file"
	StorageBackendPostgres StorageBackend = "postgres"
)

type Config struct {
	StorageBackend StorageBackend
	DataPath       string
	SQL            *pkgsql.Config
	AdminChatIDs   []int64
	MeetingLinkURL string
}

type DependencyContainer struct {
	Listener *telegram.Listener
	Admin    *admin.Service
	Matching *matching.Service

	db pkgsql.Database
}

func NewDependencyContainer(
	ctx context.Context,
	config Config,
	client *telegram.Client,
	logger log.Logger,
) (*DependencyContainer, error) {
	adminChats := make([]domain.ChatID, 0, len(config.AdminChatIDs))
	adminUsers := make([]domain.UserID, 0, len(config.AdminChatIDs))
	for _, id := range config.AdminChatIDs {
		adminChats = append(adminChats, domain.ChatID(id))
		adminUsers = append(adminUsers, domain.UserID(id))
	}

	notifier := admin.NewNotifier(adminChats, client, logger)
	dispatcher := event.NewDispatcher(map[string][]event.Handler{
		domain.EventTypeCycleRosterChanged: {
			event.NewTypedHandler(notifier.HandleCycleRosterChanged),
		},
	})

	var (
		db           pkgsql.Database
		profileRepo  domain.ProfileRepo
		rosterRepo   domain.RosterRepo
		feedbackRepo domain.FeedbackRepo
		err          error
	)
	switch config.StorageBackend {
	case StorageBackendFile:
		profileRepo, rosterRepo, feedbackRepo, err = newFileStorage(config.DataPath, dispatcher, logger)
	case StorageBackendPostgres:
		db, profileRepo, rosterRepo, feedbackRepo, err = newSQLStorage(ctx, config.SQL, dispatcher, logger)
	default:
		err = fmt.Errorf("unknown storage backend %q", config.StorageBackend)
	}
	if err != nil {
		return nil, err
	}

	cycleService := cycle.NewService(rosterRepo)
	matchingService := matching.NewService(
		profileRepo,
		rosterRepo,
		client,
		notifier,
		rand.Shuffle,
		config.MeetingLinkURL,
		logger,
	)
	adminService := admin.NewService(
		adminUsers,
		notifier,
		profileRepo,
		rosterRepo,
		matchingService,
		client,
		logger,
	)
	registrationService := registration.NewService(
		profileRepo,
		cycleService,
		client,
		adminService.IsAdmin,
		logger,
	)
	feedbackService := feedback.NewService(feedbackRepo, client, logger)

	return &DependencyContainer{
		Listener: telegram.NewListener(
			client,
			registrationService,
			feedbackService,
			matchingService,
			adminService,
			logger,
		),
		Admin:    adminService,
		Matching: matchingService,
		db:       db,
	}, nil
}

func (c *DependencyContainer) Close(ctx context.Context) {
	if c.db != nil {
		c.db.Close(ctx)
	}
}

func newFileStorage(
	dataPath string,
	dispatcher event.Dispatcher,
	logger log.Logger,
) (domain.ProfileRepo, domain.RosterRepo, domain.FeedbackRepo, error) {
	profileRepo, err := infrafile.NewProfileRepo(dataPath, logger)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("init profile storage: %w", err)
	}
	rosterRepo, err := infrafile.NewRosterRepo(dataPath, dispatcher, logger)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("init roster storage: %w", err)
	}
	feedbackRepo, err := infrafile.NewFeedbackRepo(dataPath, logger)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("init feedback storage: %w", err)
	}

	return profileRepo, rosterRepo, feedbackRepo, nil
}

func newSQLStorage(
	ctx context.Context,
	config *pkgsql.Config,
	dispatcher event.Dispatcher,
	logger log.Logger,
) (pkgsql.Database, domain.ProfileRepo, domain.RosterRepo, domain.FeedbackRepo, error) {
	if config == nil {
		return nil, nil, nil, nil, fmt.Errorf("sql database is not configured")
	}

	db, err := pkgsql.NewDatabase(config, logger)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("open sql database: %w", err)
	}

	err = pkgsql.NewMigrator(db, logger).Execute(ctx, datasql.Migrations)
	if err != nil {
		db.Close(ctx)
		return nil, nil, nil, nil, fmt.Errorf("perform migrations: %w", err)
	}

	return db,
		infrasql.NewProfileRepo(db),
		infrasql.NewRosterRepo(db, dispatcher),
		infrasql.NewFeedbackRepo(db),
		nil
}
