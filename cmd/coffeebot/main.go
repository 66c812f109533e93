package main

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/klwxsrx/random-coffee-bot/internal/coffee"
	"github.com/klwxsrx/random-coffee-bot/internal/coffee/infra/telegram"
	"github.com/klwxsrx/random-coffee-bot/pkg/cmd"
	"github.com/klwxsrx/random-coffee-bot/pkg/env"
	pkghttp "github.com/klwxsrx/random-coffee-bot/pkg/http"
	"github.com/klwxsrx/random-coffee-bot/pkg/log"
	pkgsql "github.com/klwxsrx/random-coffee-bot/pkg/sql"
	"github.com/klwxsrx/random-coffee-bot/pkg/worker"
)

const (
	defaultStorageBackend = coffee.StorageBackendFile
	defaultDataPath       = "data"
	defaultMeetingLinkURL = "https://calendar.google.com/calendar/"

	defaultReportTime = "15:13"
	defaultMatchTime  = "20:48"
	defaultTimeZone   = "Europe/Minsk"

	botReadinessTimeout = time.Minute
)

func main() {
	ctx := context.Background()
	logger := cmd.InitLogger()
	defer cmd.HandleAppPanic(ctx, logger)

	client := mustInitBotClient(ctx, logger)

	container, err := coffee.NewDependencyContainer(ctx, mustParseConfig(), client, logger)
	if err != nil {
		panic(fmt.Errorf("init dependency container: %w", err))
	}
	defer container.Close(ctx)

	reportAt := env.Must(worker.ParseTimeOfDay(parseOptionalWithDefault("REPORT_TIME", defaultReportTime)))
	matchAt := env.Must(worker.ParseTimeOfDay(parseOptionalWithDefault("MATCH_TIME", defaultMatchTime)))
	location, err := time.LoadLocation(parseOptionalWithDefault("TIME_ZONE", defaultTimeZone))
	if err != nil {
		panic(fmt.Errorf("load time zone: %w", err))
	}

	opsServer := pkghttp.NewServer(
		parseOptionalWithDefault("OPS_SERVER_ADDRESS", pkghttp.DefaultServerAddress),
		pkghttp.WithHealthCheck(),
	)

	cmd.MustRun(ctx, logger,
		cmd.TermSignalAwaiter,
		container.Listener.Listen,
		worker.DailyContextJob(container.Admin.ReportJoinedCount, reportAt, location, logger),
		worker.DailyContextJob(container.Matching.RunCycle, matchAt, location, logger),
		opsServer.Listener,
	)
}

func mustInitBotClient(ctx context.Context, logger log.Logger) *telegram.Client {
	token := env.Must(env.Parse[string]("TELEGRAM_BOT_TOKEN"))
	apiBaseURL := parseOptionalWithDefault("TELEGRAM_API_URL", telegram.DefaultAPIBaseURL)

	clientFactory := pkghttp.NewClientFactory(pkghttp.WithRequestLogging(logger))
	client := telegram.NewClient(clientFactory.InitClient(
		telegram.Destination,
		telegram.BotAPIURL(apiBaseURL, token),
	))

	// the network may not be ready right after the container starts
	eb := backoff.NewExponentialBackOff()
	eb.MaxElapsedTime = botReadinessTimeout
	bot, err := backoff.RetryWithData(func() (telegram.User, error) {
		return client.GetMe(ctx)
	}, eb)
	if err != nil {
		panic(fmt.Errorf("bot api is unavailable: %w", err))
	}

	logger.WithField("botUsername", bot.Username).Info(ctx, "bot api connection established")
	return client
}

func mustParseConfig() coffee.Config {
	backend := coffee.StorageBackend(parseOptionalWithDefault("STORAGE_BACKEND", string(defaultStorageBackend)))

	var sqlConfig *pkgsql.Config
	if backend == coffee.StorageBackendPostgres {
		sqlConfig = &pkgsql.Config{
			DSN: pkgsql.DSN{
				User:     env.Must(env.Parse[string]("SQL_USER")),
				Password: env.Must(env.Parse[string]("SQL_PASSWORD")),
				Address:  env.Must(env.Parse[string]("SQL_ADDRESS")),
				Database: env.Must(env.Parse[string]("SQL_DATABASE")),
			},
		}
	}

	return coffee.Config{
		StorageBackend: backend,
		DataPath:       parseOptionalWithDefault("DATA_PATH", defaultDataPath),
		SQL:            sqlConfig,
		AdminChatIDs:   env.Must(env.ParseList[int64]("ADMIN_CHAT_IDS", ",")),
		MeetingLinkURL: parseOptionalWithDefault("MEETING_LINK_URL", defaultMeetingLinkURL),
	}
}

func parseOptionalWithDefault(key, defaultValue string) string {
	value := env.Must(env.ParseOptional[string](key))
	if value == nil {
		return defaultValue
	}
	return *value
}
