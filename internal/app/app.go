package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/sleeper-league/external/discord"
	"github.com/riskibarqy/sleeper-league/external/sleeper"
	"github.com/riskibarqy/sleeper-league/internal/config"
	"github.com/riskibarqy/sleeper-league/internal/domain/commonplayer"
	"github.com/riskibarqy/sleeper-league/internal/domain/jobrun"
	"github.com/riskibarqy/sleeper-league/internal/domain/league"
	"github.com/riskibarqy/sleeper-league/internal/domain/member"
	"github.com/riskibarqy/sleeper-league/internal/domain/payout"
	"github.com/riskibarqy/sleeper-league/internal/domain/playoff"
	"github.com/riskibarqy/sleeper-league/internal/domain/team"
	"github.com/riskibarqy/sleeper-league/internal/domain/user"
	"github.com/riskibarqy/sleeper-league/internal/domain/weeklyscore"
	"github.com/riskibarqy/sleeper-league/internal/infrastructure/account/adminjwt"
	repocache "github.com/riskibarqy/sleeper-league/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/sleeper-league/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/sleeper-league/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/sleeper-league/internal/interfaces/httpapi"
	basecache "github.com/riskibarqy/sleeper-league/internal/platform/cache"
	idgen "github.com/riskibarqy/sleeper-league/internal/platform/id"
	"github.com/riskibarqy/sleeper-league/internal/platform/logging"
	"github.com/riskibarqy/sleeper-league/internal/platform/resilience"
	"github.com/riskibarqy/sleeper-league/internal/usecase"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Container holds the wired use cases shared by the API and the jobs CLI.
type Container struct {
	Leagues       *usecase.LeagueService
	Members       *usecase.MemberService
	Teams         *usecase.TeamService
	Scores        *usecase.ScoreService
	Payouts       *usecase.PayoutService
	Sync          *usecase.SyncService
	Tournament    *usecase.TournamentService
	WeeklyWinners *usecase.WeeklyWinnerService
	JobRunner     *usecase.JobRunner
	Verifier      *adminjwt.Verifier

	db *sqlx.DB
}

type repositories struct {
	leagues  league.Repository
	members  member.Repository
	users    user.Repository
	teams    team.Repository
	scores   weeklyscore.Repository
	playoffs playoff.Repository
	payouts  payout.Repository
	common   commonplayer.Repository
	jobRuns  jobrun.Repository
	locker   jobrun.Locker
}

// Build wires every dependency from cfg. An empty DB_URL selects the
// in-process store, which config only allows in dev.
func Build(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Container, error) {
	if logger == nil {
		logger = logging.Default()
	}

	var (
		repos repositories
		db    *sqlx.DB
	)
	if cfg.DBURL == "" {
		logger.Warn("DB_URL empty, using in-memory store")
		repos = memoryRepositories()
	} else {
		var err error
		db, err = openDB(ctx, cfg, logger)
		if err != nil {
			return nil, err
		}
		repos = postgresRepositories(db)
	}
	if cfg.CacheEnabled {
		store := basecache.NewStore(cfg.CacheTTL)
		repos.leagues = repocache.NewLeagueRepository(repos.leagues, store)
		repos.teams = repocache.NewTeamRepository(repos.teams, store)
		repos.common = repocache.NewCommonPlayerRepository(repos.common, store)
	}

	source := sleeper.NewClient(sleeper.ClientConfig{
		HTTPClient: &http.Client{
			Timeout:   cfg.Sleeper.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		BaseURL:         cfg.Sleeper.BaseURL,
		StatsBaseURL:    cfg.Sleeper.StatsBaseURL,
		Timeout:         cfg.Sleeper.Timeout,
		MaxRetries:      cfg.Sleeper.MaxRetries,
		PlayersCacheTTL: cfg.Sleeper.PlayersCacheTTL,
		Logger:          logger.Named("sleeper"),
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.Sleeper.CircuitEnabled,
			FailureThreshold: cfg.Sleeper.CircuitFailureCount,
			OpenTimeout:      cfg.Sleeper.CircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.Sleeper.CircuitHalfOpenMaxReq,
		},
	})

	var notifier usecase.PayoutNotifier
	webhook := discord.NewWebhook(discord.WebhookConfig{
		URL:     cfg.Discord.PayoutWebhookURL,
		Timeout: cfg.Discord.Timeout,
		Logger:  logger.Named("discord"),
	})
	if webhook.Configured() {
		notifier = webhook
	} else {
		logger.Warn("discord payout webhook not configured, weekly winner posts are disabled")
	}

	rules := seasonRules(cfg.Season)
	syncLogger := logger.Named("sync")

	return &Container{
		Leagues: usecase.NewLeagueService(repos.leagues, repos.members),
		Members: usecase.NewMemberService(repos.members),
		Teams:   usecase.NewTeamService(repos.leagues, repos.teams),
		Scores:  usecase.NewScoreService(repos.scores, repos.common),
		Payouts: usecase.NewPayoutService(repos.payouts, repos.members),
		Sync: usecase.NewSyncService(
			source,
			repos.leagues,
			usecase.NewIdentityReconciler(repos.members, repos.users, syncLogger),
			usecase.NewRosterReconciler(repos.members, repos.teams, syncLogger),
			usecase.NewScoreIngestion(source, repos.teams, repos.scores, rules, syncLogger),
			usecase.NewPlayoffLatch(source, repos.playoffs, repos.teams, rules, syncLogger),
			usecase.NewCommonPlayerAggregator(source, repos.teams, repos.common, rules, syncLogger),
			repos.locker,
			syncLogger,
		),
		Tournament: usecase.NewTournamentService(
			repos.leagues,
			repos.teams,
			repos.scores,
			repos.playoffs,
			repos.locker,
			rules,
			logger,
		),
		WeeklyWinners: usecase.NewWeeklyWinnerService(
			repos.leagues,
			repos.members,
			repos.scores,
			repos.payouts,
			notifier,
			rules,
			logger.Named("weekly_winners"),
		),
		JobRunner: usecase.NewJobRunner(repos.jobRuns, idgen.NewRunIDGenerator(), logger.Named("jobs")),
		Verifier:  NewVerifier(cfg, logger),
		db:        db,
	}, nil
}

// NewVerifier builds the admin token verifier from the auth settings.
func NewVerifier(cfg config.Config, logger *logging.Logger) *adminjwt.Verifier {
	return adminjwt.NewVerifier(cfg.AdminAuth.JWTSecret, cfg.AdminAuth.Issuer, logger.Named("auth"))
}

// HTTPServices exposes the container to the HTTP handler.
func (c *Container) HTTPServices() httpapi.Services {
	return httpapi.Services{
		Leagues:       c.Leagues,
		Members:       c.Members,
		Teams:         c.Teams,
		Scores:        c.Scores,
		Payouts:       c.Payouts,
		Sync:          c.Sync,
		Tournament:    c.Tournament,
		WeeklyWinners: c.WeeklyWinners,
		JobRunner:     c.JobRunner,
	}
}

func (c *Container) Close() error {
	if c == nil || c.db == nil {
		return nil
	}
	return c.db.Close()
}

func NewHTTPServer(cfg config.Config, container *Container, logger *logging.Logger) (*http.Server, error) {
	if container == nil {
		return nil, fmt.Errorf("app container cannot be nil")
	}

	handler := httpapi.NewHandler(container.HTTPServices(), logger)
	router := httpapi.NewRouter(handler, container.Verifier, logger, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}

func memoryRepositories() repositories {
	store := memory.NewStore()
	return repositories{
		leagues:  memory.NewLeagueRepository(store),
		members:  memory.NewMemberRepository(store),
		users:    memory.NewUserRepository(store),
		teams:    memory.NewTeamRepository(store),
		scores:   memory.NewWeeklyScoreRepository(store),
		playoffs: memory.NewPlayoffRepository(store),
		payouts:  memory.NewPayoutRepository(store),
		common:   memory.NewCommonPlayerRepository(store),
		jobRuns:  memory.NewJobRunRepository(store),
		locker:   memory.NewLocker(),
	}
}

func postgresRepositories(db *sqlx.DB) repositories {
	return repositories{
		leagues:  postgres.NewLeagueRepository(db),
		members:  postgres.NewMemberRepository(db),
		users:    postgres.NewUserRepository(db),
		teams:    postgres.NewTeamRepository(db),
		scores:   postgres.NewWeeklyScoreRepository(db),
		playoffs: postgres.NewPlayoffRepository(db),
		payouts:  postgres.NewPayoutRepository(db),
		common:   postgres.NewCommonPlayerRepository(db),
		jobRuns:  postgres.NewJobRunRepository(db),
		locker:   postgres.NewAdvisoryLocker(db),
	}
}

func seasonRules(v config.SeasonRules) usecase.SeasonRules {
	return usecase.SeasonRules{
		PlayoffStartWeek:         v.PlayoffStartWeek,
		MaxWeek:                  v.MaxWeek,
		CommonPlayerCandidates:   v.CommonPlayerCandidates,
		CommonPlayerLimit:        v.CommonPlayerLimit,
		CommonPlayerStatsWorkers: v.CommonPlayerStatsWorkers,
		WeeklyPayoutAmount:       v.WeeklyPayoutAmount,
	}
}
