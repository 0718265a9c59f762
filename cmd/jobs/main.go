// Command jobs runs the league passes from a shell or a scheduler:
//
//	jobs sync
//	jobs start-playoff
//	jobs run-elimination -week 16 [-season 2025]
//	jobs post-winners -week 3 [-record-payouts]
//	jobs issue-token -subject 1 -name commish [-ttl 24h]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/joho/godotenv"
	"github.com/riskibarqy/sleeper-league/internal/app"
	"github.com/riskibarqy/sleeper-league/internal/config"
	"github.com/riskibarqy/sleeper-league/internal/domain/jobrun"
	"github.com/riskibarqy/sleeper-league/internal/domain/user"
	"github.com/riskibarqy/sleeper-league/internal/platform/logging"
	"github.com/riskibarqy/sleeper-league/internal/usecase"
)

var errUsage = errors.New("usage")

// jobCommand is one parsed pass invocation.
type jobCommand struct {
	request usecase.JobRequest
	exec    func(ctx context.Context, c *app.Container) (any, error)
}

func main() {
	envErr := godotenv.Load()

	if len(os.Args) < 2 {
		printUsage(os.Stderr)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	logger := logging.NewConsole(cfg.LogLevel)
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()
	if envErr != nil {
		logger.Debug("no .env file loaded", "error", envErr)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = run(ctx, cfg, logger, os.Args[1], os.Args[2:], os.Stdout)
	switch {
	case errors.Is(err, errUsage):
		printUsage(os.Stderr)
		os.Exit(2)
	case err != nil:
		logger.Error("job failed", "command", os.Args[1], "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, logger *logging.Logger, name string, args []string, out io.Writer) error {
	if name == "issue-token" {
		return issueToken(cfg, logger, args, out)
	}

	cmd, err := parseCommand(name, args)
	if err != nil {
		return err
	}

	container, err := app.Build(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("build app: %w", err)
	}
	defer func() { _ = container.Close() }()

	var result any
	started := time.Now()
	runID, err := container.JobRunner.Run(ctx, cmd.request, func(ctx context.Context) error {
		var err error
		result, err = cmd.exec(ctx, container)
		return err
	})
	if err != nil {
		return fmt.Errorf("run_id=%s: %w", runID, err)
	}
	logger.Info("job completed", "job_name", cmd.request.Name, "run_id", runID, "elapsed", time.Since(started))

	return writeResult(out, runID, result)
}

func parseCommand(name string, args []string) (jobCommand, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	switch name {
	case "sync":
		if err := fs.Parse(args); err != nil {
			return jobCommand{}, fmt.Errorf("%w: %v", errUsage, err)
		}
		return jobCommand{
			request: usecase.JobRequest{Name: jobrun.JobSync, Trigger: usecase.TriggerCLI},
			exec: func(ctx context.Context, c *app.Container) (any, error) {
				return c.Sync.Run(ctx)
			},
		}, nil
	case "start-playoff":
		if err := fs.Parse(args); err != nil {
			return jobCommand{}, fmt.Errorf("%w: %v", errUsage, err)
		}
		return jobCommand{
			request: usecase.JobRequest{Name: jobrun.JobStartPlayoff, Trigger: usecase.TriggerCLI},
			exec: func(ctx context.Context, c *app.Container) (any, error) {
				return c.Tournament.Start(ctx)
			},
		}, nil
	case "run-elimination":
		week := fs.Int("week", 0, "playoff week to score")
		season := fs.Int("season", 0, "season filter, zero for every season")
		if err := fs.Parse(args); err != nil {
			return jobCommand{}, fmt.Errorf("%w: %v", errUsage, err)
		}
		if *week < 1 {
			return jobCommand{}, fmt.Errorf("%w: -week is required", errUsage)
		}
		input := usecase.RunRoundInput{Week: *week, Season: *season}
		return jobCommand{
			request: usecase.JobRequest{
				Name:    jobrun.JobRunElimination,
				Trigger: usecase.TriggerCLI,
				Payload: map[string]any{"week": input.Week, "season": input.Season},
			},
			exec: func(ctx context.Context, c *app.Container) (any, error) {
				return c.Tournament.RunRound(ctx, input)
			},
		}, nil
	case "post-winners":
		week := fs.Int("week", 0, "week to announce")
		record := fs.Bool("record-payouts", false, "upsert a payout row for each winner")
		if err := fs.Parse(args); err != nil {
			return jobCommand{}, fmt.Errorf("%w: %v", errUsage, err)
		}
		if *week < 1 {
			return jobCommand{}, fmt.Errorf("%w: -week is required", errUsage)
		}
		input := usecase.PostWinnersInput{Week: *week, RecordPayouts: *record}
		return jobCommand{
			request: usecase.JobRequest{
				Name:    jobrun.JobPostWinners,
				Trigger: usecase.TriggerCLI,
				Payload: map[string]any{"week": input.Week, "record_payouts": input.RecordPayouts},
			},
			exec: func(ctx context.Context, c *app.Container) (any, error) {
				return c.WeeklyWinners.Post(ctx, input)
			},
		}, nil
	default:
		return jobCommand{}, fmt.Errorf("%w: unknown command %q", errUsage, name)
	}
}

// issueToken prints an admin bearer token signed with ADMIN_JWT_SECRET.
func issueToken(cfg config.Config, logger *logging.Logger, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("issue-token", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	subject := fs.String("subject", "", "member id of the commissioner")
	name := fs.String("name", "", "display name")
	ttl := fs.Duration("ttl", 24*time.Hour, "token lifetime")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if *subject == "" {
		return fmt.Errorf("%w: -subject is required", errUsage)
	}

	verifier := app.NewVerifier(cfg, logger)
	token, err := verifier.Issue(user.Principal{
		Subject: *subject,
		Name:    *name,
		Roles:   []string{user.RoleAdmin},
	}, *ttl)
	if err != nil {
		return fmt.Errorf("issue token: %w", err)
	}

	_, err = fmt.Fprintln(out, token)
	return err
}

func writeResult(out io.Writer, runID string, result any) error {
	body, err := sonic.ConfigStd.MarshalIndent(map[string]any{
		"run_id": runID,
		"result": result,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	_, err = fmt.Fprintln(out, string(body))
	return err
}

func printUsage(w io.Writer) {
	bin := filepath.Base(os.Args[0])
	fmt.Fprintf(w, "usage: %s <command> [flags]\n", bin)
	fmt.Fprintln(w, "commands:")
	fmt.Fprintln(w, "  sync                                    mirror every league from Sleeper")
	fmt.Fprintln(w, "  start-playoff                           seed the elimination tournament")
	fmt.Fprintln(w, "  run-elimination -week N [-season S]     score and cut one playoff week")
	fmt.Fprintln(w, "  post-winners -week N [-record-payouts]  announce weekly high scores")
	fmt.Fprintln(w, "  issue-token -subject ID [-name N]       print an admin bearer token")
}
