package sleeper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/sleeper-league/internal/domain/team"
	"github.com/riskibarqy/sleeper-league/internal/platform/cache"
	"github.com/riskibarqy/sleeper-league/internal/platform/logging"
	"github.com/riskibarqy/sleeper-league/internal/platform/resilience"
	"github.com/riskibarqy/sleeper-league/internal/usecase"
)

const (
	defaultBaseURL      = "https://api.sleeper.app/v1"
	defaultStatsBaseURL = "https://api.sleeper.com"
	defaultPlayersTTL   = 6 * time.Hour
	playersCacheKey     = "sleeper:players:nfl"
	maxResponseBytes    = 32 << 20
)

var errSleeperTransient = crerr.New("sleeper transient failure")

// StatusError is a non-2xx response that is not worth retrying.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("sleeper status=%d body=%s", e.StatusCode, e.Body)
}

type ClientConfig struct {
	HTTPClient      *http.Client
	BaseURL         string
	StatsBaseURL    string
	Timeout         time.Duration
	MaxRetries      int
	PlayersCacheTTL time.Duration
	Logger          *logging.Logger
	CircuitBreaker  resilience.CircuitBreakerConfig
}

type Client struct {
	httpClient   *http.Client
	baseURL      string
	statsBaseURL string
	maxRetries   int
	logger       *logging.Logger
	breaker      *resilience.CircuitBreaker
	flight       resilience.SingleFlight[[]byte]
	players      *cache.Store
}

var _ usecase.LeagueSource = (*Client)(nil)

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 15 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	statsBaseURL := strings.TrimRight(strings.TrimSpace(cfg.StatsBaseURL), "/")
	if statsBaseURL == "" {
		statsBaseURL = defaultStatsBaseURL
	}
	playersTTL := cfg.PlayersCacheTTL
	if playersTTL <= 0 {
		playersTTL = defaultPlayersTTL
	}
	breakerCfg := cfg.CircuitBreaker
	if breakerCfg.OnStateChange == nil {
		breakerCfg.OnStateChange = func(from, to resilience.CircuitState) {
			logger.Warn("sleeper circuit breaker state changed", "from", from, "to", to)
		}
	}

	return &Client{
		httpClient:   httpClient,
		baseURL:      baseURL,
		statsBaseURL: statsBaseURL,
		maxRetries:   maxInt(cfg.MaxRetries, 0),
		logger:       logger,
		breaker:      resilience.NewCircuitBreaker(breakerCfg),
		players:      cache.NewStore(playersTTL),
	}
}

func (c *Client) FetchNFLState(ctx context.Context) (usecase.ExternalNFLState, error) {
	var state nflStateResponse
	if err := c.doJSON(ctx, c.baseURL+"/state/nfl", &state); err != nil {
		return usecase.ExternalNFLState{}, fmt.Errorf("fetch nfl state: %w", err)
	}

	week := state.Week
	if week == 0 {
		week = state.DisplayWeek
	}
	return usecase.ExternalNFLState{
		Week:   week,
		Season: parseSeason(state.Season),
	}, nil
}

func (c *Client) FetchLeague(ctx context.Context, leagueID string) (usecase.ExternalLeague, error) {
	var out leagueResponse
	if err := c.doJSON(ctx, c.leagueURL(leagueID, ""), &out); err != nil {
		return usecase.ExternalLeague{}, fmt.Errorf("fetch league league_id=%s: %w", leagueID, err)
	}
	return usecase.ExternalLeague{
		LeagueID: firstNonEmpty(out.LeagueID, leagueID),
		Name:     out.Name,
		Season:   parseSeason(out.Season),
	}, nil
}

func (c *Client) FetchUsers(ctx context.Context, leagueID string) ([]usecase.ExternalUser, error) {
	var items []userResponse
	if err := c.doJSON(ctx, c.leagueURL(leagueID, "/users"), &items); err != nil {
		return nil, fmt.Errorf("fetch users league_id=%s: %w", leagueID, err)
	}

	out := make([]usecase.ExternalUser, 0, len(items))
	for _, item := range items {
		out = append(out, usecase.ExternalUser{
			UserID:         item.UserID,
			DisplayName:    item.DisplayName,
			CustomTeamName: strings.TrimSpace(metadataString(item.Metadata, "team_name")),
		})
	}
	return out, nil
}

func (c *Client) FetchRosters(ctx context.Context, leagueID string) ([]usecase.ExternalRoster, error) {
	var items []rosterResponse
	if err := c.doJSON(ctx, c.leagueURL(leagueID, "/rosters"), &items); err != nil {
		return nil, fmt.Errorf("fetch rosters league_id=%s: %w", leagueID, err)
	}

	out := make([]usecase.ExternalRoster, 0, len(items))
	for _, item := range items {
		out = append(out, usecase.ExternalRoster{
			RosterID:  item.RosterID,
			OwnerID:   item.OwnerID,
			TeamName:  strings.TrimSpace(metadataString(item.Metadata, "team_name")),
			PlayerIDs: append([]string(nil), item.Players...),
			Wins:      item.Settings.Wins,
			Losses:    item.Settings.Losses,
			Ties:      item.Settings.Ties,
			PointsFor: team.PointsFor(item.Settings.Fpts, item.Settings.FptsDecimal),
		})
	}
	return out, nil
}

func (c *Client) FetchMatchups(ctx context.Context, leagueID string, week int) ([]usecase.ExternalMatchup, error) {
	if week <= 0 {
		return nil, fmt.Errorf("%w: week must be > 0", usecase.ErrInvalidInput)
	}

	var items []matchupResponse
	if err := c.doJSON(ctx, c.leagueURL(leagueID, "/matchups/"+strconv.Itoa(week)), &items); err != nil {
		return nil, fmt.Errorf("fetch matchups league_id=%s week=%d: %w", leagueID, week, err)
	}

	out := make([]usecase.ExternalMatchup, 0, len(items))
	for _, item := range items {
		out = append(out, usecase.ExternalMatchup{
			RosterID:      item.RosterID,
			Points:        item.Points,
			PlayersPoints: item.PlayersPoints,
		})
	}
	return out, nil
}

func (c *Client) FetchWinnersBracket(ctx context.Context, leagueID string) ([]usecase.ExternalBracketMatch, error) {
	var items []bracketMatchResponse
	if err := c.doJSON(ctx, c.leagueURL(leagueID, "/winners_bracket"), &items); err != nil {
		var statusErr *StatusError
		if crerr.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("%w: winners bracket league_id=%s", usecase.ErrNotFound, leagueID)
		}
		return nil, fmt.Errorf("fetch winners bracket league_id=%s: %w", leagueID, err)
	}

	out := make([]usecase.ExternalBracketMatch, 0, len(items))
	for _, item := range items {
		out = append(out, usecase.ExternalBracketMatch{
			Round: item.Round,
			Match: item.Match,
			Team1: intValue(item.Team1),
			Team2: intValue(item.Team2),
		})
	}
	return out, nil
}

// FetchPlayers returns the full NFL player directory. The payload is several
// megabytes, so results are kept for the configured TTL.
func (c *Client) FetchPlayers(ctx context.Context) (map[string]usecase.ExternalPlayer, error) {
	return cache.Load(ctx, c.players, playersCacheKey, func(ctx context.Context) (map[string]usecase.ExternalPlayer, error) {
		var items map[string]playerResponse
		if err := c.doJSON(ctx, c.baseURL+"/players/nfl", &items); err != nil {
			return nil, fmt.Errorf("fetch players: %w", err)
		}

		out := make(map[string]usecase.ExternalPlayer, len(items))
		for id, item := range items {
			out[id] = usecase.ExternalPlayer{
				PlayerID:  firstNonEmpty(item.PlayerID, id),
				FirstName: item.FirstName,
				LastName:  item.LastName,
				Position:  item.Position,
				Team:      item.Team,
			}
		}
		return out, nil
	})
}

func (c *Client) FetchPlayerWeeklyPoints(ctx context.Context, playerID string, season int) ([]float64, error) {
	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return nil, fmt.Errorf("%w: player id is required", usecase.ErrInvalidInput)
	}

	query := url.Values{}
	query.Set("season_type", "regular")
	query.Set("season", strconv.Itoa(season))
	query.Set("grouping", "week")
	fullURL := c.statsBaseURL + "/stats/nfl/player/" + url.PathEscape(playerID) + "?" + query.Encode()

	var weeks weeklyStatsResponse
	if err := c.doJSON(ctx, fullURL, &weeks); err != nil {
		return nil, fmt.Errorf("fetch weekly stats player_id=%s season=%d: %w", playerID, season, err)
	}

	keys := make([]int, 0, len(weeks))
	byWeek := make(map[int]float64, len(weeks))
	for rawWeek, line := range weeks {
		if line == nil {
			continue
		}
		week, err := strconv.Atoi(rawWeek)
		if err != nil {
			continue
		}
		keys = append(keys, week)
		byWeek[week] = asFloat64(line.Stats["pts_ppr"])
	}
	sort.Ints(keys)

	out := make([]float64, 0, len(keys))
	for _, week := range keys {
		out = append(out, byWeek[week])
	}
	return out, nil
}

func (c *Client) leagueURL(leagueID, suffix string) string {
	return c.baseURL + "/league/" + url.PathEscape(strings.TrimSpace(leagueID)) + suffix
}

func (c *Client) doJSON(ctx context.Context, fullURL string, target any) error {
	if err := c.breaker.Allow(); err != nil {
		c.logger.WarnContext(ctx, "sleeper circuit breaker rejected request", "url", fullURL, "state", c.breaker.State())
		return fmt.Errorf("%w: league platform is temporarily unavailable", usecase.ErrDependencyUnavailable)
	}

	raw, err, _ := c.flight.Do(fullURL, func() ([]byte, error) {
		body, reqErr := c.executeRequest(ctx, fullURL)
		c.breaker.Record(reqErr, isCircuitFailure)
		return body, reqErr
	})
	if err != nil {
		return err
	}
	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decode sleeper payload: %w", err)
	}

	return nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = crerr.Mark(crerr.Wrap(err, "send request"), errSleeperTransient)
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
			_ = resp.Body.Close()
			switch {
			case readErr != nil:
				lastErr = crerr.Mark(crerr.Wrap(readErr, "read response body"), errSleeperTransient)
			case resp.StatusCode >= 200 && resp.StatusCode < 300:
				return raw, nil
			case isRetryableStatus(resp.StatusCode):
				lastErr = crerr.Mark(&StatusError{StatusCode: resp.StatusCode, Body: abbreviateBody(raw)}, errSleeperTransient)
			default:
				return nil, &StatusError{StatusCode: resp.StatusCode, Body: abbreviateBody(raw)}
			}
		}

		if attempt == c.maxRetries {
			break
		}
		backoff := time.Duration(attempt+1) * time.Second
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("sleeper request failed")
	}
	c.logger.WarnContext(ctx, "sleeper request failed", "url", fullURL, "error", lastErr)
	return nil, lastErr
}

func isCircuitFailure(err error) bool {
	return err != nil && crerr.Is(err, errSleeperTransient)
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func maxInt(left, right int) int {
	if left > right {
		return left
	}
	return right
}
