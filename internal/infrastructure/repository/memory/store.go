package memory

import (
	"sync"
	"time"

	"github.com/riskibarqy/sleeper-league/internal/domain/commonplayer"
	"github.com/riskibarqy/sleeper-league/internal/domain/jobrun"
	"github.com/riskibarqy/sleeper-league/internal/domain/league"
	"github.com/riskibarqy/sleeper-league/internal/domain/member"
	"github.com/riskibarqy/sleeper-league/internal/domain/payout"
	"github.com/riskibarqy/sleeper-league/internal/domain/playoff"
	"github.com/riskibarqy/sleeper-league/internal/domain/team"
	"github.com/riskibarqy/sleeper-league/internal/domain/user"
	"github.com/riskibarqy/sleeper-league/internal/domain/weeklyscore"
)

// Store holds every table of the in-process backend. Repositories share it
// so joins across tables see one consistent snapshot.
type Store struct {
	mu sync.RWMutex

	seq int64
	now func() time.Time

	users         map[int64]user.User
	members       map[int64]member.Member
	leagues       map[int64]league.League
	teams         map[int64]team.Team
	weeklyScores  map[int64]weeklyscore.WeeklyScore
	playoffs      map[int64]playoff.Entry
	payouts       map[int64]payout.Payout
	commonPlayers []commonplayer.CommonPlayer
	jobRuns       map[string]jobrun.Event
}

func NewStore() *Store {
	return &Store{
		now:          func() time.Time { return time.Now().UTC() },
		users:        make(map[int64]user.User),
		members:      make(map[int64]member.Member),
		leagues:      make(map[int64]league.League),
		teams:        make(map[int64]team.Team),
		weeklyScores: make(map[int64]weeklyscore.WeeklyScore),
		playoffs:     make(map[int64]playoff.Entry),
		payouts:      make(map[int64]payout.Payout),
		jobRuns:      make(map[string]jobrun.Event),
	}
}

// nextID must be called with mu held for writing.
func (s *Store) nextID() int64 {
	s.seq++
	return s.seq
}
