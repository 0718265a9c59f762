package team

import "testing"

func TestResolveName(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		custom   string
		roster   string
		owner    string
		hasOwner bool
		want     string
	}{
		{name: "custom wins", custom: "Gridiron Gang", roster: "Roster Name", owner: "Alex", hasOwner: true, want: "Gridiron Gang"},
		{name: "roster metadata", custom: "  ", roster: "Roster Name", owner: "Alex", hasOwner: true, want: "Roster Name"},
		{name: "owner fallback", owner: "Alex", hasOwner: true, want: "Team Alex"},
		{name: "no owner", want: UnsetTeamName},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := ResolveName(tc.custom, tc.roster, tc.owner, tc.hasOwner); got != tc.want {
				t.Fatalf("ResolveName() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestPointsFor(t *testing.T) {
	t.Parallel()

	if got := PointsFor(1234, 56); got != 1234.56 {
		t.Fatalf("PointsFor = %v, want 1234.56", got)
	}
	if got := PointsFor(0, 0); got != 0 {
		t.Fatalf("PointsFor zero = %v", got)
	}
}

func TestRankPlayerTotals(t *testing.T) {
	t.Parallel()

	got := RankPlayerTotals(map[string]float64{
		"4046": 210.5,
		"6794": 180,
		"4034": 210.5,
		"1466": 12,
	}, TopPlayersLimit)
	if len(got) != 3 {
		t.Fatalf("expected 3 players, got %d", len(got))
	}
	if got[0].PlayerID != "4034" || got[1].PlayerID != "4046" || got[2].PlayerID != "6794" {
		t.Fatalf("unexpected order: %+v", got)
	}
	if empty := RankPlayerTotals(nil, TopPlayersLimit); len(empty) != 0 {
		t.Fatalf("expected empty result, got %+v", empty)
	}
}

func TestPlayerAvatarURL(t *testing.T) {
	t.Parallel()

	if got := PlayerAvatarURL("4046"); got != "https://sleepercdn.com/content/nfl/players/thumb/4046.jpg" {
		t.Fatalf("unexpected avatar url %q", got)
	}
}
