package experiments

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"tablut/experiments/metrics"
	"tablut/meta"
	"tablut/player"
)

func TestRoundRobin(t *testing.T) {
	configs := []metrics.AgentConfig{{ID: 0}, {ID: 1}, {ID: 2}}
	matchUps := roundRobin(configs)
	require.Equal(t, [][2]metrics.AgentConfig{
		{{ID: 0}, {ID: 1}},
		{{ID: 0}, {ID: 2}},
		{{ID: 1}, {ID: 2}},
	}, matchUps)
	require.Empty(t, roundRobin(configs[:1]))
}

func TestWins(t *testing.T) {
	records := []metrics.GameRecord{
		{Attackers: 1, Defenders: 2, GameMetric: metrics.GameMetric{Winner: "attackers"}},
		{Attackers: 2, Defenders: 1, GameMetric: metrics.GameMetric{Winner: "attackers"}},
		{Attackers: 1, Defenders: 2, GameMetric: metrics.GameMetric{Winner: "defenders"}},
		{Attackers: 1, Defenders: 2, GameMetric: metrics.GameMetric{Winner: "none"}},
	}
	require.Equal(t, map[int]int{1: 1, 2: 2}, Wins(records))
}

func TestNewPlayer(t *testing.T) {
	ai := NewPlayer(metrics.AgentConfig{Kind: meta.PlayerAI, Depth: 2}, 1)
	require.IsType(t, &player.AI{}, ai)
	require.False(t, ai.IsManual())
	require.IsType(t, &player.Random{}, NewPlayer(metrics.AgentConfig{Kind: meta.PlayerRandom}, 1))
	require.Panics(t, func() { NewPlayer(metrics.AgentConfig{Kind: meta.PlayerManual}, 1) })
}

func TestRunExperiment(t *testing.T) {
	configs := []metrics.AgentConfig{
		{ID: 0, Kind: meta.PlayerRandom},
		{ID: 1, Kind: meta.PlayerAI, Depth: 1},
	}
	settings := Settings{Games: 2, MoveLimit: 5, Seed: 3, OutputDir: t.TempDir()}

	dir, err := runExperiment("test", configs, roundRobin(configs), settings)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(settings.OutputDir, "test"), filepath.Dir(dir))

	read := func(name string) [][]string {
		f, err := os.Open(filepath.Join(dir, name))
		require.NoError(t, err)
		defer f.Close()
		rows, err := csv.NewReader(f).ReadAll()
		require.NoError(t, err)
		return rows
	}

	require.Len(t, read("agent_configs.csv"), 3)

	games := read("game_records.csv")
	require.Len(t, games, 3)
	require.Equal(t, []string{"0", "1"}, games[1][2:4], "first game: agent 0 attacks")
	require.Equal(t, []string{"1", "0"}, games[2][2:4], "second game: sides swap")
	for _, row := range games[1:] {
		require.Contains(t, []string{"attackers", "defenders"}, row[4])
	}

	moves := read("move_records.csv")
	require.Greater(t, len(moves), 1)
	require.LessOrEqual(t, len(moves)-1, 2*2*settings.MoveLimit)
}
