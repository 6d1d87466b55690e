package repository

import (
	"context"
	"ctchen222/tictactoe-cli/internal/events"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

func newRedisClient(t *testing.T) *redis.Client {
	t.Helper()
	if testing.Short() {
		t.Skip("redis container tests are skipped in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	container, err := tcredis.Run(ctx, "redis:7-alpine")
	testcontainers.CleanupContainer(t, container)
	require.NoError(t, err)

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err)
	opts, err := redis.ParseURL(uri)
	require.NoError(t, err)

	client := redis.NewClient(opts)
	t.Cleanup(func() { client.Close() })
	return client
}

func TestLeaderboardRepository(t *testing.T) {
	ctx := context.Background()
	rdb := newRedisClient(t)
	repo := NewLeaderboardRepository(rdb)

	t.Run("Top on empty leaderboard", func(t *testing.T) {
		got, err := repo.Top(ctx, 5)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("Wins are tallied and ranked", func(t *testing.T) {
		for _, name := range []string{"Ana", "Bo", "Ana", "Computer", "Ana", "Bo"} {
			require.NoError(t, repo.RecordWin(ctx, name))
		}

		got, err := repo.Top(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, []Standing{{Name: "Ana", Wins: 3}, {Name: "Bo", Wins: 2}}, got)
	})

	t.Run("Non-positive n", func(t *testing.T) {
		got, err := repo.Top(ctx, 0)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("Finished matches are published", func(t *testing.T) {
		sub := rdb.Subscribe(ctx, events.EventsChannel)
		defer sub.Close()
		_, err := sub.Receive(ctx)
		require.NoError(t, err)

		payload := events.MatchFinishedPayload{MatchID: "m1", Mode: "solo", PlayerX: "Ana", PlayerO: "Computer", Winner: "Ana", Moves: 5}
		require.NoError(t, repo.PublishFinished(ctx, payload))

		select {
		case msg := <-sub.Channel():
			var ev events.Event
			require.NoError(t, json.Unmarshal([]byte(msg.Payload), &ev))
			assert.Equal(t, events.TypeMatchFinished, ev.Type)

			var got events.MatchFinishedPayload
			require.NoError(t, json.Unmarshal(ev.Payload, &got))
			assert.Equal(t, payload, got)
		case <-time.After(5 * time.Second):
			t.Fatal("no match_finished event received")
		}
	})
}
