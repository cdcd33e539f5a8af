package usecase

import (
	"bufio"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"detection-srv/internal/model"
	"detection-srv/pkg/log"
)

func readAuditLines(t *testing.T, dir string) []model.AuditEvent {
	t.Helper()
	f, err := os.Open(filepath.Join(dir, auditFileName))
	require.NoError(t, err)
	defer f.Close()

	var events []model.AuditEvent
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var e model.AuditEvent
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &e))
		events = append(events, e)
	}
	require.NoError(t, scanner.Err())
	return events
}

func TestLog(t *testing.T) {
	t.Run("events append as one JSON object per line", func(t *testing.T) {
		dir := t.TempDir()
		uc, err := New(log.NewNop(), dir, nil)
		require.NoError(t, err)
		defer uc.Close()

		ts := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
		require.NoError(t, uc.Log(context.Background(), model.AuditEvent{
			Timestamp:     ts,
			FileHash:      "abc123",
			Label:         "fake",
			Confidence:    0.93,
			Context:       "kyc",
			AttackVectors: []string{"impersonation", "kyc_bypass"},
		}))
		require.NoError(t, uc.Log(context.Background(), model.AuditEvent{
			Timestamp: ts,
			FileHash:  "def456",
			Label:     "real",
		}))

		events := readAuditLines(t, dir)
		require.Len(t, events, 2)
		assert.Equal(t, "abc123", events[0].FileHash)
		assert.Equal(t, []string{"impersonation", "kyc_bypass"}, events[0].AttackVectors)
		assert.True(t, events[0].Timestamp.Equal(ts))
		// Nil vectors serialize as an empty array, not null.
		assert.NotNil(t, events[1].AttackVectors)
		assert.Empty(t, events[1].AttackVectors)
	})

	t.Run("concurrent writers never interleave lines", func(t *testing.T) {
		dir := t.TempDir()
		uc, err := New(log.NewNop(), dir, nil)
		require.NoError(t, err)
		defer uc.Close()

		const writers = 50
		var wg sync.WaitGroup
		for i := 0; i < writers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_ = uc.Log(context.Background(), model.AuditEvent{
					Timestamp:     time.Now().UTC(),
					FileHash:      "hash",
					Label:         "fake",
					AttackVectors: []string{"impersonation"},
				})
			}()
		}
		wg.Wait()

		events := readAuditLines(t, dir)
		assert.Len(t, events, writers)
	})

	t.Run("reopening keeps appending", func(t *testing.T) {
		dir := t.TempDir()

		uc, err := New(log.NewNop(), dir, nil)
		require.NoError(t, err)
		require.NoError(t, uc.Log(context.Background(), model.AuditEvent{FileHash: "a"}))
		require.NoError(t, uc.Close())

		uc, err = New(log.NewNop(), dir, nil)
		require.NoError(t, err)
		require.NoError(t, uc.Log(context.Background(), model.AuditEvent{FileHash: "b"}))
		require.NoError(t, uc.Close())

		events := readAuditLines(t, dir)
		require.Len(t, events, 2)
		assert.Equal(t, "a", events[0].FileHash)
		assert.Equal(t, "b", events[1].FileHash)
	})
}
