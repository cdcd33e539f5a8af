package usecase

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"detection-srv/pkg/log"
)

func TestRecord(t *testing.T) {
	t.Run("labels are counted by kind", func(t *testing.T) {
		uc := New(log.NewNop())

		for _, label := range []string{"fake", "real", "fake", "bogus"} {
			uc.Record(label)
		}

		snap := uc.Snapshot()
		assert.Equal(t, int64(4), snap.Total)
		assert.Equal(t, int64(2), snap.FakeCount)
		assert.Equal(t, int64(1), snap.RealCount)
		require.NotNil(t, snap.LastAnalysis)
	})

	t.Run("labels are normalized before counting", func(t *testing.T) {
		uc := New(log.NewNop())

		for _, label := range []string{"Fake", "FAKE", " real ", "Real"} {
			uc.Record(label)
		}

		snap := uc.Snapshot()
		assert.Equal(t, int64(4), snap.Total)
		assert.Equal(t, int64(2), snap.FakeCount)
		assert.Equal(t, int64(2), snap.RealCount)
	})

	t.Run("no lost updates under concurrent recording", func(t *testing.T) {
		uc := New(log.NewNop())

		const perLabel = 200
		var wg sync.WaitGroup
		for _, label := range []string{"fake", "real", "bogus"} {
			for i := 0; i < perLabel; i++ {
				wg.Add(1)
				go func(label string) {
					defer wg.Done()
					uc.Record(label)
				}(label)
			}
		}
		wg.Wait()

		snap := uc.Snapshot()
		assert.Equal(t, int64(3*perLabel), snap.Total)
		assert.Equal(t, int64(perLabel), snap.FakeCount)
		assert.Equal(t, int64(perLabel), snap.RealCount)
	})

	t.Run("empty tracker snapshot", func(t *testing.T) {
		uc := New(log.NewNop())

		snap := uc.Snapshot()
		assert.Zero(t, snap.Total)
		assert.Nil(t, snap.LastAnalysis)
	})
}
