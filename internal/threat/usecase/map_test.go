package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"detection-srv/pkg/log"
)

func TestMap(t *testing.T) {
	uc := New(log.NewNop())

	ids := func(label, context string) []string {
		entries := uc.Map(label, context)
		out := make([]string, 0, len(entries))
		for _, e := range entries {
			out = append(out, e.ID)
		}
		return out
	}

	t.Run("fake label leads with impersonation", func(t *testing.T) {
		assert.Equal(t, []string{ThreatImpersonation, ThreatEvidenceFabrication}, ids("fake", ""))
	})

	t.Run("real label maps to benign content", func(t *testing.T) {
		assert.Equal(t, []string{ThreatBenignContent}, ids("real", ""))
	})

	t.Run("unknown label needs review", func(t *testing.T) {
		assert.Equal(t, []string{ThreatNeedsReview}, ids("bogus", ""))
	})

	t.Run("kyc context appends kyc bypass exactly once", func(t *testing.T) {
		got := ids("fake", "kyc onboarding flow")
		assert.Equal(t, []string{ThreatImpersonation, ThreatEvidenceFabrication, ThreatKYCBypass}, got)
	})

	t.Run("vip context does not duplicate impersonation", func(t *testing.T) {
		got := ids("fake", "vip executive review")
		assert.Equal(t, []string{ThreatImpersonation, ThreatEvidenceFabrication}, got)
	})

	t.Run("vip context appends impersonation for real label", func(t *testing.T) {
		got := ids("real", "vip")
		assert.Equal(t, []string{ThreatBenignContent, ThreatImpersonation}, got)
	})

	t.Run("entries resolve against the taxonomy", func(t *testing.T) {
		for _, e := range uc.Map("fake", "kyc") {
			require.NotEmpty(t, e.Name)
			require.NotEmpty(t, e.Description)
			require.NotEmpty(t, e.Impact)
		}
	})
}

func TestResolve(t *testing.T) {
	t.Run("unknown ids are dropped silently", func(t *testing.T) {
		got := resolve([]string{ThreatImpersonation, "no_such_threat", ThreatBenignContent})
		require.Len(t, got, 2)
		assert.Equal(t, ThreatImpersonation, got[0].ID)
		assert.Equal(t, ThreatBenignContent, got[1].ID)
	})

	t.Run("only unknown ids yields an empty list", func(t *testing.T) {
		got := resolve([]string{"no_such_threat"})
		assert.Empty(t, got)
	})

	t.Run("duplicates keep first-seen order", func(t *testing.T) {
		got := resolve([]string{ThreatNeedsReview, ThreatImpersonation, ThreatNeedsReview})
		require.Len(t, got, 2)
		assert.Equal(t, ThreatNeedsReview, got[0].ID)
		assert.Equal(t, ThreatImpersonation, got[1].ID)
	})
}

func TestTaxonomy(t *testing.T) {
	uc := New(log.NewNop())

	entries := uc.Taxonomy()
	require.Len(t, entries, 5)

	t.Run("returned slice is a copy", func(t *testing.T) {
		entries[0].Name = "mutated"
		assert.NotEqual(t, "mutated", uc.Taxonomy()[0].Name)
	})
}
