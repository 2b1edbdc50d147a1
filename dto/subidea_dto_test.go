package dto

import (
	"encoding/json"
	"testing"

	"github.com/ideahub-simple/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubIdeaDetailCarriesVoteCounts(t *testing.T) {
	detail := SubIdeaDetail{
		SubIdea: models.SubIdea{ID: "s1", Title: "Solar charger"},
		VoteCounts: models.VoteCounts{
			Upvotes:   3,
			Downvotes: 1,
			Total:     2,
		},
	}

	data, err := json.Marshal(detail)
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &decoded))

	// Sub-idea fields stay at the top level, the aggregate rides alongside.
	assert.Contains(t, decoded, "title")
	require.Contains(t, decoded, "voteCounts")

	var counts models.VoteCounts
	require.NoError(t, json.Unmarshal(decoded["voteCounts"], &counts))
	assert.Equal(t, int64(3), counts.Upvotes)
	assert.Equal(t, int64(2), counts.Total)
}
