package services

import (
	"net/http"
	"testing"

	"github.com/ideahub-simple/models"
	"github.com/ideahub-simple/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewUpdatesAccepted(t *testing.T) {
	updates, err := reviewUpdates(models.ProposalStatusAccepted, nil)
	require.NoError(t, err)

	assert.Equal(t, models.ProposalStatusAccepted, updates["status"])
	assert.Nil(t, updates["rejection_reason"], "acceptance clears any stale reason")
}

func TestReviewUpdatesRejectedWithReason(t *testing.T) {
	reason := "duplicate of an earlier pitch"
	updates, err := reviewUpdates(models.ProposalStatusRejected, &reason)
	require.NoError(t, err)

	assert.Equal(t, models.ProposalStatusRejected, updates["status"])
	assert.Equal(t, reason, updates["rejection_reason"])
}

func TestReviewUpdatesRejectedRequiresReason(t *testing.T) {
	empty := ""
	for _, reason := range []*string{nil, &empty} {
		updates, err := reviewUpdates(models.ProposalStatusRejected, reason)
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, utils.StatusOf(err))
		assert.Nil(t, updates)
	}
}
