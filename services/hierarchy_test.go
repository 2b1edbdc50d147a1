package services

import (
	"net/http"
	"testing"

	"github.com/ideahub-simple/models"
	"github.com/ideahub-simple/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdeaAcceptsChildren(t *testing.T) {
	open := models.Idea{Status: models.IdeaStatusOpen}
	assert.NoError(t, ideaAcceptsChildren(open))

	closed := models.Idea{Status: models.IdeaStatusClosed}
	err := ideaAcceptsChildren(closed)
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, utils.StatusOf(err))
}

func TestProposalAcceptsPrototypes(t *testing.T) {
	tests := []struct {
		name       string
		status     models.ProposalStatus
		wantStatus int
	}{
		{"accepted proposal", models.ProposalStatusAccepted, 0},
		{"pending proposal", models.ProposalStatusPending, http.StatusForbidden},
		{"rejected proposal", models.ProposalStatusRejected, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := proposalAcceptsPrototypes(models.Proposal{Status: tt.status})
			if tt.wantStatus == 0 {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantStatus, utils.StatusOf(err))
		})
	}
}
