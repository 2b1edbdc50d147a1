package services

import (
	"testing"

	"github.com/ideahub-simple/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCascadePlanOrder(t *testing.T) {
	set := descendantSet{
		SubIdeas:   []models.SubIdea{{ID: "s1"}},
		Proposals:  []models.Proposal{{ID: "pp1"}},
		Prototypes: []models.Prototype{{ID: "pt1"}},
	}

	var names []string
	for _, step := range cascadePlan(set) {
		names = append(names, step.name)
	}

	// Attachments of every descendant go first, then the entity rows
	// strictly bottom-up so no child ever outlives its parent.
	assert.Equal(t, []string{
		"prototype team members",
		"prototype votes",
		"prototype comments",
		"proposal votes",
		"sub-idea votes",
		"sub-idea comments",
		"prototypes",
		"proposals",
		"sub-ideas",
	}, names)
}

func TestCascadePlanCoversEmptySubtree(t *testing.T) {
	// An empty set still yields the full plan; every step no-ops.
	plan := cascadePlan(descendantSet{})
	require.Len(t, plan, 9)
	for _, step := range plan {
		assert.NoError(t, step.run(nil), step.name)
	}
}

func TestDescendantSetIDs(t *testing.T) {
	set := descendantSet{
		SubIdeas:   []models.SubIdea{{ID: "s1"}, {ID: "s2"}},
		Proposals:  []models.Proposal{{ID: "pp1"}},
		Prototypes: []models.Prototype{{ID: "pt1"}, {ID: "pt2"}, {ID: "pt3"}},
	}

	assert.Equal(t, []string{"s1", "s2"}, set.subIdeaIDs())
	assert.Equal(t, []string{"pp1"}, set.proposalIDs())
	assert.Equal(t, []string{"pt1", "pt2", "pt3"}, set.prototypeIDs())
}
