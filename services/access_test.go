package services

import (
	"testing"

	"github.com/ideahub-simple/models"
	"github.com/stretchr/testify/assert"
)

var (
	alice = Actor{ID: "alice", Role: models.RoleUser}
	bob   = Actor{ID: "bob", Role: models.RoleUser}
	carol = Actor{ID: "carol", Role: models.RoleUser}
	admin = Actor{ID: "root", Role: models.RoleAdmin}
)

func TestCanMutateIdea(t *testing.T) {
	idea := models.Idea{AuthorID: "alice"}

	assert.True(t, CanMutateIdea(alice, idea), "author may mutate")
	assert.True(t, CanMutateIdea(admin, idea), "admin may mutate")
	assert.False(t, CanMutateIdea(bob, idea), "stranger may not mutate")
}

func TestCanMutateSubIdea(t *testing.T) {
	subIdea := models.SubIdea{AuthorID: "bob", IdeaID: "idea-1"}

	tests := []struct {
		name         string
		actor        Actor
		ideaAuthorID string
		want         bool
	}{
		{"sub-idea author", bob, "alice", true},
		{"parent idea author", alice, "alice", true},
		{"admin", admin, "alice", true},
		{"unrelated user", carol, "alice", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanMutateSubIdea(tt.actor, subIdea, tt.ideaAuthorID))
		})
	}
}

func TestProposalPermissions(t *testing.T) {
	proposal := models.Proposal{AuthorID: "bob", Status: models.ProposalStatusPending}

	assert.True(t, CanUpdateProposal(bob, proposal))
	assert.False(t, CanUpdateProposal(alice, proposal))
	assert.False(t, CanUpdateProposal(admin, proposal), "admins do not edit other people's proposals")

	// Review belongs to the idea author alone.
	assert.True(t, CanReviewProposal(alice, "alice"))
	assert.False(t, CanReviewProposal(bob, "alice"))
	assert.False(t, CanReviewProposal(admin, "alice"), "no admin bypass for review")

	assert.True(t, CanDeleteProposal(bob, proposal))
	assert.True(t, CanDeleteProposal(admin, proposal))
	assert.False(t, CanDeleteProposal(alice, proposal))
}

func TestPrototypePermissions(t *testing.T) {
	prototype := models.Prototype{AuthorID: "bob"}

	assert.True(t, CanUpdatePrototype(bob, prototype, false), "author updates without membership lookup")
	assert.True(t, CanUpdatePrototype(carol, prototype, true), "team member updates")
	assert.False(t, CanUpdatePrototype(carol, prototype, false))
	assert.False(t, CanUpdatePrototype(admin, prototype, false), "admin is not implicitly on the team")

	assert.True(t, CanAddTeamMember(bob, prototype))
	assert.False(t, CanAddTeamMember(carol, prototype))
	assert.False(t, CanAddTeamMember(admin, prototype))

	assert.True(t, CanDeletePrototype(bob, prototype))
	assert.True(t, CanDeletePrototype(admin, prototype))
	assert.False(t, CanDeletePrototype(carol, prototype))
}

func TestCanRemoveTeamMember(t *testing.T) {
	prototype := models.Prototype{AuthorID: "bob"}

	assert.True(t, CanRemoveTeamMember(bob, prototype, "carol"), "author removes a member")
	assert.True(t, CanRemoveTeamMember(carol, prototype, "carol"), "member removes themself")
	assert.False(t, CanRemoveTeamMember(alice, prototype, "carol"), "stranger removes nobody")

	// The author row is untouchable, even for the author.
	assert.False(t, CanRemoveTeamMember(bob, prototype, "bob"))
	assert.False(t, CanRemoveTeamMember(admin, prototype, "bob"))
}
