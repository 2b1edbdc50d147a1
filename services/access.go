package services

import (
	"github.com/ideahub-simple/models"
)

// Actor identifies the authenticated user a request acts as. Handlers build
// it from the JWT claims the auth middleware stored in the gin context.
type Actor struct {
	ID    string
	Email string
	Role  models.Role
}

// IsAdmin reports whether the actor carries the admin role.
func (a Actor) IsAdmin() bool {
	return a.Role == models.RoleAdmin
}

// The functions below are the authorization resolver: pure checks over
// already-loaded entities. They never touch the database and never mutate
// state; callers translate a false into a 403.

// CanMutateIdea allows the idea author or an admin to update, close or
// delete an idea.
func CanMutateIdea(actor Actor, idea models.Idea) bool {
	return actor.IsAdmin() || idea.AuthorID == actor.ID
}

// CanMutateSubIdea allows the sub-idea author, the parent idea's author, or
// an admin to update, delete or change the status of a sub-idea.
func CanMutateSubIdea(actor Actor, subIdea models.SubIdea, ideaAuthorID string) bool {
	if actor.IsAdmin() {
		return true
	}
	return subIdea.AuthorID == actor.ID || ideaAuthorID == actor.ID
}

// CanUpdateProposal allows only the proposal author to edit it, and only
// while it is still pending.
func CanUpdateProposal(actor Actor, proposal models.Proposal) bool {
	return proposal.AuthorID == actor.ID
}

// CanReviewProposal allows only the parent idea's author to accept or
// reject a proposal. Admins do not get a bypass here: the decision belongs
// to whoever owns the idea.
func CanReviewProposal(actor Actor, ideaAuthorID string) bool {
	return ideaAuthorID == actor.ID
}

// CanDeleteProposal allows the proposal author or an admin to delete it.
func CanDeleteProposal(actor Actor, proposal models.Proposal) bool {
	return actor.IsAdmin() || proposal.AuthorID == actor.ID
}

// CanUpdatePrototype allows the author or any current team member to update
// a prototype.
func CanUpdatePrototype(actor Actor, prototype models.Prototype, isTeamMember bool) bool {
	return prototype.AuthorID == actor.ID || isTeamMember
}

// CanAddTeamMember allows only the prototype author to grow the team.
func CanAddTeamMember(actor Actor, prototype models.Prototype) bool {
	return prototype.AuthorID == actor.ID
}

// CanRemoveTeamMember allows the prototype author or the member themself to
// remove a membership. The author's own row is never removable.
func CanRemoveTeamMember(actor Actor, prototype models.Prototype, memberID string) bool {
	if memberID == prototype.AuthorID {
		return false
	}
	return prototype.AuthorID == actor.ID || memberID == actor.ID
}

// CanDeletePrototype allows the prototype author or an admin to delete it.
func CanDeletePrototype(actor Actor, prototype models.Prototype) bool {
	return actor.IsAdmin() || prototype.AuthorID == actor.ID
}
