package services

import (
	"github.com/ideahub-simple/models"
	"github.com/ideahub-simple/repositories"
	"gorm.io/gorm"
)

// Cascade deletes walk the hierarchy leaves-first: team members, then votes
// and comments of every descendant, then prototypes, proposals, sub-ideas.
// Everything runs on one transaction handle; any failure rolls the whole
// chain back.

// descendantSet holds every live row under a subtree of the hierarchy.
type descendantSet struct {
	SubIdeas   []models.SubIdea
	Proposals  []models.Proposal
	Prototypes []models.Prototype
}

func (d descendantSet) subIdeaIDs() []string {
	ids := make([]string, 0, len(d.SubIdeas))
	for _, s := range d.SubIdeas {
		ids = append(ids, s.ID)
	}
	return ids
}

func (d descendantSet) proposalIDs() []string {
	ids := make([]string, 0, len(d.Proposals))
	for _, p := range d.Proposals {
		ids = append(ids, p.ID)
	}
	return ids
}

func (d descendantSet) prototypeIDs() []string {
	ids := make([]string, 0, len(d.Prototypes))
	for _, p := range d.Prototypes {
		ids = append(ids, p.ID)
	}
	return ids
}

// collectDescendants gathers all proposals and prototypes under the given
// sub-ideas, reading on the caller's transaction.
func collectDescendants(tx *gorm.DB, subIdeas []models.SubIdea) (descendantSet, error) {
	set := descendantSet{SubIdeas: subIdeas}

	var err error
	if set.Proposals, err = repositories.ProposalsBySubIdeaIDs(tx, set.subIdeaIDs()); err != nil {
		return set, err
	}
	if set.Prototypes, err = repositories.PrototypesByProposalIDs(tx, set.proposalIDs()); err != nil {
		return set, err
	}
	return set, nil
}

// deleteVotesFor removes all votes pointing at the given targets. Votes are
// hard deleted.
func deleteVotesFor(tx *gorm.DB, kind models.VoteTarget, targetIDs []string) error {
	if len(targetIDs) == 0 {
		return nil
	}
	return tx.Where("target_kind = ? AND target_id IN ?", kind, targetIDs).Delete(&models.Vote{}).Error
}

// deleteCommentsFor removes all comments attached to the given targets.
func deleteCommentsFor(tx *gorm.DB, kind models.CommentTarget, targetIDs []string) error {
	if len(targetIDs) == 0 {
		return nil
	}
	return tx.Where("target_kind = ? AND target_id IN ?", kind, targetIDs).Delete(&models.Comment{}).Error
}

// deleteTeamMembersFor removes all team rows of the given prototypes.
func deleteTeamMembersFor(tx *gorm.DB, prototypeIDs []string) error {
	if len(prototypeIDs) == 0 {
		return nil
	}
	return tx.Where("prototype_id IN ?", prototypeIDs).Delete(&models.PrototypeTeamMember{}).Error
}

// cascadeStep is one ordered unit of a subtree deletion.
type cascadeStep struct {
	name string
	run  func(tx *gorm.DB) error
}

// cascadePlan lays out the deletion of a collected subtree in strict
// dependency order: attachments of every descendant first, then the entity
// rows bottom-up. Steps with nothing to delete are no-ops.
func cascadePlan(set descendantSet) []cascadeStep {
	protoIDs := set.prototypeIDs()
	proposalIDs := set.proposalIDs()
	subIdeaIDs := set.subIdeaIDs()

	return []cascadeStep{
		{"prototype team members", func(tx *gorm.DB) error {
			return deleteTeamMembersFor(tx, protoIDs)
		}},
		{"prototype votes", func(tx *gorm.DB) error {
			return deleteVotesFor(tx, models.VoteTargetPrototype, protoIDs)
		}},
		{"prototype comments", func(tx *gorm.DB) error {
			return deleteCommentsFor(tx, models.CommentTargetPrototype, protoIDs)
		}},
		{"proposal votes", func(tx *gorm.DB) error {
			return deleteVotesFor(tx, models.VoteTargetProposal, proposalIDs)
		}},
		{"sub-idea votes", func(tx *gorm.DB) error {
			return deleteVotesFor(tx, models.VoteTargetSubIdea, subIdeaIDs)
		}},
		{"sub-idea comments", func(tx *gorm.DB) error {
			return deleteCommentsFor(tx, models.CommentTargetSubIdea, subIdeaIDs)
		}},
		{"prototypes", func(tx *gorm.DB) error {
			if len(protoIDs) == 0 {
				return nil
			}
			return tx.Where("id IN ?", protoIDs).Delete(&models.Prototype{}).Error
		}},
		{"proposals", func(tx *gorm.DB) error {
			if len(proposalIDs) == 0 {
				return nil
			}
			return tx.Where("id IN ?", proposalIDs).Delete(&models.Proposal{}).Error
		}},
		{"sub-ideas", func(tx *gorm.DB) error {
			if len(subIdeaIDs) == 0 {
				return nil
			}
			return tx.Where("id IN ?", subIdeaIDs).Delete(&models.SubIdea{}).Error
		}},
	}
}

// deleteDescendants executes the cascade plan on the caller's transaction.
// Counter and star adjustments are the caller's responsibility.
func deleteDescendants(tx *gorm.DB, set descendantSet) error {
	for _, step := range cascadePlan(set) {
		if err := step.run(tx); err != nil {
			return err
		}
	}
	return nil
}
