package services

import (
	"errors"

	"github.com/ideahub-simple/models"
	"github.com/ideahub-simple/utils"
	"gorm.io/gorm"
)

// Hierarchy checks run on the transaction handle that will also perform the
// write, so the parent's status and the child insert observe one snapshot.
// They are read-only.

// ideaAcceptsChildren requires the idea to be open. A closed idea refuses
// new children with a conflict.
func ideaAcceptsChildren(idea models.Idea) error {
	if idea.Status != models.IdeaStatusOpen {
		return utils.NewConflictError("Idea is closed and no longer accepts contributions")
	}
	return nil
}

// ideaOpenForChildren loads an idea and requires it to accept new children.
func ideaOpenForChildren(tx *gorm.DB, ideaID string) (models.Idea, error) {
	var idea models.Idea
	if err := tx.First(&idea, "id = ?", ideaID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return idea, utils.NewNotFoundError("Idea not found")
		}
		return idea, err
	}
	return idea, ideaAcceptsChildren(idea)
}

// subIdeaForChild loads a sub-idea that is about to receive a proposal.
func subIdeaForChild(tx *gorm.DB, subIdeaID string) (models.SubIdea, error) {
	var subIdea models.SubIdea
	if err := tx.First(&subIdea, "id = ?", subIdeaID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return subIdea, utils.NewNotFoundError("Sub-idea not found")
		}
		return subIdea, err
	}
	return subIdea, nil
}

// proposalAcceptsPrototypes requires the proposal to be accepted before a
// prototype may attach to it.
func proposalAcceptsPrototypes(proposal models.Proposal) error {
	if proposal.Status != models.ProposalStatusAccepted {
		return utils.NewForbiddenError("Proposal must be accepted before prototypes can be submitted")
	}
	return nil
}

// proposalAcceptedForPrototype loads a proposal and requires it to accept
// prototypes.
func proposalAcceptedForPrototype(tx *gorm.DB, proposalID string) (models.Proposal, error) {
	var proposal models.Proposal
	if err := tx.First(&proposal, "id = ?", proposalID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return proposal, utils.NewNotFoundError("Proposal not found")
		}
		return proposal, err
	}
	return proposal, proposalAcceptsPrototypes(proposal)
}
