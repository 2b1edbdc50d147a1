package services

import (
	"github.com/ideahub-simple/dto"
	"github.com/ideahub-simple/models"
	"github.com/ideahub-simple/repositories"
	"github.com/ideahub-simple/utils"
	"gorm.io/gorm"
)

// Vote actions name the transition a submission took.
const (
	VoteActionCreated = "created"
	VoteActionFlipped = "flipped"
	VoteActionRemoved = "removed"
)

// voteTransition decides what a submission does given the user's existing
// vote on the target. Same value toggles the vote off; the opposite value
// flips it.
func voteTransition(existing *models.Vote, value int) string {
	if existing == nil {
		return VoteActionCreated
	}
	if existing.Value == value {
		return VoteActionRemoved
	}
	return VoteActionFlipped
}

// VoteService handles the vote state machine for all target kinds
type VoteService struct {
	voteRepo *repositories.VoteRepository
}

// NewVoteService creates a new vote service instance
func NewVoteService() *VoteService {
	return &VoteService{
		voteRepo: repositories.NewVoteRepository(),
	}
}

// targetExists verifies the polymorphic vote target on the given handle.
func targetExists(tx *gorm.DB, kind models.VoteTarget, targetID string) error {
	var count int64
	var err error
	switch kind {
	case models.VoteTargetSubIdea:
		err = tx.Model(&models.SubIdea{}).Where("id = ?", targetID).Count(&count).Error
	case models.VoteTargetProposal:
		err = tx.Model(&models.Proposal{}).Where("id = ?", targetID).Count(&count).Error
	case models.VoteTargetPrototype:
		err = tx.Model(&models.Prototype{}).Where("id = ?", targetID).Count(&count).Error
	default:
		return utils.NewValidationError("Unknown vote target")
	}
	if err != nil {
		return err
	}
	if count == 0 {
		return utils.NewNotFoundError("Vote target not found")
	}
	return nil
}

// Cast applies one vote submission and returns the transition taken plus
// the fresh aggregate. The lookup, the write and the recount share a
// transaction so the returned counts match the committed state.
func (s *VoteService) Cast(actor Actor, kind models.VoteTarget, targetID string, value int) (dto.VoteResult, error) {
	if value != models.VoteUp && value != models.VoteDown {
		return dto.VoteResult{}, utils.NewValidationError("Vote value must be 1 or -1")
	}

	var result dto.VoteResult
	err := s.voteRepo.DB().Transaction(func(tx *gorm.DB) error {
		if err := targetExists(tx, kind, targetID); err != nil {
			return err
		}

		current, err := repositories.VoteByUserAndTarget(tx, actor.ID, kind, targetID)
		if err != nil {
			return err
		}

		action := voteTransition(current, value)
		switch action {
		case VoteActionCreated:
			vote := models.Vote{Value: value, UserID: actor.ID, TargetKind: kind, TargetID: targetID}
			if err := tx.Create(&vote).Error; err != nil {
				return err
			}
		case VoteActionRemoved:
			if err := tx.Delete(&models.Vote{}, "id = ?", current.ID).Error; err != nil {
				return err
			}
		case VoteActionFlipped:
			if err := tx.Model(&models.Vote{}).Where("id = ?", current.ID).
				UpdateColumn("value", value).Error; err != nil {
				return err
			}
		}

		counts, err := repositories.CountsForTarget(tx, kind, targetID)
		if err != nil {
			return err
		}
		result = dto.VoteResult{Action: action, VoteCounts: counts}
		return nil
	})
	if err != nil {
		return dto.VoteResult{}, err
	}
	return result, nil
}

// Counts returns the current aggregate for a target without voting.
func (s *VoteService) Counts(kind models.VoteTarget, targetID string) (models.VoteCounts, error) {
	if err := targetExists(s.voteRepo.DB(), kind, targetID); err != nil {
		return models.VoteCounts{}, err
	}
	return s.voteRepo.CountsForTarget(kind, targetID)
}
