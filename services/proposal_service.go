package services

import (
	"errors"

	"github.com/ideahub-simple/dto"
	"github.com/ideahub-simple/models"
	"github.com/ideahub-simple/repositories"
	"github.com/ideahub-simple/utils"
	"gorm.io/gorm"
)

// ProposalService handles business logic for proposals
type ProposalService struct {
	proposalRepo *repositories.ProposalRepository
	subIdeaRepo  *repositories.SubIdeaRepository
}

// NewProposalService creates a new proposal service instance
func NewProposalService() *ProposalService {
	return &ProposalService{
		proposalRepo: repositories.NewProposalRepository(),
		subIdeaRepo:  repositories.NewSubIdeaRepository(),
	}
}

// SubmitProposal attaches a proposal to a sub-idea. Parent checks, the
// duplicate-pending check, the insert, the idea counter increment and the
// star credit all run on one transaction.
func (s *ProposalService) SubmitProposal(actor Actor, subIdeaID string, req dto.SubmitProposalRequest) (models.Proposal, error) {
	if req.PresentationURL != nil && !utils.IsValidHTTPURL(*req.PresentationURL) {
		return models.Proposal{}, utils.NewValidationError("presentationUrl must be a valid http(s) URL")
	}

	proposal := models.Proposal{
		Title:           req.Title,
		Description:     req.Description,
		PresentationURL: req.PresentationURL,
		Status:          models.ProposalStatusPending,
		AuthorID:        actor.ID,
		SubIdeaID:       subIdeaID,
	}

	err := s.proposalRepo.DB().Transaction(func(tx *gorm.DB) error {
		subIdea, err := subIdeaForChild(tx, subIdeaID)
		if err != nil {
			return err
		}
		if _, err := ideaOpenForChildren(tx, subIdea.IdeaID); err != nil {
			return err
		}

		pending, err := repositories.HasPendingProposal(tx, subIdeaID, actor.ID)
		if err != nil {
			return err
		}
		if pending {
			return utils.NewConflictError("You already have a pending proposal for this sub-idea")
		}

		if err := tx.Create(&proposal).Error; err != nil {
			return err
		}
		if err := adjustIdeaCounter(tx, subIdea.IdeaID, counterTotalProposals, 1); err != nil {
			return err
		}
		return creditStars(tx, actor.ID, StarsProposalSubmission)
	})
	if err != nil {
		return models.Proposal{}, err
	}
	return proposal, nil
}

// ListProposals retrieves proposals with pagination and filtering
func (s *ProposalService) ListProposals(filter dto.ProposalFilter) ([]models.Proposal, utils.Pagination, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = 10
	}
	proposals, totalCount, err := s.proposalRepo.FindWithPagination(filter)
	if err != nil {
		return nil, utils.Pagination{}, err
	}
	return proposals, utils.NewPagination(filter.Page, filter.Limit, totalCount), nil
}

// GetProposal retrieves one proposal with its author
func (s *ProposalService) GetProposal(id string) (models.Proposal, error) {
	proposal, err := s.proposalRepo.FindByIDWithAuthor(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Proposal{}, utils.NewNotFoundError("Proposal not found")
		}
		return models.Proposal{}, err
	}
	return proposal, nil
}

// UpdateProposal lets the author edit a proposal while it is still pending
func (s *ProposalService) UpdateProposal(actor Actor, id string, req dto.UpdateProposalRequest) (models.Proposal, error) {
	proposal, err := s.proposalRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Proposal{}, utils.NewNotFoundError("Proposal not found")
		}
		return models.Proposal{}, err
	}
	if !CanUpdateProposal(actor, proposal) {
		return models.Proposal{}, utils.NewForbiddenError("Only the proposal author can update it")
	}
	if proposal.Status != models.ProposalStatusPending {
		return models.Proposal{}, utils.NewConflictError("Only pending proposals can be updated")
	}
	if req.PresentationURL != nil && !utils.IsValidHTTPURL(*req.PresentationURL) {
		return models.Proposal{}, utils.NewValidationError("presentationUrl must be a valid http(s) URL")
	}

	if req.Title != nil {
		proposal.Title = *req.Title
	}
	if req.Description != nil {
		proposal.Description = *req.Description
	}
	if req.PresentationURL != nil {
		proposal.PresentationURL = req.PresentationURL
	}

	if err := s.proposalRepo.DB().Save(&proposal).Error; err != nil {
		return models.Proposal{}, err
	}
	return proposal, nil
}

// reviewUpdates validates the decision and builds the column updates it
// applies. Rejection requires a reason; acceptance clears any stale one.
func reviewUpdates(status models.ProposalStatus, reason *string) (map[string]interface{}, error) {
	updates := map[string]interface{}{
		"status":           status,
		"rejection_reason": nil,
	}
	if status == models.ProposalStatusRejected {
		if reason == nil || *reason == "" {
			return nil, utils.NewValidationError("rejectionReason is required when rejecting a proposal")
		}
		updates["rejection_reason"] = *reason
	}
	return updates, nil
}

// ReviewProposal applies the idea author's accept/reject decision. The
// transition out of pending is one-way: the write is conditional on the row
// still being pending, so a concurrent review cannot overwrite a decision.
func (s *ProposalService) ReviewProposal(actor Actor, id string, req dto.ReviewProposalRequest) (models.Proposal, error) {
	var proposal models.Proposal
	status := models.ProposalStatus(req.Status)

	err := s.proposalRepo.DB().Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&proposal, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.NewNotFoundError("Proposal not found")
			}
			return err
		}

		subIdea, err := subIdeaForChild(tx, proposal.SubIdeaID)
		if err != nil {
			return err
		}
		var idea models.Idea
		if err := tx.First(&idea, "id = ?", subIdea.IdeaID).Error; err != nil {
			return err
		}
		if !CanReviewProposal(actor, idea.AuthorID) {
			return utils.NewForbiddenError("Only the idea author can review proposals")
		}
		if proposal.Status != models.ProposalStatusPending {
			return utils.NewConflictError("Proposal has already been reviewed")
		}

		updates, err := reviewUpdates(status, req.RejectionReason)
		if err != nil {
			return err
		}

		res := tx.Model(&models.Proposal{}).
			Where("id = ? AND status = ?", id, models.ProposalStatusPending).
			Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return utils.NewConflictError("Proposal has already been reviewed")
		}

		proposal.Status = status
		if status == models.ProposalStatusRejected {
			proposal.RejectionReason = req.RejectionReason
		} else {
			proposal.RejectionReason = nil
		}
		return nil
	})
	if err != nil {
		return models.Proposal{}, err
	}
	return proposal, nil
}

// DeleteProposal removes a proposal and its prototypes in one transaction,
// decrementing the ancestor idea's counters and reversing star credits.
func (s *ProposalService) DeleteProposal(actor Actor, id string) error {
	proposal, err := s.proposalRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NewNotFoundError("Proposal not found")
		}
		return err
	}
	if !CanDeleteProposal(actor, proposal) {
		return utils.NewForbiddenError("You are not allowed to delete this proposal")
	}

	subIdea, err := s.subIdeaRepo.FindByID(proposal.SubIdeaID)
	if err != nil {
		return err
	}

	return s.proposalRepo.DB().Transaction(func(tx *gorm.DB) error {
		prototypes, err := repositories.PrototypesByProposalIDs(tx, []string{id})
		if err != nil {
			return err
		}

		set := descendantSet{Proposals: []models.Proposal{proposal}, Prototypes: prototypes}
		if err := deleteDescendants(tx, set); err != nil {
			return err
		}

		if err := adjustIdeaCounter(tx, subIdea.IdeaID, counterTotalProposals, -1); err != nil {
			return err
		}
		if err := adjustIdeaCounter(tx, subIdea.IdeaID, counterTotalPrototypes, -len(prototypes)); err != nil {
			return err
		}

		return applyStarRefunds(tx, StarRefunds(nil, set.Proposals, set.Prototypes))
	})
}
