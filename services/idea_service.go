package services

import (
	"errors"

	"github.com/ideahub-simple/dto"
	"github.com/ideahub-simple/models"
	"github.com/ideahub-simple/repositories"
	"github.com/ideahub-simple/utils"
	"gorm.io/gorm"
)

// IdeaService handles business logic for ideas
type IdeaService struct {
	ideaRepo *repositories.IdeaRepository
}

// NewIdeaService creates a new idea service instance
func NewIdeaService() *IdeaService {
	return &IdeaService{
		ideaRepo: repositories.NewIdeaRepository(),
	}
}

// CreateIdea inserts a new idea and credits the author's stars in one
// transaction.
func (s *IdeaService) CreateIdea(actor Actor, req dto.CreateIdeaRequest) (models.Idea, error) {
	if req.PotentialDollarValue != nil && *req.PotentialDollarValue < 0 {
		return models.Idea{}, utils.NewValidationError("potentialDollarValue must not be negative")
	}

	idea := models.Idea{
		Title:                req.Title,
		Description:          req.Description,
		Type:                 models.IdeaType(req.Type),
		Status:               models.IdeaStatusOpen,
		PotentialDollarValue: req.PotentialDollarValue,
		AuthorID:             actor.ID,
	}

	err := s.ideaRepo.DB().Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&idea).Error; err != nil {
			return err
		}
		return creditStars(tx, actor.ID, StarsIdeaCreation)
	})
	if err != nil {
		return models.Idea{}, err
	}
	return idea, nil
}

// ListIdeas retrieves ideas with pagination, filtering and sorting
func (s *IdeaService) ListIdeas(filter dto.IdeaFilter) ([]models.Idea, utils.Pagination, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = 10
	}
	filter.SortOrder = utils.SanitizeSortOrder(filter.SortOrder)
	filter.SortBy = utils.SanitizeSortBy(filter.SortBy, map[string]bool{
		"created_at":       true,
		"updated_at":       true,
		"title":            true,
		"total_proposals":  true,
		"total_prototypes": true,
	})

	ideas, totalCount, err := s.ideaRepo.FindWithPagination(filter)
	if err != nil {
		return nil, utils.Pagination{}, err
	}
	return ideas, utils.NewPagination(filter.Page, filter.Limit, totalCount), nil
}

// GetIdea retrieves one idea with its author
func (s *IdeaService) GetIdea(id string) (models.Idea, error) {
	idea, err := s.ideaRepo.FindByIDWithAuthor(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Idea{}, utils.NewNotFoundError("Idea not found")
		}
		return models.Idea{}, err
	}
	return idea, nil
}

// UpdateIdea applies partial changes, author or admin only
func (s *IdeaService) UpdateIdea(actor Actor, id string, req dto.UpdateIdeaRequest) (models.Idea, error) {
	idea, err := s.GetIdea(id)
	if err != nil {
		return models.Idea{}, err
	}
	if !CanMutateIdea(actor, idea) {
		return models.Idea{}, utils.NewForbiddenError("You are not allowed to update this idea")
	}
	if req.PotentialDollarValue != nil && *req.PotentialDollarValue < 0 {
		return models.Idea{}, utils.NewValidationError("potentialDollarValue must not be negative")
	}

	if req.Title != nil {
		idea.Title = *req.Title
	}
	if req.Description != nil {
		idea.Description = *req.Description
	}
	if req.PotentialDollarValue != nil {
		idea.PotentialDollarValue = req.PotentialDollarValue
	}

	if err := s.ideaRepo.DB().Save(&idea).Error; err != nil {
		return models.Idea{}, err
	}
	return idea, nil
}

// CloseIdea performs the one-way open→closed transition
func (s *IdeaService) CloseIdea(actor Actor, id string) (models.Idea, error) {
	idea, err := s.GetIdea(id)
	if err != nil {
		return models.Idea{}, err
	}
	if !CanMutateIdea(actor, idea) {
		return models.Idea{}, utils.NewForbiddenError("You are not allowed to close this idea")
	}
	if idea.Status == models.IdeaStatusClosed {
		return models.Idea{}, utils.NewConflictError("Idea is already closed")
	}

	idea.Status = models.IdeaStatusClosed
	if err := s.ideaRepo.DB().Model(&models.Idea{}).Where("id = ?", id).
		UpdateColumn("status", models.IdeaStatusClosed).Error; err != nil {
		return models.Idea{}, err
	}
	return idea, nil
}

// DeleteIdea removes an idea and everything under it in one transaction:
// team members, votes and comments of every descendant, prototypes,
// proposals, sub-ideas, then the idea itself, reversing every star credit
// attributable to the subtree.
func (s *IdeaService) DeleteIdea(actor Actor, id string) error {
	idea, err := s.ideaRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NewNotFoundError("Idea not found")
		}
		return err
	}
	if !CanMutateIdea(actor, idea) {
		return utils.NewForbiddenError("You are not allowed to delete this idea")
	}

	return s.ideaRepo.DB().Transaction(func(tx *gorm.DB) error {
		subIdeas, err := repositories.SubIdeasByIdeaID(tx, id)
		if err != nil {
			return err
		}

		set, err := collectDescendants(tx, subIdeas)
		if err != nil {
			return err
		}
		if err := deleteDescendants(tx, set); err != nil {
			return err
		}

		refunds := StarRefunds(set.SubIdeas, set.Proposals, set.Prototypes)
		refunds[idea.AuthorID] += StarsIdeaCreation
		if err := applyStarRefunds(tx, refunds); err != nil {
			return err
		}

		return tx.Delete(&models.Idea{}, "id = ?", id).Error
	})
}
