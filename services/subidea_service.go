package services

import (
	"errors"

	"github.com/ideahub-simple/dto"
	"github.com/ideahub-simple/models"
	"github.com/ideahub-simple/repositories"
	"github.com/ideahub-simple/utils"
	"gorm.io/gorm"
)

// SubIdeaService handles business logic for sub-ideas
type SubIdeaService struct {
	subIdeaRepo *repositories.SubIdeaRepository
	ideaRepo    *repositories.IdeaRepository
	voteRepo    *repositories.VoteRepository
}

// NewSubIdeaService creates a new sub-idea service instance
func NewSubIdeaService() *SubIdeaService {
	return &SubIdeaService{
		subIdeaRepo: repositories.NewSubIdeaRepository(),
		ideaRepo:    repositories.NewIdeaRepository(),
		voteRepo:    repositories.NewVoteRepository(),
	}
}

// titleAvailable enforces case-insensitive title uniqueness per
// (idea, author) on the given handle.
func (s *SubIdeaService) titleAvailable(tx *gorm.DB, ideaID, authorID, title, excludeID string) error {
	taken, err := repositories.TitleTakenByAuthor(tx, ideaID, authorID, title, excludeID)
	if err != nil {
		return err
	}
	if taken {
		return utils.NewConflictError("You already have a sub-idea with this title under this idea")
	}
	return nil
}

// CreateSubIdea attaches a sub-idea to an open idea. The parent status
// check, the uniqueness check, the insert and the star credit all run on
// one transaction.
func (s *SubIdeaService) CreateSubIdea(actor Actor, req dto.CreateSubIdeaRequest) (models.SubIdea, error) {
	status := models.SubIdeaStatus(req.Status)
	if status == "" {
		status = models.SubIdeaStatusOpenForPrototyping
	}

	subIdea := models.SubIdea{
		Title:       req.Title,
		Description: req.Description,
		Status:      status,
		AuthorID:    actor.ID,
		IdeaID:      req.IdeaID,
	}

	err := s.subIdeaRepo.DB().Transaction(func(tx *gorm.DB) error {
		if _, err := ideaOpenForChildren(tx, req.IdeaID); err != nil {
			return err
		}
		if err := s.titleAvailable(tx, req.IdeaID, actor.ID, req.Title, ""); err != nil {
			return err
		}
		if err := tx.Create(&subIdea).Error; err != nil {
			return err
		}
		return creditStars(tx, actor.ID, StarsSubIdeaCreation)
	})
	if err != nil {
		return models.SubIdea{}, err
	}
	return subIdea, nil
}

// ListSubIdeas retrieves sub-ideas with pagination
func (s *SubIdeaService) ListSubIdeas(filter dto.SubIdeaFilter) ([]models.SubIdea, utils.Pagination, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = 10
	}
	subIdeas, totalCount, err := s.subIdeaRepo.FindWithPagination(filter)
	if err != nil {
		return nil, utils.Pagination{}, err
	}
	return subIdeas, utils.NewPagination(filter.Page, filter.Limit, totalCount), nil
}

// GetSubIdea retrieves one sub-idea with its author and vote aggregate
func (s *SubIdeaService) GetSubIdea(id string) (dto.SubIdeaDetail, error) {
	subIdea, err := s.subIdeaRepo.FindByIDWithAuthor(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.SubIdeaDetail{}, utils.NewNotFoundError("Sub-idea not found")
		}
		return dto.SubIdeaDetail{}, err
	}
	counts, err := s.voteRepo.CountsForTarget(models.VoteTargetSubIdea, id)
	if err != nil {
		return dto.SubIdeaDetail{}, err
	}
	return dto.SubIdeaDetail{SubIdea: subIdea, VoteCounts: counts}, nil
}

// mutableSubIdea loads a sub-idea and its parent idea and verifies the
// actor may mutate it.
func (s *SubIdeaService) mutableSubIdea(actor Actor, id string) (models.SubIdea, error) {
	subIdea, err := s.subIdeaRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.SubIdea{}, utils.NewNotFoundError("Sub-idea not found")
		}
		return models.SubIdea{}, err
	}
	idea, err := s.ideaRepo.FindByID(subIdea.IdeaID)
	if err != nil {
		return models.SubIdea{}, err
	}
	if !CanMutateSubIdea(actor, subIdea, idea.AuthorID) {
		return models.SubIdea{}, utils.NewForbiddenError("You are not allowed to modify this sub-idea")
	}
	return subIdea, nil
}

// UpdateSubIdea applies partial changes; sub-idea author, idea author or admin
func (s *SubIdeaService) UpdateSubIdea(actor Actor, id string, req dto.UpdateSubIdeaRequest) (models.SubIdea, error) {
	subIdea, err := s.mutableSubIdea(actor, id)
	if err != nil {
		return models.SubIdea{}, err
	}

	if req.Title != nil {
		subIdea.Title = *req.Title
	}
	if req.Description != nil {
		subIdea.Description = *req.Description
	}

	err = s.subIdeaRepo.DB().Transaction(func(tx *gorm.DB) error {
		if req.Title != nil {
			if err := s.titleAvailable(tx, subIdea.IdeaID, subIdea.AuthorID, subIdea.Title, subIdea.ID); err != nil {
				return err
			}
		}
		return tx.Save(&subIdea).Error
	})
	if err != nil {
		return models.SubIdea{}, err
	}
	return subIdea, nil
}

// ChangeStatus switches a sub-idea between prototyping modes
func (s *SubIdeaService) ChangeStatus(actor Actor, id string, status models.SubIdeaStatus) (models.SubIdea, error) {
	subIdea, err := s.mutableSubIdea(actor, id)
	if err != nil {
		return models.SubIdea{}, err
	}

	subIdea.Status = status
	if err := s.subIdeaRepo.DB().Model(&models.SubIdea{}).Where("id = ?", id).
		UpdateColumn("status", status).Error; err != nil {
		return models.SubIdea{}, err
	}
	return subIdea, nil
}

// DeleteSubIdea removes a sub-idea and its subtree in one transaction,
// decrementing the parent idea's counters and reversing star credits.
func (s *SubIdeaService) DeleteSubIdea(actor Actor, id string) error {
	subIdea, err := s.mutableSubIdea(actor, id)
	if err != nil {
		return err
	}

	return s.subIdeaRepo.DB().Transaction(func(tx *gorm.DB) error {
		set, err := collectDescendants(tx, []models.SubIdea{subIdea})
		if err != nil {
			return err
		}
		if err := deleteDescendants(tx, set); err != nil {
			return err
		}

		if err := adjustIdeaCounter(tx, subIdea.IdeaID, counterTotalProposals, -len(set.Proposals)); err != nil {
			return err
		}
		if err := adjustIdeaCounter(tx, subIdea.IdeaID, counterTotalPrototypes, -len(set.Prototypes)); err != nil {
			return err
		}

		return applyStarRefunds(tx, StarRefunds(set.SubIdeas, set.Proposals, set.Prototypes))
	})
}
