package services

import (
	"errors"

	"github.com/ideahub-simple/dto"
	"github.com/ideahub-simple/models"
	"github.com/ideahub-simple/repositories"
	"github.com/ideahub-simple/utils"
	"gorm.io/gorm"
)

// PrototypeService handles business logic for prototypes and their teams
type PrototypeService struct {
	prototypeRepo *repositories.PrototypeRepository
	proposalRepo  *repositories.ProposalRepository
	subIdeaRepo   *repositories.SubIdeaRepository
	userRepo      *repositories.UserRepository
	voteRepo      *repositories.VoteRepository
}

// NewPrototypeService creates a new prototype service instance
func NewPrototypeService() *PrototypeService {
	return &PrototypeService{
		prototypeRepo: repositories.NewPrototypeRepository(),
		proposalRepo:  repositories.NewProposalRepository(),
		subIdeaRepo:   repositories.NewSubIdeaRepository(),
		userRepo:      repositories.NewUserRepository(),
		voteRepo:      repositories.NewVoteRepository(),
	}
}

// ideaIDForProposal resolves the grandparent idea of a proposal.
func (s *PrototypeService) ideaIDForProposal(proposal models.Proposal) (string, error) {
	subIdea, err := s.subIdeaRepo.FindByID(proposal.SubIdeaID)
	if err != nil {
		return "", err
	}
	return subIdea.IdeaID, nil
}

// SubmitPrototype attaches a prototype to an accepted proposal. The parent
// status check, the one-per-author check, the insert, the team rows, the
// idea counter increment and the star credit all run on one transaction.
func (s *PrototypeService) SubmitPrototype(actor Actor, proposalID string, req dto.SubmitPrototypeRequest) (models.Prototype, error) {
	if !utils.IsValidHTTPURL(req.ImageURL) {
		return models.Prototype{}, utils.NewValidationError("imageUrl must be a valid http(s) URL")
	}
	if req.LiveURL != nil && !utils.IsValidHTTPURL(*req.LiveURL) {
		return models.Prototype{}, utils.NewValidationError("liveUrl must be a valid http(s) URL")
	}

	// Author is implicitly on the team; dedupe the requested members.
	memberIDs := map[string]bool{actor.ID: true}
	for _, id := range req.Team {
		memberIDs[id] = true
	}

	prototype := models.Prototype{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		LiveURL:     req.LiveURL,
		AuthorID:    actor.ID,
		ProposalID:  proposalID,
	}

	err := s.prototypeRepo.DB().Transaction(func(tx *gorm.DB) error {
		proposal, err := proposalAcceptedForPrototype(tx, proposalID)
		if err != nil {
			return err
		}

		existing, err := repositories.PrototypeExistsForAuthor(tx, actor.ID, proposalID)
		if err != nil {
			return err
		}
		if existing {
			return utils.NewConflictError("You already have a prototype for this proposal")
		}

		ids := make([]string, 0, len(memberIDs))
		for id := range memberIDs {
			ids = append(ids, id)
		}
		known, err := repositories.CountExistingUsers(tx, ids)
		if err != nil {
			return err
		}
		if known != int64(len(ids)) {
			return utils.NewValidationError("One or more team members do not exist")
		}

		if err := tx.Create(&prototype).Error; err != nil {
			return err
		}
		for _, userID := range ids {
			member := models.PrototypeTeamMember{PrototypeID: prototype.ID, UserID: userID}
			if err := tx.Create(&member).Error; err != nil {
				return err
			}
		}

		subIdea, err := subIdeaForChild(tx, proposal.SubIdeaID)
		if err != nil {
			return err
		}
		if err := adjustIdeaCounter(tx, subIdea.IdeaID, counterTotalPrototypes, 1); err != nil {
			return err
		}
		return creditStars(tx, actor.ID, StarsPrototypeCreation)
	})
	if err != nil {
		return models.Prototype{}, err
	}
	return prototype, nil
}

// ListPrototypes retrieves prototypes with pagination and filtering
func (s *PrototypeService) ListPrototypes(filter dto.PrototypeFilter) ([]models.Prototype, utils.Pagination, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = 10
	}
	prototypes, totalCount, err := s.prototypeRepo.FindWithPagination(filter)
	if err != nil {
		return nil, utils.Pagination{}, err
	}
	return prototypes, utils.NewPagination(filter.Page, filter.Limit, totalCount), nil
}

// GetPrototype retrieves one prototype with its team and vote aggregate
func (s *PrototypeService) GetPrototype(id string) (dto.PrototypeDetail, error) {
	prototype, err := s.prototypeRepo.FindByIDWithTeam(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.PrototypeDetail{}, utils.NewNotFoundError("Prototype not found")
		}
		return dto.PrototypeDetail{}, err
	}
	counts, err := s.voteRepo.CountsForTarget(models.VoteTargetPrototype, id)
	if err != nil {
		return dto.PrototypeDetail{}, err
	}
	return dto.PrototypeDetail{Prototype: prototype, VoteCounts: counts}, nil
}

// UpdatePrototype applies partial changes; author or any team member
func (s *PrototypeService) UpdatePrototype(actor Actor, id string, req dto.UpdatePrototypeRequest) (models.Prototype, error) {
	prototype, err := s.prototypeRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Prototype{}, utils.NewNotFoundError("Prototype not found")
		}
		return models.Prototype{}, err
	}

	isMember, err := s.prototypeRepo.IsTeamMember(id, actor.ID)
	if err != nil {
		return models.Prototype{}, err
	}
	if !CanUpdatePrototype(actor, prototype, isMember) {
		return models.Prototype{}, utils.NewForbiddenError("Only the author or a team member can update this prototype")
	}

	if req.ImageURL != nil && !utils.IsValidHTTPURL(*req.ImageURL) {
		return models.Prototype{}, utils.NewValidationError("imageUrl must be a valid http(s) URL")
	}
	if req.LiveURL != nil && !utils.IsValidHTTPURL(*req.LiveURL) {
		return models.Prototype{}, utils.NewValidationError("liveUrl must be a valid http(s) URL")
	}

	if req.Title != nil {
		prototype.Title = *req.Title
	}
	if req.Description != nil {
		prototype.Description = *req.Description
	}
	if req.ImageURL != nil {
		prototype.ImageURL = *req.ImageURL
	}
	if req.LiveURL != nil {
		prototype.LiveURL = req.LiveURL
	}

	if err := s.prototypeRepo.DB().Save(&prototype).Error; err != nil {
		return models.Prototype{}, err
	}
	return prototype, nil
}

// AddTeamMember adds a user to the prototype team, author only
func (s *PrototypeService) AddTeamMember(actor Actor, prototypeID, userID string) error {
	prototype, err := s.prototypeRepo.FindByID(prototypeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NewNotFoundError("Prototype not found")
		}
		return err
	}
	if !CanAddTeamMember(actor, prototype) {
		return utils.NewForbiddenError("Only the prototype author can add team members")
	}

	if _, err := s.userRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NewNotFoundError("User not found")
		}
		return err
	}

	isMember, err := s.prototypeRepo.IsTeamMember(prototypeID, userID)
	if err != nil {
		return err
	}
	if isMember {
		return utils.NewConflictError("User is already on the team")
	}

	member := models.PrototypeTeamMember{PrototypeID: prototypeID, UserID: userID}
	return s.prototypeRepo.DB().Create(&member).Error
}

// RemoveTeamMember removes a membership; the author or the member themself,
// and never the author's own row
func (s *PrototypeService) RemoveTeamMember(actor Actor, prototypeID, userID string) error {
	prototype, err := s.prototypeRepo.FindByID(prototypeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NewNotFoundError("Prototype not found")
		}
		return err
	}
	if !CanRemoveTeamMember(actor, prototype, userID) {
		if userID == prototype.AuthorID {
			return utils.NewConflictError("The prototype author cannot be removed from the team")
		}
		return utils.NewForbiddenError("Only the author or the member themself can remove this membership")
	}

	isMember, err := s.prototypeRepo.IsTeamMember(prototypeID, userID)
	if err != nil {
		return err
	}
	if !isMember {
		return utils.NewNotFoundError("User is not on the team")
	}

	return s.prototypeRepo.DB().
		Where("prototype_id = ? AND user_id = ?", prototypeID, userID).
		Delete(&models.PrototypeTeamMember{}).Error
}

// DeletePrototype removes a prototype, its team, votes and comments in one
// transaction, decrementing the ancestor idea's counter and reversing the
// author's star credit.
func (s *PrototypeService) DeletePrototype(actor Actor, id string) error {
	prototype, err := s.prototypeRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NewNotFoundError("Prototype not found")
		}
		return err
	}
	if !CanDeletePrototype(actor, prototype) {
		return utils.NewForbiddenError("You are not allowed to delete this prototype")
	}

	proposal, err := s.proposalRepo.FindByID(prototype.ProposalID)
	if err != nil {
		return err
	}
	ideaID, err := s.ideaIDForProposal(proposal)
	if err != nil {
		return err
	}

	return s.prototypeRepo.DB().Transaction(func(tx *gorm.DB) error {
		set := descendantSet{Prototypes: []models.Prototype{prototype}}
		if err := deleteDescendants(tx, set); err != nil {
			return err
		}
		if err := adjustIdeaCounter(tx, ideaID, counterTotalPrototypes, -1); err != nil {
			return err
		}
		return debitStars(tx, prototype.AuthorID, StarsPrototypeCreation)
	})
}
