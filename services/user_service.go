package services

import (
	"errors"

	"github.com/ideahub-simple/dto"
	"github.com/ideahub-simple/models"
	"github.com/ideahub-simple/repositories"
	"github.com/ideahub-simple/utils"
	"gorm.io/gorm"
)

// UserService handles contribution statistics for users
type UserService struct {
	userRepo      *repositories.UserRepository
	ideaRepo      *repositories.IdeaRepository
	subIdeaRepo   *repositories.SubIdeaRepository
	proposalRepo  *repositories.ProposalRepository
	prototypeRepo *repositories.PrototypeRepository
}

// NewUserService creates a new user service instance
func NewUserService() *UserService {
	return &UserService{
		userRepo:      repositories.NewUserRepository(),
		ideaRepo:      repositories.NewIdeaRepository(),
		subIdeaRepo:   repositories.NewSubIdeaRepository(),
		proposalRepo:  repositories.NewProposalRepository(),
		prototypeRepo: repositories.NewPrototypeRepository(),
	}
}

// ListUsers retrieves all accounts with pagination, passwords blanked.
// Reserved for admins; the route enforces the role.
func (s *UserService) ListUsers(page, limit int) ([]models.User, utils.Pagination, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}

	users, totalCount, err := s.userRepo.FindWithPagination(page, limit)
	if err != nil {
		return nil, utils.Pagination{}, err
	}
	for i := range users {
		users[i].Password = ""
	}
	return users, utils.NewPagination(page, limit, totalCount), nil
}

// GetContributionStats derives a user's live contribution counts. The
// counts reflect current rows, not historical activity, so cascade deletes
// show up here immediately.
func (s *UserService) GetContributionStats(userID string) (dto.UserStatsResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.UserStatsResponse{}, utils.NewNotFoundError("User not found")
		}
		return dto.UserStatsResponse{}, err
	}

	stats := dto.UserStatsResponse{
		UserID:       user.ID,
		Name:         user.Name,
		StarsBalance: user.StarsBalance,
	}

	if stats.Ideas, err = s.ideaRepo.CountByAuthorID(userID); err != nil {
		return dto.UserStatsResponse{}, err
	}
	if stats.SubIdeas, err = s.subIdeaRepo.CountByAuthorID(userID); err != nil {
		return dto.UserStatsResponse{}, err
	}
	if stats.Proposals, err = s.proposalRepo.CountByAuthorID(userID); err != nil {
		return dto.UserStatsResponse{}, err
	}
	if stats.Prototypes, err = s.prototypeRepo.CountByAuthorID(userID); err != nil {
		return dto.UserStatsResponse{}, err
	}

	return stats, nil
}
