package repositories

import (
	"github.com/ideahub-simple/database"
	"github.com/ideahub-simple/dto"
	"github.com/ideahub-simple/models"
	"gorm.io/gorm"
)

// ProposalRepository handles database operations for proposals
type ProposalRepository struct{}

// NewProposalRepository creates a new proposal repository instance
func NewProposalRepository() *ProposalRepository {
	return &ProposalRepository{}
}

// FindByID retrieves a proposal by its ID
func (r *ProposalRepository) FindByID(id string) (models.Proposal, error) {
	var proposal models.Proposal
	result := database.DB.First(&proposal, "id = ?", id)
	return proposal, result.Error
}

// FindByIDWithAuthor retrieves a proposal with its author preloaded
func (r *ProposalRepository) FindByIDWithAuthor(id string) (models.Proposal, error) {
	var proposal models.Proposal
	result := database.DB.Preload("Author").First(&proposal, "id = ?", id)
	return proposal, result.Error
}

// ProposalsBySubIdeaIDs retrieves all live proposals under the given
// sub-ideas on the given handle.
func ProposalsBySubIdeaIDs(db *gorm.DB, subIdeaIDs []string) ([]models.Proposal, error) {
	var proposals []models.Proposal
	if len(subIdeaIDs) == 0 {
		return proposals, nil
	}
	result := db.Where("sub_idea_id IN ?", subIdeaIDs).Find(&proposals)
	return proposals, result.Error
}

// FindWithPagination retrieves proposals with pagination and filtering
func (r *ProposalRepository) FindWithPagination(filter dto.ProposalFilter) ([]models.Proposal, int64, error) {
	var proposals []models.Proposal
	var totalCount int64

	db := database.DB.Model(&models.Proposal{})
	if filter.SubIdeaID != "" {
		db = db.Where("sub_idea_id = ?", filter.SubIdeaID)
	}
	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}

	if err := db.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	if err := db.Order("created_at desc").Limit(filter.Limit).Offset(offset).Find(&proposals).Error; err != nil {
		return nil, 0, err
	}

	return proposals, totalCount, nil
}

// HasPendingProposal checks on the given handle whether the author already
// has a pending proposal under the sub-idea.
func HasPendingProposal(db *gorm.DB, subIdeaID, authorID string) (bool, error) {
	var count int64
	err := db.Model(&models.Proposal{}).
		Where("sub_idea_id = ? AND author_id = ? AND status = ?", subIdeaID, authorID, models.ProposalStatusPending).
		Count(&count).Error
	return count > 0, err
}

// CountByAuthorID counts live proposals authored by a user
func (r *ProposalRepository) CountByAuthorID(authorID string) (int64, error) {
	var count int64
	result := database.DB.Model(&models.Proposal{}).Where("author_id = ?", authorID).Count(&count)
	return count, result.Error
}

// DB returns the database instance
func (r *ProposalRepository) DB() *gorm.DB {
	return database.DB
}
