package repositories

import (
	"github.com/ideahub-simple/database"
	"github.com/ideahub-simple/dto"
	"github.com/ideahub-simple/models"
	"gorm.io/gorm"
)

// PrototypeRepository handles database operations for prototypes and their teams
type PrototypeRepository struct{}

// NewPrototypeRepository creates a new prototype repository instance
func NewPrototypeRepository() *PrototypeRepository {
	return &PrototypeRepository{}
}

// FindByID retrieves a prototype by its ID
func (r *PrototypeRepository) FindByID(id string) (models.Prototype, error) {
	var prototype models.Prototype
	result := database.DB.First(&prototype, "id = ?", id)
	return prototype, result.Error
}

// FindByIDWithTeam retrieves a prototype with its team and author preloaded
func (r *PrototypeRepository) FindByIDWithTeam(id string) (models.Prototype, error) {
	var prototype models.Prototype
	result := database.DB.Preload("Author").Preload("TeamMembers.User").First(&prototype, "id = ?", id)
	return prototype, result.Error
}

// PrototypesByProposalIDs retrieves all live prototypes under the given
// proposals on the given handle.
func PrototypesByProposalIDs(db *gorm.DB, proposalIDs []string) ([]models.Prototype, error) {
	var prototypes []models.Prototype
	if len(proposalIDs) == 0 {
		return prototypes, nil
	}
	result := db.Where("proposal_id IN ?", proposalIDs).Find(&prototypes)
	return prototypes, result.Error
}

// FindWithPagination retrieves prototypes with pagination and filtering
func (r *PrototypeRepository) FindWithPagination(filter dto.PrototypeFilter) ([]models.Prototype, int64, error) {
	var prototypes []models.Prototype
	var totalCount int64

	db := database.DB.Model(&models.Prototype{})
	if filter.ProposalID != "" {
		db = db.Where("proposal_id = ?", filter.ProposalID)
	}

	if err := db.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	if err := db.Order("created_at desc").Limit(filter.Limit).Offset(offset).Find(&prototypes).Error; err != nil {
		return nil, 0, err
	}

	return prototypes, totalCount, nil
}

// PrototypeExistsForAuthor checks on the given handle whether the author
// already submitted a prototype for the proposal.
func PrototypeExistsForAuthor(db *gorm.DB, authorID, proposalID string) (bool, error) {
	var count int64
	err := db.Model(&models.Prototype{}).
		Where("author_id = ? AND proposal_id = ?", authorID, proposalID).
		Count(&count).Error
	return count > 0, err
}

// IsTeamMember checks whether a user belongs to a prototype's team
func (r *PrototypeRepository) IsTeamMember(prototypeID, userID string) (bool, error) {
	var count int64
	err := database.DB.Model(&models.PrototypeTeamMember{}).
		Where("prototype_id = ? AND user_id = ?", prototypeID, userID).
		Count(&count).Error
	return count > 0, err
}

// CountByAuthorID counts live prototypes authored by a user
func (r *PrototypeRepository) CountByAuthorID(authorID string) (int64, error) {
	var count int64
	result := database.DB.Model(&models.Prototype{}).Where("author_id = ?", authorID).Count(&count)
	return count, result.Error
}

// DB returns the database instance
func (r *PrototypeRepository) DB() *gorm.DB {
	return database.DB
}
