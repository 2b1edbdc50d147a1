package repositories

import (
	"github.com/ideahub-simple/database"
	"github.com/ideahub-simple/dto"
	"github.com/ideahub-simple/models"
	"github.com/ideahub-simple/utils"
	"gorm.io/gorm"
)

// SubIdeaRepository handles database operations for sub-ideas
type SubIdeaRepository struct{}

// NewSubIdeaRepository creates a new sub-idea repository instance
func NewSubIdeaRepository() *SubIdeaRepository {
	return &SubIdeaRepository{}
}

// FindByID retrieves a sub-idea by its ID
func (r *SubIdeaRepository) FindByID(id string) (models.SubIdea, error) {
	var subIdea models.SubIdea
	result := database.DB.First(&subIdea, "id = ?", id)
	return subIdea, result.Error
}

// FindByIDWithAuthor retrieves a sub-idea with its author preloaded
func (r *SubIdeaRepository) FindByIDWithAuthor(id string) (models.SubIdea, error) {
	var subIdea models.SubIdea
	result := database.DB.Preload("Author").First(&subIdea, "id = ?", id)
	return subIdea, result.Error
}

// SubIdeasByIdeaID retrieves all live sub-ideas under an idea on the given
// handle, so cascade deletes can read inside their transaction.
func SubIdeasByIdeaID(db *gorm.DB, ideaID string) ([]models.SubIdea, error) {
	var subIdeas []models.SubIdea
	result := db.Where("idea_id = ?", ideaID).Find(&subIdeas)
	return subIdeas, result.Error
}

// FindWithPagination retrieves sub-ideas with pagination
func (r *SubIdeaRepository) FindWithPagination(filter dto.SubIdeaFilter) ([]models.SubIdea, int64, error) {
	var subIdeas []models.SubIdea
	var totalCount int64

	db := database.DB.Model(&models.SubIdea{})
	if filter.IdeaID != "" {
		db = db.Where("idea_id = ?", filter.IdeaID)
	}

	if err := db.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	if err := db.Order("created_at desc").Limit(filter.Limit).Offset(offset).Find(&subIdeas).Error; err != nil {
		return nil, 0, err
	}

	return subIdeas, totalCount, nil
}

// TitleTakenByAuthor checks on the given handle whether the author already
// has a sub-idea with this title under the idea, case-insensitively.
// excludeID skips the row being updated.
func TitleTakenByAuthor(db *gorm.DB, ideaID, authorID, title, excludeID string) (bool, error) {
	var count int64
	query := db.Model(&models.SubIdea{}).
		Where("idea_id = ? AND author_id = ? AND LOWER(title) = ?", ideaID, authorID, utils.NormalizeTitle(title))
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}

// CountByAuthorID counts live sub-ideas authored by a user
func (r *SubIdeaRepository) CountByAuthorID(authorID string) (int64, error) {
	var count int64
	result := database.DB.Model(&models.SubIdea{}).Where("author_id = ?", authorID).Count(&count)
	return count, result.Error
}

// DB returns the database instance
func (r *SubIdeaRepository) DB() *gorm.DB {
	return database.DB
}
