package repositories

import (
	"github.com/ideahub-simple/database"
	"github.com/ideahub-simple/dto"
	"github.com/ideahub-simple/models"
	"gorm.io/gorm"
)

// IdeaRepository handles database operations for ideas
type IdeaRepository struct{}

// NewIdeaRepository creates a new idea repository instance
func NewIdeaRepository() *IdeaRepository {
	return &IdeaRepository{}
}

// FindByID retrieves an idea by its ID
func (r *IdeaRepository) FindByID(id string) (models.Idea, error) {
	var idea models.Idea
	result := database.DB.First(&idea, "id = ?", id)
	return idea, result.Error
}

// FindByIDWithAuthor retrieves an idea with its author preloaded
func (r *IdeaRepository) FindByIDWithAuthor(id string) (models.Idea, error) {
	var idea models.Idea
	result := database.DB.Preload("Author").First(&idea, "id = ?", id)
	return idea, result.Error
}

// FindWithPagination retrieves ideas with pagination, filtering and sorting
func (r *IdeaRepository) FindWithPagination(filter dto.IdeaFilter) ([]models.Idea, int64, error) {
	var ideas []models.Idea
	var totalCount int64

	db := database.DB.Model(&models.Idea{})

	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}
	if filter.Type != "" {
		db = db.Where("type = ?", filter.Type)
	}
	if filter.AuthorID != "" {
		db = db.Where("author_id = ?", filter.AuthorID)
	}
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		db = db.Where("(title ILIKE ? OR description ILIKE ?)", searchPattern, searchPattern)
	}

	if err := db.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	orderString := filter.SortBy + " " + filter.SortOrder
	if err := db.Order(orderString).Limit(filter.Limit).Offset(offset).Find(&ideas).Error; err != nil {
		return nil, 0, err
	}

	return ideas, totalCount, nil
}

// CountByAuthorID counts live ideas authored by a user
func (r *IdeaRepository) CountByAuthorID(authorID string) (int64, error) {
	var count int64
	result := database.DB.Model(&models.Idea{}).Where("author_id = ?", authorID).Count(&count)
	return count, result.Error
}

// DB returns the database instance
func (r *IdeaRepository) DB() *gorm.DB {
	return database.DB
}
