package repositories

import (
	"github.com/ideahub-simple/database"
	"github.com/ideahub-simple/models"
	"gorm.io/gorm"
)

// CommentRepository handles database operations for comments
type CommentRepository struct{}

// NewCommentRepository creates a new comment repository instance
func NewCommentRepository() *CommentRepository {
	return &CommentRepository{}
}

// CommentByID retrieves a comment on the given handle, so reply-parent
// checks can read inside their transaction.
func CommentByID(db *gorm.DB, id string) (models.Comment, error) {
	var comment models.Comment
	result := db.First(&comment, "id = ?", id)
	return comment, result.Error
}

// FindByTarget retrieves every live comment for a target, oldest first.
// Tree assembly happens in the service layer.
func (r *CommentRepository) FindByTarget(kind models.CommentTarget, targetID string) ([]models.Comment, error) {
	var comments []models.Comment
	result := database.DB.Preload("Author").
		Where("target_kind = ? AND target_id = ?", kind, targetID).
		Order("created_at asc").
		Find(&comments)
	return comments, result.Error
}

// DB returns the database instance
func (r *CommentRepository) DB() *gorm.DB {
	return database.DB
}
