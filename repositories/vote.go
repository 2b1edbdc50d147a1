package repositories

import (
	"errors"

	"github.com/ideahub-simple/database"
	"github.com/ideahub-simple/models"
	"gorm.io/gorm"
)

// VoteRepository handles database operations for votes
type VoteRepository struct{}

// NewVoteRepository creates a new vote repository instance
func NewVoteRepository() *VoteRepository {
	return &VoteRepository{}
}

// VoteByUserAndTarget retrieves a user's vote on one target on the given
// handle. A nil vote means the user has not voted.
func VoteByUserAndTarget(db *gorm.DB, userID string, kind models.VoteTarget, targetID string) (*models.Vote, error) {
	var vote models.Vote
	err := db.First(&vote, "user_id = ? AND target_kind = ? AND target_id = ?", userID, kind, targetID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &vote, nil
}

// CountsForTarget computes the vote aggregate for a target
func (r *VoteRepository) CountsForTarget(kind models.VoteTarget, targetID string) (models.VoteCounts, error) {
	return CountsForTarget(database.DB, kind, targetID)
}

// CountsForTarget computes the vote aggregate for a target on the given
// transaction handle
func CountsForTarget(db *gorm.DB, kind models.VoteTarget, targetID string) (models.VoteCounts, error) {
	var counts models.VoteCounts
	base := db.Model(&models.Vote{}).Where("target_kind = ? AND target_id = ?", kind, targetID)
	if err := base.Session(&gorm.Session{}).Where("value = ?", models.VoteUp).Count(&counts.Upvotes).Error; err != nil {
		return counts, err
	}
	if err := base.Session(&gorm.Session{}).Where("value = ?", models.VoteDown).Count(&counts.Downvotes).Error; err != nil {
		return counts, err
	}
	counts.Total = counts.Upvotes - counts.Downvotes
	return counts, nil
}

// DB returns the database instance
func (r *VoteRepository) DB() *gorm.DB {
	return database.DB
}
