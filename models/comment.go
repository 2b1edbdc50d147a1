package models

import (
	"time"

	"gorm.io/gorm"
)

// CommentTarget tags the entity kind a comment thread belongs to. Comments
// only attach to sub-ideas and prototypes.
type CommentTarget string

const (
	CommentTargetSubIdea   CommentTarget = "subidea"
	CommentTargetPrototype CommentTarget = "prototype"
)

// Comment is one node of a reply tree scoped to a single target entity.
// Top-level comments have a nil ParentCommentID; a reply's parent must
// belong to the same target.
type Comment struct {
	ID              string         `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Content         string         `json:"content" gorm:"not null"`
	AuthorID        string         `json:"authorId" gorm:"type:uuid;not null;index"`
	TargetKind      CommentTarget  `json:"targetKind" gorm:"type:varchar(10);not null;index:idx_comment_target"`
	TargetID        string         `json:"targetId" gorm:"type:uuid;not null;index:idx_comment_target"`
	ParentCommentID *string        `json:"parentCommentId" gorm:"type:uuid;default:null;index"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
	DeletedAt       gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Author User `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
}
