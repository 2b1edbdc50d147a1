package dto

import (
	"time"

	"github.com/ideahub-simple/models"
)

// CreateCommentRequest represents the request payload for posting a comment
// or a reply
type CreateCommentRequest struct {
	Content         string  `json:"content" binding:"required"`
	ParentCommentID *string `json:"parentCommentId" binding:"omitempty,uuid"`
}

// CommentNode is one node of the rendered reply tree
type CommentNode struct {
	ID        string         `json:"id"`
	Content   string         `json:"content"`
	AuthorID  string         `json:"authorId"`
	Author    *models.User   `json:"author,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
	Replies   []*CommentNode `json:"replies"`
}

// CommentTreeResponse carries the full tree plus the count across all depths
type CommentTreeResponse struct {
	Comments   []*CommentNode `json:"comments"`
	TotalCount int            `json:"totalCount"`
}
