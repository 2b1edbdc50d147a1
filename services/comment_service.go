package services

import (
	"errors"
	"sort"

	"github.com/ideahub-simple/dto"
	"github.com/ideahub-simple/models"
	"github.com/ideahub-simple/repositories"
	"github.com/ideahub-simple/utils"
	"gorm.io/gorm"
)

// CommentService handles threaded comments on sub-ideas and prototypes
type CommentService struct {
	commentRepo *repositories.CommentRepository
}

// NewCommentService creates a new comment service instance
func NewCommentService() *CommentService {
	return &CommentService{
		commentRepo: repositories.NewCommentRepository(),
	}
}

// commentTargetExists verifies the polymorphic comment target.
func commentTargetExists(tx *gorm.DB, kind models.CommentTarget, targetID string) error {
	var count int64
	var err error
	switch kind {
	case models.CommentTargetSubIdea:
		err = tx.Model(&models.SubIdea{}).Where("id = ?", targetID).Count(&count).Error
	case models.CommentTargetPrototype:
		err = tx.Model(&models.Prototype{}).Where("id = ?", targetID).Count(&count).Error
	default:
		return utils.NewValidationError("Unknown comment target")
	}
	if err != nil {
		return err
	}
	if count == 0 {
		return utils.NewNotFoundError("Comment target not found")
	}
	return nil
}

// CreateComment posts a top-level comment or a reply. A reply's parent must
// exist and belong to the same target entity.
func (s *CommentService) CreateComment(actor Actor, kind models.CommentTarget, targetID string, req dto.CreateCommentRequest) (models.Comment, error) {
	comment := models.Comment{
		Content:         req.Content,
		AuthorID:        actor.ID,
		TargetKind:      kind,
		TargetID:        targetID,
		ParentCommentID: req.ParentCommentID,
	}

	err := s.commentRepo.DB().Transaction(func(tx *gorm.DB) error {
		if err := commentTargetExists(tx, kind, targetID); err != nil {
			return err
		}

		if req.ParentCommentID != nil {
			parent, err := repositories.CommentByID(tx, *req.ParentCommentID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return utils.NewNotFoundError("Parent comment not found")
				}
				return err
			}
			if parent.TargetKind != kind || parent.TargetID != targetID {
				return utils.NewValidationError("Parent comment belongs to a different target")
			}
		}

		return tx.Create(&comment).Error
	})
	if err != nil {
		return models.Comment{}, err
	}
	return comment, nil
}

// GetCommentTree returns the full reply tree for a target plus the total
// comment count across all depths. The count covers the nodes actually
// rendered, so replies dropped for a missing parent are not counted.
func (s *CommentService) GetCommentTree(kind models.CommentTarget, targetID string) (dto.CommentTreeResponse, error) {
	if err := commentTargetExists(s.commentRepo.DB(), kind, targetID); err != nil {
		return dto.CommentTreeResponse{}, err
	}

	comments, err := s.commentRepo.FindByTarget(kind, targetID)
	if err != nil {
		return dto.CommentTreeResponse{}, err
	}

	roots := BuildCommentTree(comments)
	return dto.CommentTreeResponse{
		Comments:   roots,
		TotalCount: countCommentNodes(roots),
	}, nil
}

// countCommentNodes counts every node placed in the tree, across all depths.
func countCommentNodes(nodes []*dto.CommentNode) int {
	total := 0
	for _, node := range nodes {
		total += 1 + countCommentNodes(node.Replies)
	}
	return total
}

// BuildCommentTree assembles flat rows into the reply tree. Input rows must
// be ordered oldest first; siblings keep that order, while the top-level
// list is reversed to newest first. Replies whose parent is missing are
// dropped rather than promoted.
func BuildCommentTree(comments []models.Comment) []*dto.CommentNode {
	nodes := make(map[string]*dto.CommentNode, len(comments))
	var roots []*dto.CommentNode

	for i := range comments {
		c := comments[i]
		node := &dto.CommentNode{
			ID:        c.ID,
			Content:   c.Content,
			AuthorID:  c.AuthorID,
			CreatedAt: c.CreatedAt,
			Replies:   []*dto.CommentNode{},
		}
		if c.Author.ID != "" {
			author := c.Author
			author.Password = ""
			node.Author = &author
		}
		nodes[c.ID] = node
	}

	for i := range comments {
		c := comments[i]
		node := nodes[c.ID]
		if c.ParentCommentID == nil {
			roots = append(roots, node)
			continue
		}
		if parent, ok := nodes[*c.ParentCommentID]; ok {
			parent.Replies = append(parent.Replies, node)
		}
	}

	sort.SliceStable(roots, func(i, j int) bool {
		return roots[i].CreatedAt.After(roots[j].CreatedAt)
	})
	return roots
}
