package services

import (
	"testing"
	"time"

	"github.com/ideahub-simple/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func commentAt(id string, parentID *string, minute int) models.Comment {
	return models.Comment{
		ID:              id,
		Content:         "comment " + id,
		AuthorID:        "author-" + id,
		TargetKind:      models.CommentTargetSubIdea,
		TargetID:        "target-1",
		ParentCommentID: parentID,
		CreatedAt:       time.Date(2026, 8, 1, 12, minute, 0, 0, time.UTC),
	}
}

func TestBuildCommentTreeEmpty(t *testing.T) {
	assert.Empty(t, BuildCommentTree(nil))
}

func TestBuildCommentTreeOrdering(t *testing.T) {
	// Rows arrive oldest first, the way the repository returns them.
	rootA := "a"
	comments := []models.Comment{
		commentAt("a", nil, 0),
		commentAt("b", nil, 1),
		commentAt("a1", &rootA, 2),
		commentAt("a2", &rootA, 3),
		commentAt("c", nil, 4),
	}

	roots := BuildCommentTree(comments)
	require.Len(t, roots, 3)

	// Top-level comments come back newest first.
	assert.Equal(t, "c", roots[0].ID)
	assert.Equal(t, "b", roots[1].ID)
	assert.Equal(t, "a", roots[2].ID)

	// Replies keep chronological order.
	require.Len(t, roots[2].Replies, 2)
	assert.Equal(t, "a1", roots[2].Replies[0].ID)
	assert.Equal(t, "a2", roots[2].Replies[1].ID)
	assert.Empty(t, roots[0].Replies)
}

func TestBuildCommentTreeDeepNesting(t *testing.T) {
	root := "r"
	level1 := "r1"
	level2 := "r2"
	comments := []models.Comment{
		commentAt("r", nil, 0),
		commentAt("r1", &root, 1),
		commentAt("r2", &level1, 2),
		commentAt("r3", &level2, 3),
	}

	roots := BuildCommentTree(comments)
	require.Len(t, roots, 1)

	node := roots[0]
	for _, wantID := range []string{"r1", "r2", "r3"} {
		require.Len(t, node.Replies, 1)
		node = node.Replies[0]
		assert.Equal(t, wantID, node.ID)
	}
	assert.Empty(t, node.Replies)
}

func TestBuildCommentTreeDropsOrphans(t *testing.T) {
	missing := "gone"
	comments := []models.Comment{
		commentAt("a", nil, 0),
		commentAt("orphan", &missing, 1),
	}

	roots := BuildCommentTree(comments)
	require.Len(t, roots, 1)
	assert.Equal(t, "a", roots[0].ID)
	assert.Empty(t, roots[0].Replies)

	// The total reported to clients counts rendered nodes, not raw rows,
	// so a dropped orphan never inflates it.
	assert.Equal(t, 1, countCommentNodes(roots))
}

func TestCountCommentNodes(t *testing.T) {
	assert.Zero(t, countCommentNodes(nil))

	root := "r"
	level1 := "r1"
	comments := []models.Comment{
		commentAt("r", nil, 0),
		commentAt("r1", &root, 1),
		commentAt("r2", &level1, 2),
		commentAt("b", nil, 3),
	}

	roots := BuildCommentTree(comments)
	assert.Equal(t, 4, countCommentNodes(roots), "count spans all depths")
}

func TestBuildCommentTreeStripsPassword(t *testing.T) {
	c := commentAt("a", nil, 0)
	c.Author = models.User{ID: "author-a", Name: "Ada", Password: "hash"}

	roots := BuildCommentTree([]models.Comment{c})
	require.Len(t, roots, 1)
	require.NotNil(t, roots[0].Author)
	assert.Equal(t, "Ada", roots[0].Author.Name)
	assert.Empty(t, roots[0].Author.Password)
}
