package models

import (
	"time"

	"gorm.io/gorm"
)

// SubIdeaStatus tells whether the sub-idea is open for outside proposals or
// being prototyped by its own author.
type SubIdeaStatus string

const (
	SubIdeaStatusOpenForPrototyping SubIdeaStatus = "open_for_prototyping"
	SubIdeaStatusSelfPrototyping    SubIdeaStatus = "self_prototyping"
)

// SubIdea is a concrete framing of part of an Idea. The parent Idea must be
// open at creation time; the title is unique case-insensitively per
// (idea, author).
type SubIdea struct {
	ID          string         `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Title       string         `json:"title" gorm:"not null"`
	Description string         `json:"description" gorm:"not null"`
	Status      SubIdeaStatus  `json:"status" gorm:"type:varchar(25);default:'open_for_prototyping'"`
	AuthorID    string         `json:"authorId" gorm:"type:uuid;not null;index"`
	IdeaID      string         `json:"ideaId" gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Author User `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	Idea   Idea `json:"idea,omitempty" gorm:"foreignKey:IdeaID;constraint:OnDelete:CASCADE"`
}
