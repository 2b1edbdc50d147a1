package models

import (
	"time"

	"gorm.io/gorm"
)

// IdeaType represents the flavor of a top-level idea
type IdeaType string

const (
	IdeaTypeIdeation        IdeaType = "ideation"
	IdeaTypeSolutionRequest IdeaType = "solution_request"
)

// IdeaStatus represents the idea lifecycle. Closing is one-way.
type IdeaStatus string

const (
	IdeaStatusOpen   IdeaStatus = "open"
	IdeaStatusClosed IdeaStatus = "closed"
)

// Idea is the root of the contribution hierarchy. TotalProposals and
// TotalPrototypes are denormalized counters over live descendants; they are
// only ever changed through atomic relative updates inside the transaction
// that mutates the descendant.
type Idea struct {
	ID                   string         `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Title                string         `json:"title" gorm:"not null"`
	Description          string         `json:"description" gorm:"not null"`
	Type                 IdeaType       `json:"type" gorm:"type:varchar(20);not null"`
	Status               IdeaStatus     `json:"status" gorm:"type:varchar(10);default:'open'"`
	PotentialDollarValue *float64       `json:"potentialDollarValue" gorm:"default:null"`
	TotalProposals       int            `json:"totalProposals" gorm:"not null;default:0"`
	TotalPrototypes      int            `json:"totalPrototypes" gorm:"not null;default:0"`
	AuthorID             string         `json:"authorId" gorm:"type:uuid;not null;index"`
	CreatedAt            time.Time      `json:"createdAt"`
	UpdatedAt            time.Time      `json:"updatedAt"`
	DeletedAt            gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Author User `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
}
