package models

import (
	"time"

	"gorm.io/gorm"
)

// ProposalStatus represents the review state of a proposal. The transition
// out of pending is one-way and reserved for the parent Idea's author.
type ProposalStatus string

const (
	ProposalStatusPending  ProposalStatus = "pending"
	ProposalStatusAccepted ProposalStatus = "accepted"
	ProposalStatusRejected ProposalStatus = "rejected"
)

// Proposal is a pitch to prototype a SubIdea. At most one pending proposal
// may exist per (author, subIdea); RejectionReason is set iff rejected.
type Proposal struct {
	ID              string         `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Title           string         `json:"title" gorm:"not null"`
	Description     string         `json:"description" gorm:"not null"`
	PresentationURL *string        `json:"presentationUrl" gorm:"default:null"`
	Status          ProposalStatus `json:"status" gorm:"type:varchar(10);default:'pending'"`
	RejectionReason *string        `json:"rejectionReason" gorm:"default:null"`
	AuthorID        string         `json:"authorId" gorm:"type:uuid;not null;index"`
	SubIdeaID       string         `json:"subIdeaId" gorm:"type:uuid;not null;index"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
	DeletedAt       gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Author  User    `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	SubIdea SubIdea `json:"subIdea,omitempty" gorm:"foreignKey:SubIdeaID;constraint:OnDelete:CASCADE"`
}
