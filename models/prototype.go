package models

import (
	"time"

	"gorm.io/gorm"
)

// Prototype is a delivered implementation of an accepted Proposal, built by
// a team. The author is always a team member and can never be removed.
type Prototype struct {
	ID          string         `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Title       string         `json:"title" gorm:"not null"`
	Description string         `json:"description" gorm:"not null"`
	ImageURL    string         `json:"imageUrl" gorm:"not null"`
	LiveURL     *string        `json:"liveUrl" gorm:"default:null"`
	AuthorID    string         `json:"authorId" gorm:"type:uuid;not null;index"`
	ProposalID  string         `json:"proposalId" gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Author      User                  `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	Proposal    Proposal              `json:"proposal,omitempty" gorm:"foreignKey:ProposalID;constraint:OnDelete:CASCADE"`
	TeamMembers []PrototypeTeamMember `json:"teamMembers,omitempty" gorm:"foreignKey:PrototypeID;constraint:OnDelete:CASCADE"`
}

// PrototypeTeamMember links a user to a prototype's team. The author row is
// inserted in the same transaction as the prototype itself. Rows are hard
// deleted so the unique index never collides with a removed membership.
type PrototypeTeamMember struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	PrototypeID string    `json:"prototypeId" gorm:"type:uuid;not null;uniqueIndex:idx_prototype_member"`
	UserID      string    `json:"userId" gorm:"type:uuid;not null;uniqueIndex:idx_prototype_member"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	// Relations
	User User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// TableName sets the table name for PrototypeTeamMember model
func (PrototypeTeamMember) TableName() string {
	return "prototype_team_members"
}
