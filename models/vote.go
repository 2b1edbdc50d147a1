package models

import (
	"time"
)

// VoteTarget tags the entity kind a vote or comment points at.
type VoteTarget string

const (
	VoteTargetSubIdea   VoteTarget = "subidea"
	VoteTargetProposal  VoteTarget = "proposal"
	VoteTargetPrototype VoteTarget = "prototype"
)

// Vote values
const (
	VoteUp   = 1
	VoteDown = -1
)

// Vote records a single user's vote on one target. The (user, kind, target)
// triple is unique; toggling the same value off removes the row outright, so
// votes are hard deleted rather than soft deleted.
type Vote struct {
	ID         string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Value      int        `json:"value" gorm:"not null"`
	UserID     string     `json:"userId" gorm:"type:uuid;not null;uniqueIndex:idx_user_target_vote"`
	TargetKind VoteTarget `json:"targetKind" gorm:"type:varchar(10);not null;uniqueIndex:idx_user_target_vote"`
	TargetID   string     `json:"targetId" gorm:"type:uuid;not null;uniqueIndex:idx_user_target_vote;index"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

// VoteCounts is the aggregate returned after every vote transition.
type VoteCounts struct {
	Upvotes   int64 `json:"upvotes"`
	Downvotes int64 `json:"downvotes"`
	Total     int64 `json:"total"`
}
