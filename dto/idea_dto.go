package dto

// CreateIdeaRequest represents the request payload for creating a new idea
type CreateIdeaRequest struct {
	Title                string   `json:"title" binding:"required"`
	Description          string   `json:"description" binding:"required"`
	Type                 string   `json:"type" binding:"required,oneof=ideation solution_request"`
	PotentialDollarValue *float64 `json:"potentialDollarValue"`
}

// UpdateIdeaRequest represents the request payload for updating an idea.
// Nil fields are left untouched.
type UpdateIdeaRequest struct {
	Title                *string  `json:"title"`
	Description          *string  `json:"description"`
	PotentialDollarValue *float64 `json:"potentialDollarValue"`
}

// IdeaFilter represents list filter criteria for ideas
type IdeaFilter struct {
	Status    string
	Type      string
	AuthorID  string
	Search    string
	SortBy    string
	SortOrder string
	Page      int
	Limit     int
}
