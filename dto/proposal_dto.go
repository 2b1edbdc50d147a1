package dto

// SubmitProposalRequest represents the request payload for submitting a
// proposal against a sub-idea
type SubmitProposalRequest struct {
	Title           string  `json:"title" binding:"required"`
	Description     string  `json:"description" binding:"required"`
	PresentationURL *string `json:"presentationUrl"`
}

// UpdateProposalRequest represents the request payload for updating a
// proposal while it is still pending
type UpdateProposalRequest struct {
	Title           *string `json:"title"`
	Description     *string `json:"description"`
	PresentationURL *string `json:"presentationUrl"`
}

// ReviewProposalRequest carries the idea author's accept/reject decision
type ReviewProposalRequest struct {
	Status          string  `json:"status" binding:"required,oneof=accepted rejected"`
	RejectionReason *string `json:"rejectionReason"`
}

// ProposalFilter represents list filter criteria for proposals
type ProposalFilter struct {
	SubIdeaID string
	Status    string
	Page      int
	Limit     int
}
