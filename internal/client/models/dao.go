package models

// CreateProposalRequest is the body of POST /dao/proposals.
type CreateProposalRequest struct {
	Title               string `json:"title"`
	Description         string `json:"description"`
	ProposalType        string `json:"proposal_type"`
	VotingDurationHours int64  `json:"voting_duration_hours"`
}

// Proposal is a DAO governance proposal. Creation answers with the id,
// status and voting deadline; listing fills in the rest.
type Proposal struct {
	ProposalID   string `json:"proposal_id"`
	Title        string `json:"title,omitempty"`
	Description  string `json:"description,omitempty"`
	ProposalType string `json:"proposal_type,omitempty"`
	Status       string `json:"status"`
	VotesFor     int64  `json:"votes_for,omitempty"`
	VotesAgainst int64  `json:"votes_against,omitempty"`
	VotingEndsAt string `json:"voting_ends_at"`
}

// Health is returned by GET /health.
type Health struct {
	Status    string `json:"status"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}
