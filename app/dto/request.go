package dto

// AddPhraseRequest represents a phrase creation request.
// Day is optional; an empty day means today.
type AddPhraseRequest struct {
	Texto string `json:"texto" validate:"required"`
	Day   string `json:"day,omitempty"`
}

// ListPhrasesQuery represents the query string of the list endpoint
type ListPhrasesQuery struct {
	Day string `form:"day"`
}

// DeletePhraseURI represents the path parameters of the delete endpoint
type DeletePhraseURI struct {
	Day   string `uri:"day" binding:"required"`
	Index string `uri:"idx" binding:"required"`
}
