package dto

// PhraseResponse represents today's randomly selected phrase
type PhraseResponse struct {
	Dia     string `json:"dia"`
	Mensaje string `json:"mensaje"`
}

// ListPhrasesResponse represents the phrases of one day
type ListPhrasesResponse struct {
	Dia    string   `json:"dia"`
	Total  int      `json:"total"`
	Frases []string `json:"frases"`
}

// AddPhraseResponse represents phrase creation response
type AddPhraseResponse struct {
	OK    bool   `json:"ok"`
	Dia   string `json:"dia"`
	Total int    `json:"total"`
}

// DeletePhraseResponse represents phrase deletion response
type DeletePhraseResponse struct {
	OK        bool   `json:"ok"`
	Dia       string `json:"dia"`
	Eliminada string `json:"eliminada"`
	Total     int    `json:"total"`
}

// StatusResponse represents a health check response
type StatusResponse struct {
	Status string `json:"status"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string            `json:"error"`
	Details map[string]string `json:"details,omitempty"`
}
