package dto

type APIErrorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}
