package dto

// DraftResponse carries the notification email draft.
type DraftResponse struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
	Mailto  string `json:"mailto"`
}
