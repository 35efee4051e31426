package models

// NewsResponse is the decoded feed document
type NewsResponse struct {
	Articles []Article `json:"articles"`
	Status   string    `json:"status"`
}
