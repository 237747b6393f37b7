package domain

import "time"

type QuizStatus string

const (
	QuizStatusOpen   QuizStatus = "OPEN"
	QuizStatusClosed QuizStatus = "CLOSED"
)

type Quiz struct {
	ID        int32      `json:"id"`
	Title     string     `json:"title"`
	Status    QuizStatus `json:"status"`
	CreatedBy int32      `json:"created_by"`
	ExpiresOn *time.Time `json:"expires_on,omitempty"`
	CreatedOn time.Time  `json:"created_on"`
}
