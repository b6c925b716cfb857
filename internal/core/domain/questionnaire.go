package domain

import (
	"errors"
	"time"
)

var ErrQuestionnaireNotFound = errors.New("questionnaire not found")
var ErrNoActiveQuestionnaire = errors.New("no active questionnaire")

// Questionnaire is an evaluation form authored by a department head.
//
// Lifecycle: created inactive (draft), made active by an explicit activation.
// A questionnaire returns to draft only by being superseded, when another
// questionnaire in the same department becoming active. Invariant: per
// department, at most one questionnaire is active at any time.
type Questionnaire struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Content      string    `json:"content" bson:"content"`
	DepartmentID string    `json:"department_id" bson:"department_id"`
	CreatedBy    string    `json:"created_by" bson:"created_by"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	IsActive     bool      `json:"is_active" bson:"is_active"`
}
