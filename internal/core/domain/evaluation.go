package domain

// EvaluationResponse is a single public submission against a questionnaire
// that was active at the instant of submission. Responses are immutable and
// owned by their questionnaire (cascade-deleted with it).
type EvaluationResponse struct {
	ID              string `json:"id" bson:"_id,omitempty"`
	QuestionnaireID string `json:"questionnaire_id" bson:"questionnaire_id"`
	Name            string `json:"name,omitempty" bson:"name,omitempty"`
	Date            string `json:"date" bson:"date"`
	Time            string `json:"time" bson:"time"`
	ClientCategory  string `json:"client_category" bson:"client_category"`
	Ratings         []int  `json:"ratings" bson:"ratings"`
	FeedbackType    string `json:"feedback_type" bson:"feedback_type"`
	FeedbackMessage string `json:"feedback_message" bson:"feedback_message"`
}
