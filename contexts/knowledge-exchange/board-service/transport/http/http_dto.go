package httptransport

// QuestionRequest is the request body for question creation.
type QuestionRequest struct {
	Content string `json:"content"`
}

// QuestionEditRequest is the request body for question edits.
type QuestionEditRequest struct {
	Content string `json:"content"`
}

// QuestionResponse acknowledges a question mutation.
type QuestionResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// QuestionDetailsResponse is one row of a question listing.
type QuestionDetailsResponse struct {
	ID      string `json:"id"`
	Content string `json:"content"`
}

// AnswerRequest is the request body for answer creation.
type AnswerRequest struct {
	Answer string `json:"answer"`
}

// AnswerEditRequest is the request body for answer edits.
type AnswerEditRequest struct {
	Content string `json:"content"`
}

// AnswerResponse acknowledges an answer mutation.
type AnswerResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// AnswerDeleteResponse acknowledges an answer deletion.
type AnswerDeleteResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// AnswerDetailsResponse is one row of an answer listing; the parent
// question's content is echoed next to each answer.
type AnswerDetailsResponse struct {
	ID              string `json:"id"`
	QuestionContent string `json:"questionContent"`
	AnswerContent   string `json:"answerContent"`
}

// SubjectDTO exposes the identity/ownership view of a record for the
// authorization gate's subject lookups.
type SubjectDTO struct {
	ID         string `json:"id"`
	OwnerID    string `json:"owner_id"`
	QuestionID string `json:"question_id,omitempty"`
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
