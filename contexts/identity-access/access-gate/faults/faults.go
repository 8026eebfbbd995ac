package faults

import "net/http"

// Kind is the underlying authorization-failure category. Remapping changes
// the externally visible code/message per endpoint but never the kind.
type Kind string

const (
	KindNotAuthenticated Kind = "not_authenticated"
	KindSessionExpired   Kind = "session_expired"
	KindForbidden        Kind = "forbidden"
	KindSubjectNotFound  Kind = "subject_not_found"
)

// Endpoint identifies the public operation whose wording a denial must
// carry. One generic failure, nine endpoint-specific vocabularies.
type Endpoint string

const (
	EndpointQuestionCreate     Endpoint = "question-create"
	EndpointQuestionEdit       Endpoint = "question-edit"
	EndpointQuestionDelete     Endpoint = "question-delete"
	EndpointQuestionList       Endpoint = "question-list"
	EndpointQuestionListByUser Endpoint = "question-list-by-user"
	EndpointAnswerCreate       Endpoint = "answer-create"
	EndpointAnswerEdit         Endpoint = "answer-edit"
	EndpointAnswerDelete       Endpoint = "answer-delete"
	EndpointAnswerList         Endpoint = "answer-list"
)

// Denial is the public form of a denied authorization decision. It keeps
// the original kind alongside the endpoint-specific code/message pair.
type Denial struct {
	Endpoint Endpoint `json:"endpoint"`
	Kind     Kind     `json:"kind"`
	Code     string   `json:"code"`
	Message  string   `json:"message"`
}

func (d *Denial) Error() string {
	return d.Code + ": " + d.Message
}

type wording struct {
	code    string
	message string
}

// Per-endpoint wording for each failure kind an endpoint can produce.
// Codes and messages are the platform's public API contract; do not edit
// without a contract version bump.
var table = map[Endpoint]map[Kind]wording{
	EndpointQuestionCreate: {
		KindSessionExpired: {"ATHR-002", "User is signed out.Sign in first to post a question"},
	},
	EndpointQuestionEdit: {
		KindSessionExpired:  {"ATHR-002", "User is signed out.Sign in first to edit the question"},
		KindForbidden:       {"ATHR-003", "Only the question owner can edit the question"},
		KindSubjectNotFound: {"QUES-001", "Entered question uuid does not exist"},
	},
	EndpointQuestionDelete: {
		KindSessionExpired:  {"ATHR-002", "User is signed out.Sign in first to delete a question"},
		KindForbidden:       {"ATHR-003", "Only the question owner or admin can delete the question"},
		KindSubjectNotFound: {"QUES-001", "Entered question uuid does not exist"},
	},
	EndpointQuestionList: {
		KindSessionExpired: {"ATHR-002", "User is signed out.Sign in first to get all questions"},
	},
	EndpointQuestionListByUser: {
		KindSessionExpired:  {"ATHR-002", "User is signed out.Sign in first to get all questions posted by a specific user"},
		KindSubjectNotFound: {"USR-001", "User with entered uuid whose question details are to be seen does not exist"},
	},
	EndpointAnswerCreate: {
		KindSessionExpired:  {"ATHR-002", "User is signed out.Sign in first to post an answer"},
		KindSubjectNotFound: {"QUES-001", "The question entered is invalid"},
	},
	EndpointAnswerEdit: {
		KindSessionExpired:  {"ATHR-002", "User is signed out.Sign in first to edit an answer"},
		KindForbidden:       {"ATHR-003", "Only the answer owner can edit the answer"},
		KindSubjectNotFound: {"ANS-001", "Entered answer uuid does not exist"},
	},
	EndpointAnswerDelete: {
		KindSessionExpired:  {"ATHR-002", "User is signed out.Sign in first to delete an answer"},
		KindForbidden:       {"ATHR-003", "Only the answer owner or admin can delete the answer"},
		KindSubjectNotFound: {"ANS-001", "Entered answer uuid does not exist"},
	},
	EndpointAnswerList: {
		KindSessionExpired:  {"ATHR-002", "User is signed out.Sign in first to get the answers"},
		KindSubjectNotFound: {"QUES-001", "The question with entered uuid whose details are to be seen does not exist"},
	},
}

// Every endpoint shares the same pre-authentication wording.
var defaults = map[Kind]wording{
	KindNotAuthenticated: {"ATHR-001", "User has not signed in"},
	KindSessionExpired:   {"ATHR-002", "User is signed out.Sign in first"},
	KindForbidden:        {"ATHR-003", "User is not authorized to perform this action"},
	KindSubjectNotFound:  {"RES-001", "Entered uuid does not exist"},
}

// Remap translates a failure kind into the denial an endpoint surfaces.
// Pure table lookup; stable and idempotent for a given (endpoint, kind).
func Remap(endpoint Endpoint, kind Kind) *Denial {
	w, ok := table[endpoint][kind]
	if !ok {
		w = defaults[kind]
	}
	return &Denial{
		Endpoint: endpoint,
		Kind:     kind,
		Code:     w.code,
		Message:  w.message,
	}
}

// Status fixes the HTTP status class per failure kind, regardless of
// endpoint context.
func Status(kind Kind) int {
	switch kind {
	case KindNotAuthenticated, KindSessionExpired:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindSubjectNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
