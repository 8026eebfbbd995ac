package httpserver

import (
	"net/http"
	"testing"

	boardhttp "askboard/contexts/knowledge-exchange/board-service/transport/http"
)

func expectDenial(t *testing.T, server *Server, method, target, token string, body any, status int, code, message string) {
	t.Helper()
	rr := doJSON(t, server, method, target, token, body)
	if rr.Code != status {
		t.Fatalf("%s %s: expected %d, got %d body=%s", method, target, status, rr.Code, rr.Body.String())
	}
	var resp boardhttp.ErrorResponse
	decodeInto(t, rr, &resp)
	if resp.Code != code {
		t.Fatalf("%s %s: expected code %s, got %s", method, target, code, resp.Code)
	}
	if resp.Message != message {
		t.Fatalf("%s %s: expected message %q, got %q", method, target, message, resp.Message)
	}
}

func TestAllEndpointsRejectMissingToken(t *testing.T) {
	server := newTestServer()

	cases := []struct {
		method string
		target string
		body   any
	}{
		{http.MethodPost, "/question/create", boardhttp.QuestionRequest{Content: "q"}},
		{http.MethodPut, "/question/edit/q-1", boardhttp.QuestionEditRequest{Content: "q"}},
		{http.MethodDelete, "/question/delete/q-1", nil},
		{http.MethodGet, "/question/all", nil},
		{http.MethodGet, "/question/all/user-1", nil},
		{http.MethodPost, "/question/q-1/answer/create", boardhttp.AnswerRequest{Answer: "a"}},
		{http.MethodPut, "/answer/edit/a-1", boardhttp.AnswerEditRequest{Content: "a"}},
		{http.MethodDelete, "/answer/delete/a-1", nil},
		{http.MethodGet, "/answer/all/q-1", nil},
	}
	for _, tc := range cases {
		expectDenial(t, server, tc.method, tc.target, "", tc.body,
			http.StatusUnauthorized, "ATHR-001", "User has not signed in")
	}
}

func TestSignedOutTokenGetsEndpointSpecificWording(t *testing.T) {
	server := newTestServer()
	questionID := createQuestion(t, server, "token-user-1", "q")
	answerID := createAnswer(t, server, "token-user-1", questionID, "a")

	cases := []struct {
		method  string
		target  string
		body    any
		message string
	}{
		{http.MethodPost, "/question/create", boardhttp.QuestionRequest{Content: "q"},
			"User is signed out.Sign in first to post a question"},
		{http.MethodPut, "/question/edit/" + questionID, boardhttp.QuestionEditRequest{Content: "q"},
			"User is signed out.Sign in first to edit the question"},
		{http.MethodDelete, "/question/delete/" + questionID, nil,
			"User is signed out.Sign in first to delete a question"},
		{http.MethodGet, "/question/all", nil,
			"User is signed out.Sign in first to get all questions"},
		{http.MethodGet, "/question/all/user-1", nil,
			"User is signed out.Sign in first to get all questions posted by a specific user"},
		{http.MethodPost, "/question/" + questionID + "/answer/create", boardhttp.AnswerRequest{Answer: "a"},
			"User is signed out.Sign in first to post an answer"},
		{http.MethodPut, "/answer/edit/" + answerID, boardhttp.AnswerEditRequest{Content: "a"},
			"User is signed out.Sign in first to edit an answer"},
		{http.MethodDelete, "/answer/delete/" + answerID, nil,
			"User is signed out.Sign in first to delete an answer"},
		{http.MethodGet, "/answer/all/" + questionID, nil,
			"User is signed out.Sign in first to get the answers"},
	}
	for _, tc := range cases {
		expectDenial(t, server, tc.method, tc.target, "token-out", tc.body,
			http.StatusUnauthorized, "ATHR-002", tc.message)
	}
}

func TestOnlyOwnerMayEditQuestion(t *testing.T) {
	server := newTestServer()
	questionID := createQuestion(t, server, "token-user-1", "mine")

	expectDenial(t, server, http.MethodPut, "/question/edit/"+questionID, "token-user-2",
		boardhttp.QuestionEditRequest{Content: "stolen"},
		http.StatusForbidden, "ATHR-003", "Only the question owner can edit the question")

	// Admin role grants delete, never edit.
	expectDenial(t, server, http.MethodPut, "/question/edit/"+questionID, "token-admin-1",
		boardhttp.QuestionEditRequest{Content: "overridden"},
		http.StatusForbidden, "ATHR-003", "Only the question owner can edit the question")
}

func TestOnlyOwnerOrAdminMayDeleteQuestion(t *testing.T) {
	server := newTestServer()
	questionID := createQuestion(t, server, "token-user-1", "mine")

	expectDenial(t, server, http.MethodDelete, "/question/delete/"+questionID, "token-user-2", nil,
		http.StatusForbidden, "ATHR-003", "Only the question owner or admin can delete the question")

	rr := doJSON(t, server, http.MethodDelete, "/question/delete/"+questionID, "token-admin-1", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("admin delete: expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestOnlyOwnerMayEditAnswer(t *testing.T) {
	server := newTestServer()
	questionID := createQuestion(t, server, "token-user-1", "q")
	answerID := createAnswer(t, server, "token-user-2", questionID, "a")

	expectDenial(t, server, http.MethodPut, "/answer/edit/"+answerID, "token-user-1",
		boardhttp.AnswerEditRequest{Content: "not yours"},
		http.StatusForbidden, "ATHR-003", "Only the answer owner can edit the answer")

	expectDenial(t, server, http.MethodPut, "/answer/edit/"+answerID, "token-admin-1",
		boardhttp.AnswerEditRequest{Content: "not yours either"},
		http.StatusForbidden, "ATHR-003", "Only the answer owner can edit the answer")
}

func TestOnlyOwnerOrAdminMayDeleteAnswer(t *testing.T) {
	server := newTestServer()
	questionID := createQuestion(t, server, "token-user-1", "q")
	answerID := createAnswer(t, server, "token-user-2", questionID, "a")

	expectDenial(t, server, http.MethodDelete, "/answer/delete/"+answerID, "token-user-1", nil,
		http.StatusForbidden, "ATHR-003", "Only the answer owner or admin can delete the answer")

	rr := doJSON(t, server, http.MethodDelete, "/answer/delete/"+answerID, "token-admin-1", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("admin delete: expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestMissingSubjectsYieldEndpointNotFound(t *testing.T) {
	server := newTestServer()

	expectDenial(t, server, http.MethodPut, "/question/edit/missing", "token-user-1",
		boardhttp.QuestionEditRequest{Content: "x"},
		http.StatusNotFound, "QUES-001", "Entered question uuid does not exist")

	expectDenial(t, server, http.MethodDelete, "/question/delete/missing", "token-user-1", nil,
		http.StatusNotFound, "QUES-001", "Entered question uuid does not exist")

	expectDenial(t, server, http.MethodPost, "/question/missing/answer/create", "token-user-1",
		boardhttp.AnswerRequest{Answer: "a"},
		http.StatusNotFound, "QUES-001", "The question entered is invalid")

	expectDenial(t, server, http.MethodPut, "/answer/edit/missing", "token-user-1",
		boardhttp.AnswerEditRequest{Content: "x"},
		http.StatusNotFound, "ANS-001", "Entered answer uuid does not exist")

	expectDenial(t, server, http.MethodDelete, "/answer/delete/missing", "token-user-1", nil,
		http.StatusNotFound, "ANS-001", "Entered answer uuid does not exist")

	expectDenial(t, server, http.MethodGet, "/answer/all/missing", "token-user-1", nil,
		http.StatusNotFound, "QUES-001", "The question with entered uuid whose details are to be seen does not exist")

	expectDenial(t, server, http.MethodGet, "/question/all/ghost", "token-user-1", nil,
		http.StatusNotFound, "USR-001", "User with entered uuid whose question details are to be seen does not exist")
}

func TestTokenFailureWinsOverMissingSubject(t *testing.T) {
	server := newTestServer()

	// Unknown subject plus bad token: the token check decides first.
	expectDenial(t, server, http.MethodPut, "/question/edit/missing", "never-issued",
		boardhttp.QuestionEditRequest{Content: "x"},
		http.StatusUnauthorized, "ATHR-001", "User has not signed in")

	expectDenial(t, server, http.MethodDelete, "/answer/delete/missing", "token-out", nil,
		http.StatusUnauthorized, "ATHR-002", "User is signed out.Sign in first to delete an answer")
}
