package faults

import (
	"net/http"
	"testing"
)

func TestRemapNotAuthenticatedSharedAcrossEndpoints(t *testing.T) {
	endpoints := []Endpoint{
		EndpointQuestionCreate,
		EndpointQuestionEdit,
		EndpointQuestionDelete,
		EndpointQuestionList,
		EndpointQuestionListByUser,
		EndpointAnswerCreate,
		EndpointAnswerEdit,
		EndpointAnswerDelete,
		EndpointAnswerList,
	}
	for _, endpoint := range endpoints {
		denial := Remap(endpoint, KindNotAuthenticated)
		if denial.Code != "ATHR-001" || denial.Message != "User has not signed in" {
			t.Fatalf("%s: unexpected pre-auth wording %s/%s", endpoint, denial.Code, denial.Message)
		}
	}
}

func TestRemapSessionExpiredWordingPerEndpoint(t *testing.T) {
	cases := []struct {
		endpoint Endpoint
		message  string
	}{
		{EndpointQuestionCreate, "User is signed out.Sign in first to post a question"},
		{EndpointQuestionEdit, "User is signed out.Sign in first to edit the question"},
		{EndpointQuestionDelete, "User is signed out.Sign in first to delete a question"},
		{EndpointQuestionList, "User is signed out.Sign in first to get all questions"},
		{EndpointQuestionListByUser, "User is signed out.Sign in first to get all questions posted by a specific user"},
		{EndpointAnswerCreate, "User is signed out.Sign in first to post an answer"},
		{EndpointAnswerEdit, "User is signed out.Sign in first to edit an answer"},
		{EndpointAnswerDelete, "User is signed out.Sign in first to delete an answer"},
		{EndpointAnswerList, "User is signed out.Sign in first to get the answers"},
	}
	for _, tc := range cases {
		denial := Remap(tc.endpoint, KindSessionExpired)
		if denial.Code != "ATHR-002" {
			t.Fatalf("%s: expected ATHR-002, got %s", tc.endpoint, denial.Code)
		}
		if denial.Message != tc.message {
			t.Fatalf("%s: unexpected message %q", tc.endpoint, denial.Message)
		}
	}
}

func TestRemapForbiddenWording(t *testing.T) {
	cases := []struct {
		endpoint Endpoint
		message  string
	}{
		{EndpointQuestionEdit, "Only the question owner can edit the question"},
		{EndpointQuestionDelete, "Only the question owner or admin can delete the question"},
		{EndpointAnswerEdit, "Only the answer owner can edit the answer"},
		{EndpointAnswerDelete, "Only the answer owner or admin can delete the answer"},
	}
	for _, tc := range cases {
		denial := Remap(tc.endpoint, KindForbidden)
		if denial.Code != "ATHR-003" {
			t.Fatalf("%s: expected ATHR-003, got %s", tc.endpoint, denial.Code)
		}
		if denial.Message != tc.message {
			t.Fatalf("%s: unexpected message %q", tc.endpoint, denial.Message)
		}
	}
}

func TestRemapSubjectNotFoundWording(t *testing.T) {
	cases := []struct {
		endpoint Endpoint
		code     string
		message  string
	}{
		{EndpointQuestionEdit, "QUES-001", "Entered question uuid does not exist"},
		{EndpointQuestionDelete, "QUES-001", "Entered question uuid does not exist"},
		{EndpointQuestionListByUser, "USR-001", "User with entered uuid whose question details are to be seen does not exist"},
		{EndpointAnswerCreate, "QUES-001", "The question entered is invalid"},
		{EndpointAnswerEdit, "ANS-001", "Entered answer uuid does not exist"},
		{EndpointAnswerDelete, "ANS-001", "Entered answer uuid does not exist"},
		{EndpointAnswerList, "QUES-001", "The question with entered uuid whose details are to be seen does not exist"},
	}
	for _, tc := range cases {
		denial := Remap(tc.endpoint, KindSubjectNotFound)
		if denial.Code != tc.code {
			t.Fatalf("%s: expected %s, got %s", tc.endpoint, tc.code, denial.Code)
		}
		if denial.Message != tc.message {
			t.Fatalf("%s: unexpected message %q", tc.endpoint, denial.Message)
		}
	}
}

func TestRemapFallsBackToDefaults(t *testing.T) {
	denial := Remap(EndpointQuestionCreate, KindForbidden)
	if denial.Code != "ATHR-003" {
		t.Fatalf("expected default ATHR-003, got %s", denial.Code)
	}
	if denial.Message != "User is not authorized to perform this action" {
		t.Fatalf("unexpected default message %q", denial.Message)
	}
}

func TestRemapPreservesKindAndEndpoint(t *testing.T) {
	denial := Remap(EndpointAnswerDelete, KindForbidden)
	if denial.Endpoint != EndpointAnswerDelete {
		t.Fatalf("endpoint changed in remap: %s", denial.Endpoint)
	}
	if denial.Kind != KindForbidden {
		t.Fatalf("kind changed in remap: %s", denial.Kind)
	}
}

func TestStatusPerKind(t *testing.T) {
	cases := map[Kind]int{
		KindNotAuthenticated: http.StatusUnauthorized,
		KindSessionExpired:   http.StatusUnauthorized,
		KindForbidden:        http.StatusForbidden,
		KindSubjectNotFound:  http.StatusNotFound,
	}
	for kind, want := range cases {
		if got := Status(kind); got != want {
			t.Fatalf("%s: expected %d, got %d", kind, want, got)
		}
	}
}
