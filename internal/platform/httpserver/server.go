package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	accessgate "askboard/contexts/identity-access/access-gate"
	gatequeries "askboard/contexts/identity-access/access-gate/application/queries"
	gateentities "askboard/contexts/identity-access/access-gate/domain/entities"
	"askboard/contexts/identity-access/access-gate/faults"
	boardservice "askboard/contexts/knowledge-exchange/board-service"
	boarderrors "askboard/contexts/knowledge-exchange/board-service/domain/errors"
	boardhttp "askboard/contexts/knowledge-exchange/board-service/transport/http"

	httpSwagger "github.com/swaggo/http-swagger"

	_ "askboard/internal/platform/httpserver/docs"
)

type Server struct {
	mux    *http.ServeMux
	logger *slog.Logger
	addr   string
	gate   accessgate.Module
	board  boardservice.Module
}

func New(
	gate accessgate.Module,
	board boardservice.Module,
	logger *slog.Logger,
	addr string,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:    http.NewServeMux(),
		logger: logger,
		addr:   addr,
		gate:   gate,
		board:  board,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("POST /question/create", s.handleCreateQuestion)
	s.mux.HandleFunc("PUT /question/edit/{questionId}", s.handleEditQuestion)
	s.mux.HandleFunc("DELETE /question/delete/{questionId}", s.handleDeleteQuestion)
	s.mux.HandleFunc("GET /question/all", s.handleListQuestions)
	s.mux.HandleFunc("GET /question/all/{userId}", s.handleListQuestionsByUser)
	s.mux.HandleFunc("POST /question/{questionId}/answer/create", s.handleCreateAnswer)
	s.mux.HandleFunc("PUT /answer/edit/{answerId}", s.handleEditAnswer)
	s.mux.HandleFunc("DELETE /answer/delete/{answerId}", s.handleDeleteAnswer)
	s.mux.HandleFunc("GET /answer/all/{questionId}", s.handleListAnswers)
}

func (s *Server) handleCreateQuestion(w http.ResponseWriter, r *http.Request) {
	var req boardhttp.QuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	actor, err := s.authorize(r, gatequeries.AuthorizeActionQuery{
		Action:   gateentities.ActionCreate,
		Endpoint: faults.EndpointQuestionCreate,
	})
	if err != nil {
		s.writeAuthorizeError(w, err)
		return
	}

	resp, err := s.board.Handler.CreateQuestionHandler(r.Context(), actor.UserID, req)
	if err != nil {
		s.writeBoardError(w, faults.EndpointQuestionCreate, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleEditQuestion(w http.ResponseWriter, r *http.Request) {
	questionID := r.PathValue("questionId")

	var req boardhttp.QuestionEditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	_, err := s.authorize(r, gatequeries.AuthorizeActionQuery{
		Action:   gateentities.ActionEdit,
		Endpoint: faults.EndpointQuestionEdit,
		Subject:  s.questionSubject(questionID),
	})
	if err != nil {
		s.writeAuthorizeError(w, err)
		return
	}

	resp, err := s.board.Handler.EditQuestionHandler(r.Context(), questionID, req)
	if err != nil {
		s.writeBoardError(w, faults.EndpointQuestionEdit, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteQuestion(w http.ResponseWriter, r *http.Request) {
	questionID := r.PathValue("questionId")

	_, err := s.authorize(r, gatequeries.AuthorizeActionQuery{
		Action:   gateentities.ActionDelete,
		Endpoint: faults.EndpointQuestionDelete,
		Subject:  s.questionSubject(questionID),
	})
	if err != nil {
		s.writeAuthorizeError(w, err)
		return
	}

	resp, err := s.board.Handler.DeleteQuestionHandler(r.Context(), questionID)
	if err != nil {
		s.writeBoardError(w, faults.EndpointQuestionDelete, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListQuestions(w http.ResponseWriter, r *http.Request) {
	_, err := s.authorize(r, gatequeries.AuthorizeActionQuery{
		Action:   gateentities.ActionReadAll,
		Endpoint: faults.EndpointQuestionList,
	})
	if err != nil {
		s.writeAuthorizeError(w, err)
		return
	}

	resp, err := s.board.Handler.ListQuestionsHandler(r.Context())
	if err != nil {
		s.writeBoardError(w, faults.EndpointQuestionList, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListQuestionsByUser(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")

	_, err := s.authorize(r, gatequeries.AuthorizeActionQuery{
		Action:   gateentities.ActionReadAll,
		Endpoint: faults.EndpointQuestionListByUser,
		Subject:  s.userSubject(userID),
	})
	if err != nil {
		s.writeAuthorizeError(w, err)
		return
	}

	resp, err := s.board.Handler.ListQuestionsByUserHandler(r.Context(), userID)
	if err != nil {
		s.writeBoardError(w, faults.EndpointQuestionListByUser, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateAnswer(w http.ResponseWriter, r *http.Request) {
	questionID := r.PathValue("questionId")

	var req boardhttp.AnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	// The parent question is the gate's subject here: answer creation has
	// no ownership constraint, but the question must exist first.
	actor, err := s.authorize(r, gatequeries.AuthorizeActionQuery{
		Action:   gateentities.ActionCreate,
		Endpoint: faults.EndpointAnswerCreate,
		Subject:  s.questionSubject(questionID),
	})
	if err != nil {
		s.writeAuthorizeError(w, err)
		return
	}

	resp, err := s.board.Handler.CreateAnswerHandler(r.Context(), questionID, actor.UserID, req)
	if err != nil {
		s.writeBoardError(w, faults.EndpointAnswerCreate, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleEditAnswer(w http.ResponseWriter, r *http.Request) {
	answerID := r.PathValue("answerId")

	var req boardhttp.AnswerEditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	_, err := s.authorize(r, gatequeries.AuthorizeActionQuery{
		Action:   gateentities.ActionEdit,
		Endpoint: faults.EndpointAnswerEdit,
		Subject:  s.answerSubject(answerID),
	})
	if err != nil {
		s.writeAuthorizeError(w, err)
		return
	}

	resp, err := s.board.Handler.EditAnswerHandler(r.Context(), answerID, req)
	if err != nil {
		s.writeBoardError(w, faults.EndpointAnswerEdit, err)
		return
	}
	// The platform contract answers successful answer edits with 201, not
	// 200. Flagged with product; do not change without a contract bump.
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleDeleteAnswer(w http.ResponseWriter, r *http.Request) {
	answerID := r.PathValue("answerId")

	_, err := s.authorize(r, gatequeries.AuthorizeActionQuery{
		Action:   gateentities.ActionDelete,
		Endpoint: faults.EndpointAnswerDelete,
		Subject:  s.answerSubject(answerID),
	})
	if err != nil {
		s.writeAuthorizeError(w, err)
		return
	}

	resp, err := s.board.Handler.DeleteAnswerHandler(r.Context(), answerID)
	if err != nil {
		s.writeBoardError(w, faults.EndpointAnswerDelete, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListAnswers(w http.ResponseWriter, r *http.Request) {
	questionID := r.PathValue("questionId")

	_, err := s.authorize(r, gatequeries.AuthorizeActionQuery{
		Action:   gateentities.ActionReadAll,
		Endpoint: faults.EndpointAnswerList,
		Subject:  s.questionSubject(questionID),
	})
	if err != nil {
		s.writeAuthorizeError(w, err)
		return
	}

	resp, err := s.board.Handler.ListAnswersHandler(r.Context(), questionID)
	if err != nil {
		s.writeBoardError(w, faults.EndpointAnswerList, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// authorize runs the gate with the request's bearer token filled in. The
// token is the sole identity input; path and body values never influence
// the acting account.
func (s *Server) authorize(r *http.Request, query gatequeries.AuthorizeActionQuery) (gateentities.UserAccount, error) {
	query.Token = r.Header.Get("authorization")
	return s.gate.Gate.Execute(r.Context(), query)
}

func (s *Server) questionSubject(questionID string) gatequeries.SubjectLookup {
	return func(ctx context.Context) (*gateentities.ContentItem, error) {
		subject, found, err := s.board.Handler.QuestionSubjectHandler(ctx, questionID)
		if err != nil || !found {
			return nil, err
		}
		return &gateentities.ContentItem{
			ItemID:  subject.ID,
			OwnerID: subject.OwnerID,
			Kind:    gateentities.KindQuestion,
		}, nil
	}
}

func (s *Server) answerSubject(answerID string) gatequeries.SubjectLookup {
	return func(ctx context.Context) (*gateentities.ContentItem, error) {
		subject, found, err := s.board.Handler.AnswerSubjectHandler(ctx, answerID)
		if err != nil || !found {
			return nil, err
		}
		return &gateentities.ContentItem{
			ItemID:   subject.ID,
			OwnerID:  subject.OwnerID,
			Kind:     gateentities.KindAnswer,
			ParentID: subject.QuestionID,
		}, nil
	}
}

// userSubject is a pure existence check; READ_ALL ignores the returned
// item, only its presence matters to the gate.
func (s *Server) userSubject(userID string) gatequeries.SubjectLookup {
	return func(ctx context.Context) (*gateentities.ContentItem, error) {
		exists, err := s.board.Handler.UserSubjectHandler(ctx, userID)
		if err != nil || !exists {
			return nil, err
		}
		return &gateentities.ContentItem{
			ItemID:  userID,
			OwnerID: userID,
		}, nil
	}
}

func (s *Server) writeAuthorizeError(w http.ResponseWriter, err error) {
	var denial *faults.Denial
	if errors.As(err, &denial) {
		writeError(w, faults.Status(denial.Kind), denial.Code, denial.Message)
		return
	}
	s.logger.Error("authorization failed with store fault",
		"event", "http_authorize_store_fault",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"error", err.Error(),
	)
	writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
}

// writeBoardError maps board domain errors surfaced after an Allow
// decision. Not-found here means the record vanished between decision and
// mutation; the endpoint's own wording still applies.
func (s *Server) writeBoardError(w http.ResponseWriter, endpoint faults.Endpoint, err error) {
	switch {
	case errors.Is(err, boarderrors.ErrQuestionNotFound),
		errors.Is(err, boarderrors.ErrAnswerNotFound),
		errors.Is(err, boarderrors.ErrUserNotFound):
		denial := faults.Remap(endpoint, faults.KindSubjectNotFound)
		writeError(w, faults.Status(denial.Kind), denial.Code, denial.Message)
	case errors.Is(err, boarderrors.ErrConstraintViolation):
		writeError(w, http.StatusConflict, "DB-001", "This request has caused table constraint violation")
	default:
		s.logger.Error("board operation failed",
			"event", "http_board_store_fault",
			"module", "internal/platform/httpserver",
			"layer", "platform",
			"endpoint", string(endpoint),
			"error", err.Error(),
		)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, boardhttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
