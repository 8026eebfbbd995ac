package boardservice

import (
	"log/slog"

	httpadapter "askboard/contexts/knowledge-exchange/board-service/adapters/http"
	"askboard/contexts/knowledge-exchange/board-service/adapters/memory"
	"askboard/contexts/knowledge-exchange/board-service/application/commands"
	"askboard/contexts/knowledge-exchange/board-service/application/queries"
	"askboard/contexts/knowledge-exchange/board-service/ports"
)

// Module is the board-service composition root exposed to runtime wiring.
type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

// Dependencies captures all runtime ports required by NewModule.
type Dependencies struct {
	Questions   ports.QuestionRepository
	Answers     ports.AnswerRepository
	Users       ports.UserDirectory
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

// NewModule wires board use-cases and the transport handler using explicit
// ports.
func NewModule(deps Dependencies) Module {
	handler := httpadapter.Handler{
		CreateQuestion: commands.CreateQuestionUseCase{
			Questions:   deps.Questions,
			Clock:       deps.Clock,
			IDGenerator: deps.IDGenerator,
			Logger:      deps.Logger,
		},
		EditQuestion: commands.EditQuestionUseCase{
			Questions: deps.Questions,
			Clock:     deps.Clock,
			Logger:    deps.Logger,
		},
		DeleteQuestion: commands.DeleteQuestionUseCase{
			Questions: deps.Questions,
			Logger:    deps.Logger,
		},
		CreateAnswer: commands.CreateAnswerUseCase{
			Answers:     deps.Answers,
			Questions:   deps.Questions,
			Clock:       deps.Clock,
			IDGenerator: deps.IDGenerator,
			Logger:      deps.Logger,
		},
		EditAnswer: commands.EditAnswerUseCase{
			Answers: deps.Answers,
			Clock:   deps.Clock,
			Logger:  deps.Logger,
		},
		DeleteAnswer: commands.DeleteAnswerUseCase{
			Answers: deps.Answers,
			Logger:  deps.Logger,
		},
		ListQuestions: queries.ListQuestionsUseCase{
			Questions: deps.Questions,
			Logger:    deps.Logger,
		},
		ListQuestionsByUser: queries.ListQuestionsByUserUseCase{
			Questions: deps.Questions,
			Users:     deps.Users,
			Logger:    deps.Logger,
		},
		ListAnswers: queries.ListAnswersUseCase{
			Answers:   deps.Answers,
			Questions: deps.Questions,
			Logger:    deps.Logger,
		},
		GetQuestion: queries.GetQuestionUseCase{Questions: deps.Questions},
		GetAnswer:   queries.GetAnswerUseCase{Answers: deps.Answers},
		CheckUser:   queries.CheckUserUseCase{Users: deps.Users},
		Logger:      deps.Logger,
	}
	return Module{
		Handler: handler,
	}
}

// NewInMemoryModule builds a development/testing module with in-memory
// adapters, exposed for seeding.
func NewInMemoryModule(logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Questions:   store,
		Answers:     store,
		Users:       store,
		Clock:       store,
		IDGenerator: store,
		Logger:      logger,
	})
	module.Store = store
	return module
}
