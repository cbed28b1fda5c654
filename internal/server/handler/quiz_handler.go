package handler

import (
	"net/http"
	"strconv"

	"github.com/abhisek/proteinlab/internal/quiz"
	"github.com/abhisek/proteinlab/internal/server/response"
	"github.com/abhisek/proteinlab/internal/server/validator"
	"github.com/abhisek/proteinlab/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type QuizHandler struct {
	quizService *quiz.Service
	eventRepo   store.EventRepo
	log         zerolog.Logger
}

func NewQuizHandler(quizService *quiz.Service, eventRepo store.EventRepo, log zerolog.Logger) *QuizHandler {
	if eventRepo == nil {
		eventRepo = store.NopEventRepo{}
	}
	return &QuizHandler{
		quizService: quizService,
		eventRepo:   eventRepo,
		log:         log.With().Str("component", "quiz_handler").Logger(),
	}
}

type GenerateQuizRequest struct {
	Topic      string `json:"topic" binding:"max=120"`
	Difficulty string `json:"difficulty" binding:"omitempty,oneof=IB AP ib ap"`
}

type generateQuizResponse struct {
	SessionID  string          `json:"session_id"`
	Topic      string          `json:"topic"`
	Difficulty quiz.Difficulty `json:"difficulty"`
	Source     quiz.Source     `json:"source"`
	Questions  []quiz.Question `json:"questions"`
}

// Generate godoc
// POST /api/v1/quiz
func (h *QuizHandler) Generate(c *gin.Context) {
	var req GenerateQuizRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}
	difficulty, err := quiz.ParseDifficulty(req.Difficulty)
	if err != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation,
			map[string]string{"difficulty": err.Error()})
		return
	}

	topic := req.Topic
	if topic == "" {
		topic = quiz.DefaultTopic
	}
	b := h.quizService.FetchQuestions(c.Request.Context(), topic, difficulty)

	response.Success(c, http.StatusOK, generateQuizResponse{
		SessionID:  uuid.NewString(),
		Topic:      topic,
		Difficulty: difficulty,
		Source:     b.Source,
		Questions:  b.Questions,
	})
}

type SubmitResultRequest struct {
	SessionID  string `json:"session_id" binding:"required,uuid"`
	Topic      string `json:"topic" binding:"required,max=120"`
	Difficulty string `json:"difficulty" binding:"required,oneof=IB AP"`
	Score      int    `json:"score" binding:"min=0,ltefield=Total"`
	Total      int    `json:"total" binding:"required,min=1,max=50"`
	Source     string `json:"source" binding:"required,oneof=ai fallback"`
}

// SubmitResult godoc
// POST /api/v1/quiz/results
func (h *QuizHandler) SubmitResult(c *gin.Context) {
	var req SubmitResultRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	err := h.eventRepo.AppendQuizResult(c.Request.Context(), store.QuizResultData{
		SessionID:  req.SessionID,
		Topic:      req.Topic,
		Difficulty: req.Difficulty,
		Score:      req.Score,
		Total:      req.Total,
		Source:     req.Source,
	})
	if err != nil {
		h.log.Error().Err(err).Str("session_id", req.SessionID).Msg("failed to record quiz result")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"message": "result recorded"})
}

type quizResultJSON struct {
	ID         int    `json:"id"`
	Timestamp  string `json:"timestamp"`
	SessionID  string `json:"session_id"`
	Topic      string `json:"topic"`
	Difficulty string `json:"difficulty"`
	Score      int    `json:"score"`
	Total      int    `json:"total"`
	Source     string `json:"source"`
}

// Results godoc
// GET /api/v1/quiz/results?limit=N
func (h *QuizHandler) Results(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 || limit > 200 {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrInvalidQuery,
			map[string]string{"limit": "limit must be between 1 and 200"})
		return
	}

	results, err := h.eventRepo.QueryQuizResults(c.Request.Context(), store.QueryOpts{Limit: limit})
	if err != nil {
		h.log.Error().Err(err).Msg("failed to query quiz results")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	out := make([]quizResultJSON, 0, len(results))
	for _, r := range results {
		out = append(out, quizResultJSON{
			ID:         r.ID,
			Timestamp:  r.Timestamp.UTC().Format("2006-01-02T15:04:05Z07:00"),
			SessionID:  r.SessionID,
			Topic:      r.Topic,
			Difficulty: r.Difficulty,
			Score:      r.Score,
			Total:      r.Total,
			Source:     r.Source,
		})
	}
	response.Success(c, http.StatusOK, gin.H{"results": out})
}
