package handler

import (
	"net/http"

	"github.com/abhisek/proteinlab/internal/quiz"
	"github.com/abhisek/proteinlab/internal/server/response"
	"github.com/abhisek/proteinlab/internal/server/validator"
	"github.com/gin-gonic/gin"
)

type TutorHandler struct {
	tutor *quiz.Tutor
}

func NewTutorHandler(tutor *quiz.Tutor) *TutorHandler {
	return &TutorHandler{tutor: tutor}
}

type AskRequest struct {
	Question string `json:"question" binding:"required,max=500"`
}

// Ask godoc
// POST /api/v1/tutor
func (h *TutorHandler) Ask(c *gin.Context) {
	var req AskRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}
	answer := h.tutor.Ask(c.Request.Context(), req.Question)
	response.Success(c, http.StatusOK, gin.H{"answer": answer})
}
