package handler

import (
	"net/http"

	"github.com/abhisek/proteinlab/internal/matching"
	"github.com/abhisek/proteinlab/internal/server/response"
	"github.com/gin-gonic/gin"
)

type ProteinHandler struct{}

func NewProteinHandler() *ProteinHandler {
	return &ProteinHandler{}
}

// List godoc
// GET /api/v1/proteins
func (h *ProteinHandler) List(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"proteins": matching.Catalog()})
}

// Get godoc
// GET /api/v1/proteins/:id
func (h *ProteinHandler) Get(c *gin.Context) {
	p, ok := matching.Lookup(c.Param("id"))
	if !ok {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"protein": p})
}
