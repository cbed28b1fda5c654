package handler

import (
	"net/http"
	"strconv"

	"github.com/abhisek/proteinlab/internal/folding"
	"github.com/abhisek/proteinlab/internal/server/response"
	"github.com/gin-gonic/gin"
)

type FoldingHandler struct{}

func NewFoldingHandler() *FoldingHandler {
	return &FoldingHandler{}
}

// Stages godoc
// GET /api/v1/folding/stages
func (h *FoldingHandler) Stages(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"stages": folding.Catalog()})
}

type layoutResponse struct {
	Stage    folding.Stage     `json:"stage"`
	Variant  string            `json:"variant"`
	Residues []folding.Residue `json:"residues"`
	Bonds    []folding.Bond    `json:"bonds"`
}

// Layout godoc
// GET /api/v1/folding/layout?stage=0..3&variant=helix|sheet
func (h *FoldingHandler) Layout(c *gin.Context) {
	stage, ok := folding.ParseStage(c.DefaultQuery("stage", "0"))
	if !ok {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrInvalidQuery,
			map[string]string{"stage": "stage must be 0-3 or a stage name"})
		return
	}
	variant, ok := folding.ParseVariant(c.Query("variant"))
	if !ok {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrInvalidQuery,
			map[string]string{"variant": "variant must be helix or sheet"})
		return
	}

	var bonds []folding.Bond
	switch stage {
	case folding.Secondary:
		bonds = folding.HydrogenBonds(variant)
	case folding.Tertiary:
		bonds = folding.TertiaryBonds()
	}
	if bonds == nil {
		bonds = []folding.Bond{}
	}

	response.Success(c, http.StatusOK, layoutResponse{
		Stage:    stage,
		Variant:  variant.String(),
		Residues: folding.Layout(stage, variant),
		Bonds:    bonds,
	})
}

// Hemoglobin godoc
// GET /api/v1/folding/hemoglobin?denatured=bool
func (h *FoldingHandler) Hemoglobin(c *gin.Context) {
	denatured := false
	if raw := c.Query("denatured"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			response.FailWithFields(c, http.StatusBadRequest, response.ErrInvalidQuery,
				map[string]string{"denatured": "denatured must be a boolean"})
			return
		}
		denatured = v
	}
	response.Success(c, http.StatusOK, gin.H{
		"denatured": denatured,
		"subunits":  folding.Hemoglobin(denatured),
	})
}
