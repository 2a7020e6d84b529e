package handler

import (
	"github.com/gin-gonic/gin"

	"choicefetch/src/app/http/dto"
	"choicefetch/src/app/http/response"
	"choicefetch/src/app/middleware"
	"choicefetch/src/core/usecase"
)

// ChoicesHandler serves the configured choices query.
type ChoicesHandler struct {
	choicesService *usecase.ChoicesService
}

func NewChoicesHandler(choicesService *usecase.ChoicesService) *ChoicesHandler {
	return &ChoicesHandler{choicesService: choicesService}
}

// List returns every choice row.
// GET /v1/choices
func (h *ChoicesHandler) List(c *gin.Context) {
	choices, err := h.choicesService.List(c.Request.Context())
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, dto.NewChoicesResponse(choices))
}
