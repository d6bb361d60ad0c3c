package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"fundingtrail/internal/domain"
	"fundingtrail/internal/repository"
	"fundingtrail/internal/service"
)

// ProgramHandler handles HTTP requests for the funding program catalog.
type ProgramHandler struct {
	programService *service.ProgramService
}

// NewProgramHandler creates a new ProgramHandler.
func NewProgramHandler(programService *service.ProgramService) *ProgramHandler {
	return &ProgramHandler{programService: programService}
}

// ProgramRequest is the HTTP request body for creating or updating a program.
type ProgramRequest struct {
	Title       string  `json:"title"`
	Type        string  `json:"type"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// ProgramResponse is the HTTP response for program data.
type ProgramResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	CreatedAt   time.Time `json:"created_at"`
}

func toProgramResponse(p *domain.Program) ProgramResponse {
	return ProgramResponse{
		ID:          p.ID,
		Title:       p.Title,
		Type:        p.Type,
		Description: p.Description,
		Price:       p.Price,
		CreatedAt:   p.CreatedAt,
	}
}

// List handles GET /programs
// Optional query filters: type (exact match) and price (integer match).
func (h *ProgramHandler) List(c *gin.Context) {
	filter := repository.ProgramFilter{
		Type: c.Query("type"),
	}
	if priceParam := c.Query("price"); priceParam != "" {
		if price, err := strconv.Atoi(priceParam); err == nil {
			filter.Price = price
		}
	}

	programs, err := h.programService.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]ProgramResponse, 0, len(programs))
	for _, p := range programs {
		response = append(response, toProgramResponse(p))
	}
	respondJSON(c, http.StatusOK, response)
}

// Get handles GET /programs/:id
func (h *ProgramHandler) Get(c *gin.Context) {
	program, err := h.programService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, toProgramResponse(program))
}

// Create handles POST /programs
func (h *ProgramHandler) Create(c *gin.Context) {
	var req ProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	program, err := h.programService.Create(c.Request.Context(), service.CreateProgramRequest{
		Title:       req.Title,
		Type:        req.Type,
		Description: req.Description,
		Price:       req.Price,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusCreated, toProgramResponse(program))
}

// Update handles PUT /programs/:id
func (h *ProgramHandler) Update(c *gin.Context) {
	var req ProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	program, err := h.programService.Update(c.Request.Context(), c.Param("id"), service.CreateProgramRequest{
		Title:       req.Title,
		Type:        req.Type,
		Description: req.Description,
		Price:       req.Price,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, toProgramResponse(program))
}

// Delete handles DELETE /programs/:id
func (h *ProgramHandler) Delete(c *gin.Context) {
	if err := h.programService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, gin.H{"deleted": true})
}
