package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fundingtrail/internal/gateway"
	"fundingtrail/internal/service"
)

// CheckoutHandler handles HTTP requests for payment checkout.
type CheckoutHandler struct {
	checkoutService *service.CheckoutService
}

// NewCheckoutHandler creates a new CheckoutHandler.
func NewCheckoutHandler(checkoutService *service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService}
}

// CheckoutRequest is the HTTP request body for a payment checkout.
type CheckoutRequest struct {
	FirstName  string  `json:"firstName"`
	Phone      string  `json:"phone"`
	Email      string  `json:"email"`
	Country    string  `json:"country"`
	TotalPrice float64 `json:"totalPrice"`
}

// CheckoutEnvelope is the response contract of POST /payment.
type CheckoutEnvelope struct {
	Success bool                  `json:"success"`
	Message string                `json:"message"`
	Data    *gateway.ChargeResult `json:"data,omitempty"`
	Error   string                `json:"error,omitempty"`
}

// CheckoutRecordResponse is the HTTP response for a stored checkout record.
type CheckoutRecordResponse struct {
	ID            string    `json:"id"`
	FirstName     string    `json:"firstName"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email"`
	Country       string    `json:"country"`
	TotalPrice    float64   `json:"totalPrice"`
	PaymentStatus string    `json:"paymentStatus"`
	TransactionID string    `json:"transactionId"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ProcessCheckout handles POST /payment
func (h *CheckoutHandler) ProcessCheckout(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, CheckoutEnvelope{
			Success: false,
			Message: "Invalid checkout request",
			Error:   "invalid request body",
		})
		return
	}

	result, err := h.checkoutService.ProcessCheckout(c.Request.Context(), service.CheckoutRequest{
		FirstName:  req.FirstName,
		Phone:      req.Phone,
		Email:      req.Email,
		Country:    req.Country,
		TotalPrice: req.TotalPrice,
	})
	if err != nil {
		if errors.Is(err, service.ErrMissingEmail) || errors.Is(err, service.ErrInvalidAmount) {
			c.JSON(http.StatusBadRequest, CheckoutEnvelope{
				Success: false,
				Message: "Invalid checkout request",
				Error:   err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, CheckoutEnvelope{
			Success: false,
			Message: "Payment failed",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, CheckoutEnvelope{
		Success: true,
		Message: "Payment initiated successfully",
		Data:    result,
	})
}

// GetCheckout handles GET /payments/:id
func (h *CheckoutHandler) GetCheckout(c *gin.Context) {
	checkout, err := h.checkoutService.GetCheckout(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, CheckoutRecordResponse{
		ID:            checkout.ID,
		FirstName:     checkout.FirstName,
		Phone:         checkout.Phone,
		Email:         checkout.Email,
		Country:       checkout.Country,
		TotalPrice:    checkout.TotalPrice,
		PaymentStatus: checkout.PaymentStatus,
		TransactionID: checkout.TransactionID,
		CreatedAt:     checkout.CreatedAt,
	})
}
