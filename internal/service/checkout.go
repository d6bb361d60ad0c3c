package service

import (
	"context"
	"log"
	"math"

	"github.com/google/uuid"

	"fundingtrail/internal/domain"
	"fundingtrail/internal/gateway"
	"fundingtrail/internal/repository"
)

const (
	checkoutCurrency    = "USD"
	checkoutDescription = "Funding program checkout"

	// The processor expects the destination calling code on the phone
	// number; the inbound request carries a bare national number.
	destinationCallingCode = "+880"
)

// Notifier sends the payment confirmation to a customer.
type Notifier interface {
	NotifyPaymentSuccess(ctx context.Context, toAddress string) error
}

// CheckoutService runs the payment checkout workflow: a single gateway
// charge followed by a best-effort confirmation email and a best-effort
// durable record, strictly in that order. There is no retry and no
// compensation; the gateway call is the only step that decides the
// outcome.
type CheckoutService struct {
	charger   gateway.Charger
	notifier  Notifier
	checkouts repository.CheckoutRepository
}

// NewCheckoutService creates a new CheckoutService.
func NewCheckoutService(charger gateway.Charger, notifier Notifier, checkouts repository.CheckoutRepository) *CheckoutService {
	return &CheckoutService{
		charger:   charger,
		notifier:  notifier,
		checkouts: checkouts,
	}
}

// CheckoutRequest contains the parameters for one checkout attempt.
type CheckoutRequest struct {
	FirstName  string
	Phone      string
	Email      string
	Country    string
	TotalPrice float64
}

// minorUnits converts a price to integer minor units by truncation.
// 49.999 becomes 4999, matching the gateway's amount contract.
func minorUnits(price float64) int64 {
	return int64(math.Floor(price * 100))
}

// ProcessCheckout executes one payment attempt end-to-end and returns
// the gateway result. Validation failures and gateway failures are the
// only error outcomes; notification and storage failures are logged and
// swallowed.
func (s *CheckoutService) ProcessCheckout(ctx context.Context, req CheckoutRequest) (*gateway.ChargeResult, error) {
	if req.Email == "" {
		return nil, ErrMissingEmail
	}

	amount := minorUnits(req.TotalPrice)
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	result, err := s.charger.Charge(ctx, gateway.ChargeRequest{
		Name:        req.FirstName,
		Phone:       destinationCallingCode + req.Phone,
		Email:       req.Email,
		Country:     req.Country,
		Amount:      amount,
		Currency:    checkoutCurrency,
		Description: checkoutDescription,
	})
	if err != nil {
		return nil, err
	}

	// The charge completed; from here on nothing may fail the checkout.
	bestEffort("confirmation email", s.notifier.NotifyPaymentSuccess(ctx, req.Email))

	checkout := &domain.Checkout{
		ID:            uuid.New().String(),
		FirstName:     req.FirstName,
		Phone:         req.Phone,
		Email:         req.Email,
		Country:       req.Country,
		TotalPrice:    req.TotalPrice,
		PaymentStatus: result.Status,
		TransactionID: result.TransactionID,
	}
	bestEffort("checkout record", s.checkouts.Insert(ctx, checkout))

	return result, nil
}

// GetCheckout retrieves a checkout record by ID.
func (s *CheckoutService) GetCheckout(ctx context.Context, id string) (*domain.Checkout, error) {
	if id == "" {
		return nil, ErrInvalidCheckoutID
	}
	return s.checkouts.GetByID(ctx, id)
}

// bestEffort logs a failed side effect without altering the checkout
// outcome.
func bestEffort(op string, err error) {
	if err != nil {
		log.Printf("[CHECKOUT] best-effort %s failed: %v", op, err)
	}
}
