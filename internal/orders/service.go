package orders

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/gamepoint-mx/storefront/internal/config"
	"github.com/gamepoint-mx/storefront/internal/models"
	"github.com/gamepoint-mx/storefront/internal/transport"
)

var (
	ErrValidation = errors.New("validation") // 400
	ErrNotFound   = errors.New("not found")  // 404
	ErrConflict   = errors.New("conflict")   // 409
)

type Service struct {
	Repo         *GormRepo
	Rates        config.Rates
	Destinations config.Destinations
}

func (s *Service) ListOrders(ctx context.Context) ([]models.Order, error) {
	return s.Repo.ListOrders(ctx)
}

// CreateInvoice totals the cart, allocates a unique order code, resolves
// the payment destination and exact amount for the chosen method, and
// persists the order as pending. The response only exists if the order
// was durably stored.
func (s *Service) CreateInvoice(ctx context.Context, req transport.CreateInvoiceRequest) (*transport.InvoiceResponse, *models.Order, error) {
	if req.Email == "" {
		return nil, nil, fmt.Errorf("%w: email required", ErrValidation)
	}
	method, err := ParsePaymentMethod(req.PaymentMethod)
	if err != nil {
		return nil, nil, err
	}

	total := decimal.Zero
	items := 0
	for i := range req.Cart {
		price := decimal.Zero
		if req.Cart[i].Price != nil {
			price = decimal.NewFromFloat(*req.Cart[i].Price)
		}
		quantity := 1
		if req.Cart[i].Quantity != nil {
			quantity = *req.Cart[i].Quantity
		}
		if quantity < 0 {
			return nil, nil, fmt.Errorf("%w: quantity must be >= 0", ErrValidation)
		}

		total = total.Add(price.Mul(decimal.NewFromInt(int64(quantity))))
		items += quantity
	}

	code, err := s.uniqueOrderCode(ctx)
	if err != nil {
		return nil, nil, err
	}

	address, amount, err := s.paymentPlan(method, total)
	if err != nil {
		return nil, nil, err
	}

	order := &models.Order{
		OrderCode:     code,
		CustomerEmail: req.Email,
		ItemsCount:    items,
		Total:         total.InexactFloat64(),
		PaymentMethod: method.Currency(),
		Status:        models.StatusPending,
	}

	if _, err := s.Repo.CreateOrder(ctx, order); err != nil {
		return nil, nil, err
	}

	resp := &transport.InvoiceResponse{
		OrderID:        code,
		PaymentAddress: address,
		ExactAmount:    amount,
		Currency:       method.Currency(),
		TotalUSD:       total.StringFixed(2),
	}

	return resp, order, nil
}

// CancelOrder moves an order to cancelled through the transition table.
// Cancelling an already-cancelled order is an idempotent success.
func (s *Service) CancelOrder(ctx context.Context, id int) (*models.Order, error) {
	return s.SetStatus(ctx, id, models.StatusCancelled)
}

func (s *Service) SetStatus(ctx context.Context, id int, next models.OrderStatus) (*models.Order, error) {
	order, err := s.Repo.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	if order.Status == next {
		return order, nil
	}
	if !order.Status.CanTransition(next) {
		return nil, fmt.Errorf("%w: cannot transition order from %s to %s", ErrConflict, order.Status, next)
	}

	order.Status = next
	if err := s.Repo.SaveOrder(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}
