package payments

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/stocktrak/stocktrak-backend/internal/orders"
	"github.com/stocktrak/stocktrak-backend/pkg/classify"
	"github.com/stocktrak/stocktrak-backend/pkg/db/models"
	"github.com/stocktrak/stocktrak-backend/pkg/enums"
	pkgerrors "github.com/stocktrak/stocktrak-backend/pkg/errors"
	"github.com/stocktrak/stocktrak-backend/pkg/pagination"
	"github.com/stocktrak/stocktrak-backend/pkg/types"
)

type service struct {
	repo   Repository
	orders OrderFinder
}

// NewService builds a payments service with the required dependencies.
func NewService(repo Repository, orderFinder OrderFinder) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("payments repository required")
	}
	if orderFinder == nil {
		return nil, fmt.Errorf("order finder required")
	}
	return &service{repo: repo, orders: orderFinder}, nil
}

func (s *service) Create(ctx context.Context, input CreateInput) (*Row, error) {
	if input.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "amount must be positive")
	}

	status := enums.PaymentStatusCompleted
	if input.Status != nil {
		if !input.Status.IsValid() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown payment status")
		}
		status = *input.Status
	}

	order, err := s.orders.FindByID(ctx, input.OrderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "looking up order")
	}

	// Failed payments never count toward amount_paid, so they cannot
	// overpay the order either.
	if status != enums.PaymentStatusFailed {
		total := orders.Total(*order)
		paid := orders.AmountPaid(*order)
		if paid.Add(input.Amount).GreaterThan(total) {
			return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "payment exceeds order total").
				WithDetails(map[string]any{
					"total_amount": total.String(),
					"amount_paid":  paid.String(),
				})
		}
	}

	paymentDate := types.Today()
	if input.PaymentDate != nil {
		paymentDate = *input.PaymentDate
	}

	payment := &models.Payment{
		OrderID:     input.OrderID,
		Amount:      input.Amount,
		PaymentDate: paymentDate,
		Status:      status,
		Method:      input.Method,
	}
	if _, err := s.repo.Create(ctx, payment); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "creating payment")
	}
	return s.Get(ctx, payment.ID)
}

func (s *service) Get(ctx context.Context, id int64) (*Row, error) {
	payment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "payment not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading payment")
	}
	row := toRow(*payment)
	return &row, nil
}

func (s *service) List(ctx context.Context, page pagination.Page, filters Filters) (pagination.Result[Row], error) {
	payments, total, err := s.repo.List(ctx, page, filters)
	if err != nil {
		return pagination.Result[Row]{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing payments")
	}
	rows := make([]Row, 0, len(payments))
	for _, payment := range payments {
		rows = append(rows, toRow(payment))
	}
	return pagination.NewResult(rows, total, page), nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "payment not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading payment")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "deleting payment")
	}
	return nil
}

func toRow(payment models.Payment) Row {
	row := Row{
		ID:          payment.ID,
		OrderID:     payment.OrderID,
		Amount:      payment.Amount,
		PaymentDate: payment.PaymentDate,
		Status:      payment.Status,
		StatusBadge: classify.PaymentBadge(payment.Status.String()),
		Method:      payment.Method,
	}
	if payment.Order != nil {
		row.OrderDate = payment.Order.OrderDate
		if payment.Order.Customer != nil {
			row.CustomerName = payment.Order.Customer.Name
		}
	}
	return row
}
