package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/stocktrak/stocktrak-backend/pkg/enums"
	"github.com/stocktrak/stocktrak-backend/pkg/types"
)

// Payment records money received against an order. An order can carry
// several partial payments.
type Payment struct {
	ID          int64               `gorm:"column:id;primaryKey;autoIncrement"`
	OrderID     int64               `gorm:"column:order_id;not null"`
	Order       *Order              `gorm:"foreignKey:OrderID"`
	Amount      decimal.Decimal     `gorm:"column:amount;type:numeric(12,2);not null"`
	PaymentDate types.Date          `gorm:"column:payment_date;not null"`
	Status      enums.PaymentStatus `gorm:"column:status;not null;default:'completed'"`
	Method      *string             `gorm:"column:method"`
	CreatedAt   time.Time           `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time           `gorm:"column:updated_at;autoUpdateTime"`
}
