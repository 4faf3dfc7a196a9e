package models

import "time"

// Supplier is a vendor that fulfills shipments.
type Supplier struct {
	ID        int64      `gorm:"column:id;primaryKey;autoIncrement"`
	Name      string     `gorm:"column:name;not null"`
	Email     string     `gorm:"column:email;not null;uniqueIndex:uq_suppliers_email"`
	Phone     *string    `gorm:"column:phone"`
	Address   *string    `gorm:"column:address"`
	Products  []Product  `gorm:"foreignKey:SupplierID"`
	Orders    []Order    `gorm:"foreignKey:SupplierID"`
	CreatedAt time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}
