package client

import (
	"github.com/shopspring/decimal"

	pkgerrors "github.com/stocktrak/stocktrak-backend/pkg/errors"
	"github.com/stocktrak/stocktrak-backend/pkg/types"
)

// DraftLine is one product line being composed locally before submit.
type DraftLine struct {
	ProductID   int64
	ProductName string
	UnitPrice   decimal.Decimal
	Quantity    int
}

// Total returns line quantity times unit price.
func (l DraftLine) Total() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// OrderDraft accumulates an order locally. Adding a product that is
// already present merges into the existing line instead of appending a
// duplicate.
type OrderDraft struct {
	CustomerID int64
	SupplierID int64
	OrderDate  *types.Date
	lines      []DraftLine
}

// NewOrderDraft starts an empty draft.
func NewOrderDraft() *OrderDraft {
	return &OrderDraft{}
}

// OrderDraftFrom hydrates a draft from an existing order so it can be
// edited. Lines are re-linked by product id; duplicate product lines in
// the source collapse into one.
func OrderDraftFrom(order Order) *OrderDraft {
	draft := &OrderDraft{
		CustomerID: order.CustomerID,
		SupplierID: order.SupplierID,
	}
	date := order.OrderDate
	draft.OrderDate = &date
	for _, item := range order.Items {
		draft.AddItem(Product{
			ID:    item.ProductID,
			Name:  item.ProductName,
			Price: item.UnitPrice,
		}, item.Quantity)
	}
	return draft
}

// AddItem merges quantity into an existing line for the product, or
// appends a new line priced from the catalog snapshot.
func (d *OrderDraft) AddItem(product Product, quantity int) {
	if quantity <= 0 {
		return
	}
	for i := range d.lines {
		if d.lines[i].ProductID == product.ID {
			d.lines[i].Quantity += quantity
			return
		}
	}
	d.lines = append(d.lines, DraftLine{
		ProductID:   product.ID,
		ProductName: product.Name,
		UnitPrice:   product.Price,
		Quantity:    quantity,
	})
}

// RemoveItem drops the line at index; later lines shift down.
func (d *OrderDraft) RemoveItem(index int) {
	if index < 0 || index >= len(d.lines) {
		return
	}
	d.lines = append(d.lines[:index], d.lines[index+1:]...)
}

// SetQuantity overwrites the quantity of the line at index. A
// non-positive quantity removes the line.
func (d *OrderDraft) SetQuantity(index, quantity int) {
	if index < 0 || index >= len(d.lines) {
		return
	}
	if quantity <= 0 {
		d.RemoveItem(index)
		return
	}
	d.lines[index].Quantity = quantity
}

// Lines returns a copy of the draft's lines in insertion order.
func (d *OrderDraft) Lines() []DraftLine {
	out := make([]DraftLine, len(d.lines))
	copy(out, d.lines)
	return out
}

// Total recomputes the draft total from its current lines.
func (d *OrderDraft) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range d.lines {
		total = total.Add(line.Total())
	}
	return total
}

// Build validates the draft and produces the submit payload. It fails
// before any network call when the customer or supplier is missing or
// no lines were added.
func (d *OrderDraft) Build() (OrderInput, error) {
	if d.CustomerID <= 0 {
		return OrderInput{}, pkgerrors.New(pkgerrors.CodeValidation, "order draft needs a customer")
	}
	if d.SupplierID <= 0 {
		return OrderInput{}, pkgerrors.New(pkgerrors.CodeValidation, "order draft needs a supplier")
	}
	if len(d.lines) == 0 {
		return OrderInput{}, pkgerrors.New(pkgerrors.CodeValidation, "order draft needs at least one line")
	}

	input := OrderInput{
		CustomerID: d.CustomerID,
		SupplierID: d.SupplierID,
		OrderDate:  d.OrderDate,
		Items:      make([]OrderItemInput, 0, len(d.lines)),
	}
	for _, line := range d.lines {
		input.Items = append(input.Items, OrderItemInput{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		})
	}
	return input, nil
}

// ShipmentDraft accumulates a shipment for one order locally.
type ShipmentDraft struct {
	OrderID      int64
	ShipmentDate *types.Date
	lines        []DraftLine
}

// NewShipmentDraft starts an empty draft for the given order.
func NewShipmentDraft(orderID int64) *ShipmentDraft {
	return &ShipmentDraft{OrderID: orderID}
}

// AddItem merges quantity into an existing line for the product.
func (d *ShipmentDraft) AddItem(product Product, quantity int) {
	if quantity <= 0 {
		return
	}
	for i := range d.lines {
		if d.lines[i].ProductID == product.ID {
			d.lines[i].Quantity += quantity
			return
		}
	}
	d.lines = append(d.lines, DraftLine{
		ProductID:   product.ID,
		ProductName: product.Name,
		UnitPrice:   product.Price,
		Quantity:    quantity,
	})
}

// RemoveItem drops the line at index; later lines shift down.
func (d *ShipmentDraft) RemoveItem(index int) {
	if index < 0 || index >= len(d.lines) {
		return
	}
	d.lines = append(d.lines[:index], d.lines[index+1:]...)
}

// SetQuantity overwrites the quantity of the line at index.
func (d *ShipmentDraft) SetQuantity(index, quantity int) {
	if index < 0 || index >= len(d.lines) {
		return
	}
	if quantity <= 0 {
		d.RemoveItem(index)
		return
	}
	d.lines[index].Quantity = quantity
}

// Lines returns a copy of the draft's lines in insertion order.
func (d *ShipmentDraft) Lines() []DraftLine {
	out := make([]DraftLine, len(d.lines))
	copy(out, d.lines)
	return out
}

// Build validates the draft and produces the submit payload.
func (d *ShipmentDraft) Build() (ShipmentInput, error) {
	if d.OrderID <= 0 {
		return ShipmentInput{}, pkgerrors.New(pkgerrors.CodeValidation, "shipment draft needs an order")
	}
	if len(d.lines) == 0 {
		return ShipmentInput{}, pkgerrors.New(pkgerrors.CodeValidation, "shipment draft needs at least one line")
	}

	input := ShipmentInput{
		OrderID:      d.OrderID,
		ShipmentDate: d.ShipmentDate,
		Items:        make([]ShipmentItemInput, 0, len(d.lines)),
	}
	for _, line := range d.lines {
		input.Items = append(input.Items, ShipmentItemInput{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		})
	}
	return input, nil
}
