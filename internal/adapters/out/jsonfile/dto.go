// Package jsonfile provides data transfer objects and mapping functions for
// order persistence in flat JSON files. This package implements the
// OrderStore port for the order domain aggregate, handling the conversion
// between domain entities and their file representations.
package jsonfile

import (
	"counter/internal/core/domain/model/kernel"
	"counter/internal/core/domain/model/order"
)

// OrderDTO represents the file structure for persisting order aggregates.
// Field names are part of the on-disk contract and must stay stable.
// Status is positional: which file an order lives in determines it.
type OrderDTO struct {
	OrderID  string    `json:"order_id"`
	Customer string    `json:"customer"`
	Items    []ItemDTO `json:"items"`
}

// ItemDTO represents one product line within the persisted order.
type ItemDTO struct {
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Quantity int    `json:"quantity"`
}

// fromDomain converts an order domain aggregate to its file representation.
func fromDomain(o *order.Order) OrderDTO {
	items := make([]ItemDTO, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, ItemDTO{
			Name:     item.Name(),
			Price:    item.Price(),
			Quantity: item.Quantity(),
		})
	}

	return OrderDTO{
		OrderID:  o.ID().String(),
		Customer: o.Customer(),
		Items:    items,
	}
}

// toDomain converts a file DTO to an order domain aggregate with the given
// status. Reconstruction goes through RestoreOrder so corrupt records are
// rejected instead of producing invalid aggregates.
func toDomain(dto OrderDTO, status order.Status) (*order.Order, error) {
	id, err := kernel.NewOrderID(dto.OrderID)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := order.NewItem(itemDTO.Name, itemDTO.Price, itemDTO.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(id, dto.Customer, items, status)
}
