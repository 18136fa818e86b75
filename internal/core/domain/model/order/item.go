package order

import (
	"errors"
	"fmt"

	"counter/internal/pkg/errs"
	"counter/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem factory method.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a value object representing a single product line within an order.
// It has no identity of its own beyond its position in the order and is
// immutable once created.
//
// Item follows these invariants:
//   - Name must not be empty
//   - Price must be non-negative (a free item is allowed)
//   - Quantity must be positive
type Item struct {
	// name is the product name as entered by the operator
	name string

	// price is the unit price (price 0 is valid, e.g. promotional items)
	price int

	// quantity is the number of units ordered (always at least 1)
	quantity int

	guard guard.ConstructorGuard
}

// NewItem creates a new Item with validation. This is the only way to create
// a valid Item, ensuring all invariants are maintained.
//
// Parameters:
//   - name: Product name (must not be empty)
//   - price: Unit price (must be >= 0)
//   - quantity: Units ordered (must be > 0)
//
// Returns:
//   - Item: the created item if all validations pass
//   - error: joined validation errors if any parameter is invalid
func NewItem(name string, price, quantity int) (Item, error) {
	item := Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setName(name),
		item.setPrice(price),
		item.setQuantity(quantity),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate ensures the Item instance was properly constructed through NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// Name returns the product name.
func (i Item) Name() string {
	return i.name
}

// Price returns the unit price.
func (i Item) Price() int {
	return i.price
}

// Quantity returns the number of units ordered.
func (i Item) Quantity() int {
	return i.quantity
}

// Subtotal returns the line total, price multiplied by quantity.
func (i Item) Subtotal() int {
	return i.price * i.quantity
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	i.name = name
	return nil
}

func (i *Item) setPrice(price int) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price is invalid", fmt.Errorf("%d is negative", price))
	}
	i.price = price
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid", fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}
