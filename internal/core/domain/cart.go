// Package domain holds the cart model and its pure operations.
package domain

import "slices"

// StorageKey is the default key under which the serialized cart is persisted.
const StorageKey = "@GoStore"

// Product is a catalog entry that can be put into the cart.
type Product struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	ImageURL string  `json:"image_url"`
	Price    float64 `json:"price"`
}

// CartItem is a line item: a product plus the quantity selected.
// Quantity is always at least 1 for items held in a cart.
type CartItem struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	ImageURL string  `json:"image_url"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Product returns the item without its quantity.
func (i CartItem) Product() Product {
	return Product{ID: i.ID, Title: i.Title, ImageURL: i.ImageURL, Price: i.Price}
}

// Cart is an ordered sequence of line items, most recently added first.
// Cart values are treated as immutable: every operation returns a new slice.
type Cart []CartItem

// Find returns the index of the item with the given id, or -1.
func (c Cart) Find(id string) int {
	return slices.IndexFunc(c, func(item CartItem) bool { return item.ID == id })
}

// Add returns a cart with p added. An existing item with the same id gets its
// quantity bumped and keeps its stored fields; otherwise p is prepended with quantity 1.
func (c Cart) Add(p Product) Cart {
	if c.Find(p.ID) >= 0 {
		return c.Increment(p.ID)
	}

	next := make(Cart, 0, len(c)+1)
	next = append(next, CartItem{
		ID:       p.ID,
		Title:    p.Title,
		ImageURL: p.ImageURL,
		Price:    p.Price,
		Quantity: 1,
	})
	return append(next, c...)
}

// Increment returns a cart where the item with the given id has one more unit.
// Unknown ids yield an equal copy.
func (c Cart) Increment(id string) Cart {
	return c.adjust(id, 1)
}

// Decrement returns a cart where the item with the given id has one unit less.
// Items left with a quantity of zero or below are dropped.
func (c Cart) Decrement(id string) Cart {
	next := c.adjust(id, -1)
	return slices.DeleteFunc(next, func(item CartItem) bool { return item.Quantity <= 0 })
}

func (c Cart) adjust(id string, delta int) Cart {
	next := slices.Clone(c)
	if next == nil {
		next = Cart{}
	}
	for i := range next {
		if next[i].ID == id {
			next[i].Quantity += delta
		}
	}
	return next
}

// Summary aggregates a cart for display.
type Summary struct {
	Lines int
	Units int
	Total float64
}

// Summarize computes the number of lines, units and the total price of the cart.
func (c Cart) Summarize() Summary {
	var s Summary
	for _, item := range c {
		s.Lines++
		s.Units += item.Quantity
		s.Total += item.Price * float64(item.Quantity)
	}
	return s
}
