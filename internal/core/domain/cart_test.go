package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/gostore/internal/core/domain"
)

func sampleProduct(id string) domain.Product {
	return domain.Product{ID: id, Title: "T-" + id, ImageURL: "https://img/" + id, Price: 10}
}

func TestCart_Add_NewItemIsPrepended(t *testing.T) {
	c := domain.Cart{}.Add(sampleProduct("a")).Add(sampleProduct("b"))

	require.Len(t, c, 2)
	assert.Equal(t, "b", c[0].ID)
	assert.Equal(t, "a", c[1].ID)
	assert.Equal(t, 1, c[0].Quantity)
}

func TestCart_Add_ExistingKeepsStoredFields(t *testing.T) {
	c := domain.Cart{}.Add(sampleProduct("a"))

	changed := domain.Product{ID: "a", Title: "other", ImageURL: "other", Price: 99}
	next := c.Add(changed)

	require.Len(t, next, 1)
	assert.Equal(t, 2, next[0].Quantity)
	assert.Equal(t, "T-a", next[0].Title)
	assert.Equal(t, "https://img/a", next[0].ImageURL)
	assert.InDelta(t, 10.0, next[0].Price, 0)
}

func TestCart_Add_DoesNotMutateReceiver(t *testing.T) {
	c := domain.Cart{}.Add(sampleProduct("a"))
	_ = c.Add(sampleProduct("a"))
	_ = c.Increment("a")
	_ = c.Decrement("a")

	assert.Equal(t, 1, c[0].Quantity)
}

func TestCart_Increment(t *testing.T) {
	c := domain.Cart{}.Add(sampleProduct("a")).Add(sampleProduct("b"))

	next := c.Increment("a")
	assert.Equal(t, 2, next[1].Quantity)
	assert.Equal(t, 1, next[0].Quantity)
}

func TestCart_UnknownIDLeavesItemsUnchanged(t *testing.T) {
	c := domain.Cart{}.Add(sampleProduct("a")).Increment("a")

	assert.Equal(t, c, c.Increment("missing"))
	assert.Equal(t, c, c.Decrement("missing"))
}

func TestCart_DecrementRemovesAtZero(t *testing.T) {
	c := domain.Cart{}.Add(sampleProduct("a")).Add(sampleProduct("b")).Increment("b")

	next := c.Decrement("a")
	require.Len(t, next, 1)
	assert.Equal(t, "b", next[0].ID)

	next = next.Decrement("b")
	require.Len(t, next, 1)
	assert.Equal(t, 1, next[0].Quantity)

	next = next.Decrement("b")
	assert.Empty(t, next)
}

func TestCart_Invariants(t *testing.T) {
	ops := []func(domain.Cart) domain.Cart{
		func(c domain.Cart) domain.Cart { return c.Add(sampleProduct("a")) },
		func(c domain.Cart) domain.Cart { return c.Add(sampleProduct("b")) },
		func(c domain.Cart) domain.Cart { return c.Decrement("a") },
		func(c domain.Cart) domain.Cart { return c.Add(sampleProduct("a")) },
		func(c domain.Cart) domain.Cart { return c.Increment("b") },
		func(c domain.Cart) domain.Cart { return c.Decrement("b") },
		func(c domain.Cart) domain.Cart { return c.Decrement("b") },
		func(c domain.Cart) domain.Cart { return c.Decrement("zzz") },
		func(c domain.Cart) domain.Cart { return c.Add(sampleProduct("c")) },
	}

	c := domain.Cart{}
	for i, op := range ops {
		before := len(c)
		c = op(c)

		seen := make(map[string]bool)
		for _, item := range c {
			assert.GreaterOrEqual(t, item.Quantity, 1, "step %d", i)
			assert.False(t, seen[item.ID], "duplicate id %q at step %d", item.ID, i)
			seen[item.ID] = true
		}
		assert.LessOrEqual(t, len(c), before+1, "step %d", i)
	}
}

func TestCart_Scenario(t *testing.T) {
	p := domain.Product{ID: "a", Title: "T", ImageURL: "u", Price: 10}

	c := domain.Cart{}.Add(p)
	assert.Equal(t, domain.Cart{{ID: "a", Title: "T", ImageURL: "u", Price: 10, Quantity: 1}}, c)

	c = c.Add(p)
	assert.Equal(t, 2, c[0].Quantity)

	c = c.Decrement("a")
	assert.Equal(t, 1, c[0].Quantity)

	c = c.Decrement("a")
	assert.Empty(t, c)
}

func TestCart_Summarize(t *testing.T) {
	c := domain.Cart{
		{ID: "a", Price: 2.5, Quantity: 2},
		{ID: "b", Price: 10, Quantity: 1},
	}

	s := c.Summarize()
	assert.Equal(t, 2, s.Lines)
	assert.Equal(t, 3, s.Units)
	assert.InDelta(t, 15.0, s.Total, 1e-9)
}
