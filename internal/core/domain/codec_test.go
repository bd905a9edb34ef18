package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/gostore/internal/core/domain"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	c := domain.Cart{
		{ID: "b", Title: "Bag", ImageURL: "https://img/b", Price: 19.9, Quantity: 3},
		{ID: "a", Title: "Shoe", ImageURL: "https://img/a", Price: 120, Quantity: 1},
	}

	raw, err := domain.EncodeCart(c)
	require.NoError(t, err)

	got, err := domain.DecodeCart(raw)
	require.NoError(t, err)
	assert.Equal(t, c, got)
}

func TestEncodeCart_WireLayout(t *testing.T) {
	raw, err := domain.EncodeCart(domain.Cart{{ID: "a", Title: "T", ImageURL: "u", Price: 10, Quantity: 1}})
	require.NoError(t, err)

	assert.JSONEq(t, `[{"id":"a","title":"T","image_url":"u","price":10,"quantity":1}]`, raw)
}

func TestEncodeCart_NilIsEmptyArray(t *testing.T) {
	raw, err := domain.EncodeCart(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", raw)
}

func TestDecodeCart_Malformed(t *testing.T) {
	_, err := domain.DecodeCart("{not json")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCartDecode)
}

func TestDecodeCart_Null(t *testing.T) {
	c, err := domain.DecodeCart("null")
	require.NoError(t, err)
	assert.NotNil(t, c)
	assert.Empty(t, c)
}
