package domain

import (
	"encoding/json"
	"errors"

	"go.trai.ch/zerr"
)

// EncodeCart serializes the cart into its persisted JSON layout.
// A nil cart is encoded as an empty array.
func EncodeCart(c Cart) (string, error) {
	if c == nil {
		c = Cart{}
	}
	data, err := json.Marshal(c)
	if err != nil {
		return "", zerr.Wrap(err, "failed to encode cart")
	}
	return string(data), nil
}

// DecodeCart parses a persisted cart. No schema validation is performed.
func DecodeCart(raw string) (Cart, error) {
	var c Cart
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		return nil, errors.Join(ErrCartDecode, zerr.Wrap(err, "failed to unmarshal cart"))
	}
	if c == nil {
		c = Cart{}
	}
	return c, nil
}
