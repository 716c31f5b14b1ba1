package models

import (
	"fmt"
	"strconv"
	"strings"
)

// JSONFloat is a float64 that also accepts a quoted numeric string on input.
// Marketplace clients send price either way, so the value is coerced here
// rather than rejected at binding time.
type JSONFloat float64

func (f *JSONFloat) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("cannot parse %q as a number", s)
	}
	*f = JSONFloat(v)
	return nil
}

// CreateUserRequest is the body for POST /users. PhotoURL is optional.
type CreateUserRequest struct {
	Email       string `json:"email" binding:"required"`
	DisplayName string `json:"displayName" binding:"required"`
	PhotoURL    string `json:"photoURL"`
}

// CreateListingRequest is the body for POST /add-listing. Every field must be
// present and non-zero.
type CreateListingRequest struct {
	Name        string    `json:"name" binding:"required"`
	Category    string    `json:"category" binding:"required"`
	Price       JSONFloat `json:"price" binding:"required"`
	Location    string    `json:"location" binding:"required"`
	Description string    `json:"description" binding:"required"`
	Image       string    `json:"image" binding:"required"`
	Date        string    `json:"date" binding:"required"`
	Email       string    `json:"email" binding:"required"`
}

// CreateOrderRequest is the body for POST /orders. Quantity, price, date and
// notes are optional and stored as sent.
type CreateOrderRequest struct {
	ProductID       string  `json:"productId" binding:"required"`
	ProductName     string  `json:"productName"`
	BuyerName       string  `json:"buyerName" binding:"required"`
	Email           string  `json:"email" binding:"required"`
	Quantity        int     `json:"quantity"`
	Price           float64 `json:"price"`
	Address         string  `json:"address" binding:"required"`
	Phone           string  `json:"phone" binding:"required"`
	Date            string  `json:"date"`
	AdditionalNotes string  `json:"additionalNotes"`
}
