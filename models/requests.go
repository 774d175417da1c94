// Package models holds the request and view types of the API. Amounts and
// PINs arrive as strings and go through an explicit validate-and-parse
// step before any business rule sees them.
package models

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// LoginRequest carries the raw login form values.
type LoginRequest struct {
	Username string `json:"username"`
	PIN      string `json:"pin"`
}

func (r *LoginRequest) Validate() string {
	if r.Username == "" {
		return "username is required"
	}
	if r.PIN == "" {
		return "pin is required"
	}
	if _, err := strconv.Atoi(r.PIN); err != nil {
		return "pin must be numeric"
	}
	return ""
}

// TransferRequest moves money to another username.
type TransferRequest struct {
	To     string `json:"to"`
	Amount string `json:"amount"`
}

func (r *TransferRequest) Validate() string {
	if r.To == "" {
		return "to is required"
	}
	return validateAmount(r.Amount)
}

// ParsedAmount returns the amount as a decimal. Call Validate first.
func (r *TransferRequest) ParsedAmount() decimal.Decimal {
	d, _ := decimal.NewFromString(r.Amount)
	return d
}

// LoanRequest asks for a loan deposit.
type LoanRequest struct {
	Amount string `json:"amount"`
}

func (r *LoanRequest) Validate() string {
	return validateAmount(r.Amount)
}

// ParsedAmount returns the requested amount as a decimal. Call Validate
// first.
func (r *LoanRequest) ParsedAmount() decimal.Decimal {
	d, _ := decimal.NewFromString(r.Amount)
	return d
}

// CloseRequest re-confirms credentials before deleting the account.
type CloseRequest struct {
	Username string `json:"username"`
	PIN      string `json:"pin"`
}

func (r *CloseRequest) Validate() string {
	if r.Username == "" {
		return "username is required"
	}
	if r.PIN == "" {
		return "pin is required"
	}
	if _, err := strconv.Atoi(r.PIN); err != nil {
		return "pin must be numeric"
	}
	return ""
}

func validateAmount(s string) string {
	if s == "" {
		return "amount is required"
	}
	if _, err := decimal.NewFromString(s); err != nil {
		return "amount must be a number"
	}
	return ""
}
