// Package entity defines the core business entities of the product catalog.
package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Kind discriminates the concrete product variants. Operations that demand
// an exact variant match (addition) compare kinds, not the shared contract.
type Kind string

const (
	KindProduct    Kind = "product"
	KindSmartphone Kind = "smartphone"
	KindLawnGrass  Kind = "lawn_grass"
)

// Sellable is the capability contract every product variant satisfies.
// Categories and orders hold their products through it.
type Sellable interface {
	ID() uuid.UUID
	Name() string
	Description() string
	Price() decimal.Decimal
	Quantity() int
	Kind() Kind
}

// Titled is the shared contract of the named catalog aggregates
// (categories and orders).
type Titled interface {
	Name() string
	Description() string
}

// ConfirmFunc is the synchronous yes/no collaborator consulted before a
// price reduction is applied.
type ConfirmFunc func(prompt string) bool
