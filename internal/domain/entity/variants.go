// Package entity defines the core business entities of the product catalog.
package entity

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Smartphone is a Product variant with hardware attributes. It inherits
// the full Product behavior; addition stays within the smartphone kind.
type Smartphone struct {
	Product

	efficiency float64
	model      string
	memoryGB   int
	color      string
}

// NewSmartphone validates and creates a Smartphone.
func NewSmartphone(name, description string, price decimal.Decimal, quantity int,
	efficiency float64, model string, memoryGB int, color string) (*Smartphone, error) {

	base, err := newProduct(name, description, price, quantity, KindSmartphone)
	if err != nil {
		return nil, err
	}
	notifyCreated("Smartphone", name, description, price, quantity, efficiency, model, memoryGB, color)

	return &Smartphone{
		Product:    *base,
		efficiency: efficiency,
		model:      model,
		memoryGB:   memoryGB,
		color:      color,
	}, nil
}

// Efficiency returns the performance rating.
func (s *Smartphone) Efficiency() float64 { return s.efficiency }

// Model returns the model name.
func (s *Smartphone) Model() string { return s.model }

// MemoryGB returns the storage size in gigabytes.
func (s *Smartphone) MemoryGB() int { return s.memoryGB }

// Color returns the body color.
func (s *Smartphone) Color() string { return s.color }

// GoString renders the constructor-call debug form.
func (s *Smartphone) GoString() string {
	return fmt.Sprintf("Smartphone(name='%s', model='%s', memory=%dGB, color='%s', price=%s, quantity=%d)",
		s.name, s.model, s.memoryGB, s.color, s.price, s.quantity)
}

// LawnGrass is a Product variant for seeded lawn grass.
type LawnGrass struct {
	Product

	country           string
	germinationPeriod string
	color             string
}

// NewLawnGrass validates and creates a LawnGrass.
func NewLawnGrass(name, description string, price decimal.Decimal, quantity int,
	country, germinationPeriod, color string) (*LawnGrass, error) {

	base, err := newProduct(name, description, price, quantity, KindLawnGrass)
	if err != nil {
		return nil, err
	}
	notifyCreated("LawnGrass", name, description, price, quantity, country, germinationPeriod, color)

	return &LawnGrass{
		Product:           *base,
		country:           country,
		germinationPeriod: germinationPeriod,
		color:             color,
	}, nil
}

// Country returns the country of origin.
func (g *LawnGrass) Country() string { return g.country }

// GerminationPeriod returns the germination period.
func (g *LawnGrass) GerminationPeriod() string { return g.germinationPeriod }

// Color returns the grass color.
func (g *LawnGrass) Color() string { return g.color }

// GoString renders the constructor-call debug form.
func (g *LawnGrass) GoString() string {
	return fmt.Sprintf("LawnGrass(name='%s', country='%s', germination_period='%s', color='%s', price=%s, quantity=%d)",
		g.name, g.country, g.germinationPeriod, g.color, g.price, g.quantity)
}
