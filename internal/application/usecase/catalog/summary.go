// Package catalog contains catalog-related use cases.
package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/Galaxy-Voyager/ecommerce-hw/internal/domain/entity"
)

// CategorySummary is a derived read model over one category.
type CategorySummary struct {
	Name          string
	ProductCount  int
	TotalQuantity int
	AveragePrice  decimal.Decimal
}

// SummaryUseCase folds loaded categories into display totals.
type SummaryUseCase struct{}

// NewSummaryUseCase creates the use case.
func NewSummaryUseCase() *SummaryUseCase {
	return &SummaryUseCase{}
}

// Execute walks every category through its iterator and aggregates the
// totals in catalog order.
func (uc *SummaryUseCase) Execute(categories []*entity.Category) []CategorySummary {
	summaries := make([]CategorySummary, 0, len(categories))
	for _, category := range categories {
		summary := CategorySummary{
			Name:         category.Name(),
			AveragePrice: category.AveragePrice(),
		}
		it := category.Iterator()
		for {
			product, ok := it.Next()
			if !ok {
				break
			}
			summary.ProductCount++
			summary.TotalQuantity += product.Quantity()
		}
		summaries = append(summaries, summary)
	}
	return summaries
}
