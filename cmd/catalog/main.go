// Package main is the entry point for the catalog demo application.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/Galaxy-Voyager/ecommerce-hw/config"
	"github.com/Galaxy-Voyager/ecommerce-hw/internal/application/usecase/catalog"
	"github.com/Galaxy-Voyager/ecommerce-hw/internal/domain/entity"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	cfg := config.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(cfg.App.LogLevel),
	}))
	slog.SetDefault(logger)

	slog.Info("Starting catalog demo",
		"environment", cfg.App.Environment,
		"file", cfg.Catalog.File,
	)

	counters := entity.NewCounters()
	loader := catalog.NewLoadCatalogUseCase(counters)

	categories, err := loader.Execute(cfg.Catalog.File)
	if err != nil {
		slog.Error("Catalog ingestion failed", "error", err)
		os.Exit(1)
	}

	for _, summary := range catalog.NewSummaryUseCase().Execute(categories) {
		slog.Info("Category loaded",
			"name", summary.Name,
			"products", summary.ProductCount,
			"total_quantity", summary.TotalQuantity,
			"average_price", summary.AveragePrice,
		)
	}

	if order := demoOrder(categories); order != nil {
		slog.Info("Demo order built",
			"order", describe(order),
			"total", order.TotalPrice(),
		)
	}

	slog.Info("Catalog totals",
		"categories", counters.CategoryCount(),
		"products", counters.ProductCount(),
	)
}

// demoOrder builds an order for the first product of the first non-empty
// category.
func demoOrder(categories []*entity.Category) *entity.Order {
	for _, category := range categories {
		product, ok := category.Iterator().Next()
		if !ok {
			continue
		}
		order, err := entity.NewOrder("Демо-заказ", "первый товар каталога", product, 1)
		if err != nil {
			slog.Warn("Demo order rejected", "error", err)
			return nil
		}
		return order
	}
	return nil
}

func describe(t entity.Titled) string {
	return fmt.Sprintf("%s: %s", t.Name(), t.Description())
}

func logLevel(name string) slog.Level {
	switch name {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
