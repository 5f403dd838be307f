// Package steps defines the Godog step implementations for the catalog
// ingestion features.
package steps

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cucumber/godog"

	"github.com/Galaxy-Voyager/ecommerce-hw/internal/application/usecase/catalog"
	"github.com/Galaxy-Voyager/ecommerce-hw/internal/domain/entity"
	domainerror "github.com/Galaxy-Voyager/ecommerce-hw/internal/domain/error"
)

type catalogContext struct {
	dir        string
	filename   string
	counters   *entity.Counters
	categories []*entity.Category
	loadErr    error
}

// InitializeScenario registers the catalog ingestion steps.
func InitializeScenario(sc *godog.ScenarioContext) {
	tc := &catalogContext{}

	sc.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		dir, err := os.MkdirTemp("", "catalog-*")
		if err != nil {
			return ctx, err
		}
		tc.dir = dir
		tc.filename = ""
		tc.counters = entity.NewCounters()
		tc.categories = nil
		tc.loadErr = nil
		return ctx, nil
	})
	sc.After(func(ctx context.Context, _ *godog.Scenario, err error) (context.Context, error) {
		if tc.dir != "" {
			_ = os.RemoveAll(tc.dir)
		}
		return ctx, err
	})

	sc.Step(`^a catalog file containing:$`, tc.aCatalogFileContaining)
	sc.Step(`^no catalog file exists$`, tc.noCatalogFileExists)
	sc.Step(`^the catalog is loaded$`, tc.theCatalogIsLoaded)
	sc.Step(`^loading succeeds with (\d+) categories$`, tc.loadingSucceedsWithCategories)
	sc.Step(`^loading fails with an ingestion error mentioning "([^"]*)"$`, tc.loadingFailsMentioning)
	sc.Step(`^the counters report (\d+) categories and (\d+) products$`, tc.countersReport)
	sc.Step(`^category (\d+) holds (\d+) products$`, tc.categoryHoldsProducts)
}

func (tc *catalogContext) aCatalogFileContaining(doc *godog.DocString) error {
	tc.filename = filepath.Join(tc.dir, "catalog.json")
	return os.WriteFile(tc.filename, []byte(doc.Content), 0o600)
}

func (tc *catalogContext) noCatalogFileExists() error {
	tc.filename = filepath.Join(tc.dir, "nonexistent.json")
	return nil
}

func (tc *catalogContext) theCatalogIsLoaded() error {
	loader := catalog.NewLoadCatalogUseCase(tc.counters)
	tc.categories, tc.loadErr = loader.Execute(tc.filename)
	return nil
}

func (tc *catalogContext) loadingSucceedsWithCategories(count int) error {
	if tc.loadErr != nil {
		return fmt.Errorf("expected success, got error: %w", tc.loadErr)
	}
	if len(tc.categories) != count {
		return fmt.Errorf("expected %d categories, got %d", count, len(tc.categories))
	}
	return nil
}

func (tc *catalogContext) loadingFailsMentioning(fragment string) error {
	if tc.loadErr == nil {
		return errors.New("expected an error, load succeeded")
	}
	var ingestionErr *domainerror.IngestionError
	if !errors.As(tc.loadErr, &ingestionErr) {
		return fmt.Errorf("expected an IngestionError, got %T: %v", tc.loadErr, tc.loadErr)
	}
	if !strings.Contains(tc.loadErr.Error(), fragment) {
		return fmt.Errorf("error %q does not mention %q", tc.loadErr, fragment)
	}
	return nil
}

func (tc *catalogContext) countersReport(categories, products int) error {
	if got := tc.counters.CategoryCount(); got != categories {
		return fmt.Errorf("expected %d categories in counters, got %d", categories, got)
	}
	if got := tc.counters.ProductCount(); got != products {
		return fmt.Errorf("expected %d products in counters, got %d", products, got)
	}
	return nil
}

func (tc *catalogContext) categoryHoldsProducts(index, count int) error {
	if index < 1 || index > len(tc.categories) {
		return fmt.Errorf("no category %d in a catalog of %d", index, len(tc.categories))
	}
	if got := tc.categories[index-1].ProductCount(); got != count {
		return fmt.Errorf("expected category %d to hold %d products, got %d", index, count, got)
	}
	return nil
}
