package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Galaxy-Voyager/ecommerce-hw/internal/domain/entity"
	domainerror "github.com/Galaxy-Voyager/ecommerce-hw/internal/domain/error"
)

const sampleCatalog = `[
  {
    "name": "Смартфоны",
    "description": "Средства коммуникации",
    "products": [
      {"name": "Samsung Galaxy C23 Ultra", "description": "256GB", "price": 180000.0, "quantity": 5},
      {"name": "Iphone 15", "description": "512GB", "price": 210000.0, "quantity": 8},
      {"name": "Xiaomi Redmi Note 11", "description": "1024GB", "price": 31000.0, "quantity": 14}
    ]
  },
  {
    "name": "Телевизоры",
    "description": "Современные телевизоры",
    "products": [
      {"name": "55\" QLED 4K", "description": "Фоновая подсветка", "price": 123000.0, "quantity": 7}
    ]
  }
]`

func writeCatalog(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func loadCatalog(t *testing.T, content string) ([]*entity.Category, *entity.Counters, error) {
	t.Helper()

	counters := entity.NewCounters()
	categories, err := NewLoadCatalogUseCase(counters).Execute(writeCatalog(t, content))
	return categories, counters, err
}

func requireIngestionError(t *testing.T, err error, fragment string) {
	t.Helper()

	require.Error(t, err)
	var ingestionErr *domainerror.IngestionError
	require.ErrorAs(t, err, &ingestionErr, "every loading failure is an IngestionError")
	assert.Contains(t, err.Error(), fragment)
}

func TestExecuteLoadsSampleCatalog(t *testing.T) {
	categories, counters, err := loadCatalog(t, sampleCatalog)
	require.NoError(t, err)

	require.Len(t, categories, 2)
	assert.Equal(t, "Смартфоны", categories[0].Name())
	assert.Equal(t, "Телевизоры", categories[1].Name())
	assert.Equal(t, 3, categories[0].ProductCount())
	assert.Equal(t, 1, categories[1].ProductCount())

	products := categories[0].Products()
	assert.Equal(t, "Samsung Galaxy C23 Ultra", products[0].Name())
	assert.Equal(t, "Iphone 15", products[1].Name())
	assert.True(t, products[0].Price().Equal(decimal.NewFromInt(180000)))
	assert.Equal(t, 5, products[0].Quantity())

	assert.Equal(t, 2, counters.CategoryCount())
	assert.Equal(t, 4, counters.ProductCount())
}

func TestExecuteEmptyListIsValid(t *testing.T) {
	categories, counters, err := loadCatalog(t, "[]")
	require.NoError(t, err)

	assert.Empty(t, categories)
	assert.Equal(t, 0, counters.CategoryCount())
}

func TestExecuteBlankFilename(t *testing.T) {
	_, err := NewLoadCatalogUseCase(entity.NewCounters()).Execute("   ")
	requireIngestionError(t, err, "имя файла")
}

func TestExecuteMissingFile(t *testing.T) {
	_, err := NewLoadCatalogUseCase(entity.NewCounters()).Execute(
		filepath.Join(t.TempDir(), "nonexistent.json"))
	requireIngestionError(t, err, "файл не найден")
}

func TestExecuteMalformedJSON(t *testing.T) {
	_, _, err := loadCatalog(t, `{"invalid": `)
	requireIngestionError(t, err, "ошибка JSON")
}

func TestExecuteInvalidUTF8(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte{'[', 0xff, 0xfe, ']'}, 0o600))

	_, err := NewLoadCatalogUseCase(entity.NewCounters()).Execute(path)
	requireIngestionError(t, err, "UTF-8")
}

func TestExecuteTopLevelMustBeList(t *testing.T) {
	_, _, err := loadCatalog(t, `{"invalid": "data"}`)
	requireIngestionError(t, err, "ожидается список категорий")
}

func TestExecuteCategoryMustBeObject(t *testing.T) {
	_, _, err := loadCatalog(t, `[42]`)
	requireIngestionError(t, err, "категория должна быть объектом")
}

func TestExecuteReportsMissingCategoryFields(t *testing.T) {
	_, _, err := loadCatalog(t, `[{"name": "Test"}]`)

	requireIngestionError(t, err, "отсутствуют поля")
	assert.Contains(t, err.Error(), "description")
	assert.Contains(t, err.Error(), "products")
}

func TestExecuteProductsMustBeList(t *testing.T) {
	_, _, err := loadCatalog(t,
		`[{"name": "Test", "description": "Desc", "products": "not-a-list"}]`)
	requireIngestionError(t, err, "продукты должны быть списком")
}

func TestExecuteProductCoercion(t *testing.T) {
	tests := []struct {
		name     string
		product  string
		fragment string
	}{
		{
			name:     "price not a number",
			product:  `{"name": "P1", "description": "Desc", "price": "not-a-number", "quantity": 5}`,
			fragment: "не является числом",
		},
		{
			name:     "quantity not a number",
			product:  `{"name": "P1", "description": "Desc", "price": 100.0, "quantity": "abc"}`,
			fragment: "не является целым числом",
		},
		{
			name:     "fractional quantity",
			product:  `{"name": "P1", "description": "Desc", "price": 100.0, "quantity": 5.5}`,
			fragment: "не является целым числом",
		},
		{
			name:     "missing quantity",
			product:  `{"name": "P1", "description": "Desc", "price": 100.0}`,
			fragment: `отсутствует поле "quantity"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := loadCatalog(t,
				`[{"name": "Test", "description": "Desc", "products": [`+tt.product+`]}]`)

			requireIngestionError(t, err, "ошибка в данных товара")
			assert.Contains(t, err.Error(), tt.fragment, "the underlying cause is cited")
		})
	}
}

func TestExecuteCoercesNumericStrings(t *testing.T) {
	categories, _, err := loadCatalog(t,
		`[{"name": "Test", "description": "Desc", "products": [
			{"name": "P1", "description": "Desc", "price": "100.5", "quantity": "12"}
		]}]`)
	require.NoError(t, err)

	p := categories[0].Products()[0]
	assert.True(t, p.Price().Equal(decimal.NewFromFloat(100.5)))
	assert.Equal(t, 12, p.Quantity())
}

func TestExecuteZeroQuantityProduct(t *testing.T) {
	_, _, err := loadCatalog(t,
		`[{"name": "Test", "description": "Desc", "products": [
			{"name": "P1", "description": "Desc", "price": 100.0, "quantity": 0}
		]}]`)

	requireIngestionError(t, err, "ошибка в данных товара")

	var zeroErr *domainerror.ZeroQuantityError
	assert.ErrorAs(t, err, &zeroErr)
}

func TestExecuteCategoryConstructionFailure(t *testing.T) {
	_, _, err := loadCatalog(t, `[{"name": "   ", "description": "Desc", "products": []}]`)
	requireIngestionError(t, err, "ошибка создания категории")
}

func TestExecuteCoercesNumericCategoryName(t *testing.T) {
	categories, _, err := loadCatalog(t,
		`[{"name": 123, "description": "Desc", "products": []}]`)
	require.NoError(t, err)

	assert.Equal(t, "123", categories[0].Name())
}

func TestExecutePartialFailureKeepsEarlierRegistrations(t *testing.T) {
	counters := entity.NewCounters()
	content := `[
		{"name": "Good", "description": "Desc", "products": []},
		{"name": "Bad", "description": "Desc", "products": [
			{"name": "P1", "description": "Desc", "price": 100.0, "quantity": "abc"}
		]}
	]`

	_, err := NewLoadCatalogUseCase(counters).Execute(writeCatalog(t, content))
	require.Error(t, err)

	// Categories constructed before the defect stay registered; callers
	// discard the handle together with the failed load.
	assert.Equal(t, 1, counters.CategoryCount())
}
