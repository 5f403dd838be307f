// Package catalog contains catalog-related use cases.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/Galaxy-Voyager/ecommerce-hw/internal/domain/entity"
	domainerror "github.com/Galaxy-Voyager/ecommerce-hw/internal/domain/error"
)

// requiredCategoryFields are the keys every category object in the
// document must carry.
var requiredCategoryFields = []string{"name", "description", "products"}

// LoadCatalogUseCase parses a JSON catalog document into validated
// Category entities registered with one shared counters handle. Every
// failure surfaces as an IngestionError carrying the cause message; raw
// I/O and decoding errors never escape unwrapped.
type LoadCatalogUseCase struct {
	counters *entity.Counters
}

// NewLoadCatalogUseCase creates the use case.
func NewLoadCatalogUseCase(counters *entity.Counters) *LoadCatalogUseCase {
	return &LoadCatalogUseCase{counters: counters}
}

// Execute loads the catalog document at filename and returns the ordered
// list of constructed categories. An empty top-level list is a valid,
// empty catalog.
func (uc *LoadCatalogUseCase) Execute(filename string) ([]*entity.Category, error) {
	if strings.TrimSpace(filename) == "" {
		return nil, domainerror.NewIngestionError("имя файла должно быть непустой строкой", nil)
	}

	raw, err := os.ReadFile(filename)
	if err != nil {
		return nil, domainerror.NewIngestionError("файл не найден или недоступен", err)
	}
	if !utf8.Valid(raw) {
		return nil, domainerror.NewIngestionError("файл должен быть текстом в кодировке UTF-8", nil)
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, domainerror.NewIngestionError("ошибка JSON", err)
	}
	entries, ok := doc.([]any)
	if !ok {
		return nil, domainerror.NewIngestionError("ожидается список категорий", nil)
	}

	categories := make([]*entity.Category, 0, len(entries))
	for _, entry := range entries {
		category, err := uc.parseCategory(entry)
		if err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}

	slog.Info("Каталог загружен", "file", filename, "categories", len(categories))
	return categories, nil
}

func (uc *LoadCatalogUseCase) parseCategory(entry any) (*entity.Category, error) {
	fields, ok := entry.(map[string]any)
	if !ok {
		return nil, domainerror.NewIngestionError("категория должна быть объектом", nil)
	}

	var missing []string
	for _, key := range requiredCategoryFields {
		if _, ok := fields[key]; !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, domainerror.NewIngestionError(
			fmt.Sprintf("отсутствуют поля: {%s}", strings.Join(missing, ", ")), nil)
	}

	rawProducts, ok := fields["products"].([]any)
	if !ok {
		return nil, domainerror.NewIngestionError("продукты должны быть списком", nil)
	}

	products := make([]entity.Sellable, 0, len(rawProducts))
	for _, rawProduct := range rawProducts {
		product, err := parseProduct(rawProduct)
		if err != nil {
			return nil, domainerror.NewIngestionError("ошибка в данных товара", err)
		}
		products = append(products, product)
	}

	name, err := coerceString(fields["name"], "name")
	if err != nil {
		return nil, domainerror.NewIngestionError("ошибка создания категории", err)
	}
	description, err := coerceString(fields["description"], "description")
	if err != nil {
		return nil, domainerror.NewIngestionError("ошибка создания категории", err)
	}

	category, err := entity.NewCategory(uc.counters, name, description, products)
	if err != nil {
		return nil, domainerror.NewIngestionError("ошибка создания категории", err)
	}
	return category, nil
}

func parseProduct(raw any) (*entity.Product, error) {
	fields, ok := raw.(map[string]any)
	if !ok {
		return nil, errors.New("товар должен быть объектом")
	}

	name, err := coerceString(requireField(fields, "name"))
	if err != nil {
		return nil, err
	}
	description, err := coerceString(requireField(fields, "description"))
	if err != nil {
		return nil, err
	}
	price, err := coercePrice(requireField(fields, "price"))
	if err != nil {
		return nil, err
	}
	quantity, err := coerceQuantity(requireField(fields, "quantity"))
	if err != nil {
		return nil, err
	}

	return entity.NewProduct(name, description, price, quantity)
}

// requireField keeps the missing-key cause distinct from a wrong-type
// cause; the field name doubles as the coercion context.
func requireField(fields map[string]any, key string) (any, string) {
	v, ok := fields[key]
	if !ok {
		return missingKey(key), key
	}
	return v, key
}

type missingKey string

func coerceString(v any, field string) (string, error) {
	switch s := v.(type) {
	case missingKey:
		return "", fmt.Errorf("отсутствует поле %q", field)
	case string:
		return s, nil
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64), nil
	default:
		return "", fmt.Errorf("поле %q должно быть строкой", field)
	}
}

func coercePrice(v any, field string) (decimal.Decimal, error) {
	switch n := v.(type) {
	case missingKey:
		return decimal.Zero, fmt.Errorf("отсутствует поле %q", field)
	case float64:
		return decimal.NewFromFloat(n), nil
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(n))
		if err != nil {
			return decimal.Zero, fmt.Errorf("цена %q не является числом", n)
		}
		return d, nil
	default:
		return decimal.Zero, fmt.Errorf("поле %q должно быть числом", field)
	}
}

func coerceQuantity(v any, field string) (int, error) {
	switch n := v.(type) {
	case missingKey:
		return 0, fmt.Errorf("отсутствует поле %q", field)
	case float64:
		if n != math.Trunc(n) {
			return 0, fmt.Errorf("количество %v не является целым числом", n)
		}
		return int(n), nil
	case string:
		q, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, fmt.Errorf("количество %q не является целым числом", n)
		}
		return q, nil
	default:
		return 0, fmt.Errorf("поле %q должно быть целым числом", field)
	}
}
