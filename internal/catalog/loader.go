package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/osse101/potionshop/internal/domain"
	"github.com/osse101/potionshop/internal/validation"
)

// File represents a catalog file on disk (JSON or YAML)
type File struct {
	Version     string      `json:"version" yaml:"version"`
	Description string      `json:"description" yaml:"description"`
	Markets     []MarketDef `json:"markets" yaml:"markets"`
	Recipes     []RecipeDef `json:"recipes" yaml:"recipes"`
}

// MarketDef represents a single market in the file
type MarketDef struct {
	Name  string    `json:"name" yaml:"name"`
	Items []ItemDef `json:"items" yaml:"items"`
}

// ItemDef represents a market listing. A missing sell_price means the
// market buys the item back at its buy price.
type ItemDef struct {
	Name      string `json:"name" yaml:"name"`
	BuyPrice  int    `json:"buy_price" yaml:"buy_price"`
	SellPrice *int   `json:"sell_price,omitempty" yaml:"sell_price,omitempty"`
}

// RecipeDef represents a recipe. A missing sell_price means DefaultRecipeSellPrice.
type RecipeDef struct {
	OutputName  string   `json:"output_name" yaml:"output_name"`
	Ingredients []string `json:"ingredients" yaml:"ingredients"`
	SellPrice   *int     `json:"sell_price,omitempty" yaml:"sell_price,omitempty"`
}

// Loader reads catalog files
type Loader interface {
	Load(path string) (*Catalog, error)
}

type fileLoader struct {
	schemaPath      string
	schemaValidator validation.SchemaValidator
}

// NewLoader creates a Loader validating JSON files against the schema at schemaPath
func NewLoader(schemaPath string) Loader {
	return &fileLoader{
		schemaPath:      schemaPath,
		schemaValidator: validation.NewSchemaValidator(),
	}
}

// Load reads, validates and freezes a catalog file. The format is chosen by extension.
func (l *fileLoader) Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadCatalogFailed, err)
	}

	var file File
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ExtJSON:
		if err := l.schemaValidator.ValidateBytes(data, l.schemaPath); err != nil {
			return nil, fmt.Errorf(ErrMsgSchemaFailedFmt, path, err)
		}
		if err := json.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf(ErrMsgParseCatalogFailed, path, err)
		}
	case ExtYAML, ExtYML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&file); err != nil {
			if errors.Is(err, io.EOF) {
				err = errors.New("file is empty")
			}
			return nil, fmt.Errorf(ErrMsgParseCatalogFailed, path, err)
		}
	default:
		return nil, fmt.Errorf(ErrMsgUnsupportedFormat, ext)
	}

	return file.Build()
}

// Build applies file defaults and validates the result
func (f File) Build() (*Catalog, error) {
	markets := make([]domain.Market, 0, len(f.Markets))
	for _, md := range f.Markets {
		items := make([]domain.MarketItem, 0, len(md.Items))
		for _, id := range md.Items {
			sellPrice := id.BuyPrice
			if id.SellPrice != nil {
				sellPrice = *id.SellPrice
			}
			items = append(items, domain.MarketItem{Name: id.Name, BuyPrice: id.BuyPrice, SellPrice: sellPrice})
		}
		markets = append(markets, domain.Market{Name: md.Name, Items: items})
	}

	recipes := make([]domain.Recipe, 0, len(f.Recipes))
	for _, rd := range f.Recipes {
		sellPrice := DefaultRecipeSellPrice
		if rd.SellPrice != nil {
			sellPrice = *rd.SellPrice
		}
		recipes = append(recipes, domain.Recipe{OutputName: rd.OutputName, Ingredients: rd.Ingredients, SellPrice: sellPrice})
	}

	return New(markets, recipes)
}
