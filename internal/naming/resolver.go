package naming

import (
	"strings"
	"sync"

	"golang.org/x/text/cases"

	"github.com/osse101/potionshop/internal/catalog"
)

// Resolver maps what a player typed to the canonical catalog name
type Resolver interface {
	// ResolveMarket returns the catalog name of the market the input refers to
	ResolveMarket(input string) (string, bool)

	// ResolveItem returns the catalog name of a market item or recipe output
	ResolveItem(input string) (string, bool)
}

type resolver struct {
	mu sync.Mutex

	// cases.Caser is stateful; guarded by mu
	fold cases.Caser

	// folded key -> canonical name
	markets map[string]string
	items   map[string]string
}

// NewResolver indexes every market, market item and recipe output in the
// catalog. On a folded-key collision the first name in catalog order wins.
func NewResolver(cat *catalog.Catalog) Resolver {
	r := &resolver{
		fold:    cases.Fold(),
		markets: make(map[string]string),
		items:   make(map[string]string),
	}

	for _, market := range cat.Markets() {
		r.insert(r.markets, market.Name)
		for _, item := range market.Items {
			r.insert(r.items, item.Name)
		}
	}
	for _, recipe := range cat.Recipes() {
		r.insert(r.items, recipe.OutputName)
		for _, ingredient := range recipe.Ingredients {
			r.insert(r.items, ingredient)
		}
	}

	return r
}

// ResolveMarket resolves a market name ignoring case and extra whitespace
func (r *resolver) ResolveMarket(input string) (string, bool) {
	return r.lookup(r.markets, input)
}

// ResolveItem resolves an item name ignoring case and extra whitespace
func (r *resolver) ResolveItem(input string) (string, bool) {
	return r.lookup(r.items, input)
}

func (r *resolver) lookup(index map[string]string, input string) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := r.keyUnlocked(input)
	if key == "" {
		return "", false
	}
	name, ok := index[key]
	return name, ok
}

func (r *resolver) insert(index map[string]string, name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.insertUnlocked(index, name)
}

// insertUnlocked keeps the first canonical name per key (caller must hold lock)
func (r *resolver) insertUnlocked(index map[string]string, name string) {
	key := r.keyUnlocked(name)
	if key == "" {
		return
	}
	if _, exists := index[key]; exists {
		return
	}
	index[key] = name
}

// keyUnlocked case-folds and collapses whitespace (caller must hold lock)
func (r *resolver) keyUnlocked(s string) string {
	r.fold.Reset()
	return r.fold.String(strings.Join(strings.Fields(s), KeySeparator))
}
