package naming

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/potionshop/internal/catalog"
	"github.com/osse101/potionshop/internal/domain"
)

func newTestResolver(t *testing.T) Resolver {
	t.Helper()
	cat, err := catalog.New(
		[]domain.Market{
			{Name: "Alchemist's Bazaar", Items: []domain.MarketItem{{Name: "Ember Salt", BuyPrice: 25}}},
			{Name: "Herbalist", Items: []domain.MarketItem{{Name: "Moonleaf", BuyPrice: 30}, {Name: "Straße Moss", BuyPrice: 5}}},
		},
		[]domain.Recipe{
			{OutputName: "Fire Tonic", Ingredients: []string{"Ember Salt", "Moonleaf"}, SellPrice: 40},
		},
	)
	require.NoError(t, err)
	return NewResolver(cat)
}

func TestResolveMarket(t *testing.T) {
	r := newTestResolver(t)

	tests := []struct {
		input  string
		want   string
		wantOK bool
	}{
		{"Herbalist", "Herbalist", true},
		{"herbalist", "Herbalist", true},
		{"  alchemist's   BAZAAR ", "Alchemist's Bazaar", true},
		{"Moonleaf", "", false},
		{"", "", false},
		{"   ", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := r.ResolveMarket(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveItem(t *testing.T) {
	r := newTestResolver(t)

	tests := []struct {
		input  string
		want   string
		wantOK bool
	}{
		{"moonleaf", "Moonleaf", true},
		{"EMBER salt", "Ember Salt", true},
		{"fire tonic", "Fire Tonic", true},
		{"strasse moss", "Straße Moss", true},
		{"Herbalist", "", false},
		{"Glowcap", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := r.ResolveItem(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolver_Concurrent(t *testing.T) {
	r := newTestResolver(t)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				name, ok := r.ResolveItem("moonLEAF")
				assert.True(t, ok)
				assert.Equal(t, "Moonleaf", name)
			}
		}()
	}
	wg.Wait()
}
