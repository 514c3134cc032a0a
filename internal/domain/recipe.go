package domain

// Recipe turns a selection of inventory items into one unit of OutputName.
//
// Ingredients may repeat a name. Matching only checks that each ingredient
// name is present in the selection, so ["A", "A", "B"] is satisfied by a
// three-item selection holding A and B.
type Recipe struct {
	OutputName  string   `json:"output_name" yaml:"output_name" validate:"required"`
	Ingredients []string `json:"ingredients" yaml:"ingredients" validate:"min=1,dive,required"`
	SellPrice   int      `json:"sell_price" yaml:"sell_price" validate:"gte=0"`
}

// Matches reports whether the selected item names satisfy the recipe.
func (r Recipe) Matches(selected []string) bool {
	if len(r.Ingredients) != len(selected) {
		return false
	}
	for _, ingredient := range r.Ingredients {
		if !containsName(selected, ingredient) {
			return false
		}
	}
	return true
}

func containsName(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
