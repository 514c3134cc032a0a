package catalog

// File format defaults
const (
	// DefaultRecipeSellPrice applies to recipes whose file entry omits sell_price
	DefaultRecipeSellPrice = 10
)

// Supported catalog file extensions
const (
	ExtJSON = ".json"
	ExtYAML = ".yaml"
	ExtYML  = ".yml"
)

// Error message formats
const (
	ErrMsgReadCatalogFailed   = "failed to read catalog file: %w"
	ErrMsgParseCatalogFailed  = "failed to parse catalog file %s: %w"
	ErrMsgSchemaFailedFmt     = "schema validation failed for %s: %w"
	ErrMsgUnsupportedFormat   = "unsupported catalog format %q (want .json, .yaml or .yml)"
	ErrFmtMarketInvalid       = "%w: market[%d] %q: %s"
	ErrFmtRecipeInvalid       = "%w: recipe[%d] %q: %s"
	ErrFmtRecipeOutOfBounds   = "%w: recipe %q needs %d ingredients but a merge takes between %d and %d"
	ErrFmtMarketItemDuplicate = "%w: market %q lists %q more than once"
)
