package config

const (
	// Configuration file paths
	ConfigPathCatalog       = "configs/catalog.json"
	ConfigPathCatalogSchema = "configs/schemas/catalog.schema.json"
)

// Environment variable names
const (
	EnvLogLevel               = "LOG_LEVEL"
	EnvLogFormat              = "LOG_FORMAT"
	EnvEnvironment            = "ENVIRONMENT"
	EnvServiceName            = "SERVICE_NAME"
	EnvVersion                = "VERSION"
	EnvCatalogPath            = "CATALOG_PATH"
	EnvStartingCoins          = "STARTING_COINS"
	EnvMaxSelection           = "MAX_SELECTION"
	EnvMinMergeSelection      = "MIN_MERGE_SELECTION"
	EnvDefaultSellPrice       = "DEFAULT_SELL_PRICE"
	EnvClearSelectionOnMarket = "CLEAR_SELECTION_ON_MARKET"
	EnvMetricsPort            = "METRICS_PORT"
	EnvJournalRetentionDays   = "JOURNAL_RETENTION_DAYS"
	EnvSchemaVersion          = "ENV_SCHEMA_VERSION"
)

// Defaults
const (
	DefaultStartingCoins     = 100
	DefaultMaxSelection      = 3
	DefaultMinMergeSelection = 2
	DefaultSellPrice         = 0
	DefaultJournalRetention  = 7
)
