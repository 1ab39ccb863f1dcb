package config

// Config is the top-level hubctl configuration.
type Config struct {
	API      APIConfig      `mapstructure:"api"`
	Browse   BrowseConfig   `mapstructure:"browse"`
	Defaults DefaultsConfig `mapstructure:"defaults"`
	Log      LogConfig      `mapstructure:"log"`
}

// APIConfig holds Hub API connection settings. The base URL is injected
// into the api client by the command layer; nothing reads it globally.
type APIConfig struct {
	BaseURL string `mapstructure:"base_url"`
}

// BrowseConfig holds catalog browsing settings.
type BrowseConfig struct {
	PageSize int `mapstructure:"page_size"`
}

// DefaultsConfig holds default values for operations.
type DefaultsConfig struct {
	CacheDir string `mapstructure:"cache_dir"`
}

// LogConfig configures the optional debug logger.
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// EffectivePageSize returns the configured page size or the default.
func (b BrowseConfig) EffectivePageSize() int {
	if b.PageSize > 0 {
		return b.PageSize
	}
	return 10
}
