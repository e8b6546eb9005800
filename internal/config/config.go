package config

// Config is the root application configuration.
type Config struct {
	Mochi  MochiConfig  `yaml:"mochi"`
	Update UpdateConfig `yaml:"update"`
	Log    LogConfig    `yaml:"log"`
}

// MochiConfig holds Mochi API credentials and endpoint settings.
type MochiConfig struct {
	APIKey  string `yaml:"api_key"  env:"MOCHI_KEY"      env-required:"true"`
	BaseURL string `yaml:"base_url" env:"MOCHI_BASE_URL" env-default:"https://app.mochi.cards/api/"`
}

// UpdateConfig selects the deck and fields targeted by a bulk update.
type UpdateConfig struct {
	Deck        string `yaml:"deck"        env:"UPDATE_DECK"        env-required:"true"`
	WordField   string `yaml:"word_field"  env:"UPDATE_WORD_FIELD"  env-default:"Word"`
	PitchField  string `yaml:"pitch_field" env:"UPDATE_PITCH_FIELD" env-default:"Pitch"`
	Concurrency int    `yaml:"concurrency" env:"UPDATE_CONCURRENCY" env-default:"4"`
	DryRun      bool   `yaml:"dry_run"     env:"UPDATE_DRY_RUN"     env-default:"false"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
