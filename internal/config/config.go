package config

// Config is the root configuration of the converter. Every value has a
// default, so an empty environment yields a working configuration.
type Config struct {
	Log     LogConfig     `yaml:"log"`
	Convert ConvertConfig `yaml:"convert"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// ConvertConfig tunes the conversion pipeline.
type ConvertConfig struct {
	Workers      int  `yaml:"workers"       env:"CONVERT_WORKERS"       env-default:"1"`
	GzipLevel    int  `yaml:"gzip_level"    env:"CONVERT_GZIP_LEVEL"    env-default:"9"`
	NormalizeNFC bool `yaml:"normalize_nfc" env:"CONVERT_NORMALIZE_NFC" env-default:"false"`
}
