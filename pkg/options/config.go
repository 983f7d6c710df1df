package options

import (
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

// fileConfig is the YAML shape accepted by LoadFromFile. Field names match
// the public Options fields they populate; values support ${VAR}-style
// environment expansion before YAML parsing, the same overlay aether-kv's
// config package applies.
type fileConfig struct {
	FileMode             os.FileMode `yaml:"fileMode"`
	SyncOnWrite          bool        `yaml:"syncOnWrite"`
	AutoCompactThreshold uint64      `yaml:"autoCompactThreshold"`
}

// LoadFromFile reads a YAML configuration file at path, expanding
// ${VAR}/$VAR references against the process environment and any .env file
// found in the working directory, and returns an OptionFunc applying the
// parsed values. A missing .env file is not an error; a missing or
// malformed config file is.
func LoadFromFile(path string) (OptionFunc, error) {
	_ = godotenv.Load()

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg fileConfig
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(raw))), &cfg); err != nil {
		return nil, err
	}

	return func(o *Options) {
		if cfg.FileMode != 0 {
			o.FileMode = cfg.FileMode
		}
		o.SyncOnWrite = cfg.SyncOnWrite
		o.AutoCompactThreshold = cfg.AutoCompactThreshold
	}, nil
}
