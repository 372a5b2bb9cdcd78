package config

import (
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// ConfigPathEnv names the optional config file. Environment
// variables override values read from the file.
const ConfigPathEnv = "CONFIG_PATH"

type Reader interface {
	Read() (*Config, error)
}

// NewReader returns a FileReader when CONFIG_PATH is set and an
// EnvReader otherwise.
func NewReader() Reader {
	if path := os.Getenv(ConfigPathEnv); path != "" {
		return NewFileReader(path)
	}
	return NewEnvReader()
}

type EnvReader struct{}

func NewEnvReader() EnvReader {
	return EnvReader{}
}

func (EnvReader) Read() (*Config, error) {
	cfg := new(Config)
	err := cleanenv.ReadEnv(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// FileReader reads a yaml, json, toml or env file picked by extension.
type FileReader struct {
	path string
}

func NewFileReader(path string) FileReader {
	return FileReader{path: path}
}

func (r FileReader) Read() (*Config, error) {
	cfg := new(Config)
	err := cleanenv.ReadConfig(r.path, cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
