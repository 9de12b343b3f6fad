package config

import (
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/ian-kent/gofigure"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

// Config is the ldk-server-cli config. Values resolve in ascending
// precedence: built-in defaults, the optional YAML config file, then the
// environment. Per-command flags are owned by the CLI commands themselves.
type Config struct {
	gofigure    interface{} `order:"env"`
	NodeAPIURL  string      `env:"LDK_SERVER_URL"           flagDesc:"Base URL for the LDK node control API"`
	APIKey      string      `env:"LDK_SERVER_API_KEY"       flagDesc:"Node API access key"`
	HTTPTimeout int         `env:"LDK_HTTP_TIMEOUT_SECONDS" flagDesc:"HTTP client timeout in seconds"`
}

// FileConfig mirrors the optional YAML config file
type FileConfig struct {
	NodeAPIURL string `yaml:"server_url"`
	APIKey     string `yaml:"api_key"`
}

var cfg *Config

// Get configures the application and returns the configuration
func Get() (*Config, error) {

	if cfg != nil {
		return cfg, nil
	}

	// A .env in the working directory is a local-use convenience; absence is fine.
	_ = godotenv.Load()

	cfg = &Config{
		NodeAPIURL:  "http://localhost:3002",
		HTTPTimeout: 30,
	}

	fileCfg, err := getFileConfig()
	if err != nil {
		cfg = nil
		return nil, err
	}
	if fileCfg != nil {
		if fileCfg.NodeAPIURL != "" {
			cfg.NodeAPIURL = fileCfg.NodeAPIURL
		}
		if fileCfg.APIKey != "" {
			cfg.APIKey = fileCfg.APIKey
		}
	}

	err = gofigure.Gofigure(cfg)
	if err != nil {
		cfg = nil
		return nil, err
	}

	return cfg, nil
}

// getFileConfig reads the YAML config file named by LDK_CLI_CONFIG, falling
// back to ~/.ldk-server-cli.yml. A missing file is not an error.
func getFileConfig() (*FileConfig, error) {

	path := os.Getenv("LDK_CLI_CONFIG")
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, nil
		}
		path = filepath.Join(home, ".ldk-server-cli.yml")
	}

	yamlFile, err := ioutil.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var fileCfg FileConfig
	if err := yaml.Unmarshal(yamlFile, &fileCfg); err != nil {
		return nil, err
	}

	return &fileCfg, nil
}
