package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const defaultServerURL = "http://localhost:8000"

// ServerConfig server configuration
type ServerConfig struct {
	URL         string `yaml:"url"`
	Description string `yaml:"description"`
}

// Config CLI configuration
type Config struct {
	DefaultServer string                  `yaml:"default_server"`
	Servers       map[string]ServerConfig `yaml:"servers"`
	configPath    string
}

// getConfigPath returns ~/.todolist/config.yaml, creating the directory if needed
func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	configDir := filepath.Join(homeDir, ".todolist")
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return "", err
	}

	return filepath.Join(configDir, "config.yaml"), nil
}

// LoadConfig loads the configuration from the user's home directory
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadConfigFrom(configPath)
}

// LoadConfigFrom loads the configuration at configPath, writing a default one when it does not exist
func LoadConfigFrom(configPath string) (*Config, error) {
	config := &Config{
		configPath: configPath,
		Servers:    make(map[string]ServerConfig),
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		config.DefaultServer = "local"
		config.Servers["local"] = ServerConfig{
			URL:         defaultServerURL,
			Description: "Local todolist server",
		}
		if err := config.Save(); err != nil {
			return nil, err
		}
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", configPath, err)
	}
	if config.Servers == nil {
		config.Servers = make(map[string]ServerConfig)
	}

	config.configPath = configPath
	return config, nil
}

// Save writes the configuration back to disk
func (c *Config) Save() error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(c.configPath, data, 0600)
}

// AddServer adds a server, making it the default when it is the first one
func (c *Config) AddServer(name, url, description string) error {
	if name == "" {
		return fmt.Errorf("server name cannot be empty")
	}
	if url == "" {
		return fmt.Errorf("server URL cannot be empty")
	}

	c.Servers[name] = ServerConfig{
		URL:         url,
		Description: description,
	}

	if c.DefaultServer == "" {
		c.DefaultServer = name
	}

	return c.Save()
}

// GetServer gets server configuration; an empty name means the default server
func (c *Config) GetServer(name string) (*ServerConfig, error) {
	if name == "" {
		name = c.DefaultServer
	}

	server, exists := c.Servers[name]
	if !exists {
		return nil, fmt.Errorf("server '%s' not found", name)
	}

	return &server, nil
}

// ResolveServer picks the URL for CLI mode: an explicit URL wins, otherwise the
// named profile (or the default one) from the CLI config file.
func ResolveServer(serverURL, profile string) (string, error) {
	if serverURL != "" {
		return serverURL, nil
	}

	config, err := LoadConfig()
	if err != nil {
		return "", fmt.Errorf("failed to load CLI config: %w", err)
	}
	return config.resolve(profile)
}

func (c *Config) resolve(profile string) (string, error) {
	server, err := c.GetServer(profile)
	if err != nil {
		return "", err
	}
	return server.URL, nil
}
