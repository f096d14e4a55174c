package config

import (
	"github.com/footprint-tools/argot/internal/domain"
	"github.com/footprint-tools/argot/internal/paths"
	"github.com/footprint-tools/argot/internal/usage"
)

// Provider reads and writes one config file and implements domain.ConfigProvider.
type Provider struct {
	path string
}

// NewProvider creates a provider for the file at path.
func NewProvider(path string) *Provider {
	return &Provider{path: path}
}

// NewDefaultProvider creates a provider for ~/.argotrc.
func NewDefaultProvider() (*Provider, error) {
	path, err := paths.ConfigFilePath()
	if err != nil {
		return nil, &usage.Error{Kind: usage.ErrFailedConfigPath, Message: "argot: could not locate config file: " + err.Error()}
	}
	return NewProvider(path), nil
}

// Path returns the config file location.
func (p *Provider) Path() string {
	return p.path
}

// Get returns the value for a configuration key.
func (p *Provider) Get(key string) (string, bool) {
	return Get(p.path, key)
}

// GetAll returns all configuration values.
func (p *Provider) GetAll() (map[string]string, error) {
	return GetAll(p.path)
}

// Set sets a known configuration key.
func (p *Provider) Set(key, value string) error {
	if !domain.IsValidConfigKey(key) {
		return usage.InvalidConfigKey(key)
	}

	return WithLock(p.path, func() error {
		lines, err := ReadLines(p.path)
		if err != nil {
			return err
		}

		lines, _ = Set(lines, key, value)
		return WriteLines(p.path, lines)
	})
}

// Unset removes a configuration value so its default applies again.
func (p *Provider) Unset(key string) error {
	if !domain.IsValidConfigKey(key) {
		return usage.InvalidConfigKey(key)
	}

	return WithLock(p.path, func() error {
		lines, err := ReadLines(p.path)
		if err != nil {
			return err
		}

		lines, _ = Unset(lines, key)
		return WriteLines(p.path, lines)
	})
}

// Verify Provider implements domain.ConfigProvider
var _ domain.ConfigProvider = (*Provider)(nil)
