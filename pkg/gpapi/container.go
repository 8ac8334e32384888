package gpapi

import (
	"context"
	"fmt"
	"sync"
)

// DefaultConfigName is used when no configuration name is given.
const DefaultConfigName = "default"

// ServicesContainer maps config names to configured connectors.
type ServicesContainer struct {
	mu         sync.RWMutex
	connectors map[string]*GpAPIConnector
}

var services = NewServicesContainer()

// NewServicesContainer returns an empty container.
func NewServicesContainer() *ServicesContainer {
	return &ServicesContainer{connectors: make(map[string]*GpAPIConnector)}
}

// Configure validates cfg and registers a connector for it under name.
func (s *ServicesContainer) Configure(cfg *GpAPIConfig, name string) error {
	if cfg == nil {
		return fmt.Errorf("%w: nil config", ErrConfig)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	conn := NewConnector(cfg)

	s.mu.Lock()
	s.connectors[name] = conn
	s.mu.Unlock()
	return nil
}

// Connector resolves the connector registered under name.
func (s *ServicesContainer) Connector(name string) (*GpAPIConnector, error) {
	s.mu.RLock()
	conn, ok := s.connectors[name]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotConfigured, name)
	}
	return conn, nil
}

// Remove drops the connector registered under name.
func (s *ServicesContainer) Remove(name string) {
	s.mu.Lock()
	delete(s.connectors, name)
	s.mu.Unlock()
}

// ConfigureService registers cfg in the process-wide container, under
// "default" unless a name is given.
func ConfigureService(cfg *GpAPIConfig, configName ...string) error {
	return services.Configure(cfg, resolveConfigName(configName))
}

// RemoveConfiguration drops a named configuration from the process-wide container.
func RemoveConfiguration(configName string) {
	services.Remove(configName)
}

// GetAccessToken returns the access token of a configured service, fetching
// one if none is cached.
func GetAccessToken(ctx context.Context, configName ...string) (string, error) {
	conn, err := services.Connector(resolveConfigName(configName))
	if err != nil {
		return "", err
	}
	return conn.AccessToken(ctx)
}

func resolveConfigName(names []string) string {
	if len(names) > 0 && names[0] != "" {
		return names[0]
	}
	return DefaultConfigName
}
