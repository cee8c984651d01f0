// Package yaml provides YAML-backed implementations of the apidisco
// configuration and query source services.
package yaml

import (
	"context"
	"os"
	"sync"

	apidisco "github.com/CianHerreraQuinn/Jentic-11-LLM-Powered-API-Discovery-System"
	"gopkg.in/yaml.v3"
)

// DefaultSettingsPath is where settings are read from unless overridden.
const DefaultSettingsPath = "configs/settings.yaml"

// Ensure SettingsService implements apidisco.SettingsService at compile time.
var _ apidisco.SettingsService = (*SettingsService)(nil)

// SettingsService loads settings from a YAML file and caches the result.
// The cache is an explicit, mutex-guarded field rather than package-level
// state, so concurrent hosts can share one instance safely.
type SettingsService struct {
	path string

	mu     sync.Mutex
	cached *apidisco.Settings
}

// NewSettingsService creates a SettingsService reading from path.
// An empty path falls back to DefaultSettingsPath.
func NewSettingsService(path string) *SettingsService {
	if path == "" {
		path = DefaultSettingsPath
	}
	return &SettingsService{path: path}
}

// Load returns the cached settings, reading from disk on first call.
func (s *SettingsService) Load(ctx context.Context) (*apidisco.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cached != nil {
		return s.cached, nil
	}
	return s.loadLocked()
}

// Reload bypasses the cache and re-reads settings from disk.
func (s *SettingsService) Reload(ctx context.Context) (*apidisco.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loadLocked()
}

func (s *SettingsService) loadLocked() (*apidisco.Settings, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, apidisco.Errorf(apidisco.ECONFIG, "config file not found: %s", s.path)
	}
	if err != nil {
		return nil, apidisco.Errorf(apidisco.ECONFIG, "cannot read config %s: %v", s.path, err)
	}

	var raw settingsFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, apidisco.Errorf(apidisco.ECONFIG, "invalid YAML in config %s: %v", s.path, err)
	}

	settings := &apidisco.Settings{Search: raw.Search.toConfig()}
	if err := settings.Search.Validate(); err != nil {
		return nil, err
	}

	s.cached = settings
	return settings, nil
}

// settingsFile mirrors the on-disk YAML layout. Pointer fields distinguish
// absent keys from zero values so defaults apply only when a key is missing.
type settingsFile struct {
	Search searchSection `yaml:"search"`
}

type searchSection struct {
	DefaultQueryLimit     *int     `yaml:"default_query_limit"`
	DomainsBaseDir        *string  `yaml:"domains_base_dir"`
	QueriesFilename       *string  `yaml:"queries_filename"`
	AllowDuplicates       *bool    `yaml:"allow_duplicates"`
	MaxResultsPerQuery    *int     `yaml:"max_results_per_query"`
	GlobalResultCap       *int     `yaml:"global_result_cap"`
	AllowedDomainKeywords []string `yaml:"allowed_domain_keywords"`
	BlockedDomainKeywords []string `yaml:"blocked_domain_keywords"`
}

func (s searchSection) toConfig() apidisco.SearchConfig {
	cfg := apidisco.DefaultSearchConfig()
	if s.DefaultQueryLimit != nil {
		cfg.DefaultQueryLimit = *s.DefaultQueryLimit
	}
	if s.DomainsBaseDir != nil {
		cfg.DomainsBaseDir = *s.DomainsBaseDir
	}
	if s.QueriesFilename != nil {
		cfg.QueriesFilename = *s.QueriesFilename
	}
	if s.AllowDuplicates != nil {
		cfg.AllowDuplicates = *s.AllowDuplicates
	}
	if s.MaxResultsPerQuery != nil {
		cfg.MaxResultsPerQuery = *s.MaxResultsPerQuery
	}
	if s.GlobalResultCap != nil {
		cfg.GlobalResultCap = *s.GlobalResultCap
	}
	cfg.AllowedDomainKeywords = s.AllowedDomainKeywords
	cfg.BlockedDomainKeywords = s.BlockedDomainKeywords
	return cfg
}
