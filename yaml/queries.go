package yaml

import (
	"context"
	"os"
	"path/filepath"

	apidisco "github.com/CianHerreraQuinn/Jentic-11-LLM-Powered-API-Discovery-System"
	"gopkg.in/yaml.v3"
)

// Ensure QuerySource implements apidisco.QuerySource at compile time.
var _ apidisco.QuerySource = (*QuerySource)(nil)

// QuerySource loads domain-specific search queries from YAML files laid out
// as {base_dir}/{domain}/{queries_filename}:
//
//	queries:
//	  - "weather API with free API key"
//	  - "..."
type QuerySource struct {
	cfg apidisco.SearchConfig

	// BaseDir overrides cfg.DomainsBaseDir when non-empty.
	BaseDir string

	// Filename overrides cfg.QueriesFilename when non-empty.
	Filename string
}

// NewQuerySource creates a QuerySource using the given search configuration.
func NewQuerySource(cfg apidisco.SearchConfig) *QuerySource {
	return &QuerySource{cfg: cfg}
}

// queryFile mirrors the on-disk YAML layout of a domain query file.
type queryFile struct {
	Queries []string `yaml:"queries"`
}

// Queries returns the cleaned query list for a domain. A limit of 0 uses
// the configured default. All failures are terminal for the call: a
// missing file, malformed YAML, or an empty list after cleaning returns
// EQUERYSOURCE.
func (s *QuerySource) Queries(ctx context.Context, domain string, limit int) ([]string, error) {
	if domain == "" {
		return nil, apidisco.Errorf(apidisco.EQUERYSOURCE, "domain required")
	}
	if limit <= 0 {
		limit = s.cfg.DefaultQueryLimit
	}

	path := s.filePath(domain)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, apidisco.Errorf(apidisco.EQUERYSOURCE, "query file not found: %s", path)
	}
	if err != nil {
		return nil, apidisco.Errorf(apidisco.EQUERYSOURCE, "cannot read query file %s: %v", path, err)
	}

	var raw queryFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, apidisco.Errorf(apidisco.EQUERYSOURCE, "invalid YAML in %s: %v", path, err)
	}
	if len(raw.Queries) == 0 {
		return nil, apidisco.Errorf(apidisco.EQUERYSOURCE, "'queries' list missing or empty in %s", path)
	}

	cleaned := apidisco.CleanQueries(raw.Queries, limit, s.cfg.AllowDuplicates)
	if len(cleaned) == 0 {
		return nil, apidisco.Errorf(apidisco.EQUERYSOURCE, "no valid queries after cleaning in %s", path)
	}

	return cleaned, nil
}

func (s *QuerySource) filePath(domain string) string {
	baseDir := s.cfg.DomainsBaseDir
	if s.BaseDir != "" {
		baseDir = s.BaseDir
	}
	filename := s.cfg.QueriesFilename
	if s.Filename != "" {
		filename = s.Filename
	}
	return filepath.Join(baseDir, domain, filename)
}
