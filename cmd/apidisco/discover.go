package main

import (
	"fmt"

	apidisco "github.com/CianHerreraQuinn/Jentic-11-LLM-Powered-API-Discovery-System"
)

// Run executes the discover command.
func (c *DiscoverCmd) Run(deps *Dependencies) error {
	results, err := deps.Engine.Discover(deps.Ctx, c.Domain)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", apidisco.ErrorMessage(err))
		return err
	}

	path, err := deps.Engine.Persist(deps.Ctx, c.Domain, results)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", apidisco.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Discovered %d results for domain '%s'.\n", len(results), c.Domain)
	for _, r := range results {
		fmt.Fprintf(deps.Stdout, "- %4.1f %s -> %s\n", r.Score, r.Title, r.URL)
	}
	fmt.Fprintf(deps.Stdout, "Artifact written: %s\n", path)

	return nil
}
