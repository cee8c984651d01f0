package main

import (
	"fmt"
	"time"

	apidisco "github.com/CianHerreraQuinn/Jentic-11-LLM-Powered-API-Discovery-System"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	filter := apidisco.RunFilter{Limit: c.Limit}
	if c.Domain != "" {
		filter.Domain = &c.Domain
	}

	runs, err := deps.Runs.FindRuns(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", apidisco.ErrorMessage(err))
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(deps.Stdout, "No runs recorded. Use 'apidisco discover' to run one.")
		return nil
	}

	for _, r := range runs {
		fmt.Fprintf(deps.Stdout, "%s  %-12s  %-10s  %3d results  %s\n",
			r.CreatedAt.Format(time.RFC3339), r.Domain, r.Provider, r.ResultCount, r.ArtifactPath)
	}

	return nil
}
