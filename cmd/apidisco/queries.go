package main

import (
	"fmt"

	apidisco "github.com/CianHerreraQuinn/Jentic-11-LLM-Powered-API-Discovery-System"
)

// Run executes the queries command.
func (c *QueriesCmd) Run(deps *Dependencies) error {
	queries, err := deps.Queries.Queries(deps.Ctx, c.Domain, c.Limit)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", apidisco.ErrorMessage(err))
		return err
	}

	for _, q := range queries {
		fmt.Fprintln(deps.Stdout, q)
	}

	return nil
}
