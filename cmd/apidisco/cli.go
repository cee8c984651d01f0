package main

import (
	"context"
	"io"

	apidisco "github.com/CianHerreraQuinn/Jentic-11-LLM-Powered-API-Discovery-System"
	"github.com/CianHerreraQuinn/Jentic-11-LLM-Powered-API-Discovery-System/discover"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Settings *apidisco.Settings
	Queries  apidisco.QuerySource
	Runs     apidisco.RunService
	Engine   *discover.Engine
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config string `help:"Path to the settings file" default:"" env:"APIDISCO_CONFIG"`

	Discover DiscoverCmd `cmd:"" help:"Discover candidate API documentation URLs for a domain"`
	Queries  QueriesCmd  `cmd:"" help:"Print the cleaned search queries for a domain"`
	History  HistoryCmd  `cmd:"" help:"List recorded discovery runs"`
}

// DiscoverCmd is the "discover" subcommand.
type DiscoverCmd struct {
	Domain   string `arg:"" help:"Domain name (folder under the domains base dir)"`
	Provider string `short:"p" default:"dummy" enum:"dummy,duckduckgo" help:"Search provider to use"`
	Limit    int    `short:"l" default:"0" help:"Maximum queries to run (0 = configured default)"`
	Out      string `short:"o" default:"" help:"Artifact output directory (default apis/_discovery)"`
}

// QueriesCmd is the "queries" subcommand.
type QueriesCmd struct {
	Domain string `arg:"" help:"Domain name"`
	Limit  int    `short:"l" default:"0" help:"Maximum queries to show (0 = configured default)"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	Domain string `arg:"" optional:"" help:"Filter runs by domain"`
	Limit  int    `short:"l" default:"20" help:"Maximum runs to show"`
}
