// Package apidisco turns a domain name into a ranked, de-duplicated list
// of candidate API-documentation URLs. It loads domain-specific search
// queries from configuration, runs them through a pluggable search
// provider, canonicalizes and scores the results, and persists a
// reproducible discovery artifact.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., yaml/, sqlite/, goquery/).
package apidisco
