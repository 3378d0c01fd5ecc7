// Package testutil provides deterministic random inputs for property tests.
package testutil
