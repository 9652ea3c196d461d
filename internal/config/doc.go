// Package config resolves the runtime settings of the ledger-keeper client
// and the on-disk location of its preferences file.
//
// Settings are assembled from the following sources, in priority order
// (an earlier source wins, later sources only fill fields that are still
// zero):
//  1. Command-line flags
//  2. Environment variables (LEDGER_KEEPER_ prefix)
//  3. Built-in defaults
//
// The user preferences themselves (output format, testnet switch, node
// address) live in a JSON file handled by the store package; this package
// only tells it where that file and its lock marker are, see [ResolvePaths].
package config
