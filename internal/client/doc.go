// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the ledger-keeper command line application.
//
// It resolves runtime settings, loads the user config under the lockfile
// guard, wires storages, services and the ledger adapter together, and
// exposes them as cobra commands.
package client
