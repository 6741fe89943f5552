// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the terminal client runtime.
//
// It checks the relay connection and runs the terminal UI for the lifetime
// of the process.
package client
