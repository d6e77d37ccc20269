// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client wires the local store, the transport, the sync engine and
// the background workers into the application the objsync CLI runs.
package client
