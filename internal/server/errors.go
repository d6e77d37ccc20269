// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoObjectAPIHandler is returned by NewServer when there is no HTTP
// handler or listen address for the object API.
var errNoObjectAPIHandler = errors.New("object API handler or listen address is missing")
