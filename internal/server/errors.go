// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Stepanov

package server

import "errors"

var (
	errNoServerAddress = errors.New("no http server address is configured")
)
