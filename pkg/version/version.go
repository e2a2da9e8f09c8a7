// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package version

// Version can be set via:
// -ldflags="-X 'carvel.dev/srcspan/pkg/version.Version=$TAG'"
var Version = "0.1.0"
