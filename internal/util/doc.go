// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util holds small file helpers shared by the config layer.
//
//	// Write files atomically so a crash never leaves a half-written config
//	err := util.WriteFileAtomic(afero.NewOsFs(), path, data, 0o600)
package util
