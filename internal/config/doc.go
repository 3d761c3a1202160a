// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package config loads the pbar command line configuration.
//
// A configuration file overlays the defaults returned by Default. YAML files
// (.yaml, .yml) and HCL files (.hcl, .json) are supported. HCL expressions can
// read environment variables through the env object:
//
//	message   = "Deploying ${env.APP_NAME}"
//	bar_width = 40
//	indicator = "="
//
// Sources are either local paths, read through FsFactory, or go-getter URLs
// such as "git::https://example.com/repo.git//pbar.yaml?ref=main".
package config
