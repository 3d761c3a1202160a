// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-getter/v2"
	"github.com/matt-FFFFFF/pbar/internal/ctxlog"
	"github.com/spf13/afero"
)

// FsFactory is a function that returns an afero filesystem.
var FsFactory = func() afero.Fs {
	return afero.NewOsFs()
}

// Resolve returns the validated configuration for src.
// An empty src yields Default. A src naming an existing local file is read
// through FsFactory, anything else is downloaded with go-getter.
func Resolve(ctx context.Context, src string) (Config, error) {
	if src == "" {
		return Default(), nil
	}

	var (
		cfg Config
		err error
	)

	if ok, _ := afero.Exists(FsFactory(), src); ok {
		cfg, err = Load(src)
	} else {
		var (
			data     []byte
			fileName string
		)

		data, fileName, err = Fetch(ctx, src)
		if err == nil {
			cfg, err = Parse(fileName, data)
		}
	}

	if err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", src, err)
	}

	ctxlog.Debug(ctx, "configuration loaded", "source", src)

	return cfg, nil
}

// Load reads and parses a local configuration file.
func Load(path string) (Config, error) {
	data, err := afero.ReadFile(FsFactory(), path)
	if err != nil {
		return Config{}, errors.Join(ErrReadConfig, err)
	}

	return Parse(path, data)
}

// Fetch downloads src using go-getter and returns its content and file name.
func Fetch(ctx context.Context, src string) ([]byte, string, error) {
	if src == "" {
		return nil, "", ErrFetchConfig
	}

	tmpDir, err := os.MkdirTemp("", "pbar-getter-*")
	if err != nil {
		return nil, "", errors.Join(ErrFetchConfig, err)
	}

	defer os.RemoveAll(tmpDir) //nolint:errcheck

	wd, err := os.Getwd()
	if err != nil {
		return nil, "", errors.Join(ErrFetchConfig, err)
	}

	client := getter.Client{
		DisableSymlinks: true,
	}

	req := &getter.Request{
		Src:     src,
		Dst:     filepath.Join(tmpDir, "g"),
		Pwd:     wd,
		GetMode: getter.ModeDir,
	}

	var fileName string

	// go-getter downloads directories, so a remote file is fetched as its
	// parent and read back by name.
	if ok, err := getter.Detect(req, &getter.FileGetter{}); !ok || err != nil {
		if err != nil {
			return nil, "", errors.Join(ErrFetchConfig, err)
		}

		var dirURL string

		dirURL, fileName = splitFileName(src)
		if dirURL == "" || fileName == "" {
			return nil, "", fmt.Errorf("%w: invalid URL format: %s", ErrFetchConfig, src)
		}

		req.Src = dirURL
	}

	if fileName == "" {
		req.Src = filepath.Dir(src)
		fileName = filepath.Base(src)
	}

	ctxlog.Debug(ctx, "fetching configuration", "source", req.Src, "file", fileName)

	res, err := client.Get(ctx, req)
	if err != nil {
		return nil, "", errors.Join(ErrFetchConfig, err)
	}

	data, err := os.ReadFile(filepath.Join(res.Dst, fileName))
	if err != nil {
		return nil, "", errors.Join(ErrFetchConfig, err)
	}

	return data, fileName, nil
}

const (
	getterPathSeparator = "//"
	getterRefSeparator  = "?"
	minimumGetterParts  = 3 // scheme, host and path
)

// splitFileName splits a go-getter URL into the URL of the enclosing
// directory and the file name, keeping any query string on the directory URL.
func splitFileName(url string) (string, string) {
	var query string

	parts := strings.Split(url, getterPathSeparator)
	if len(parts) < minimumGetterParts {
		return "", ""
	}

	last := parts[len(parts)-1]
	if path, q, ok := strings.Cut(last, getterRefSeparator); ok {
		last, query = path, q
	}

	if last == "" || filepath.Clean(last) == filepath.Dir(last) {
		return "", ""
	}

	fileName := filepath.Base(last)
	dir := filepath.Dir(last)

	if dir == "." {
		parts = parts[:len(parts)-1]
	} else {
		parts[len(parts)-1] = dir
	}

	dirURL := strings.Join(parts, getterPathSeparator)
	if query != "" {
		dirURL += getterRefSeparator + query
	}

	return dirURL, fileName
}
