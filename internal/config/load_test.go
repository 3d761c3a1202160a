// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/prashantv/gostub"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubFs(t *testing.T, files map[string]string) {
	t.Helper()

	fs := afero.NewMemMapFs()
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0o644))
	}

	stub := gostub.Stub(&FsFactory, func() afero.Fs { return fs })
	t.Cleanup(stub.Reset)
}

func TestLoad(t *testing.T) {
	stubFs(t, map[string]string{"/conf/pbar.yaml": "max: 5\n"})

	cfg, err := Load("/conf/pbar.yaml")
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Max)

	_, err = Load("/conf/missing.yaml")
	assert.ErrorIs(t, err, ErrReadConfig)
}

func TestResolve(t *testing.T) {
	stubFs(t, map[string]string{
		"/conf/good.hcl":   "bar_width = 16\n",
		"/conf/bad.yaml":   "bar_width: 0\n",
		"/conf/syntax.yml": "max: [1, 2\n",
	})

	ctx := context.Background()

	cfg, err := Resolve(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Resolve(ctx, "/conf/good.hcl")
	require.NoError(t, err)
	assert.Equal(t, 16, cfg.BarWidth)

	_, err = Resolve(ctx, "/conf/bad.yaml")
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = Resolve(ctx, "/conf/syntax.yml")
	assert.ErrorIs(t, err, ErrParseConfig)
}

func TestFetch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "remote.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max: 9\n"), 0o600))

	testCases := []struct {
		name     string
		src      string
		wantErr  error
		wantData string
		wantName string
	}{
		{
			name:    "empty source",
			src:     "",
			wantErr: ErrFetchConfig,
		},
		{
			name:    "unreachable git source",
			src:     "git::http://notexist//file.yaml",
			wantErr: ErrFetchConfig,
		},
		{
			name:     "local file",
			src:      path,
			wantData: "max: 9\n",
			wantName: "remote.yaml",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			data, name, err := Fetch(context.Background(), tc.src)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, data)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.wantData, string(data))
			assert.Equal(t, tc.wantName, name)
		})
	}
}

func TestResolve_FetchesWhenNotLocal(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fetched.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max: 3\nmode: determinate\n"), 0o600))

	// the in-memory file system does not contain path, so Resolve goes through go-getter
	stubFs(t, nil)

	cfg, err := Resolve(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Max)
}

func TestSplitFileName(t *testing.T) {
	testCases := []struct {
		url      string
		wantURL  string
		wantFile string
	}{
		{
			url:      "git::https://github.com/org/repo.git//configs/pbar.yaml",
			wantURL:  "git::https://github.com/org/repo.git//configs",
			wantFile: "pbar.yaml",
		},
		{
			url:      "git::https://github.com/org/repo.git//pbar.yaml?ref=v1.2.0",
			wantURL:  "git::https://github.com/org/repo.git?ref=v1.2.0",
			wantFile: "pbar.yaml",
		},
		{
			url:      "git::https://github.com/org/repo.git//a/b/pbar.hcl?ref=main",
			wantURL:  "git::https://github.com/org/repo.git//a/b?ref=main",
			wantFile: "pbar.hcl",
		},
		{
			url: "https://example.com/pbar.yaml",
		},
		{
			url: "git::https://github.com/org/repo.git//",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.url, func(t *testing.T) {
			gotURL, gotFile := splitFileName(tc.url)
			assert.Equal(t, tc.wantURL, gotURL)
			assert.Equal(t, tc.wantFile, gotFile)
		})
	}
}
