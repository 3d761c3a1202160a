// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package pbar renders a single-line textual progress indicator to a console
// stream and redraws it in place while a long-running task proceeds.
//
// A ProgressBar runs in one of two modes. In Determinate mode the caller
// reports progress against a known total and every update is drawn
// synchronously:
//
//	bar, err := pbar.New(ctx, "Copying files", pbar.WithMax(len(files)))
//	if err != nil {
//		return err
//	}
//	for i, f := range files {
//		copyFile(f)
//		bar.SetCurrentVal(i + 1)
//	}
//	bar.Finish(true)
//
// In Indeterminate mode a background goroutine animates a block sweeping
// across the track, together with the elapsed time, until Finish is called
// or the mode is switched:
//
//	bar, _ := pbar.New(ctx, "Waiting for server")
//	bar.Start()
//	defer bar.Finish(true)
//
// Output goes to stderr unless WithWriter is used. Rendering is best-effort:
// write failures are logged and never returned to the caller.
package pbar
