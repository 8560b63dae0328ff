/*
 * png.go, part of goPTable.
 *
 *
 * Copyright 2025 Lucia Fuentes <lfuentes{at}protonmailDOTcom>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package render

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/chromedp"
)

//The figure is CSS-pixel based; 96 dpi is the browser baseline, so the
//device scale factor for a requested dpi is dpi/96.
const baselineDPI = 96.0

//PNGOptions configures the rasterization backend.
type PNGOptions struct {
	//WorkDir is where the intermediate HTML page is written. Empty means
	//the OS temp directory.
	WorkDir string
	//Timeout bounds the whole browser session. Zero means 2 minutes.
	Timeout time.Duration
}

//WritePNG rasterizes the figure to a PNG file by loading it, as HTML, in a
//headless Chrome and taking a screenshot scaled to the requested dpi. A
//missing or broken browser is reported as a BackendError with remediation
//guidance.
func WritePNG(fig *Figure, path string, dpi int, opts PNGOptions) error {
	if dpi <= 0 {
		return errorf("-dpi must be a positive integer")
	}
	workdir := opts.WorkDir
	if workdir == "" {
		workdir = os.TempDir()
	}
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = 2 * time.Minute
	}
	page, err := os.CreateTemp(workdir, "goptable-*.html")
	if err != nil {
		return errorf("can't write the intermediate HTML page: %s", err.Error())
	}
	pagename := page.Name()
	page.Close()
	defer os.Remove(pagename)
	if err := WriteHTML(fig, pagename); err != nil {
		return errDecorate(err, "WritePNG")
	}
	abs, err := filepath.Abs(pagename)
	if err != nil {
		return errorf("can't resolve the intermediate HTML page: %s", err.Error())
	}

	view := buildView(fig)
	scale := float64(dpi) / baselineDPI

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(context.Background(),
		chromedp.DefaultExecAllocatorOptions[:]...)
	defer cancelAlloc()
	ctx, cancelCtx := chromedp.NewContext(allocCtx)
	defer cancelCtx()
	ctx, cancelTimeout := context.WithTimeout(ctx, timeout)
	defer cancelTimeout()

	var buf []byte
	err = chromedp.Run(ctx,
		chromedp.EmulateViewport(int64(view.W), int64(view.H), chromedp.EmulateScale(scale)),
		chromedp.Navigate("file://"+abs),
		chromedp.FullScreenshot(&buf, 100),
	)
	if err != nil {
		return newBackendError(err)
	}
	if err := os.WriteFile(path, buf, 0644); err != nil {
		return errorf("can't write PNG to %s: %s", path, err.Error())
	}
	return nil
}
