package ocr

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/arunpathak904/univaegis-assignment/constants"
)

// extractPDF rasterizes every page with pdftoppm, OCRs each page image
// independently, and joins the page texts with a blank-line separator
// in page order.
func (a *Adapter) extractPDF(ctx context.Context, path string) Result {
	res := Result{SourceType: constants.PDF, Method: "pdf-ocr"}

	// Validate the PDF and learn the page count up front; a broken file
	// fails here instead of inside pdftoppm.
	pageCount, err := api.PageCountFile(path)
	if err != nil {
		res.Err = fmt.Errorf("pdf page count: %w", err)
		return res
	}
	if a.cfg.MaxPages > 0 && pageCount > a.cfg.MaxPages {
		a.logger.Warn("pdf exceeds page cap; truncating",
			"path", path, "pages", pageCount, "max_pages", a.cfg.MaxPages)
	}

	tmpDir, err := os.MkdirTemp("", "uva-pp-*")
	if err != nil {
		res.Err = err
		return res
	}
	defer func(dir string) {
		if rerr := os.RemoveAll(dir); rerr != nil {
			a.logger.Warn("failed to remove temp dir", "dir", dir, "error", rerr)
		}
	}(tmpDir)

	prefix := filepath.Join(tmpDir, "page")
	// pdftoppm -r <dpi> -png [-f 1 -l <max>] <in.pdf> <tmp/page>
	args := []string{"-r", fmt.Sprintf("%d", a.cfg.DPI), "-png"}
	if a.cfg.MaxPages > 0 {
		args = append(args, "-f", "1", "-l", fmt.Sprintf("%d", a.cfg.MaxPages))
	}
	args = append(args, path, prefix)
	if _, errb, err := a.runner.Run(ctx, a.cfg.Pdftoppm, args...); err != nil {
		res.Err = fmt.Errorf("pdftoppm: %w (%s)", err, truncate(string(errb), 512))
		return res
	}

	// collect generated pngs (prefix-1.png, prefix-2.png, ...)
	matches, _ := filepath.Glob(prefix + "-*.png")
	sort.Strings(matches)
	if a.cfg.MaxPages > 0 && len(matches) > a.cfg.MaxPages {
		matches = matches[:a.cfg.MaxPages]
	}
	if len(matches) == 0 {
		res.Err = fmt.Errorf("pdftoppm produced no page images")
		return res
	}

	var b strings.Builder
	for _, img := range matches {
		txt, err := a.tesseractOCR(ctx, img)
		if err != nil {
			res.Err = err
			return res
		}
		if b.Len() > 0 {
			b.WriteString("\n\n") // blank line between pages
		}
		b.WriteString(txt)
	}
	res.Text = b.String()
	res.Pages = len(matches)
	return res
}
