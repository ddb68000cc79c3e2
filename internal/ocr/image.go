package ocr

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"

	// Register decoders for the image fallback path. Unrecognized
	// extensions are routed here, so accept more than jpeg/png.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/arunpathak904/univaegis-assignment/constants"
)

// extractImage decodes the file, redraws it into a fresh RGBA buffer,
// re-encodes that copy as PNG, and OCRs the copy. The redraw both
// normalizes the color model and fully materializes pixel data, so no
// decoder-owned, file-backed buffer survives into the OCR step.
func (a *Adapter) extractImage(ctx context.Context, path string) Result {
	res := Result{SourceType: constants.IMAGE, Method: "image-ocr", Pages: 1}

	data, err := os.ReadFile(path)
	if err != nil {
		res.Err = err
		return res
	}
	src, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		res.Err = fmt.Errorf("image decode: %w", err)
		return res
	}

	rgba := image.NewRGBA(src.Bounds())
	draw.Draw(rgba, rgba.Bounds(), src, src.Bounds().Min, draw.Src)

	tmpDir, err := os.MkdirTemp("", "uva-img-*")
	if err != nil {
		res.Err = err
		return res
	}
	defer func(dir string) {
		if rerr := os.RemoveAll(dir); rerr != nil {
			a.logger.Warn("failed to remove temp dir", "dir", dir, "error", rerr)
		}
	}(tmpDir)

	normalized := filepath.Join(tmpDir, "page.png")
	out, err := os.Create(normalized)
	if err != nil {
		res.Err = err
		return res
	}
	if err := png.Encode(out, rgba); err != nil {
		_ = out.Close()
		res.Err = fmt.Errorf("png encode: %w", err)
		return res
	}
	if err := out.Close(); err != nil {
		res.Err = err
		return res
	}
	a.logger.Debug("image normalized for ocr", "path", path, "format", format)

	txt, err := a.tesseractOCR(ctx, normalized)
	if err != nil {
		res.Err = err
		return res
	}
	res.Text = txt
	return res
}
