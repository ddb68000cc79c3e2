package ocr

import (
	"context"
	"errors"
	"image"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type fakeRunner struct {
	run func(ctx context.Context, name string, args ...string) ([]byte, []byte, error)
}

func (f fakeRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	return f.run(ctx, name, args...)
}

func testAdapter(t *testing.T, r Runner) *Adapter {
	t.Helper()
	a := NewAdapter(Config{}, slog.New(slog.NewTextHandler(os.Stderr, nil)))
	a.runner = r
	return a
}

func writePNG(t *testing.T, path string) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, 8, 8))); err != nil {
		t.Fatal(err)
	}
}

func TestExtractTextImage(t *testing.T) {
	src := filepath.Join(t.TempDir(), "scan.png")
	writePNG(t, src)

	var calledWith []string
	a := testAdapter(t, fakeRunner{run: func(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
		if name != "tesseract" {
			t.Fatalf("unexpected command %q", name)
		}
		calledWith = args
		return []byte("Student Name: Priya Sharma\n"), nil, nil
	}})

	res := a.ExtractText(context.Background(), src)
	if !res.OK() {
		t.Fatalf("err = %v", res.Err)
	}
	if res.Text != "Student Name: Priya Sharma\n" {
		t.Fatalf("text = %q", res.Text)
	}
	if res.Pages != 1 || res.SourceType != "IMAGE" || res.Method != "image-ocr" {
		t.Fatalf("result = %+v", res)
	}

	// tesseract <normalized.png> stdout -l eng
	if len(calledWith) != 4 || calledWith[1] != "stdout" || calledWith[2] != "-l" || calledWith[3] != "eng" {
		t.Fatalf("args = %v", calledWith)
	}
	if filepath.Base(calledWith[0]) != "page.png" {
		t.Fatalf("tesseract should receive the normalized copy, got %q", calledWith[0])
	}
	if calledWith[0] == src {
		t.Fatal("tesseract must not read the original upload directly")
	}
}

func TestExtractTextImageDecodeFailure(t *testing.T) {
	src := filepath.Join(t.TempDir(), "broken.jpg")
	if err := os.WriteFile(src, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}

	a := testAdapter(t, fakeRunner{run: func(context.Context, string, ...string) ([]byte, []byte, error) {
		t.Fatal("ocr must not run when decoding fails")
		return nil, nil, nil
	}})

	res := a.ExtractText(context.Background(), src)
	if res.OK() {
		t.Fatal("expected an error result")
	}
	if res.Text != "" {
		t.Fatalf("text = %q, want empty on failure", res.Text)
	}
}

func TestExtractTextRecognitionFailureBlanksText(t *testing.T) {
	src := filepath.Join(t.TempDir(), "scan.png")
	writePNG(t, src)

	a := testAdapter(t, fakeRunner{run: func(context.Context, string, ...string) ([]byte, []byte, error) {
		return nil, []byte("Error opening data file"), errors.New("exit status 1")
	}})

	res := a.ExtractText(context.Background(), src)
	if res.OK() {
		t.Fatal("expected an error result")
	}
	if res.Text != "" {
		t.Fatalf("text = %q, want empty", res.Text)
	}
	if !strings.Contains(res.Err.Error(), "tesseract") {
		t.Fatalf("err = %v", res.Err)
	}
}

func TestExtractTextInvalidPDF(t *testing.T) {
	src := filepath.Join(t.TempDir(), "broken.pdf")
	if err := os.WriteFile(src, []byte("%PDF-1.4 truncated"), 0o644); err != nil {
		t.Fatal(err)
	}

	a := testAdapter(t, fakeRunner{run: func(context.Context, string, ...string) ([]byte, []byte, error) {
		t.Fatal("pdftoppm must not run when validation fails")
		return nil, nil, nil
	}})

	res := a.ExtractText(context.Background(), src)
	if res.OK() {
		t.Fatal("expected an error result for a broken pdf")
	}
	if res.SourceType != "PDF" || res.Text != "" {
		t.Fatalf("result = %+v", res)
	}
}

func TestExtractTextDispatchByExtension(t *testing.T) {
	// An unknown extension takes the image path, matching upload
	// validation which only admits pdf/jpg/jpeg/png.
	src := filepath.Join(t.TempDir(), "scan.jpeg")
	writePNG(t, src) // png bytes; decoder sniffs content, not extension

	a := testAdapter(t, fakeRunner{run: func(context.Context, string, ...string) ([]byte, []byte, error) {
		return []byte("ok"), nil, nil
	}})

	res := a.ExtractText(context.Background(), src)
	if !res.OK() || res.SourceType != "IMAGE" {
		t.Fatalf("result = %+v", res)
	}
}
