package service

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, width, height))); err != nil {
		t.Fatalf("encode test png: %v", err)
	}
	return buf.Bytes()
}

func TestMediaServiceUploadLocal(t *testing.T) {
	dir := t.TempDir()
	svc := NewMediaService(NewLocalUploader(dir, "/static/uploads"))

	result, err := svc.Upload(context.Background(), adminActor(), pngBytes(t, 3, 2), "projects", "image/png")
	if err != nil {
		t.Fatalf("upload: %v", err)
	}

	if result.Width != 3 || result.Height != 2 {
		t.Errorf("dimensions = %dx%d, want 3x2", result.Width, result.Height)
	}
	if !strings.HasPrefix(result.URL, "/static/uploads/projects/") {
		t.Errorf("url = %q, want it under the projects folder", result.URL)
	}
	if !strings.HasSuffix(result.URL, ".png") {
		t.Errorf("url = %q, want a .png extension", result.URL)
	}

	name := filepath.Base(result.URL)
	if _, err := os.Stat(filepath.Join(dir, "projects", name)); err != nil {
		t.Errorf("uploaded file missing on disk: %v", err)
	}
}

func TestMediaServiceUnknownFolderFallsBackToBlog(t *testing.T) {
	dir := t.TempDir()
	svc := NewMediaService(NewLocalUploader(dir, "/static/uploads"))

	result, err := svc.Upload(context.Background(), adminActor(), pngBytes(t, 1, 1), "../../etc", "image/png")
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if !strings.HasPrefix(result.URL, "/static/uploads/blog/") {
		t.Errorf("url = %q, want the blog fallback folder", result.URL)
	}
}

func TestMediaServiceRejections(t *testing.T) {
	svc := NewMediaService(NewLocalUploader(t.TempDir(), "/static/uploads"))
	actor := adminActor()
	ctx := context.Background()

	cases := []struct {
		name     string
		data     []byte
		mimeType string
	}{
		{"empty file", nil, "image/png"},
		{"disallowed type", pngBytes(t, 1, 1), "application/pdf"},
		{"oversized file", make([]byte, maxUploadSize+1), "image/png"},
		{"mislabeled bytes", []byte("not an image"), "image/png"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Upload(ctx, actor, tc.data, "blog", tc.mimeType)
			if !errors.Is(err, ErrUploadRejected) {
				t.Fatalf("error = %v, want ErrUploadRejected", err)
			}
		})
	}
}

func TestMediaServiceRequiresAdmin(t *testing.T) {
	svc := NewMediaService(NewLocalUploader(t.TempDir(), "/static/uploads"))

	_, err := svc.Upload(context.Background(), Actor{}, pngBytes(t, 1, 1), "blog", "image/png")
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("upload as anonymous = %v, want ErrUnauthorized", err)
	}
}
