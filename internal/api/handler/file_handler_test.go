package handler

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/hobbie/hobbie-backend/internal/core/domain"
	"github.com/hobbie/hobbie-backend/internal/core/ports"
)

type memoryFiles struct {
	data  map[string][]byte
	types map[string]string
}

func (m *memoryFiles) Store(_ context.Context, name, contentType string, body io.Reader, _ int64) (*ports.StoredFile, error) {
	b, err := io.ReadAll(body)
	if err != nil {
		return nil, err
	}
	key := "k-" + name
	m.data[key] = b
	m.types[key] = contentType
	return &ports.StoredFile{Key: key, URL: "https://bucket.s3.region.amazonaws.com/" + key}, nil
}

func (m *memoryFiles) Open(_ context.Context, key string) (io.ReadCloser, error) {
	b, ok := m.data[key]
	if !ok {
		return nil, domain.ErrFileNotFound
	}
	return io.NopCloser(bytes.NewReader(b)), nil
}

func (m *memoryFiles) Delete(_ context.Context, key string) error {
	delete(m.data, key)
	return nil
}

func TestFileHandler_UploadAndDownload(t *testing.T) {
	files := &memoryFiles{data: map[string][]byte{}, types: map[string]string{}}
	h := NewFileHandler(files)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, _ := mw.CreateFormFile("file", "wall.PNG")
	_, _ = fw.Write([]byte("png-bytes"))
	_ = mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/files", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	c := newEcho().NewContext(req, rec)

	if err := h.Upload(c); err != nil {
		t.Fatalf("upload: %v", err)
	}
	if rec.Code != http.StatusCreated || !strings.Contains(rec.Body.String(), "k-wall.PNG") {
		t.Fatalf("unexpected upload response %d %s", rec.Code, rec.Body.String())
	}
	if files.types["k-wall.PNG"] != "image/png" {
		t.Fatalf("expected image/png, got %q", files.types["k-wall.PNG"])
	}

	c, rec = newContext(http.MethodGet, "/api/files/k-wall.PNG", "", nil)
	c.SetParamNames("name")
	c.SetParamValues("k-wall.PNG")
	if err := h.Download(c); err != nil {
		t.Fatalf("download: %v", err)
	}
	if rec.Header().Get("Content-Type") != "image/png" || !strings.HasPrefix(rec.Header().Get("Content-Disposition"), "inline") {
		t.Fatalf("unexpected headers %v", rec.Header())
	}
	if rec.Body.String() != "png-bytes" {
		t.Fatalf("unexpected body %q", rec.Body.String())
	}
}

func TestFileHandler_DownloadMissing(t *testing.T) {
	h := NewFileHandler(&memoryFiles{data: map[string][]byte{}})
	c, _ := newContext(http.MethodGet, "/api/files/none.jpg", "", nil)
	c.SetParamNames("name")
	c.SetParamValues("none.jpg")

	if err := h.Download(c); !errors.Is(err, domain.ErrFileNotFound) {
		t.Fatalf("expected ErrFileNotFound, got %v", err)
	}
}

func TestContentTypeFor(t *testing.T) {
	cases := map[string]string{
		"a.jpg":  "image/jpeg",
		"a.JPEG": "image/jpeg",
		"a.gif":  "image/gif",
		"a.pdf":  "application/octet-stream",
		"noext":  "application/octet-stream",
	}
	for in, want := range cases {
		if got := contentTypeFor(in); got != want {
			t.Fatalf("contentTypeFor(%q) = %q, want %q", in, got, want)
		}
	}
}
