package handlers

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http/httptest"
	"testing"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a}

func buildMultipart(t *testing.T, field, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile(field, filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return body, w.FormDataContentType()
}

func TestReadUploadAcceptsImage(t *testing.T) {
	content := append(append([]byte{}, pngHeader...), bytes.Repeat([]byte{0}, 128)...)
	body, contentType := buildMultipart(t, "avatar", "me.png", content)

	r := httptest.NewRequest("POST", "/api/user/avatar", body)
	r.Header.Set("Content-Type", contentType)

	data, header, err := readUpload(r, "avatar", maxAvatarSize, imageContentTypes)
	if err != nil {
		t.Fatalf("readUpload: %v", err)
	}
	if len(data) != len(content) {
		t.Fatalf("data length = %d, want %d", len(data), len(content))
	}
	if header.Filename != "me.png" {
		t.Fatalf("filename = %q", header.Filename)
	}
}

func TestReadUploadRejectsWrongType(t *testing.T) {
	body, contentType := buildMultipart(t, "avatar", "notes.txt", []byte("just some text, not an image"))

	r := httptest.NewRequest("POST", "/api/user/avatar", body)
	r.Header.Set("Content-Type", contentType)

	_, _, err := readUpload(r, "avatar", maxAvatarSize, imageContentTypes)
	if !errors.Is(err, errUnsupportedFileType) {
		t.Fatalf("got %v, want errUnsupportedFileType", err)
	}
}

func TestReadUploadRejectsOversize(t *testing.T) {
	content := append(append([]byte{}, pngHeader...), bytes.Repeat([]byte{0}, maxAvatarSize)...)
	body, contentType := buildMultipart(t, "avatar", "huge.png", content)

	r := httptest.NewRequest("POST", "/api/user/avatar", body)
	r.Header.Set("Content-Type", contentType)

	_, _, err := readUpload(r, "avatar", maxAvatarSize, imageContentTypes)
	if !errors.Is(err, errFileTooLarge) {
		t.Fatalf("got %v, want errFileTooLarge", err)
	}
}
