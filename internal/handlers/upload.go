package handlers

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
)

const (
	maxChatAttachmentSize = 10 << 20
	maxCompanyLogoSize    = 5 << 20
	maxAvatarSize         = 2 << 20
)

var errFileTooLarge = errors.New("file exceeds the allowed size")
var errUnsupportedFileType = errors.New("unsupported file type")

var imageContentTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

var attachmentContentTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"image/webp":      true,
	"image/gif":       true,
	"video/mp4":       true,
	"video/quicktime": true,
}

var documentContentTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"image/webp":      true,
	"application/pdf": true,
}

// readUpload extracts the named multipart file, enforcing the size cap
// and content-type allow-list before the body is read in full. The sniffed
// type is checked first; types the sniffer cannot identify (quicktime) fall
// back to the declared part header.
func readUpload(r *http.Request, field string, maxSize int64, allowed map[string]bool) ([]byte, *multipart.FileHeader, error) {
	r.Body = http.MaxBytesReader(nil, r.Body, maxSize+(1<<20))
	if err := r.ParseMultipartForm(maxSize); err != nil {
		return nil, nil, errFileTooLarge
	}
	file, header, err := r.FormFile(field)
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	if header.Size > maxSize {
		return nil, nil, errFileTooLarge
	}

	head := make([]byte, 512)
	n, err := file.Read(head)
	if err != nil && err != io.EOF {
		return nil, nil, err
	}
	contentType := http.DetectContentType(head[:n])
	if !allowed[contentType] {
		if contentType != "application/octet-stream" || !allowed[header.Header.Get("Content-Type")] {
			return nil, nil, errUnsupportedFileType
		}
	}

	rest, err := io.ReadAll(io.LimitReader(file, maxSize-int64(n)+1))
	if err != nil {
		return nil, nil, err
	}
	data := append(head[:n], rest...)
	if int64(len(data)) > maxSize {
		return nil, nil, errFileTooLarge
	}
	return data, header, nil
}

func uploadStatus(err error) int {
	switch {
	case errors.Is(err, errFileTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, errUnsupportedFileType):
		return http.StatusUnsupportedMediaType
	default:
		return http.StatusBadRequest
	}
}
