package schema

import (
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/textproto"
	"path/filepath"
)

// FileUpload is the decoded form of a multipart file part: metadata plus
// the full content read into memory. Uploads share the instance
// lifecycle and are discarded with it after the response.
type FileUpload struct {
	// Filename is the original name supplied by the client.
	Filename string

	// Size is the content length in bytes.
	Size int64

	// Header holds the MIME header of the file part.
	Header textproto.MIMEHeader

	// Content is the file data.
	Content []byte
}

// ContentType returns the MIME type of the upload, preferring the part's
// Content-Type header and falling back to the filename extension.
func (f *FileUpload) ContentType() string {
	if ct := f.Header.Get("Content-Type"); ct != "" {
		mediaType, _, _ := mime.ParseMediaType(ct)
		return mediaType
	}
	return mime.TypeByExtension(filepath.Ext(f.Filename))
}

// MarshalJSON encodes the upload as its metadata. File content never
// round-trips through JSON responses.
func (f *FileUpload) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Filename    string `json:"filename"`
		Size        int64  `json:"size"`
		ContentType string `json:"content_type"`
	}{
		Filename:    f.Filename,
		Size:        f.Size,
		ContentType: f.ContentType(),
	})
}

// ReadMultipartFile reads one multipart file header into a FileUpload.
func ReadMultipartFile(header *multipart.FileHeader) (*FileUpload, error) {
	file, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open file %q: %w", header.Filename, err)
	}
	defer func() { _ = file.Close() }()

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", header.Filename, err)
	}

	return &FileUpload{
		Filename: header.Filename,
		Size:     int64(len(content)),
		Header:   header.Header,
		Content:  content,
	}, nil
}
