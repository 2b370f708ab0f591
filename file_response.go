package apikit

import (
	"mime"
	"net/http"
	"path/filepath"
)

// fileResponse serves in-memory content as a download.
type fileResponse struct {
	responseOptions

	filename string
	content  []byte
}

// File responds with the given content as a file download. The content
// type is derived from the filename extension, falling back to
// application/octet-stream, and the file is offered as an attachment.
//
// Example:
//
//	func export(ctx apikit.Context, in *schema.Instance) (apikit.Response, error) {
//	    csv := buildReport(ctx)
//	    return apikit.File("report.csv", csv), nil
//	}
func File(filename string, content []byte, opts ...ResponseOption) Response {
	r := &fileResponse{filename: filename, content: content}
	r.apply(opts)
	return r
}

func (r *fileResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	ct := mime.TypeByExtension(filepath.Ext(r.filename))
	if ct == "" {
		ct = "application/octet-stream"
	}

	disposition := mime.FormatMediaType("attachment", map[string]string{"filename": r.filename})
	if disposition != "" {
		w.Header().Set("Content-Disposition", disposition)
	}

	r.write(w, ct, http.StatusOK)
	_, err := w.Write(r.content)
	return err
}

// serveFileResponse streams a file from disk via http.ServeContent,
// which handles range requests and conditional gets.
type serveFileResponse struct {
	responseOptions

	path string
}

// ServeFile responds with the file at the given filesystem path. Unlike
// File, the content is served inline with range-request support, which
// suits static assets and media.
func ServeFile(path string, opts ...ResponseOption) Response {
	r := &serveFileResponse{path: path}
	r.apply(opts)
	return r
}

func (r *serveFileResponse) Render(w http.ResponseWriter, req *http.Request) error {
	// http.ServeFile decides the status and content type, so only the
	// custom headers and cookies are applied here.
	for key, values := range r.header {
		for _, v := range values {
			w.Header().Add(key, v)
		}
	}
	for _, c := range r.cookies {
		http.SetCookie(w, c)
	}
	http.ServeFile(w, req, r.path)
	return nil
}
