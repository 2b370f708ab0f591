package apikit

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/apikit/schema"
)

// maxMultipartMemory bounds the in-memory part of multipart parsing;
// larger uploads spill to temporary files.
const maxMultipartMemory = 10 << 20

// buildRawInput assembles the untyped slots a request offers, guided by
// the route's records. The body is read only when the body record
// declares body fields; a body on a bodyless route is ignored.
func buildRawInput(r *http.Request, request, patch *schema.Record) (*schema.RawInput, error) {
	raw := &schema.RawInput{
		Query:  r.URL.Query(),
		Header: r.Header,
	}

	if request != nil {
		if names := request.SourceFields(schema.SourcePath); len(names) > 0 {
			raw.Path = make(map[string]string, len(names))
			for _, name := range names {
				raw.Path[name] = chi.URLParam(r, name)
			}
		}
	}

	if cs := r.Cookies(); len(cs) > 0 {
		raw.Cookies = make(map[string]string, len(cs))
		for _, c := range cs {
			// first cookie wins, matching http.Request.Cookie
			if _, ok := raw.Cookies[c.Name]; !ok {
				raw.Cookies[c.Name] = c.Value
			}
		}
	}

	bodyRecord := patch
	if bodyRecord == nil {
		bodyRecord = request
	}
	if bodyRecord == nil || len(bodyRecord.SourceFields(schema.SourceBody)) == 0 {
		return raw, nil
	}
	if err := readBody(r, bodyRecord, raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func readBody(r *http.Request, rec *schema.Record, raw *schema.RawInput) error {
	mt := mediaType(r.Header.Get("Content-Type"))

	switch {
	case mt == "" || mt == "application/json" || strings.HasSuffix(mt, "+json"):
		return readJSONBody(r, raw)

	case mt == "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return fmt.Errorf("%w: %v", ErrMalformedBody, err)
		}
		raw.Body = formBody(r.PostForm, rec)
		return nil

	case mt == "multipart/form-data":
		if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
			return fmt.Errorf("%w: %v", ErrMalformedBody, err)
		}
		raw.Body = formBody(url.Values(r.MultipartForm.Value), rec)
		return readMultipartFiles(r, raw)

	default:
		if r.ContentLength == 0 {
			return nil
		}
		return fmt.Errorf("%w: unsupported content type %q", ErrMalformedBody, mt)
	}
}

// mediaType extracts the bare media type from a Content-Type header,
// tolerating headers mime.ParseMediaType rejects.
func mediaType(ct string) string {
	if ct == "" {
		return ""
	}
	if mt, _, err := mime.ParseMediaType(ct); err == nil {
		return mt
	}
	mt, _, _ := strings.Cut(ct, ";")
	return strings.ToLower(strings.TrimSpace(mt))
}

// readJSONBody decodes the body into the raw input's body map. Numbers
// stay json.Number so integers survive undamaged; an empty body reads as
// no body fields supplied.
func readJSONBody(r *http.Request, raw *schema.RawInput) error {
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}

	obj, ok := v.(map[string]any)
	if !ok {
		return fmt.Errorf("%w: top-level JSON value must be an object", ErrMalformedBody)
	}
	raw.Body = obj
	return nil
}

// formBody maps form values into body slots. Fields the record declares
// as lists keep every submitted value; everything else takes the first.
func formBody(values url.Values, rec *schema.Record) map[string]any {
	body := make(map[string]any, len(values))
	for key, vs := range values {
		if len(vs) == 0 {
			continue
		}
		if f, ok := rec.Field(key); ok && f.Kind() == schema.KindList {
			body[key] = vs
			continue
		}
		body[key] = vs[0]
	}
	return body
}

func readMultipartFiles(r *http.Request, raw *schema.RawInput) error {
	if r.MultipartForm == nil || len(r.MultipartForm.File) == 0 {
		return nil
	}
	raw.Files = make(map[string][]*schema.FileUpload, len(r.MultipartForm.File))
	for name, headers := range r.MultipartForm.File {
		for _, fh := range headers {
			up, err := schema.ReadMultipartFile(fh)
			if err != nil {
				return fmt.Errorf("%w: %v", ErrMalformedBody, err)
			}
			raw.Files[name] = append(raw.Files[name], up)
		}
	}
	return nil
}
