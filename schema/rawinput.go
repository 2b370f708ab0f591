package schema

import (
	"net/http"
	"net/url"
)

// RawInput holds the untyped request slots a record decodes from, split
// by source before any coercion happens. The web layer assembles one per
// request; tests can build them literally. Nil maps read as empty.
type RawInput struct {
	Path    map[string]string
	Query   url.Values
	Header  http.Header
	Cookies map[string]string
	Body    map[string]any
	Files   map[string][]*FileUpload
}

// slot is one field's raw cell. null is only meaningful for body fields,
// where an explicit JSON null is distinct from a missing key.
type slot struct {
	value any
	found bool
	null  bool
}

func (raw *RawInput) slotFor(f *Field) slot {
	switch f.source {
	case SourcePath:
		s, ok := raw.Path[f.name]
		return slot{value: s, found: ok}

	case SourceQuery:
		vs := raw.Query[f.name]
		if len(vs) == 0 {
			return slot{}
		}
		if f.kind == KindList {
			return slot{value: vs, found: true}
		}
		return slot{value: vs[0], found: true}

	case SourceHeader:
		vs := raw.Header.Values(f.wireName)
		if len(vs) == 0 {
			return slot{}
		}
		return slot{value: vs[0], found: true}

	case SourceCookie:
		s, ok := raw.Cookies[f.wireName]
		return slot{value: s, found: ok}

	default:
		if f.kind == KindFile || (f.kind == KindList && f.elem == KindFile) {
			files := raw.Files[f.name]
			if len(files) == 0 {
				return slot{}
			}
			return slot{value: files, found: true}
		}
		v, ok := raw.Body[f.name]
		return slot{value: v, found: ok, null: ok && v == nil}
	}
}
