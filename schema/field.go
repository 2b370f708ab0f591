package schema

import (
	"fmt"
	"net/textproto"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/apikit/pkg/sanitizer"
)

// Kind is the declared type of a field.
type Kind uint8

const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindBool
	KindTime
	KindList
	KindRecord
	KindFile
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "integer"
	case KindFloat:
		return "number"
	case KindBool:
		return "boolean"
	case KindTime:
		return "datetime"
	case KindList:
		return "list"
	case KindRecord:
		return "record"
	case KindFile:
		return "file"
	default:
		return "unknown"
	}
}

// Source is the request location a field decodes from. Body is the
// default; the In* field options move a field to another source.
type Source uint8

const (
	SourceBody Source = iota
	SourcePath
	SourceQuery
	SourceHeader
	SourceCookie
)

func (s Source) String() string {
	switch s {
	case SourceBody:
		return "body"
	case SourcePath:
		return "path"
	case SourceQuery:
		return "query"
	case SourceHeader:
		return "header"
	case SourceCookie:
		return "cookie"
	default:
		return "unknown"
	}
}

// Field describes one named slot of a record: its kind, source,
// optionality, defaults, constraints, and pre-validation transforms.
// Fields are built with the kind constructors (String, Int, List, ...)
// and configured with FieldOption values. A field is immutable once its
// record is defined.
type Field struct {
	name        string
	kind        Kind
	elem        Kind
	sub         *Record
	source      Source
	wireName    string
	optional    bool
	nullable    bool
	hasDefault  bool
	defNull     bool
	rawDefault  any
	def         any
	defFunc     func() any
	constraints []constraint
	transforms  []func(string) string
	title       string
	desc        string
	deprecated  bool
}

// FieldOption configures a field at declaration time. Options that
// cannot apply to the field's kind or source panic, so a misdeclared
// record fails when it is defined rather than on the first request.
type FieldOption func(*Field)

func newField(name string, kind Kind, opts []FieldOption) Field {
	if name == "" {
		panic("schema: field name must not be empty")
	}

	f := Field{name: name, kind: kind}
	for _, opt := range opts {
		opt(&f)
	}
	return f
}

// String declares a string field.
func String(name string, opts ...FieldOption) Field {
	return newField(name, KindString, opts)
}

// Int declares an integer field.
func Int(name string, opts ...FieldOption) Field {
	return newField(name, KindInt, opts)
}

// Float declares a floating-point field.
func Float(name string, opts ...FieldOption) Field {
	return newField(name, KindFloat, opts)
}

// Bool declares a boolean field.
func Bool(name string, opts ...FieldOption) Field {
	return newField(name, KindBool, opts)
}

// Time declares a date-time field. Raw values are accepted in RFC 3339
// form or as a bare "2006-01-02" date.
func Time(name string, opts ...FieldOption) Field {
	return newField(name, KindTime, opts)
}

// List declares a list field with scalar or file elements. Use
// NestedList for lists of records.
func List(name string, elem Kind, opts ...FieldOption) Field {
	switch elem {
	case KindList:
		panic(fmt.Sprintf("schema: field %q: lists of lists are not supported", name))
	case KindRecord:
		panic(fmt.Sprintf("schema: field %q: use NestedList for lists of records", name))
	}

	f := Field{name: name, kind: KindList, elem: elem}
	for _, opt := range opts {
		opt(&f)
	}
	return f
}

// Nested declares a field holding a sub-record decoded from a JSON
// object.
func Nested(name string, sub *Record, opts ...FieldOption) Field {
	if sub == nil {
		panic(fmt.Sprintf("schema: field %q: nested record must not be nil", name))
	}

	f := Field{name: name, kind: KindRecord, sub: sub}
	for _, opt := range opts {
		opt(&f)
	}
	return f
}

// NestedList declares a field holding a list of sub-records.
func NestedList(name string, sub *Record, opts ...FieldOption) Field {
	if sub == nil {
		panic(fmt.Sprintf("schema: field %q: nested record must not be nil", name))
	}

	f := Field{name: name, kind: KindList, elem: KindRecord, sub: sub}
	for _, opt := range opts {
		opt(&f)
	}
	return f
}

// File declares a field holding a single multipart file upload.
func File(name string, opts ...FieldOption) Field {
	return newField(name, KindFile, opts)
}

// Optional marks a field as allowed to be absent. Without a default the
// field stays absent on the decoded instance.
func Optional() FieldOption {
	return func(f *Field) {
		f.optional = true
	}
}

// Nullable permits an explicit JSON null for the field. Null is distinct
// from absent: a patch carrying {"city": null} clears the field, while a
// patch without the key leaves it untouched.
func Nullable() FieldOption {
	return func(f *Field) {
		f.nullable = true
	}
}

// Default supplies a static value used when the field is absent. The
// value is coerced to the field's kind when the record is defined; an
// incompatible default panics there. Declaring a default makes the field
// optional. Default(nil) is allowed on nullable fields and fills an
// explicit null.
func Default(v any) FieldOption {
	return func(f *Field) {
		f.rawDefault = v
		f.hasDefault = true
		f.optional = true
	}
}

// DefaultFunc supplies a default computed per decode, for values like
// timestamps or generated identifiers that must differ between requests.
// The returned value is coerced to the field's kind on every call.
func DefaultFunc(fn func() any) FieldOption {
	return func(f *Field) {
		if fn == nil {
			panic(fmt.Sprintf("schema: field %q: default func must not be nil", f.name))
		}
		f.defFunc = fn
		f.optional = true
	}
}

// InPath sources the field from a path parameter.
func InPath() FieldOption {
	return func(f *Field) {
		f.source = SourcePath
	}
}

// InQuery sources the field from the query string. List fields collect
// every occurrence of the parameter.
func InQuery() FieldOption {
	return func(f *Field) {
		f.source = SourceQuery
	}
}

// InHeader sources the field from a request header. With no argument the
// header name is derived from the field name ("x_token" reads X-Token);
// pass an explicit name to override.
func InHeader(name ...string) FieldOption {
	if len(name) > 1 {
		panic("schema: InHeader takes at most one name")
	}

	return func(f *Field) {
		f.source = SourceHeader
		if len(name) == 1 {
			f.wireName = textproto.CanonicalMIMEHeaderKey(name[0])
		}
	}
}

// InCookie sources the field from a request cookie. With no argument the
// cookie name is the field name; pass an explicit name to override.
func InCookie(name ...string) FieldOption {
	if len(name) > 1 {
		panic("schema: InCookie takes at most one name")
	}

	return func(f *Field) {
		f.source = SourceCookie
		if len(name) == 1 {
			f.wireName = name[0]
		}
	}
}

// Title sets the human-readable field title. Untitled fields derive one
// from the field name when the record is defined.
func Title(title string) FieldOption {
	return func(f *Field) {
		f.title = title
	}
}

// Description sets the field description.
func Description(desc string) FieldOption {
	return func(f *Field) {
		f.desc = desc
	}
}

// Deprecated flags the field as deprecated in the record metadata.
func Deprecated() FieldOption {
	return func(f *Field) {
		f.deprecated = true
	}
}

// Trim strips leading and trailing whitespace from string values before
// validation. On list fields it applies to each string element.
func Trim() FieldOption {
	return transformOption("Trim", sanitizer.Trim)
}

// Lower folds string values to lower case before validation.
func Lower() FieldOption {
	return transformOption("Lower", sanitizer.ToLower)
}

// Upper folds string values to upper case before validation.
func Upper() FieldOption {
	return transformOption("Upper", sanitizer.ToUpper)
}

// CollapseSpaces trims string values and collapses internal whitespace
// runs to single spaces before validation.
func CollapseSpaces() FieldOption {
	return transformOption("CollapseSpaces", sanitizer.CollapseWhitespace)
}

// Name returns the field name.
func (f Field) Name() string { return f.name }

// Kind returns the declared kind.
func (f Field) Kind() Kind { return f.kind }

// Elem returns the element kind of a list field.
func (f Field) Elem() Kind { return f.elem }

// Sub returns the nested record of a record or record-list field.
func (f Field) Sub() *Record { return f.sub }

// Source returns where the field decodes from.
func (f Field) Source() Source { return f.source }

// Required reports whether the field must appear in the input.
func (f Field) Required() bool { return !f.optional }

// Nullable reports whether explicit null is accepted.
func (f Field) Nullable() bool { return f.nullable }

// HasDefault reports whether a static or dynamic default is declared.
func (f Field) HasDefault() bool { return f.hasDefault || f.defFunc != nil }

// Title returns the field title, derived from the name when not set.
func (f Field) Title() string { return f.title }

// Description returns the field description.
func (f Field) Description() string { return f.desc }

// Deprecated reports whether the field is flagged deprecated.
func (f Field) Deprecated() bool { return f.deprecated }

// finalize validates the declaration and computes derived metadata. It
// runs once per field when the owning record is defined.
func (f *Field) finalize(record string) {
	if f.name == "" {
		panic(fmt.Sprintf("schema: record %q: field name must not be empty", record))
	}

	switch f.kind {
	case KindFile:
		if f.source != SourceBody {
			panic(fmt.Sprintf("schema: record %q: file field %q must decode from the body", record, f.name))
		}
	case KindRecord:
		if f.source != SourceBody {
			panic(fmt.Sprintf("schema: record %q: nested field %q must decode from the body", record, f.name))
		}
		f.sub.assertBodyOnly(record, f.name)
	case KindList:
		if f.source != SourceBody && f.source != SourceQuery {
			panic(fmt.Sprintf("schema: record %q: list field %q must decode from the body or the query string", record, f.name))
		}
		if f.source == SourceQuery && (f.elem == KindFile || f.elem == KindRecord) {
			panic(fmt.Sprintf("schema: record %q: list field %q: %s elements must decode from the body", record, f.name, f.elem))
		}
		if f.elem == KindRecord {
			f.sub.assertBodyOnly(record, f.name)
		}
	default:
		// Scalars decode from any source.
	}

	switch f.source {
	case SourceHeader:
		if f.wireName == "" {
			f.wireName = textproto.CanonicalMIMEHeaderKey(strings.ReplaceAll(f.name, "_", "-"))
		}
	case SourceCookie:
		if f.wireName == "" {
			f.wireName = f.name
		}
	}

	if f.hasDefault {
		if f.rawDefault == nil {
			if !f.nullable {
				panic(fmt.Sprintf("schema: record %q: field %q: a nil default requires Nullable()", record, f.name))
			}
			f.defNull = true
		} else {
			plain := *f
			plain.transforms = nil
			coerced, errs := coerceValue(&plain, f.name, f.rawDefault)
			if len(errs) > 0 {
				panic(fmt.Sprintf("schema: record %q: field %q: default %v is not a valid %s", record, f.name, f.rawDefault, f.kind))
			}
			f.def = coerced
		}
		f.rawDefault = nil
	}

	if f.title == "" {
		f.title = deriveTitle(f.name)
	}
}

func transformOption(name string, fn func(string) string) FieldOption {
	return func(f *Field) {
		if f.kind != KindString && !(f.kind == KindList && f.elem == KindString) {
			panic(fmt.Sprintf("schema: field %q: %s applies to string fields only", f.name, name))
		}
		f.transforms = append(f.transforms, fn)
	}
}

func deriveTitle(name string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(name, "_", " "))
}
