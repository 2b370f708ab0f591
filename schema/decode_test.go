package schema_test

import (
	"encoding/json"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/apikit/schema"
)

func reasonOf(t *testing.T, errs schema.Errors, field string) schema.Reason {
	t.Helper()
	for _, fe := range errs {
		if fe.Field == field {
			return fe.Reason
		}
	}
	t.Fatalf("no error recorded for field %q", field)
	return ""
}

func TestRecordDecode(t *testing.T) {
	t.Parallel()

	t.Run("decodes every source", func(t *testing.T) {
		t.Parallel()

		r := schema.NewRecord("Lookup",
			schema.Int("item_id", schema.InPath()),
			schema.String("q", schema.InQuery()),
			schema.String("x_token", schema.InHeader()),
			schema.String("session_id", schema.InCookie()),
			schema.String("name"),
		)

		header := http.Header{}
		header.Set("X-Token", "secret")

		in, err := r.Decode(&schema.RawInput{
			Path:    map[string]string{"item_id": "42"},
			Query:   url.Values{"q": {"chairs"}},
			Header:  header,
			Cookies: map[string]string{"session_id": "abc123"},
			Body:    map[string]any{"name": "Alice"},
		})
		require.NoError(t, err)

		assert.Equal(t, 42, in.Int("item_id"))
		assert.Equal(t, "chairs", in.String("q"))
		assert.Equal(t, "secret", in.String("x_token"))
		assert.Equal(t, "abc123", in.String("session_id"))
		assert.Equal(t, "Alice", in.String("name"))
	})

	t.Run("coerces lax scalar forms", func(t *testing.T) {
		t.Parallel()

		r := schema.NewRecord("Mixed",
			schema.Int("count"),
			schema.Int("whole"),
			schema.Float("price"),
			schema.Bool("active"),
			schema.Bool("flagged"),
			schema.Time("published_at"),
			schema.Time("born_on"),
		)

		in, err := r.Decode(&schema.RawInput{Body: map[string]any{
			"count":        "42",
			"whole":        json.Number("5.0"),
			"price":        json.Number("9.99"),
			"active":       "yes",
			"flagged":      json.Number("1"),
			"published_at": "2026-08-23T10:30:00Z",
			"born_on":      "1996-02-29",
		}})
		require.NoError(t, err)

		assert.Equal(t, 42, in.Int("count"))
		assert.Equal(t, 5, in.Int("whole"))
		assert.InDelta(t, 9.99, in.Float("price"), 1e-9)
		assert.True(t, in.Bool("active"))
		assert.True(t, in.Bool("flagged"))
		assert.Equal(t, time.Date(2026, 8, 23, 10, 30, 0, 0, time.UTC), in.Time("published_at"))
		assert.Equal(t, time.Date(1996, 2, 29, 0, 0, 0, 0, time.UTC), in.Time("born_on"))
	})

	t.Run("reports a type mismatch with the field name", func(t *testing.T) {
		t.Parallel()

		r := schema.NewRecord("Item",
			schema.Int("item_id", schema.InPath()),
		)

		_, err := r.Decode(&schema.RawInput{
			Path: map[string]string{"item_id": "not-a-number"},
		})
		require.Error(t, err)

		errs, ok := schema.AsErrors(err)
		require.True(t, ok)
		require.Len(t, errs, 1)
		assert.Equal(t, "item_id", errs[0].Field)
		assert.Equal(t, schema.ReasonTypeMismatch, errs[0].Reason)
		assert.Equal(t, "integer", errs[0].Code)
	})

	t.Run("rejects a number where a string is declared", func(t *testing.T) {
		t.Parallel()

		r := schema.NewRecord("User", schema.String("name"))

		_, err := r.Decode(&schema.RawInput{Body: map[string]any{
			"name": json.Number("12345"),
		}})
		require.Error(t, err)

		errs, _ := schema.AsErrors(err)
		assert.Equal(t, schema.ReasonTypeMismatch, errs[0].Reason)
		assert.Equal(t, "string", errs[0].Code)
	})

	t.Run("rejects a fractional number where an integer is declared", func(t *testing.T) {
		t.Parallel()

		r := schema.NewRecord("Item", schema.Int("quantity"))

		_, err := r.Decode(&schema.RawInput{Body: map[string]any{
			"quantity": json.Number("5.5"),
		}})
		require.Error(t, err)
	})

	t.Run("reports every failure in one pass", func(t *testing.T) {
		t.Parallel()

		r := schema.NewRecord("User",
			schema.String("name", schema.MaxLen(5)),
			schema.Int("age", schema.Min(18)),
			schema.String("email"),
			schema.Int("size"),
		)

		_, err := r.Decode(&schema.RawInput{Body: map[string]any{
			"name": "Bartholomew",
			"age":  json.Number("10"),
			"size": "huge",
		}})
		require.Error(t, err)

		errs, ok := schema.AsErrors(err)
		require.True(t, ok)
		require.Len(t, errs, 4)

		assert.Equal(t, schema.ReasonConstraintViolation, reasonOf(t, errs, "name"))
		assert.Equal(t, schema.ReasonConstraintViolation, reasonOf(t, errs, "age"))
		assert.Equal(t, schema.ReasonMissing, reasonOf(t, errs, "email"))
		assert.Equal(t, schema.ReasonTypeMismatch, reasonOf(t, errs, "size"))
	})

	t.Run("fills static defaults without marking them provided", func(t *testing.T) {
		t.Parallel()

		r := schema.NewRecord("User",
			schema.String("name"),
			schema.String("city", schema.Default("Unknown"), schema.MaxLen(15)),
		)

		in, err := r.Decode(&schema.RawInput{Body: map[string]any{"name": "Alice"}})
		require.NoError(t, err)

		assert.Equal(t, "Unknown", in.String("city"))
		assert.True(t, in.Value("city").Present())
		assert.False(t, in.Value("city").Provided())

		assert.Equal(t, map[string]any{"name": "Alice", "city": "Unknown"}, in.Values())
		assert.Equal(t, map[string]any{"name": "Alice"}, in.ProvidedValues())
	})

	t.Run("runs a dynamic default on every decode", func(t *testing.T) {
		t.Parallel()

		next := 0
		r := schema.NewRecord("Event",
			schema.Int("sequence", schema.DefaultFunc(func() any {
				next++
				return next
			})),
		)

		first, err := r.Decode(&schema.RawInput{})
		require.NoError(t, err)
		second, err := r.Decode(&schema.RawInput{})
		require.NoError(t, err)

		assert.Equal(t, 1, first.Int("sequence"))
		assert.Equal(t, 2, second.Int("sequence"))
	})

	t.Run("distinguishes absent from null from present", func(t *testing.T) {
		t.Parallel()

		r := schema.NewRecord("User",
			schema.String("name"),
			schema.String("city", schema.Optional(), schema.Nullable()),
			schema.String("bio", schema.Optional(), schema.Nullable()),
		)

		in, err := r.Decode(&schema.RawInput{Body: map[string]any{
			"name": "Alice",
			"city": nil,
		}})
		require.NoError(t, err)

		assert.True(t, in.Value("name").Present())
		assert.True(t, in.Value("city").Null())
		assert.True(t, in.Value("city").Provided())
		assert.True(t, in.Value("bio").Absent())

		vals := in.Values()
		city, ok := vals["city"]
		assert.True(t, ok)
		assert.Nil(t, city)
		_, ok = vals["bio"]
		assert.False(t, ok)
	})

	t.Run("rejects null on a field that does not allow it", func(t *testing.T) {
		t.Parallel()

		r := schema.NewRecord("User", schema.String("name"))

		_, err := r.Decode(&schema.RawInput{Body: map[string]any{"name": nil}})
		require.Error(t, err)

		errs, _ := schema.AsErrors(err)
		assert.Equal(t, "null", errs[0].Code)
		assert.Equal(t, schema.ReasonTypeMismatch, errs[0].Reason)
	})

	t.Run("fills a nil default as null", func(t *testing.T) {
		t.Parallel()

		r := schema.NewRecord("User",
			schema.String("middle_name", schema.Nullable(), schema.Default(nil)),
		)

		in, err := r.Decode(&schema.RawInput{})
		require.NoError(t, err)

		assert.True(t, in.Value("middle_name").Null())
		assert.False(t, in.Value("middle_name").Provided())
	})

	t.Run("ignores body keys the record does not declare", func(t *testing.T) {
		t.Parallel()

		r := schema.NewRecord("User", schema.String("name"))

		in, err := r.Decode(&schema.RawInput{Body: map[string]any{
			"name":    "Alice",
			"unknown": "ignored",
		}})
		require.NoError(t, err)
		assert.Equal(t, "Alice", in.String("name"))
	})

	t.Run("applies transforms before constraints", func(t *testing.T) {
		t.Parallel()

		r := schema.NewRecord("Signup",
			schema.String("username", schema.Trim(), schema.Lower(), schema.MinLen(3)),
		)

		in, err := r.Decode(&schema.RawInput{Body: map[string]any{
			"username": "  AliCe  ",
		}})
		require.NoError(t, err)
		assert.Equal(t, "alice", in.String("username"))

		_, err = r.Decode(&schema.RawInput{Body: map[string]any{
			"username": "  ab  ",
		}})
		require.Error(t, err)
	})

	t.Run("enforces an enum", func(t *testing.T) {
		t.Parallel()

		r := schema.NewRecord("User",
			schema.String("user_type", schema.OneOf("admin", "customer")),
		)

		_, err := r.Decode(&schema.RawInput{Body: map[string]any{"user_type": "guest"}})
		require.Error(t, err)

		errs, _ := schema.AsErrors(err)
		assert.Equal(t, "enum", errs[0].Code)

		in, err := r.Decode(&schema.RawInput{Body: map[string]any{"user_type": "admin"}})
		require.NoError(t, err)
		assert.Equal(t, "admin", in.String("user_type"))
	})

	t.Run("enforces an integer enum from a path slot", func(t *testing.T) {
		t.Parallel()

		r := schema.NewRecord("Size",
			schema.Int("size_id", schema.InPath(), schema.OneOf(1, 100, 1000)),
		)

		in, err := r.Decode(&schema.RawInput{Path: map[string]string{"size_id": "100"}})
		require.NoError(t, err)
		assert.Equal(t, 100, in.Int("size_id"))

		_, err = r.Decode(&schema.RawInput{Path: map[string]string{"size_id": "7"}})
		require.Error(t, err)
	})

	t.Run("enforces a pattern", func(t *testing.T) {
		t.Parallel()

		r := schema.NewRecord("Car",
			schema.String("license", schema.Pattern(`^\w{2}-\d{3}-\w{2}$`)),
		)

		_, err := r.Decode(&schema.RawInput{Body: map[string]any{"license": "AB-12-CD"}})
		require.Error(t, err)

		in, err := r.Decode(&schema.RawInput{Body: map[string]any{"license": "AB-123-CD"}})
		require.NoError(t, err)
		assert.Equal(t, "AB-123-CD", in.String("license"))
	})

	t.Run("decodes a nested record and prefixes its failures", func(t *testing.T) {
		t.Parallel()

		address := schema.NewRecord("Address",
			schema.String("city", schema.MaxLen(15)),
			schema.String("zip"),
		)
		r := schema.NewRecord("User",
			schema.String("name"),
			schema.Nested("address", address),
		)

		in, err := r.Decode(&schema.RawInput{Body: map[string]any{
			"name":    "Alice",
			"address": map[string]any{"city": "Lisbon", "zip": "1000-001"},
		}})
		require.NoError(t, err)
		assert.Equal(t, "Lisbon", in.Nested("address").String("city"))

		_, err = r.Decode(&schema.RawInput{Body: map[string]any{
			"name":    "Alice",
			"address": map[string]any{"city": "A city name far too long"},
		}})
		require.Error(t, err)

		errs, _ := schema.AsErrors(err)
		assert.True(t, errs.Has("address.city"))
		assert.True(t, errs.Has("address.zip"))
	})

	t.Run("rejects a scalar where an object is declared", func(t *testing.T) {
		t.Parallel()

		address := schema.NewRecord("Address", schema.String("city"))
		r := schema.NewRecord("User", schema.Nested("address", address))

		_, err := r.Decode(&schema.RawInput{Body: map[string]any{"address": "Lisbon"}})
		require.Error(t, err)

		errs, _ := schema.AsErrors(err)
		assert.Equal(t, "object", errs[0].Code)
	})

	t.Run("decodes lists and names the offending element", func(t *testing.T) {
		t.Parallel()

		r := schema.NewRecord("Post",
			schema.List("tags", schema.KindString),
		)

		in, err := r.Decode(&schema.RawInput{Body: map[string]any{
			"tags": []any{"go", "http"},
		}})
		require.NoError(t, err)
		assert.Equal(t, []string{"go", "http"}, in.Strings("tags"))

		_, err = r.Decode(&schema.RawInput{Body: map[string]any{
			"tags": []any{"go", json.Number("7"), "http"},
		}})
		require.Error(t, err)

		errs, _ := schema.AsErrors(err)
		assert.True(t, errs.Has("tags[1]"))
	})

	t.Run("collects repeated query parameters into a list", func(t *testing.T) {
		t.Parallel()

		r := schema.NewRecord("Search",
			schema.List("tag", schema.KindString, schema.InQuery(), schema.Optional()),
		)

		in, err := r.Decode(&schema.RawInput{
			Query: url.Values{"tag": {"go", "http", "json"}},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"go", "http", "json"}, in.Strings("tag"))
	})

	t.Run("enforces list size bounds", func(t *testing.T) {
		t.Parallel()

		r := schema.NewRecord("Post",
			schema.List("tags", schema.KindString, schema.MinItems(1), schema.MaxItems(3)),
		)

		_, err := r.Decode(&schema.RawInput{Body: map[string]any{"tags": []any{}}})
		require.Error(t, err)

		_, err = r.Decode(&schema.RawInput{Body: map[string]any{
			"tags": []any{"a", "b", "c", "d"},
		}})
		require.Error(t, err)
	})

	t.Run("decodes a list of nested records", func(t *testing.T) {
		t.Parallel()

		image := schema.NewRecord("Image",
			schema.String("url", schema.URL()),
			schema.String("name"),
		)
		r := schema.NewRecord("Item",
			schema.String("name"),
			schema.NestedList("images", image, schema.Optional()),
		)

		in, err := r.Decode(&schema.RawInput{Body: map[string]any{
			"name": "Chair",
			"images": []any{
				map[string]any{"url": "https://example.com/a.jpg", "name": "front"},
				map[string]any{"url": "https://example.com/b.jpg", "name": "back"},
			},
		}})
		require.NoError(t, err)

		images := in.Instances("images")
		require.Len(t, images, 2)
		assert.Equal(t, "front", images[0].String("name"))

		_, err = r.Decode(&schema.RawInput{Body: map[string]any{
			"name": "Chair",
			"images": []any{
				map[string]any{"url": "not a url", "name": "front"},
			},
		}})
		require.Error(t, err)

		errs, _ := schema.AsErrors(err)
		assert.True(t, errs.Has("images[0].url"))
	})

	t.Run("runs record checks only after fields pass", func(t *testing.T) {
		t.Parallel()

		calls := 0
		r := schema.NewRecord("Signup",
			schema.String("password", schema.MinLen(8)),
			schema.String("password_confirm"),
		).WithCheck(func(in *schema.Instance) error {
			calls++
			if in.String("password") != in.String("password_confirm") {
				return schema.Violation("password_confirm", "does not match password")
			}
			return nil
		})

		_, err := r.Decode(&schema.RawInput{Body: map[string]any{
			"password":         "short",
			"password_confirm": "short",
		}})
		require.Error(t, err)
		assert.Zero(t, calls)

		_, err = r.Decode(&schema.RawInput{Body: map[string]any{
			"password":         "hunter2hunter2",
			"password_confirm": "different",
		}})
		require.Error(t, err)
		assert.Equal(t, 1, calls)

		_, err = r.Decode(&schema.RawInput{Body: map[string]any{
			"password":         "hunter2hunter2",
			"password_confirm": "hunter2hunter2",
		}})
		require.NoError(t, err)
	})

	t.Run("decodes file uploads from raw slots", func(t *testing.T) {
		t.Parallel()

		r := schema.NewRecord("Upload",
			schema.File("avatar"),
			schema.List("gallery", schema.KindFile, schema.Optional()),
		)

		avatar := &schema.FileUpload{Filename: "me.png", Size: 4, Content: []byte("data")}
		shot := &schema.FileUpload{Filename: "shot.jpg", Size: 3, Content: []byte("abc")}

		in, err := r.Decode(&schema.RawInput{Files: map[string][]*schema.FileUpload{
			"avatar":  {avatar},
			"gallery": {shot, avatar},
		}})
		require.NoError(t, err)

		require.NotNil(t, in.File("avatar"))
		assert.Equal(t, "me.png", in.File("avatar").Filename)
		assert.Len(t, in.Files("gallery"), 2)
	})

	t.Run("reports a missing required file", func(t *testing.T) {
		t.Parallel()

		r := schema.NewRecord("Upload", schema.File("avatar"))

		_, err := r.Decode(&schema.RawInput{})
		require.Error(t, err)

		errs, _ := schema.AsErrors(err)
		assert.Equal(t, schema.ReasonMissing, errs[0].Reason)
	})
}

func TestRecordMake(t *testing.T) {
	t.Parallel()

	t.Run("runs the same coerce and validate path", func(t *testing.T) {
		t.Parallel()

		r := schema.NewRecord("User",
			schema.String("name", schema.MaxLen(50)),
			schema.Int("age", schema.Min(18)),
		)

		in, err := r.Make(map[string]any{"name": "Alice", "age": 30})
		require.NoError(t, err)
		assert.Equal(t, 30, in.Int("age"))

		_, err = r.Make(map[string]any{"name": "Alice", "age": 10})
		require.Error(t, err)
	})

	t.Run("fills sources other than the body", func(t *testing.T) {
		t.Parallel()

		r := schema.NewRecord("Lookup",
			schema.Int("id", schema.InPath()),
			schema.String("q", schema.InQuery()),
		)

		in, err := r.Make(map[string]any{"id": 7, "q": "chairs"})
		require.NoError(t, err)
		assert.Equal(t, 7, in.Int("id"))
		assert.Equal(t, "chairs", in.String("q"))
	})

	t.Run("must make panics on invalid values", func(t *testing.T) {
		t.Parallel()

		r := schema.NewRecord("User", schema.Int("age", schema.Min(18)))

		assert.Panics(t, func() {
			r.MustMake(map[string]any{"age": 3})
		})
		assert.NotPanics(t, func() {
			r.MustMake(map[string]any{"age": 30})
		})
	})
}
