package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/apikit/schema"
)

func TestNewRecord(t *testing.T) {
	t.Parallel()

	t.Run("keeps fields in declaration order", func(t *testing.T) {
		t.Parallel()

		r := schema.NewRecord("User",
			schema.String("name"),
			schema.Int("age"),
			schema.String("city"),
		)

		assert.Equal(t, "User", r.Name())
		assert.Equal(t, []string{"name", "age", "city"}, r.FieldNames())
	})

	t.Run("looks up fields by name", func(t *testing.T) {
		t.Parallel()

		r := schema.NewRecord("User",
			schema.String("name"),
			schema.Int("age"),
		)

		f, ok := r.Field("age")
		require.True(t, ok)
		assert.Equal(t, "age", f.Name())
		assert.Equal(t, schema.KindInt, f.Kind())

		_, ok = r.Field("missing")
		assert.False(t, ok)
	})

	t.Run("panics on a duplicate field", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() {
			schema.NewRecord("User",
				schema.String("name"),
				schema.String("name"),
			)
		})
	})

	t.Run("panics on an empty record name", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() {
			schema.NewRecord("", schema.String("name"))
		})
	})

	t.Run("panics on an empty field name", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() {
			schema.String("")
		})
	})

	t.Run("derives a title from the field name", func(t *testing.T) {
		t.Parallel()

		r := schema.NewRecord("User",
			schema.String("user_name"),
			schema.String("city", schema.Title("Home town")),
		)

		f, _ := r.Field("user_name")
		assert.Equal(t, "User Name", f.Title())

		f, _ = r.Field("city")
		assert.Equal(t, "Home town", f.Title())
	})

	t.Run("keeps field metadata", func(t *testing.T) {
		t.Parallel()

		r := schema.NewRecord("User",
			schema.String("nickname",
				schema.Optional(),
				schema.Description("shown instead of the full name"),
				schema.Deprecated(),
			),
		)

		f, _ := r.Field("nickname")
		assert.False(t, f.Required())
		assert.Equal(t, "shown instead of the full name", f.Description())
		assert.True(t, f.Deprecated())
	})

	t.Run("defaults make a field optional", func(t *testing.T) {
		t.Parallel()

		r := schema.NewRecord("Page",
			schema.Int("page", schema.Default(0), schema.InQuery()),
		)

		f, _ := r.Field("page")
		assert.False(t, f.Required())
		assert.True(t, f.HasDefault())
	})

	t.Run("panics on a default of the wrong kind", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() {
			schema.NewRecord("Page",
				schema.Int("page", schema.Default("first")),
			)
		})
	})

	t.Run("panics on a nil default without nullable", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() {
			schema.NewRecord("User",
				schema.String("city", schema.Default(nil)),
			)
		})

		assert.NotPanics(t, func() {
			schema.NewRecord("User",
				schema.String("city", schema.Nullable(), schema.Default(nil)),
			)
		})
	})

	t.Run("panics when a file field leaves the body", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() {
			schema.NewRecord("Upload",
				schema.File("avatar", schema.InQuery()),
			)
		})
	})

	t.Run("panics when a nested field leaves the body", func(t *testing.T) {
		t.Parallel()

		sub := schema.NewRecord("Address", schema.String("city"))
		assert.Panics(t, func() {
			schema.NewRecord("User",
				schema.Nested("address", sub, schema.InPath()),
			)
		})
	})

	t.Run("panics when a list decodes from the path", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() {
			schema.NewRecord("Search",
				schema.List("tags", schema.KindString, schema.InPath()),
			)
		})
	})

	t.Run("panics on an enum value of the wrong kind", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() {
			schema.NewRecord("Item",
				schema.Int("size", schema.OneOf(1, 100, "large")),
			)
		})
	})

	t.Run("panics on a constraint for another kind", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() {
			schema.NewRecord("User",
				schema.Int("age", schema.MaxLen(3)),
			)
		})
	})
}

func TestRecordExtend(t *testing.T) {
	t.Parallel()

	t.Run("inherits parent fields in order", func(t *testing.T) {
		t.Parallel()

		base := schema.NewRecord("UserBase",
			schema.String("name"),
			schema.Int("age"),
		)
		child := base.Extend("UserIn",
			schema.String("password"),
		)

		assert.Equal(t, []string{"name", "age", "password"}, child.FieldNames())
		assert.Equal(t, []string{"name", "age"}, base.FieldNames())
	})

	t.Run("redeclaration replaces the parent descriptor", func(t *testing.T) {
		t.Parallel()

		base := schema.NewRecord("UserBase",
			schema.String("name", schema.MaxLen(5)),
			schema.Int("age"),
		)
		child := base.Extend("UserWide",
			schema.String("name", schema.MaxLen(50)),
		)

		// The parent's bound would reject this; the child's own
		// declaration replaces it wholesale.
		in, err := child.Make(map[string]any{"name": "Bartholomew", "age": 30})
		require.NoError(t, err)
		assert.Equal(t, "Bartholomew", in.String("name"))

		// The redeclared field keeps its original position.
		assert.Equal(t, []string{"name", "age"}, child.FieldNames())

		// And the parent is untouched.
		_, err = base.Make(map[string]any{"name": "Bartholomew", "age": 30})
		require.Error(t, err)
	})

	t.Run("redeclaration drops the parent constraints entirely", func(t *testing.T) {
		t.Parallel()

		base := schema.NewRecord("ItemBase",
			schema.Int("priority", schema.Min(0), schema.Max(4)),
		)
		child := base.Extend("ItemLoose",
			schema.Int("priority", schema.Max(10)),
		)

		// Min(0) is gone on the child, not merged in.
		in, err := child.Make(map[string]any{"priority": -3})
		require.NoError(t, err)
		assert.Equal(t, -3, in.Int("priority"))
	})

	t.Run("carries parent checks", func(t *testing.T) {
		t.Parallel()

		base := schema.NewRecord("SignupBase",
			schema.String("password"),
			schema.String("password_confirm"),
		).WithCheck(func(in *schema.Instance) error {
			if in.String("password") != in.String("password_confirm") {
				return schema.Violation("password_confirm", "does not match password")
			}
			return nil
		})

		child := base.Extend("Signup",
			schema.String("email", schema.Email()),
		)

		_, err := child.Make(map[string]any{
			"password":         "hunter2hunter2",
			"password_confirm": "different",
			"email":            "alice@example.com",
		})
		require.Error(t, err)

		errs, ok := schema.AsErrors(err)
		require.True(t, ok)
		assert.True(t, errs.Has("password_confirm"))
	})
}

func TestRecordWithCheck(t *testing.T) {
	t.Parallel()

	t.Run("leaves the receiver untouched", func(t *testing.T) {
		t.Parallel()

		base := schema.NewRecord("Range",
			schema.Int("low"),
			schema.Int("high"),
		)
		checked := base.WithCheck(func(in *schema.Instance) error {
			if in.Int("low") > in.Int("high") {
				return schema.Violation("low", "must not exceed high")
			}
			return nil
		})

		_, err := base.Make(map[string]any{"low": 9, "high": 1})
		assert.NoError(t, err)

		_, err = checked.Make(map[string]any{"low": 9, "high": 1})
		assert.Error(t, err)
	})

	t.Run("reports a plain error against the body", func(t *testing.T) {
		t.Parallel()

		r := schema.NewRecord("Order",
			schema.Int("total"),
		).WithCheck(func(in *schema.Instance) error {
			return assert.AnError
		})

		_, err := r.Make(map[string]any{"total": 1})
		require.Error(t, err)

		errs, ok := schema.AsErrors(err)
		require.True(t, ok)
		assert.True(t, errs.Has("body"))
	})
}

func TestRecordSourceFields(t *testing.T) {
	t.Parallel()

	r := schema.NewRecord("Lookup",
		schema.Int("id", schema.InPath()),
		schema.String("q", schema.InQuery(), schema.Optional()),
		schema.String("name"),
		schema.Int("version", schema.InPath()),
	)

	assert.Equal(t, []string{"id", "version"}, r.SourceFields(schema.SourcePath))
	assert.Equal(t, []string{"q"}, r.SourceFields(schema.SourceQuery))
	assert.Equal(t, []string{"name"}, r.SourceFields(schema.SourceBody))
	assert.Empty(t, r.SourceFields(schema.SourceHeader))
}
