package intl_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/intl"
)

func TestWithJSONDir(t *testing.T) {
	t.Parallel()

	t.Run("loads and flattens", func(t *testing.T) {
		t.Parallel()

		fsys := fstest.MapFS{
			"en/common.json": {Data: []byte(`{
				"greeting": "Hello, {name}!",
				"nav": {"home": "Home", "about": "About"}
			}`)},
			"fr/common.json": {Data: []byte(`{"greeting": "Bonjour, {name}!"}`)},
			"en/notes.txt":   {Data: []byte("ignored")},
		}

		b, err := intl.New(intl.WithJSONDir(fsys))
		require.NoError(t, err)

		values := intl.Values{"name": "Eric"}
		d := intl.MessageDescriptor{ID: "common.greeting"}
		assert.Equal(t, "Hello, Eric!", b.FormatString(d, values))
		assert.Equal(t, "Bonjour, Eric!", b.FormatString(d, values, intl.LocaleContext{Locale: "fr"}))
		assert.Equal(t, "Home", b.FormatString(intl.MessageDescriptor{ID: "common.nav.home"}, nil))
	})

	t.Run("file outside locale dir rejected", func(t *testing.T) {
		t.Parallel()

		fsys := fstest.MapFS{
			"stray.json": {Data: []byte(`{"a": "b"}`)},
		}

		_, err := intl.New(intl.WithJSONDir(fsys))
		require.ErrorIs(t, err, intl.ErrInvalidCatalog)
	})

	t.Run("malformed json rejected", func(t *testing.T) {
		t.Parallel()

		fsys := fstest.MapFS{
			"en/bad.json": {Data: []byte(`{"a": `)},
		}

		_, err := intl.New(intl.WithJSONDir(fsys))
		require.ErrorIs(t, err, intl.ErrInvalidCatalog)
	})

	t.Run("non-string leaf rejected", func(t *testing.T) {
		t.Parallel()

		fsys := fstest.MapFS{
			"en/bad.json": {Data: []byte(`{"a": 42}`)},
		}

		_, err := intl.New(intl.WithJSONDir(fsys))
		require.ErrorIs(t, err, intl.ErrInvalidCatalog)
	})
}

func TestWithYAMLDir(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"en/app.yaml": {Data: []byte("title: My App\nmenu:\n  file: File\n")},
		"de/app.yml":  {Data: []byte("title: Meine App\n")},
	}

	b, err := intl.New(intl.WithYAMLDir(fsys))
	require.NoError(t, err)

	assert.Equal(t, "My App", b.FormatString(intl.MessageDescriptor{ID: "app.title"}, nil))
	assert.Equal(t, "File", b.FormatString(intl.MessageDescriptor{ID: "app.menu.file"}, nil))
	assert.Equal(t, "Meine App",
		b.FormatString(intl.MessageDescriptor{ID: "app.title"}, nil, intl.LocaleContext{Locale: "de"}))
}

func TestWithTOMLDir(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"en/errors.toml": {Data: []byte("not_found = \"Not found\"\n\n[validation]\nrequired = \"{field} is required\"\n")},
	}

	b, err := intl.New(intl.WithTOMLDir(fsys))
	require.NoError(t, err)

	assert.Equal(t, "Not found", b.FormatString(intl.MessageDescriptor{ID: "errors.not_found"}, nil))
	assert.Equal(t, "Email is required",
		b.FormatString(intl.MessageDescriptor{ID: "errors.validation.required"}, intl.Values{"field": "Email"}))
}

func TestLoaderMergesWithMessages(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"en/common.json": {Data: []byte(`{"greeting": "Hello"}`)},
	}

	b, err := intl.New(
		intl.WithJSONDir(fsys),
		intl.WithMessages("en", map[string]string{"common.greeting": "Howdy"}),
	)
	require.NoError(t, err)

	assert.Equal(t, "Howdy", b.FormatString(intl.MessageDescriptor{ID: "common.greeting"}, nil))
}
