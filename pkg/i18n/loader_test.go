package i18n_test

import (
	"embed"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/msgfmt/pkg/i18n"
)

//go:embed testdata
var testdataFS embed.FS

func subFS(t *testing.T, dir string) fs.FS {
	t.Helper()
	sub, err := fs.Sub(testdataFS, dir)
	require.NoError(t, err)
	return sub
}

func TestWithTableDir(t *testing.T) {
	t.Parallel()

	t.Run("loads json, yaml and toml messages", func(t *testing.T) {
		t.Parallel()
		inst, err := i18n.New(i18n.WithTableDir(subFS(t, "testdata/messages")))
		require.NoError(t, err)

		require.Equal(t, []string{"en", "de", "pl"}, inst.Languages())
		require.Equal(t, []string{"common", "inbox"}, inst.Categories())

		tests := []struct {
			lang     string
			category string
			key      string
			values   i18n.M
			want     string
		}{
			{"en", "common", "hello", nil, "Hello"},
			{"de", "common", "hello", nil, "Hallo"},
			{"pl", "common", "hello", nil, "Cześć"},
			{"en", "common", "welcome", i18n.M{"name": "Ann"}, "Welcome, Ann!"},
			{"de", "common", "welcome", i18n.M{"name": "Ann"}, "Willkommen, Ann!"},
			{"en", "common", "buttons.save", nil, "Save"},
			{"de", "common", "buttons.save", nil, "Speichern"},
			{"de", "common", "buttons.cancel", nil, "Cancel"},
			{"pl", "common", "welcome", i18n.M{"name": "Ola"}, "Welcome, Ola!"},
			{"en", "inbox", "summary", i18n.M{"count": 0}, "No messages"},
			{"en", "inbox", "summary", i18n.M{"count": 2}, "2 messages"},
			{"de", "inbox", "summary", i18n.M{"count": 1}, "1 Nachricht"},
		}
		for _, tt := range tests {
			out, err := inst.TranslateIn(tt.lang, tt.category, tt.key, tt.values)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out, "%s/%s/%s", tt.lang, tt.category, tt.key)
		}
	})

	t.Run("categories come from file names", func(t *testing.T) {
		t.Parallel()
		inst, err := i18n.New(
			i18n.WithTableDir(subFS(t, "testdata/messages")),
			i18n.WithMissingStrategy(i18n.StrategyStrict),
		)
		require.NoError(t, err)

		_, err = inst.TranslateIn("en", "inbox", "hello")
		require.ErrorIs(t, err, i18n.ErrMissingTranslation)

		entry, ok := inst.Entry("summary")
		require.True(t, ok)
		assert.Equal(t, "inbox", entry.Category)
	})

	t.Run("rejects files outside language directories", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{
			"en.json": {Data: []byte(`{"hello": "Hello"}`)},
		}
		_, err := i18n.New(i18n.WithTableDir(fsys))
		require.ErrorIs(t, err, i18n.ErrInvalidFile)
	})

	t.Run("rejects malformed files", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{
			"en/common.yaml": {Data: []byte("hello: [unclosed")},
		}
		_, err := i18n.New(i18n.WithTableDir(fsys))
		require.ErrorIs(t, err, i18n.ErrInvalidFile)
	})

	t.Run("conflicting files", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{
			"en/common.json": {Data: []byte(`{"hello": "Hello"}`)},
			"en/other.toml":  {Data: []byte(`hello = "Hi"`)},
		}
		_, err := i18n.New(i18n.WithTableDir(fsys))
		require.ErrorIs(t, err, i18n.ErrDuplicateKey)
	})

	t.Run("empty directory", func(t *testing.T) {
		t.Parallel()
		inst, err := i18n.New(i18n.WithTableDir(fstest.MapFS{}))
		require.NoError(t, err)
		assert.Equal(t, []string{"en"}, inst.Languages())
	})
}

func TestWithTableFile(t *testing.T) {
	t.Parallel()

	tables := subFS(t, "testdata/tables")

	for _, name := range []string{"app.json", "app.yaml", "app.toml"} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			inst, err := i18n.New(i18n.WithTableFile(tables, name))
			require.NoError(t, err)

			out, err := inst.Translate("de", "greeting", i18n.M{"name": "Ann"})
			require.NoError(t, err)
			assert.Equal(t, "Hallo, Ann!", out)

			out, err = inst.TranslateIn("en", "cart", "cart.total", i18n.M{"total": 12.5})
			require.NoError(t, err)
			assert.Equal(t, "Total: $12.50", out)

			entry, ok := inst.Entry("greeting")
			require.True(t, ok)
			assert.Equal(t, "Greeting on the dashboard", entry.Description)
			assert.Equal(t, []string{"name"}, entry.Placeholders)
			assert.Equal(t, i18n.DefaultCategory, entry.Category)
		})
	}

	t.Run("merges tables", func(t *testing.T) {
		t.Parallel()
		inst, err := i18n.New(
			i18n.WithTableFile(tables, "app.json"),
			i18n.WithTableFile(tables, "app.yaml"),
			i18n.WithTableFile(tables, "extra.json"),
		)
		require.NoError(t, err)

		out, err := inst.Translate("pl", "greeting", i18n.M{"name": "Ola"})
		require.NoError(t, err)
		assert.Equal(t, "Cześć, Ola!", out)
		assert.Equal(t, []string{"en", "de", "pl"}, inst.Languages())
	})

	t.Run("conflicting tables", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.New(
			i18n.WithTableFile(tables, "app.json"),
			i18n.WithTableFile(tables, "conflict.yaml"),
		)
		require.ErrorIs(t, err, i18n.ErrDuplicateKey)
	})

	t.Run("broken file", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.New(i18n.WithTableFile(tables, "broken.json"))
		require.ErrorIs(t, err, i18n.ErrInvalidFile)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.New(i18n.WithTableFile(tables, "nope.json"))
		require.ErrorIs(t, err, fs.ErrNotExist)
	})
}

func TestParseTable(t *testing.T) {
	t.Parallel()

	table, err := i18n.ParseTable([]byte(`{"a": {"values": {"en": "A"}, "status": "approved"}}`), ".json")
	require.NoError(t, err)
	assert.Equal(t, i18n.Table{"a": {Values: map[string]string{"en": "A"}, Status: "approved"}}, table)

	table, err = i18n.ParseTable([]byte("a:\n  values:\n    en: A\n"), ".YML")
	require.NoError(t, err)
	assert.Equal(t, "A", table["a"].Text("en"))

	_, err = i18n.ParseTable([]byte(`a = 1`), ".ini")
	require.ErrorIs(t, err, i18n.ErrUnsupportedFormat)

	_, err = i18n.ParseTable([]byte(`values = "x"`), ".toml")
	require.ErrorIs(t, err, i18n.ErrInvalidFile)
}

func TestTable(t *testing.T) {
	t.Parallel()

	table := i18n.Table{
		"a": {Category: "ui", Values: map[string]string{"en": "A", "de": ""}},
		"b": {Values: map[string]string{"fr": "B"}},
	}
	assert.Equal(t, []string{"en", "fr"}, table.Languages())
	assert.Equal(t, []string{"", "ui"}, table.Categories())
	assert.Empty(t, table["a"].Text("de"))
	assert.Empty(t, table["b"].Text("en"))
}
