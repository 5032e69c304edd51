package i18n_test

import (
	"bytes"
	"errors"
	"log/slog"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/msgfmt/pkg/i18n"
	"github.com/dmitrymomot/msgfmt/pkg/messageformat"
)

func testTable() i18n.Table {
	return i18n.Table{
		"inbox.summary": {
			Category: "inbox",
			Values: map[string]string{
				"en": "{count, plural, =0 {No messages} one {# message} other {# messages}}",
				"de": "{count, plural, =0 {Keine Nachrichten} one {# Nachricht} other {# Nachrichten}}",
			},
		},
		"greeting": {
			Values: map[string]string{
				"en":    "Hello, {name}!",
				"de":    "Hallo, {name}!",
				"de-AT": "Servus, {name}!",
			},
		},
		"only.en": {
			Values: map[string]string{"en": "English only"},
		},
		"files": {
			Values: map[string]string{"en": "{n, plural, one {# file} other {# files}}"},
		},
		"empty.default": {
			Values: map[string]string{"en": "", "fr": "Bonjour"},
		},
		"broken": {
			Values: map[string]string{"en": "{count, plural, one {x}"},
		},
		"profile": {
			Category: "Profile",
			Values: map[string]string{
				"en": "{gender, select, female {She} male {He} other {They}} updated the profile",
			},
		},
		"cart.total": {
			Category: "cart",
			Values:   map[string]string{"en": "Total: {total, number, currency}"},
		},
	}
}

func newService(t *testing.T, opts ...i18n.Option) *i18n.I18n {
	t.Helper()
	svc, err := i18n.New(append([]i18n.Option{i18n.WithTable(testTable())}, opts...)...)
	require.NoError(t, err)
	return svc
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("creates instance with defaults", func(t *testing.T) {
		t.Parallel()
		inst, err := i18n.New()
		require.NoError(t, err)
		require.Equal(t, "en", inst.DefaultLanguage())
		require.Equal(t, "en", inst.Language())
		require.Equal(t, i18n.StrategyFallback, inst.Strategy())
		require.Equal(t, []string{"en"}, inst.Languages())
	})

	t.Run("sets custom default language", func(t *testing.T) {
		t.Parallel()
		inst, err := i18n.New(i18n.WithDefaultLanguage("pl"))
		require.NoError(t, err)
		require.Equal(t, "pl", inst.DefaultLanguage())
	})

	t.Run("lists languages and categories", func(t *testing.T) {
		t.Parallel()
		inst := newService(t)
		require.Equal(t, []string{"en", "de", "de-AT", "fr"}, inst.Languages())
		require.Equal(t, []string{"", "Profile", "cart", "inbox"}, inst.Categories())
		require.True(t, inst.Has("greeting"))
		require.False(t, inst.Has("nope"))

		entry, ok := inst.Entry("inbox.summary")
		require.True(t, ok)
		require.Equal(t, "inbox", entry.Category)
	})

	tests := []struct {
		name string
		opt  i18n.Option
		err  error
	}{
		{"empty default language", i18n.WithDefaultLanguage(""), i18n.ErrEmptyLanguage},
		{"empty language", i18n.WithLanguage(""), i18n.ErrEmptyLanguage},
		{"unknown strategy", i18n.WithMissingStrategy("loud"), i18n.ErrInvalidStrategy},
		{"plural rule without language", i18n.WithPluralRule("", func(float64) string { return "other" }), i18n.ErrEmptyLanguage},
		{"nil plural rule", i18n.WithPluralRule("en", nil), i18n.ErrNilPluralRule},
		{"translations without language", i18n.WithTranslations("", "ui", map[string]any{"a": "b"}), i18n.ErrEmptyLanguage},
		{
			"conflicting tables",
			i18n.WithTable(i18n.Table{"greeting": {Values: map[string]string{"en": "Hi"}}}),
			i18n.ErrDuplicateKey,
		},
		{"empty key", i18n.WithTable(i18n.Table{"": {Values: map[string]string{"en": "x"}}}), i18n.ErrEmptyKey},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := i18n.New(i18n.WithTable(testTable()), tt.opt)
			require.ErrorIs(t, err, tt.err)
		})
	}

	t.Run("identical templates merge", func(t *testing.T) {
		t.Parallel()
		inst, err := i18n.New(
			i18n.WithTable(testTable()),
			i18n.WithTable(i18n.Table{"greeting": {Values: map[string]string{"en": "Hello, {name}!", "pl": "Cześć, {name}!"}}}),
		)
		require.NoError(t, err)
		out, err := inst.Translate("pl", "greeting", i18n.M{"name": "Ola"})
		require.NoError(t, err)
		require.Equal(t, "Cześć, Ola!", out)
	})

	t.Run("nested translations", func(t *testing.T) {
		t.Parallel()
		inst, err := i18n.New(
			i18n.WithTranslations("en", "ui", map[string]any{
				"buttons": map[string]any{"save": "Save", "cancel": "Cancel"},
				"retries": 3,
			}),
		)
		require.NoError(t, err)

		out, err := inst.TranslateIn("en", "ui", "buttons.save")
		require.NoError(t, err)
		require.Equal(t, "Save", out)

		out, err = inst.Translate("en", "retries")
		require.NoError(t, err)
		require.Equal(t, "3", out)
	})
}

func TestTranslate(t *testing.T) {
	t.Parallel()

	t.Run("renders plural in requested language", func(t *testing.T) {
		t.Parallel()
		inst := newService(t)
		for count, want := range map[int]string{0: "Keine Nachrichten", 1: "1 Nachricht", 3: "3 Nachrichten"} {
			out, err := inst.Translate("de", "inbox.summary", i18n.M{"count": count})
			require.NoError(t, err)
			assert.Equal(t, want, out)
		}
	})

	t.Run("regional text and base language fallback", func(t *testing.T) {
		t.Parallel()
		inst := newService(t, i18n.WithCollectMissing(true))

		out, err := inst.Translate("de-AT", "greeting", i18n.M{"name": "Ann"})
		require.NoError(t, err)
		assert.Equal(t, "Servus, Ann!", out)

		out, err = inst.Translate("de-CH", "greeting", i18n.M{"name": "Ann"})
		require.NoError(t, err)
		assert.Equal(t, "Hallo, Ann!", out)
		assert.Empty(t, inst.MissingTranslations())
	})

	t.Run("empty language uses configured language", func(t *testing.T) {
		t.Parallel()
		out, err := newService(t).Translate("", "greeting", i18n.M{"name": "Ann"})
		require.NoError(t, err)
		assert.Equal(t, "Hello, Ann!", out)

		out, err = newService(t, i18n.WithLanguage("de")).Translate("", "greeting", i18n.M{"name": "Ann"})
		require.NoError(t, err)
		assert.Equal(t, "Hallo, Ann!", out)
	})

	t.Run("merges placeholder maps", func(t *testing.T) {
		t.Parallel()
		out, err := newService(t).Translate("en", "greeting", i18n.M{"name": "Ann"}, i18n.M{"name": "Bob"})
		require.NoError(t, err)
		assert.Equal(t, "Hello, Bob!", out)
	})

	t.Run("unsupported placeholder value", func(t *testing.T) {
		t.Parallel()
		_, err := newService(t).Translate("en", "greeting", i18n.M{"name": []string{"x"}})
		require.ErrorIs(t, err, messageformat.ErrUnsupportedValue)
	})

	t.Run("locale overrides", func(t *testing.T) {
		t.Parallel()
		inst := newService(t, i18n.WithLocales(map[string]string{"en": "de"}))
		out, err := inst.Translate("en", "cart.total", i18n.M{"total": 1234.5})
		require.NoError(t, err)
		assert.Equal(t, "Total: 1.234,50 €", out)
	})

	t.Run("large counts use the cardinal rule", func(t *testing.T) {
		t.Parallel()
		out, err := newService(t).Translate("en", "files", i18n.M{"n": 10000001})
		require.NoError(t, err)
		assert.Equal(t, "10,000,001 files", out)
	})

	t.Run("custom plural rule", func(t *testing.T) {
		t.Parallel()
		inst := newService(t, i18n.WithPluralRule("en", func(float64) string { return messageformat.PluralOne }))
		out, err := inst.Translate("en", "files", i18n.M{"n": 7})
		require.NoError(t, err)
		assert.Equal(t, "7 file", out)
	})

	t.Run("template errors are returned in fallback mode", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		inst := newService(t, i18n.WithLogger(slog.New(slog.NewJSONHandler(&buf, nil))))

		_, err := inst.Translate("en", "broken", i18n.M{"count": 1})
		require.ErrorIs(t, err, messageformat.ErrUnterminatedExpression)

		var serr *messageformat.SyntaxError
		require.ErrorAs(t, err, &serr)
		assert.Equal(t, "broken", serr.Key)
		assert.Equal(t, "en", serr.Language)
		assert.Equal(t, 1, serr.Line)
		assert.Equal(t, 1, serr.Column)

		assert.Contains(t, buf.String(), `"msg":"template syntax error"`)
		assert.Contains(t, buf.String(), `"key":"broken"`)
	})

	t.Run("concurrent use", func(t *testing.T) {
		t.Parallel()
		inst := newService(t)
		var wg sync.WaitGroup
		for n := range 50 {
			wg.Add(1)
			go func(n int) {
				defer wg.Done()
				out, err := inst.Translate("en", "files", i18n.M{"n": n})
				assert.NoError(t, err)
				assert.NotEmpty(t, out)
			}(n)
		}
		wg.Wait()
	})
}

func TestMissingTranslations(t *testing.T) {
	t.Parallel()

	t.Run("unknown key under fallback", func(t *testing.T) {
		t.Parallel()
		var events []i18n.MissingTranslation
		inst := newService(t, i18n.WithMissingHandler(func(m i18n.MissingTranslation) {
			events = append(events, m)
		}))

		out, err := inst.Translate("de", "no.such.key")
		require.NoError(t, err)
		assert.Equal(t, "no.such.key", out)
		require.Len(t, events, 1)
		assert.Equal(t, i18n.MissingTranslation{
			Key:             "no.such.key",
			Language:        "de",
			DefaultLanguage: "en",
			Reason:          i18n.MissingKey,
		}, events[0])
	})

	t.Run("unknown key under strict", func(t *testing.T) {
		t.Parallel()
		called := 0
		inst := newService(t,
			i18n.WithMissingStrategy(i18n.StrategyStrict),
			i18n.WithMissingHandler(func(i18n.MissingTranslation) { called++ }),
		)

		out, err := inst.Translate("de", "no.such.key")
		require.Error(t, err)
		assert.Empty(t, out)
		assert.True(t, errors.Is(err, i18n.ErrMissingTranslation))
		assert.Equal(t, 1, called)

		var merr *i18n.MissingTranslationError
		require.ErrorAs(t, err, &merr)
		assert.Equal(t, i18n.MissingKey, merr.Reason)
		assert.Contains(t, err.Error(), `"no.such.key"`)
	})

	t.Run("missing language falls back to default", func(t *testing.T) {
		t.Parallel()
		inst := newService(t, i18n.WithCollectMissing(true))

		out, err := inst.Translate("fr", "only.en")
		require.NoError(t, err)
		assert.Equal(t, "English only", out)

		events := inst.MissingTranslations()
		require.Len(t, events, 1)
		assert.Equal(t, i18n.MissingLanguage, events[0].Reason)
		assert.Equal(t, "fr", events[0].Language)
	})

	t.Run("fallback text renders with its own language rules", func(t *testing.T) {
		t.Parallel()
		out, err := newService(t).Translate("ru", "files", i18n.M{"n": 2})
		require.NoError(t, err)
		assert.Equal(t, "2 files", out)
	})

	t.Run("missing language under strict", func(t *testing.T) {
		t.Parallel()
		inst := newService(t, i18n.WithMissingStrategy(i18n.StrategyStrict))
		_, err := inst.Translate("fr", "only.en")

		var merr *i18n.MissingTranslationError
		require.ErrorAs(t, err, &merr)
		assert.Equal(t, i18n.MissingLanguage, merr.Reason)
	})

	t.Run("empty default text", func(t *testing.T) {
		t.Parallel()
		inst := newService(t, i18n.WithCollectMissing(true))

		out, err := inst.Translate("de", "empty.default")
		require.NoError(t, err)
		assert.Equal(t, "empty.default", out)

		events := inst.MissingTranslations()
		require.Len(t, events, 2)
		assert.Equal(t, i18n.MissingLanguage, events[0].Reason)
		assert.Equal(t, i18n.MissingFallback, events[1].Reason)

		inst.ResetMissingTranslations()
		out, err = inst.Translate("en", "empty.default")
		require.NoError(t, err)
		assert.Equal(t, "empty.default", out)
		events = inst.MissingTranslations()
		require.Len(t, events, 1)
		assert.Equal(t, i18n.MissingFallback, events[0].Reason)

		out, err = inst.Translate("fr", "empty.default")
		require.NoError(t, err)
		assert.Equal(t, "Bonjour", out)
	})

	t.Run("collector disabled", func(t *testing.T) {
		t.Parallel()
		inst := newService(t)
		_, err := inst.Translate("de", "no.such.key")
		require.NoError(t, err)
		assert.Nil(t, inst.MissingTranslations())
		inst.ResetMissingTranslations()
	})

	t.Run("collector keeps the latest events", func(t *testing.T) {
		t.Parallel()
		inst := newService(t, i18n.WithCollectMissing(true))

		for n := range i18n.MaxCollectedMissing + 5 {
			_, err := inst.Translate("en", "gone."+strconv.Itoa(n))
			require.NoError(t, err)
		}

		events := inst.MissingTranslations()
		require.Len(t, events, i18n.MaxCollectedMissing)
		assert.Equal(t, "gone.5", events[0].Key)
		assert.Equal(t, "gone."+strconv.Itoa(i18n.MaxCollectedMissing+4), events[len(events)-1].Key)
	})

	t.Run("logged at debug level", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		inst := newService(t, i18n.WithLogger(log))

		_, err := inst.Translate("de", "no.such.key")
		require.NoError(t, err)
		assert.Contains(t, buf.String(), `"level":"DEBUG"`)
		assert.Contains(t, buf.String(), `"reason":"missingKey"`)
	})

	t.Run("log handler", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := slog.New(slog.NewTextHandler(&buf, nil))
		inst := newService(t, i18n.WithMissingHandler(i18n.LogMissing(log)))

		_, err := inst.Translate("fr", "only.en")
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "level=WARN")
		assert.Contains(t, buf.String(), "reason=missingLanguage")
		assert.Contains(t, buf.String(), "key=only.en")
	})
}

func TestTranslateIn(t *testing.T) {
	t.Parallel()

	inst := newService(t, i18n.WithCollectMissing(true))

	out, err := inst.TranslateIn("en", "inbox", "inbox.summary", i18n.M{"count": 1})
	require.NoError(t, err)
	assert.Equal(t, "1 message", out)

	out, err = inst.TranslateIn("en", i18n.DefaultCategory, "greeting", i18n.M{"name": "Ann"})
	require.NoError(t, err)
	assert.Equal(t, "Hello, Ann!", out)

	out, err = inst.TranslateIn("en", "Profile", "profile", i18n.M{"gender": "female"})
	require.NoError(t, err)
	assert.Equal(t, "She updated the profile", out)

	inst.ResetMissingTranslations()

	out, err = inst.TranslateIn("en", "cart", "inbox.summary")
	require.NoError(t, err)
	assert.Equal(t, "inbox.summary", out)

	out, err = inst.TranslateIn("en", "profile", "profile")
	require.NoError(t, err)
	assert.Equal(t, "profile", out)

	events := inst.MissingTranslations()
	require.Len(t, events, 2)
	assert.Equal(t, i18n.MissingTranslation{
		Key: "inbox.summary", Category: "cart", Language: "en", DefaultLanguage: "en", Reason: i18n.MissingKey,
	}, events[0])
	assert.Equal(t, "profile", events[1].Category)
}

func TestWith(t *testing.T) {
	t.Parallel()

	t.Run("strategy and sharing", func(t *testing.T) {
		t.Parallel()
		base := newService(t)
		strict, err := base.With(i18n.Update{MissingStrategy: i18n.Set(i18n.StrategyStrict)})
		require.NoError(t, err)

		assert.Equal(t, i18n.StrategyFallback, base.Strategy())
		assert.Equal(t, i18n.StrategyStrict, strict.Strategy())
		assert.Same(t, base.Engine(), strict.Engine())

		_, err = strict.Translate("en", "no.such.key")
		require.ErrorIs(t, err, i18n.ErrMissingTranslation)

		relaxed, err := strict.With(i18n.Update{MissingStrategy: i18n.Clear[i18n.MissingStrategy]()})
		require.NoError(t, err)
		assert.Equal(t, i18n.StrategyFallback, relaxed.Strategy())
	})

	t.Run("unset fields are kept", func(t *testing.T) {
		t.Parallel()
		base := newService(t, i18n.WithLanguage("de"), i18n.WithDefaultLanguage("de"))
		same, err := base.With(i18n.Update{})
		require.NoError(t, err)
		assert.Equal(t, "de", same.Language())
		assert.Equal(t, "de", same.DefaultLanguage())
	})

	t.Run("language and default language", func(t *testing.T) {
		t.Parallel()
		base := newService(t, i18n.WithLanguage("de"))

		cleared, err := base.With(i18n.Update{Language: i18n.Clear[string]()})
		require.NoError(t, err)
		assert.Equal(t, "en", cleared.Language())

		german, err := base.With(i18n.Update{DefaultLanguage: i18n.Set("de")})
		require.NoError(t, err)
		assert.Equal(t, []string{"de", "de-AT", "en", "fr"}, german.Languages())

		reset, err := german.With(i18n.Update{DefaultLanguage: i18n.Clear[string]()})
		require.NoError(t, err)
		assert.Equal(t, "en", reset.DefaultLanguage())

		_, err = base.With(i18n.Update{Language: i18n.Set("")})
		require.ErrorIs(t, err, i18n.ErrEmptyLanguage)

		_, err = base.With(i18n.Update{MissingStrategy: i18n.Set(i18n.MissingStrategy("loud"))})
		require.ErrorIs(t, err, i18n.ErrInvalidStrategy)
	})

	t.Run("formatters", func(t *testing.T) {
		t.Parallel()
		inst := newService(t, i18n.WithTable(i18n.Table{
			"shout": {Values: map[string]string{"en": "{name|upper}"}},
		}))

		out, err := inst.Translate("en", "shout", i18n.M{"name": "ann"})
		require.NoError(t, err)
		assert.Equal(t, "ANN", out)

		plain, err := inst.With(i18n.Update{Formatters: i18n.Clear[map[string]i18n.FormatterFunc]()})
		require.NoError(t, err)
		out, err = plain.Translate("en", "shout", i18n.M{"name": "ann"})
		require.NoError(t, err)
		assert.Equal(t, "ann", out)

		custom, err := inst.With(i18n.Update{Formatters: i18n.Set(map[string]i18n.FormatterFunc{
			"upper": func(v messageformat.Value, _ messageformat.FormatContext) string { return "<" + v.String() + ">" },
		})})
		require.NoError(t, err)
		out, err = custom.Translate("en", "shout", i18n.M{"name": "ann"})
		require.NoError(t, err)
		assert.Equal(t, "<ann>", out)
	})

	t.Run("locales", func(t *testing.T) {
		t.Parallel()
		inst := newService(t, i18n.WithLocales(map[string]string{"en": "de"}))
		cleared, err := inst.With(i18n.Update{Locales: i18n.Clear[map[string]string]()})
		require.NoError(t, err)

		out, err := cleared.Translate("en", "cart.total", i18n.M{"total": 5})
		require.NoError(t, err)
		assert.Equal(t, "Total: $5.00", out)
	})

	t.Run("missing observers", func(t *testing.T) {
		t.Parallel()
		calls := 0
		inst := newService(t, i18n.WithMissingHandler(func(i18n.MissingTranslation) { calls++ }))

		collecting, err := inst.With(i18n.Update{
			CollectMissing: i18n.Set(true),
			OnMissing:      i18n.Clear[i18n.MissingHandler](),
		})
		require.NoError(t, err)

		_, err = collecting.Translate("en", "no.such.key")
		require.NoError(t, err)
		assert.Zero(t, calls)
		require.Len(t, collecting.MissingTranslations(), 1)

		kept, err := collecting.With(i18n.Update{CollectMissing: i18n.Set(true)})
		require.NoError(t, err)
		require.Len(t, kept.MissingTranslations(), 1)

		off, err := collecting.With(i18n.Update{CollectMissing: i18n.Clear[bool]()})
		require.NoError(t, err)
		assert.Nil(t, off.MissingTranslations())

		observed, err := off.With(i18n.Update{OnMissing: i18n.Set[i18n.MissingHandler](func(i18n.MissingTranslation) { calls += 10 })})
		require.NoError(t, err)
		_, err = observed.Translate("en", "no.such.key")
		require.NoError(t, err)
		assert.Equal(t, 10, calls)
	})
}

func TestField(t *testing.T) {
	t.Parallel()

	var unset i18n.Field[string]
	assert.True(t, unset.IsUnset())
	_, ok := unset.Get()
	assert.False(t, ok)

	cleared := i18n.Clear[string]()
	assert.True(t, cleared.IsCleared())
	assert.False(t, cleared.IsUnset())

	set := i18n.Set("x")
	v, ok := set.Get()
	assert.True(t, ok)
	assert.Equal(t, "x", v)
}
