package messageformat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/msgfmt/pkg/messageformat"
)

func TestCLDRPluralRule(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		tag  language.Tag
		kind messageformat.PluralKind
		want map[float64]string
	}{
		{
			name: "english cardinal",
			tag:  language.English,
			kind: messageformat.Cardinal,
			want: map[float64]string{0: "other", 1: "one", 2: "other", 1.5: "other", 100: "other"},
		},
		{
			name: "english ordinal",
			tag:  language.English,
			kind: messageformat.Ordinal,
			want: map[float64]string{1: "one", 2: "two", 3: "few", 4: "other", 11: "other", 12: "other", 13: "other", 21: "one", 22: "two", 23: "few"},
		},
		{
			name: "russian cardinal",
			tag:  language.Russian,
			kind: messageformat.Cardinal,
			want: map[float64]string{1: "one", 2: "few", 4: "few", 5: "many", 11: "many", 21: "one", 22: "few", 1.5: "other"},
		},
		{
			name: "polish cardinal",
			tag:  language.Polish,
			kind: messageformat.Cardinal,
			want: map[float64]string{1: "one", 3: "few", 5: "many", 12: "many", 22: "few"},
		},
		{
			name: "arabic cardinal",
			tag:  language.Arabic,
			kind: messageformat.Cardinal,
			want: map[float64]string{0: "zero", 1: "one", 2: "two", 3: "few", 11: "many", 100: "other"},
		},
		{
			name: "japanese cardinal",
			tag:  language.Japanese,
			kind: messageformat.Cardinal,
			want: map[float64]string{0: "other", 1: "other", 2: "other"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rule := messageformat.CLDRPluralRule(tt.tag, tt.kind)
			for n, want := range tt.want {
				assert.Equal(t, want, rule(n), "n=%v", n)
			}
		})
	}

	t.Run("negative numbers use the absolute value", func(t *testing.T) {
		t.Parallel()
		rule := messageformat.CLDRPluralRule(language.English, messageformat.Cardinal)
		assert.Equal(t, "one", rule(-1))
	})

	t.Run("large numbers", func(t *testing.T) {
		t.Parallel()
		rule := messageformat.CLDRPluralRule(language.Russian, messageformat.Cardinal)
		assert.Equal(t, "one", rule(100000001))
		assert.Equal(t, "many", rule(100000005))

		en := messageformat.CLDRPluralRule(language.English, messageformat.Cardinal)
		assert.Equal(t, "other", en(10000001))
		assert.Equal(t, "other", en(1e25))

		enOrdinal := messageformat.CLDRPluralRule(language.English, messageformat.Ordinal)
		assert.Equal(t, "one", enOrdinal(10000001))
		assert.Equal(t, "two", enOrdinal(10000002))

		fr := messageformat.CLDRPluralRule(language.French, messageformat.Cardinal)
		assert.Equal(t, "one", fr(1))
		assert.NotEqual(t, "one", fr(10000000))
		assert.NotEqual(t, "one", fr(10000001))
	})
}

func TestPluralCategories(t *testing.T) {
	t.Parallel()

	tests := []struct {
		tag  language.Tag
		want []string
	}{
		{language.English, []string{"one", "other"}},
		{language.Japanese, []string{"other"}},
		{language.Russian, []string{"one", "few", "many", "other"}},
		{language.Arabic, []string{"zero", "one", "two", "few", "many", "other"}},
	}

	for _, tt := range tests {
		t.Run(tt.tag.String(), func(t *testing.T) {
			t.Parallel()
			rule := messageformat.CLDRPluralRule(tt.tag, messageformat.Cardinal)
			assert.Equal(t, tt.want, messageformat.PluralCategories(rule))
		})
	}
}
