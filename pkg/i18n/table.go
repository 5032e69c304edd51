package i18n

import (
	"fmt"
	"maps"
	"slices"
)

// DefaultCategory is the category of entries that declare none.
const DefaultCategory = ""

// Entry is one translatable message: a template per language plus metadata
// maintained by whoever produced the table.
type Entry struct {
	Values       map[string]string `json:"values" yaml:"values" toml:"values"`
	Description  string            `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
	Category     string            `json:"category,omitempty" yaml:"category,omitempty" toml:"category,omitempty"`
	Status       string            `json:"status,omitempty" yaml:"status,omitempty" toml:"status,omitempty"`
	Placeholders []string          `json:"placeholders,omitempty" yaml:"placeholders,omitempty" toml:"placeholders,omitempty"`
}

// Text returns the template for lang, or "" when the entry has none.
func (e Entry) Text(lang string) string {
	return e.Values[lang]
}

// Table maps stable translation keys to entries. It is never modified
// once handed to New.
type Table map[string]Entry

// Languages returns every language that has at least one template, sorted.
func (t Table) Languages() []string {
	set := make(map[string]struct{})
	for _, e := range t {
		for lang, text := range e.Values {
			if text != "" {
				set[lang] = struct{}{}
			}
		}
	}
	return slices.Sorted(maps.Keys(set))
}

// Categories returns the distinct entry categories, sorted. Entries without
// a category are reported as DefaultCategory.
func (t Table) Categories() []string {
	set := make(map[string]struct{})
	for _, e := range t {
		set[e.Category] = struct{}{}
	}
	return slices.Sorted(maps.Keys(set))
}

// merge adds src to t. Templates for a key are combined per language;
// two different templates for the same key and language are a conflict.
// Metadata is taken from the first source that provides it.
func (t Table) merge(src Table) error {
	for key, in := range src {
		if key == "" {
			return ErrEmptyKey
		}
		cur, exists := t[key]
		if !exists {
			cur = Entry{Values: make(map[string]string, len(in.Values))}
		} else {
			cur.Values = maps.Clone(cur.Values)
			if cur.Values == nil {
				cur.Values = make(map[string]string, len(in.Values))
			}
		}
		for lang, text := range in.Values {
			if lang == "" {
				return fmt.Errorf("%w: key %q", ErrEmptyLanguage, key)
			}
			if prev, ok := cur.Values[lang]; ok && prev != text {
				return fmt.Errorf("%w %q in language %q", ErrDuplicateKey, key, lang)
			}
			cur.Values[lang] = text
		}
		if cur.Description == "" {
			cur.Description = in.Description
		}
		if cur.Category == "" {
			cur.Category = in.Category
		}
		if cur.Status == "" {
			cur.Status = in.Status
		}
		if len(cur.Placeholders) == 0 {
			cur.Placeholders = slices.Clone(in.Placeholders)
		}
		t[key] = cur
	}
	return nil
}

// categoryIndex groups keys by exact, case-sensitive category.
func categoryIndex(t Table) map[string]map[string]struct{} {
	index := make(map[string]map[string]struct{})
	for key, e := range t {
		keys, ok := index[e.Category]
		if !ok {
			keys = make(map[string]struct{})
			index[e.Category] = keys
		}
		keys[key] = struct{}{}
	}
	return index
}

// flattenTranslations turns nested message maps into dot-separated keys.
func flattenTranslations(data map[string]any, prefix string) map[string]string {
	result := make(map[string]string)

	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = v
		case map[string]any:
			maps.Copy(result, flattenTranslations(v, fullKey))
		case map[string]string:
			for subKey, subVal := range v {
				result[fullKey+"."+subKey] = subVal
			}
		default:
			result[fullKey] = fmt.Sprintf("%v", v)
		}
	}

	return result
}

// messagesTable builds a single-language table from a nested message map.
func messagesTable(lang, category string, messages map[string]any) Table {
	flat := flattenTranslations(messages, "")
	t := make(Table, len(flat))
	for key, text := range flat {
		t[key] = Entry{Category: category, Values: map[string]string{lang: text}}
	}
	return t
}
