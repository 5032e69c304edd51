package i18n

import (
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/goccy/go-json"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

type unmarshalFunc func(data []byte, v any) error

// Supported file extensions and their decoders.
var decoders = map[string]unmarshalFunc{
	".json": json.Unmarshal,
	".yaml": yaml.Unmarshal,
	".yml":  yaml.Unmarshal,
	".toml": toml.Unmarshal,
}

func decoderFor(name string) (unmarshalFunc, bool) {
	dec, ok := decoders[strings.ToLower(path.Ext(name))]
	return dec, ok
}

// ParseTable decodes a translation table document. format is a file
// extension: ".json", ".yaml", ".yml" or ".toml".
//
// Example (YAML):
//
//	inbox.summary:
//	  category: inbox
//	  description: Unread counter on the inbox page
//	  values:
//	    en: "{count, plural, one {# message} other {# messages}}"
//	    de: "{count, plural, one {# Nachricht} other {# Nachrichten}}"
func ParseTable(data []byte, format string) (Table, error) {
	dec, ok := decoderFor("table" + format)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	var t Table
	if err := dec(data, &t); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidFile, err)
	}
	return t, nil
}

// WithTableFile loads a translation table document from fsys. The format is
// chosen by the file extension, see ParseTable.
func WithTableFile(fsys fs.FS, name string) Option {
	return func(i *I18n) error {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading %q: %w", name, err)
		}
		t, err := ParseTable(data, path.Ext(name))
		if err != nil {
			return fmt.Errorf("parsing %q: %w", name, err)
		}
		return i.table.merge(t)
	}
}

// WithTableDir loads per-language message files from an fs.FS.
// The fs.FS root must contain language directories directly.
// File convention: {lang}/{category}.{json,yaml,yml,toml}, where each file
// holds a possibly nested map of key to template. Files with other
// extensions are ignored.
//
// Example structure:
//
//	en/inbox.yaml
//	en/errors.json
//	de/inbox.toml
func WithTableDir(fsys fs.FS) Option {
	return func(i *I18n) error {
		return fs.WalkDir(fsys, ".", func(filePath string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}

			dec, ok := decoderFor(filePath)
			if !ok {
				return nil
			}

			dir := path.Dir(filePath)
			if dir == "." || dir == "" {
				return fmt.Errorf("%w: file %q must be inside a language directory", ErrInvalidFile, filePath)
			}

			lang := path.Base(dir)
			category := strings.TrimSuffix(path.Base(filePath), path.Ext(filePath))

			data, err := fs.ReadFile(fsys, filePath)
			if err != nil {
				return fmt.Errorf("reading %q: %w", filePath, err)
			}

			var messages map[string]any
			if err := dec(data, &messages); err != nil {
				return fmt.Errorf("%w: parsing %q: %s", ErrInvalidFile, filePath, err)
			}

			if err := i.table.merge(messagesTable(lang, category, messages)); err != nil {
				return fmt.Errorf("loading %q: %w", filePath, err)
			}
			return nil
		})
	}
}
