package intl

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// WithJSONDir returns an Option that loads message catalogs from JSON files
// in an fs.FS. The fs.FS root must contain locale directories directly.
// File convention: {locale}/{namespace}.json
//
// Example structure:
//
//	en/common.json
//	en/errors.json
//	de/common.json
//
// Nested objects flatten to dot-separated message ids, prefixed by the
// namespace: {"greeting": {"morning": "..."}} in common.json becomes
// "common.greeting.morning".
func WithJSONDir(fsys fs.FS) Option {
	return func(b *Bundle) error {
		return loadDir(b, fsys, ".json", func(data []byte, v any) error {
			return json.Unmarshal(data, v)
		})
	}
}

// WithYAMLDir returns an Option that loads message catalogs from YAML files
// in an fs.FS. File convention: {locale}/{namespace}.yaml or
// {locale}/{namespace}.yml. Nesting flattens like WithJSONDir.
func WithYAMLDir(fsys fs.FS) Option {
	return func(b *Bundle) error {
		return loadDir(b, fsys, ".yaml", func(data []byte, v any) error {
			return yaml.Unmarshal(data, v)
		})
	}
}

// WithTOMLDir returns an Option that loads message catalogs from TOML files
// in an fs.FS. File convention: {locale}/{namespace}.toml. Tables flatten
// like WithJSONDir's nested objects.
func WithTOMLDir(fsys fs.FS) Option {
	return func(b *Bundle) error {
		return loadDir(b, fsys, ".toml", func(data []byte, v any) error {
			return toml.Unmarshal(data, v)
		})
	}
}

func loadDir(b *Bundle, fsys fs.FS, ext string, unmarshal func([]byte, any) error) error {
	return fs.WalkDir(fsys, ".", func(filePath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		fileExt := strings.ToLower(path.Ext(filePath))

		var matches bool
		if ext == ".yaml" {
			matches = fileExt == ".yaml" || fileExt == ".yml"
		} else {
			matches = fileExt == ext
		}
		if !matches {
			return nil
		}

		dir := path.Dir(filePath)
		if dir == "." || dir == "" {
			return fmt.Errorf("%w: file %q must be inside a locale directory", ErrInvalidCatalog, filePath)
		}

		locale := path.Base(dir)
		namespace := strings.TrimSuffix(path.Base(filePath), path.Ext(filePath))

		data, err := fs.ReadFile(fsys, filePath)
		if err != nil {
			return fmt.Errorf("reading %q: %w", filePath, err)
		}

		var raw map[string]any
		if err := unmarshal(data, &raw); err != nil {
			return fmt.Errorf("%w: parsing %q: %s", ErrInvalidCatalog, filePath, err)
		}

		flat := make(map[string]string)
		if err := flattenCatalog(raw, namespace, flat); err != nil {
			return fmt.Errorf("%w: %q: %s", ErrInvalidCatalog, filePath, err)
		}

		if b.messages[locale] == nil {
			b.messages[locale] = make(map[string]string, len(flat))
		}
		for id, tmpl := range flat {
			b.messages[locale][id] = tmpl
		}

		return nil
	})
}

// flattenCatalog converts nested maps to dot-separated message ids. Leaf
// values must be strings; anything else is a malformed catalog.
func flattenCatalog(raw map[string]any, prefix string, out map[string]string) error {
	for key, value := range raw {
		id := key
		if prefix != "" {
			id = prefix + "." + key
		}
		switch v := value.(type) {
		case string:
			out[id] = v
		case map[string]any:
			if err := flattenCatalog(v, id, out); err != nil {
				return err
			}
		default:
			return fmt.Errorf("key %q holds %T, want string or map", id, value)
		}
	}
	return nil
}
