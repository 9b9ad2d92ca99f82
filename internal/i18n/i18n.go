// Package i18n resolves localized bot texts from YAML bundles.
//
// A bundle file is named after its language (en.yaml, ru.yaml) and maps
// scene -> key -> value, where a value is either a string or a list of strings.
package i18n

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	// ErrMissingTranslation is returned when a scene/key pair is absent from a bundle
	ErrMissingTranslation = errors.New("missing translation")
	// ErrUnknownLanguage is returned when neither the requested nor the default language is loaded
	ErrUnknownLanguage = errors.New("unknown language")
)

//go:embed locales/*.yaml
var embedded embed.FS

// entry is a single translation value: a string or an ordered list of strings
type entry struct {
	text  string
	lines []string
	list  bool
}

func (e *entry) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		return value.Decode(&e.text)
	case yaml.SequenceNode:
		e.list = true
		return value.Decode(&e.lines)
	default:
		return fmt.Errorf("line %d: translation must be a string or a list of strings", value.Line)
	}
}

type catalog map[string]map[string]entry

// Bundle holds translations for every loaded language
type Bundle struct {
	defaultLanguage string
	catalogs        map[string]catalog
}

// Default loads the bundles shipped with the binary
func Default(defaultLanguage string) (*Bundle, error) {
	sub, err := fs.Sub(embedded, "locales")
	if err != nil {
		return nil, err
	}
	return Load(sub, defaultLanguage)
}

// Load reads every *.yaml file at the root of fsys
func Load(fsys fs.FS, defaultLanguage string) (*Bundle, error) {
	files, err := fs.Glob(fsys, "*.yaml")
	if err != nil {
		return nil, err
	}

	b := &Bundle{
		defaultLanguage: normalize(defaultLanguage),
		catalogs:        make(map[string]catalog, len(files)),
	}

	for _, name := range files {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}

		var c catalog
		if err := yaml.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}

		b.catalogs[normalize(strings.TrimSuffix(path.Base(name), ".yaml"))] = c
	}

	if _, ok := b.catalogs[b.defaultLanguage]; !ok {
		return nil, fmt.Errorf("%w: no bundle for default language %q", ErrUnknownLanguage, defaultLanguage)
	}

	return b, nil
}

// Languages returns the loaded language codes in sorted order
func (b *Bundle) Languages() []string {
	langs := make([]string, 0, len(b.catalogs))
	for lang := range b.catalogs {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// Text returns a single-string translation
func (b *Bundle) Text(lang, scene, key string) (string, error) {
	e, err := b.lookup(lang, scene, key)
	if err != nil {
		return "", err
	}
	if e.list {
		return "", fmt.Errorf("%w: %s.%s is a list, not a string", ErrMissingTranslation, scene, key)
	}
	return e.text, nil
}

// Lines returns a list translation. A string value is returned as a one-element list.
func (b *Bundle) Lines(lang, scene, key string) ([]string, error) {
	e, err := b.lookup(lang, scene, key)
	if err != nil {
		return nil, err
	}
	if !e.list {
		return []string{e.text}, nil
	}
	lines := make([]string, len(e.lines))
	copy(lines, e.lines)
	return lines, nil
}

func (b *Bundle) lookup(lang, scene, key string) (entry, error) {
	c := b.catalog(lang)
	e, ok := c[scene][key]
	if !ok {
		return entry{}, fmt.Errorf("%w: %s.%s (%s)", ErrMissingTranslation, scene, key, lang)
	}
	return e, nil
}

// catalog picks the closest loaded catalog: exact code, base language, then default
func (b *Bundle) catalog(lang string) catalog {
	lang = normalize(lang)
	if c, ok := b.catalogs[lang]; ok {
		return c
	}
	if base, _, found := strings.Cut(lang, "-"); found {
		if c, ok := b.catalogs[base]; ok {
			return c
		}
	}
	return b.catalogs[b.defaultLanguage]
}

func normalize(lang string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(lang)), "_", "-")
}
