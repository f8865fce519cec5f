// Package catalog loads the per-locale site copy and guarantees at load time
// that every supported locale carries every field.
package catalog

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"reflect"
	"sort"
	"strings"

	"github.com/louisbranch/klyrapay/internal/platform/i18n"
	"gopkg.in/yaml.v3"
)

const catalogGlob = "locales/*/site.yaml"

type catalogFile struct {
	Locale     string     `yaml:"locale"`
	Dictionary Dictionary `yaml:"dictionary"`
}

// Bundle maps each supported locale to its validated dictionary.
type Bundle struct {
	dictionaries map[i18n.Locale]Dictionary
}

//go:embed locales/*/site.yaml
var embeddedCatalogFS embed.FS

// LoadEmbedded loads catalog files embedded in this package.
func LoadEmbedded() (*Bundle, error) {
	return LoadFromFS(embeddedCatalogFS)
}

// LoadFromFS loads and validates catalog files from the provided filesystem.
func LoadFromFS(catalogFS fs.FS) (*Bundle, error) {
	paths, err := fs.Glob(catalogFS, catalogGlob)
	if err != nil {
		return nil, fmt.Errorf("glob locale catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, errors.New("no catalog files found")
	}
	sort.Strings(paths)

	bundle := &Bundle{dictionaries: map[i18n.Locale]Dictionary{}}
	for _, path := range paths {
		data, err := fs.ReadFile(catalogFS, path)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", path, err)
		}
		parsed, err := parseCatalogFile(data)
		if err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", path, err)
		}
		if err := bundle.addFile(path, parsed); err != nil {
			return nil, err
		}
	}

	if err := bundle.validate(); err != nil {
		return nil, err
	}
	return bundle, nil
}

func (b *Bundle) addFile(path string, file catalogFile) error {
	localeFromPath := filepath.Base(filepath.Dir(path))

	raw := strings.TrimSpace(file.Locale)
	if raw == "" {
		return fmt.Errorf("catalog %s: locale is required", path)
	}
	if raw != localeFromPath {
		return fmt.Errorf("catalog %s: locale %q must match path locale %q", path, raw, localeFromPath)
	}
	locale, ok := i18n.Parse(raw)
	if !ok || string(locale) != raw {
		return fmt.Errorf("catalog %s: locale %q is not supported", path, raw)
	}
	if _, exists := b.dictionaries[locale]; exists {
		return fmt.Errorf("catalog %s: locale %q already defined", path, raw)
	}
	b.dictionaries[locale] = file.Dictionary
	return nil
}

func (b *Bundle) validate() error {
	base, ok := b.dictionaries[i18n.Default]
	if !ok {
		return fmt.Errorf("default locale %s is not defined in catalogs", i18n.Default)
	}
	var problems []string
	for _, locale := range i18n.Supported() {
		dictionary, ok := b.dictionaries[locale]
		if !ok {
			problems = append(problems, fmt.Sprintf("%s: catalog missing", locale))
			continue
		}
		for _, problem := range compareValues(reflect.ValueOf(dictionary), reflect.ValueOf(base), "") {
			problems = append(problems, fmt.Sprintf("%s: %s", locale, problem))
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid catalogs: %s", strings.Join(problems, "; "))
	}
	return nil
}

// compareValues reports blank strings in got and lists whose length differs
// from the matching list in base.
func compareValues(got reflect.Value, base reflect.Value, path string) []string {
	switch got.Kind() {
	case reflect.String:
		if strings.TrimSpace(got.String()) == "" {
			return []string{path + " is blank"}
		}
	case reflect.Struct:
		var problems []string
		typ := got.Type()
		for i := 0; i < got.NumField(); i++ {
			name := strings.Split(typ.Field(i).Tag.Get("yaml"), ",")[0]
			problems = append(problems, compareValues(got.Field(i), base.Field(i), joinPath(path, name))...)
		}
		return problems
	case reflect.Slice:
		if got.Len() == 0 {
			return []string{path + " is empty"}
		}
		if got.Len() != base.Len() {
			return []string{fmt.Sprintf("%s has %d entries, want %d", path, got.Len(), base.Len())}
		}
		var problems []string
		for i := 0; i < got.Len(); i++ {
			problems = append(problems, compareValues(got.Index(i), base.Index(i), fmt.Sprintf("%s[%d]", path, i))...)
		}
		return problems
	}
	return nil
}

func joinPath(parent string, name string) string {
	if parent == "" {
		return name
	}
	return parent + "." + name
}

// Dictionary returns the copy for locale.
func (b *Bundle) Dictionary(locale i18n.Locale) (Dictionary, bool) {
	if b == nil {
		return Dictionary{}, false
	}
	dictionary, ok := b.dictionaries[locale]
	return dictionary, ok
}

// Locales returns the loaded locales in supported order.
func (b *Bundle) Locales() []i18n.Locale {
	if b == nil {
		return nil
	}
	out := make([]i18n.Locale, 0, len(b.dictionaries))
	for _, locale := range i18n.Supported() {
		if _, ok := b.dictionaries[locale]; ok {
			out = append(out, locale)
		}
	}
	return out
}

func parseCatalogFile(data []byte) (catalogFile, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	var out catalogFile
	if err := decoder.Decode(&out); err != nil {
		if errors.Is(err, io.EOF) {
			return catalogFile{}, errors.New("empty catalog")
		}
		return catalogFile{}, err
	}
	return out, nil
}
