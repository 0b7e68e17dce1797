package content

import (
	"fmt"
	"sort"
	"strconv"

	"aimlaw-web/internal/domain"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

type localeMeta struct {
	locale   domain.Locale
	tag      language.Tag
	ogLocale string
}

// Supported locales, default first
var locales = []localeMeta{
	{domain.LocaleEN, language.MustParse("en-CA"), "en_CA"},
	{domain.LocaleZH, language.MustParse("zh-CN"), "zh_CN"},
}

// LoadBundles reads one bundle per supported locale from the embedded files.
// Every bundle must define the same keys as the default one.
func LoadBundles() ([]*domain.Bundle, error) {
	bundles := make([]*domain.Bundle, 0, len(locales))
	for _, meta := range locales {
		raw, err := files.ReadFile("data/locales/" + string(meta.locale) + ".yaml")
		if err != nil {
			return nil, fmt.Errorf("failed to read %s bundle: %w", meta.locale, err)
		}
		messages, err := ParseMessages(raw)
		if err != nil {
			return nil, fmt.Errorf("%s bundle: %w", meta.locale, err)
		}
		bundles = append(bundles, domain.NewBundle(meta.locale, meta.tag, meta.ogLocale, messages))
	}

	if missing := MissingKeys(bundles[0], bundles[1:]...); len(missing) > 0 {
		return nil, fmt.Errorf("bundles are missing keys: %v", missing)
	}
	return bundles, nil
}

// ParseMessages decodes a YAML document and flattens nested mappings into dot-path keys.
// Sequence items are keyed by index.
func ParseMessages(raw []byte) (map[string]string, error) {
	var tree map[string]any
	if err := yaml.Unmarshal(raw, &tree); err != nil {
		return nil, fmt.Errorf("failed to parse messages: %w", err)
	}
	out := make(map[string]string)
	flatten("", tree, out)
	return out, nil
}

func flatten(prefix string, node any, out map[string]string) {
	join := func(k string) string {
		if prefix == "" {
			return k
		}
		return prefix + "." + k
	}

	switch v := node.(type) {
	case map[string]any:
		for k, child := range v {
			flatten(join(k), child, out)
		}
	case []any:
		for i, child := range v {
			flatten(join(strconv.Itoa(i)), child, out)
		}
	case nil:
		out[prefix] = ""
	case string:
		out[prefix] = v
	default:
		out[prefix] = fmt.Sprint(v)
	}
}

// MissingKeys lists "<locale>:<key>" for every key of ref absent from one of others
func MissingKeys(ref *domain.Bundle, others ...*domain.Bundle) []string {
	var missing []string
	for key := range ref.Messages() {
		for _, b := range others {
			if _, ok := b.Lookup(key); !ok {
				missing = append(missing, string(b.Locale)+":"+key)
			}
		}
	}
	sort.Strings(missing)
	return missing
}
