// Package i18n holds the label catalogs and locale-aware number formatting.
// Keys missing from a language fall back to English, then to the key itself.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultLanguage is used when a requested language is unknown.
const DefaultLanguage = "en"

// Supported lists the selectable interface languages.
var Supported = []string{"en", "es", "fr", "it", "de", "ja", "ch", "ar"}

var tags = map[string]language.Tag{
	"en": language.English,
	"es": language.Spanish,
	"fr": language.French,
	"it": language.Italian,
	"de": language.German,
	"ja": language.Japanese,
	"ch": language.Chinese,
	"ar": language.Arabic,
}

// IsSupported reports whether lang is one of Supported.
func IsSupported(lang string) bool {
	_, ok := tags[lang]
	return ok
}

// Tag returns the BCP 47 tag for lang.
func Tag(lang string) language.Tag {
	if t, ok := tags[lang]; ok {
		return t
	}
	return language.English
}

// T returns the label for key in lang.
func T(lang, key string) string {
	if l, ok := catalog[lang][key]; ok {
		return l
	}
	if l, ok := catalog[DefaultLanguage][key]; ok {
		return l
	}
	return key
}

// Format returns the label for key with {name} placeholders substituted.
func Format(lang, key string, vars map[string]string) string {
	s := T(lang, key)
	if len(vars) == 0 {
		return s
	}
	pairs := make([]string, 0, len(vars)*2)
	for k, v := range vars {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(s)
}

// Number formats v with exactly decimals fraction digits and the locale's
// grouping and decimal separators.
func Number(lang string, v float64, decimals int) string {
	p := message.NewPrinter(Tag(lang))
	return p.Sprint(number.Decimal(v, number.Scale(decimals)))
}
