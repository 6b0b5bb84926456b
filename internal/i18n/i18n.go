// Package i18n holds the two-locale message table used by every rendered
// panel and notice.
package i18n

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

type Locale string

const (
	English Locale = "en"
	Chinese Locale = "zh"

	Default = English
)

// Order matters: the first tag is what the matcher falls back to.
var supported = []language.Tag{language.English, language.Chinese}

var matcher = language.NewMatcher(supported)

// Match maps a configured language ("zh-CN", "en_US", "zh-Hans", ...) to the
// nearest supported locale. Empty or unrecognized input yields Default.
func Match(tag string) Locale {
	tag = strings.ReplaceAll(strings.TrimSpace(tag), "_", "-")
	if tag == "" {
		return Default
	}

	tags, _, err := language.ParseAcceptLanguage(tag)
	if err != nil || len(tags) == 0 {
		return Default
	}

	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return Default
	}

	if supported[index] == language.Chinese {
		return Chinese
	}
	return English
}

// Localizer resolves message keys for one locale.
type Localizer struct {
	locale Locale
}

func New(locale Locale) Localizer {
	if _, ok := messages[locale]; !ok {
		locale = Default
	}
	return Localizer{locale: locale}
}

func (l Localizer) Locale() Locale {
	if l.locale == "" {
		return Default
	}
	return l.locale
}

// T returns the message for key, formatted with args when given.
// Keys missing from the locale fall back to the default locale, then to the
// key itself.
func (l Localizer) T(key string, args ...any) string {
	msg, ok := messages[l.Locale()][key]
	if !ok {
		msg, ok = messages[Default][key]
	}
	if !ok {
		return key
	}

	if len(args) == 0 {
		return msg
	}
	return fmt.Sprintf(msg, args...)
}
