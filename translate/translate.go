// Package translate formats the emulator's diagnostics in the user's
// language. Every error string in the module is built with From.
package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DEFAULT_LOCALE is used when the system reports no locale.
const DEFAULT_LOCALE = "en-US"

var (
	printer *message.Printer
	tag     language.Tag
)

func init() {
	err := SetLocale()
	if err != nil {
		log.Printf("ls8: locale: %v", err)
		_ = SetLocale(DEFAULT_LOCALE)
	}
}

// SetLocale selects the message language from a list of BCP 47 tags,
// most preferred first. With no tags, the system locales are used.
// Malformed tags are skipped; if none remain the language is unchanged.
func SetLocale(locales ...string) (err error) {
	if len(locales) == 0 {
		locales, err = locale.GetLocales()
		if err != nil || len(locales) == 0 {
			locales = []string{DEFAULT_LOCALE}
		}
	}

	var valid []string
	var first language.Tag
	for _, name := range locales {
		t, perr := language.Parse(name)
		if perr != nil {
			err = perr
			continue
		}
		if len(valid) == 0 {
			first = t
		}
		valid = append(valid, name)
	}
	if len(valid) == 0 {
		return
	}
	err = nil

	tag = first
	printer = message.NewPrinter(message.MatchLanguage(valid...))

	return
}

// Language returns the preferred language selected by SetLocale.
func Language() language.Tag {
	return tag
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
