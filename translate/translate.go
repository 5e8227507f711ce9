// Package translate formats user visible messages for the user's locale.
package translate

import (
	"log"
	"os"
	"strings"
	"sync"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

// LANG_ENV overrides the detected system locales when set,
// as a comma separated list of BCP 47 tags.
const LANG_ENV = "BFT_LANG"

var printer = sync.OnceValue(func() *message.Printer {
	return message.NewPrinter(message.MatchLanguage(Locales()...))
})

// Locales returns the preferred locales, most preferred first.
func Locales() (locales []string) {
	if env := os.Getenv(LANG_ENV); len(env) != 0 {
		for _, tag := range strings.Split(env, ",") {
			tag = strings.TrimSpace(tag)
			if len(tag) != 0 {
				locales = append(locales, tag)
			}
		}
	} else {
		var err error
		locales, err = locale.GetLocales()
		if err != nil {
			log.Printf("bft: locale: %v", err)
		}
	}

	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	return
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer().Sprintf(key, args...)
}
