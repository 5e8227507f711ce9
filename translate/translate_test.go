package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocales_Env(t *testing.T) {
	assert := assert.New(t)

	t.Setenv(LANG_ENV, "en-GB, fr-FR,,")
	assert.Equal([]string{"en-GB", "fr-FR"}, Locales())
}

func TestLocales_Fallback(t *testing.T) {
	assert := assert.New(t)

	t.Setenv(LANG_ENV, "")
	assert.NotEmpty(Locales())
}

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	t.Setenv(LANG_ENV, "en-US")

	assert.Equal("line 3 column 7", From("line %d column %d", 3, 7))
	assert.Equal("tape underflow", From("tape underflow"))
}
