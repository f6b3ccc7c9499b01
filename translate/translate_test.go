package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("stack empty", From("stack empty"))
	assert.Equal("bad opcode 0x47 at 0x02", From("bad opcode 0x%02x at 0x%02x", 0x47, 2))
	assert.Equal("line 3 'xyz'", From("line %d '%v'", 3, "xyz"))
}

func TestSetLocale(t *testing.T) {
	assert := assert.New(t)

	saved := Language()
	t.Cleanup(func() {
		_ = SetLocale(saved.String())
	})

	assert.NoError(SetLocale("de-DE", "en-US"))
	assert.Equal(language.MustParse("de-DE"), Language())

	// Malformed tags are skipped.
	assert.NoError(SetLocale("!!", "fr-CA"))
	assert.Equal(language.MustParse("fr-CA"), Language())

	// Nothing usable leaves the language alone.
	assert.Error(SetLocale("!!", "??"))
	assert.Equal(language.MustParse("fr-CA"), Language())

	assert.Equal("stack empty", From("stack empty"))
}
