package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("jan@example.com"))
	assert.True(t, IsValidEmail("jan.de.vries@bedrijf.nl"))
	assert.False(t, IsValidEmail("jan@"))
	assert.False(t, IsValidEmail("jan example.com"))
	assert.False(t, IsValidEmail(""))
}

func TestIsValidPassword(t *testing.T) {
	assert.True(t, IsValidPassword("wachtwoord1"))
	assert.False(t, IsValidPassword("kort1"))       // too short
	assert.False(t, IsValidPassword("geencijfers")) // no digit
	assert.False(t, IsValidPassword("12345678"))    // no letter
}

func TestIsValidPostalCode(t *testing.T) {
	assert.True(t, IsValidPostalCode("1353 AB"))
	assert.True(t, IsValidPostalCode("1353AB"))
	assert.False(t, IsValidPostalCode("0353 AB")) // leading zero
	assert.False(t, IsValidPostalCode("135 AB"))
	assert.False(t, IsValidPostalCode("1353 A1"))
	assert.False(t, IsValidPostalCode(""))
}
