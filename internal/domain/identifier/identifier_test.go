package identifier_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sediba-health/clinic-api/internal/domain"
	"github.com/sediba-health/clinic-api/internal/domain/identifier"
)

func TestValidate_NationalID(t *testing.T) {
	cases := []struct {
		name  string
		value string
		ok    bool
	}{
		{"trece dígitos", "8001015009087", true},
		{"otros trece dígitos", "0000000000000", true},
		{"doce dígitos", "800101500908", false},
		{"catorce dígitos", "80010150090877", false},
		{"con letra", "80010150090A7", false},
		{"con espacio", "8001015 009087", false},
		{"vacío", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := identifier.Validate(identifier.TypeNationalID, tc.value)
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, domain.ErrInvalidIdentifier)
				assert.ErrorIs(t, err, identifier.ErrBadNationalID)
			}
		})
	}
}

func TestValidate_Passport(t *testing.T) {
	cases := []struct {
		name  string
		value string
		ok    bool
	}{
		{"seis caracteres", "A12345", true},
		{"nueve caracteres", "A12345678", true},
		{"solo dígitos", "123456", true},
		{"solo mayúsculas", "ABCDEF", true},
		{"cinco caracteres", "A1234", false},
		{"diez caracteres", "A123456789", false},
		{"minúsculas", "a12345", false},
		{"con símbolo", "A12-45", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := identifier.Validate(identifier.TypePassport, tc.value)
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, identifier.ErrBadPassport)
			}
		})
	}
}

func TestValidate_FileNumber(t *testing.T) {
	cases := []struct {
		name  string
		value string
		ok    bool
	}{
		{"cuatro caracteres", "F001", true},
		{"veinte caracteres", strings.Repeat("A", 20), true},
		{"tres caracteres", "F01", false},
		{"veintiún caracteres", strings.Repeat("A", 21), false},
		{"minúsculas", "f0012", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := identifier.Validate(identifier.TypeFileNumber, tc.value)
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, identifier.ErrBadFileNumber)
			}
		})
	}
}

// Un tipo desconocido NO salta la validación: es un fallo en sí mismo.
func TestValidate_TipoDesconocidoRechaza(t *testing.T) {
	err := identifier.Validate("drivers-license", "8001015009087")
	assert.ErrorIs(t, err, identifier.ErrUnknownType)
	assert.ErrorIs(t, err, domain.ErrInvalidIdentifier)

	assert.Error(t, identifier.Validate("", "8001015009087"))
}

func TestKnownType(t *testing.T) {
	assert.True(t, identifier.KnownType(identifier.TypeNationalID))
	assert.True(t, identifier.KnownType(identifier.TypePassport))
	assert.True(t, identifier.KnownType(identifier.TypeFileNumber))
	assert.False(t, identifier.KnownType("email"))
	assert.False(t, identifier.KnownType(""))
}

func TestLookup_Valid(t *testing.T) {
	assert.True(t, identifier.Lookup{Kind: identifier.TypePassport, Value: "A12345"}.Valid())
	assert.False(t, identifier.Lookup{Kind: identifier.TypePassport, Value: ""}.Valid())
	assert.False(t, identifier.Lookup{Kind: "email", Value: "x@y.z"}.Valid())

	// errors.Is funciona a través del wrap
	err := identifier.Validate(identifier.TypePassport, "nope")
	assert.True(t, errors.Is(err, domain.ErrInvalidIdentifier))
}
