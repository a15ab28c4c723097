// Package identifier contiene las reglas de formato de los identificadores de
// login de la clínica. Clasificación pura: sin side effects, sin DB.
package identifier

import (
	"fmt"
	"regexp"

	"github.com/sediba-health/clinic-api/internal/domain"
)

// Tipos de identifier. Los valores son los que viajan por el wire y los que
// persiste la columna identifier_type.
const (
	TypeNationalID = "id"       // cédula sudafricana, 13 dígitos
	TypePassport   = "passport" // alfanumérico mayúsculas, 6-9
	TypeFileNumber = "file"     // número de ficha hospitalaria, 4-20
)

var (
	nationalIDRe = regexp.MustCompile(`^\d{13}$`)
	passportRe   = regexp.MustCompile(`^[A-Z0-9]{6,9}$`)
	fileNumberRe = regexp.MustCompile(`^[A-Z0-9]{4,20}$`)
)

// Razones de rechazo por tipo. Todas envuelven domain.ErrInvalidIdentifier para
// que el handler pueda clasificar con errors.Is y aún así exponer el detalle.
var (
	ErrBadNationalID = fmt.Errorf("%w: South African ID number must be exactly 13 digits", domain.ErrInvalidIdentifier)
	ErrBadPassport   = fmt.Errorf("%w: passport number must be 6-9 characters A-Z or 0-9", domain.ErrInvalidIdentifier)
	ErrBadFileNumber = fmt.Errorf("%w: file number must be 4-20 characters A-Z or 0-9", domain.ErrInvalidIdentifier)
	ErrUnknownType   = fmt.Errorf("%w: identifier type must be id, passport or file", domain.ErrInvalidIdentifier)
)

// KnownType indica si el tipo es uno de los tres soportados.
func KnownType(identifierType string) bool {
	switch identifierType {
	case TypeNationalID, TypePassport, TypeFileNumber:
		return true
	}
	return false
}

// Validate verifica que value cumpla el formato de su tipo declarado.
//
// Un tipo desconocido también es un fallo de validación: el comportamiento
// histórico de aceptar sin validar era un bug, no una feature.
func Validate(identifierType, value string) error {
	switch identifierType {
	case TypeNationalID:
		if !nationalIDRe.MatchString(value) {
			return ErrBadNationalID
		}
	case TypePassport:
		if !passportRe.MatchString(value) {
			return ErrBadPassport
		}
	case TypeFileNumber:
		if !fileNumberRe.MatchString(value) {
			return ErrBadFileNumber
		}
	default:
		return ErrUnknownType
	}
	return nil
}

// Lookup variante etiquetada para el patient login: el caller construye
// explícitamente (tipo, valor), sin fallback implícito entre campos opcionales.
type Lookup struct {
	Kind  string // TypeNationalID | TypePassport | TypeFileNumber
	Value string
}

// Valid indica si el lookup tiene un tipo conocido y un valor no vacío.
func (l Lookup) Valid() bool {
	return l.Value != "" && KnownType(l.Kind)
}
