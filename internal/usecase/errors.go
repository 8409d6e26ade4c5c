package usecase

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrEmptyCart = errors.New("cart is empty")
	ErrBadQuery  = errors.New("missing or invalid query parameter")
)

// FieldErrors carries per-field validation messages, surfaced inline next
// to the offending form field.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return "invalid fields: " + strings.Join(keys, ", ")
}

// AsFieldErrors unwraps err into FieldErrors if it is one.
func AsFieldErrors(err error) (FieldErrors, bool) {
	var fe FieldErrors
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}
