// This file is part of Touchstick.
//
// Touchstick is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Touchstick is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Touchstick.  If not, see <https://www.gnu.org/licenses/>.
package curated

import (
	"fmt"
	"strings"
)

type curated struct {
	pattern string
	values  []any
}

// Errorf creates a new curated error. The arguments are stored and only
// formatted when Error() is called. The %w verb is not supported. Use %v to
// wrap another error.
func Errorf(pattern string, values ...any) error {
	return curated{
		pattern: pattern,
		values:  values,
	}
}

// Error returns the normalised error message. Adjacent parts of the message
// that are the same are reduced to one.
func (er curated) Error() string {
	p := strings.Split(fmt.Sprintf(er.pattern, er.values...), ": ")

	n := 0
	for i := range p {
		if n > 0 && p[i] == p[n-1] {
			continue
		}
		p[n] = p[i]
		n++
	}

	return strings.Join(p[:n], ": ")
}

// Unwrap returns every error in the list of values. Curated errors can be
// used with errors.Is() and errors.As().
func (er curated) Unwrap() []error {
	var wrapped []error
	for _, v := range er.values {
		if e, ok := v.(error); ok {
			wrapped = append(wrapped, e)
		}
	}
	return wrapped
}

// IsAny checks if the error is a curated error.
func IsAny(err error) bool {
	_, ok := err.(curated)
	return ok
}

// Is checks if error has been created from the specified pattern.
func Is(err error, pattern string) bool {
	er, ok := err.(curated)
	return ok && er.pattern == pattern
}

// Has checks if the pattern occurs anywhere in the error chain. The chain is
// followed through wrapped errors of any type.
func Has(err error, pattern string) bool {
	switch e := err.(type) {
	case nil:
		return false
	case curated:
		if e.pattern == pattern {
			return true
		}
		for _, w := range e.Unwrap() {
			if Has(w, pattern) {
				return true
			}
		}
	case interface{ Unwrap() error }:
		return Has(e.Unwrap(), pattern)
	case interface{ Unwrap() []error }:
		for _, w := range e.Unwrap() {
			if Has(w, pattern) {
				return true
			}
		}
	}
	return false
}
