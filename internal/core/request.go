// AngelaMos | 2026
// request.go

package core

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

const maxBodyBytes = 1 << 20

// DecodeJSON reads a JSON request body into dst. A value of the wrong JSON
// type is reported against its field as a validation failure; anything
// else unreadable is a bad request.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) *AppError {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)

	err := json.NewDecoder(body).Decode(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return FieldError(typeErr.Field, typeMessage(typeErr.Field, typeErr.Type))
	}

	return BadRequestError("invalid request body")
}

func typeMessage(field string, t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	label := attributeName(field)

	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "The " + label + " field must be an integer."
	case reflect.Float32, reflect.Float64:
		return "The " + label + " field must be a number."
	case reflect.String:
		return "The " + label + " field must be a string."
	case reflect.Bool:
		return "The " + label + " field must be true or false."
	default:
		return "The " + label + " field is invalid."
	}
}

// IDParam parses a positive integer path parameter. Anything else means
// the addressed record cannot exist.
func IDParam(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func attributeName(field string) string {
	if i := strings.LastIndex(field, "."); i >= 0 {
		field = field[i+1:]
	}
	return strings.ReplaceAll(field, "_", " ")
}
