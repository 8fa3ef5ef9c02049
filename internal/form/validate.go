// Package form holds the editable drafts behind each entity form and the
// declarative schemas they are validated against before any backend call.
package form

import (
	"errors"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Errors maps a field path (clienteCodigo, items[1].cantidad) to the single
// message shown under that field.
type Errors map[string]string

func (e Errors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

func (e Errors) Get(field string) string {
	return e[field]
}

func (e Errors) Empty() bool {
	return len(e) == 0
}

var (
	validate = newValidator()

	dniPattern = regexp.MustCompile(`^\d{8}$`)
	minPrice   = decimal.RequireFromString("0.01")
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister(v, "quantity", func(fl validator.FieldLevel) bool {
		n, err := strconv.Atoi(strings.TrimSpace(fl.Field().String()))
		return err == nil && n >= 1
	})
	mustRegister(v, "dni", func(fl validator.FieldLevel) bool {
		return dniPattern.MatchString(fl.Field().String())
	})
	mustRegister(v, "price", func(fl validator.FieldLevel) bool {
		d, err := decimal.NewFromString(strings.TrimSpace(fl.Field().String()))
		return err == nil && d.GreaterThanOrEqual(minPrice)
	})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// check runs the schema and translates failures with messages, keyed by
// "<field>.<tag>". The first failing rule of each field wins.
func check(schema any, messages map[string]string) Errors {
	err := validate.Struct(schema)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return Errors{"": err.Error()}
	}

	out := make(Errors, len(verrs))
	for _, fe := range verrs {
		path := fieldPath(fe.Namespace())
		if out.Has(path) {
			continue
		}
		msg, ok := messages[fe.Field()+"."+fe.Tag()]
		if !ok {
			msg = fe.Error()
		}
		out[path] = msg
	}
	return out
}

// fieldPath drops the schema type name from a validator namespace:
// "OrderDraft.items[0].cantidad" → "items[0].cantidad".
func fieldPath(namespace string) string {
	if i := strings.IndexByte(namespace, '.'); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}
