package validate

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	TagEmailFormat      = "email_format"
	TagPasswordStrength = "password_strength"
)

var (
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]{2,}$`)

	// RE2 has no lookahead, each class is checked on its own.
	passwordClasses = []*regexp.Regexp{
		regexp.MustCompile(`\d`),
		regexp.MustCompile(`[a-z]`),
		regexp.MustCompile(`[A-Z]`),
	}
)

const passwordMinLen = 6

var v = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// report json names, e.g. "email" rather than "Email"
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation(TagEmailFormat, func(fl validator.FieldLevel) bool {
		return IsEmail(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation(TagPasswordStrength, func(fl validator.FieldLevel) bool {
		return IsStrongPassword(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// Struct validates s against its `validate` tags. Failures are
// validator.ValidationErrors, ordered by field declaration.
func Struct(s any) error {
	return v.Struct(s)
}

func IsEmail(s string) bool {
	return emailRegex.MatchString(s)
}

func IsStrongPassword(s string) bool {
	if len([]rune(s)) < passwordMinLen {
		return false
	}
	for _, re := range passwordClasses {
		if !re.MatchString(s) {
			return false
		}
	}
	return true
}
