package validation

import (
	"encoding/json"
	"errors"
	"reflect"
	"regexp"
	"strings"
	"unicode/utf16"

	"github.com/go-playground/validator/v10"
)

// space is the browser's notion of whitespace (ECMAScript \s), which is wider
// than RE2's ASCII-only \s.
const space = `\t\n\v\f\r \x{00a0}\x{1680}\x{2000}-\x{200a}\x{2028}\x{2029}\x{202f}\x{205f}\x{3000}\x{feff}`

var (
	personNameRe = regexp.MustCompile(`^[a-zA-Z` + space + `]{2,50}$`)
	handleRe     = regexp.MustCompile(`^[a-zA-Z0-9_]{3,20}$`)
	looseEmailRe = regexp.MustCompile(`^[^@` + space + `]+@[^@` + space + `]+\.[^@` + space + `]+$`)
	pwdCharsRe   = regexp.MustCompile(`^[A-Za-z0-9@$!%*?&]{8,}$`)
)

// PasswordSymbols are the special characters a strong password may contain.
const PasswordSymbols = "@$!%*?&"

// MinPasswordLength is counted in UTF-16 code units, like a browser's
// String.length, so "😀😀😀😀" is long enough.
const MinPasswordLength = 8

// New returns a validator with the directory-specific tags registered.
func New() *validator.Validate {
	v := validator.New()
	configure(v)
	return v
}

// configure
// - uses JSON tag names in errors
// - registers the directory-specific tags and aliases
func configure(v *validator.Validate) {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("personname", matchString(personNameRe))
	_ = v.RegisterValidation("handle", matchString(handleRe))
	_ = v.RegisterValidation("looseemail", matchString(looseEmailRe))
	_ = v.RegisterValidation("strongpwd", func(fl validator.FieldLevel) bool {
		return IsStrongPassword(fl.Field().String())
	})
	_ = v.RegisterValidation("pwd", func(fl validator.FieldLevel) bool {
		return JSLength(fl.Field().String()) >= MinPasswordLength
	})
}

func matchString(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	}
}

// JSLength is the length of s in UTF-16 code units.
func JSLength(s string) int {
	return len(utf16.Encode([]rune(s)))
}

// IsSpace reports whether r is whitespace to a browser's String.trim.
func IsSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ', 0x00a0, 0x1680, 0x2028, 0x2029, 0x202f, 0x205f, 0x3000, 0xfeff:
		return true
	}
	return r >= 0x2000 && r <= 0x200a
}

// TrimSpace trims leading and trailing IsSpace runes.
func TrimSpace(s string) string {
	return strings.TrimFunc(s, IsSpace)
}

// IsStrongPassword requires at least 8 characters drawn from letters, digits
// and PasswordSymbols, with at least one lowercase, uppercase, digit and symbol.
func IsStrongPassword(s string) bool {
	if !pwdCharsRe.MatchString(s) {
		return false
	}
	var lower, upper, digit, symbol bool
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(PasswordSymbols, r):
			symbol = true
		}
	}
	return lower && upper && digit && symbol
}

// ToDetails converts binding errors into a map[field]message suitable for API error.details.
func ToDetails(err error) map[string]string {
	if err == nil {
		return nil
	}

	// Invalid JSON payloads
	var se *json.SyntaxError
	var ute *json.UnmarshalTypeError
	if errors.As(err, &se) || errors.As(err, &ute) {
		return map[string]string{"payload": "invalid json"}
	}

	// Fallback
	return map[string]string{"payload": "invalid payload"}
}

// FieldMessages maps a validator.Struct error to field -> message. A field
// listed in messages gets that text, any other field a generic one. Errors
// that are not ValidationErrors land under "payload". Never nil.
func FieldMessages(err error, messages map[string]string) map[string]string {
	out := map[string]string{}
	if err == nil {
		return out
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out["payload"] = "invalid payload"
		return out
	}
	for _, fe := range verrs {
		if m, ok := messages[fe.Field()]; ok {
			out[fe.Field()] = m
			continue
		}
		out[fe.Field()] = formatFieldError(fe)
	}
	return out
}

func formatFieldError(fe validator.FieldError) string {
	param := fe.Param()

	switch fe.ActualTag() {
	case "required":
		return "is required"
	case "personname":
		return "must be 2-50 letters or spaces"
	case "handle":
		return "must be 3-20 letters, numbers or underscores"
	case "looseemail", "email":
		return "must be a valid email"
	case "strongpwd":
		return "must contain at least 8 characters, one uppercase, one lowercase, one number and one special character"
	case "pwd":
		return "must be at least 8 characters long"
	case "eqfield":
		return "must be equal to " + param + " field"
	case "numeric":
		return "must be a number"
	case "min":
		if isNumberKind(fe.Kind()) {
			return "must be at least " + param
		}
		return "must be at least " + param + " characters long"
	case "max":
		if isNumberKind(fe.Kind()) {
			return "must be at most " + param
		}
		return "must be at most " + param + " characters long"
	case "gt":
		return "must be greater than " + param
	}
	return "is invalid"
}

func isNumberKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
