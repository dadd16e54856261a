// Package validation wraps go-playground/validator with the custom
// rules this API enforces on registration and content payloads. Rules
// are declared as struct tags on the DTOs; this package registers the
// custom tag implementations and translates field errors into the
// user-facing detail strings of the 422 response.
package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/user/socialmedia-go/apperror"
)

var phoneNumberRegex = regexp.MustCompile(`^(?:\+38|0)?\(?0?\d{2}\)?\s?\d{3}-?\d{2}-?\d{2}$`)

// punctuation is the ASCII punctuation set used by the character-class
// rules. The username rule additionally tolerates underscores.
const punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// Validator validates request DTOs against their struct tags.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator with every custom rule registered.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report json names rather than Go field names, so error details
	// match the wire format.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister(v, "no_whitespace", validateNoWhitespace)
	mustRegister(v, "username_chars", validateUsernameChars)
	mustRegister(v, "password_strength", validatePasswordStrength)
	mustRegister(v, "name_format", validateNameFormat)
	mustRegister(v, "place_format", validatePlaceFormat)
	mustRegister(v, "phone_format", validatePhoneFormat)
	mustRegister(v, "has_letter", validateHasLetter)

	return &Validator{validate: v}
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("validation: register %s: %v", tag, err))
	}
}

// Struct validates s and returns a ValidationError describing the first
// failing field, or nil when s is valid.
func (v *Validator) Struct(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}
	fieldErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(fieldErrors) == 0 {
		return apperror.NewValidationError("invalid request payload", err)
	}
	return apperror.NewValidationError(messageFor(fieldErrors[0]), err)
}

// messageFor maps a failed rule to its user-facing detail string.
func messageFor(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The `%s` field is required.", field)
	case "email":
		return "The `email` is not a valid email address."
	case "min", "max":
		switch field {
		case "username":
			return "The length of the `username` must be between 5 and 15 characters."
		case "password":
			return "The `password` must be at least 8 characters long."
		}
	case "lowercase":
		return fmt.Sprintf("The `%s` must not contain uppercase characters.", field)
	case "no_whitespace":
		return fmt.Sprintf("The `%s` must not contain whitespaces.", field)
	case "username_chars":
		return "The `username` must not contain any punctuation marks other than underscores."
	case "password_strength":
		return "The `password` must contain at least one uppercase letter, " +
			"one lowercase letter, one digit and one punctuation mark " +
			"such as !#$%&'\"()*+,-/:;<=>?@[\\]^_`{|}~."
	case "name_format":
		return fmt.Sprintf("The `%s` must not contain whitespaces, digits or punctuation marks "+
			"and must start with a capital letter.", field)
	case "place_format":
		return fmt.Sprintf("The `%s` must not contain digits or punctuation marks "+
			"and must start with a capital letter.", field)
	case "phone_format":
		return "The `phone_number` is in the wrong format."
	case "has_letter":
		return fmt.Sprintf("The `%s` must contain letters.", field)
	case "oneof":
		return fmt.Sprintf("The `%s` must be one of: %s.", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	}
	return fmt.Sprintf("The `%s` is invalid.", field)
}

func validateNoWhitespace(fl validator.FieldLevel) bool {
	return !strings.ContainsFunc(fl.Field().String(), unicode.IsSpace)
}

// validateUsernameChars forbids punctuation other than underscores.
func validateUsernameChars(fl validator.FieldLevel) bool {
	for _, r := range fl.Field().String() {
		if r != '_' && strings.ContainsRune(punctuation, r) {
			return false
		}
	}
	return true
}

// validatePasswordStrength requires one uppercase letter, one lowercase
// letter, one digit and one punctuation mark.
func validatePasswordStrength(fl validator.FieldLevel) bool {
	var upper, lower, digit, punct bool
	for _, r := range fl.Field().String() {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune(punctuation, r):
			punct = true
		}
	}
	return upper && lower && digit && punct
}

// validateNameFormat applies the person-name rule: letters only, first
// rune capitalized.
func validateNameFormat(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	for _, r := range value {
		if unicode.IsSpace(r) || unicode.IsDigit(r) || strings.ContainsRune(punctuation, r) {
			return false
		}
	}
	return isTitleCased(value)
}

// validatePlaceFormat applies the country/region rule. Interior spaces
// are allowed ("New Zealand") but each word must be capitalized.
func validatePlaceFormat(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	for _, r := range value {
		if unicode.IsDigit(r) || strings.ContainsRune(punctuation, r) {
			return false
		}
	}
	for _, word := range strings.Fields(value) {
		if !isTitleCased(word) {
			return false
		}
	}
	return len(strings.TrimSpace(value)) > 0
}

// validatePhoneFormat accepts Ukrainian phone numbers in the form
// (+38|0)?(0?XX) XXX-XX-XX with optional separators.
func validatePhoneFormat(fl validator.FieldLevel) bool {
	return phoneNumberRegex.MatchString(fl.Field().String())
}

// validateHasLetter rejects values consisting solely of digits,
// whitespace and punctuation.
func validateHasLetter(fl validator.FieldLevel) bool {
	return strings.ContainsFunc(fl.Field().String(), unicode.IsLetter)
}

func isTitleCased(word string) bool {
	runes := []rune(word)
	if len(runes) == 0 {
		return false
	}
	if !unicode.IsUpper(runes[0]) {
		return false
	}
	for _, r := range runes[1:] {
		if unicode.IsUpper(r) {
			return false
		}
	}
	return true
}
