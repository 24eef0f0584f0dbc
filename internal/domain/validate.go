package domain

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// decimalNumber is the plain decimal syntax accepted from users.
// strconv alone would also take hex floats, underscores, "Inf" and "NaN".
var decimalNumber = regexp.MustCompile(`^[+-]?([0-9]+\.?[0-9]*|\.[0-9]+)([eE][+-]?[0-9]+)?$`)

// Field names a user input field
type Field string

const (
	FieldWeight Field = "weight"
	FieldHeight Field = "height"
	FieldAge    Field = "age"
)

// ErrorCode identifies why a field was rejected
type ErrorCode string

const (
	CodeEmpty             ErrorCode = "empty"
	CodeNotPositiveNumber ErrorCode = "not_positive_number"
	CodeInvalidInteger    ErrorCode = "invalid_integer"
	CodeTooLarge          ErrorCode = "too_large"
)

// fieldMessages is the fixed set of user-facing messages
var fieldMessages = map[Field]map[ErrorCode]string{
	FieldWeight: {
		CodeEmpty:             "Please enter your weight",
		CodeNotPositiveNumber: "Weight must be a positive number",
		CodeTooLarge:          "Weight must be 500 kg or less",
	},
	FieldHeight: {
		CodeEmpty:             "Please enter your height",
		CodeNotPositiveNumber: "Height must be a positive number",
		CodeTooLarge:          "Height must be 300 cm or less",
	},
	FieldAge: {
		CodeEmpty:          "Please enter your age",
		CodeInvalidInteger: "Age must be a whole number of at least 2 years",
		CodeTooLarge:       "Age must be 120 years or less",
	},
}

var codeErrors = map[ErrorCode]error{
	CodeEmpty:             ErrEmpty,
	CodeNotPositiveNumber: ErrNotPositiveNumber,
	CodeInvalidInteger:    ErrInvalidInteger,
	CodeTooLarge:          ErrTooLarge,
}

// FieldError describes why one input field was rejected
type FieldError struct {
	Field   Field
	Code    ErrorCode
	Message string
}

func newFieldError(f Field, code ErrorCode) *FieldError {
	return &FieldError{Field: f, Code: code, Message: fieldMessages[f][code]}
}

func (e FieldError) Error() string {
	return e.Message
}

// Unwrap lets callers match a FieldError against the sentinel errors
func (e FieldError) Unwrap() error {
	return codeErrors[e.Code]
}

// ValidationErrors collects every field error of one validation pass,
// in weight, height, age order.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, fe := range v {
		msgs[i] = string(fe.Field) + ": " + fe.Message
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) Unwrap() []error {
	errs := make([]error, len(v))
	for i, fe := range v {
		errs[i] = fe
	}
	return errs
}

// Field returns the error reported for f, or nil if f is valid
func (v ValidationErrors) Field(f Field) *FieldError {
	for i := range v {
		if v[i].Field == f {
			return &v[i]
		}
	}
	return nil
}

// Validate parses and checks the raw input fields.
// All three fields are checked even when one fails; the returned error is
// a ValidationErrors holding one entry per invalid field.
func Validate(raw RawMeasurement) (Measurement, error) {
	var (
		m    Measurement
		errs ValidationErrors
	)

	weight, fe := parsePositive(FieldWeight, raw.Weight, MaxWeightKg)
	if fe != nil {
		errs = append(errs, *fe)
	}
	height, fe := parseHeight(raw.Height)
	if fe != nil {
		errs = append(errs, *fe)
	}
	age, fe := parseAge(raw.Age)
	if fe != nil {
		errs = append(errs, *fe)
	}

	if len(errs) > 0 {
		return m, errs
	}

	m.WeightKg = weight
	m.HeightCm = height
	m.AgeYears = age
	return m, nil
}

func parsePositive(f Field, s string, limit float64) (float64, *FieldError) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, newFieldError(f, CodeEmpty)
	}
	v, err := parseDecimal(s)
	if err != nil {
		return 0, newFieldError(f, CodeNotPositiveNumber)
	}
	return v, checkPositive(f, v, limit)
}

// parseHeight also rejects heights so close to zero that the maximum weight
// would give a non-finite BMI.
func parseHeight(s string) (float64, *FieldError) {
	v, fe := parsePositive(FieldHeight, s, MaxHeightCm)
	if fe != nil {
		return 0, fe
	}
	h := Measurement{HeightCm: v}.HeightM()
	if math.IsInf(MaxWeightKg/(h*h), 0) {
		return 0, newFieldError(FieldHeight, CodeNotPositiveNumber)
	}
	return v, nil
}

func parseDecimal(s string) (float64, error) {
	if !decimalNumber.MatchString(s) {
		return 0, strconv.ErrSyntax
	}
	return strconv.ParseFloat(s, 64)
}

func checkPositive(f Field, v, limit float64) *FieldError {
	// NaN fails every comparison, so reject non-finite values explicitly
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return newFieldError(f, CodeNotPositiveNumber)
	}
	if v > limit {
		return newFieldError(f, CodeTooLarge)
	}
	return nil
}

func parseAge(s string) (int, *FieldError) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, newFieldError(FieldAge, CodeEmpty)
	}
	// Accept "30" and "30.0" alike; reject "17.5"
	v, err := parseDecimal(s)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
		return 0, newFieldError(FieldAge, CodeInvalidInteger)
	}
	if v < MinAgeYears {
		return 0, newFieldError(FieldAge, CodeInvalidInteger)
	}
	if v > MaxAgeYears {
		return 0, newFieldError(FieldAge, CodeTooLarge)
	}
	return int(v), nil
}
