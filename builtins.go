package param

import (
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rohanthewiz/serr"
)

// Built-in parameter types for the common conversions. Each constructor
// returns a ready Type value; callers may override any hook on the returned
// value before use.

// Int is a parameter type for decimal integers.
func Int() Type[int] {
	return Type[int]{
		Kind:  "Int",
		Parse: strconv.Atoi,
	}
}

// Int64 is a parameter type for 64-bit decimal integers.
func Int64() Type[int64] {
	return Type[int64]{
		Kind: "Int64",
		Parse: func(input string) (int64, error) {
			return strconv.ParseInt(input, 10, 64)
		},
	}
}

// Float64 is a parameter type for floating point numbers.
func Float64() Type[float64] {
	return Type[float64]{
		Kind: "Float64",
		Parse: func(input string) (float64, error) {
			return strconv.ParseFloat(input, 64)
		},
	}
}

// Bool is a parameter type for booleans, accepting the forms understood by
// strconv.ParseBool.
func Bool() Type[bool] {
	return Type[bool]{
		Kind:  "Bool",
		Parse: strconv.ParseBool,
		ErrorMessage: func(err error) string {
			return `%s must be "true" or "false".`
		},
	}
}

// NonEmptyString is a parameter type that accepts any non-empty string.
// Absent parameters arrive as the empty string, so this also rejects a
// missing parameter.
func NonEmptyString() Type[string] {
	return Type[string]{
		Kind: "NonEmptyString",
		Parse: func(input string) (string, error) {
			if input == "" {
				return "", serr.New("value must not be empty")
			}
			return input, nil
		},
		ErrorMessage: func(err error) string {
			return "%s must not be empty"
		},
	}
}

// UUID is a parameter type for RFC 4122 UUIDs.
func UUID() Type[uuid.UUID] {
	return Type[uuid.UUID]{
		Kind:  "UUID",
		Parse: uuid.Parse,
		ErrorMessage: func(err error) string {
			return "%s must be a UUID."
		},
	}
}

// Time is a parameter type for timestamps in the given layout.
// An empty layout means RFC 3339.
func Time(layout string) Type[time.Time] {
	if layout == "" {
		layout = time.RFC3339
	}
	return Type[time.Time]{
		Kind: "Time",
		Parse: func(input string) (time.Time, error) {
			return time.Parse(layout, input)
		},
	}
}

// Duration is a parameter type for Go duration strings such as "250ms".
func Duration() Type[time.Duration] {
	return Type[time.Duration]{
		Kind:  "Duration",
		Parse: time.ParseDuration,
	}
}
