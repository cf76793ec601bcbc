package logger

import (
	"time"

	"go.uber.org/zap"
)

// Field is the structured log field type
type Field = zap.Field

// String constructs a string field
func String(key, val string) Field {
	return zap.String(key, val)
}

// Err constructs an error field
func Err(err error) Field {
	return zap.Error(err)
}

// Int constructs an int field
func Int(key string, val int) Field {
	return zap.Int(key, val)
}

// Int64 constructs an int64 field
func Int64(key string, val int64) Field {
	return zap.Int64(key, val)
}

// Float64 constructs a float64 field
func Float64(key string, val float64) Field {
	return zap.Float64(key, val)
}

// Bool constructs a boolean field
func Bool(key string, val bool) Field {
	return zap.Bool(key, val)
}

// Any constructs a field that carries an arbitrary value
func Any(key string, val interface{}) Field {
	return zap.Any(key, val)
}

// Duration constructs a time.Duration field
func Duration(key string, val time.Duration) Field {
	return zap.Duration(key, val)
}
