package logger

import (
	"time"
)

// Field is a single structured log attribute
type Field struct {
	Key   string
	Value interface{}
}

// Field construction functions keep call sites independent of logrus

// String constructs a field that carries a string value
func String(key, val string) Field {
	return Field{Key: key, Value: val}
}

// Err constructs a field that carries an error
func Err(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err.Error()}
}

// ErrorField is an alias for Err
func ErrorField(err error) Field {
	return Err(err)
}

// Int constructs a field that carries an int value
func Int(key string, val int) Field {
	return Field{Key: key, Value: val}
}

// Float64 constructs a field that carries a float64 value
func Float64(key string, val float64) Field {
	return Field{Key: key, Value: val}
}

// Bool constructs a field that carries a boolean value
func Bool(key string, val bool) Field {
	return Field{Key: key, Value: val}
}

// Duration constructs a field that carries a time.Duration value
func Duration(key string, val time.Duration) Field {
	return Field{Key: key, Value: val.String()}
}

// Strings constructs a field that carries a slice of strings
func Strings(key string, val []string) Field {
	return Field{Key: key, Value: val}
}

// Any constructs a field that carries an arbitrary value
func Any(key string, val interface{}) Field {
	return Field{Key: key, Value: val}
}
