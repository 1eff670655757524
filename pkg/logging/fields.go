package logging

import (
	"reflect"

	"go.llib.dev/views/pkg/errorkit"
)

// Detail is a logging detail that enrich the logging message with additional contextual detail.
type Detail interface {
	addTo(l *Logger, e entry)
}

// Field creates a single key value pair based logging detail.
// It will enrich the log entry with a value in the key you gave.
func Field(key string, value any) Detail {
	return field{Key: key, Value: value}
}

type field struct {
	Key   string
	Value any
}

func (f field) addTo(l *Logger, e entry) {
	e[f.Key] = l.toFieldValue(f.Value)
}

// LazyDetail lets you add logging details that aren't evaluated until the log is actually created.
type LazyDetail func() Detail

func (df LazyDetail) addTo(l *Logger, e entry) {
	if df == nil {
		return
	}
	d := df()
	if d == nil {
		return
	}
	d.addTo(l, e)
}

// Fields is a collection of field that you can add to your logging record.
type Fields map[string]any

func (fields Fields) addTo(l *Logger, e entry) {
	for k, v := range fields {
		Field(k, v).addTo(l, e)
	}
}

// ErrField logs err under the "error" key.
// When err carries an errorkit.Error, its text is logged as the error kind.
func ErrField(err error) Detail {
	if err == nil {
		return nullLoggingDetail{}
	}
	details := Fields{
		"message": err.Error(),
	}
	if kind, ok := errorkit.As[errorkit.Error](err); ok {
		details["kind"] = kind.Error()
	}
	return Field("error", details)
}

func (l *Logger) toFieldValue(val any) any {
	if val == nil {
		return nil
	}
	switch val := val.(type) {
	case entry:
		vs := map[string]any{}
		for k, v := range val {
			vs[k] = l.toFieldValue(v)
		}
		return vs

	case Fields:
		le := entry{}
		val.addTo(l, le)
		return l.toFieldValue(le)

	case []Detail:
		le := entry{}
		for _, d := range val {
			d.addTo(l, le)
		}
		return l.toFieldValue(le)

	case error:
		return val.Error()
	}

	rv := reflect.ValueOf(val)
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			return nil
		}
		return l.toFieldValue(rv.Elem().Interface())
	case reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return rv.Type().String()
	default:
		return val
	}
}

type entry map[string]any

func (e entry) addTo(l *Logger, oth entry) {
	for k, v := range e {
		oth[k] = v
	}
}

type nullLoggingDetail struct{}

func (nullLoggingDetail) addTo(*Logger, entry) {}
