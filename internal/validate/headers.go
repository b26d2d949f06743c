package validate

import (
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/wb-go/wbf/zlog"

	"github.com/Techhackontime999/LinkUp-sub000/internal/model"
)

// SafeGet returns m[key] when m is a string-keyed map holding a T under key,
// and def otherwise. It never panics; fallbacks are logged at debug level.
func SafeGet[T any](m any, key string, def T) T {
	var raw any

	switch mm := m.(type) {
	case map[string]any:
		v, ok := mm[key]
		if !ok {
			zlog.Logger.Debug().Str("key", key).Msg("safe get: key absent")
			return def
		}
		raw = v
	case map[string]string:
		v, ok := mm[key]
		if !ok {
			zlog.Logger.Debug().Str("key", key).Msg("safe get: key absent")
			return def
		}
		raw = v
	default:
		rv := reflect.ValueOf(m)
		if !rv.IsValid() || rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
			zlog.Logger.Debug().Str("key", key).Str("container", fmt.Sprintf("%T", m)).Msg("safe get: not a mapping")
			return def
		}
		v := rv.MapIndex(reflect.ValueOf(key).Convert(rv.Type().Key()))
		if !v.IsValid() {
			zlog.Logger.Debug().Str("key", key).Msg("safe get: key absent")
			return def
		}
		raw = v.Interface()
	}

	v, ok := raw.(T)
	if !ok {
		zlog.Logger.Debug().Str("key", key).Str("type", fmt.Sprintf("%T", raw)).Msg("safe get: unexpected value type")
		return def
	}

	return v
}

// ValidateConnectionHeaders normalizes connection metadata into a single
// mapping with lower-case names. Accepted shapes are http.Header and other
// string-keyed maps, and lists of name/value pairs (as strings or bytes).
// Repeated names are joined with ", ".
func ValidateConnectionHeaders(headers any) (map[string]string, error) {
	out := make(map[string]string)
	add := func(name, value string) {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			return
		}
		value = strings.TrimSpace(value)
		if prev, ok := out[name]; ok {
			out[name] = prev + ", " + value
			return
		}
		out[name] = value
	}

	switch h := headers.(type) {
	case http.Header:
		for name, values := range h {
			for _, v := range values {
				add(name, v)
			}
		}
	case map[string][]string:
		for name, values := range h {
			for _, v := range values {
				add(name, v)
			}
		}
	case map[string]string:
		for name, v := range h {
			add(name, v)
		}
	case map[string]any:
		for name, v := range h {
			switch vv := v.(type) {
			case []string:
				for _, s := range vv {
					add(name, s)
				}
			case []any:
				for _, s := range vv {
					if str, ok := text(s); ok {
						add(name, str)
					}
				}
			default:
				if str, ok := text(v); ok {
					add(name, str)
				}
			}
		}
	case [][2]string:
		for _, pair := range h {
			add(pair[0], pair[1])
		}
	case [][2][]byte:
		for _, pair := range h {
			add(string(pair[0]), string(pair[1]))
		}
	case [][]string:
		for _, pair := range h {
			if len(pair) == 2 {
				add(pair[0], pair[1])
			}
		}
	case []any:
		for _, item := range h {
			pair, ok := item.([]any)
			if !ok || len(pair) != 2 {
				zlog.Logger.Debug().Str("item", fmt.Sprintf("%T", item)).Msg("skipping malformed header pair")
				continue
			}
			name, okName := text(pair[0])
			value, okValue := text(pair[1])
			if okName && okValue {
				add(name, value)
			}
		}
	case nil:
		return nil, &model.ValidationError{Field: "headers", Reason: "missing"}
	default:
		return nil, &model.ValidationError{Field: "headers", Reason: fmt.Sprintf("unsupported container %T", headers)}
	}

	return out, nil
}

func text(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case []byte:
		return string(t), true
	case fmt.Stringer:
		return t.String(), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case int:
		return strconv.Itoa(t), true
	case int64:
		return strconv.FormatInt(t, 10), true
	}
	return "", false
}

// UserID extracts the verified user id set by the upstream authenticator.
func UserID(headers map[string]string, name string) (int64, error) {
	raw, ok := headers[strings.ToLower(name)]
	if !ok || raw == "" {
		return 0, &model.ValidationError{Field: name, Reason: "missing identity"}
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, &model.ValidationError{Field: name, Reason: "must be a positive integer"}
	}

	return id, nil
}
