// Package serialize turns domain records into values that encoding/json can
// always encode, and guards outbound payloads so a connection never receives
// a marshalling failure.
package serialize

import (
	"encoding"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"
)

// TimeFormat is the canonical ISO-8601 rendering of every timestamp.
const TimeFormat = "2006-01-02T15:04:05.000Z07:00"

const maxDepth = 32

// Referencer is implemented by references to entities owned elsewhere. They
// cross the wire as their primitive identifier.
type Referencer interface {
	RefID() string
}

// Issue names the first value that cannot be represented on the wire.
type Issue struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (i *Issue) Error() string {
	if i.Field == "" {
		return "not serializable: " + i.Reason
	}
	return fmt.Sprintf("not serializable: %s: %s", i.Field, i.Reason)
}

var (
	timeType       = reflect.TypeOf(time.Time{})
	referencerType = reflect.TypeOf((*Referencer)(nil)).Elem()
	marshalerType  = reflect.TypeOf((*json.Marshaler)(nil)).Elem()
	textType       = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()
)

// walker converts values. In strict mode the first unrepresentable value
// stops the walk and is reported; otherwise it is dropped.
type walker struct {
	strict bool
	issue  *Issue
}

func (w *walker) fail(path, reason string) {
	if w.strict && w.issue == nil {
		w.issue = &Issue{Field: path, Reason: reason}
	}
}

// Serialize converts v into a tree of maps, slices and primitives. Timestamps
// become ISO-8601 strings in UTC, entity references become their identifier,
// and values without a wire representation are omitted.
func Serialize(v any) any {
	w := &walker{}
	out, _ := w.convert(reflect.ValueOf(v), "", 0)
	return out
}

// ValidateSerializable reports the first field of payload that cannot be
// encoded, or nil when the whole payload can.
func ValidateSerializable(payload any) *Issue {
	w := &walker{strict: true}
	w.convert(reflect.ValueOf(payload), "", 0)
	return w.issue
}

func join(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

// convert returns the wire value and whether it should be kept.
func (w *walker) convert(v reflect.Value, path string, depth int) (any, bool) {
	if w.issue != nil {
		return nil, false
	}
	if depth > maxDepth {
		w.fail(path, "nesting too deep")
		return nil, false
	}
	if !v.IsValid() {
		return nil, true
	}

	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return nil, true
		}
		return w.convert(v.Elem(), path, depth+1)
	}

	t := v.Type()
	switch {
	case t == timeType:
		return formatTime(v.Interface().(time.Time)), true
	case t.Implements(referencerType):
		if id := v.Interface().(Referencer).RefID(); id != "" {
			return id, true
		}
		return nil, true
	case t.Implements(marshalerType):
		raw, err := safeMarshalJSON(v.Interface().(json.Marshaler))
		if err != nil {
			w.fail(path, err.Error())
			return nil, false
		}
		return json.RawMessage(raw), true
	case t.Implements(textType):
		text, err := v.Interface().(encoding.TextMarshaler).MarshalText()
		if err != nil {
			w.fail(path, err.Error())
			return nil, false
		}
		return string(text), true
	}

	switch v.Kind() {
	case reflect.Bool:
		return v.Bool(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.Uint(), true
	case reflect.Float32, reflect.Float64:
		f := v.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			w.fail(path, "non-finite number")
			return nil, false
		}
		return f, true
	case reflect.String:
		return v.String(), true
	case reflect.Slice:
		if v.IsNil() {
			return nil, true
		}
		if t.Elem().Kind() == reflect.Uint8 {
			return base64.StdEncoding.EncodeToString(v.Bytes()), true
		}
		return w.list(v, path, depth)
	case reflect.Array:
		return w.list(v, path, depth)
	case reflect.Map:
		return w.mapping(v, path, depth)
	case reflect.Struct:
		return w.object(v, path, depth)
	default:
		// chan, func, complex and unsafe pointers have no wire form
		w.fail(path, "unsupported type "+t.String())
		return nil, false
	}
}

func (w *walker) list(v reflect.Value, path string, depth int) (any, bool) {
	out := make([]any, 0, v.Len())
	for i := 0; i < v.Len(); i++ {
		item, keep := w.convert(v.Index(i), path+"["+strconv.Itoa(i)+"]", depth+1)
		if w.issue != nil {
			return nil, false
		}
		if keep {
			out = append(out, item)
		}
	}
	return out, true
}

func (w *walker) mapping(v reflect.Value, path string, depth int) (any, bool) {
	if v.IsNil() {
		return nil, true
	}

	out := make(map[string]any, v.Len())
	keys := v.MapKeys()
	sort.Slice(keys, func(i, j int) bool { return fmt.Sprint(keys[i]) < fmt.Sprint(keys[j]) })

	for _, k := range keys {
		name, ok := mapKey(k)
		if !ok {
			w.fail(path, "unsupported map key "+k.Type().String())
			if w.issue != nil {
				return nil, false
			}
			continue
		}

		item, keep := w.convert(v.MapIndex(k), join(path, name), depth+1)
		if w.issue != nil {
			return nil, false
		}
		if keep {
			out[name] = item
		}
	}

	return out, true
}

func mapKey(k reflect.Value) (string, bool) {
	switch k.Kind() {
	case reflect.String:
		return k.String(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(k.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(k.Uint(), 10), true
	}
	if k.Type().Implements(textType) {
		text, err := k.Interface().(encoding.TextMarshaler).MarshalText()
		return string(text), err == nil
	}
	return "", false
}

func (w *walker) object(v reflect.Value, path string, depth int) (any, bool) {
	out := make(map[string]any, v.NumField())
	w.fields(v, path, depth, out)
	if w.issue != nil {
		return nil, false
	}
	return out, true
}

func (w *walker) fields(v reflect.Value, path string, depth int, out map[string]any) {
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() && !f.Anonymous {
			continue
		}

		name, omitEmpty, skip := parseTag(f)
		if skip {
			continue
		}

		fv := v.Field(i)
		if f.Anonymous && name == "" {
			for fv.Kind() == reflect.Pointer {
				if fv.IsNil() {
					break
				}
				fv = fv.Elem()
			}
			if fv.Kind() == reflect.Struct {
				w.fields(fv, path, depth+1, out)
				continue
			}
			if !f.IsExported() {
				continue
			}
		}
		if name == "" {
			name = f.Name
		}
		if omitEmpty && fv.IsZero() {
			continue
		}

		item, keep := w.convert(fv, join(path, name), depth+1)
		if w.issue != nil {
			return
		}
		if keep {
			out[name] = item
		}
	}
}

func parseTag(f reflect.StructField) (name string, omitEmpty, skip bool) {
	tag := f.Tag.Get("json")
	if tag == "-" {
		return "", false, true
	}

	name, opts, _ := strings.Cut(tag, ",")
	for _, opt := range strings.Split(opts, ",") {
		if opt == "omitempty" {
			omitEmpty = true
		}
	}

	return name, omitEmpty, false
}

func formatTime(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t.UTC().Format(TimeFormat)
}

func safeMarshalJSON(m json.Marshaler) (raw []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("marshaller panic: %v", r)
		}
	}()

	raw, err = m.MarshalJSON()
	if err != nil {
		return nil, err
	}
	if !json.Valid(raw) {
		return nil, fmt.Errorf("marshaller produced invalid json")
	}

	return raw, nil
}

// Shape describes the structure of v as field path to Go type, without any
// values. It is what gets logged when a payload is rejected.
func Shape(v any) map[string]string {
	shape := make(map[string]string)
	describe(reflect.ValueOf(v), "", 0, shape)
	return shape
}

func describe(v reflect.Value, path string, depth int, shape map[string]string) {
	if !v.IsValid() {
		shape[orRoot(path)] = "nil"
		return
	}
	if depth > 4 {
		shape[orRoot(path)] = v.Type().String()
		return
	}

	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			shape[orRoot(path)] = "nil"
			return
		}
		describe(v.Elem(), path, depth+1, shape)
	case reflect.Map:
		for _, k := range v.MapKeys() {
			describe(v.MapIndex(k), join(path, fmt.Sprint(k.Interface())), depth+1, shape)
		}
	case reflect.Struct:
		if v.Type() == timeType {
			shape[orRoot(path)] = "time.Time"
			return
		}
		for i := 0; i < v.NumField(); i++ {
			if f := v.Type().Field(i); f.IsExported() {
				describe(v.Field(i), join(path, f.Name), depth+1, shape)
			}
		}
	default:
		shape[orRoot(path)] = v.Type().String()
	}
}

func orRoot(path string) string {
	if path == "" {
		return "$"
	}
	return path
}
