package rcg

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/tidwall/sjson"
)

var (
	// ErrUnknownParam is returned for a name missing from the registry.
	ErrUnknownParam = errors.New("unsupported parameter")
	// ErrParamType is returned when a typed setter targets a field of another type.
	ErrParamType = errors.New("parameter type mismatch")
	// ErrInvalidBool is returned for a bool value other than 0/1/true/false/on/off.
	ErrInvalidBool = errors.New("unknown bool value")
)

// ParamKind is the value type of a registered parameter.
type ParamKind uint8

const (
	ParamInt ParamKind = iota
	ParamDouble
	ParamBool
	ParamString
)

func (k ParamKind) String() string {
	switch k {
	case ParamInt:
		return "int"
	case ParamDouble:
		return "double"
	case ParamBool:
		return "bool"
	case ParamString:
		return "string"
	default:
		return "unknown"
	}
}

// ParamError describes one parameter that could not be applied.
type ParamError struct {
	Message string // server_param, player_param or player_type
	Name    string
	Value   string
	Err     error
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("rcg: %s (%s %s): %v", e.Message, e.Name, e.Value, e.Err)
}

func (e *ParamError) Unwrap() error { return e.Err }

// ParamErrors collects the non-fatal failures of one parameter record.
type ParamErrors []*ParamError

func (es ParamErrors) Error() string {
	if len(es) == 1 {
		return es[0].Error()
	}
	return fmt.Sprintf("%s (and %d more)", es[0].Error(), len(es)-1)
}

// param binds a name to a field of T. ref returns *int, *float64, *bool
// or *string.
type param[T any] struct {
	name string
	ref  func(*T) any
}

// Registry is the static name-to-field table of a parameter struct.
// It is built once per type and never changes.
type Registry[T any] struct {
	message string
	params  []param[T]
	index   map[string]int
	kinds   []ParamKind
	sorted  []string
}

func newRegistry[T any](message string, params []param[T]) *Registry[T] {
	r := &Registry[T]{
		message: message,
		params:  params,
		index:   make(map[string]int, len(params)),
		kinds:   make([]ParamKind, len(params)),
		sorted:  make([]string, 0, len(params)),
	}
	var zero T
	for i, p := range params {
		if _, dup := r.index[p.name]; dup {
			panic("rcg: duplicate parameter " + p.name)
		}
		r.index[p.name] = i
		switch p.ref(&zero).(type) {
		case *int:
			r.kinds[i] = ParamInt
		case *float64:
			r.kinds[i] = ParamDouble
		case *bool:
			r.kinds[i] = ParamBool
		case *string:
			r.kinds[i] = ParamString
		default:
			panic("rcg: unsupported field type for " + p.name)
		}
		r.sorted = append(r.sorted, p.name)
	}
	sort.Strings(r.sorted)
	return r
}

// Message returns the record name, e.g. "server_param".
func (r *Registry[T]) Message() string { return r.message }

// Len returns the number of registered parameters.
func (r *Registry[T]) Len() int { return len(r.params) }

// Names returns the parameter names in sorted order.
func (r *Registry[T]) Names() []string {
	return append([]string(nil), r.sorted...)
}

// Kind returns the value type of name.
func (r *Registry[T]) Kind(name string) (ParamKind, bool) {
	i, ok := r.index[name]
	if !ok {
		return 0, false
	}
	return r.kinds[i], true
}

// Value returns the current value of name as int, float64, bool or string.
func (r *Registry[T]) Value(p *T, name string) (any, bool) {
	i, ok := r.index[name]
	if !ok {
		return nil, false
	}
	switch v := r.params[i].ref(p).(type) {
	case *int:
		return *v, true
	case *float64:
		return *v, true
	case *bool:
		return *v, true
	case *string:
		return *v, true
	}
	return nil, false
}

func (r *Registry[T]) paramErr(name, value string, err error) error {
	return &ParamError{Message: r.message, Name: name, Value: value, Err: err}
}

// SetValue parses raw according to the field type of name.
// Strings are unquoted with CleanString.
func (r *Registry[T]) SetValue(p *T, name, raw string) error {
	i, ok := r.index[name]
	if !ok {
		return r.paramErr(name, raw, ErrUnknownParam)
	}
	switch v := r.params[i].ref(p).(type) {
	case *int:
		n, err := parseInt(raw)
		if err != nil {
			return r.paramErr(name, raw, err)
		}
		*v = n
	case *float64:
		f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return r.paramErr(name, raw, err)
		}
		*v = f
	case *bool:
		switch strings.TrimSpace(raw) {
		case "0", "false", "off":
			*v = false
		case "1", "true", "on":
			*v = true
		default:
			return r.paramErr(name, raw, ErrInvalidBool)
		}
	case *string:
		*v = CleanString(raw)
	}
	return nil
}

// parseInt accepts a decimal integer, or a number whose integer part is
// taken.
func parseInt(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if n, err := strconv.Atoi(raw); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("invalid integer %q", raw)
	}
	return int(f), nil
}

// SetInt assigns v to an int, double or bool field.
func (r *Registry[T]) SetInt(p *T, name string, v int) error {
	i, ok := r.index[name]
	if !ok {
		return r.paramErr(name, strconv.Itoa(v), ErrUnknownParam)
	}
	switch f := r.params[i].ref(p).(type) {
	case *int:
		*f = v
	case *float64:
		*f = float64(v)
	case *bool:
		*f = v != 0
	default:
		return r.paramErr(name, strconv.Itoa(v), ErrParamType)
	}
	return nil
}

// SetDouble assigns v to a double field.
func (r *Registry[T]) SetDouble(p *T, name string, v float64) error {
	i, ok := r.index[name]
	if !ok {
		return r.paramErr(name, formatDouble(v), ErrUnknownParam)
	}
	f, ok := r.params[i].ref(p).(*float64)
	if !ok {
		return r.paramErr(name, formatDouble(v), ErrParamType)
	}
	*f = v
	return nil
}

// SetBool assigns v to a bool field.
func (r *Registry[T]) SetBool(p *T, name string, v bool) error {
	i, ok := r.index[name]
	if !ok {
		return r.paramErr(name, strconv.FormatBool(v), ErrUnknownParam)
	}
	f, ok := r.params[i].ref(p).(*bool)
	if !ok {
		return r.paramErr(name, strconv.FormatBool(v), ErrParamType)
	}
	*f = v
	return nil
}

// SetString assigns v to a string field verbatim.
func (r *Registry[T]) SetString(p *T, name string, v string) error {
	i, ok := r.index[name]
	if !ok {
		return r.paramErr(name, v, ErrUnknownParam)
	}
	f, ok := r.params[i].ref(p).(*string)
	if !ok {
		return r.paramErr(name, v, ErrParamType)
	}
	*f = v
	return nil
}

// ParseSExp applies a record of the form "(message (name value)...)".
//
// A malformed record returns a *SyntaxError and leaves p partially
// updated. Parameters that cannot be applied are skipped and returned
// together as ParamErrors after the whole record was read.
func (r *Registry[T]) ParseSExp(p *T, msg string) error {
	ts, err := Tokenize(msg)
	if err != nil {
		return err
	}
	if _, err := ts.Expect(TokenLParen); err != nil {
		return err
	}
	if _, err := ts.Atom(); err != nil {
		return err
	}

	var perrs ParamErrors
	for !ts.Match(TokenRParen) {
		if _, err := ts.Expect(TokenLParen); err != nil {
			return err
		}
		name, err := ts.Atom()
		if err != nil {
			return err
		}
		tok := ts.Advance()
		if tok.Type != TokenAtom && tok.Type != TokenString {
			return &SyntaxError{Reason: "missing value for " + name, Offset: tok.Pos}
		}
		if err := ts.Close(); err != nil {
			return err
		}
		if err := r.SetValue(p, name, tok.Value); err != nil {
			var pe *ParamError
			if errors.As(err, &pe) {
				perrs = append(perrs, pe)
			}
		}
	}
	if len(perrs) > 0 {
		return perrs
	}
	return nil
}

// SExp writes "(message (name value)...)" with names sorted.
func (r *Registry[T]) SExp(p *T) string {
	var sb strings.Builder
	sb.WriteByte('(')
	sb.WriteString(r.message)
	sb.WriteByte(' ')
	for _, name := range r.sorted {
		i := r.index[name]
		sb.WriteByte('(')
		sb.WriteString(name)
		sb.WriteByte(' ')
		sb.WriteString(formatValue(r.params[i].ref(p)))
		sb.WriteByte(')')
	}
	sb.WriteByte(')')
	return sb.String()
}

// JSON writes {"message":{"name":value,...}} with names sorted.
func (r *Registry[T]) JSON(p *T) []byte {
	body := []byte(`{}`)
	for _, name := range r.sorted {
		v, _ := r.Value(p, name)
		body, _ = sjson.SetBytes(body, name, v)
	}
	out, _ := sjson.SetRawBytes([]byte(`{}`), r.message, body)
	return out
}

// Copy assigns every registered field of src to dst.
func (r *Registry[T]) Copy(dst, src *T) {
	for _, p := range r.params {
		switch d := p.ref(dst).(type) {
		case *int:
			*d = *p.ref(src).(*int)
		case *float64:
			*d = *p.ref(src).(*float64)
		case *bool:
			*d = *p.ref(src).(*bool)
		case *string:
			*d = *p.ref(src).(*string)
		}
	}
}

func formatValue(ref any) string {
	switch v := ref.(type) {
	case *int:
		return strconv.Itoa(*v)
	case *float64:
		return formatDouble(*v)
	case *bool:
		return strconv.FormatBool(*v)
	case *string:
		return QuoteString(*v)
	}
	return ""
}

func formatDouble(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
