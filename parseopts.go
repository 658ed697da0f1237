package redberry

import (
	"strconv"
	"strings"
	"unicode"
)

// ParseOption is an option for building a Parser.
type ParseOption[E any] interface {
	parseOption(*parsectx[E])
}

type (
	constopt[E any] struct {
		name string
		v    E
	}
	constsopt[E any] map[string]E
	recopt[E any]    []Recognizer[E]
)

// parsectx collects the options for a new parser.
type parsectx[E any] struct {
	// consts maps names to the values they parse to.
	consts map[string]E
	// extra holds recognizers tried after the operators and before literals.
	extra []Recognizer[E]
}

// Constant makes name parse to v. name must be non-empty and contain no
// whitespace, operators or brackets.
func Constant[E any](name string, v E) ParseOption[E] {
	checkName(name)
	return &constopt[E]{name, v}
}

func (o *constopt[E]) parseOption(p *parsectx[E]) {
	if p.consts == nil {
		p.consts = map[string]E{}
	}
	p.consts[o.name] = o.v
}

// Constants adds a group of named constants. See Constant.
func Constants[E any](m map[string]E) ParseOption[E] {
	for k := range m {
		checkName(k)
	}
	return constsopt[E](m)
}

func (o constsopt[E]) parseOption(p *parsectx[E]) {
	if p.consts == nil {
		// Always make a copy.
		p.consts = make(map[string]E, len(o))
	}
	for k, v := range o {
		p.consts[k] = v
	}
}

// Recognizers adds recognizers to the chain. They are tried in order after
// the operator recognizers and before the literal recognizer, so they see
// only fragments that contain no operator outside brackets.
func Recognizers[E any](r ...Recognizer[E]) ParseOption[E] {
	return recopt[E](r)
}

func (o recopt[E]) parseOption(p *parsectx[E]) {
	p.extra = append(p.extra, o...)
}

// IsConstantName reports whether name can be used with Constant.
func IsConstantName(name string) bool {
	return name != "" &&
		!strings.ContainsAny(name, Operators+string(OpenBracket)+string(CloseBracket)) &&
		strings.IndexFunc(name, unicode.IsSpace) < 0
}

func checkName(name string) {
	if !IsConstantName(name) {
		panic("redberry: invalid constant name " + strconv.Quote(name))
	}
}
