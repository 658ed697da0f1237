package redberry

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Operators contains the binary operators, lowest precedence first.
const Operators = "+-*/"

// Brackets group subexpressions.
const (
	OpenBracket  = '('
	CloseBracket = ')'
)

// Fragment is a piece of the input handed to a recognizer.
type Fragment struct {
	// Text is the fragment, trimmed of surrounding whitespace.
	Text string
	// Col is the position of the fragment in the whole input, as the number of
	// runes up to and including its first rune.
	Col int
}

// trim removes surrounding whitespace and moves Col accordingly.
func (f Fragment) trim() Fragment {
	t := strings.TrimLeftFunc(f.Text, unicode.IsSpace)
	f.Col += utf8.RuneCountInString(f.Text[:len(f.Text)-len(t)])
	f.Text = strings.TrimRightFunc(t, unicode.IsSpace)
	return f
}

// sub returns the fragment for f.Text[i:j].
func (f Fragment) sub(i, j int) Fragment {
	return Fragment{
		Text: f.Text[i:j],
		Col:  f.Col + utf8.RuneCountInString(f.Text[:i]),
	}
}

// col returns the column of the byte at i.
func (f Fragment) col(i int) int {
	return f.Col + utf8.RuneCountInString(f.Text[:i])
}

// term is an operand found by splitTerms.
type term struct {
	frag Fragment
	// inverse is true if the operand follows the inverse operator, i.e. - or
	// /, or a leading -.
	inverse bool
	// op is the byte position of the operator before the operand, or -1.
	op int
}

// splitTerms splits f at the operators direct and inverse that appear outside
// brackets. If unary is set, an operator at the start of f or right after
// another operator is a sign rather than a split point, as is the sign of a
// floating-point exponent; a sign at the start of f applies to the first
// term. The result is nil if f has no split point and no leading sign.
func splitTerms(f Fragment, direct, inverse byte, unary bool) ([]term, error) {
	var terms []term
	depth := 0
	start, op := 0, -1
	inv, lead := false, false
	afterOp := true
	s := f.Text
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == OpenBracket:
			depth++
			afterOp = false
		case c == CloseBracket:
			depth--
			if depth < 0 {
				return nil, &BracketError{Col: f.col(i), Right: string(CloseBracket)}
			}
			afterOp = false
		case c == ' ', c == '\t', c == '\n', c == '\r':
			// Whitespace doesn't separate a sign from what it follows.
		case depth == 0 && (c == direct || c == inverse):
			if unary && (afterOp || isExponentSign(s, i)) {
				if i == 0 {
					inv, lead = c == inverse, true
					start, op = 1, 0
				}
				afterOp = true
				continue
			}
			terms = append(terms, term{frag: f.sub(start, i), inverse: inv, op: op})
			inv = c == inverse
			start, op = i+1, i
			afterOp = true
		case strings.IndexByte(Operators, c) >= 0:
			afterOp = true
		default:
			afterOp = false
		}
	}
	if depth > 0 {
		return nil, &BracketError{Col: f.col(len(s)), Left: string(OpenBracket)}
	}
	if terms == nil && !lead {
		return nil, nil
	}
	return append(terms, term{frag: f.sub(start, len(s)), inverse: inv, op: op}), nil
}

// isExponentSign reports whether the sign at s[i] belongs to the exponent of a
// number like 1.5e-3.
func isExponentSign(s string, i int) bool {
	if i < 2 || (s[i-1] != 'e' && s[i-1] != 'E') {
		return false
	}
	c := s[i-2]
	return '0' <= c && c <= '9' || c == '.'
}

// spansBrackets reports whether s is a single bracketed group, i.e. the
// bracket opened by its first byte is closed by its last.
func spansBrackets(f Fragment) (bool, error) {
	s := f.Text
	if len(s) < 2 || s[0] != OpenBracket || s[len(s)-1] != CloseBracket {
		return false, nil
	}
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case OpenBracket:
			depth++
		case CloseBracket:
			depth--
			if depth < 0 {
				return false, &BracketError{Col: f.col(i), Right: string(CloseBracket)}
			}
			if depth == 0 && i != len(s)-1 {
				// (a)*(b): the first group ends early.
				return false, nil
			}
		}
	}
	if depth != 0 {
		return false, &BracketError{Col: f.Col, Left: string(OpenBracket)}
	}
	return true, nil
}

// checkBrackets verifies that every bracket in s is matched.
func checkBrackets(s string) error {
	var open []int
	col := 0
	for _, r := range s {
		col++
		switch r {
		case OpenBracket:
			open = append(open, col)
		case CloseBracket:
			if len(open) == 0 {
				return &BracketError{Col: col, Right: string(CloseBracket)}
			}
			open = open[:len(open)-1]
		}
	}
	if len(open) > 0 {
		return &BracketError{Col: open[len(open)-1], Left: string(OpenBracket)}
	}
	return nil
}

// isNumber reports whether s is a decimal floating-point literal: digits with
// at most one dot, optionally followed by an exponent.
func isNumber(s string) bool {
	var dig, dot, e, le, ed bool
	for _, r := range s {
		switch r {
		case '+', '-':
			// A sign is only valid immediately following an exponent marker.
			if !le {
				return false
			}
			le = false
		case '.':
			if dot || e {
				return false
			}
			dot = true
		case 'e', 'E':
			if !dig || e {
				return false
			}
			e = true
			le = true
		case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
			if e {
				ed = true
			} else {
				dig = true
			}
			le = false
		default:
			return false
		}
	}
	return dig && (!e || ed)
}
