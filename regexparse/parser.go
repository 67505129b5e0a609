// Package regexparse implements a recursive-descent parser for a
// restricted regex grammar, translating source text directly into
// Thompson NFA fragments via an [nfa.Builder].
//
// Grammar:
//
//	regex       := alternation
//	alternation := concatenation ('|' concatenation)*
//	concatenation := quantified*
//	quantified  := atom ('*' | '+' | '?')?
//	atom        := '(' regex ')' | char_class | '.' | '\' esc | '^' | '$' | literal
//	char_class  := '[' '^'? class_item+ ']'
//	class_item  := char ( '-' char )? | '\' esc
//	esc         := 'd'|'D'|'w'|'W'|'s'|'S' | any literal char
package regexparse

import (
	"fmt"

	"github.com/coregx/linex/charclass"
	"github.com/coregx/linex/nfa"
)

// Parse compiles source into a complete NFA [nfa.Program]. Unmatched `(`,
// unmatched `[`, a dangling escape at end of input, and any other
// syntactic inconsistency are reported as *SyntaxError; parsing never
// recovers from one and never returns a partial program alongside it.
func Parse(source string) (nfa.Program, error) {
	p := &parser{src: []byte(source), b: nfa.NewBuilder()}
	frag, err := p.parseAlternation()
	if err != nil {
		return nfa.Program{}, err
	}
	if !p.atEnd() {
		return nfa.Program{}, p.errorf("unexpected %q", p.peek())
	}
	return p.b.Finish(frag), nil
}

type parser struct {
	src []byte
	pos int
	b   *nfa.Builder
}

func (p *parser) atEnd() bool   { return p.pos >= len(p.src) }
func (p *parser) peek() byte    { return p.src[p.pos] }
func (p *parser) advance() byte { c := p.src[p.pos]; p.pos++; return c }

func (p *parser) errorf(format string, args ...any) error {
	return &SyntaxError{Source: string(p.src), Reason: fmt.Sprintf(format, args...)}
}

func (p *parser) parseAlternation() (nfa.Fragment, error) {
	left, err := p.parseConcatenation()
	if err != nil {
		return nfa.Fragment{}, err
	}
	for !p.atEnd() && p.peek() == '|' {
		p.advance()
		right, err := p.parseConcatenation()
		if err != nil {
			return nfa.Fragment{}, err
		}
		left = p.b.Alternate(left, right)
	}
	return left, nil
}

func (p *parser) parseConcatenation() (nfa.Fragment, error) {
	var acc *nfa.Fragment
	for !p.atEnd() && p.peek() != '|' && p.peek() != ')' {
		frag, err := p.parseQuantified()
		if err != nil {
			return nfa.Fragment{}, err
		}
		if acc == nil {
			acc = &frag
		} else {
			combined := p.b.Concat(*acc, frag)
			acc = &combined
		}
	}
	if acc == nil {
		// Empty concatenation (e.g. "", "a|", "()"): a no-op fragment that
		// matches the empty string.
		empty := p.b.AddAnchor()
		return empty, nil
	}
	return *acc, nil
}

func (p *parser) parseQuantified() (nfa.Fragment, error) {
	atom, err := p.parseAtom()
	if err != nil {
		return nfa.Fragment{}, err
	}
	if p.atEnd() {
		return atom, nil
	}
	switch p.peek() {
	case '*':
		p.advance()
		return p.b.Star(atom), nil
	case '+':
		p.advance()
		return p.b.Plus(atom), nil
	case '?':
		p.advance()
		return p.b.Quest(atom), nil
	default:
		return atom, nil
	}
}

func (p *parser) parseAtom() (nfa.Fragment, error) {
	if p.atEnd() {
		return nfa.Fragment{}, p.errorf("unexpected end of input inside an atom")
	}
	switch c := p.peek(); c {
	case '(':
		p.advance()
		inner, err := p.parseAlternation()
		if err != nil {
			return nfa.Fragment{}, err
		}
		if p.atEnd() || p.peek() != ')' {
			return nfa.Fragment{}, p.errorf("unmatched (")
		}
		p.advance()
		return inner, nil
	case '[':
		return p.parseCharClass()
	case '.':
		p.advance()
		return p.b.AddClassMatch(charclass.AnyExceptNewline()), nil
	case '\\':
		p.advance()
		return p.parseEscapeAtom()
	case '^', '$':
		p.advance()
		return p.b.AddAnchor(), nil
	default:
		p.advance()
		return p.b.AddByteMatch(c), nil
	}
}

func (p *parser) parseEscapeAtom() (nfa.Fragment, error) {
	if p.atEnd() {
		return nfa.Fragment{}, p.errorf("dangling escape at end of source")
	}
	c := p.advance()
	if cls, ok := shorthandClass(c); ok {
		return p.b.AddClassMatch(cls), nil
	}
	return p.b.AddByteMatch(c), nil
}

func shorthandClass(c byte) (charclass.Class, bool) {
	switch c {
	case 'd':
		return charclass.Digit(), true
	case 'D':
		return charclass.NotDigit(), true
	case 'w':
		return charclass.Word(), true
	case 'W':
		return charclass.NotWord(), true
	case 's':
		return charclass.Space(), true
	case 'S':
		return charclass.NotSpace(), true
	default:
		return charclass.Class{}, false
	}
}

func (p *parser) parseCharClass() (nfa.Fragment, error) {
	p.advance() // '['
	var cls charclass.Class
	negate := false
	if !p.atEnd() && p.peek() == '^' {
		negate = true
		p.advance()
	}

	count := 0
	for {
		if p.atEnd() {
			return nfa.Fragment{}, p.errorf("unmatched [")
		}
		if p.peek() == ']' && count > 0 {
			p.advance()
			break
		}
		if err := p.parseClassItem(&cls); err != nil {
			return nfa.Fragment{}, err
		}
		count++
	}

	if negate {
		cls = cls.Complement()
	}
	return p.b.AddClassMatch(cls), nil
}

func (p *parser) parseClassItem(cls *charclass.Class) error {
	lo, err := p.parseClassChar(cls)
	if err != nil {
		return err
	}
	if lo.isClass {
		return nil
	}
	if !p.atEnd() && p.peek() == '-' && p.pos+1 < len(p.src) && p.src[p.pos+1] != ']' {
		p.advance() // '-'
		hi, err := p.parseClassChar(cls)
		if err != nil {
			return err
		}
		if hi.isClass {
			return p.errorf("invalid range end in character class")
		}
		cls.AddRange(lo.b, hi.b)
		return nil
	}
	cls.Add(lo.b)
	return nil
}

// classChar is either a literal byte to be added directly by the caller, or
// a shorthand class that's already been folded into the accumulating
// Class (isClass == true), which can't participate in a '-' range.
type classChar struct {
	b       byte
	isClass bool
}

func (p *parser) parseClassChar(cls *charclass.Class) (classChar, error) {
	if p.atEnd() {
		return classChar{}, p.errorf("unmatched [")
	}
	c := p.advance()
	if c != '\\' {
		return classChar{b: c}, nil
	}
	if p.atEnd() {
		return classChar{}, p.errorf("dangling escape at end of source")
	}
	esc := p.advance()
	if shorthand, ok := shorthandClass(esc); ok {
		*cls = unionClass(*cls, shorthand)
		return classChar{isClass: true}, nil
	}
	return classChar{b: esc}, nil
}

func unionClass(a, b charclass.Class) charclass.Class {
	for i := 0; i < charclass.NumBytes; i++ {
		if b.Contains(byte(i)) {
			a.Add(byte(i))
		}
	}
	return a
}
