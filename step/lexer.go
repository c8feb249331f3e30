package step

import (
	"fmt"
	"strconv"
	"strings"
)

// tokenType represents the type of exchange-structure token.
type tokenType int

const (
	tokenEOF tokenType = iota
	tokenIdent           // FILE_SCHEMA, IFCWALL, ...
	tokenInstanceID      // #123
	tokenString          // 'text'
	tokenEnum            // .T., .ELEMENT.
	tokenInteger         // 42
	tokenReal            // 3.14, 1.0E-5
	tokenLParen          // (
	tokenRParen          // )
	tokenComma           // ,
	tokenSemicolon       // ;
	tokenEquals          // =
	tokenDollar          // $ unset
	tokenAsterisk        // * derived
)

// token is a lexical token with its position for error reporting.
type token struct {
	typ  tokenType
	text string // raw text: string content (undecoded), ident, enum name
	num  int64
	real float64
	line int
}

// lexer tokenizes a decoded exchange structure.
type lexer struct {
	src  string
	pos  int
	line int
}

func newLexer(src string) *lexer {
	return &lexer{src: src, line: 1}
}

// next returns the next token.
func (l *lexer) next() (token, error) {
	if err := l.skipWhitespaceAndComments(); err != nil {
		return token{}, err
	}
	if l.pos >= len(l.src) {
		return token{typ: tokenEOF, line: l.line}, nil
	}

	start := l.line
	b := l.src[l.pos]
	switch {
	case b == '(':
		l.pos++
		return token{typ: tokenLParen, line: start}, nil
	case b == ')':
		l.pos++
		return token{typ: tokenRParen, line: start}, nil
	case b == ',':
		l.pos++
		return token{typ: tokenComma, line: start}, nil
	case b == ';':
		l.pos++
		return token{typ: tokenSemicolon, line: start}, nil
	case b == '=':
		l.pos++
		return token{typ: tokenEquals, line: start}, nil
	case b == '$':
		l.pos++
		return token{typ: tokenDollar, line: start}, nil
	case b == '*':
		l.pos++
		return token{typ: tokenAsterisk, line: start}, nil
	case b == '#':
		return l.readInstanceID()
	case b == '\'':
		return l.readString()
	case b == '.':
		return l.readEnum()
	case b == '-' || b == '+' || isDigit(b):
		return l.readNumber()
	case isUpper(b) || b == '_':
		return l.readIdent()
	default:
		return token{}, fmt.Errorf("line %d: unexpected character %q", start, b)
	}
}

func (l *lexer) skipWhitespaceAndComments() error {
	for l.pos < len(l.src) {
		b := l.src[l.pos]
		switch {
		case b == '\n':
			l.line++
			l.pos++
		case b == ' ' || b == '\t' || b == '\r':
			l.pos++
		case b == '/' && l.pos+1 < len(l.src) && l.src[l.pos+1] == '*':
			end := strings.Index(l.src[l.pos+2:], "*/")
			if end < 0 {
				return fmt.Errorf("line %d: unterminated comment", l.line)
			}
			l.line += strings.Count(l.src[l.pos:l.pos+2+end+2], "\n")
			l.pos += 2 + end + 2
		default:
			return nil
		}
	}
	return nil
}

func (l *lexer) readInstanceID() (token, error) {
	start := l.pos
	l.pos++ // '#'
	for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
		l.pos++
	}
	if l.pos == start+1 {
		return token{}, fmt.Errorf("line %d: bare '#' without instance number", l.line)
	}
	id, err := strconv.ParseInt(l.src[start+1:l.pos], 10, 64)
	if err != nil {
		return token{}, fmt.Errorf("line %d: invalid instance id %q: %w", l.line, l.src[start:l.pos], err)
	}
	return token{typ: tokenInstanceID, num: id, line: l.line}, nil
}

// readString reads a quoted literal. Apostrophes are escaped by doubling;
// control-directive escapes stay raw here and are expanded by decodeString.
func (l *lexer) readString() (token, error) {
	start := l.line
	l.pos++ // opening quote
	var sb strings.Builder
	for {
		if l.pos >= len(l.src) {
			return token{}, fmt.Errorf("line %d: unterminated string", start)
		}
		b := l.src[l.pos]
		if b == '\'' {
			if l.pos+1 < len(l.src) && l.src[l.pos+1] == '\'' {
				sb.WriteByte('\'')
				l.pos += 2
				continue
			}
			l.pos++
			return token{typ: tokenString, text: sb.String(), line: start}, nil
		}
		if b == '\n' {
			l.line++
		}
		sb.WriteByte(b)
		l.pos++
	}
}

func (l *lexer) readEnum() (token, error) {
	start := l.pos
	l.pos++ // leading '.'
	for l.pos < len(l.src) {
		b := l.src[l.pos]
		if b == '.' {
			name := l.src[start+1 : l.pos]
			l.pos++
			return token{typ: tokenEnum, text: name, line: l.line}, nil
		}
		if !isUpper(b) && !isDigit(b) && b != '_' {
			break
		}
		l.pos++
	}
	return token{}, fmt.Errorf("line %d: unterminated enumeration literal", l.line)
}

func (l *lexer) readNumber() (token, error) {
	start := l.pos
	if l.src[l.pos] == '-' || l.src[l.pos] == '+' {
		l.pos++
	}
	isReal := false
	for l.pos < len(l.src) {
		b := l.src[l.pos]
		if isDigit(b) {
			l.pos++
			continue
		}
		if b == '.' || b == 'E' || b == 'e' {
			isReal = true
			l.pos++
			// exponent sign
			if (b == 'E' || b == 'e') && l.pos < len(l.src) && (l.src[l.pos] == '-' || l.src[l.pos] == '+') {
				l.pos++
			}
			continue
		}
		break
	}
	text := l.src[start:l.pos]
	if isReal {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return token{}, fmt.Errorf("line %d: invalid real %q: %w", l.line, text, err)
		}
		return token{typ: tokenReal, real: f, line: l.line}, nil
	}
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return token{}, fmt.Errorf("line %d: invalid integer %q: %w", l.line, text, err)
	}
	return token{typ: tokenInteger, num: n, line: l.line}, nil
}

func (l *lexer) readIdent() (token, error) {
	start := l.pos
	for l.pos < len(l.src) {
		b := l.src[l.pos]
		if !isUpper(b) && !isDigit(b) && b != '_' && b != '-' {
			break
		}
		l.pos++
	}
	return token{typ: tokenIdent, text: l.src[start:l.pos], line: l.line}, nil
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
func isUpper(b byte) bool { return b >= 'A' && b <= 'Z' }
