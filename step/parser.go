package step

import (
	"fmt"
	"io"
)

// Value is one attribute value of an entity instance. Concrete types:
// Null, Derived, Ref, Str, Enum, Int, Real, List, Typed.
type Value interface {
	isValue()
}

type (
	// Null is the unset placeholder ($).
	Null struct{}
	// Derived is the derived-attribute placeholder (*).
	Derived struct{}
	// Ref is a reference to another instance (#n).
	Ref int64
	// Str is a decoded string literal.
	Str string
	// Enum is an enumeration literal without its dots.
	Enum string
	// Int is an integer literal.
	Int int64
	// Real is a floating-point literal.
	Real float64
	// List is a parenthesized aggregate.
	List []Value
	// Typed is a type-wrapped value such as IFCLABEL('x').
	Typed struct {
		Name string
		Args List
	}
)

func (Null) isValue()    {}
func (Derived) isValue() {}
func (Ref) isValue()     {}
func (Str) isValue()     {}
func (Enum) isValue()    {}
func (Int) isValue()     {}
func (Real) isValue()    {}
func (List) isValue()    {}
func (Typed) isValue()   {}

// Instance is one entity instance of the DATA section.
type Instance struct {
	ID   int64
	Type string // entity keyword, e.g. "IFCWALL"
	Args List
}

// File is a parsed exchange structure: the schema name and the instance
// table in source order.
type File struct {
	Schema    string
	Instances map[int64]*Instance
	Order     []int64
}

// Get returns the instance a reference points at, or nil for dangling
// references and non-reference values.
func (f *File) Get(v Value) *Instance {
	ref, ok := v.(Ref)
	if !ok {
		return nil
	}
	return f.Instances[int64(ref)]
}

// parser assembles instances from the token stream.
type parser struct {
	lex *lexer
	tok token
}

// Parse reads a full exchange structure.
func Parse(r io.Reader) (*File, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading exchange structure: %w", err)
	}
	src, err := decodeLatin1(raw)
	if err != nil {
		return nil, fmt.Errorf("decoding exchange structure: %w", err)
	}

	p := &parser{lex: newLexer(src)}
	if err := p.advance(); err != nil {
		return nil, err
	}

	// Magic: ISO-10303-21;
	if p.tok.typ != tokenIdent || p.tok.text != "ISO-10303-21" {
		return nil, fmt.Errorf("not a STEP physical file: missing ISO-10303-21 header")
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.expect(tokenSemicolon); err != nil {
		return nil, err
	}

	file := &File{Instances: make(map[int64]*Instance)}

	for p.tok.typ != tokenEOF {
		if p.tok.typ != tokenIdent {
			return nil, fmt.Errorf("line %d: expected section keyword", p.tok.line)
		}
		switch p.tok.text {
		case "HEADER":
			if err := p.parseHeader(file); err != nil {
				return nil, err
			}
		case "DATA":
			if err := p.parseData(file); err != nil {
				return nil, err
			}
		case "END-ISO-10303-21":
			if err := p.advance(); err != nil {
				return nil, err
			}
			if err := p.expect(tokenSemicolon); err != nil {
				return nil, err
			}
			return file, nil
		default:
			return nil, fmt.Errorf("line %d: unexpected section %q", p.tok.line, p.tok.text)
		}
	}
	return nil, fmt.Errorf("unexpected end of file: missing END-ISO-10303-21")
}

// parseHeader consumes the HEADER section, keeping only the schema name
// from FILE_SCHEMA.
func (p *parser) parseHeader(file *File) error {
	if err := p.advance(); err != nil { // HEADER
		return err
	}
	if err := p.expect(tokenSemicolon); err != nil {
		return err
	}
	for {
		switch p.tok.typ {
		case tokenEOF:
			return fmt.Errorf("unexpected end of file in HEADER section")
		case tokenIdent:
			if p.tok.text == "ENDSEC" {
				if err := p.advance(); err != nil {
					return err
				}
				return p.expect(tokenSemicolon)
			}
			name := p.tok.text
			if err := p.advance(); err != nil {
				return err
			}
			args, err := p.parseList()
			if err != nil {
				return err
			}
			if err := p.expect(tokenSemicolon); err != nil {
				return err
			}
			if name == "FILE_SCHEMA" {
				file.Schema = schemaFromArgs(args)
			}
		default:
			return fmt.Errorf("line %d: unexpected token in HEADER section", p.tok.line)
		}
	}
}

// schemaFromArgs digs the schema name out of FILE_SCHEMA(('IFC4')).
func schemaFromArgs(args List) string {
	if len(args) == 0 {
		return ""
	}
	inner, ok := args[0].(List)
	if !ok || len(inner) == 0 {
		return ""
	}
	s, ok := inner[0].(Str)
	if !ok {
		return ""
	}
	return string(s)
}

// parseData consumes the DATA section instance by instance.
func (p *parser) parseData(file *File) error {
	if err := p.advance(); err != nil { // DATA
		return err
	}
	if err := p.expect(tokenSemicolon); err != nil {
		return err
	}
	for {
		switch p.tok.typ {
		case tokenEOF:
			return fmt.Errorf("unexpected end of file in DATA section")
		case tokenIdent:
			if p.tok.text != "ENDSEC" {
				return fmt.Errorf("line %d: unexpected keyword %q in DATA section", p.tok.line, p.tok.text)
			}
			if err := p.advance(); err != nil {
				return err
			}
			return p.expect(tokenSemicolon)
		case tokenInstanceID:
			inst, err := p.parseInstance()
			if err != nil {
				return err
			}
			if _, dup := file.Instances[inst.ID]; !dup {
				file.Order = append(file.Order, inst.ID)
			}
			file.Instances[inst.ID] = inst
		default:
			return fmt.Errorf("line %d: unexpected token in DATA section", p.tok.line)
		}
	}
}

// parseInstance parses "#id = KEYWORD(args);".
func (p *parser) parseInstance() (*Instance, error) {
	id := p.tok.num
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.expect(tokenEquals); err != nil {
		return nil, err
	}
	if p.tok.typ != tokenIdent {
		return nil, fmt.Errorf("line %d: expected entity keyword for #%d", p.tok.line, id)
	}
	name := p.tok.text
	if err := p.advance(); err != nil {
		return nil, err
	}
	args, err := p.parseList()
	if err != nil {
		return nil, fmt.Errorf("instance #%d: %w", id, err)
	}
	if err := p.expect(tokenSemicolon); err != nil {
		return nil, err
	}
	return &Instance{ID: id, Type: name, Args: args}, nil
}

// parseList parses a parenthesized, comma-separated value list.
func (p *parser) parseList() (List, error) {
	if err := p.expect(tokenLParen); err != nil {
		return nil, err
	}
	var list List
	if p.tok.typ == tokenRParen {
		return list, p.advance()
	}
	for {
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		list = append(list, v)
		switch p.tok.typ {
		case tokenComma:
			if err := p.advance(); err != nil {
				return nil, err
			}
		case tokenRParen:
			return list, p.advance()
		default:
			return nil, fmt.Errorf("line %d: expected ',' or ')' in aggregate", p.tok.line)
		}
	}
}

func (p *parser) parseValue() (Value, error) {
	switch p.tok.typ {
	case tokenDollar:
		return Null{}, p.advance()
	case tokenAsterisk:
		return Derived{}, p.advance()
	case tokenInstanceID:
		v := Ref(p.tok.num)
		return v, p.advance()
	case tokenString:
		v := Str(decodeString(p.tok.text))
		return v, p.advance()
	case tokenEnum:
		v := Enum(p.tok.text)
		return v, p.advance()
	case tokenInteger:
		v := Int(p.tok.num)
		return v, p.advance()
	case tokenReal:
		v := Real(p.tok.real)
		return v, p.advance()
	case tokenLParen:
		return p.parseList()
	case tokenIdent:
		// Type-wrapped value: IFCLABEL('x')
		name := p.tok.text
		if err := p.advance(); err != nil {
			return nil, err
		}
		args, err := p.parseList()
		if err != nil {
			return nil, err
		}
		return Typed{Name: name, Args: args}, nil
	default:
		return nil, fmt.Errorf("line %d: unexpected token in value position", p.tok.line)
	}
}

func (p *parser) advance() error {
	tok, err := p.lex.next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

func (p *parser) expect(typ tokenType) error {
	if p.tok.typ != typ {
		return fmt.Errorf("line %d: unexpected token (want %s)", p.tok.line, typeName(typ))
	}
	return p.advance()
}

func typeName(typ tokenType) string {
	names := map[tokenType]string{
		tokenEOF: "end of file", tokenIdent: "keyword", tokenInstanceID: "instance id",
		tokenString: "string", tokenEnum: "enumeration", tokenInteger: "integer",
		tokenReal: "real", tokenLParen: "'('", tokenRParen: "')'", tokenComma: "','",
		tokenSemicolon: "';'", tokenEquals: "'='", tokenDollar: "'$'", tokenAsterisk: "'*'",
	}
	if n, ok := names[typ]; ok {
		return n
	}
	return "token"
}

// argument accessors; all tolerate short or differently typed argument
// lists and report absence instead of failing.

func (i *Instance) arg(idx int) Value {
	if i == nil || idx < 0 || idx >= len(i.Args) {
		return Null{}
	}
	return i.Args[idx]
}

func (i *Instance) argStr(idx int) (string, bool) {
	s, ok := i.arg(idx).(Str)
	return string(s), ok
}

func (i *Instance) argRef(idx int) (int64, bool) {
	r, ok := i.arg(idx).(Ref)
	return int64(r), ok
}

func (i *Instance) argList(idx int) List {
	l, _ := i.arg(idx).(List)
	return l
}

func (i *Instance) argFloat(idx int) (float64, bool) {
	switch v := i.arg(idx).(type) {
	case Real:
		return float64(v), true
	case Int:
		return float64(v), true
	default:
		return 0, false
	}
}
