package rdf

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"
)

var errLineTooLong = errors.New("line exceeds configured limit")

// QuadReader streams quads from N-Quads (or N-Triples) input.
type QuadReader struct {
	reader *bufio.Reader
	opts   Options
	line   int
	err    error
}

// NewQuadReader creates a reader over N-Quads input.
func NewQuadReader(r io.Reader, opts ...Option) *QuadReader {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	return &QuadReader{reader: bufio.NewReader(r), opts: options}
}

// Next returns the next quad, or io.EOF once the input is exhausted.
func (d *QuadReader) Next() (Quad, error) {
	if d.err != nil {
		return Quad{}, d.err
	}
	for {
		line, err := d.readLine()
		if err != nil {
			if err != io.EOF {
				err = &ParseError{Format: "nquads", Line: d.line, Err: err}
			}
			d.err = err
			return Quad{}, err
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		quad, err := d.parseLine(trimmed)
		if err != nil {
			d.err = err
			return Quad{}, err
		}
		return quad, nil
	}
}

// Line returns the 1-based number of the last line read.
func (d *QuadReader) Line() int { return d.line }

func (d *QuadReader) readLine() (string, error) {
	var buffer []byte
	for {
		part, err := d.reader.ReadSlice('\n')
		buffer = append(buffer, part...)
		if d.opts.MaxLineBytes > 0 && len(buffer) > d.opts.MaxLineBytes {
			d.line++
			return "", errLineTooLong
		}
		switch {
		case err == nil:
			d.line++
			return string(buffer), nil
		case errors.Is(err, bufio.ErrBufferFull):
			continue
		case err == io.EOF && len(buffer) > 0:
			d.line++
			return string(buffer), nil
		default:
			return "", err
		}
	}
}

func (d *QuadReader) parseLine(line string) (Quad, error) {
	cursor := &ntCursor{input: line, strict: d.opts.StrictIRIValidation}
	quad, err := cursor.parseStatement()
	if err != nil {
		return Quad{}, &ParseError{Format: "nquads", Statement: line, Line: d.line, Column: cursor.pos + 1, Err: err}
	}
	return quad, nil
}

// ParseTerm parses a single term written in N-Triples syntax:
// <iri>, _:id, "lexical", "lexical"@lang, "lexical"^^<datatype> or <<s p o>>.
func ParseTerm(s string) (Term, error) {
	cursor := &ntCursor{input: strings.TrimSpace(s)}
	term, err := cursor.parseTerm(true)
	if err == nil {
		cursor.skipWS()
		if cursor.pos < len(cursor.input) {
			err = errors.New("unexpected trailing input")
		}
	}
	if err != nil {
		return nil, &ParseError{Format: "term", Statement: s, Column: cursor.pos + 1, Err: err}
	}
	return term, nil
}

type ntCursor struct {
	input  string
	pos    int
	strict bool
}

func (c *ntCursor) parseStatement() (Quad, error) {
	subject, err := c.parseTerm(false)
	if err != nil {
		return Quad{}, err
	}
	predicate, err := c.parseIRI()
	if err != nil {
		return Quad{}, err
	}
	object, err := c.parseTerm(true)
	if err != nil {
		return Quad{}, err
	}
	var graph Term
	c.skipWS()
	if c.pos < len(c.input) && c.input[c.pos] != '.' {
		if graph, err = c.parseTerm(false); err != nil {
			return Quad{}, err
		}
	}
	if !c.consume('.') {
		return Quad{}, errors.New("expected '.' at end of statement")
	}
	c.skipWS()
	if c.pos < len(c.input) && c.input[c.pos] != '#' {
		return Quad{}, errors.New("unexpected content after '.'")
	}
	return Quad{S: subject, P: predicate, O: object, G: graph}, nil
}

func (c *ntCursor) skipWS() {
	for c.pos < len(c.input) {
		switch c.input[c.pos] {
		case ' ', '\t', '\r', '\n':
			c.pos++
		default:
			return
		}
	}
}

func (c *ntCursor) consume(ch byte) bool {
	c.skipWS()
	if c.pos < len(c.input) && c.input[c.pos] == ch {
		c.pos++
		return true
	}
	return false
}

func (c *ntCursor) parseTerm(allowLiteral bool) (Term, error) {
	c.skipWS()
	if c.pos >= len(c.input) {
		return nil, errors.New("unexpected end of input")
	}
	switch {
	case strings.HasPrefix(c.input[c.pos:], "<<"):
		return c.parseTripleTerm()
	case c.input[c.pos] == '<':
		return c.parseIRI()
	case strings.HasPrefix(c.input[c.pos:], "_:"):
		return c.parseBlankNode()
	case c.input[c.pos] == '"':
		if !allowLiteral {
			return nil, errors.New("literal not allowed here")
		}
		return c.parseLiteral()
	default:
		return nil, fmt.Errorf("unexpected character %q", c.input[c.pos])
	}
}

func (c *ntCursor) parseIRI() (IRI, error) {
	if !c.consume('<') {
		return IRI{}, errors.New("expected IRI")
	}
	var builder strings.Builder
	for c.pos < len(c.input) && c.input[c.pos] != '>' {
		if c.input[c.pos] == '\\' {
			if err := c.readEscape(&builder, false); err != nil {
				return IRI{}, err
			}
			continue
		}
		builder.WriteByte(c.input[c.pos])
		c.pos++
	}
	if c.pos >= len(c.input) {
		return IRI{}, errors.New("unterminated IRI")
	}
	c.pos++
	value := builder.String()
	if c.strict {
		if err := ValidateIRI(value); err != nil {
			return IRI{}, err
		}
	}
	return IRI{Value: value}, nil
}

func (c *ntCursor) parseBlankNode() (BlankNode, error) {
	c.pos += 2
	start := c.pos
	for c.pos < len(c.input) && !isTermDelimiter(c.input[c.pos]) {
		c.pos++
	}
	// A trailing '.' belongs to the statement, not the label.
	for c.pos > start && c.input[c.pos-1] == '.' {
		c.pos--
	}
	if start == c.pos {
		return BlankNode{}, errors.New("blank node id missing")
	}
	return BlankNode{ID: c.input[start:c.pos]}, nil
}

func (c *ntCursor) parseLiteral() (Literal, error) {
	c.pos++ // opening quote
	var builder strings.Builder
	closed := false
	for c.pos < len(c.input) {
		ch := c.input[c.pos]
		if ch == '"' {
			c.pos++
			closed = true
			break
		}
		if ch == '\\' {
			if err := c.readEscape(&builder, true); err != nil {
				return Literal{}, err
			}
			continue
		}
		builder.WriteByte(ch)
		c.pos++
	}
	if !closed {
		return Literal{}, errors.New("unterminated literal")
	}
	lexical := builder.String()
	if strings.HasPrefix(c.input[c.pos:], "@") {
		c.pos++
		start := c.pos
		for c.pos < len(c.input) && !isTermDelimiter(c.input[c.pos]) && c.input[c.pos] != '.' {
			c.pos++
		}
		if start == c.pos {
			return Literal{}, errors.New("language tag missing")
		}
		return NewLangLiteral(lexical, c.input[start:c.pos]), nil
	}
	if strings.HasPrefix(c.input[c.pos:], "^^") {
		c.pos += 2
		dt, err := c.parseIRI()
		if err != nil {
			return Literal{}, err
		}
		return NewTypedLiteral(lexical, dt), nil
	}
	return NewLiteral(lexical), nil
}

// readEscape decodes an escape sequence at the cursor. Simple escapes such as \n
// are only valid inside literals; \uXXXX and \UXXXXXXXX are valid everywhere.
func (c *ntCursor) readEscape(builder *strings.Builder, allowSimple bool) error {
	if c.pos+1 >= len(c.input) {
		return errors.New("unterminated escape")
	}
	next := c.input[c.pos+1]
	switch next {
	case 'u', 'U':
		width := 4
		if next == 'U' {
			width = 8
		}
		end := c.pos + 2 + width
		if end > len(c.input) {
			return errors.New("truncated unicode escape")
		}
		code, err := strconv.ParseUint(c.input[c.pos+2:end], 16, 32)
		if err != nil || !utf8.ValidRune(rune(code)) {
			return fmt.Errorf("invalid unicode escape %q", c.input[c.pos:end])
		}
		builder.WriteRune(rune(code))
		c.pos = end
		return nil
	}
	if !allowSimple {
		return fmt.Errorf("invalid escape \\%c", next)
	}
	switch next {
	case 'n':
		builder.WriteByte('\n')
	case 't':
		builder.WriteByte('\t')
	case 'r':
		builder.WriteByte('\r')
	case 'b':
		builder.WriteByte('\b')
	case 'f':
		builder.WriteByte('\f')
	case '"', '\'', '\\':
		builder.WriteByte(next)
	default:
		return fmt.Errorf("invalid escape \\%c", next)
	}
	c.pos += 2
	return nil
}

func (c *ntCursor) parseTripleTerm() (Term, error) {
	c.pos += 2
	subject, err := c.parseTerm(false)
	if err != nil {
		return nil, err
	}
	predicate, err := c.parseIRI()
	if err != nil {
		return nil, err
	}
	object, err := c.parseTerm(true)
	if err != nil {
		return nil, err
	}
	c.skipWS()
	if !strings.HasPrefix(c.input[c.pos:], ">>") {
		return nil, errors.New("expected '>>'")
	}
	c.pos += 2
	return TripleTerm{S: subject, P: predicate, O: object}, nil
}

func isTermDelimiter(ch byte) bool {
	switch ch {
	case ' ', '\t', '\r', '\n', '<', '"', '#':
		return true
	default:
		return false
	}
}

// QuadWriter streams quads as N-Quads.
type QuadWriter struct {
	writer *bufio.Writer
	err    error
}

// NewQuadWriter creates an N-Quads writer.
func NewQuadWriter(w io.Writer) *QuadWriter {
	return &QuadWriter{writer: bufio.NewWriter(w)}
}

// Write encodes one quad.
func (e *QuadWriter) Write(q Quad) error {
	if e.err != nil {
		return e.err
	}
	if q.S == nil || q.P.Value == "" || q.O == nil {
		return errors.New("nquads: missing statement fields")
	}
	if _, err := e.writer.WriteString(q.String() + "\n"); err != nil {
		e.err = err
		return err
	}
	return nil
}

// Flush writes any buffered data.
func (e *QuadWriter) Flush() error {
	if e.err != nil {
		return e.err
	}
	return e.writer.Flush()
}

// Close flushes the writer.
func (e *QuadWriter) Close() error {
	return e.Flush()
}

func renderIRI(iri IRI) string {
	return "<" + iri.Value + ">"
}

func renderTerm(term Term) string {
	switch value := term.(type) {
	case IRI:
		return renderIRI(value)
	case BlankNode:
		return value.String()
	case Literal:
		lexical := escapeLiteral(value.Lexical)
		if value.Lang != "" {
			return lexical + "@" + value.Lang
		}
		if value.Datatype.Value != "" && value.Datatype != XSDString {
			return lexical + "^^" + renderIRI(value.Datatype)
		}
		return lexical
	case TripleTerm:
		return "<< " + renderTerm(value.S) + " " + renderIRI(value.P) + " " + renderTerm(value.O) + " >>"
	default:
		return ""
	}
}

func escapeLiteral(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch ch := s[i]; ch {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteByte(ch)
		}
	}
	b.WriteByte('"')
	return b.String()
}
