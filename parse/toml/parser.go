// Package toml implements the subset of TOML that yalc configs use:
// comments, key-value pairs with scalar values, inline arrays, [table]
// headers and [[array-of-table]] headers. Input is tokenized by the
// Lexer and folded into a generic value tree by Parse.
//
// Not supported:
// - Quoted or dotted keys in key-value pairs
// - Inline tables and multiline strings
// - Comment preservation
package toml

import (
	"errors"
	"fmt"
	"strings"
)

// =========================
// AST Definitions
// =========================

type Kind uint8

const (
	KindTable Kind = iota
	KindArray
	KindValue
)

type Node interface {
	Kind() Kind
}

// -------- Table --------

type Table struct {
	Items map[string]Node
}

func NewTable() *Table {
	return &Table{Items: make(map[string]Node)}
}

func (*Table) Kind() Kind { return KindTable }

// -------- Array --------

type Array struct {
	Elems []Node
}

func (*Array) Kind() Kind { return KindArray }

// =========================
// Public API
// =========================

var (
	ErrDuplicateKey  = errors.New("duplicate key")
	ErrUnexpectedEOF = errors.New("unexpected end of input")
	ErrBadToken      = errors.New("unexpected token")
)

// Parse tokenizes src and builds the root table. Any lexical or
// structural error aborts the whole parse; there is no partial result.
func Parse(src string) (*Table, error) {
	lx := NewLexer(src)
	var tokens []Token
	for {
		tok := lx.NextToken()
		if tok.Kind == TokenError {
			return nil, fmt.Errorf("toml: %w: %s", ErrBadToken, tok.Text)
		}
		tokens = append(tokens, tok)
		if tok.Kind == TokenEOF {
			break
		}
	}
	return ParseTokens(tokens)
}

// ParseTokens folds a token sequence into the root table. The builder
// keeps one mutable insertion path: empty means root, a [section]
// header replaces it, and a [[section]] header additionally appends a
// fresh table to the array at that path.
func ParseTokens(tokens []Token) (*Table, error) {
	root := NewTable()
	cur := &cursor{tokens: tokens}
	var path []string

	for {
		tok, ok := cur.next()
		if !ok {
			return root, nil
		}
		switch tok.Kind {
		case TokenKey:
			if err := parseKeyValue(cur, root, path, tok.Text); err != nil {
				return nil, err
			}
		case TokenLBracket:
			name, err := cur.expectSectionName()
			if err != nil {
				return nil, err
			}
			if err := cur.expect(TokenRBracket); err != nil {
				return nil, err
			}
			path = splitSectionName(name)
		case TokenDoubleLBracket:
			name, err := cur.expectSectionName()
			if err != nil {
				return nil, err
			}
			if err := cur.expect(TokenDoubleRBracket); err != nil {
				return nil, err
			}
			parts := splitSectionName(name)
			if err := appendArrayTable(root, parts); err != nil {
				return nil, err
			}
			path = parts
		case TokenEOF:
			return root, nil
		default:
			// Stray tokens outside a recognized production are skipped;
			// malformed sequences fail through the expect helpers above.
		}
	}
}

// =========================
// Token Cursor
// =========================

// cursor walks the token sequence and exposes only significant tokens,
// with single-token lookahead that does not advance.
type cursor struct {
	tokens []Token
	pos    int
}

func significant(tok Token) bool {
	switch tok.Kind {
	case TokenWhitespace, TokenNewline, TokenComment:
		return false
	}
	return true
}

func (c *cursor) next() (Token, bool) {
	for c.pos < len(c.tokens) {
		tok := c.tokens[c.pos]
		c.pos++
		if significant(tok) {
			return tok, true
		}
	}
	return Token{}, false
}

func (c *cursor) peek() (Token, bool) {
	for i := c.pos; i < len(c.tokens); i++ {
		if significant(c.tokens[i]) {
			return c.tokens[i], true
		}
	}
	return Token{}, false
}

func (c *cursor) expect(kind TokenKind) error {
	tok, ok := c.next()
	if !ok || tok.Kind == TokenEOF {
		return fmt.Errorf("toml: %w: expected %s", ErrUnexpectedEOF, kind)
	}
	if tok.Kind != kind {
		return fmt.Errorf("toml: %w: expected %s, got %s", ErrBadToken, kind, tok.Kind)
	}
	return nil
}

func (c *cursor) expectValue() (*Value, error) {
	tok, ok := c.next()
	if !ok || tok.Kind == TokenEOF {
		return nil, fmt.Errorf("toml: %w: expected %s", ErrUnexpectedEOF, TokenValue)
	}
	if tok.Kind != TokenValue {
		return nil, fmt.Errorf("toml: %w: expected %s, got %s", ErrBadToken, TokenValue, tok.Kind)
	}
	return tok.Value, nil
}

func (c *cursor) expectSectionName() (string, error) {
	tok, ok := c.next()
	if !ok || tok.Kind == TokenEOF {
		return "", fmt.Errorf("toml: %w: expected %s", ErrUnexpectedEOF, TokenSectionName)
	}
	if tok.Kind != TokenSectionName {
		return "", fmt.Errorf("toml: %w: expected %s, got %s", ErrBadToken, TokenSectionName, tok.Kind)
	}
	return tok.Text, nil
}

// =========================
// Tree Building
// =========================

func parseKeyValue(cur *cursor, root *Table, path []string, key string) error {
	if err := cur.expect(TokenEqual); err != nil {
		return err
	}

	// A left bracket after the equal sign starts an inline array,
	// anything else must be exactly one scalar value.
	peeked, ok := cur.peek()
	if !ok || peeked.Kind == TokenEOF {
		return fmt.Errorf("toml: %w: missing value for key %q", ErrUnexpectedEOF, key)
	}

	var node Node
	if peeked.Kind == TokenLBracket {
		arr, err := parseInlineArray(cur)
		if err != nil {
			return err
		}
		node = arr
	} else {
		v, err := cur.expectValue()
		if err != nil {
			return err
		}
		node = v
	}

	target, err := navigate(root, path)
	if err != nil {
		return err
	}
	return insert(target, key, node)
}

// parseInlineArray collects comma-separated scalar values up to the
// closing bracket.
func parseInlineArray(cur *cursor) (*Array, error) {
	if err := cur.expect(TokenLBracket); err != nil {
		return nil, err
	}
	arr := &Array{}
	for {
		tok, ok := cur.next()
		if !ok || tok.Kind == TokenEOF {
			return nil, fmt.Errorf("toml: %w: value list is not closed", ErrUnexpectedEOF)
		}
		switch tok.Kind {
		case TokenValue:
			arr.Elems = append(arr.Elems, tok.Value)
		case TokenComma:
			// Element separator.
		case TokenRBracket:
			return arr, nil
		default:
			return nil, fmt.Errorf("toml: %w: %s in value list", ErrBadToken, tok.Kind)
		}
	}
}

// navigate follows path from the root, creating intermediate tables on
// demand. A path segment holding an array of tables resolves to the
// last table appended to it.
func navigate(root *Table, path []string) (*Table, error) {
	t := root
	for _, part := range path {
		n, ok := t.Items[part]
		if !ok {
			next := NewTable()
			t.Items[part] = next
			t = next
			continue
		}
		switch v := n.(type) {
		case *Table:
			t = v
		case *Array:
			if len(v.Elems) == 0 {
				return nil, fmt.Errorf("toml: array %q has no tables", part)
			}
			last, ok := v.Elems[len(v.Elems)-1].(*Table)
			if !ok {
				return nil, fmt.Errorf("toml: array %q does not hold tables", part)
			}
			t = last
		default:
			return nil, fmt.Errorf("toml: key %q already defined and is not a table", part)
		}
	}
	return t, nil
}

// appendArrayTable creates or reuses the array at path and appends one
// new empty table to it. Key-values that follow a [[...]] header
// populate exactly that table.
func appendArrayTable(root *Table, path []string) error {
	if len(path) == 0 {
		return fmt.Errorf("toml: %w: empty section name", ErrBadToken)
	}
	parent, err := navigate(root, path[:len(path)-1])
	if err != nil {
		return err
	}
	last := path[len(path)-1]
	existing, ok := parent.Items[last]
	if !ok {
		arr := &Array{}
		arr.Elems = append(arr.Elems, NewTable())
		parent.Items[last] = arr
		return nil
	}
	arr, ok := existing.(*Array)
	if !ok {
		return fmt.Errorf("toml: key %q already defined and is not an array", last)
	}
	arr.Elems = append(arr.Elems, NewTable())
	return nil
}

// insert adds value under key. A repeated key in the same table is a
// hard error, never an overwrite.
func insert(t *Table, key string, value Node) error {
	if _, exists := t.Items[key]; exists {
		return fmt.Errorf("toml: %w %q", ErrDuplicateKey, key)
	}
	t.Items[key] = value
	return nil
}

func splitSectionName(s string) []string {
	parts := strings.Split(s, ".")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// =========================
// Safe Access Helpers
// =========================

// Get walks the tree along path segments, descending through tables.
func Get(root *Table, path ...string) (Node, bool) {
	var cur Node = root
	for _, p := range path {
		t, ok := cur.(*Table)
		if !ok {
			return nil, false
		}
		cur, ok = t.Items[p]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}
