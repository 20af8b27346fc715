package toml

import (
	"strconv"
	"time"
	"unicode"
)

// =========================
// Lexer
// =========================

// Lexer turns UTF-8 input into a flat token sequence. It operates on
// Unicode scalars, so multi-byte characters are consumed as single units.
//
// The character classes for keys, bare values and section names overlap.
// Two pieces of per-line state resolve the ambiguity: once an equal sign
// has been seen on the current line, alphanumeric runs lex as values;
// once a bracket has been seen, they lex as section names. Both flags
// reset at every newline.
type Lexer struct {
	chars []rune
	pos   int

	equalsSeen  bool
	bracketSeen bool
}

func NewLexer(input string) *Lexer {
	return &Lexer{chars: []rune(input)}
}

func (l *Lexer) nextChar() (rune, bool) {
	if l.pos >= len(l.chars) {
		return 0, false
	}
	c := l.chars[l.pos]
	l.pos++
	return c, true
}

func (l *Lexer) peekChar() (rune, bool) {
	if l.pos >= len(l.chars) {
		return 0, false
	}
	return l.chars[l.pos], true
}

// NextToken returns the next token. Call repeatedly until TokenEOF.
func (l *Lexer) NextToken() Token {
	c, ok := l.nextChar()
	if !ok {
		return Token{Kind: TokenEOF}
	}

	if unicode.IsSpace(c) {
		if c == '\n' {
			// Line-local state resets at every newline.
			l.equalsSeen = false
			l.bracketSeen = false
			return Token{Kind: TokenNewline}
		}
		return Token{Kind: TokenWhitespace}
	}

	// Double brackets need one character of lookahead.
	if ac, ok := l.peekChar(); ok {
		if c == '[' && ac == '[' {
			l.bracketSeen = true
			l.nextChar()
			return Token{Kind: TokenDoubleLBracket}
		}
		if c == ']' && ac == ']' {
			l.nextChar()
			return Token{Kind: TokenDoubleRBracket}
		}
	}

	switch {
	case c == '=':
		l.equalsSeen = true
		return Token{Kind: TokenEqual}
	case c == ',':
		return Token{Kind: TokenComma}
	case c == '[':
		l.bracketSeen = true
		return Token{Kind: TokenLBracket}
	case c == ']':
		return Token{Kind: TokenRBracket}
	case c == '"':
		return l.lexString()
	case c == '#':
		return l.lexComment()
	case unicode.IsLetter(c) || unicode.IsDigit(c) || c == '_':
		return l.lexKeyOrValue(c)
	case (c == '-' || c == '+') && l.equalsSeen:
		// Signed numbers only appear on the value side of an equal sign.
		return l.lexValue(c)
	}

	return Token{Kind: TokenError, Text: "unknown token"}
}

// lexKeyOrValue classifies an alphanumeric run using the per-line state.
// Quoted strings never reach this path. A seen equal sign wins over a
// seen bracket: header lines never contain an equal sign, while value
// lines may open an inline array before a bare scalar.
func (l *Lexer) lexKeyOrValue(first rune) Token {
	if l.equalsSeen {
		return l.lexValue(first)
	}
	if l.bracketSeen {
		return l.lexSectionName(first)
	}
	return l.lexKey(first)
}

func (l *Lexer) lexKey(first rune) Token {
	key := []rune{first}
	for {
		c, ok := l.peekChar()
		if !ok || !(unicode.IsLetter(c) || unicode.IsDigit(c) || c == '_' || c == '.') {
			break
		}
		l.nextChar()
		key = append(key, c)
	}
	return Token{Kind: TokenKey, Text: string(key)}
}

func (l *Lexer) lexSectionName(first rune) Token {
	name := []rune{first}
	for {
		c, ok := l.peekChar()
		if !ok || !(unicode.IsLetter(c) || unicode.IsDigit(c) || c == '_' || c == '.') {
			break
		}
		l.nextChar()
		name = append(name, c)
	}
	return Token{Kind: TokenSectionName, Text: string(name)}
}

// lexValue consumes a bare value run and classifies it: boolean first,
// then integer, then float, then date. Anything else is a lexical error.
func (l *Lexer) lexValue(first rune) Token {
	run := []rune{first}
	for {
		c, ok := l.peekChar()
		if !ok || !(unicode.IsLetter(c) || unicode.IsDigit(c) || c == '.' || c == '_' || c == '-') {
			break
		}
		l.nextChar()
		run = append(run, c)
	}
	s := string(run)

	if s == "true" || s == "false" {
		return Token{Kind: TokenValue, Value: &Value{Type: ValueBool, V: s == "true"}}
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Token{Kind: TokenValue, Value: &Value{Type: ValueInt, V: i}}
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return Token{Kind: TokenValue, Value: &Value{Type: ValueFloat, V: f}}
	}
	if _, err := time.Parse("2006-01-02", s); err == nil {
		return Token{Kind: TokenValue, Value: &Value{Type: ValueDatetime, V: s}}
	}

	return Token{Kind: TokenError, Text: "invalid value data type"}
}

// lexString consumes a quoted value verbatim up to the closing quote.
// Strings are always string-typed, regardless of line state.
func (l *Lexer) lexString() Token {
	var text []rune
	for {
		c, ok := l.peekChar()
		if !ok {
			break
		}
		if c == '"' {
			l.nextChar()
			break
		}
		l.nextChar()
		text = append(text, c)
	}
	return Token{Kind: TokenValue, Value: &Value{Type: ValueString, V: string(text)}}
}

func (l *Lexer) lexComment() Token {
	var text []rune
	for {
		c, ok := l.peekChar()
		if !ok || c == '\n' {
			break
		}
		l.nextChar()
		text = append(text, c)
	}
	return Token{Kind: TokenComment, Text: string(text)}
}
