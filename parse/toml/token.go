package toml

// TokenKind identifies the lexical class of a token.
type TokenKind uint8

const (
	TokenEOF TokenKind = iota
	TokenKey
	TokenEqual
	TokenValue
	TokenComma
	TokenLBracket
	TokenRBracket
	TokenDoubleLBracket
	TokenDoubleRBracket
	TokenSectionName
	TokenWhitespace
	TokenNewline
	TokenComment
	TokenError
)

var tokenKindNames = [...]string{
	TokenEOF:            "EOF",
	TokenKey:            "Key",
	TokenEqual:          "Equal",
	TokenValue:          "Value",
	TokenComma:          "Comma",
	TokenLBracket:       "LBracket",
	TokenRBracket:       "RBracket",
	TokenDoubleLBracket: "DoubleLBracket",
	TokenDoubleRBracket: "DoubleRBracket",
	TokenSectionName:    "SectionName",
	TokenWhitespace:     "Whitespace",
	TokenNewline:        "Newline",
	TokenComment:        "Comment",
	TokenError:          "Error",
}

func (k TokenKind) String() string {
	if int(k) < len(tokenKindNames) {
		return tokenKindNames[k]
	}
	return "Unknown"
}

// Token is one lexical unit of the input. Text carries the payload for
// key, section name, comment and error tokens; Value is set only for
// scalar value tokens.
type Token struct {
	Kind  TokenKind
	Text  string
	Value *Value
}

// ValueKind identifies the scalar type carried by a Value.
type ValueKind uint8

const (
	ValueString ValueKind = iota
	ValueInt
	ValueFloat
	ValueBool
	ValueDatetime
)

// Value is a scalar leaf. Datetime values keep the raw text; the tool
// never interprets timestamps beyond recognizing their shape.
type Value struct {
	Type ValueKind
	V    any
}

func (*Value) Kind() Kind { return KindValue }
