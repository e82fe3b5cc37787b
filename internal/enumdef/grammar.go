package enumdef

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var enumLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `//[^\n]*|/\*([^*]|\*+[^*/])*\*+/`},
	{Name: "String", Pattern: `"(\\.|[^"\\])*"`},
	{Name: "Char", Pattern: `'(\\.|[^'\\])*'`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Int", Pattern: `0[xX][0-9a-fA-F_]+|0[bB][01_]+|0[oO][0-7_]+|[0-9][0-9_]*`},
	{Name: "Operator", Pattern: `<<|>>|&\^|[-+*/%&|^!~]`},
	{Name: "Punct", Pattern: `[#\[\](){},=.;]`},
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
})

var parser = participle.MustBuild[File](
	participle.Lexer(enumLexer),
	participle.Elide("Whitespace", "Comment"),
	participle.UseLookahead(2),
)

// File is a sequence of enum definitions.
type File struct {
	Enums []*Enum `@@*`
}

type Enum struct {
	Pos    lexer.Position
	Attrs  []*Attr    `@@*`
	Pub    bool       `@"pub"?`
	Name   Ident      `"enum" @@ "{"`
	Values []*Variant `( @@ ( "," @@ )* ","? )? "}"`
}

type Attr struct {
	Pos  lexer.Position
	Name string   `"#" "[" @Ident`
	Args []string `( "(" ( @Ident ( "," @Ident )* )? ")" )? "]"`
}

type Variant struct {
	Pos     lexer.Position
	Attrs   []*Attr `@@*`
	Name    Ident   `@@`
	Payload string  `( "(" @Ident ")" )?`
	Value   *Expr   `( "=" @@ )?`
}

type Ident struct {
	Pos   lexer.Position
	Value string `@Ident`
}

// Expr is an explicit discriminant. Only its extent is parsed; the source
// text in between is handed to the Go expression parser.
type Expr struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Terms  []*Term `@@+`
}

type Term struct {
	Group *Expr  `  "(" @@ ")"`
	Token string `| @( Ident | Int | String | Char | Operator | "." )`
}
