package step

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/stratumcad/ifcgen/core/errors"
)

// Entity is one parsed DATA-section entity instance.
type Entity struct {
	// ID is the integer entity identifier (#N).
	ID int

	// Type is the schema keyword (e.g. "IFCWALL").
	Type string

	// Refs lists every entity reference appearing in the attribute list,
	// in source order, including references nested in lists and typed
	// values.
	Refs []int
}

// File is a parsed ISO-10303-21 physical file.
type File struct {
	// Schema is the declared schema identifier from FILE_SCHEMA
	// (e.g. "IFC4"), empty if the header carries none.
	Schema string

	// Entities are the DATA-section entities in source order.
	Entities []Entity
}

// fileGrammar is the participle grammar for a STEP physical file.
//
//nolint:govet // participle grammar tags are not standard struct tags
type fileGrammar struct {
	Header   []*recordPart `"ISO-10303-21" ";" "HEADER" ";" @@* "ENDSEC" ";"`
	Entities []*entityPart `"DATA" ";" @@* "ENDSEC" ";" "END-ISO-10303-21" ";"`
}

//nolint:govet // participle grammar tags are not standard struct tags
type recordPart struct {
	Name string       `@Keyword`
	Args []*valuePart `"(" ( @@ ( "," @@ )* )? ")" ";"`
}

//nolint:govet // participle grammar tags are not standard struct tags
type entityPart struct {
	ID   int          `"#" @Number "="`
	Type string       `@Keyword`
	Args []*valuePart `"(" ( @@ ( "," @@ )* )? ")" ";"`
}

//nolint:govet // participle grammar tags are not standard struct tags
type valuePart struct {
	Str   *string      `  @String`
	Enum  *string      `| @Enum`
	Ref   *int         `| "#" @Number`
	Num   *float64     `| @Number`
	Null  bool         `| @"$"`
	Star  bool         `| @"*"`
	Typed *typedPart   `| @@`
	List  []*valuePart `| "(" ( @@ ( "," @@ )* )? ")"`
}

//nolint:govet // participle grammar tags are not standard struct tags
type typedPart struct {
	Name string       `@Keyword`
	Args []*valuePart `"(" ( @@ ( "," @@ )* )? ")"`
}

// stepLexer tokenizes STEP physical-file text.
// Note: Enum requires a leading letter so real tokens like "0." never
// lex as enumerations; Keyword admits "-" for the ISO section markers.
var stepLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "String", Pattern: `'(?:[^']|'')*'`},
	{Name: "Enum", Pattern: `\.[A-Z_][A-Z0-9_]*\.`},
	{Name: "Number", Pattern: `[-+]?[0-9]+(?:\.[0-9]*)?(?:[eE][-+]?[0-9]+)?`},
	{Name: "Keyword", Pattern: `[A-Z][A-Z0-9_-]*`},
	{Name: "Punct", Pattern: `[#=(),;$*]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var stepParser = participle.MustBuild[fileGrammar](
	participle.Lexer(stepLexer),
	participle.Elide("Whitespace"),
	participle.UseLookahead(2),
)

// Parse parses a complete ISO-10303-21 physical file. It enforces only
// the token grammar and section structure; referential checks are the
// caller's concern (see core/verify).
func Parse(content string) (*File, error) {
	parsed, err := stepParser.ParseString("", content)
	if err != nil {
		return nil, errors.NewParse("STEP", "", err.Error())
	}

	f := &File{}
	for _, rec := range parsed.Header {
		if rec.Name == "FILE_SCHEMA" && len(rec.Args) == 1 {
			if list := rec.Args[0].List; len(list) > 0 && list[0].Str != nil {
				f.Schema = DecodeString(*list[0].Str)
			}
		}
	}

	f.Entities = make([]Entity, 0, len(parsed.Entities))
	for _, e := range parsed.Entities {
		ent := Entity{ID: e.ID, Type: e.Type}
		for _, arg := range e.Args {
			ent.Refs = collectRefs(arg, ent.Refs)
		}
		f.Entities = append(f.Entities, ent)
	}
	return f, nil
}

// collectRefs walks a parsed value and appends every entity reference.
func collectRefs(v *valuePart, refs []int) []int {
	switch {
	case v.Ref != nil:
		refs = append(refs, *v.Ref)
	case v.Typed != nil:
		for _, arg := range v.Typed.Args {
			refs = collectRefs(arg, refs)
		}
	case v.List != nil:
		for _, item := range v.List {
			refs = collectRefs(item, refs)
		}
	}
	return refs
}

// DecodeString strips the quotes from a STEP string literal and undoes
// quote doubling. The inverse of EncodeString.
func DecodeString(token string) string {
	s := strings.TrimSuffix(strings.TrimPrefix(token, "'"), "'")
	return strings.ReplaceAll(s, "''", "'")
}
