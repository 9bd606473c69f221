// Package step provides the lexical layer of ISO-10303-21 ("STEP")
// physical files: encoding of typed values into STEP tokens and a parser
// for entity lines. Entity semantics live in core/ifc; this package only
// knows the token grammar.
package step

import (
	"strconv"
	"strings"
)

// Null is the STEP token for an unset attribute.
const Null = "$"

// Derived is the STEP token for an attribute derived from a supertype.
const Derived = "*"

// EncodeString encodes s as a STEP string literal: single-quoted with
// embedded single quotes doubled.
func EncodeString(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// EncodeReal encodes a real number. STEP requires reals to be lexically
// distinguishable from integers, so the token always contains a decimal
// point (integral values render as "N.0").
func EncodeReal(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// EncodeInt encodes an integer value (used for attributes typed INTEGER,
// e.g. owner-history timestamps).
func EncodeInt(n int64) string {
	return strconv.FormatInt(n, 10)
}

// EncodeBool encodes a STEP BOOLEAN as .T. or .F.
func EncodeBool(b bool) string {
	if b {
		return ".T."
	}
	return ".F."
}

// EncodeEnum encodes an enumeration value wrapped in dots. Idempotent:
// an already-wrapped value is returned unchanged.
func EncodeEnum(v string) string {
	if strings.HasPrefix(v, ".") && strings.HasSuffix(v, ".") && len(v) >= 2 {
		return v
	}
	return "." + v + "."
}

// EncodeRef encodes an entity reference as #N.
func EncodeRef(id int) string {
	return "#" + strconv.Itoa(id)
}

// EncodeRefList encodes a list of entity references as (#a,#b,...).
func EncodeRefList(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = EncodeRef(id)
	}
	return EncodeList(parts)
}

// EncodeRealList encodes a list of reals as (x.,y.,...).
func EncodeRealList(vals []float64) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = EncodeReal(v)
	}
	return EncodeList(parts)
}

// EncodeList joins already-encoded tokens into a parenthesized tuple.
func EncodeList(tokens []string) string {
	return "(" + strings.Join(tokens, ",") + ")"
}

// EncodeTyped encodes a typed ("select") value such as
// IFCPLANEANGLEMEASURE(0.5) or IFCTEXT('x'). The inner token must already
// be encoded.
func EncodeTyped(typeName, token string) string {
	return typeName + "(" + token + ")"
}

// EncodeOptionalString encodes s, or the null token when s is empty.
func EncodeOptionalString(s string) string {
	if s == "" {
		return Null
	}
	return EncodeString(s)
}
