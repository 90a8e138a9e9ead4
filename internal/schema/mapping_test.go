package schema

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToEngineType(t *testing.T) {
	tests := map[string]struct {
		typ      Type
		attr     TypeAttributes
		expected EngineType
	}{
		"bool":            {typ: TypeBool, expected: EngineType{Kind: EngineBoolean}},
		"int8":            {typ: TypeInt8, expected: EngineType{Kind: EngineTinyInt}},
		"int16":           {typ: TypeInt16, expected: EngineType{Kind: EngineSmallInt}},
		"int32":           {typ: TypeInt32, expected: EngineType{Kind: EngineInt}},
		"int64":           {typ: TypeInt64, expected: EngineType{Kind: EngineBigInt}},
		"unixtime micros": {typ: TypeUnixtimeMicros, expected: EngineType{Kind: EngineTimestamp}},
		"float":           {typ: TypeFloat, expected: EngineType{Kind: EngineFloat}},
		"double":          {typ: TypeDouble, expected: EngineType{Kind: EngineDouble}},
		"string":          {typ: TypeString, expected: EngineType{Kind: EngineString}},
		"binary":          {typ: TypeBinary, expected: EngineType{Kind: EngineBinary}},
		"decimal carries precision and scale": {
			typ:      TypeDecimal,
			attr:     TypeAttributes{Precision: 10, Scale: 2},
			expected: EngineType{Kind: EngineDecimal, Precision: 10, Scale: 2},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			req := require.New(t)

			got, err := ToEngineType(tc.typ, tc.attr)
			req.NoError(err)
			req.Equal(tc.expected, got)

			// the mapping must be stable across calls
			again, err := ToEngineType(tc.typ, tc.attr)
			req.NoError(err)
			req.Equal(got, again)
		})
	}
}

func TestToEngineType_Unsupported(t *testing.T) {
	req := require.New(t)

	// a tag outside the recognized set, e.g. a hypothetical nested list type
	_, err := ToEngineType(Type(99), TypeAttributes{})
	req.Error(err)
	req.True(errors.Is(err, ErrUnsupportedType))
	req.Contains(err.Error(), "UNKNOWN(99)")
}

func TestParseType(t *testing.T) {
	req := require.New(t)

	typ, err := ParseType("decimal")
	req.NoError(err)
	req.Equal(TypeDecimal, typ)

	typ, err = ParseType("UNIXTIME_MICROS")
	req.NoError(err)
	req.Equal(TypeUnixtimeMicros, typ)

	_, err = ParseType("LIST")
	req.ErrorIs(err, ErrUnsupportedType)
	req.Contains(err.Error(), "LIST")
}

func TestEngineType_String(t *testing.T) {
	require.Equal(t, "decimal(10,2)",
		EngineType{Kind: EngineDecimal, Precision: 10, Scale: 2}.String())
	require.Equal(t, "bigint", EngineType{Kind: EngineBigInt}.String())
}
