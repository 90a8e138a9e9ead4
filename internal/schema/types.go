package schema

import "fmt"

// Type is a Tablet column type tag.
type Type int

const (
	TypeBool Type = iota
	TypeInt8
	TypeInt16
	TypeInt32
	TypeInt64
	TypeUnixtimeMicros
	TypeDecimal
	TypeFloat
	TypeDouble
	TypeString
	TypeBinary
)

func (t Type) String() string {
	switch t {
	case TypeBool:
		return "BOOL"
	case TypeInt8:
		return "INT8"
	case TypeInt16:
		return "INT16"
	case TypeInt32:
		return "INT32"
	case TypeInt64:
		return "INT64"
	case TypeUnixtimeMicros:
		return "UNIXTIME_MICROS"
	case TypeDecimal:
		return "DECIMAL"
	case TypeFloat:
		return "FLOAT"
	case TypeDouble:
		return "DOUBLE"
	case TypeString:
		return "STRING"
	case TypeBinary:
		return "BINARY"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", int(t))
	}
}

// TypeAttributes carries the parameters of a parameterized column type.
// Only decimal columns use them.
type TypeAttributes struct {
	Precision int
	Scale     int
}

// EngineKind is a query-engine primitive type tag.
type EngineKind int

const (
	EngineBoolean EngineKind = iota
	EngineTinyInt
	EngineSmallInt
	EngineInt
	EngineBigInt
	EngineTimestamp
	EngineDecimal
	EngineFloat
	EngineDouble
	EngineString
	EngineBinary
)

func (k EngineKind) String() string {
	switch k {
	case EngineBoolean:
		return "boolean"
	case EngineTinyInt:
		return "tinyint"
	case EngineSmallInt:
		return "smallint"
	case EngineInt:
		return "int"
	case EngineBigInt:
		return "bigint"
	case EngineTimestamp:
		return "timestamp"
	case EngineDecimal:
		return "decimal"
	case EngineFloat:
		return "float"
	case EngineDouble:
		return "double"
	case EngineString:
		return "string"
	case EngineBinary:
		return "binary"
	default:
		return "unknown"
	}
}
