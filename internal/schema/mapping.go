package schema

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedType reports a Tablet column type with no query-engine
// representation. A table carrying such a column cannot be mapped.
var ErrUnsupportedType = errors.New("unsupported column type")

// EngineType is a query-engine primitive type descriptor. Precision and
// Scale are meaningful only when Kind is EngineDecimal.
type EngineType struct {
	Kind      EngineKind
	Precision int
	Scale     int
}

func (e EngineType) String() string {
	if e.Kind == EngineDecimal {
		return fmt.Sprintf("decimal(%d,%d)", e.Precision, e.Scale)
	}
	return e.Kind.String()
}

// ToEngineType converts a Tablet column type to the corresponding
// query-engine type. The mapping is total over the recognized tags; decimal
// carries the supplied precision and scale through unchanged.
func ToEngineType(t Type, attr TypeAttributes) (EngineType, error) {
	switch t {
	case TypeBool:
		return EngineType{Kind: EngineBoolean}, nil
	case TypeInt8:
		return EngineType{Kind: EngineTinyInt}, nil
	case TypeInt16:
		return EngineType{Kind: EngineSmallInt}, nil
	case TypeInt32:
		return EngineType{Kind: EngineInt}, nil
	case TypeInt64:
		return EngineType{Kind: EngineBigInt}, nil
	case TypeUnixtimeMicros:
		return EngineType{Kind: EngineTimestamp}, nil
	case TypeDecimal:
		return EngineType{Kind: EngineDecimal, Precision: attr.Precision, Scale: attr.Scale}, nil
	case TypeFloat:
		return EngineType{Kind: EngineFloat}, nil
	case TypeDouble:
		return EngineType{Kind: EngineDouble}, nil
	case TypeString:
		return EngineType{Kind: EngineString}, nil
	case TypeBinary:
		return EngineType{Kind: EngineBinary}, nil
	default:
		return EngineType{}, fmt.Errorf("%w: %s", ErrUnsupportedType, t)
	}
}

// ParseType parses a Tablet column type name as it appears in table
// descriptors.
func ParseType(name string) (Type, error) {
	switch strings.ToUpper(name) {
	case "BOOL":
		return TypeBool, nil
	case "INT8":
		return TypeInt8, nil
	case "INT16":
		return TypeInt16, nil
	case "INT32":
		return TypeInt32, nil
	case "INT64":
		return TypeInt64, nil
	case "UNIXTIME_MICROS":
		return TypeUnixtimeMicros, nil
	case "DECIMAL":
		return TypeDecimal, nil
	case "FLOAT":
		return TypeFloat, nil
	case "DOUBLE":
		return TypeDouble, nil
	case "STRING":
		return TypeString, nil
	case "BINARY":
		return TypeBinary, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedType, name)
	}
}
