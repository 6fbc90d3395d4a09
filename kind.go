package recshape

import (
	"fmt"
	"time"

	json "github.com/goccy/go-json"
)

// Kind tags the runtime classification of a raw or bound value. Every issue
// reports the received kind explicitly instead of leaking Go type names.
type Kind int

const (
	KindUnknown Kind = iota
	KindNull
	KindString
	KindNumber
	KindBool
	KindTimestamp
	KindMapping
	KindSequence
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindTimestamp:
		return "timestamp"
	case KindMapping:
		return "mapping"
	case KindSequence:
		return "sequence"
	default:
		return "unknown"
	}
}

// KindOf classifies a runtime value. JSON decoding yields json.Number when
// UseNumber is enabled and float64 otherwise; both classify as number. YAML
// decoding may yield map[any]any, which still classifies as mapping.
func KindOf(v any) Kind {
	switch v.(type) {
	case nil:
		return KindNull
	case string:
		return KindString
	case bool:
		return KindBool
	case time.Time:
		return KindTimestamp
	case json.Number, float64, float32, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return KindNumber
	case map[string]any, map[any]any, map[string]string:
		return KindMapping
	case []any, []string:
		return KindSequence
	default:
		return KindUnknown
	}
}

// Repr renders a value as "kind(value)" for issue messages, e.g. "number(123)".
func Repr(v any) string {
	k := KindOf(v)
	switch k {
	case KindNull:
		return "null"
	case KindString:
		return fmt.Sprintf("string(%q)", v)
	case KindTimestamp:
		t := v.(time.Time)
		return "timestamp(" + t.Format(time.RFC3339Nano) + ")"
	default:
		return fmt.Sprintf("%s(%v)", k, v)
	}
}
