package value

import (
	"bytes"
	"encoding/gob"
	"fmt"

	"github.com/shopspring/decimal"
)

// gobShape is Value's on-wire form for persistence (pkg/cache's
// sqlite-backed Cache). Only scalar kinds are ever persisted: parsed
// ASTs hold Value only inside ValueNode, and the parser never builds a
// ValueNode for a list, map, slice, or callable (those lower to
// CallNode/DictNode/LambdaNode instead), so there is nothing to encode
// for the composite kinds beyond rejecting them clearly.
type gobShape struct {
	Kind Kind
	B    bool
	N    string
	S    string
}

// GobEncode implements gob.GobEncoder.
func (v Value) GobEncode() ([]byte, error) {
	switch v.Kind {
	case KindNull, KindBool, KindNumber, KindString:
		var buf bytes.Buffer
		shape := gobShape{Kind: v.Kind, B: v.b, S: v.s}
		if v.Kind == KindNumber {
			shape.N = v.n.String()
		}
		if err := gob.NewEncoder(&buf).Encode(shape); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("value: cannot gob-encode a %s (only scalar literals are cacheable)", v.Kind)
	}
}

// GobDecode implements gob.GobDecoder.
func (v *Value) GobDecode(data []byte) error {
	var shape gobShape
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&shape); err != nil {
		return err
	}
	switch shape.Kind {
	case KindNull:
		*v = Null()
	case KindBool:
		*v = Bool(shape.B)
	case KindString:
		*v = String(shape.S)
	case KindNumber:
		d, err := decimal.NewFromString(shape.N)
		if err != nil {
			return err
		}
		*v = Number(d)
	default:
		return fmt.Errorf("value: cannot gob-decode kind %v", shape.Kind)
	}
	return nil
}
