//                           _       _
// __      _____  __ ___   ___  __ _| |_ ___
// \ \ /\ / / _ \/ _` \ \ / / |/ _` | __/ _ \
//  \ V  V /  __/ (_| |\ V /| | (_| | ||  __/
//   \_/\_/ \___|\__,_| \_/ |_|\__,_|\__\___|
//
//  Copyright © 2016 - 2024 Weaviate B.V. All rights reserved.
//
//  CONTACT: hello@weaviate.io
//

package protocol

import (
	"math"

	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/types/known/structpb"
)

// ConsistencyLevel mirrors weaviate.v1.ConsistencyLevel. The UNSPECIFIED
// value exists for forward-compatible decoding only and is never produced by
// the query builder.
type ConsistencyLevel int32

const (
	ConsistencyLevel_CONSISTENCY_LEVEL_UNSPECIFIED ConsistencyLevel = 0
	ConsistencyLevel_CONSISTENCY_LEVEL_ONE         ConsistencyLevel = 1
	ConsistencyLevel_CONSISTENCY_LEVEL_QUORUM      ConsistencyLevel = 2
	ConsistencyLevel_CONSISTENCY_LEVEL_ALL         ConsistencyLevel = 3
)

func (l ConsistencyLevel) String() string {
	switch l {
	case ConsistencyLevel_CONSISTENCY_LEVEL_ONE:
		return "ONE"
	case ConsistencyLevel_CONSISTENCY_LEVEL_QUORUM:
		return "QUORUM"
	case ConsistencyLevel_CONSISTENCY_LEVEL_ALL:
		return "ALL"
	default:
		return "UNSPECIFIED"
	}
}

type Filters_Operator int32

const (
	Filters_OPERATOR_UNSPECIFIED        Filters_Operator = 0
	Filters_OPERATOR_EQUAL              Filters_Operator = 1
	Filters_OPERATOR_NOT_EQUAL          Filters_Operator = 2
	Filters_OPERATOR_GREATER_THAN       Filters_Operator = 3
	Filters_OPERATOR_GREATER_THAN_EQUAL Filters_Operator = 4
	Filters_OPERATOR_LESS_THAN          Filters_Operator = 5
	Filters_OPERATOR_LESS_THAN_EQUAL    Filters_Operator = 6
	Filters_OPERATOR_AND                Filters_Operator = 7
	Filters_OPERATOR_OR                 Filters_Operator = 8
	Filters_OPERATOR_WITHIN_GEO_RANGE   Filters_Operator = 9
	Filters_OPERATOR_LIKE               Filters_Operator = 10
	Filters_OPERATOR_IS_NULL            Filters_Operator = 11
	Filters_OPERATOR_CONTAINS_ANY       Filters_Operator = 12
	Filters_OPERATOR_CONTAINS_ALL       Filters_Operator = 13
)

// Filters is the recursive wire form of a filter expression. Leaf clauses
// carry exactly one test value via the TestValue oneof; AND/OR clauses nest
// their operands in Filters.
type Filters struct {
	Operator  Filters_Operator
	On        []string
	Filters   []*Filters
	TestValue isFilters_TestValue
}

type isFilters_TestValue interface {
	isFilters_TestValue()
}

type Filters_ValueText struct{ ValueText string }

type Filters_ValueInt struct{ ValueInt int64 }

type Filters_ValueBoolean struct{ ValueBoolean bool }

type Filters_ValueNumber struct{ ValueNumber float64 }

type Filters_ValueTextArray struct{ ValueTextArray *TextArray }

type Filters_ValueIntArray struct{ ValueIntArray *IntArray }

type Filters_ValueBooleanArray struct{ ValueBooleanArray *BooleanArray }

type Filters_ValueNumberArray struct{ ValueNumberArray *NumberArray }

type Filters_ValueGeo struct{ ValueGeo *GeoCoordinatesFilter }

func (*Filters_ValueText) isFilters_TestValue()         {}
func (*Filters_ValueInt) isFilters_TestValue()          {}
func (*Filters_ValueBoolean) isFilters_TestValue()      {}
func (*Filters_ValueNumber) isFilters_TestValue()       {}
func (*Filters_ValueTextArray) isFilters_TestValue()    {}
func (*Filters_ValueIntArray) isFilters_TestValue()     {}
func (*Filters_ValueBooleanArray) isFilters_TestValue() {}
func (*Filters_ValueNumberArray) isFilters_TestValue()  {}
func (*Filters_ValueGeo) isFilters_TestValue()          {}

func (m *Filters) marshal(b []byte) ([]byte, error) {
	var err error
	b = appendEnum(b, 1, int32(m.Operator))
	b = appendRepeatedString(b, 2, m.On)
	for _, f := range m.Filters {
		if b, err = appendMessage(b, 3, f); err != nil {
			return nil, err
		}
	}
	switch v := m.TestValue.(type) {
	case nil:
	case *Filters_ValueText:
		b = protowire.AppendTag(b, 4, protowire.BytesType)
		b = protowire.AppendString(b, v.ValueText)
	case *Filters_ValueInt:
		b = protowire.AppendTag(b, 5, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(v.ValueInt))
	case *Filters_ValueBoolean:
		b = protowire.AppendTag(b, 6, protowire.VarintType)
		b = protowire.AppendVarint(b, protowire.EncodeBool(v.ValueBoolean))
	case *Filters_ValueNumber:
		b = protowire.AppendTag(b, 7, protowire.Fixed64Type)
		b = protowire.AppendFixed64(b, math.Float64bits(v.ValueNumber))
	case *Filters_ValueTextArray:
		if b, err = appendMessage(b, 9, v.ValueTextArray); err != nil {
			return nil, err
		}
	case *Filters_ValueIntArray:
		if b, err = appendMessage(b, 10, v.ValueIntArray); err != nil {
			return nil, err
		}
	case *Filters_ValueBooleanArray:
		if b, err = appendMessage(b, 11, v.ValueBooleanArray); err != nil {
			return nil, err
		}
	case *Filters_ValueNumberArray:
		if b, err = appendMessage(b, 12, v.ValueNumberArray); err != nil {
			return nil, err
		}
	case *Filters_ValueGeo:
		if b, err = appendMessage(b, 13, v.ValueGeo); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (m *Filters) unmarshal(b []byte) error {
	for len(b) > 0 {
		num, typ, n, err := consumeTag(b)
		if err != nil {
			return err
		}
		b = b[n:]
		switch num {
		case 1:
			v, n, err := consumeVarint(b)
			if err != nil {
				return err
			}
			m.Operator = Filters_Operator(v)
			b = b[n:]
		case 2:
			v, n, err := consumeString(b)
			if err != nil {
				return err
			}
			m.On = append(m.On, v)
			b = b[n:]
		case 3:
			sub := &Filters{}
			n, err := consumeMessage(b, sub)
			if err != nil {
				return err
			}
			m.Filters = append(m.Filters, sub)
			b = b[n:]
		case 4:
			v, n, err := consumeString(b)
			if err != nil {
				return err
			}
			m.TestValue = &Filters_ValueText{ValueText: v}
			b = b[n:]
		case 5:
			v, n, err := consumeVarint(b)
			if err != nil {
				return err
			}
			m.TestValue = &Filters_ValueInt{ValueInt: int64(v)}
			b = b[n:]
		case 6:
			v, n, err := consumeBool(b)
			if err != nil {
				return err
			}
			m.TestValue = &Filters_ValueBoolean{ValueBoolean: v}
			b = b[n:]
		case 7:
			v, n, err := consumeDouble(b)
			if err != nil {
				return err
			}
			m.TestValue = &Filters_ValueNumber{ValueNumber: v}
			b = b[n:]
		case 9:
			sub := &TextArray{}
			n, err := consumeMessage(b, sub)
			if err != nil {
				return err
			}
			m.TestValue = &Filters_ValueTextArray{ValueTextArray: sub}
			b = b[n:]
		case 10:
			sub := &IntArray{}
			n, err := consumeMessage(b, sub)
			if err != nil {
				return err
			}
			m.TestValue = &Filters_ValueIntArray{ValueIntArray: sub}
			b = b[n:]
		case 11:
			sub := &BooleanArray{}
			n, err := consumeMessage(b, sub)
			if err != nil {
				return err
			}
			m.TestValue = &Filters_ValueBooleanArray{ValueBooleanArray: sub}
			b = b[n:]
		case 12:
			sub := &NumberArray{}
			n, err := consumeMessage(b, sub)
			if err != nil {
				return err
			}
			m.TestValue = &Filters_ValueNumberArray{ValueNumberArray: sub}
			b = b[n:]
		case 13:
			sub := &GeoCoordinatesFilter{}
			n, err := consumeMessage(b, sub)
			if err != nil {
				return err
			}
			m.TestValue = &Filters_ValueGeo{ValueGeo: sub}
			b = b[n:]
		default:
			n, err := skipField(b, num, typ)
			if err != nil {
				return err
			}
			b = b[n:]
		}
	}
	return nil
}

type TextArray struct {
	Values []string
}

func (m *TextArray) marshal(b []byte) ([]byte, error) {
	return appendRepeatedString(b, 1, m.Values), nil
}

func (m *TextArray) unmarshal(b []byte) error {
	for len(b) > 0 {
		num, typ, n, err := consumeTag(b)
		if err != nil {
			return err
		}
		b = b[n:]
		if num == 1 {
			v, n, err := consumeString(b)
			if err != nil {
				return err
			}
			m.Values = append(m.Values, v)
			b = b[n:]
			continue
		}
		n, err = skipField(b, num, typ)
		if err != nil {
			return err
		}
		b = b[n:]
	}
	return nil
}

type IntArray struct {
	Values []int64
}

func (m *IntArray) marshal(b []byte) ([]byte, error) {
	return appendPackedInt64(b, 1, m.Values), nil
}

func (m *IntArray) unmarshal(b []byte) error {
	for len(b) > 0 {
		num, typ, n, err := consumeTag(b)
		if err != nil {
			return err
		}
		b = b[n:]
		if num == 1 {
			var err error
			m.Values, n, err = consumeRepeatedInt64(b, typ, m.Values)
			if err != nil {
				return err
			}
			b = b[n:]
			continue
		}
		n, err = skipField(b, num, typ)
		if err != nil {
			return err
		}
		b = b[n:]
	}
	return nil
}

type NumberArray struct {
	Values []float64
}

func (m *NumberArray) marshal(b []byte) ([]byte, error) {
	return appendPackedDouble(b, 1, m.Values), nil
}

func (m *NumberArray) unmarshal(b []byte) error {
	for len(b) > 0 {
		num, typ, n, err := consumeTag(b)
		if err != nil {
			return err
		}
		b = b[n:]
		if num == 1 {
			var err error
			m.Values, n, err = consumeRepeatedDouble(b, typ, m.Values)
			if err != nil {
				return err
			}
			b = b[n:]
			continue
		}
		n, err = skipField(b, num, typ)
		if err != nil {
			return err
		}
		b = b[n:]
	}
	return nil
}

type BooleanArray struct {
	Values []bool
}

func (m *BooleanArray) marshal(b []byte) ([]byte, error) {
	return appendPackedBool(b, 1, m.Values), nil
}

func (m *BooleanArray) unmarshal(b []byte) error {
	for len(b) > 0 {
		num, typ, n, err := consumeTag(b)
		if err != nil {
			return err
		}
		b = b[n:]
		if num == 1 {
			var err error
			m.Values, n, err = consumeRepeatedBool(b, typ, m.Values)
			if err != nil {
				return err
			}
			b = b[n:]
			continue
		}
		n, err = skipField(b, num, typ)
		if err != nil {
			return err
		}
		b = b[n:]
	}
	return nil
}

// GeoCoordinatesFilter filters objects within Distance of a point.
type GeoCoordinatesFilter struct {
	Latitude  float32
	Longitude float32
	Distance  float32
}

func (m *GeoCoordinatesFilter) marshal(b []byte) ([]byte, error) {
	b = appendFloat(b, 1, m.Latitude)
	b = appendFloat(b, 2, m.Longitude)
	b = appendFloat(b, 3, m.Distance)
	return b, nil
}

func (m *GeoCoordinatesFilter) unmarshal(b []byte) error {
	for len(b) > 0 {
		num, typ, n, err := consumeTag(b)
		if err != nil {
			return err
		}
		b = b[n:]
		switch num {
		case 1:
			v, n, err := consumeFloat(b)
			if err != nil {
				return err
			}
			m.Latitude = v
			b = b[n:]
		case 2:
			v, n, err := consumeFloat(b)
			if err != nil {
				return err
			}
			m.Longitude = v
			b = b[n:]
		case 3:
			v, n, err := consumeFloat(b)
			if err != nil {
				return err
			}
			m.Distance = v
			b = b[n:]
		default:
			n, err := skipField(b, num, typ)
			if err != nil {
				return err
			}
			b = b[n:]
		}
	}
	return nil
}

// Vectors is a single named vector in a reply, packed as little-endian
// float32 bytes.
type Vectors struct {
	Name        string
	Index       uint64
	VectorBytes []byte
}

func (m *Vectors) marshal(b []byte) ([]byte, error) {
	b = appendString(b, 1, m.Name)
	if m.Index != 0 {
		b = protowire.AppendTag(b, 2, protowire.VarintType)
		b = protowire.AppendVarint(b, m.Index)
	}
	b = appendBytes(b, 3, m.VectorBytes)
	return b, nil
}

func (m *Vectors) unmarshal(b []byte) error {
	for len(b) > 0 {
		num, typ, n, err := consumeTag(b)
		if err != nil {
			return err
		}
		b = b[n:]
		switch num {
		case 1:
			v, n, err := consumeString(b)
			if err != nil {
				return err
			}
			m.Name = v
			b = b[n:]
		case 2:
			v, n, err := consumeVarint(b)
			if err != nil {
				return err
			}
			m.Index = v
			b = b[n:]
		case 3:
			v, n, err := consumeBytes(b)
			if err != nil {
				return err
			}
			m.VectorBytes = v
			b = b[n:]
		default:
			n, err := skipField(b, num, typ)
			if err != nil {
				return err
			}
			b = b[n:]
		}
	}
	return nil
}

// Deprecated typed array property containers. The builder never emits them,
// but replies from servers speaking the pre-Properties encoding still carry
// them and they must decode correctly.

type NumberArrayProperties struct {
	Values      []float64 // Deprecated: superseded by ValuesBytes.
	PropName    string
	ValuesBytes []byte
}

func (m *NumberArrayProperties) marshal(b []byte) ([]byte, error) {
	b = appendPackedDouble(b, 1, m.Values)
	b = appendString(b, 2, m.PropName)
	b = appendBytes(b, 3, m.ValuesBytes)
	return b, nil
}

func (m *NumberArrayProperties) unmarshal(b []byte) error {
	for len(b) > 0 {
		num, typ, n, err := consumeTag(b)
		if err != nil {
			return err
		}
		b = b[n:]
		switch num {
		case 1:
			var err error
			m.Values, n, err = consumeRepeatedDouble(b, typ, m.Values)
			if err != nil {
				return err
			}
			b = b[n:]
		case 2:
			v, n, err := consumeString(b)
			if err != nil {
				return err
			}
			m.PropName = v
			b = b[n:]
		case 3:
			v, n, err := consumeBytes(b)
			if err != nil {
				return err
			}
			m.ValuesBytes = v
			b = b[n:]
		default:
			n, err := skipField(b, num, typ)
			if err != nil {
				return err
			}
			b = b[n:]
		}
	}
	return nil
}

type IntArrayProperties struct {
	Values   []int64
	PropName string
}

func (m *IntArrayProperties) marshal(b []byte) ([]byte, error) {
	b = appendPackedInt64(b, 1, m.Values)
	b = appendString(b, 2, m.PropName)
	return b, nil
}

func (m *IntArrayProperties) unmarshal(b []byte) error {
	for len(b) > 0 {
		num, typ, n, err := consumeTag(b)
		if err != nil {
			return err
		}
		b = b[n:]
		switch num {
		case 1:
			var err error
			m.Values, n, err = consumeRepeatedInt64(b, typ, m.Values)
			if err != nil {
				return err
			}
			b = b[n:]
		case 2:
			v, n, err := consumeString(b)
			if err != nil {
				return err
			}
			m.PropName = v
			b = b[n:]
		default:
			n, err := skipField(b, num, typ)
			if err != nil {
				return err
			}
			b = b[n:]
		}
	}
	return nil
}

type TextArrayProperties struct {
	Values   []string
	PropName string
}

func (m *TextArrayProperties) marshal(b []byte) ([]byte, error) {
	b = appendRepeatedString(b, 1, m.Values)
	b = appendString(b, 2, m.PropName)
	return b, nil
}

func (m *TextArrayProperties) unmarshal(b []byte) error {
	for len(b) > 0 {
		num, typ, n, err := consumeTag(b)
		if err != nil {
			return err
		}
		b = b[n:]
		switch num {
		case 1:
			v, n, err := consumeString(b)
			if err != nil {
				return err
			}
			m.Values = append(m.Values, v)
			b = b[n:]
		case 2:
			v, n, err := consumeString(b)
			if err != nil {
				return err
			}
			m.PropName = v
			b = b[n:]
		default:
			n, err := skipField(b, num, typ)
			if err != nil {
				return err
			}
			b = b[n:]
		}
	}
	return nil
}

type BooleanArrayProperties struct {
	Values   []bool
	PropName string
}

func (m *BooleanArrayProperties) marshal(b []byte) ([]byte, error) {
	b = appendPackedBool(b, 1, m.Values)
	b = appendString(b, 2, m.PropName)
	return b, nil
}

func (m *BooleanArrayProperties) unmarshal(b []byte) error {
	for len(b) > 0 {
		num, typ, n, err := consumeTag(b)
		if err != nil {
			return err
		}
		b = b[n:]
		switch num {
		case 1:
			var err error
			m.Values, n, err = consumeRepeatedBool(b, typ, m.Values)
			if err != nil {
				return err
			}
			b = b[n:]
		case 2:
			v, n, err := consumeString(b)
			if err != nil {
				return err
			}
			m.PropName = v
			b = b[n:]
		default:
			n, err := skipField(b, num, typ)
			if err != nil {
				return err
			}
			b = b[n:]
		}
	}
	return nil
}

// ObjectPropertiesValue carries a nested object in the deprecated encoding:
// primitive members in a Struct plus typed array containers, recursively.
type ObjectPropertiesValue struct {
	NonRefProperties       *structpb.Struct
	NumberArrayProperties  []*NumberArrayProperties
	IntArrayProperties     []*IntArrayProperties
	TextArrayProperties    []*TextArrayProperties
	BooleanArrayProperties []*BooleanArrayProperties
	ObjectProperties       []*ObjectProperties
	ObjectArrayProperties  []*ObjectArrayProperties
}

func (m *ObjectPropertiesValue) marshal(b []byte) ([]byte, error) {
	var err error
	if m.NonRefProperties != nil {
		if b, err = appendProto(b, 1, m.NonRefProperties); err != nil {
			return nil, err
		}
	}
	for _, p := range m.NumberArrayProperties {
		if b, err = appendMessage(b, 2, p); err != nil {
			return nil, err
		}
	}
	for _, p := range m.IntArrayProperties {
		if b, err = appendMessage(b, 3, p); err != nil {
			return nil, err
		}
	}
	for _, p := range m.TextArrayProperties {
		if b, err = appendMessage(b, 4, p); err != nil {
			return nil, err
		}
	}
	for _, p := range m.BooleanArrayProperties {
		if b, err = appendMessage(b, 5, p); err != nil {
			return nil, err
		}
	}
	for _, p := range m.ObjectProperties {
		if b, err = appendMessage(b, 6, p); err != nil {
			return nil, err
		}
	}
	for _, p := range m.ObjectArrayProperties {
		if b, err = appendMessage(b, 7, p); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (m *ObjectPropertiesValue) unmarshal(b []byte) error {
	for len(b) > 0 {
		num, typ, n, err := consumeTag(b)
		if err != nil {
			return err
		}
		b = b[n:]
		switch num {
		case 1:
			m.NonRefProperties = &structpb.Struct{}
			n, err := consumeProto(b, m.NonRefProperties)
			if err != nil {
				return err
			}
			b = b[n:]
		case 2:
			sub := &NumberArrayProperties{}
			n, err := consumeMessage(b, sub)
			if err != nil {
				return err
			}
			m.NumberArrayProperties = append(m.NumberArrayProperties, sub)
			b = b[n:]
		case 3:
			sub := &IntArrayProperties{}
			n, err := consumeMessage(b, sub)
			if err != nil {
				return err
			}
			m.IntArrayProperties = append(m.IntArrayProperties, sub)
			b = b[n:]
		case 4:
			sub := &TextArrayProperties{}
			n, err := consumeMessage(b, sub)
			if err != nil {
				return err
			}
			m.TextArrayProperties = append(m.TextArrayProperties, sub)
			b = b[n:]
		case 5:
			sub := &BooleanArrayProperties{}
			n, err := consumeMessage(b, sub)
			if err != nil {
				return err
			}
			m.BooleanArrayProperties = append(m.BooleanArrayProperties, sub)
			b = b[n:]
		case 6:
			sub := &ObjectProperties{}
			n, err := consumeMessage(b, sub)
			if err != nil {
				return err
			}
			m.ObjectProperties = append(m.ObjectProperties, sub)
			b = b[n:]
		case 7:
			sub := &ObjectArrayProperties{}
			n, err := consumeMessage(b, sub)
			if err != nil {
				return err
			}
			m.ObjectArrayProperties = append(m.ObjectArrayProperties, sub)
			b = b[n:]
		default:
			n, err := skipField(b, num, typ)
			if err != nil {
				return err
			}
			b = b[n:]
		}
	}
	return nil
}

type ObjectProperties struct {
	Value    *ObjectPropertiesValue
	PropName string
}

func (m *ObjectProperties) marshal(b []byte) ([]byte, error) {
	var err error
	if m.Value != nil {
		if b, err = appendMessage(b, 1, m.Value); err != nil {
			return nil, err
		}
	}
	b = appendString(b, 2, m.PropName)
	return b, nil
}

func (m *ObjectProperties) unmarshal(b []byte) error {
	for len(b) > 0 {
		num, typ, n, err := consumeTag(b)
		if err != nil {
			return err
		}
		b = b[n:]
		switch num {
		case 1:
			m.Value = &ObjectPropertiesValue{}
			n, err := consumeMessage(b, m.Value)
			if err != nil {
				return err
			}
			b = b[n:]
		case 2:
			v, n, err := consumeString(b)
			if err != nil {
				return err
			}
			m.PropName = v
			b = b[n:]
		default:
			n, err := skipField(b, num, typ)
			if err != nil {
				return err
			}
			b = b[n:]
		}
	}
	return nil
}

type ObjectArrayProperties struct {
	Values   []*ObjectPropertiesValue
	PropName string
}

func (m *ObjectArrayProperties) marshal(b []byte) ([]byte, error) {
	var err error
	for _, v := range m.Values {
		if b, err = appendMessage(b, 1, v); err != nil {
			return nil, err
		}
	}
	b = appendString(b, 2, m.PropName)
	return b, nil
}

func (m *ObjectArrayProperties) unmarshal(b []byte) error {
	for len(b) > 0 {
		num, typ, n, err := consumeTag(b)
		if err != nil {
			return err
		}
		b = b[n:]
		switch num {
		case 1:
			sub := &ObjectPropertiesValue{}
			n, err := consumeMessage(b, sub)
			if err != nil {
				return err
			}
			m.Values = append(m.Values, sub)
			b = b[n:]
		case 2:
			v, n, err := consumeString(b)
			if err != nil {
				return err
			}
			m.PropName = v
			b = b[n:]
		default:
			n, err := skipField(b, num, typ)
			if err != nil {
				return err
			}
			b = b[n:]
		}
	}
	return nil
}
