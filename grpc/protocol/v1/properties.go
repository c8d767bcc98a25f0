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
	"sort"

	"google.golang.org/protobuf/encoding/protowire"
)

// Properties mirrors weaviate.v1.Properties: a typed replacement for
// google.protobuf.Struct. Unlike Struct its Value kinds distinguish int from
// number and carry date/uuid/blob/geo/phone values explicitly.
type Properties struct {
	Fields map[string]*Value
}

func (m *Properties) marshal(b []byte) ([]byte, error) {
	// Deterministic order keeps request bytes stable across calls.
	keys := make([]string, 0, len(m.Fields))
	for k := range m.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		var entry []byte
		entry = protowire.AppendTag(entry, 1, protowire.BytesType)
		entry = protowire.AppendString(entry, k)
		body, err := m.Fields[k].marshal(nil)
		if err != nil {
			return nil, err
		}
		entry = protowire.AppendTag(entry, 2, protowire.BytesType)
		entry = protowire.AppendBytes(entry, body)
		b = protowire.AppendTag(b, 1, protowire.BytesType)
		b = protowire.AppendBytes(b, entry)
	}
	return b, nil
}

func (m *Properties) unmarshal(b []byte) error {
	for len(b) > 0 {
		num, typ, n, err := consumeTag(b)
		if err != nil {
			return err
		}
		b = b[n:]
		if num != 1 {
			n, err := skipField(b, num, typ)
			if err != nil {
				return err
			}
			b = b[n:]
			continue
		}
		entry, n := protowire.ConsumeBytes(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		var key string
		val := &Value{}
		for len(entry) > 0 {
			enum, etyp, en, err := consumeTag(entry)
			if err != nil {
				return err
			}
			entry = entry[en:]
			switch enum {
			case 1:
				key, en, err = consumeString(entry)
				if err != nil {
					return err
				}
				entry = entry[en:]
			case 2:
				en, err = consumeMessage(entry, val)
				if err != nil {
					return err
				}
				entry = entry[en:]
			default:
				en, err = skipField(entry, enum, etyp)
				if err != nil {
					return err
				}
				entry = entry[en:]
			}
		}
		if m.Fields == nil {
			m.Fields = map[string]*Value{}
		}
		m.Fields[key] = val
	}
	return nil
}

type NullValue int32

const NullValue_NULL_VALUE NullValue = 0

// Value is the tagged union of property values. Exactly one Kind is set.
type Value struct {
	Kind isValue_Kind
}

type isValue_Kind interface {
	isValue_Kind()
}

type Value_NumberValue struct{ NumberValue float64 }

type Value_IntValue struct{ IntValue int64 }

// Value_StringValue is the pre-1.23 text encoding, kept for decode
// compatibility. The builder emits Value_TextValue instead.
type Value_StringValue struct{ StringValue string }

type Value_BoolValue struct{ BoolValue bool }

type Value_ObjectValue struct{ ObjectValue *Properties }

type Value_ListValue struct{ ListValue *ListValue }

type Value_DateValue struct{ DateValue string }

type Value_UuidValue struct{ UuidValue string }

type Value_GeoValue struct{ GeoValue *GeoCoordinate }

type Value_BlobValue struct{ BlobValue string }

type Value_PhoneValue struct{ PhoneValue *PhoneNumber }

type Value_NullValue struct{ NullValue NullValue }

type Value_TextValue struct{ TextValue string }

func (*Value_NumberValue) isValue_Kind() {}
func (*Value_IntValue) isValue_Kind()    {}
func (*Value_StringValue) isValue_Kind() {}
func (*Value_BoolValue) isValue_Kind()   {}
func (*Value_ObjectValue) isValue_Kind() {}
func (*Value_ListValue) isValue_Kind()   {}
func (*Value_DateValue) isValue_Kind()   {}
func (*Value_UuidValue) isValue_Kind()   {}
func (*Value_GeoValue) isValue_Kind()    {}
func (*Value_BlobValue) isValue_Kind()   {}
func (*Value_PhoneValue) isValue_Kind()  {}
func (*Value_NullValue) isValue_Kind()   {}
func (*Value_TextValue) isValue_Kind()   {}

func (m *Value) marshal(b []byte) ([]byte, error) {
	var err error
	switch v := m.Kind.(type) {
	case nil:
	case *Value_NumberValue:
		b = protowire.AppendTag(b, 1, protowire.Fixed64Type)
		b = protowire.AppendFixed64(b, math.Float64bits(v.NumberValue))
	case *Value_IntValue:
		b = protowire.AppendTag(b, 2, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(v.IntValue))
	case *Value_StringValue:
		b = protowire.AppendTag(b, 3, protowire.BytesType)
		b = protowire.AppendString(b, v.StringValue)
	case *Value_BoolValue:
		b = protowire.AppendTag(b, 4, protowire.VarintType)
		b = protowire.AppendVarint(b, protowire.EncodeBool(v.BoolValue))
	case *Value_ObjectValue:
		if b, err = appendMessage(b, 5, v.ObjectValue); err != nil {
			return nil, err
		}
	case *Value_ListValue:
		if b, err = appendMessage(b, 6, v.ListValue); err != nil {
			return nil, err
		}
	case *Value_DateValue:
		b = protowire.AppendTag(b, 7, protowire.BytesType)
		b = protowire.AppendString(b, v.DateValue)
	case *Value_UuidValue:
		b = protowire.AppendTag(b, 8, protowire.BytesType)
		b = protowire.AppendString(b, v.UuidValue)
	case *Value_GeoValue:
		if b, err = appendMessage(b, 9, v.GeoValue); err != nil {
			return nil, err
		}
	case *Value_BlobValue:
		b = protowire.AppendTag(b, 10, protowire.BytesType)
		b = protowire.AppendString(b, v.BlobValue)
	case *Value_PhoneValue:
		if b, err = appendMessage(b, 11, v.PhoneValue); err != nil {
			return nil, err
		}
	case *Value_NullValue:
		b = protowire.AppendTag(b, 12, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(int64(v.NullValue)))
	case *Value_TextValue:
		b = protowire.AppendTag(b, 13, protowire.BytesType)
		b = protowire.AppendString(b, v.TextValue)
	}
	return b, nil
}

func (m *Value) unmarshal(b []byte) error {
	for len(b) > 0 {
		num, typ, n, err := consumeTag(b)
		if err != nil {
			return err
		}
		b = b[n:]
		switch num {
		case 1:
			v, n, err := consumeDouble(b)
			if err != nil {
				return err
			}
			m.Kind = &Value_NumberValue{NumberValue: v}
			b = b[n:]
		case 2:
			v, n, err := consumeVarint(b)
			if err != nil {
				return err
			}
			m.Kind = &Value_IntValue{IntValue: int64(v)}
			b = b[n:]
		case 3:
			v, n, err := consumeString(b)
			if err != nil {
				return err
			}
			m.Kind = &Value_StringValue{StringValue: v}
			b = b[n:]
		case 4:
			v, n, err := consumeBool(b)
			if err != nil {
				return err
			}
			m.Kind = &Value_BoolValue{BoolValue: v}
			b = b[n:]
		case 5:
			sub := &Properties{}
			n, err := consumeMessage(b, sub)
			if err != nil {
				return err
			}
			m.Kind = &Value_ObjectValue{ObjectValue: sub}
			b = b[n:]
		case 6:
			sub := &ListValue{}
			n, err := consumeMessage(b, sub)
			if err != nil {
				return err
			}
			m.Kind = &Value_ListValue{ListValue: sub}
			b = b[n:]
		case 7:
			v, n, err := consumeString(b)
			if err != nil {
				return err
			}
			m.Kind = &Value_DateValue{DateValue: v}
			b = b[n:]
		case 8:
			v, n, err := consumeString(b)
			if err != nil {
				return err
			}
			m.Kind = &Value_UuidValue{UuidValue: v}
			b = b[n:]
		case 9:
			sub := &GeoCoordinate{}
			n, err := consumeMessage(b, sub)
			if err != nil {
				return err
			}
			m.Kind = &Value_GeoValue{GeoValue: sub}
			b = b[n:]
		case 10:
			v, n, err := consumeString(b)
			if err != nil {
				return err
			}
			m.Kind = &Value_BlobValue{BlobValue: v}
			b = b[n:]
		case 11:
			sub := &PhoneNumber{}
			n, err := consumeMessage(b, sub)
			if err != nil {
				return err
			}
			m.Kind = &Value_PhoneValue{PhoneValue: sub}
			b = b[n:]
		case 12:
			v, n, err := consumeVarint(b)
			if err != nil {
				return err
			}
			m.Kind = &Value_NullValue{NullValue: NullValue(v)}
			b = b[n:]
		case 13:
			v, n, err := consumeString(b)
			if err != nil {
				return err
			}
			m.Kind = &Value_TextValue{TextValue: v}
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

type ListValue struct {
	Values []*Value
}

func (m *ListValue) marshal(b []byte) ([]byte, error) {
	var err error
	for _, v := range m.Values {
		if b, err = appendMessage(b, 1, v); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (m *ListValue) unmarshal(b []byte) error {
	for len(b) > 0 {
		num, typ, n, err := consumeTag(b)
		if err != nil {
			return err
		}
		b = b[n:]
		if num == 1 {
			sub := &Value{}
			n, err := consumeMessage(b, sub)
			if err != nil {
				return err
			}
			m.Values = append(m.Values, sub)
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

type GeoCoordinate struct {
	Latitude  float32
	Longitude float32
}

func (m *GeoCoordinate) marshal(b []byte) ([]byte, error) {
	b = appendFloat(b, 1, m.Latitude)
	b = appendFloat(b, 2, m.Longitude)
	return b, nil
}

func (m *GeoCoordinate) unmarshal(b []byte) error {
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

type PhoneNumber struct {
	CountryCode            uint64
	DefaultCountry         string
	Input                  string
	InternationalFormatted string
	National               uint64
	NationalFormatted      string
	Valid                  bool
}

func (m *PhoneNumber) marshal(b []byte) ([]byte, error) {
	if m.CountryCode != 0 {
		b = protowire.AppendTag(b, 1, protowire.VarintType)
		b = protowire.AppendVarint(b, m.CountryCode)
	}
	b = appendString(b, 2, m.DefaultCountry)
	b = appendString(b, 3, m.Input)
	b = appendString(b, 4, m.InternationalFormatted)
	if m.National != 0 {
		b = protowire.AppendTag(b, 5, protowire.VarintType)
		b = protowire.AppendVarint(b, m.National)
	}
	b = appendString(b, 6, m.NationalFormatted)
	b = appendBool(b, 7, m.Valid)
	return b, nil
}

func (m *PhoneNumber) unmarshal(b []byte) error {
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
			m.CountryCode = v
			b = b[n:]
		case 2:
			v, n, err := consumeString(b)
			if err != nil {
				return err
			}
			m.DefaultCountry = v
			b = b[n:]
		case 3:
			v, n, err := consumeString(b)
			if err != nil {
				return err
			}
			m.Input = v
			b = b[n:]
		case 4:
			v, n, err := consumeString(b)
			if err != nil {
				return err
			}
			m.InternationalFormatted = v
			b = b[n:]
		case 5:
			v, n, err := consumeVarint(b)
			if err != nil {
				return err
			}
			m.National = v
			b = b[n:]
		case 6:
			v, n, err := consumeString(b)
			if err != nil {
				return err
			}
			m.NationalFormatted = v
			b = b[n:]
		case 7:
			v, n, err := consumeBool(b)
			if err != nil {
				return err
			}
			m.Valid = v
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
