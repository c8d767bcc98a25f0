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

// Package protocol is a hand-maintained mirror of the weaviate.v1 search
// messages. Field numbers and presence semantics follow v1/search_get.proto,
// v1/base.proto and v1/properties.proto exactly; both ends of the protocol
// treat them as a fixed contract. Messages are encoded with the low-level
// protowire primitives so that optional-field presence is explicit in the
// struct shapes (pointer scalars, nil-able sub-messages, oneof wrappers)
// instead of being hidden behind generated accessors.
package protocol

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/proto"
)

// Message is implemented by every wire message in this package.
type Message interface {
	marshal(b []byte) ([]byte, error)
	unmarshal(b []byte) error
}

// Marshal encodes m into the protobuf wire format.
func Marshal(m Message) ([]byte, error) {
	return m.marshal(nil)
}

// Unmarshal decodes wire-format data into m. Unknown fields are skipped so
// that replies from newer servers remain decodable.
func Unmarshal(data []byte, m Message) error {
	return m.unmarshal(data)
}

// Codec adapts Message to grpc's encoding.Codec so the messages can be used
// directly with grpc.ClientConn.Invoke via grpc.ForceCodec.
type Codec struct{}

func (Codec) Marshal(v interface{}) ([]byte, error) {
	m, ok := v.(Message)
	if !ok {
		return nil, fmt.Errorf("protocol codec: cannot marshal %T", v)
	}
	return Marshal(m)
}

func (Codec) Unmarshal(data []byte, v interface{}) error {
	m, ok := v.(Message)
	if !ok {
		return fmt.Errorf("protocol codec: cannot unmarshal into %T", v)
	}
	return Unmarshal(data, m)
}

func (Codec) Name() string { return "proto" }

// append helpers. Plain proto3 scalars are skipped at their zero value,
// explicit-presence scalars (pointers) are emitted whenever set.

func appendString(b []byte, num protowire.Number, v string) []byte {
	if v == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, v)
}

func appendOptString(b []byte, num protowire.Number, v *string) []byte {
	if v == nil {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, *v)
}

func appendBool(b []byte, num protowire.Number, v bool) []byte {
	if !v {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, 1)
}

func appendOptBool(b []byte, num protowire.Number, v *bool) []byte {
	if v == nil {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, protowire.EncodeBool(*v))
}

func appendUint32(b []byte, num protowire.Number, v uint32) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, uint64(v))
}

func appendInt32(b []byte, num protowire.Number, v int32) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, uint64(int64(v)))
}

func appendInt64(b []byte, num protowire.Number, v int64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, uint64(v))
}

func appendFloat(b []byte, num protowire.Number, v float32) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.Fixed32Type)
	return protowire.AppendFixed32(b, math.Float32bits(v))
}

func appendDouble(b []byte, num protowire.Number, v float64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.Fixed64Type)
	return protowire.AppendFixed64(b, math.Float64bits(v))
}

func appendOptDouble(b []byte, num protowire.Number, v *float64) []byte {
	if v == nil {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.Fixed64Type)
	return protowire.AppendFixed64(b, math.Float64bits(*v))
}

func appendBytes(b []byte, num protowire.Number, v []byte) []byte {
	if len(v) == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, v)
}

func appendRepeatedString(b []byte, num protowire.Number, vs []string) []byte {
	for _, v := range vs {
		b = protowire.AppendTag(b, num, protowire.BytesType)
		b = protowire.AppendString(b, v)
	}
	return b
}

func appendPackedFloat(b []byte, num protowire.Number, vs []float32) []byte {
	if len(vs) == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	b = protowire.AppendVarint(b, uint64(4*len(vs)))
	for _, v := range vs {
		b = protowire.AppendFixed32(b, math.Float32bits(v))
	}
	return b
}

func appendPackedDouble(b []byte, num protowire.Number, vs []float64) []byte {
	if len(vs) == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	b = protowire.AppendVarint(b, uint64(8*len(vs)))
	for _, v := range vs {
		b = protowire.AppendFixed64(b, math.Float64bits(v))
	}
	return b
}

func appendPackedInt64(b []byte, num protowire.Number, vs []int64) []byte {
	if len(vs) == 0 {
		return b
	}
	var body []byte
	for _, v := range vs {
		body = protowire.AppendVarint(body, uint64(v))
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, body)
}

func appendPackedBool(b []byte, num protowire.Number, vs []bool) []byte {
	if len(vs) == 0 {
		return b
	}
	var body []byte
	for _, v := range vs {
		body = protowire.AppendVarint(body, protowire.EncodeBool(v))
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, body)
}

func appendEnum(b []byte, num protowire.Number, v int32) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, uint64(int64(v)))
}

// appendMessage emits a sub-message field. Unlike scalar fields, an empty but
// non-nil sub-message is still emitted: message presence is its own signal.
func appendMessage(b []byte, num protowire.Number, m Message) ([]byte, error) {
	body, err := m.marshal(nil)
	if err != nil {
		return nil, err
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, body), nil
}

// appendProto embeds a standard proto.Message (google.protobuf.Struct and
// friends) as a sub-message field.
func appendProto(b []byte, num protowire.Number, m proto.Message) ([]byte, error) {
	body, err := proto.Marshal(m)
	if err != nil {
		return nil, err
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, body), nil
}

// consume helpers. Each returns the decoded value and the number of bytes
// consumed; a negative length from protowire is turned into an error.

func consumeString(b []byte) (string, int, error) {
	v, n := protowire.ConsumeString(b)
	if n < 0 {
		return "", 0, protowire.ParseError(n)
	}
	return v, n, nil
}

func consumeBytes(b []byte) ([]byte, int, error) {
	v, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return nil, 0, protowire.ParseError(n)
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, n, nil
}

func consumeVarint(b []byte) (uint64, int, error) {
	v, n := protowire.ConsumeVarint(b)
	if n < 0 {
		return 0, 0, protowire.ParseError(n)
	}
	return v, n, nil
}

func consumeBool(b []byte) (bool, int, error) {
	v, n, err := consumeVarint(b)
	return protowire.DecodeBool(v), n, err
}

func consumeFloat(b []byte) (float32, int, error) {
	v, n := protowire.ConsumeFixed32(b)
	if n < 0 {
		return 0, 0, protowire.ParseError(n)
	}
	return math.Float32frombits(v), n, nil
}

func consumeDouble(b []byte) (float64, int, error) {
	v, n := protowire.ConsumeFixed64(b)
	if n < 0 {
		return 0, 0, protowire.ParseError(n)
	}
	return math.Float64frombits(v), n, nil
}

func consumeMessage(b []byte, m Message) (int, error) {
	v, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return 0, protowire.ParseError(n)
	}
	if err := m.unmarshal(v); err != nil {
		return 0, err
	}
	return n, nil
}

func consumeProto(b []byte, m proto.Message) (int, error) {
	v, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return 0, protowire.ParseError(n)
	}
	if err := proto.Unmarshal(v, m); err != nil {
		return 0, err
	}
	return n, nil
}

// consumeRepeatedFloat accepts both packed and unpacked encodings, as any
// proto3 decoder must.
func consumeRepeatedFloat(b []byte, typ protowire.Type, dst []float32) ([]float32, int, error) {
	if typ == protowire.Fixed32Type {
		v, n, err := consumeFloat(b)
		if err != nil {
			return dst, 0, err
		}
		return append(dst, v), n, nil
	}
	body, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return dst, 0, protowire.ParseError(n)
	}
	for len(body) > 0 {
		v, m, err := consumeFloat(body)
		if err != nil {
			return dst, 0, err
		}
		dst = append(dst, v)
		body = body[m:]
	}
	return dst, n, nil
}

func consumeRepeatedDouble(b []byte, typ protowire.Type, dst []float64) ([]float64, int, error) {
	if typ == protowire.Fixed64Type {
		v, n, err := consumeDouble(b)
		if err != nil {
			return dst, 0, err
		}
		return append(dst, v), n, nil
	}
	body, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return dst, 0, protowire.ParseError(n)
	}
	for len(body) > 0 {
		v, m, err := consumeDouble(body)
		if err != nil {
			return dst, 0, err
		}
		dst = append(dst, v)
		body = body[m:]
	}
	return dst, n, nil
}

func consumeRepeatedInt64(b []byte, typ protowire.Type, dst []int64) ([]int64, int, error) {
	if typ == protowire.VarintType {
		v, n, err := consumeVarint(b)
		if err != nil {
			return dst, 0, err
		}
		return append(dst, int64(v)), n, nil
	}
	body, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return dst, 0, protowire.ParseError(n)
	}
	for len(body) > 0 {
		v, m, err := consumeVarint(body)
		if err != nil {
			return dst, 0, err
		}
		dst = append(dst, int64(v))
		body = body[m:]
	}
	return dst, n, nil
}

func consumeRepeatedBool(b []byte, typ protowire.Type, dst []bool) ([]bool, int, error) {
	if typ == protowire.VarintType {
		v, n, err := consumeBool(b)
		if err != nil {
			return dst, 0, err
		}
		return append(dst, v), n, nil
	}
	body, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return dst, 0, protowire.ParseError(n)
	}
	for len(body) > 0 {
		v, m, err := consumeBool(body)
		if err != nil {
			return dst, 0, err
		}
		dst = append(dst, v)
		body = body[m:]
	}
	return dst, n, nil
}

// skipField discards an unknown field for forward compatibility.
func skipField(b []byte, num protowire.Number, typ protowire.Type) (int, error) {
	n := protowire.ConsumeFieldValue(num, typ, b)
	if n < 0 {
		return 0, errors.Wrapf(protowire.ParseError(n), "skipping field %d", num)
	}
	return n, nil
}

func consumeTag(b []byte) (protowire.Number, protowire.Type, int, error) {
	num, typ, n := protowire.ConsumeTag(b)
	if n < 0 {
		return 0, 0, 0, protowire.ParseError(n)
	}
	return num, typ, n, nil
}

func boolPtr(v bool) *bool          { return &v }
func float64Ptr(v float64) *float64 { return &v }
func stringPtr(v string) *string    { return &v }
