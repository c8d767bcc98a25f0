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

// Package byte_operations converts between float slices and their packed
// little-endian byte encoding. The packed form is how vectors travel on the
// wire; the float-list fields that predate it are kept only for decoding.
package byte_operations

import (
	"encoding/binary"
	"math"

	"github.com/pkg/errors"
)

const (
	fp32Len = 4
	fp64Len = 8
)

// Fp32SliceToBytes packs vec into little-endian IEEE 754 bytes.
func Fp32SliceToBytes(vec []float32) []byte {
	if len(vec) == 0 {
		return nil
	}
	out := make([]byte, fp32Len*len(vec))
	for i, v := range vec {
		binary.LittleEndian.PutUint32(out[i*fp32Len:], math.Float32bits(v))
	}
	return out
}

// Fp32SliceFromBytes is the inverse of Fp32SliceToBytes.
func Fp32SliceFromBytes(b []byte) ([]float32, error) {
	if len(b)%fp32Len != 0 {
		return nil, errors.Errorf("byte slice length %d is not a multiple of %d", len(b), fp32Len)
	}
	if len(b) == 0 {
		return nil, nil
	}
	out := make([]float32, len(b)/fp32Len)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[i*fp32Len:]))
	}
	return out, nil
}

// Fp64SliceFromBytes unpacks little-endian float64 bytes, the packed
// encoding of number-array properties.
func Fp64SliceFromBytes(b []byte) ([]float64, error) {
	if len(b)%fp64Len != 0 {
		return nil, errors.Errorf("byte slice length %d is not a multiple of %d", len(b), fp64Len)
	}
	if len(b) == 0 {
		return nil, nil
	}
	out := make([]float64, len(b)/fp64Len)
	for i := range out {
		out[i] = math.Float64frombits(binary.LittleEndian.Uint64(b[i*fp64Len:]))
	}
	return out, nil
}
