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

package filters

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPathSliceRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		segments []string
	}{
		{name: "single segment", segments: []string{"name"}},
		{name: "through a reference", segments: []string{"writesFor", "name"}},
		{name: "two hops", segments: []string{"writesFor", "publishedBy", "city"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := PathFromSlice(tt.segments)
			require.NotNil(t, p)
			require.Equal(t, tt.segments, p.Slice())
			require.Equal(t, tt.segments[len(tt.segments)-1], p.GetInnerMost().Property)
		})
	}
}

func TestPathFromEmptySlice(t *testing.T) {
	require.Nil(t, PathFromSlice(nil))
	require.Nil(t, PathFromSlice([]string{}))
}

func TestOperatorOnValue(t *testing.T) {
	for _, op := range []Operator{
		OperatorEqual, OperatorNotEqual, OperatorGreaterThan,
		OperatorGreaterThanEqual, OperatorLessThan, OperatorLessThanEqual,
		OperatorWithinGeoRange, OperatorLike, OperatorIsNull,
		ContainsAny, ContainsAll,
	} {
		require.True(t, op.OnValue(), op.Name())
	}

	require.False(t, OperatorAnd.OnValue())
	require.False(t, OperatorOr.OnValue())
}

func TestOperatorNames(t *testing.T) {
	require.Equal(t, "Equal", OperatorEqual.Name())
	require.Equal(t, "WithinGeoRange", OperatorWithinGeoRange.Name())
	require.Equal(t, "ContainsAll", ContainsAll.Name())
	require.Panics(t, func() { Operator(0).Name() })
}
