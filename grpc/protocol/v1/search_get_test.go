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
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/types/known/structpb"
)

func ptrFloat64(v float64) *float64 { return &v }

func ptrString(v string) *string { return &v }

func ptrBool(v bool) *bool { return &v }

func roundTrip(t *testing.T, in, out Message) {
	t.Helper()
	data, err := Marshal(in)
	require.Nil(t, err)
	require.Nil(t, Unmarshal(data, out))
}

func TestSearchRequestRoundTrip(t *testing.T) {
	lvl := ConsistencyLevel_CONSISTENCY_LEVEL_QUORUM
	tests := []struct {
		name string
		req  *SearchRequest
	}{
		{
			name: "near vector with metadata",
			req: &SearchRequest{
				Collection:       "TestCollection",
				Tenant:           "tenant-a",
				ConsistencyLevel: &lvl,
				Metadata:         &MetadataRequest{Uuid: true, Distance: true, Vectors: []string{"title"}},
				Limit:            25,
				Offset:           5,
				NearVector: &NearVector{
					VectorBytes: []byte{0, 0, 128, 63, 0, 0, 0, 64},
					Certainty:   ptrFloat64(0.7),
				},
				Uses_123Api: true,
				Uses_125Api: true,
			},
		},
		{
			name: "hybrid with nested subsearches",
			req: &SearchRequest{
				Collection: "TestCollection",
				HybridSearch: &Hybrid{
					Query:      "first and second",
					Properties: []string{"title", "description"},
					Alpha:      0.75,
					FusionType: Hybrid_FUSION_TYPE_RELATIVE_SCORE,
					NearText: &NearTextSearch{
						Query:    []string{"first"},
						Distance: ptrFloat64(0.4),
						MoveTo:   &NearTextSearch_Move{Force: 0.5, Concepts: []string{"second"}},
					},
					TargetVectors: []string{"custom"},
				},
			},
		},
		{
			name: "bm25 with filters and sort",
			req: &SearchRequest{
				Collection: "TestCollection",
				Bm25Search: &BM25{Query: "query", Properties: []string{"title"}},
				Filters: &Filters{
					Operator:  Filters_OPERATOR_EQUAL,
					On:        []string{"name"},
					TestValue: &Filters_ValueText{ValueText: "Sergey"},
				},
				SortBy:  []*SortBy{{Ascending: true, Path: []string{"name"}}},
				Autocut: 2,
			},
		},
		{
			name: "near text with group by and generative",
			req: &SearchRequest{
				Collection: "TestCollection",
				NearText: &NearTextSearch{
					Query:     []string{"vector database"},
					Certainty: ptrFloat64(0.9),
					MoveAway:  &NearTextSearch_Move{Force: 0.3, Uuids: []string{"bea5d3c2-e625-46e8-97a3-b8e6b34df45b"}},
				},
				GroupBy:    &GroupBy{Path: []string{"category"}, NumberOfGroups: 3, ObjectsPerGroup: 2},
				Generative: &GenerativeSearch{SingleResponsePrompt: "summarize {title}"},
				Rerank:     &Rerank{Property: "title", Query: ptrString("rerank me")},
			},
		},
		{
			name: "near media",
			req: &SearchRequest{
				Collection: "TestCollection",
				NearAudio: &NearAudioSearch{NearMediaBase{
					Media:    "YXVkaW8gZmlsZQ==",
					Distance: ptrFloat64(0.2),
				}},
			},
		},
		{
			name: "property selection with refs",
			req: &SearchRequest{
				Collection: "TestCollection",
				Properties: &PropertiesRequest{
					NonRefProperties: []string{"name", "age"},
					RefProperties: []*RefPropertiesRequest{{
						ReferenceProperty: "ref",
						TargetCollection:  "Other",
						Properties:        &PropertiesRequest{NonRefProperties: []string{"title"}},
						Metadata:          &MetadataRequest{Uuid: true},
					}},
					ObjectProperties: []*ObjectPropertiesRequest{{
						PropName:            "address",
						PrimitiveProperties: []string{"street"},
					}},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := &SearchRequest{}
			roundTrip(t, tt.req, out)
			require.Equal(t, tt.req, out)
		})
	}
}

func TestSearchReplyRoundTrip(t *testing.T) {
	reply := &SearchReply{
		Took: 0.25,
		Results: []*SearchResult{
			{
				Properties: &PropertiesResult{
					NonRefProps: &Properties{Fields: map[string]*Value{
						"name": {Kind: &Value_TextValue{TextValue: "Sergey"}},
						"age":  {Kind: &Value_IntValue{IntValue: 42}},
					}},
					RefPropsRequested: true,
					RefProps: []*RefPropertiesResult{{
						PropName: "ref",
						Properties: []*PropertiesResult{{
							TargetCollection: "Other",
							NonRefProps: &Properties{Fields: map[string]*Value{
								"title": {Kind: &Value_TextValue{TextValue: "nested"}},
							}},
							Metadata: &MetadataResult{Id: "bea5d3c2-e625-46e8-97a3-b8e6b34df45b"},
						}},
					}},
				},
				Metadata: &MetadataResult{
					Id:                  "cfa3b21e-ca4f-4db7-a432-7fc6a23c534d",
					Distance:            0.25,
					DistancePresent:     true,
					IsConsistent:        ptrBool(true),
					IsConsistentPresent: true,
					RerankScore:         0.87,
					RerankScorePresent:  true,
					Vectors: []*Vectors{{
						Name:        "title",
						VectorBytes: []byte{0, 0, 128, 63},
					}},
				},
			},
		},
		GenerativeGroupedResult: ptrString("grouped answer"),
		GroupByResults: []*GroupByResult{{
			Name:            "category-a",
			MinDistance:     0.1,
			MaxDistance:     0.4,
			NumberOfObjects: 2,
			Objects: []*SearchResult{
				{Metadata: &MetadataResult{Id: "0c1d3b21-7b3a-4b9a-9f1e-2f3a4b5c6d7e"}},
				{Metadata: &MetadataResult{Id: "1d2e4c32-8c4b-5caa-a02f-3a4b5c6d7e8f"}},
			},
			Rerank:     &RerankReply{Score: 0.5},
			Generative: &GenerativeReply{Result: "per-group answer"},
		}},
	}

	out := &SearchReply{}
	roundTrip(t, reply, out)
	require.Equal(t, reply, out)
}

func TestMetadataResultZeroDistanceStaysPresent(t *testing.T) {
	in := &MetadataResult{Distance: 0, DistancePresent: true}
	out := &MetadataResult{}
	roundTrip(t, in, out)
	require.True(t, out.DistancePresent)
	require.Equal(t, float32(0), out.Distance)

	// without the companion flag a zero distance must decode as absent
	out = &MetadataResult{}
	roundTrip(t, &MetadataResult{Id: "x"}, out)
	require.False(t, out.DistancePresent)
}

func TestStructPropertiesRoundTrip(t *testing.T) {
	s, err := structpb.NewStruct(map[string]interface{}{
		"name":   "Sergey",
		"age":    float64(42),
		"active": true,
	})
	require.Nil(t, err)

	in := &PropertiesResult{NonRefProperties: s}
	out := &PropertiesResult{}
	roundTrip(t, in, out)
	require.Equal(t, s.AsMap(), out.NonRefProperties.AsMap())
}

func TestUnknownFieldsAreSkipped(t *testing.T) {
	data, err := Marshal(&SearchReply{Took: 0.5})
	require.Nil(t, err)

	// splice in a field number this mirror does not know about
	data = protowire.AppendTag(data, 999, protowire.BytesType)
	data = protowire.AppendString(data, "from a newer server")
	data = protowire.AppendTag(data, 998, protowire.VarintType)
	data = protowire.AppendVarint(data, 7)

	out := &SearchReply{}
	require.Nil(t, Unmarshal(data, out))
	require.Equal(t, float32(0.5), out.Took)
}

func TestUnpackedRepeatedFloatAccepted(t *testing.T) {
	// vectors written one element at a time instead of packed
	var data []byte
	for _, f := range []float32{1, 2, 3} {
		data = protowire.AppendTag(data, 2, protowire.Fixed32Type)
		data = protowire.AppendFixed32(data, math.Float32bits(f))
	}
	out := &MetadataResult{}
	require.Nil(t, Unmarshal(data, out))
	require.Equal(t, []float32{1, 2, 3}, out.Vector)
}

func TestFiltersOperandsRoundTrip(t *testing.T) {
	in := &Filters{
		Operator: Filters_OPERATOR_AND,
		Filters: []*Filters{
			{
				Operator:  Filters_OPERATOR_GREATER_THAN,
				On:        []string{"age"},
				TestValue: &Filters_ValueInt{ValueInt: 18},
			},
			{
				Operator: Filters_OPERATOR_WITHIN_GEO_RANGE,
				On:       []string{"location"},
				TestValue: &Filters_ValueGeo{ValueGeo: &GeoCoordinatesFilter{
					Latitude:  52.5,
					Longitude: 13.4,
					Distance:  2000,
				}},
			},
			{
				Operator:  Filters_OPERATOR_CONTAINS_ANY,
				On:        []string{"tags"},
				TestValue: &Filters_ValueTextArray{ValueTextArray: &TextArray{Values: []string{"a", "b"}}},
			},
		},
	}
	out := &Filters{}
	roundTrip(t, in, out)
	require.Equal(t, in, out)
}

func TestCodecRejectsForeignTypes(t *testing.T) {
	var c Codec
	require.Equal(t, "proto", c.Name())

	_, err := c.Marshal(struct{}{})
	require.NotNil(t, err)
	require.NotNil(t, c.Unmarshal(nil, 42))

	data, err := c.Marshal(&SearchRequest{Collection: "C"})
	require.Nil(t, err)
	out := &SearchRequest{}
	require.Nil(t, c.Unmarshal(data, out))
	require.Equal(t, "C", out.Collection)
}
