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

package query

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/CShorten/weaviate-go-client/entities/filters"
	"github.com/CShorten/weaviate-go-client/entities/searchparams"
	protocol "github.com/CShorten/weaviate-go-client/grpc/protocol/v1"
)

func float64Ptr(v float64) *float64 { return &v }

func TestBuildMinimalRequests(t *testing.T) {
	// every mode must produce exactly one mode field and default selections
	modes := []struct {
		name string
		mode searchparams.SearchMode
		set  func(*protocol.SearchRequest) bool
	}{
		{
			name: "near vector",
			mode: searchparams.NearVector{Vector: []float32{0.1, 0.2, 0.3}},
			set:  func(r *protocol.SearchRequest) bool { return r.NearVector != nil },
		},
		{
			name: "near object",
			mode: searchparams.NearObject{ID: "bea5d3c2-e625-46e8-97a3-b8e6b34df45b"},
			set:  func(r *protocol.SearchRequest) bool { return r.NearObject != nil },
		},
		{
			name: "near text",
			mode: searchparams.NearText{Query: []string{"concept"}},
			set:  func(r *protocol.SearchRequest) bool { return r.NearText != nil },
		},
		{
			name: "near image",
			mode: searchparams.NearMedia{Kind: searchparams.MediaImage, Media: "aW1hZ2U="},
			set:  func(r *protocol.SearchRequest) bool { return r.NearImage != nil },
		},
		{
			name: "near thermal",
			mode: searchparams.NearMedia{Kind: searchparams.MediaThermal, Media: "dGhlcm1hbA=="},
			set:  func(r *protocol.SearchRequest) bool { return r.NearThermal != nil },
		},
		{
			name: "hybrid",
			mode: searchparams.Hybrid{Query: "query"},
			set:  func(r *protocol.SearchRequest) bool { return r.HybridSearch != nil },
		},
		{
			name: "bm25",
			mode: searchparams.BM25{Query: "query"},
			set:  func(r *protocol.SearchRequest) bool { return r.Bm25Search != nil },
		},
	}

	for _, tt := range modes {
		t.Run(tt.name, func(t *testing.T) {
			req, err := buildSearchRequest(Params{Collection: "TestCollection", Mode: tt.mode})
			require.Nil(t, err)
			require.True(t, tt.set(req))

			modeFields := 0
			for _, set := range []bool{
				req.NearVector != nil, req.NearObject != nil, req.NearText != nil,
				req.NearImage != nil, req.NearAudio != nil, req.NearVideo != nil,
				req.NearDepth != nil, req.NearThermal != nil, req.NearImu != nil,
				req.HybridSearch != nil, req.Bm25Search != nil,
			} {
				if set {
					modeFields++
				}
			}
			require.Equal(t, 1, modeFields)

			// default selections: no metadata, all non-ref properties, no refs
			require.Equal(t, &protocol.MetadataRequest{}, req.Metadata)
			require.True(t, req.Properties.ReturnAllNonrefProperties)
			require.Empty(t, req.Properties.NonRefProperties)
			require.Empty(t, req.Properties.RefProperties)
		})
	}
}

func TestBuildInvalidArguments(t *testing.T) {
	tests := []struct {
		name   string
		params Params
	}{
		{
			name:   "empty collection",
			params: Params{Mode: searchparams.BM25{Query: "q"}},
		},
		{
			name:   "near vector without vector",
			params: Params{Collection: "C", Mode: searchparams.NearVector{}},
		},
		{
			name:   "near object with malformed id",
			params: Params{Collection: "C", Mode: searchparams.NearObject{ID: "not-a-uuid"}},
		},
		{
			name: "duplicate target vectors",
			params: Params{Collection: "C", Mode: searchparams.NearVector{
				Vector:        []float32{1},
				TargetVectors: []string{"a", "b", "a"},
			}},
		},
		{
			name:   "near text without concepts",
			params: Params{Collection: "C", Mode: searchparams.NearText{}},
		},
		{
			name: "move without concepts or objects",
			params: Params{Collection: "C", Mode: searchparams.NearText{
				Query:  []string{"x"},
				MoveTo: &searchparams.Move{Force: 0.5},
			}},
		},
		{
			name: "move with malformed object id",
			params: Params{Collection: "C", Mode: searchparams.NearText{
				Query:        []string{"x"},
				MoveAwayFrom: &searchparams.Move{Force: 0.5, Objects: []string{"nope"}},
			}},
		},
		{
			name:   "near media without content",
			params: Params{Collection: "C", Mode: searchparams.NearMedia{Kind: searchparams.MediaAudio}},
		},
		{
			name: "hybrid with conflicting vector parts",
			params: Params{Collection: "C", Mode: searchparams.Hybrid{
				Query:      "q",
				Vector:     []float32{1},
				NearVector: &searchparams.NearVector{Vector: []float32{2}},
			}},
		},
		{
			name:   "hybrid with neither query nor vector",
			params: Params{Collection: "C", Mode: searchparams.Hybrid{}},
		},
		{
			name:   "bm25 without query",
			params: Params{Collection: "C", Mode: searchparams.BM25{}},
		},
		{
			name: "group by without property",
			params: Params{
				Collection: "C",
				Mode:       searchparams.BM25{Query: "q"},
				GroupBy:    &searchparams.GroupBy{NumberOfGroups: 2},
			},
		},
		{
			name: "rerank without property",
			params: Params{
				Collection: "C",
				Mode:       searchparams.BM25{Query: "q"},
				Rerank:     &searchparams.Rerank{},
			},
		},
		{
			name: "sort with invalid order",
			params: Params{
				Collection: "C",
				Sort:       []filters.Sort{{Path: []string{"name"}, Order: "upwards"}},
			},
		},
		{
			name: "duplicate named vectors",
			params: Params{
				Collection:   "C",
				NamedVectors: []string{"v", "v"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := buildSearchRequest(tt.params)
			require.NotNil(t, err)
			var invalidErr InvalidArgumentError
			require.True(t, errors.As(err, &invalidErr), "want InvalidArgumentError, got %T", err)
		})
	}
}

func TestBuildVectorBytePacking(t *testing.T) {
	req, err := buildSearchRequest(Params{
		Collection: "C",
		Mode: searchparams.NearVector{
			Vector:   []float32{1, 2},
			Distance: float64Ptr(0.5),
		},
	})
	require.Nil(t, err)
	require.Equal(t, []byte{0, 0, 128, 63, 0, 0, 0, 64}, req.NearVector.VectorBytes)
	require.Empty(t, req.NearVector.Vector) // deprecated field never emitted
	require.Equal(t, 0.5, *req.NearVector.Distance)
	require.Nil(t, req.NearVector.Certainty)
}

func TestBuildMetadataSelection(t *testing.T) {
	req, err := buildSearchRequest(Params{
		Collection:     "C",
		ReturnMetadata: &MetadataQuery{Distance: true, Score: true},
		IncludeVector:  true,
		NamedVectors:   []string{"title", "body"},
	})
	require.Nil(t, err)
	md := req.Metadata
	require.True(t, md.Uuid) // id is always included with any metadata
	require.True(t, md.Distance)
	require.True(t, md.Score)
	require.True(t, md.Vector)
	require.Equal(t, []string{"title", "body"}, md.Vectors)
	require.False(t, md.Certainty)
	require.False(t, md.CreationTimeUnix)
	require.False(t, md.IsConsistent)
}

func TestBuildPropertySelection(t *testing.T) {
	req, err := buildSearchRequest(Params{
		Collection: "C",
		ReturnProperties: &PropertySelection{
			Names: []string{"name", "blobProp"},
			Objects: []ObjectSelection{{
				Name:       "address",
				Primitives: []string{"street", "city"},
			}},
		},
		ReturnReferences: []ReferenceSelection{{
			Property:         "writesFor",
			TargetCollection: "Publication",
			Metadata:         &MetadataQuery{Distance: true},
			References: []ReferenceSelection{{
				Property: "publishedIn",
			}},
		}},
	})
	require.Nil(t, err)

	props := req.Properties
	require.False(t, props.ReturnAllNonrefProperties)
	require.Equal(t, []string{"name", "blobProp"}, props.NonRefProperties)
	require.Len(t, props.ObjectProperties, 1)
	require.Equal(t, "address", props.ObjectProperties[0].PropName)

	require.Len(t, props.RefProperties, 1)
	ref := props.RefProperties[0]
	require.Equal(t, "writesFor", ref.ReferenceProperty)
	require.Equal(t, "Publication", ref.TargetCollection)
	require.True(t, ref.Metadata.Uuid)
	require.True(t, ref.Metadata.Distance)
	// no explicit property list on the ref defaults to all non-ref props
	require.True(t, ref.Properties.ReturnAllNonrefProperties)
	require.Len(t, ref.Properties.RefProperties, 1)
	require.Equal(t, "publishedIn", ref.Properties.RefProperties[0].ReferenceProperty)
}

func TestBuildFilterTranslation(t *testing.T) {
	req, err := buildSearchRequest(Params{
		Collection: "C",
		Filters: &filters.LocalFilter{Root: &filters.Clause{
			Operator: filters.OperatorAnd,
			Operands: []filters.Clause{
				{
					Operator: filters.OperatorEqual,
					On:       &filters.Path{Property: "name"},
					Value:    "Sergey",
				},
				{
					Operator: filters.OperatorGreaterThan,
					On:       &filters.Path{Property: "age"},
					Value:    18,
				},
				{
					Operator: filters.OperatorWithinGeoRange,
					On:       &filters.Path{Property: "location"},
					Value:    filters.GeoRange{Latitude: 52.5, Longitude: 13.4, Distance: 2000},
				},
				{
					Operator: filters.ContainsAny,
					On: &filters.Path{
						Property: "writesFor",
						Child:    &filters.Path{Property: "name"},
					},
					Value: []string{"a", "b"},
				},
			},
		}},
	})
	require.Nil(t, err)

	f := req.Filters
	require.Equal(t, protocol.Filters_OPERATOR_AND, f.Operator)
	require.Len(t, f.Filters, 4)

	require.Equal(t, protocol.Filters_OPERATOR_EQUAL, f.Filters[0].Operator)
	require.Equal(t, []string{"name"}, f.Filters[0].On)
	require.Equal(t, &protocol.Filters_ValueText{ValueText: "Sergey"}, f.Filters[0].TestValue)

	require.Equal(t, &protocol.Filters_ValueInt{ValueInt: 18}, f.Filters[1].TestValue)

	geo := f.Filters[2].TestValue.(*protocol.Filters_ValueGeo).ValueGeo
	require.Equal(t, float32(52.5), geo.Latitude)
	require.Equal(t, float32(2000), geo.Distance)

	require.Equal(t, []string{"writesFor", "name"}, f.Filters[3].On)
	require.Equal(t,
		&protocol.Filters_ValueTextArray{ValueTextArray: &protocol.TextArray{Values: []string{"a", "b"}}},
		f.Filters[3].TestValue)
}

func TestBuildSortAndPaging(t *testing.T) {
	req, err := buildSearchRequest(Params{
		Collection: "C",
		Sort: []filters.Sort{
			{Path: []string{"name"}},
			{Path: []string{"age"}, Order: "desc"},
		},
		Limit:            10,
		Offset:           20,
		AutoLimit:        2,
		After:            "cfa3b21e-ca4f-4db7-a432-7fc6a23c534d",
		Tenant:           "tenant-a",
		ConsistencyLevel: ConsistencyLevelQuorum,
	})
	require.Nil(t, err)

	require.Len(t, req.SortBy, 2)
	require.True(t, req.SortBy[0].Ascending)
	require.False(t, req.SortBy[1].Ascending)
	require.Equal(t, uint32(10), req.Limit)
	require.Equal(t, uint32(20), req.Offset)
	require.Equal(t, uint32(2), req.Autocut)
	require.Equal(t, "cfa3b21e-ca4f-4db7-a432-7fc6a23c534d", req.After)
	require.Equal(t, "tenant-a", req.Tenant)
	require.Equal(t, protocol.ConsistencyLevel_CONSISTENCY_LEVEL_QUORUM, *req.ConsistencyLevel)
	require.True(t, req.Uses_123Api)
	require.True(t, req.Uses_125Api)
}

func TestBuildHybridFusionDefaults(t *testing.T) {
	req, err := buildSearchRequest(Params{
		Collection: "C",
		Mode: searchparams.Hybrid{
			Query: "q",
			Alpha: float64Ptr(0.25),
		},
	})
	require.Nil(t, err)
	// the unspecified enum value is never emitted
	require.Equal(t, protocol.Hybrid_FUSION_TYPE_RELATIVE_SCORE, req.HybridSearch.FusionType)
	require.Equal(t, float32(0.25), req.HybridSearch.Alpha)

	req, err = buildSearchRequest(Params{
		Collection: "C",
		Mode:       searchparams.Hybrid{Query: "q", FusionType: searchparams.FusionRanked},
	})
	require.Nil(t, err)
	require.Equal(t, protocol.Hybrid_FUSION_TYPE_RANKED, req.HybridSearch.FusionType)
}

func TestBuildGroupBy(t *testing.T) {
	req, err := buildSearchRequest(Params{
		Collection: "C",
		Mode:       searchparams.NearVector{Vector: []float32{1}},
		GroupBy: &searchparams.GroupBy{
			Property:        "category",
			NumberOfGroups:  3,
			ObjectsPerGroup: 2,
		},
	})
	require.Nil(t, err)
	require.Equal(t, []string{"category"}, req.GroupBy.Path)
	require.Equal(t, int32(3), req.GroupBy.NumberOfGroups)
	require.Equal(t, int32(2), req.GroupBy.ObjectsPerGroup)
}
