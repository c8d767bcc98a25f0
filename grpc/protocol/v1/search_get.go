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
	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName and SearchMethod identify the remote procedure this layer
// speaks to.
const (
	ServiceName  = "weaviate.v1.Weaviate"
	SearchMethod = "/weaviate.v1.Weaviate/Search"
)

// SearchRequest mirrors weaviate.v1.SearchRequest. The search-mode fields
// (hybrid, bm25, near-*) are independent optional sub-messages on the wire,
// not a oneof; the server rejects requests setting more than one.
type SearchRequest struct {
	Collection       string
	Tenant           string
	ConsistencyLevel *ConsistencyLevel
	Properties       *PropertiesRequest
	Metadata         *MetadataRequest
	GroupBy          *GroupBy
	Limit            uint32
	Offset           uint32
	Autocut          uint32
	After            string
	SortBy           []*SortBy
	Filters          *Filters
	HybridSearch     *Hybrid
	Bm25Search       *BM25
	NearVector       *NearVector
	NearObject       *NearObject
	NearText         *NearTextSearch
	NearImage        *NearImageSearch
	NearAudio        *NearAudioSearch
	NearVideo        *NearVideoSearch
	NearDepth        *NearDepthSearch
	NearThermal      *NearThermalSearch
	NearImu          *NearIMUSearch
	Generative       *GenerativeSearch
	Rerank           *Rerank

	// Deprecated: retained so older servers keep applying the 1.23/1.25
	// defaulting rules this client relies on.
	Uses_123Api bool
	Uses_125Api bool
}

func (m *SearchRequest) marshal(b []byte) ([]byte, error) {
	var err error
	b = appendString(b, 1, m.Collection)
	b = appendString(b, 10, m.Tenant)
	if m.ConsistencyLevel != nil {
		b = protowire.AppendTag(b, 11, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(int64(*m.ConsistencyLevel)))
	}
	if m.Properties != nil {
		if b, err = appendMessage(b, 20, m.Properties); err != nil {
			return nil, err
		}
	}
	if m.Metadata != nil {
		if b, err = appendMessage(b, 21, m.Metadata); err != nil {
			return nil, err
		}
	}
	if m.GroupBy != nil {
		if b, err = appendMessage(b, 22, m.GroupBy); err != nil {
			return nil, err
		}
	}
	b = appendUint32(b, 30, m.Limit)
	b = appendUint32(b, 31, m.Offset)
	b = appendUint32(b, 32, m.Autocut)
	b = appendString(b, 33, m.After)
	for _, s := range m.SortBy {
		if b, err = appendMessage(b, 34, s); err != nil {
			return nil, err
		}
	}
	if m.Filters != nil {
		if b, err = appendMessage(b, 40, m.Filters); err != nil {
			return nil, err
		}
	}
	if m.HybridSearch != nil {
		if b, err = appendMessage(b, 41, m.HybridSearch); err != nil {
			return nil, err
		}
	}
	if m.Bm25Search != nil {
		if b, err = appendMessage(b, 42, m.Bm25Search); err != nil {
			return nil, err
		}
	}
	if m.NearVector != nil {
		if b, err = appendMessage(b, 43, m.NearVector); err != nil {
			return nil, err
		}
	}
	if m.NearObject != nil {
		if b, err = appendMessage(b, 44, m.NearObject); err != nil {
			return nil, err
		}
	}
	if m.NearText != nil {
		if b, err = appendMessage(b, 45, m.NearText); err != nil {
			return nil, err
		}
	}
	if m.NearImage != nil {
		if b, err = appendMessage(b, 46, m.NearImage); err != nil {
			return nil, err
		}
	}
	if m.NearAudio != nil {
		if b, err = appendMessage(b, 47, m.NearAudio); err != nil {
			return nil, err
		}
	}
	if m.NearVideo != nil {
		if b, err = appendMessage(b, 48, m.NearVideo); err != nil {
			return nil, err
		}
	}
	if m.NearDepth != nil {
		if b, err = appendMessage(b, 49, m.NearDepth); err != nil {
			return nil, err
		}
	}
	if m.NearThermal != nil {
		if b, err = appendMessage(b, 50, m.NearThermal); err != nil {
			return nil, err
		}
	}
	if m.NearImu != nil {
		if b, err = appendMessage(b, 51, m.NearImu); err != nil {
			return nil, err
		}
	}
	if m.Generative != nil {
		if b, err = appendMessage(b, 60, m.Generative); err != nil {
			return nil, err
		}
	}
	if m.Rerank != nil {
		if b, err = appendMessage(b, 61, m.Rerank); err != nil {
			return nil, err
		}
	}
	b = appendBool(b, 100, m.Uses_123Api)
	b = appendBool(b, 101, m.Uses_125Api)
	return b, nil
}

func (m *SearchRequest) unmarshal(b []byte) error {
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
			m.Collection = v
			b = b[n:]
		case 10:
			v, n, err := consumeString(b)
			if err != nil {
				return err
			}
			m.Tenant = v
			b = b[n:]
		case 11:
			v, n, err := consumeVarint(b)
			if err != nil {
				return err
			}
			lvl := ConsistencyLevel(v)
			m.ConsistencyLevel = &lvl
			b = b[n:]
		case 20:
			m.Properties = &PropertiesRequest{}
			n, err := consumeMessage(b, m.Properties)
			if err != nil {
				return err
			}
			b = b[n:]
		case 21:
			m.Metadata = &MetadataRequest{}
			n, err := consumeMessage(b, m.Metadata)
			if err != nil {
				return err
			}
			b = b[n:]
		case 22:
			m.GroupBy = &GroupBy{}
			n, err := consumeMessage(b, m.GroupBy)
			if err != nil {
				return err
			}
			b = b[n:]
		case 30:
			v, n, err := consumeVarint(b)
			if err != nil {
				return err
			}
			m.Limit = uint32(v)
			b = b[n:]
		case 31:
			v, n, err := consumeVarint(b)
			if err != nil {
				return err
			}
			m.Offset = uint32(v)
			b = b[n:]
		case 32:
			v, n, err := consumeVarint(b)
			if err != nil {
				return err
			}
			m.Autocut = uint32(v)
			b = b[n:]
		case 33:
			v, n, err := consumeString(b)
			if err != nil {
				return err
			}
			m.After = v
			b = b[n:]
		case 34:
			sub := &SortBy{}
			n, err := consumeMessage(b, sub)
			if err != nil {
				return err
			}
			m.SortBy = append(m.SortBy, sub)
			b = b[n:]
		case 40:
			m.Filters = &Filters{}
			n, err := consumeMessage(b, m.Filters)
			if err != nil {
				return err
			}
			b = b[n:]
		case 41:
			m.HybridSearch = &Hybrid{}
			n, err := consumeMessage(b, m.HybridSearch)
			if err != nil {
				return err
			}
			b = b[n:]
		case 42:
			m.Bm25Search = &BM25{}
			n, err := consumeMessage(b, m.Bm25Search)
			if err != nil {
				return err
			}
			b = b[n:]
		case 43:
			m.NearVector = &NearVector{}
			n, err := consumeMessage(b, m.NearVector)
			if err != nil {
				return err
			}
			b = b[n:]
		case 44:
			m.NearObject = &NearObject{}
			n, err := consumeMessage(b, m.NearObject)
			if err != nil {
				return err
			}
			b = b[n:]
		case 45:
			m.NearText = &NearTextSearch{}
			n, err := consumeMessage(b, m.NearText)
			if err != nil {
				return err
			}
			b = b[n:]
		case 46:
			m.NearImage = &NearImageSearch{}
			n, err := consumeMessage(b, m.NearImage)
			if err != nil {
				return err
			}
			b = b[n:]
		case 47:
			m.NearAudio = &NearAudioSearch{}
			n, err := consumeMessage(b, m.NearAudio)
			if err != nil {
				return err
			}
			b = b[n:]
		case 48:
			m.NearVideo = &NearVideoSearch{}
			n, err := consumeMessage(b, m.NearVideo)
			if err != nil {
				return err
			}
			b = b[n:]
		case 49:
			m.NearDepth = &NearDepthSearch{}
			n, err := consumeMessage(b, m.NearDepth)
			if err != nil {
				return err
			}
			b = b[n:]
		case 50:
			m.NearThermal = &NearThermalSearch{}
			n, err := consumeMessage(b, m.NearThermal)
			if err != nil {
				return err
			}
			b = b[n:]
		case 51:
			m.NearImu = &NearIMUSearch{}
			n, err := consumeMessage(b, m.NearImu)
			if err != nil {
				return err
			}
			b = b[n:]
		case 60:
			m.Generative = &GenerativeSearch{}
			n, err := consumeMessage(b, m.Generative)
			if err != nil {
				return err
			}
			b = b[n:]
		case 61:
			m.Rerank = &Rerank{}
			n, err := consumeMessage(b, m.Rerank)
			if err != nil {
				return err
			}
			b = b[n:]
		case 100:
			v, n, err := consumeBool(b)
			if err != nil {
				return err
			}
			m.Uses_123Api = v
			b = b[n:]
		case 101:
			v, n, err := consumeBool(b)
			if err != nil {
				return err
			}
			m.Uses_125Api = v
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

type GroupBy struct {
	// Path must have exactly one element; grouping by a reference path is
	// not supported by the server.
	Path            []string
	NumberOfGroups  int32
	ObjectsPerGroup int32
}

func (m *GroupBy) marshal(b []byte) ([]byte, error) {
	b = appendRepeatedString(b, 1, m.Path)
	b = appendInt32(b, 2, m.NumberOfGroups)
	b = appendInt32(b, 3, m.ObjectsPerGroup)
	return b, nil
}

func (m *GroupBy) unmarshal(b []byte) error {
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
			m.Path = append(m.Path, v)
			b = b[n:]
		case 2:
			v, n, err := consumeVarint(b)
			if err != nil {
				return err
			}
			m.NumberOfGroups = int32(v)
			b = b[n:]
		case 3:
			v, n, err := consumeVarint(b)
			if err != nil {
				return err
			}
			m.ObjectsPerGroup = int32(v)
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

type SortBy struct {
	Ascending bool
	Path      []string
}

func (m *SortBy) marshal(b []byte) ([]byte, error) {
	b = appendBool(b, 1, m.Ascending)
	b = appendRepeatedString(b, 2, m.Path)
	return b, nil
}

func (m *SortBy) unmarshal(b []byte) error {
	for len(b) > 0 {
		num, typ, n, err := consumeTag(b)
		if err != nil {
			return err
		}
		b = b[n:]
		switch num {
		case 1:
			v, n, err := consumeBool(b)
			if err != nil {
				return err
			}
			m.Ascending = v
			b = b[n:]
		case 2:
			v, n, err := consumeString(b)
			if err != nil {
				return err
			}
			m.Path = append(m.Path, v)
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

type GenerativeSearch struct {
	SingleResponsePrompt string
	GroupedResponseTask  string
	GroupedProperties    []string
}

func (m *GenerativeSearch) marshal(b []byte) ([]byte, error) {
	b = appendString(b, 1, m.SingleResponsePrompt)
	b = appendString(b, 2, m.GroupedResponseTask)
	b = appendRepeatedString(b, 3, m.GroupedProperties)
	return b, nil
}

func (m *GenerativeSearch) unmarshal(b []byte) error {
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
			m.SingleResponsePrompt = v
			b = b[n:]
		case 2:
			v, n, err := consumeString(b)
			if err != nil {
				return err
			}
			m.GroupedResponseTask = v
			b = b[n:]
		case 3:
			v, n, err := consumeString(b)
			if err != nil {
				return err
			}
			m.GroupedProperties = append(m.GroupedProperties, v)
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

// MetadataRequest toggles each metadata attribute independently. Uuid refers
// to the object id.
type MetadataRequest struct {
	Uuid               bool
	Vector             bool
	CreationTimeUnix   bool
	LastUpdateTimeUnix bool
	Distance           bool
	Certainty          bool
	Score              bool
	ExplainScore       bool
	IsConsistent       bool
	Vectors            []string
}

func (m *MetadataRequest) marshal(b []byte) ([]byte, error) {
	b = appendBool(b, 1, m.Uuid)
	b = appendBool(b, 2, m.Vector)
	b = appendBool(b, 3, m.CreationTimeUnix)
	b = appendBool(b, 4, m.LastUpdateTimeUnix)
	b = appendBool(b, 5, m.Distance)
	b = appendBool(b, 6, m.Certainty)
	b = appendBool(b, 7, m.Score)
	b = appendBool(b, 8, m.ExplainScore)
	b = appendBool(b, 9, m.IsConsistent)
	b = appendRepeatedString(b, 10, m.Vectors)
	return b, nil
}

func (m *MetadataRequest) unmarshal(b []byte) error {
	for len(b) > 0 {
		num, typ, n, err := consumeTag(b)
		if err != nil {
			return err
		}
		b = b[n:]
		if num >= 1 && num <= 9 {
			v, n, err := consumeBool(b)
			if err != nil {
				return err
			}
			switch num {
			case 1:
				m.Uuid = v
			case 2:
				m.Vector = v
			case 3:
				m.CreationTimeUnix = v
			case 4:
				m.LastUpdateTimeUnix = v
			case 5:
				m.Distance = v
			case 6:
				m.Certainty = v
			case 7:
				m.Score = v
			case 8:
				m.ExplainScore = v
			case 9:
				m.IsConsistent = v
			}
			b = b[n:]
			continue
		}
		if num == 10 {
			v, n, err := consumeString(b)
			if err != nil {
				return err
			}
			m.Vectors = append(m.Vectors, v)
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

// PropertiesRequest selects non-reference properties by name, nested object
// properties, and reference expansions. ReturnAllNonrefProperties asks the
// server for every non-reference, non-blob property.
type PropertiesRequest struct {
	NonRefProperties          []string
	RefProperties             []*RefPropertiesRequest
	ObjectProperties          []*ObjectPropertiesRequest
	ReturnAllNonrefProperties bool
}

func (m *PropertiesRequest) marshal(b []byte) ([]byte, error) {
	var err error
	b = appendRepeatedString(b, 1, m.NonRefProperties)
	for _, r := range m.RefProperties {
		if b, err = appendMessage(b, 2, r); err != nil {
			return nil, err
		}
	}
	for _, o := range m.ObjectProperties {
		if b, err = appendMessage(b, 3, o); err != nil {
			return nil, err
		}
	}
	b = appendBool(b, 11, m.ReturnAllNonrefProperties)
	return b, nil
}

func (m *PropertiesRequest) unmarshal(b []byte) error {
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
			m.NonRefProperties = append(m.NonRefProperties, v)
			b = b[n:]
		case 2:
			sub := &RefPropertiesRequest{}
			n, err := consumeMessage(b, sub)
			if err != nil {
				return err
			}
			m.RefProperties = append(m.RefProperties, sub)
			b = b[n:]
		case 3:
			sub := &ObjectPropertiesRequest{}
			n, err := consumeMessage(b, sub)
			if err != nil {
				return err
			}
			m.ObjectProperties = append(m.ObjectProperties, sub)
			b = b[n:]
		case 11:
			v, n, err := consumeBool(b)
			if err != nil {
				return err
			}
			m.ReturnAllNonrefProperties = v
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

type ObjectPropertiesRequest struct {
	PropName            string
	PrimitiveProperties []string
	ObjectProperties    []*ObjectPropertiesRequest
}

func (m *ObjectPropertiesRequest) marshal(b []byte) ([]byte, error) {
	var err error
	b = appendString(b, 1, m.PropName)
	b = appendRepeatedString(b, 2, m.PrimitiveProperties)
	for _, o := range m.ObjectProperties {
		if b, err = appendMessage(b, 3, o); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (m *ObjectPropertiesRequest) unmarshal(b []byte) error {
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
			m.PropName = v
			b = b[n:]
		case 2:
			v, n, err := consumeString(b)
			if err != nil {
				return err
			}
			m.PrimitiveProperties = append(m.PrimitiveProperties, v)
			b = b[n:]
		case 3:
			sub := &ObjectPropertiesRequest{}
			n, err := consumeMessage(b, sub)
			if err != nil {
				return err
			}
			m.ObjectProperties = append(m.ObjectProperties, sub)
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

type RefPropertiesRequest struct {
	ReferenceProperty string
	Properties        *PropertiesRequest
	Metadata          *MetadataRequest
	TargetCollection  string
}

func (m *RefPropertiesRequest) marshal(b []byte) ([]byte, error) {
	var err error
	b = appendString(b, 1, m.ReferenceProperty)
	if m.Properties != nil {
		if b, err = appendMessage(b, 2, m.Properties); err != nil {
			return nil, err
		}
	}
	if m.Metadata != nil {
		if b, err = appendMessage(b, 3, m.Metadata); err != nil {
			return nil, err
		}
	}
	b = appendString(b, 4, m.TargetCollection)
	return b, nil
}

func (m *RefPropertiesRequest) unmarshal(b []byte) error {
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
			m.ReferenceProperty = v
			b = b[n:]
		case 2:
			m.Properties = &PropertiesRequest{}
			n, err := consumeMessage(b, m.Properties)
			if err != nil {
				return err
			}
			b = b[n:]
		case 3:
			m.Metadata = &MetadataRequest{}
			n, err := consumeMessage(b, m.Metadata)
			if err != nil {
				return err
			}
			b = b[n:]
		case 4:
			v, n, err := consumeString(b)
			if err != nil {
				return err
			}
			m.TargetCollection = v
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

type Hybrid_FusionType int32

const (
	Hybrid_FUSION_TYPE_UNSPECIFIED    Hybrid_FusionType = 0
	Hybrid_FUSION_TYPE_RANKED         Hybrid_FusionType = 1
	Hybrid_FUSION_TYPE_RELATIVE_SCORE Hybrid_FusionType = 2
)

type Hybrid struct {
	Query      string
	Properties []string
	// Deprecated: superseded by VectorBytes.
	Vector        []float32
	Alpha         float32
	FusionType    Hybrid_FusionType
	VectorBytes   []byte
	TargetVectors []string
	NearText      *NearTextSearch
	NearVector    *NearVector
}

func (m *Hybrid) marshal(b []byte) ([]byte, error) {
	var err error
	b = appendString(b, 1, m.Query)
	b = appendRepeatedString(b, 2, m.Properties)
	b = appendPackedFloat(b, 3, m.Vector)
	b = appendFloat(b, 4, m.Alpha)
	b = appendEnum(b, 5, int32(m.FusionType))
	b = appendBytes(b, 6, m.VectorBytes)
	b = appendRepeatedString(b, 7, m.TargetVectors)
	if m.NearText != nil {
		if b, err = appendMessage(b, 8, m.NearText); err != nil {
			return nil, err
		}
	}
	if m.NearVector != nil {
		if b, err = appendMessage(b, 9, m.NearVector); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (m *Hybrid) unmarshal(b []byte) error {
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
			m.Query = v
			b = b[n:]
		case 2:
			v, n, err := consumeString(b)
			if err != nil {
				return err
			}
			m.Properties = append(m.Properties, v)
			b = b[n:]
		case 3:
			var err error
			m.Vector, n, err = consumeRepeatedFloat(b, typ, m.Vector)
			if err != nil {
				return err
			}
			b = b[n:]
		case 4:
			v, n, err := consumeFloat(b)
			if err != nil {
				return err
			}
			m.Alpha = v
			b = b[n:]
		case 5:
			v, n, err := consumeVarint(b)
			if err != nil {
				return err
			}
			m.FusionType = Hybrid_FusionType(v)
			b = b[n:]
		case 6:
			v, n, err := consumeBytes(b)
			if err != nil {
				return err
			}
			m.VectorBytes = v
			b = b[n:]
		case 7:
			v, n, err := consumeString(b)
			if err != nil {
				return err
			}
			m.TargetVectors = append(m.TargetVectors, v)
			b = b[n:]
		case 8:
			m.NearText = &NearTextSearch{}
			n, err := consumeMessage(b, m.NearText)
			if err != nil {
				return err
			}
			b = b[n:]
		case 9:
			m.NearVector = &NearVector{}
			n, err := consumeMessage(b, m.NearVector)
			if err != nil {
				return err
			}
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

type NearTextSearch struct {
	Query         []string
	Certainty     *float64
	Distance      *float64
	MoveTo        *NearTextSearch_Move
	MoveAway      *NearTextSearch_Move
	TargetVectors []string
}

type NearTextSearch_Move struct {
	Force    float32
	Concepts []string
	Uuids    []string
}

func (m *NearTextSearch) marshal(b []byte) ([]byte, error) {
	var err error
	b = appendRepeatedString(b, 1, m.Query)
	b = appendOptDouble(b, 2, m.Certainty)
	b = appendOptDouble(b, 3, m.Distance)
	if m.MoveTo != nil {
		if b, err = appendMessage(b, 4, m.MoveTo); err != nil {
			return nil, err
		}
	}
	if m.MoveAway != nil {
		if b, err = appendMessage(b, 5, m.MoveAway); err != nil {
			return nil, err
		}
	}
	b = appendRepeatedString(b, 6, m.TargetVectors)
	return b, nil
}

func (m *NearTextSearch) unmarshal(b []byte) error {
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
			m.Query = append(m.Query, v)
			b = b[n:]
		case 2:
			v, n, err := consumeDouble(b)
			if err != nil {
				return err
			}
			m.Certainty = float64Ptr(v)
			b = b[n:]
		case 3:
			v, n, err := consumeDouble(b)
			if err != nil {
				return err
			}
			m.Distance = float64Ptr(v)
			b = b[n:]
		case 4:
			m.MoveTo = &NearTextSearch_Move{}
			n, err := consumeMessage(b, m.MoveTo)
			if err != nil {
				return err
			}
			b = b[n:]
		case 5:
			m.MoveAway = &NearTextSearch_Move{}
			n, err := consumeMessage(b, m.MoveAway)
			if err != nil {
				return err
			}
			b = b[n:]
		case 6:
			v, n, err := consumeString(b)
			if err != nil {
				return err
			}
			m.TargetVectors = append(m.TargetVectors, v)
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

func (m *NearTextSearch_Move) marshal(b []byte) ([]byte, error) {
	b = appendFloat(b, 1, m.Force)
	b = appendRepeatedString(b, 2, m.Concepts)
	b = appendRepeatedString(b, 3, m.Uuids)
	return b, nil
}

func (m *NearTextSearch_Move) unmarshal(b []byte) error {
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
			m.Force = v
			b = b[n:]
		case 2:
			v, n, err := consumeString(b)
			if err != nil {
				return err
			}
			m.Concepts = append(m.Concepts, v)
			b = b[n:]
		case 3:
			v, n, err := consumeString(b)
			if err != nil {
				return err
			}
			m.Uuids = append(m.Uuids, v)
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

// NearMediaBase is the shared shape of the near-media searches; each
// concrete message only differs in the name of field 1.
type NearMediaBase struct {
	Media         string
	Certainty     *float64
	Distance      *float64
	TargetVectors []string
}

func (m *NearMediaBase) marshal(b []byte) ([]byte, error) {
	b = appendString(b, 1, m.Media)
	b = appendOptDouble(b, 2, m.Certainty)
	b = appendOptDouble(b, 3, m.Distance)
	b = appendRepeatedString(b, 4, m.TargetVectors)
	return b, nil
}

func (m *NearMediaBase) unmarshal(b []byte) error {
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
			m.Media = v
			b = b[n:]
		case 2:
			v, n, err := consumeDouble(b)
			if err != nil {
				return err
			}
			m.Certainty = float64Ptr(v)
			b = b[n:]
		case 3:
			v, n, err := consumeDouble(b)
			if err != nil {
				return err
			}
			m.Distance = float64Ptr(v)
			b = b[n:]
		case 4:
			v, n, err := consumeString(b)
			if err != nil {
				return err
			}
			m.TargetVectors = append(m.TargetVectors, v)
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

type NearImageSearch struct{ NearMediaBase }

type NearAudioSearch struct{ NearMediaBase }

type NearVideoSearch struct{ NearMediaBase }

type NearDepthSearch struct{ NearMediaBase }

type NearThermalSearch struct{ NearMediaBase }

type NearIMUSearch struct{ NearMediaBase }

type BM25 struct {
	Query      string
	Properties []string
}

func (m *BM25) marshal(b []byte) ([]byte, error) {
	b = appendString(b, 1, m.Query)
	b = appendRepeatedString(b, 2, m.Properties)
	return b, nil
}

func (m *BM25) unmarshal(b []byte) error {
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
			m.Query = v
			b = b[n:]
		case 2:
			v, n, err := consumeString(b)
			if err != nil {
				return err
			}
			m.Properties = append(m.Properties, v)
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

type NearVector struct {
	// Deprecated: superseded by VectorBytes.
	Vector        []float32
	Certainty     *float64
	Distance      *float64
	VectorBytes   []byte
	TargetVectors []string
}

func (m *NearVector) marshal(b []byte) ([]byte, error) {
	b = appendPackedFloat(b, 1, m.Vector)
	b = appendOptDouble(b, 2, m.Certainty)
	b = appendOptDouble(b, 3, m.Distance)
	b = appendBytes(b, 4, m.VectorBytes)
	b = appendRepeatedString(b, 5, m.TargetVectors)
	return b, nil
}

func (m *NearVector) unmarshal(b []byte) error {
	for len(b) > 0 {
		num, typ, n, err := consumeTag(b)
		if err != nil {
			return err
		}
		b = b[n:]
		switch num {
		case 1:
			var err error
			m.Vector, n, err = consumeRepeatedFloat(b, typ, m.Vector)
			if err != nil {
				return err
			}
			b = b[n:]
		case 2:
			v, n, err := consumeDouble(b)
			if err != nil {
				return err
			}
			m.Certainty = float64Ptr(v)
			b = b[n:]
		case 3:
			v, n, err := consumeDouble(b)
			if err != nil {
				return err
			}
			m.Distance = float64Ptr(v)
			b = b[n:]
		case 4:
			v, n, err := consumeBytes(b)
			if err != nil {
				return err
			}
			m.VectorBytes = v
			b = b[n:]
		case 5:
			v, n, err := consumeString(b)
			if err != nil {
				return err
			}
			m.TargetVectors = append(m.TargetVectors, v)
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

type NearObject struct {
	Id            string
	Certainty     *float64
	Distance      *float64
	TargetVectors []string
}

func (m *NearObject) marshal(b []byte) ([]byte, error) {
	b = appendString(b, 1, m.Id)
	b = appendOptDouble(b, 2, m.Certainty)
	b = appendOptDouble(b, 3, m.Distance)
	b = appendRepeatedString(b, 4, m.TargetVectors)
	return b, nil
}

func (m *NearObject) unmarshal(b []byte) error {
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
			m.Id = v
			b = b[n:]
		case 2:
			v, n, err := consumeDouble(b)
			if err != nil {
				return err
			}
			m.Certainty = float64Ptr(v)
			b = b[n:]
		case 3:
			v, n, err := consumeDouble(b)
			if err != nil {
				return err
			}
			m.Distance = float64Ptr(v)
			b = b[n:]
		case 4:
			v, n, err := consumeString(b)
			if err != nil {
				return err
			}
			m.TargetVectors = append(m.TargetVectors, v)
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

type Rerank struct {
	Property string
	Query    *string
}

func (m *Rerank) marshal(b []byte) ([]byte, error) {
	b = appendString(b, 1, m.Property)
	b = appendOptString(b, 2, m.Query)
	return b, nil
}

func (m *Rerank) unmarshal(b []byte) error {
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
			m.Property = v
			b = b[n:]
		case 2:
			v, n, err := consumeString(b)
			if err != nil {
				return err
			}
			m.Query = stringPtr(v)
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

type SearchReply struct {
	Took                    float32
	Results                 []*SearchResult
	GenerativeGroupedResult *string
	GroupByResults          []*GroupByResult
}

func (m *SearchReply) marshal(b []byte) ([]byte, error) {
	var err error
	b = appendFloat(b, 1, m.Took)
	for _, r := range m.Results {
		if b, err = appendMessage(b, 2, r); err != nil {
			return nil, err
		}
	}
	b = appendOptString(b, 3, m.GenerativeGroupedResult)
	for _, g := range m.GroupByResults {
		if b, err = appendMessage(b, 4, g); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (m *SearchReply) unmarshal(b []byte) error {
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
			m.Took = v
			b = b[n:]
		case 2:
			sub := &SearchResult{}
			n, err := consumeMessage(b, sub)
			if err != nil {
				return err
			}
			m.Results = append(m.Results, sub)
			b = b[n:]
		case 3:
			v, n, err := consumeString(b)
			if err != nil {
				return err
			}
			m.GenerativeGroupedResult = stringPtr(v)
			b = b[n:]
		case 4:
			sub := &GroupByResult{}
			n, err := consumeMessage(b, sub)
			if err != nil {
				return err
			}
			m.GroupByResults = append(m.GroupByResults, sub)
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

type RerankReply struct {
	Score float64
}

func (m *RerankReply) marshal(b []byte) ([]byte, error) {
	return appendDouble(b, 1, m.Score), nil
}

func (m *RerankReply) unmarshal(b []byte) error {
	for len(b) > 0 {
		num, typ, n, err := consumeTag(b)
		if err != nil {
			return err
		}
		b = b[n:]
		if num == 1 {
			v, n, err := consumeDouble(b)
			if err != nil {
				return err
			}
			m.Score = v
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

type GenerativeReply struct {
	Result string
}

func (m *GenerativeReply) marshal(b []byte) ([]byte, error) {
	return appendString(b, 1, m.Result), nil
}

func (m *GenerativeReply) unmarshal(b []byte) error {
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
			m.Result = v
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

type GroupByResult struct {
	Name            string
	MinDistance     float32
	MaxDistance     float32
	NumberOfObjects int64
	Objects         []*SearchResult
	Rerank          *RerankReply
	Generative      *GenerativeReply
}

func (m *GroupByResult) marshal(b []byte) ([]byte, error) {
	var err error
	b = appendString(b, 1, m.Name)
	b = appendFloat(b, 2, m.MinDistance)
	b = appendFloat(b, 3, m.MaxDistance)
	b = appendInt64(b, 4, m.NumberOfObjects)
	for _, o := range m.Objects {
		if b, err = appendMessage(b, 5, o); err != nil {
			return nil, err
		}
	}
	if m.Rerank != nil {
		if b, err = appendMessage(b, 6, m.Rerank); err != nil {
			return nil, err
		}
	}
	if m.Generative != nil {
		if b, err = appendMessage(b, 7, m.Generative); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (m *GroupByResult) unmarshal(b []byte) error {
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
			v, n, err := consumeFloat(b)
			if err != nil {
				return err
			}
			m.MinDistance = v
			b = b[n:]
		case 3:
			v, n, err := consumeFloat(b)
			if err != nil {
				return err
			}
			m.MaxDistance = v
			b = b[n:]
		case 4:
			v, n, err := consumeVarint(b)
			if err != nil {
				return err
			}
			m.NumberOfObjects = int64(v)
			b = b[n:]
		case 5:
			sub := &SearchResult{}
			n, err := consumeMessage(b, sub)
			if err != nil {
				return err
			}
			m.Objects = append(m.Objects, sub)
			b = b[n:]
		case 6:
			m.Rerank = &RerankReply{}
			n, err := consumeMessage(b, m.Rerank)
			if err != nil {
				return err
			}
			b = b[n:]
		case 7:
			m.Generative = &GenerativeReply{}
			n, err := consumeMessage(b, m.Generative)
			if err != nil {
				return err
			}
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

type SearchResult struct {
	Properties *PropertiesResult
	Metadata   *MetadataResult
}

func (m *SearchResult) marshal(b []byte) ([]byte, error) {
	var err error
	if m.Properties != nil {
		if b, err = appendMessage(b, 1, m.Properties); err != nil {
			return nil, err
		}
	}
	if m.Metadata != nil {
		if b, err = appendMessage(b, 2, m.Metadata); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (m *SearchResult) unmarshal(b []byte) error {
	for len(b) > 0 {
		num, typ, n, err := consumeTag(b)
		if err != nil {
			return err
		}
		b = b[n:]
		switch num {
		case 1:
			m.Properties = &PropertiesResult{}
			n, err := consumeMessage(b, m.Properties)
			if err != nil {
				return err
			}
			b = b[n:]
		case 2:
			m.Metadata = &MetadataResult{}
			n, err := consumeMessage(b, m.Metadata)
			if err != nil {
				return err
			}
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

// MetadataResult carries a "-Present" companion for every optional scalar:
// the value field alone cannot distinguish "absent" from a legitimate zero
// (a zero distance is a perfect match, not a missing one).
type MetadataResult struct {
	Id                        string
	Vector                    []float32
	CreationTimeUnix          int64
	CreationTimeUnixPresent   bool
	LastUpdateTimeUnix        int64
	LastUpdateTimeUnixPresent bool
	Distance                  float32
	DistancePresent           bool
	Certainty                 float32
	CertaintyPresent          bool
	Score                     float32
	ScorePresent              bool
	ExplainScore              string
	ExplainScorePresent       bool
	IsConsistent              *bool
	Generative                string
	GenerativePresent         bool
	IsConsistentPresent       bool
	VectorBytes               []byte
	IdAsBytes                 []byte
	RerankScore               float64
	RerankScorePresent        bool
	Vectors                   []*Vectors
}

func (m *MetadataResult) marshal(b []byte) ([]byte, error) {
	var err error
	b = appendString(b, 1, m.Id)
	b = appendPackedFloat(b, 2, m.Vector)
	b = appendInt64(b, 3, m.CreationTimeUnix)
	b = appendBool(b, 4, m.CreationTimeUnixPresent)
	b = appendInt64(b, 5, m.LastUpdateTimeUnix)
	b = appendBool(b, 6, m.LastUpdateTimeUnixPresent)
	b = appendFloat(b, 7, m.Distance)
	b = appendBool(b, 8, m.DistancePresent)
	b = appendFloat(b, 9, m.Certainty)
	b = appendBool(b, 10, m.CertaintyPresent)
	b = appendFloat(b, 11, m.Score)
	b = appendBool(b, 12, m.ScorePresent)
	b = appendString(b, 13, m.ExplainScore)
	b = appendBool(b, 14, m.ExplainScorePresent)
	b = appendOptBool(b, 15, m.IsConsistent)
	b = appendString(b, 16, m.Generative)
	b = appendBool(b, 17, m.GenerativePresent)
	b = appendBool(b, 18, m.IsConsistentPresent)
	b = appendBytes(b, 19, m.VectorBytes)
	b = appendBytes(b, 20, m.IdAsBytes)
	b = appendDouble(b, 21, m.RerankScore)
	b = appendBool(b, 22, m.RerankScorePresent)
	for _, v := range m.Vectors {
		if b, err = appendMessage(b, 23, v); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (m *MetadataResult) unmarshal(b []byte) error {
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
			m.Id = v
			b = b[n:]
		case 2:
			var err error
			m.Vector, n, err = consumeRepeatedFloat(b, typ, m.Vector)
			if err != nil {
				return err
			}
			b = b[n:]
		case 3:
			v, n, err := consumeVarint(b)
			if err != nil {
				return err
			}
			m.CreationTimeUnix = int64(v)
			b = b[n:]
		case 4:
			v, n, err := consumeBool(b)
			if err != nil {
				return err
			}
			m.CreationTimeUnixPresent = v
			b = b[n:]
		case 5:
			v, n, err := consumeVarint(b)
			if err != nil {
				return err
			}
			m.LastUpdateTimeUnix = int64(v)
			b = b[n:]
		case 6:
			v, n, err := consumeBool(b)
			if err != nil {
				return err
			}
			m.LastUpdateTimeUnixPresent = v
			b = b[n:]
		case 7:
			v, n, err := consumeFloat(b)
			if err != nil {
				return err
			}
			m.Distance = v
			b = b[n:]
		case 8:
			v, n, err := consumeBool(b)
			if err != nil {
				return err
			}
			m.DistancePresent = v
			b = b[n:]
		case 9:
			v, n, err := consumeFloat(b)
			if err != nil {
				return err
			}
			m.Certainty = v
			b = b[n:]
		case 10:
			v, n, err := consumeBool(b)
			if err != nil {
				return err
			}
			m.CertaintyPresent = v
			b = b[n:]
		case 11:
			v, n, err := consumeFloat(b)
			if err != nil {
				return err
			}
			m.Score = v
			b = b[n:]
		case 12:
			v, n, err := consumeBool(b)
			if err != nil {
				return err
			}
			m.ScorePresent = v
			b = b[n:]
		case 13:
			v, n, err := consumeString(b)
			if err != nil {
				return err
			}
			m.ExplainScore = v
			b = b[n:]
		case 14:
			v, n, err := consumeBool(b)
			if err != nil {
				return err
			}
			m.ExplainScorePresent = v
			b = b[n:]
		case 15:
			v, n, err := consumeBool(b)
			if err != nil {
				return err
			}
			m.IsConsistent = boolPtr(v)
			b = b[n:]
		case 16:
			v, n, err := consumeString(b)
			if err != nil {
				return err
			}
			m.Generative = v
			b = b[n:]
		case 17:
			v, n, err := consumeBool(b)
			if err != nil {
				return err
			}
			m.GenerativePresent = v
			b = b[n:]
		case 18:
			v, n, err := consumeBool(b)
			if err != nil {
				return err
			}
			m.IsConsistentPresent = v
			b = b[n:]
		case 19:
			v, n, err := consumeBytes(b)
			if err != nil {
				return err
			}
			m.VectorBytes = v
			b = b[n:]
		case 20:
			v, n, err := consumeBytes(b)
			if err != nil {
				return err
			}
			m.IdAsBytes = v
			b = b[n:]
		case 21:
			v, n, err := consumeDouble(b)
			if err != nil {
				return err
			}
			m.RerankScore = v
			b = b[n:]
		case 22:
			v, n, err := consumeBool(b)
			if err != nil {
				return err
			}
			m.RerankScorePresent = v
			b = b[n:]
		case 23:
			sub := &Vectors{}
			n, err := consumeMessage(b, sub)
			if err != nil {
				return err
			}
			m.Vectors = append(m.Vectors, sub)
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

// PropertiesResult carries the non-reference property map in two encodings:
// NonRefProperties (google.protobuf.Struct) with the typed array containers
// is the pre-1.23 form, NonRefProps (weaviate.v1.Properties) the current one.
type PropertiesResult struct {
	NonRefProperties       *structpb.Struct
	RefProps               []*RefPropertiesResult
	TargetCollection       string
	Metadata               *MetadataResult
	NumberArrayProperties  []*NumberArrayProperties
	IntArrayProperties     []*IntArrayProperties
	TextArrayProperties    []*TextArrayProperties
	BooleanArrayProperties []*BooleanArrayProperties
	ObjectProperties       []*ObjectProperties
	ObjectArrayProperties  []*ObjectArrayProperties
	NonRefProps            *Properties
	RefPropsRequested      bool
}

func (m *PropertiesResult) marshal(b []byte) ([]byte, error) {
	var err error
	if m.NonRefProperties != nil {
		if b, err = appendProto(b, 1, m.NonRefProperties); err != nil {
			return nil, err
		}
	}
	for _, r := range m.RefProps {
		if b, err = appendMessage(b, 2, r); err != nil {
			return nil, err
		}
	}
	b = appendString(b, 3, m.TargetCollection)
	if m.Metadata != nil {
		if b, err = appendMessage(b, 4, m.Metadata); err != nil {
			return nil, err
		}
	}
	for _, p := range m.NumberArrayProperties {
		if b, err = appendMessage(b, 5, p); err != nil {
			return nil, err
		}
	}
	for _, p := range m.IntArrayProperties {
		if b, err = appendMessage(b, 6, p); err != nil {
			return nil, err
		}
	}
	for _, p := range m.TextArrayProperties {
		if b, err = appendMessage(b, 7, p); err != nil {
			return nil, err
		}
	}
	for _, p := range m.BooleanArrayProperties {
		if b, err = appendMessage(b, 8, p); err != nil {
			return nil, err
		}
	}
	for _, p := range m.ObjectProperties {
		if b, err = appendMessage(b, 9, p); err != nil {
			return nil, err
		}
	}
	for _, p := range m.ObjectArrayProperties {
		if b, err = appendMessage(b, 10, p); err != nil {
			return nil, err
		}
	}
	if m.NonRefProps != nil {
		if b, err = appendMessage(b, 11, m.NonRefProps); err != nil {
			return nil, err
		}
	}
	b = appendBool(b, 12, m.RefPropsRequested)
	return b, nil
}

func (m *PropertiesResult) unmarshal(b []byte) error {
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
			sub := &RefPropertiesResult{}
			n, err := consumeMessage(b, sub)
			if err != nil {
				return err
			}
			m.RefProps = append(m.RefProps, sub)
			b = b[n:]
		case 3:
			v, n, err := consumeString(b)
			if err != nil {
				return err
			}
			m.TargetCollection = v
			b = b[n:]
		case 4:
			m.Metadata = &MetadataResult{}
			n, err := consumeMessage(b, m.Metadata)
			if err != nil {
				return err
			}
			b = b[n:]
		case 5:
			sub := &NumberArrayProperties{}
			n, err := consumeMessage(b, sub)
			if err != nil {
				return err
			}
			m.NumberArrayProperties = append(m.NumberArrayProperties, sub)
			b = b[n:]
		case 6:
			sub := &IntArrayProperties{}
			n, err := consumeMessage(b, sub)
			if err != nil {
				return err
			}
			m.IntArrayProperties = append(m.IntArrayProperties, sub)
			b = b[n:]
		case 7:
			sub := &TextArrayProperties{}
			n, err := consumeMessage(b, sub)
			if err != nil {
				return err
			}
			m.TextArrayProperties = append(m.TextArrayProperties, sub)
			b = b[n:]
		case 8:
			sub := &BooleanArrayProperties{}
			n, err := consumeMessage(b, sub)
			if err != nil {
				return err
			}
			m.BooleanArrayProperties = append(m.BooleanArrayProperties, sub)
			b = b[n:]
		case 9:
			sub := &ObjectProperties{}
			n, err := consumeMessage(b, sub)
			if err != nil {
				return err
			}
			m.ObjectProperties = append(m.ObjectProperties, sub)
			b = b[n:]
		case 10:
			sub := &ObjectArrayProperties{}
			n, err := consumeMessage(b, sub)
			if err != nil {
				return err
			}
			m.ObjectArrayProperties = append(m.ObjectArrayProperties, sub)
			b = b[n:]
		case 11:
			m.NonRefProps = &Properties{}
			n, err := consumeMessage(b, m.NonRefProps)
			if err != nil {
				return err
			}
			b = b[n:]
		case 12:
			v, n, err := consumeBool(b)
			if err != nil {
				return err
			}
			m.RefPropsRequested = v
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

type RefPropertiesResult struct {
	Properties []*PropertiesResult
	PropName   string
}

func (m *RefPropertiesResult) marshal(b []byte) ([]byte, error) {
	var err error
	for _, p := range m.Properties {
		if b, err = appendMessage(b, 1, p); err != nil {
			return nil, err
		}
	}
	b = appendString(b, 2, m.PropName)
	return b, nil
}

func (m *RefPropertiesResult) unmarshal(b []byte) error {
	for len(b) > 0 {
		num, typ, n, err := consumeTag(b)
		if err != nil {
			return err
		}
		b = b[n:]
		switch num {
		case 1:
			sub := &PropertiesResult{}
			n, err := consumeMessage(b, sub)
			if err != nil {
				return err
			}
			m.Properties = append(m.Properties, sub)
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
