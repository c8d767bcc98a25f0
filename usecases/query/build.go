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
	"github.com/google/uuid"

	"github.com/CShorten/weaviate-go-client/entities/filters"
	"github.com/CShorten/weaviate-go-client/entities/searchparams"
	protocol "github.com/CShorten/weaviate-go-client/grpc/protocol/v1"
	byteops "github.com/CShorten/weaviate-go-client/usecases/byte_operations"
)

func buildSearchRequest(p Params) (*protocol.SearchRequest, error) {
	if p.Collection == "" {
		return nil, invalidArgumentf("collection must not be empty")
	}

	req := &protocol.SearchRequest{
		Collection:  p.Collection,
		Tenant:      p.Tenant,
		Limit:       uint32(p.Limit),
		Offset:      uint32(p.Offset),
		Autocut:     uint32(p.AutoLimit),
		After:       p.After,
		Uses_123Api: true,
		Uses_125Api: true,
	}

	if lvl, err := consistencyToWire(p.ConsistencyLevel); err != nil {
		return nil, err
	} else if lvl != nil {
		req.ConsistencyLevel = lvl
	}

	if err := setSearchMode(req, p.Mode); err != nil {
		return nil, err
	}

	if p.Filters != nil && p.Filters.Root != nil {
		f, err := clauseToWire(p.Filters.Root)
		if err != nil {
			return nil, err
		}
		req.Filters = f
	}

	for _, s := range p.Sort {
		sb, err := sortToWire(s)
		if err != nil {
			return nil, err
		}
		req.SortBy = append(req.SortBy, sb)
	}

	if p.GroupBy != nil {
		if p.GroupBy.Property == "" {
			return nil, invalidArgumentf("group by requires a property")
		}
		req.GroupBy = &protocol.GroupBy{
			Path:            []string{p.GroupBy.Property},
			NumberOfGroups:  int32(p.GroupBy.NumberOfGroups),
			ObjectsPerGroup: int32(p.GroupBy.ObjectsPerGroup),
		}
	}

	if p.Rerank != nil {
		if p.Rerank.Property == "" {
			return nil, invalidArgumentf("rerank requires a property")
		}
		req.Rerank = &protocol.Rerank{Property: p.Rerank.Property, Query: p.Rerank.Query}
	}

	if p.Generative != nil {
		req.Generative = &protocol.GenerativeSearch{
			SingleResponsePrompt: p.Generative.SinglePrompt,
			GroupedResponseTask:  p.Generative.GroupedTask,
			GroupedProperties:    p.Generative.GroupedProperties,
		}
	}

	md, err := metadataToWire(p)
	if err != nil {
		return nil, err
	}
	req.Metadata = md

	props, err := propertiesToWire(p.ReturnProperties, p.ReturnReferences)
	if err != nil {
		return nil, err
	}
	req.Properties = props

	return req, nil
}

func consistencyToWire(lvl ConsistencyLevel) (*protocol.ConsistencyLevel, error) {
	var wire protocol.ConsistencyLevel
	switch lvl {
	case ConsistencyLevelUnspecified:
		return nil, nil
	case ConsistencyLevelOne:
		wire = protocol.ConsistencyLevel_CONSISTENCY_LEVEL_ONE
	case ConsistencyLevelQuorum:
		wire = protocol.ConsistencyLevel_CONSISTENCY_LEVEL_QUORUM
	case ConsistencyLevelAll:
		wire = protocol.ConsistencyLevel_CONSISTENCY_LEVEL_ALL
	default:
		return nil, invalidArgumentf("unknown consistency level %d", lvl)
	}
	return &wire, nil
}

// setSearchMode maps the closed mode variants onto their wire fields. Each
// request sets at most one; a nil mode is a plain object scan.
func setSearchMode(req *protocol.SearchRequest, mode searchparams.SearchMode) error {
	switch m := mode.(type) {
	case nil:
		return nil
	case searchparams.NearVector:
		nv, err := nearVectorToWire(m)
		if err != nil {
			return err
		}
		req.NearVector = nv
	case searchparams.NearObject:
		no, err := nearObjectToWire(m)
		if err != nil {
			return err
		}
		req.NearObject = no
	case searchparams.NearText:
		nt, err := nearTextToWire(m)
		if err != nil {
			return err
		}
		req.NearText = nt
	case searchparams.NearMedia:
		return setNearMedia(req, m)
	case searchparams.Hybrid:
		h, err := hybridToWire(m)
		if err != nil {
			return err
		}
		req.HybridSearch = h
	case searchparams.BM25:
		if m.Query == "" {
			return invalidArgumentf("bm25 search requires a query")
		}
		req.Bm25Search = &protocol.BM25{Query: m.Query, Properties: m.Properties}
	default:
		return invalidArgumentf("unsupported search mode %T", mode)
	}
	return nil
}

func nearVectorToWire(m searchparams.NearVector) (*protocol.NearVector, error) {
	if len(m.Vector) == 0 {
		return nil, invalidArgumentf("near vector search requires a vector")
	}
	if err := validateTargetVectors(m.TargetVectors); err != nil {
		return nil, err
	}
	return &protocol.NearVector{
		VectorBytes:   byteops.Fp32SliceToBytes(m.Vector),
		Certainty:     m.Certainty,
		Distance:      m.Distance,
		TargetVectors: m.TargetVectors,
	}, nil
}

func nearObjectToWire(m searchparams.NearObject) (*protocol.NearObject, error) {
	if _, err := uuid.Parse(m.ID); err != nil {
		return nil, invalidArgumentf("near object id %q is not a valid uuid", m.ID)
	}
	if err := validateTargetVectors(m.TargetVectors); err != nil {
		return nil, err
	}
	return &protocol.NearObject{
		Id:            m.ID,
		Certainty:     m.Certainty,
		Distance:      m.Distance,
		TargetVectors: m.TargetVectors,
	}, nil
}

func nearTextToWire(m searchparams.NearText) (*protocol.NearTextSearch, error) {
	if len(m.Query) == 0 {
		return nil, invalidArgumentf("near text search requires at least one concept")
	}
	if err := validateTargetVectors(m.TargetVectors); err != nil {
		return nil, err
	}
	moveTo, err := moveToWire(m.MoveTo)
	if err != nil {
		return nil, err
	}
	moveAway, err := moveToWire(m.MoveAwayFrom)
	if err != nil {
		return nil, err
	}
	return &protocol.NearTextSearch{
		Query:         m.Query,
		Certainty:     m.Certainty,
		Distance:      m.Distance,
		MoveTo:        moveTo,
		MoveAway:      moveAway,
		TargetVectors: m.TargetVectors,
	}, nil
}

func moveToWire(m *searchparams.Move) (*protocol.NearTextSearch_Move, error) {
	if m == nil {
		return nil, nil
	}
	if len(m.Concepts) == 0 && len(m.Objects) == 0 {
		return nil, invalidArgumentf("move requires concepts or object ids")
	}
	for _, id := range m.Objects {
		if _, err := uuid.Parse(id); err != nil {
			return nil, invalidArgumentf("move object id %q is not a valid uuid", id)
		}
	}
	return &protocol.NearTextSearch_Move{
		Force:    m.Force,
		Concepts: m.Concepts,
		Uuids:    m.Objects,
	}, nil
}

func setNearMedia(req *protocol.SearchRequest, m searchparams.NearMedia) error {
	if m.Media == "" {
		return invalidArgumentf("near %s search requires media content", m.Kind)
	}
	if err := validateTargetVectors(m.TargetVectors); err != nil {
		return err
	}
	base := protocol.NearMediaBase{
		Media:         m.Media,
		Certainty:     m.Certainty,
		Distance:      m.Distance,
		TargetVectors: m.TargetVectors,
	}
	switch m.Kind {
	case searchparams.MediaImage:
		req.NearImage = &protocol.NearImageSearch{NearMediaBase: base}
	case searchparams.MediaAudio:
		req.NearAudio = &protocol.NearAudioSearch{NearMediaBase: base}
	case searchparams.MediaVideo:
		req.NearVideo = &protocol.NearVideoSearch{NearMediaBase: base}
	case searchparams.MediaDepth:
		req.NearDepth = &protocol.NearDepthSearch{NearMediaBase: base}
	case searchparams.MediaThermal:
		req.NearThermal = &protocol.NearThermalSearch{NearMediaBase: base}
	case searchparams.MediaIMU:
		req.NearImu = &protocol.NearIMUSearch{NearMediaBase: base}
	default:
		return invalidArgumentf("unknown media kind %d", m.Kind)
	}
	return nil
}

func hybridToWire(m searchparams.Hybrid) (*protocol.Hybrid, error) {
	vectorParts := 0
	if len(m.Vector) > 0 {
		vectorParts++
	}
	if m.NearText != nil {
		vectorParts++
	}
	if m.NearVector != nil {
		vectorParts++
	}
	if vectorParts > 1 {
		return nil, invalidArgumentf("hybrid search accepts at most one of vector, near text and near vector")
	}
	if m.Query == "" && vectorParts == 0 {
		return nil, invalidArgumentf("hybrid search requires a query or a vector part")
	}
	if err := validateTargetVectors(m.TargetVectors); err != nil {
		return nil, err
	}

	h := &protocol.Hybrid{
		Query:         m.Query,
		Properties:    m.Properties,
		VectorBytes:   byteops.Fp32SliceToBytes(m.Vector),
		TargetVectors: m.TargetVectors,
	}
	if m.Alpha != nil {
		h.Alpha = float32(*m.Alpha)
	}

	switch m.FusionType {
	case searchparams.FusionDefault, searchparams.FusionRelativeScore:
		h.FusionType = protocol.Hybrid_FUSION_TYPE_RELATIVE_SCORE
	case searchparams.FusionRanked:
		h.FusionType = protocol.Hybrid_FUSION_TYPE_RANKED
	default:
		return nil, invalidArgumentf("unknown fusion type %d", m.FusionType)
	}

	if m.NearText != nil {
		nt, err := nearTextToWire(*m.NearText)
		if err != nil {
			return nil, err
		}
		h.NearText = nt
	}
	if m.NearVector != nil {
		nv, err := nearVectorToWire(*m.NearVector)
		if err != nil {
			return nil, err
		}
		h.NearVector = nv
	}
	return h, nil
}

// validateTargetVectors rejects duplicate names: target vectors are an
// order-independent set on the wire.
func validateTargetVectors(names []string) error {
	if len(names) < 2 {
		return nil
	}
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if _, ok := seen[name]; ok {
			return invalidArgumentf("duplicate target vector %q", name)
		}
		seen[name] = struct{}{}
	}
	return nil
}

func clauseToWire(c *filters.Clause) (*protocol.Filters, error) {
	op, err := operatorToWire(c.Operator)
	if err != nil {
		return nil, err
	}
	out := &protocol.Filters{Operator: op}

	if !c.Operator.OnValue() {
		if len(c.Operands) == 0 {
			return nil, invalidArgumentf("operator %s requires operands", c.Operator.Name())
		}
		for i := range c.Operands {
			nested, err := clauseToWire(&c.Operands[i])
			if err != nil {
				return nil, err
			}
			out.Filters = append(out.Filters, nested)
		}
		return out, nil
	}

	if c.On == nil {
		return nil, invalidArgumentf("operator %s requires a property path", c.Operator.Name())
	}
	out.On = c.On.Slice()

	if err := setFilterValue(out, c.Value, c.Operator); err != nil {
		return nil, err
	}
	return out, nil
}

func operatorToWire(op filters.Operator) (protocol.Filters_Operator, error) {
	switch op {
	case filters.OperatorEqual:
		return protocol.Filters_OPERATOR_EQUAL, nil
	case filters.OperatorNotEqual:
		return protocol.Filters_OPERATOR_NOT_EQUAL, nil
	case filters.OperatorGreaterThan:
		return protocol.Filters_OPERATOR_GREATER_THAN, nil
	case filters.OperatorGreaterThanEqual:
		return protocol.Filters_OPERATOR_GREATER_THAN_EQUAL, nil
	case filters.OperatorLessThan:
		return protocol.Filters_OPERATOR_LESS_THAN, nil
	case filters.OperatorLessThanEqual:
		return protocol.Filters_OPERATOR_LESS_THAN_EQUAL, nil
	case filters.OperatorAnd:
		return protocol.Filters_OPERATOR_AND, nil
	case filters.OperatorOr:
		return protocol.Filters_OPERATOR_OR, nil
	case filters.OperatorWithinGeoRange:
		return protocol.Filters_OPERATOR_WITHIN_GEO_RANGE, nil
	case filters.OperatorLike:
		return protocol.Filters_OPERATOR_LIKE, nil
	case filters.OperatorIsNull:
		return protocol.Filters_OPERATOR_IS_NULL, nil
	case filters.ContainsAny:
		return protocol.Filters_OPERATOR_CONTAINS_ANY, nil
	case filters.ContainsAll:
		return protocol.Filters_OPERATOR_CONTAINS_ALL, nil
	default:
		return protocol.Filters_OPERATOR_UNSPECIFIED,
			invalidArgumentf("unknown filter operator %d", op)
	}
}

func setFilterValue(out *protocol.Filters, v interface{}, op filters.Operator) error {
	switch val := v.(type) {
	case string:
		out.TestValue = &protocol.Filters_ValueText{ValueText: val}
	case bool:
		out.TestValue = &protocol.Filters_ValueBoolean{ValueBoolean: val}
	case int:
		out.TestValue = &protocol.Filters_ValueInt{ValueInt: int64(val)}
	case int64:
		out.TestValue = &protocol.Filters_ValueInt{ValueInt: val}
	case float64:
		out.TestValue = &protocol.Filters_ValueNumber{ValueNumber: val}
	case []string:
		out.TestValue = &protocol.Filters_ValueTextArray{ValueTextArray: &protocol.TextArray{Values: val}}
	case []bool:
		out.TestValue = &protocol.Filters_ValueBooleanArray{ValueBooleanArray: &protocol.BooleanArray{Values: val}}
	case []int64:
		out.TestValue = &protocol.Filters_ValueIntArray{ValueIntArray: &protocol.IntArray{Values: val}}
	case []int:
		vals := make([]int64, len(val))
		for i, x := range val {
			vals[i] = int64(x)
		}
		out.TestValue = &protocol.Filters_ValueIntArray{ValueIntArray: &protocol.IntArray{Values: vals}}
	case []float64:
		out.TestValue = &protocol.Filters_ValueNumberArray{ValueNumberArray: &protocol.NumberArray{Values: val}}
	case filters.GeoRange:
		out.TestValue = &protocol.Filters_ValueGeo{ValueGeo: &protocol.GeoCoordinatesFilter{
			Latitude:  val.Latitude,
			Longitude: val.Longitude,
			Distance:  val.Distance,
		}}
	case nil:
		if op != filters.OperatorIsNull {
			return invalidArgumentf("operator %s requires a value", op.Name())
		}
		out.TestValue = &protocol.Filters_ValueBoolean{ValueBoolean: true}
	default:
		return invalidArgumentf("unsupported filter value type %T", v)
	}
	return nil
}

func sortToWire(s filters.Sort) (*protocol.SortBy, error) {
	if len(s.Path) == 0 {
		return nil, invalidArgumentf("sort path cannot be empty")
	}
	switch s.Order {
	case "", "asc", "desc":
	default:
		return nil, invalidArgumentf(`invalid sort order, possible values are: ["asc", "desc"] not: %q`, s.Order)
	}
	return &protocol.SortBy{Ascending: s.Order != "desc", Path: s.Path}, nil
}

// metadataToWire always emits a MetadataRequest message: an empty one tells
// the server to return no metadata, which is the nil-ReturnMetadata default.
func metadataToWire(p Params) (*protocol.MetadataRequest, error) {
	md := &protocol.MetadataRequest{}
	if m := p.ReturnMetadata; m != nil {
		md.Uuid = true
		md.CreationTimeUnix = m.CreationTime
		md.LastUpdateTimeUnix = m.LastUpdateTime
		md.Distance = m.Distance
		md.Certainty = m.Certainty
		md.Score = m.Score
		md.ExplainScore = m.ExplainScore
		md.IsConsistent = m.IsConsistent
	}
	md.Vector = p.IncludeVector
	if len(p.NamedVectors) > 0 {
		if err := validateTargetVectors(p.NamedVectors); err != nil {
			return nil, err
		}
		md.Vectors = p.NamedVectors
	}
	return md, nil
}

// propertiesToWire builds the property selection. A nil selection requests
// every non-reference property; blobs stay excluded unless named.
func propertiesToWire(sel *PropertySelection, refs []ReferenceSelection) (*protocol.PropertiesRequest, error) {
	pr := &protocol.PropertiesRequest{}
	if sel == nil {
		pr.ReturnAllNonrefProperties = true
	} else {
		pr.NonRefProperties = sel.Names
		pr.ObjectProperties = objectSelectionsToWire(sel.Objects)
	}
	for i := range refs {
		rp, err := refToWire(refs[i])
		if err != nil {
			return nil, err
		}
		pr.RefProperties = append(pr.RefProperties, rp)
	}
	return pr, nil
}

func objectSelectionsToWire(sels []ObjectSelection) []*protocol.ObjectPropertiesRequest {
	if len(sels) == 0 {
		return nil
	}
	out := make([]*protocol.ObjectPropertiesRequest, len(sels))
	for i, s := range sels {
		out[i] = &protocol.ObjectPropertiesRequest{
			PropName:            s.Name,
			PrimitiveProperties: s.Primitives,
			ObjectProperties:    objectSelectionsToWire(s.Objects),
		}
	}
	return out
}

func refToWire(ref ReferenceSelection) (*protocol.RefPropertiesRequest, error) {
	if ref.Property == "" {
		return nil, invalidArgumentf("reference selection requires a property name")
	}
	props, err := propertiesToWire(ref.Properties, ref.References)
	if err != nil {
		return nil, err
	}
	out := &protocol.RefPropertiesRequest{
		ReferenceProperty: ref.Property,
		TargetCollection:  ref.TargetCollection,
		Properties:        props,
	}
	if ref.Metadata != nil {
		md, err := metadataToWire(Params{ReturnMetadata: ref.Metadata})
		if err != nil {
			return nil, err
		}
		out.Metadata = md
	}
	return out, nil
}
