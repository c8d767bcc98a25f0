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

// Package query translates typed search parameters into wire-format search
// requests and decodes the replies back into typed results. Building and
// decoding are stateless; a Query can be shared freely across goroutines.
package query

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/CShorten/weaviate-go-client/entities/filters"
	"github.com/CShorten/weaviate-go-client/entities/search"
	"github.com/CShorten/weaviate-go-client/entities/searchparams"
	protocol "github.com/CShorten/weaviate-go-client/grpc/protocol/v1"
)

// Transport performs the search round trip. Implementations must wrap
// transport-level failures as ConnectionError; retry policy lives there,
// never here.
type Transport interface {
	Search(ctx context.Context, req *protocol.SearchRequest) (*protocol.SearchReply, error)
}

// ConsistencyLevel is the caller-side replication consistency choice. The
// zero value leaves the decision to the server.
type ConsistencyLevel int

const (
	ConsistencyLevelUnspecified ConsistencyLevel = iota
	ConsistencyLevelOne
	ConsistencyLevelQuorum
	ConsistencyLevelAll
)

// MetadataQuery selects which metadata attributes the reply carries. The
// object id is always included once any metadata is requested at all.
type MetadataQuery struct {
	CreationTime   bool
	LastUpdateTime bool
	Distance       bool
	Certainty      bool
	Score          bool
	ExplainScore   bool
	IsConsistent   bool
}

// PropertySelection names the non-reference properties to return. Blob
// properties are only returned when named explicitly.
type PropertySelection struct {
	Names   []string
	Objects []ObjectSelection
}

// ObjectSelection selects members of a nested object property.
type ObjectSelection struct {
	Name       string
	Primitives []string
	Objects    []ObjectSelection
}

// ReferenceSelection expands a cross-reference property. TargetCollection
// is required when the reference points into more than one collection.
// A nil Properties selects all non-reference properties of the target.
type ReferenceSelection struct {
	Property         string
	TargetCollection string
	Metadata         *MetadataQuery
	Properties       *PropertySelection
	References       []ReferenceSelection
}

// Params is one search call. Exactly one Mode may be set; nil means a plain
// object scan. Nil ReturnMetadata means no metadata, nil ReturnProperties
// means all non-blob properties, nil ReturnReferences means none.
type Params struct {
	Collection string
	Tenant     string
	Mode       searchparams.SearchMode

	Filters    *filters.LocalFilter
	Sort       []filters.Sort
	GroupBy    *searchparams.GroupBy
	Rerank     *searchparams.Rerank
	Generative *searchparams.GenerativeSearch

	Limit     int
	Offset    int
	AutoLimit int
	After     string

	ConsistencyLevel ConsistencyLevel

	IncludeVector bool
	NamedVectors  []string

	ReturnMetadata   *MetadataQuery
	ReturnProperties *PropertySelection
	ReturnReferences []ReferenceSelection
}

type Query struct {
	transport Transport
	logger    logrus.FieldLogger
}

func New(transport Transport, logger logrus.FieldLogger) *Query {
	return &Query{transport: transport, logger: logger}
}

// Search builds the request, performs the round trip and decodes the reply.
// Failures carry exactly one of the taxonomy types: InvalidArgumentError
// before the network call, ConnectionError for transport failures,
// DecodeError for structurally invalid replies.
func (q *Query) Search(ctx context.Context, params Params) (*search.Result, error) {
	req, err := buildSearchRequest(params)
	if err != nil {
		return nil, err
	}

	reply, err := q.transport.Search(ctx, req)
	if err != nil {
		var connErr ConnectionError
		if !errors.As(err, &connErr) {
			err = ConnectionError{Err: err}
		}
		return nil, err
	}

	res, err := decodeReply(reply, params)
	if err != nil {
		return nil, err
	}

	q.logger.WithFields(logrus.Fields{
		"action":     "grpc_search",
		"collection": params.Collection,
		"took":       reply.Took,
		"results":    len(res.Objects),
		"groups":     len(res.Groups),
	}).Debug("search completed")

	return res, nil
}
