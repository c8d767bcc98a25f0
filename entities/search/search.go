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

// Package search holds the decoded search results. All optional metadata
// attributes are pointers: nil means the server did not send the attribute,
// which is distinct from a zero value (a zero distance is an exact match).
package search

import (
	"github.com/go-openapi/strfmt"
)

// PropertyBag is the canonical decoded form of an object's non-reference
// properties. Values are string, bool, float64, int64, []float32 (blobs stay
// base64 strings), the respective slices, time strings in RFC3339, nested
// PropertyBag for object properties, or []PropertyBag for object arrays.
type PropertyBag map[string]interface{}

// Metadata carries the per-object metadata attributes that were requested.
type Metadata struct {
	ID                 strfmt.UUID
	Vector             []float32
	Vectors            map[string][]float32
	CreationTimeUnix   *int64
	LastUpdateTimeUnix *int64
	Distance           *float32
	Certainty          *float32
	Score              *float32
	ExplainScore       *string
	IsConsistent       *bool
	RerankScore        *float64
	Generative         *string
}

// Object is one decoded search hit. References holds the requested
// cross-reference expansions keyed by reference property name; it is nil
// when no references were requested.
type Object struct {
	Collection string
	Properties PropertyBag
	References map[string][]Object
	Metadata   Metadata
}

// Group is one group-by bucket, capped at the requested objects-per-group.
type Group struct {
	Name            string
	MinDistance     float32
	MaxDistance     float32
	NumberOfObjects int64
	Objects         []Object
	RerankScore     *float64
	Generative      *string
}

// Result is a fully decoded search reply. Objects and Groups are mutually
// exclusive: a group-by search fills Groups, everything else fills Objects.
type Result struct {
	Objects                 []Object
	Groups                  []Group
	GenerativeGroupedResult *string

	// Took is the server-side processing time in seconds.
	Took float32
}
