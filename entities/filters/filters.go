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

// Package filters holds the caller-side where-filter expression tree. A
// LocalFilter is translated clause by clause into the wire representation
// when a search request is built.
package filters

type Operator int

const (
	OperatorEqual Operator = iota + 1
	OperatorNotEqual
	OperatorGreaterThan
	OperatorGreaterThanEqual
	OperatorLessThan
	OperatorLessThanEqual
	OperatorAnd
	OperatorOr
	OperatorWithinGeoRange
	OperatorLike
	OperatorIsNull
	ContainsAny
	ContainsAll
)

// OnValue reports whether the operator compares a property against a value,
// as opposed to combining nested operands.
func (o Operator) OnValue() bool {
	switch o {
	case OperatorEqual,
		OperatorNotEqual,
		OperatorGreaterThan,
		OperatorGreaterThanEqual,
		OperatorLessThan,
		OperatorLessThanEqual,
		OperatorWithinGeoRange,
		OperatorLike,
		OperatorIsNull,
		ContainsAny,
		ContainsAll:
		return true
	default:
		return false
	}
}

func (o Operator) Name() string {
	switch o {
	case OperatorEqual:
		return "Equal"
	case OperatorNotEqual:
		return "NotEqual"
	case OperatorGreaterThan:
		return "GreaterThan"
	case OperatorGreaterThanEqual:
		return "GreaterThanEqual"
	case OperatorLessThan:
		return "LessThan"
	case OperatorLessThanEqual:
		return "LessThanEqual"
	case OperatorAnd:
		return "And"
	case OperatorOr:
		return "Or"
	case OperatorWithinGeoRange:
		return "WithinGeoRange"
	case OperatorLike:
		return "Like"
	case OperatorIsNull:
		return "IsNull"
	case ContainsAny:
		return "ContainsAny"
	case ContainsAll:
		return "ContainsAll"
	default:
		panic("Unknown operator")
	}
}

type LocalFilter struct {
	Root *Clause `json:"root"`
}

// Clause is one node of the filter tree. Value-comparing operators set On
// and Value, the logical combinators And/Or set Operands instead. Value is
// typed by its Go type: string, bool, int, float64, the respective slices,
// or GeoRange for WithinGeoRange.
type Clause struct {
	Operator Operator    `json:"operator"`
	On       *Path       `json:"on"`
	Value    interface{} `json:"value"`
	Operands []Clause    `json:"operands"`
}

// GeoRange identifies a point and a maximum distance in meters from that
// point. Used with OperatorWithinGeoRange.
type GeoRange struct {
	Latitude  float32 `json:"latitude"`
	Longitude float32 `json:"longitude"`
	Distance  float32 `json:"distance"`
}

// Sort orders results by a property path. Order is "asc" or "desc"; empty
// means ascending.
type Sort struct {
	Path  []string `json:"path"`
	Order string   `json:"order"`
}
