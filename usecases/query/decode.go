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
	"github.com/go-openapi/strfmt"
	"github.com/google/uuid"

	"github.com/CShorten/weaviate-go-client/entities/search"
	protocol "github.com/CShorten/weaviate-go-client/grpc/protocol/v1"
	byteops "github.com/CShorten/weaviate-go-client/usecases/byte_operations"
)

// decodeReply reconstructs typed results from the wire reply. The original
// params are needed to tell "absent on this object" apart from "was never
// requested": references are only decoded when the caller opted in, and a
// missing properties sub-message is only an error when properties were
// requested at all.
func decodeReply(reply *protocol.SearchReply, p Params) (*search.Result, error) {
	out := &search.Result{
		Took:                    reply.Took,
		GenerativeGroupedResult: reply.GenerativeGroupedResult,
	}

	propsNeeded := p.ReturnProperties == nil ||
		len(p.ReturnProperties.Names) > 0 || len(p.ReturnProperties.Objects) > 0
	refs := refSelectionsByName(p.ReturnReferences)

	if p.GroupBy != nil {
		for _, g := range reply.GroupByResults {
			grp, err := decodeGroup(g, p, propsNeeded, refs)
			if err != nil {
				return nil, err
			}
			out.Groups = append(out.Groups, grp)
		}
		return out, nil
	}

	for _, r := range reply.Results {
		obj, err := decodeObject(r, p.Collection, propsNeeded, refs)
		if err != nil {
			return nil, err
		}
		out.Objects = append(out.Objects, obj)
	}
	return out, nil
}

func decodeGroup(g *protocol.GroupByResult, p Params, propsNeeded bool,
	refs map[string]ReferenceSelection,
) (search.Group, error) {
	grp := search.Group{
		Name:            g.Name,
		MinDistance:     g.MinDistance,
		MaxDistance:     g.MaxDistance,
		NumberOfObjects: g.NumberOfObjects,
	}
	if g.Rerank != nil {
		score := g.Rerank.Score
		grp.RerankScore = &score
	}
	if g.Generative != nil {
		gen := g.Generative.Result
		grp.Generative = &gen
	}

	objects := g.Objects
	// servers may return more than asked for; the cap is part of the contract
	if k := p.GroupBy.ObjectsPerGroup; k > 0 && len(objects) > k {
		objects = objects[:k]
	}
	for _, r := range objects {
		obj, err := decodeObject(r, p.Collection, propsNeeded, refs)
		if err != nil {
			return search.Group{}, err
		}
		grp.Objects = append(grp.Objects, obj)
	}
	return grp, nil
}

func decodeObject(r *protocol.SearchResult, collection string, propsNeeded bool,
	refs map[string]ReferenceSelection,
) (search.Object, error) {
	obj := search.Object{Collection: collection}

	if r.Metadata != nil {
		md, err := decodeMetadata(r.Metadata)
		if err != nil {
			return search.Object{}, err
		}
		obj.Metadata = md
	}

	if r.Properties == nil {
		if propsNeeded {
			return search.Object{}, decodeErrorf("result is missing its properties")
		}
		return obj, nil
	}

	bag, references, err := decodePropertiesResult(r.Properties, refs)
	if err != nil {
		return search.Object{}, err
	}
	obj.Properties = bag
	obj.References = references
	return obj, nil
}

func decodePropertiesResult(pr *protocol.PropertiesResult,
	refs map[string]ReferenceSelection,
) (search.PropertyBag, map[string][]search.Object, error) {
	bag, err := decodePropertyBag(pr)
	if err != nil {
		return nil, nil, err
	}

	if len(refs) == 0 {
		return bag, nil, nil
	}

	var references map[string][]search.Object
	for _, rp := range pr.RefProps {
		sel, ok := refs[rp.PropName]
		if !ok {
			// never requested, so never resolved; do not guess at its shape
			continue
		}
		nestedRefs := refSelectionsByName(sel.References)
		for _, nested := range rp.Properties {
			nbag, nrefs, err := decodePropertiesResult(nested, nestedRefs)
			if err != nil {
				return nil, nil, err
			}
			obj := search.Object{
				Collection: nested.TargetCollection,
				Properties: nbag,
				References: nrefs,
			}
			if nested.Metadata != nil {
				md, err := decodeMetadata(nested.Metadata)
				if err != nil {
					return nil, nil, err
				}
				obj.Metadata = md
			}
			if references == nil {
				references = make(map[string][]search.Object)
			}
			references[rp.PropName] = append(references[rp.PropName], obj)
		}
	}
	return bag, references, nil
}

func refSelectionsByName(sels []ReferenceSelection) map[string]ReferenceSelection {
	if len(sels) == 0 {
		return nil
	}
	out := make(map[string]ReferenceSelection, len(sels))
	for _, s := range sels {
		out[s.Property] = s
	}
	return out
}

func decodeMetadata(md *protocol.MetadataResult) (search.Metadata, error) {
	out := search.Metadata{}

	switch {
	case len(md.IdAsBytes) > 0:
		id, err := uuid.FromBytes(md.IdAsBytes)
		if err != nil {
			return search.Metadata{}, decodeErrorf("invalid object id bytes: %v", err)
		}
		out.ID = strfmt.UUID(id.String())
	case md.Id != "":
		out.ID = strfmt.UUID(md.Id)
	}

	if len(md.VectorBytes) > 0 {
		vec, err := byteops.Fp32SliceFromBytes(md.VectorBytes)
		if err != nil {
			return search.Metadata{}, decodeErrorf("invalid vector bytes: %v", err)
		}
		out.Vector = vec
	} else if len(md.Vector) > 0 {
		out.Vector = md.Vector
	}

	for _, v := range md.Vectors {
		vec, err := byteops.Fp32SliceFromBytes(v.VectorBytes)
		if err != nil {
			return search.Metadata{}, decodeErrorf("invalid bytes for vector %q: %v", v.Name, err)
		}
		if out.Vectors == nil {
			out.Vectors = make(map[string][]float32, len(md.Vectors))
		}
		out.Vectors[v.Name] = vec
	}

	if md.CreationTimeUnixPresent {
		v := md.CreationTimeUnix
		out.CreationTimeUnix = &v
	}
	if md.LastUpdateTimeUnixPresent {
		v := md.LastUpdateTimeUnix
		out.LastUpdateTimeUnix = &v
	}
	if md.DistancePresent {
		v := md.Distance
		out.Distance = &v
	}
	if md.CertaintyPresent {
		v := md.Certainty
		out.Certainty = &v
	}
	if md.ScorePresent {
		v := md.Score
		out.Score = &v
	}
	if md.ExplainScorePresent {
		v := md.ExplainScore
		out.ExplainScore = &v
	}
	if md.IsConsistentPresent && md.IsConsistent != nil {
		v := *md.IsConsistent
		out.IsConsistent = &v
	}
	if md.RerankScorePresent {
		v := md.RerankScore
		out.RerankScore = &v
	}
	if md.GenerativePresent {
		v := md.Generative
		out.Generative = &v
	}
	return out, nil
}

// decodePropertyBag prefers the current Properties encoding and falls back
// to the pre-1.23 Struct plus typed array containers.
func decodePropertyBag(pr *protocol.PropertiesResult) (search.PropertyBag, error) {
	if pr.NonRefProps != nil {
		return bagFromProperties(pr.NonRefProps)
	}

	bag := search.PropertyBag{}
	if pr.NonRefProperties != nil {
		for k, v := range pr.NonRefProperties.AsMap() {
			bag[k] = v
		}
	}
	for _, p := range pr.NumberArrayProperties {
		vals, err := numberArrayValues(p)
		if err != nil {
			return nil, err
		}
		bag[p.PropName] = vals
	}
	for _, p := range pr.IntArrayProperties {
		bag[p.PropName] = p.Values
	}
	for _, p := range pr.TextArrayProperties {
		bag[p.PropName] = p.Values
	}
	for _, p := range pr.BooleanArrayProperties {
		bag[p.PropName] = p.Values
	}
	for _, p := range pr.ObjectProperties {
		nested, err := bagFromObjectValue(p.Value)
		if err != nil {
			return nil, err
		}
		bag[p.PropName] = nested
	}
	for _, p := range pr.ObjectArrayProperties {
		nested := make([]search.PropertyBag, 0, len(p.Values))
		for _, v := range p.Values {
			n, err := bagFromObjectValue(v)
			if err != nil {
				return nil, err
			}
			nested = append(nested, n)
		}
		bag[p.PropName] = nested
	}
	if len(bag) == 0 {
		return nil, nil
	}
	return bag, nil
}

func numberArrayValues(p *protocol.NumberArrayProperties) ([]float64, error) {
	if len(p.ValuesBytes) > 0 {
		vals, err := byteops.Fp64SliceFromBytes(p.ValuesBytes)
		if err != nil {
			return nil, decodeErrorf("invalid bytes for number array %q: %v", p.PropName, err)
		}
		return vals, nil
	}
	return p.Values, nil
}

func bagFromObjectValue(v *protocol.ObjectPropertiesValue) (search.PropertyBag, error) {
	if v == nil {
		return nil, nil
	}
	bag := search.PropertyBag{}
	if v.NonRefProperties != nil {
		for k, val := range v.NonRefProperties.AsMap() {
			bag[k] = val
		}
	}
	for _, p := range v.NumberArrayProperties {
		vals, err := numberArrayValues(p)
		if err != nil {
			return nil, err
		}
		bag[p.PropName] = vals
	}
	for _, p := range v.IntArrayProperties {
		bag[p.PropName] = p.Values
	}
	for _, p := range v.TextArrayProperties {
		bag[p.PropName] = p.Values
	}
	for _, p := range v.BooleanArrayProperties {
		bag[p.PropName] = p.Values
	}
	for _, p := range v.ObjectProperties {
		nested, err := bagFromObjectValue(p.Value)
		if err != nil {
			return nil, err
		}
		bag[p.PropName] = nested
	}
	for _, p := range v.ObjectArrayProperties {
		nested := make([]search.PropertyBag, 0, len(p.Values))
		for _, val := range p.Values {
			n, err := bagFromObjectValue(val)
			if err != nil {
				return nil, err
			}
			nested = append(nested, n)
		}
		bag[p.PropName] = nested
	}
	return bag, nil
}

func bagFromProperties(props *protocol.Properties) (search.PropertyBag, error) {
	if props == nil || len(props.Fields) == 0 {
		return nil, nil
	}
	bag := make(search.PropertyBag, len(props.Fields))
	for name, v := range props.Fields {
		val, err := valueToGo(v)
		if err != nil {
			return nil, decodeErrorf("property %q: %v", name, err)
		}
		bag[name] = val
	}
	return bag, nil
}

func valueToGo(v *protocol.Value) (interface{}, error) {
	if v == nil || v.Kind == nil {
		return nil, nil
	}
	switch k := v.Kind.(type) {
	case *protocol.Value_TextValue:
		return k.TextValue, nil
	case *protocol.Value_StringValue:
		return k.StringValue, nil
	case *protocol.Value_IntValue:
		return k.IntValue, nil
	case *protocol.Value_NumberValue:
		return k.NumberValue, nil
	case *protocol.Value_BoolValue:
		return k.BoolValue, nil
	case *protocol.Value_DateValue:
		return k.DateValue, nil
	case *protocol.Value_UuidValue:
		return k.UuidValue, nil
	case *protocol.Value_BlobValue:
		return k.BlobValue, nil
	case *protocol.Value_GeoValue:
		return search.PropertyBag{
			"latitude":  float64(k.GeoValue.Latitude),
			"longitude": float64(k.GeoValue.Longitude),
		}, nil
	case *protocol.Value_PhoneValue:
		p := k.PhoneValue
		return search.PropertyBag{
			"countryCode":            int64(p.CountryCode),
			"defaultCountry":         p.DefaultCountry,
			"input":                  p.Input,
			"internationalFormatted": p.InternationalFormatted,
			"national":               int64(p.National),
			"nationalFormatted":      p.NationalFormatted,
			"valid":                  p.Valid,
		}, nil
	case *protocol.Value_NullValue:
		return nil, nil
	case *protocol.Value_ObjectValue:
		return bagFromProperties(k.ObjectValue)
	case *protocol.Value_ListValue:
		return listToGo(k.ListValue)
	default:
		return nil, decodeErrorf("unknown value kind %T", v.Kind)
	}
}

// listToGo builds a typed slice when the list is homogeneous, which arrays
// always are in practice; a mixed list degrades to []interface{}.
func listToGo(list *protocol.ListValue) (interface{}, error) {
	if list == nil || len(list.Values) == 0 {
		return []interface{}{}, nil
	}
	raw := make([]interface{}, len(list.Values))
	for i, v := range list.Values {
		val, err := valueToGo(v)
		if err != nil {
			return nil, err
		}
		raw[i] = val
	}

	switch raw[0].(type) {
	case string:
		out := make([]string, 0, len(raw))
		for _, v := range raw {
			s, ok := v.(string)
			if !ok {
				return raw, nil
			}
			out = append(out, s)
		}
		return out, nil
	case int64:
		out := make([]int64, 0, len(raw))
		for _, v := range raw {
			n, ok := v.(int64)
			if !ok {
				return raw, nil
			}
			out = append(out, n)
		}
		return out, nil
	case float64:
		out := make([]float64, 0, len(raw))
		for _, v := range raw {
			f, ok := v.(float64)
			if !ok {
				return raw, nil
			}
			out = append(out, f)
		}
		return out, nil
	case bool:
		out := make([]bool, 0, len(raw))
		for _, v := range raw {
			b, ok := v.(bool)
			if !ok {
				return raw, nil
			}
			out = append(out, b)
		}
		return out, nil
	case search.PropertyBag:
		out := make([]search.PropertyBag, 0, len(raw))
		for _, v := range raw {
			b, ok := v.(search.PropertyBag)
			if !ok {
				return raw, nil
			}
			out = append(out, b)
		}
		return out, nil
	default:
		return raw, nil
	}
}
