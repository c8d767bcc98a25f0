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

// Represents the path in a filter. A nested child path drills through a
// reference property into the target collection.
type Path struct {
	Property string `json:"property"`

	// If nil, then this is the property we're interested in.
	// If a pointer to another Path, the constraint applies to that one.
	Child *Path `json:"child"`
}

// GetInnerMost recursively searches for child paths, only when no more
// children can be found will the path be returned
func (p *Path) GetInnerMost() *Path {
	if p.Child == nil {
		return p
	}

	return p.Child.GetInnerMost()
}

// Slice flattens the nested path into a slice of segments
func (p *Path) Slice() []string {
	var out []string
	for cur := p; cur != nil; cur = cur.Child {
		out = append(out, cur.Property)
	}
	return out
}

// PathFromSlice builds a nested path from flat segments. Returns nil for an
// empty slice.
func PathFromSlice(segments []string) *Path {
	var sentinel Path
	current := &sentinel
	for _, s := range segments {
		current.Child = &Path{Property: s}
		current = current.Child
	}
	return sentinel.Child
}
