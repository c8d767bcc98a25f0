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

	"github.com/CShorten/weaviate-go-client/entities/search"
)

type author struct {
	Name string   `json:"name"`
	Age  int      `json:"age"`
	Tags []string `json:"tags"`
}

func TestProjectIntoModel(t *testing.T) {
	objs := []search.Object{
		{
			Properties: search.PropertyBag{
				"name": "Sergey",
				"age":  int64(42),
				"tags": []string{"a", "b"},
			},
			Metadata: search.Metadata{ID: "bea5d3c2-e625-46e8-97a3-b8e6b34df45b"},
		},
		{
			Properties: search.PropertyBag{
				"name": "Maria",
				"age":  int64(31),
				"tags": []string{},
			},
		},
	}

	typed, err := Project[author](objs)
	require.Nil(t, err)
	require.Len(t, typed, 2)
	require.Equal(t, author{Name: "Sergey", Age: 42, Tags: []string{"a", "b"}}, typed[0].Model)
	require.Equal(t, "Maria", typed[1].Model.Name)

	// the source object stays reachable for metadata access
	require.Equal(t, objs[0].Metadata.ID, typed[0].Object.Metadata.ID)
}

func TestProjectMissingFieldFails(t *testing.T) {
	objs := []search.Object{{
		Properties: search.PropertyBag{"name": "Sergey", "age": int64(42)},
	}}

	_, err := Project[author](objs)
	require.NotNil(t, err)
	var mismatch TypeMismatchError
	require.True(t, errors.As(err, &mismatch))
	require.Equal(t, "tags", mismatch.Field)
}

func TestProjectWrongTypeFails(t *testing.T) {
	objs := []search.Object{{
		Properties: search.PropertyBag{
			"name": "Sergey",
			"age":  "not a number",
			"tags": []string{},
		},
	}}

	_, err := Project[author](objs)
	require.NotNil(t, err)
	var mismatch TypeMismatchError
	require.True(t, errors.As(err, &mismatch))
}

func TestProjectHonorsJsonTagsAndSkips(t *testing.T) {
	type model struct {
		Title    string `json:"headline"`
		Internal string `json:"-"`
		private  string //nolint:unused // must be ignored by projection
	}

	objs := []search.Object{{
		Properties: search.PropertyBag{"headline": "A Headline"},
	}}

	typed, err := Project[model](objs)
	require.Nil(t, err)
	require.Equal(t, "A Headline", typed[0].Model.Title)
	require.Empty(t, typed[0].Model.Internal)
}

func TestProjectRequiresStruct(t *testing.T) {
	_, err := Project[map[string]interface{}](nil)
	require.NotNil(t, err)
	var mismatch TypeMismatchError
	require.True(t, errors.As(err, &mismatch))
}
