/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/layoutspec/reader"
)

func TestRender(t *testing.T) {
	s, err := reader.New(reader.Options{}).Read("inside: form 10px top left")
	require.NoError(t, err)

	t.Run("json", func(t *testing.T) {
		out, err := render(s, "json")
		require.NoError(t, err)
		assert.Contains(t, out, `"kind": "inside"`)
		assert.Contains(t, out, `"object": "form"`)
		assert.Contains(t, out, `"originalText": "inside: form 10px top left"`)
	})

	t.Run("yaml", func(t *testing.T) {
		out, err := render(s, "yaml")
		require.NoError(t, err)
		assert.Contains(t, out, "kind: inside")
		assert.Contains(t, out, "object: form")
	})

	t.Run("text", func(t *testing.T) {
		out, err := render(s, "text")
		require.NoError(t, err)
		assert.Equal(t, "inside\tinside: form 10px top left\n", out)
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := render(s, "xml")
		assert.Error(t, err)
	})
}

func TestRender_ImageFilters(t *testing.T) {
	s, err := reader.New(reader.Options{}).Read("image: file a.png, filter blur 2, map-filter denoise 1")
	require.NoError(t, err)

	out, err := render(s, "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"blur"`)
	assert.Contains(t, out, `"radius": 2`)
	assert.Contains(t, out, `"kind": "image"`)

	out, err = render(s, "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "denoise")
}
