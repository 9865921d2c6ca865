/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package spec

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestRange_String(t *testing.T) {
	assert.Equal(t, "10px", Exact(10).String())
	assert.Equal(t, "8.5 to 12px", Between(8.5, 12).String())
	assert.Equal(t, "> 5px", GreaterThan(5).String())
	assert.Equal(t, "40 to 60% of screen/width", Between(40, 60).WithPercentOf("screen/width").String())
	assert.False(t, Exact(1).IsPercentOf())
	assert.True(t, Exact(1).WithPercentOf("a/width").IsPercentOf())
}

func TestNewLocation_CanonicalSides(t *testing.T) {
	a := NewLocation(Exact(10), Right, Top)
	b := NewLocation(Exact(10), Top, Right)
	assert.Equal(t, a, b)
	assert.Equal(t, []Side{Top, Right}, a.Sides)
	assert.True(t, a.HasSide(Right))
	assert.False(t, a.HasSide(Bottom))
}

func TestSideFromString(t *testing.T) {
	for _, side := range []Side{Top, Bottom, Left, Right} {
		got, err := SideFromString(side.String())
		require.NoError(t, err)
		assert.Equal(t, side, got)
	}
	_, err := SideFromString("middle")
	assert.Error(t, err)

	assert.True(t, Top.IsHorizontal())
	assert.True(t, Left.IsVertical())
	assert.False(t, Bottom.IsVertical())
}

func TestColor(t *testing.T) {
	c := RGB(255, 128, 0)
	assert.Equal(t, "#ff8000", c.Hex())
	assert.Equal(t, "#ff8000", fmt.Sprint(c))

	data, err := json.Marshal(ColorRange{Range: Exact(40), Color: c})
	require.NoError(t, err)
	assert.JSONEq(t, `{"range":{"kind":"exact","from":40,"to":40},"color":"#ff8000"}`, string(data))
}

func TestTextOperations(t *testing.T) {
	assert.True(t, OpLowercase.IsValid())
	assert.False(t, TextOperation("capitalize").IsValid())
	assert.Equal(t, "straße", OpLowercase.Apply("STRAßE"))
	assert.Equal(t, "HELLO", ApplyAll([]TextOperation{OpLowercase, OpUppercase}, "Hello"))
	assert.Equal(t, "Hello", ApplyAll(nil, "Hello"))

	for _, mode := range []TextType{TextIs, TextContains, TextStarts, TextEnds, TextMatches} {
		got, err := TextTypeFromString(mode.String())
		require.NoError(t, err)
		assert.Equal(t, mode, got)
	}
	_, err := TextTypeFromString("equals")
	assert.Error(t, err)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "left-of", KindLeftOf.String())
	assert.Equal(t, "color-scheme", (&ColorScheme{}).Kind().String())
	assert.Equal(t, "unknown", Kind(99).String())
}

func TestErrorRate_String(t *testing.T) {
	assert.Equal(t, "2.5%", Percent(2.5).String())
	assert.Equal(t, "3px", Pixels(3).String())
	assert.Equal(t, "0 0 100 20", Rect{Width: 100, Height: 20}.String())
}

func TestFilter_Marshal(t *testing.T) {
	filters := []Filter{Blur{Radius: 2}, Quantinize{Colors: 8}}

	data, err := json.Marshal(filters)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"name":"blur","radius":2},{"name":"quantinize","colors":8}]`, string(data))

	out, err := yaml.Marshal(filters)
	require.NoError(t, err)
	assert.Contains(t, string(out), "name: blur")
	assert.Contains(t, string(out), "radius: 2")
	assert.Contains(t, string(out), "colors: 8")
}

func TestSyntaxError(t *testing.T) {
	err := error(UnknownParameterError("wobble"))
	assert.Equal(t, "Unknown parameter: wobble", err.Error())
	assert.ErrorIs(t, err, ErrUnknownParameter)
	assert.NotErrorIs(t, err, ErrUnknownDirective)

	var se *SyntaxError
	require.ErrorAs(t, fmt.Errorf("line 3: %w", err), &se)
	assert.Equal(t, ErrUnknownParameter, se.Kind)

	assert.Equal(t, "100%", Errorf(ErrInvalidRange, "100%").Error())
	assert.True(t, errors.Is(NullInputError(), ErrNullInput))
}

func TestSpec_JSON(t *testing.T) {
	s := &Inside{
		Base:      Base{Text: "inside: form 10px top"},
		Object:    "form",
		Locations: []Location{NewLocation(Exact(10), Top)},
	}
	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"originalText": "inside: form 10px top",
		"object": "form",
		"partly": false,
		"locations": [{"range": {"kind": "exact", "from": 10, "to": 10}, "sides": ["top"]}]
	}`, string(data))
}
