// Copyright 2023, DASH-Industry Forum. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package calc

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/require"
)

func testResult() *Result {
	return &Result{
		Width:     Width32,
		Algorithm: AlgBinary,
		Values:    []string{"2024", "748"},
		GCD:       "44",
		Verified:  true,
	}
}

func TestWriteText(t *testing.T) {
	buf := bytes.Buffer{}
	require.NoError(t, testResult().Write(&buf, OutText))
	require.Equal(t, "gcd(2024, 748) = 44\n", buf.String())
}

func TestWriteJSON(t *testing.T) {
	buf := bytes.Buffer{}
	require.NoError(t, testResult().Write(&buf, OutJSON))
	var got Result
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Equal(t, *testResult(), got)
}

func TestWriteXML(t *testing.T) {
	buf := bytes.Buffer{}
	require.NoError(t, testResult().Write(&buf, OutXML))
	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(buf.Bytes()))
	root := doc.SelectElement("Gcd")
	require.NotNil(t, root)
	require.Equal(t, "32", root.SelectAttrValue("width", ""))
	require.Equal(t, "binary", root.SelectAttrValue("algorithm", ""))
	require.Equal(t, "true", root.SelectAttrValue("verified", ""))
	require.Equal(t, "", root.SelectAttrValue("nonzero", ""))
	vals := root.FindElements("Values/Value")
	require.Len(t, vals, 2)
	require.Equal(t, "748", vals[1].Text())
	require.Equal(t, "44", root.SelectElement("Result").Text())
}

func TestWriteUnknownFormat(t *testing.T) {
	buf := bytes.Buffer{}
	require.Error(t, testResult().Write(&buf, "yaml"))
}
