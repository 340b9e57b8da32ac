// Copyright 2023, DASH-Industry Forum. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package calc

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

// Output formats
const (
	OutText string = "text"
	OutJSON string = "json"
	OutXML  string = "xml"
)

// OutFormats lists the allowed output formats.
var OutFormats = []string{OutText, OutJSON, OutXML}

// Write writes r to w in the given format.
func (r *Result) Write(w io.Writer, format string) error {
	switch format {
	case OutText, "":
		return r.WriteText(w)
	case OutJSON:
		return r.WriteJSON(w)
	case OutXML:
		return r.WriteXML(w)
	default:
		return fmt.Errorf("output format %q not known", format)
	}
}

// WriteText writes a single line like "gcd(2024, 748) = 44".
func (r *Result) WriteText(w io.Writer) error {
	_, err := fmt.Fprintf(w, "gcd(%s) = %s\n", strings.Join(r.Values, ", "), r.GCD)
	return err
}

// WriteJSON writes r as indented JSON.
func (r *Result) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// WriteXML writes r as an XML document with a <Gcd> root element.
func (r *Result) WriteXML(w io.Writer) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement("Gcd")
	root.CreateAttr("width", string(r.Width))
	root.CreateAttr("algorithm", string(r.Algorithm))
	if r.NonZero {
		root.CreateAttr("nonzero", "true")
	}
	if r.Verified {
		root.CreateAttr("verified", strconv.FormatBool(r.Verified))
	}
	vals := root.CreateElement("Values")
	for _, v := range r.Values {
		vals.CreateElement("Value").SetText(v)
	}
	root.CreateElement("Result").SetText(r.GCD)
	doc.Indent(2)
	_, err := doc.WriteTo(w)
	return err
}
