// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package data describes data sets by their attributes and encodes their
// instances for nn networks.
package data

import "github.com/born-ml/wann/internal/data"

// Kind is an attribute's value type.
type Kind = data.Kind

// Attribute kinds.
const (
	Numeric     = data.Numeric
	Categorical = data.Categorical
)

// Attribute describes one column of a data set.
type Attribute = data.Attribute

// Instance is one row of attribute values plus a class value.
type Instance = data.Instance

// Schema maps attributes to network inputs and outputs.
type Schema = data.Schema

// NumericAttribute returns a numeric attribute.
func NumericAttribute(name string) Attribute {
	return data.NumericAttribute(name)
}

// CategoricalAttribute returns a categorical attribute.
func CategoricalAttribute(name string, values ...string) Attribute {
	return data.CategoricalAttribute(name, values...)
}

// NewSchema validates the attributes and returns a schema.
//
// Example:
//
//	schema, err := data.NewSchema("weather",
//	    []data.Attribute{
//	        data.CategoricalAttribute("outlook", "sunny", "overcast", "rainy"),
//	        data.NumericAttribute("temperature"),
//	    },
//	    data.CategoricalAttribute("play", "yes", "no"),
//	)
//	cfg := schema.Config(nn.LayerConfig{Size: 4, Bias: true})
func NewSchema(name string, inputs []Attribute, output Attribute) (*Schema, error) {
	return data.NewSchema(name, inputs, output)
}
