// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package jsonobject implements a small recursive-descent parser for JSON
// documents whose top level is an object.
//
// Supported values are strings, integers, floating-point numbers, booleans,
// null and nested objects. Arrays are rejected with a [SyntaxError] carrying
// the byte offset of the offending '['. Every failure unwraps to [ErrSyntax].
//
// The parser exists so configuration files can be flattened into
// dot-delimited keys without reflecting into Go structs:
//
//	obj, err := jsonobject.Parse(`{"a": {"b": 1}}`)
//	// obj["a"].(jsonobject.Object)["b"] == jsonobject.Integer(1)
package jsonobject
