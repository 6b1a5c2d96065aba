// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"math"
	"strconv"

	"github.com/MKhiriev/midscene-shared/internal/jsonobject"
)

// Flatten turns a parsed JSON object into dot-delimited keys with string
// values. Integers render without a decimal point, floats in their shortest
// decimal form, booleans as "true"/"false". Nulls are dropped.
//
// Keys are visited in sorted order, so when a literal dotted key collides
// with a nested path the result is still deterministic.
func Flatten(obj jsonobject.Object) map[string]string {
	out := make(map[string]string)
	flattenInto(out, "", obj)
	return out
}

func flattenInto(out map[string]string, prefix string, obj jsonobject.Object) {
	for _, key := range obj.Keys() {
		value := obj[key]
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}

		switch v := value.(type) {
		case jsonobject.Object:
			flattenInto(out, path, v)
		case jsonobject.String:
			out[path] = string(v)
		case jsonobject.Integer:
			out[path] = strconv.FormatInt(int64(v), 10)
		case jsonobject.Float:
			out[path] = formatFloat(float64(v))
		case jsonobject.Bool:
			out[path] = strconv.FormatBool(bool(v))
		case jsonobject.Null:
		}
	}
}

// formatFloat renders integral values that fit in int64 as integers, so -0.0
// and 2.0 read back as "0" and "2".
func formatFloat(f float64) string {
	if f == math.Trunc(f) && f >= math.MinInt64 && f < math.MaxInt64 {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
