// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Marimo Team

package vega

// AttachData substitutes the dataset into the spec's data placeholder just
// before rendering. The input spec is not mutated; callers keep a reusable
// data-free spec and attach rows per render.
func AttachData(spec *Spec, rows []Row) *Spec {
	if spec == nil {
		return nil
	}
	out := *spec
	if rows == nil {
		rows = []Row{}
	}
	out.Data = &Data{Values: rows}
	return &out
}
