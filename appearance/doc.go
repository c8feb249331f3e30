// Package appearance groups mesh faces by material.
//
// The primary path ([FromMesh]) consumes the per-triangle material table a
// geometry kernel delivers and produces the minimal set of
// (color, transparency) groups, each covering the triangle indices that
// share that exact material. The fallback path ([FromElement]) approximates
// the same grouping from element-level appearance data when the kernel
// provides no per-triangle materials: styled-item colors (including one
// level of representation-map indirection), indexed colour maps on
// triangulated face sets, and material associations.
//
// Color channels and transparency are rounded to six decimals before
// comparison to suppress floating-point noise. Groups come back in
// first-seen order, which makes repeat runs on the same input reproduce the
// same output order.
package appearance
