// Package spline evaluates B-spline basis families on one-dimensional samples.
//
// The package is split into three steps that are usually chained:
//
//   - [Knots]:          derives a clamped knot vector from the sample distribution
//   - [Evaluate]:       evaluates every basis function (or a derivative) of a knot vector
//   - [EvaluateCyclic]: builds periodic basis functions by folding the tail of the
//     domain back onto its head
//
// Knot vectors are plain values. Nothing is cached between calls, so the same
// inputs always produce the same matrix and concurrent calls never interact.
//
// Results are returned as [mat.Dense] with one row per basis function and one
// column per sample. Samples without support (NaN, ±Inf, or outside the knot
// range when out-of-range evaluation is allowed) produce zero columns.
//
// # Usage
//
//	knots, err := spline.Knots(x, 4, 10)
//	m, err := spline.Evaluate(x, knots, 4)
//	d, err := spline.Evaluate(x, knots, 4, spline.WithDerivative(1))
//	c, err := spline.EvaluateCyclic(phase, 4, 10)
package spline
