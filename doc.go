// SPDX-License-Identifier: MIT

// Package tollnet is an in-memory toolkit for toll-network tables: distance
// matrices between toll locations, per-window toll pricing and a handful of
// vehicle-count helpers.
//
// What is inside:
//
//	matrix/     dense row-major storage, validators, element-wise kernels
//	distance/   Build (edges → matrix), Unroll (matrix → records),
//	            FindWithinThreshold (±10% mean-distance neighbors)
//	toll/       flat per-class tolls and the 672-window weekly expansion
//	vehicle/    car pivot, car type buckets, bus outliers, truck routes
//	coverage/   full-week completeness per (id, id_2) pair
//	config/     TOML + .env configuration
//
// Pipeline composes the core steps:
//
//	edges ─▶ distance.Build ─▶ distance.Unroll ─┬─▶ distance.FindWithinThreshold
//	                                            └─▶ toll.Calculator
//
// Every step is a pure function of its input; nothing is shared between
// calls except immutable configuration.
package tollnet
