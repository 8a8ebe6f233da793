// Package kinematics models a block sliding from rest down a frictionless
// 30° incline.
//
// Motion is closed form: with along-incline acceleration A = g·sin(θ),
//
//	s(t) = ½·A·t²
//	v(t) = A·t
//
// A [Run] advances time in fixed ticks and clamps the displacement to the
// plane length, after which the run is done and further steps are no-ops.
package kinematics
