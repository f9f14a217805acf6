// Package testutil provides testing utilities for rawvec.
//
// This package is intended for use in tests and benchmarks only.
// It provides instrumented element lifecycles and a deterministic RNG.
//
// # Instrumented Lifecycles
//
//	lc := testutil.NewTracked[int](true, true)
//	v := rawvec.New[int](lc)
//	...
//	v.Close()
//	require.Zero(t, lc.Live())   // leak check
//
// # Scripted Failures
//
//	lc.FailAt(3, errBoom)   // the 3rd fallible lifecycle call fails
//
// # Deterministic Randomness
//
//	rng := testutil.NewRNG(seed)
//	i := rng.Intn(n)
package testutil
