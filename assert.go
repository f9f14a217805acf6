//go:build rawvec_debug

package rawvec

// debugAsserts enables contract-violation checks on indexed access and
// removal. Guarding call sites with this constant lets the compiler drop
// the checks entirely in regular builds.
const debugAsserts = true
