//go:build !rawvec_debug

package rawvec

const debugAsserts = false
