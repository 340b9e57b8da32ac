//go:build !gcddebug

package gcd

const debugChecks = false
