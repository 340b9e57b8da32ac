//go:build gcddebug

package gcd

const debugChecks = true
