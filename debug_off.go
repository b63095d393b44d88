//go:build !ringdebug

package ringalloc

const debugChecks = false
