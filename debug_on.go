//go:build ringdebug

package ringalloc

const debugChecks = true
