//go:build zeckdebug
// +build zeckdebug

package zeckendorf

const debug = true
