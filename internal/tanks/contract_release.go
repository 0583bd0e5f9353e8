//go:build !tanksdebug

package tanks

const strictContracts = false
