//go:build !balldebug
// +build !balldebug

package ball

const debugBall = false
