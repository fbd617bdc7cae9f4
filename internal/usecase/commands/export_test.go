//go:build unit

package commands

var RequestHash = calculateRequestHash
