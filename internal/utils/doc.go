// Package utils provides terminal helpers shared by the CLI layer.
package utils
