// Package swaptest provides mocks and helpers for testing pairswap
// extensions.
package swaptest
