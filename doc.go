/*
Package pairswap defines the core vocabulary of the pairswap ledger: account
identities, derived conditions, message and handler contracts, and the
key-value store interfaces every extension builds upon.

The interesting state transitions live in the extension packages under x/.
This package holds only the contracts that tie them together.
*/
package pairswap
