/*
Package token implements fungible asset accounting for the pairswap ledger.

Every asset is described by a Mint, registered under its 32 byte identity.
Balances are kept in Holder accounts, one per (owner, asset) pair, stored
under a deterministically derived identity. Holders are created on demand
against a storage rent reserve in the native unit and refund that reserve
when closed.

Funds only move under an Authority: a capability constructed by a handler
after verifying either a signature or a proof of derivation. There is no
ambient signer.
*/
package token
