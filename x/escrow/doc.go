/*
Package escrow implements a trustless conditional exchange of two fungible
asset balances.

A maker opens an escrow by depositing an amount of one asset into a vault and
naming the amount of a second asset demanded in return. Any taker can fulfill
the escrow by paying the demanded amount to the maker, receiving the whole
vault balance in exchange. Until then the maker can cancel and recover the
deposit. Exactly one of fulfill or cancel terminates an escrow; both destroy
the record and the vault together and return their storage rent to the maker.

The escrow record lives under an identity derived from (maker, seed), the
vault is the record's balance-holder account for the deposited asset. Neither
has a private key: the vault is controlled solely by proving the derivation
of the record identity.
*/
package escrow
