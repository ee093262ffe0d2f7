/*
Package cash holds the balances of all accounts.

Every address may own one Wallet, a normalized set of coins. The Controller
moves coins between wallets and is the only way the other extensions touch
the balances. Funds are released from a wallet only when the owner of the
source address is authenticated, either by a signature or by a condition
an extension put into the context.
*/
package cash
