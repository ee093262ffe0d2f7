/*
Package crypto holds the keys and signatures used to authenticate
transactions. Only ed25519 is supported.

A public key is turned into a signature condition, and from there into
the address that owns funds:

  key.PublicKey().Condition().Address()
*/
package crypto
