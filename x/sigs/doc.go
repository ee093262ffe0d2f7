/*
Package sigs provides basic authentication
middleware to verify the signatures on the transaction,
and maintain nonces for replay protection.

Every valid signature puts the signer condition
(sigs/ed25519/<public key>) into the context, where
Authenticate finds it.
*/
package sigs
