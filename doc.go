/*
Package swapchain defines the interfaces shared by the swap ledger packages:
storage, transactions, handlers, conditions and addresses. It also contains
helpers to work with context and abci results.

Look into this package to get a brief overview of the building blocks. The
extensions under x/ implement the actual behaviour, with x/offer holding the
escrow state machine.
*/
package swapchain
