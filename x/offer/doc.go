/*
Package offer implements a two-party token swap.

A maker deposits the offered coins into a holding wallet and declares the
amount of another currency they want in exchange. Any taker can fulfill
the offer by paying the wanted amount to the maker, which releases the
held coins to the taker. Until then, the maker may cancel the offer and
get the deposit back.

The holding wallet has no private key. Its address is derived from the
offer ID (see OfferCondition) and funds leave it only when this package
grants that condition to a request, which it does after loading the offer
and checking the stored address against the derivation. Both fulfillment
and cancellation delete the offer, so only the first of them succeeds and
any later attempt fails with ErrOfferNotFound.
*/
package offer
