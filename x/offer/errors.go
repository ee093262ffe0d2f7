package offer

import "github.com/iov-one/swapchain/errors"

var (
	// ErrInvalidAssetPair is returned when the offered and the wanted
	// currency are the same.
	ErrInvalidAssetPair = errors.Register(1001, "invalid asset pair")

	// ErrInsufficientFunderBalance is returned when the maker cannot
	// deposit the offered amount.
	ErrInsufficientFunderBalance = errors.Register(1002, "insufficient funder balance")

	// ErrInsufficientTakerBalance is returned when the taker cannot pay
	// the wanted amount.
	ErrInsufficientTakerBalance = errors.Register(1003, "insufficient taker balance")

	// ErrOfferNotFound is returned when there is no live offer with the
	// requested ID. It was either never created or already consumed.
	ErrOfferNotFound = errors.Register(1004, "offer not found")
)
