package app

import (
	"github.com/iov-one/swapchain"
	"github.com/iov-one/swapchain/x/cash"
	"github.com/iov-one/swapchain/x/offer"
	amino "github.com/tendermint/go-amino"
)

var cdc = amino.NewCodec()

func init() {
	RegisterCodec(cdc)
}

// RegisterCodec registers every message the application accepts. A
// transaction carrying a message that is not registered here cannot be
// decoded.
func RegisterCodec(cdc *amino.Codec) {
	cdc.RegisterInterface((*swapchain.Msg)(nil), nil)
	cdc.RegisterConcrete(&offer.CreateMsg{}, "swapchain/offer/CreateMsg", nil)
	cdc.RegisterConcrete(&offer.FulfillMsg{}, "swapchain/offer/FulfillMsg", nil)
	cdc.RegisterConcrete(&offer.CancelMsg{}, "swapchain/offer/CancelMsg", nil)
	cdc.RegisterConcrete(&cash.SendMsg{}, "swapchain/cash/SendMsg", nil)
}
