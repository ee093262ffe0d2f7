package utils

import (
	"github.com/iov-one/swapchain"
	"github.com/tendermint/tendermint/libs/common"
)

// ActionKey is the tag key holding the path of a delivered message, for
// example action=offer/fulfill. Clients search and subscribe with it.
const ActionKey = "action"

// ActionTagger tags every successfully delivered transaction with the path
// of its message. Place it last in the chain, right above the router.
type ActionTagger struct{}

var _ swapchain.Decorator = ActionTagger{}

func NewActionTagger() ActionTagger {
	return ActionTagger{}
}

// Check passes through, tags are only indexed for delivered transactions.
func (ActionTagger) Check(ctx swapchain.Context, db swapchain.KVStore, tx swapchain.Tx, next swapchain.Checker) (*swapchain.CheckResult, error) {
	return next.Check(ctx, db, tx)
}

// Deliver rejects a transaction without a message before running next.
func (ActionTagger) Deliver(ctx swapchain.Context, db swapchain.KVStore, tx swapchain.Tx, next swapchain.Deliverer) (*swapchain.DeliverResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, err
	}
	res, err := next.Deliver(ctx, db, tx)
	if err == nil {
		res.Tags = append(res.Tags, actionTag(msg.Path()))
	}
	return res, err
}

func actionTag(path string) common.KVPair {
	return common.KVPair{Key: []byte(ActionKey), Value: []byte(path)}
}
