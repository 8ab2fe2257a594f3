package actions

import (
	"pocketgrove-server/internal/engine/handlers"
	"pocketgrove-server/pkg/api"
)

func HandleBuy(ctx handlers.Context, p api.ItemPayload) (handlers.Result, error) {
	g := ctx.Session.Save

	res := ctx.Inventory.Buy(g.Bag, g.Money, p.ItemID, p.Count)
	if !res.OK {
		return handlers.Result{Msg: res.Message, MsgType: "ERROR"}, nil
	}

	g.Bag = res.Bag
	g.Money = res.Money
	return handlers.Result{Msg: res.Message, MsgType: "SHOP"}, nil
}

func HandleSell(ctx handlers.Context, p api.ItemPayload) (handlers.Result, error) {
	g := ctx.Session.Save

	res := ctx.Inventory.Sell(g.Bag, g.Money, p.ItemID, p.Count)
	if !res.OK {
		return handlers.Result{Msg: res.Message, MsgType: "ERROR"}, nil
	}

	g.Bag = res.Bag
	g.Money = res.Money
	return handlers.Result{Msg: res.Message, MsgType: "SHOP"}, nil
}
