package actions

import (
	"pocketgrove-server/internal/engine/handlers"
	"pocketgrove-server/pkg/api"
)

func HandleUseItem(ctx handlers.Context, p api.ItemPayload) (handlers.Result, error) {
	g := ctx.Session.Save
	if p.PartyIndex >= len(g.Party) {
		return handlers.Result{Msg: "В команде нет такого существа.", MsgType: "ERROR"}, nil
	}

	res := ctx.Inventory.UseItem(g.Bag, p.ItemID, g.Party[p.PartyIndex])
	if !res.OK {
		return handlers.Result{Msg: res.Message, MsgType: "ERROR"}, nil
	}

	g.Bag = res.Bag
	return handlers.Result{Msg: res.Message, MsgType: "INFO"}, nil
}
