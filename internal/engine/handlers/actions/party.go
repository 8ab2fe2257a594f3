package actions

import (
	"fmt"

	"pocketgrove-server/internal/engine/handlers"
)

func HandleParty(ctx handlers.Context) (handlers.Result, error) {
	n := len(ctx.Session.Save.Party)
	if n == 0 {
		return handlers.Result{Msg: "Команда пуста.", MsgType: "INFO"}, nil
	}
	return handlers.Result{
		Msg:     fmt.Sprintf("В команде существ: %d.", n),
		MsgType: "INFO",
	}, nil
}
