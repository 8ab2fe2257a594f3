package actions

import "pocketgrove-server/internal/engine/handlers"

func HandleLogin(ctx handlers.Context) (handlers.Result, error) {
	return handlers.Result{
		Msg:     "Добро пожаловать в Pocket Grove.",
		MsgType: "INFO",
	}, nil
}
