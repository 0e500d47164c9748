package entity

import "context"

type HandlerFunction func(context.Context, *CommandRequest) error

type PanicFunction func(ctx context.Context, err string, stacktrace string, command string, args []string) error
