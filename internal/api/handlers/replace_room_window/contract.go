package replace_room_window

import (
	"context"

	replaceWindow "github.com/X-Sarthak/CSIR-Project-sub000/internal/usecase/replace_window"
)

type ReplaceWindowUseCase interface {
	Execute(ctx context.Context, req *replaceWindow.Request) (*replaceWindow.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
