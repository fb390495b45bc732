package controller

import (
	"log/slog"
	"os"
)

// handlers
var (
	clientHandler = slog.NewTextHandler(os.Stdout, nil).WithAttrs([]slog.Attr{slog.String("name", "clientController")})
	itemHandler   = slog.NewTextHandler(os.Stdout, nil).WithAttrs([]slog.Attr{slog.String("name", "itemController")})
	intakeHandler = slog.NewTextHandler(os.Stdout, nil).WithAttrs([]slog.Attr{slog.String("name", "intakeController")})
)

// loggers
var (
	clientLogger = slog.New(clientHandler)
	itemLogger   = slog.New(itemHandler)
	intakeLogger = slog.New(intakeHandler)
)
