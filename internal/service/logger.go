package service

import (
	"log/slog"
	"os"
)

// handlers
var (
	clientHandler = slog.NewTextHandler(os.Stdout, nil).WithAttrs([]slog.Attr{slog.String("name", "clientService")})
	itemHandler   = slog.NewTextHandler(os.Stdout, nil).WithAttrs([]slog.Attr{slog.String("name", "itemService")})
	intakeHandler = slog.NewTextHandler(os.Stdout, nil).WithAttrs([]slog.Attr{slog.String("name", "intakeService")})
)

// loggers
var (
	clientLogger = slog.New(clientHandler)
	itemLogger   = slog.New(itemHandler)
	intakeLogger = slog.New(intakeHandler)
)
