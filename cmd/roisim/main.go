package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/invoiceloop/roisim/internal/clock"
	"github.com/invoiceloop/roisim/internal/config"
	"github.com/invoiceloop/roisim/internal/migration"
	"github.com/invoiceloop/roisim/internal/observability"
	"github.com/invoiceloop/roisim/internal/server"
	"github.com/invoiceloop/roisim/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		observability.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		clock.Module,
		migration.Module,
		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
