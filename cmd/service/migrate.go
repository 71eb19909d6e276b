package main

import "demo/ordertags/internal/store"

type MigrateCmd struct{}

func (m *MigrateCmd) Run(ctx *Context) error {
	return store.Migrate(ctx.DSN)
}
