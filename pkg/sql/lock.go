package sql

import "context"

type lock struct {
	ctx    context.Context
	name   string
	client Client
}

func newLock(ctx context.Context, name string, client Client) lock {
	return lock{ctx: ctx, name: name, client: client}
}

func (l lock) Get() error {
	_, err := l.client.ExecContext(l.ctx, `SELECT pg_advisory_lock(hashtext($1))`, l.name)
	return err
}

func (l lock) Release() {
	_, _ = l.client.ExecContext(l.ctx, `SELECT pg_advisory_unlock(hashtext($1))`, l.name)
}
