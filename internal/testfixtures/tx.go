package testfixtures

import (
	"context"
	"sync"
)

// Режимы транзакций, которые запоминает TxManager
const (
	TxReadCommitted = "read_committed"
	TxSerializable  = "serializable"
	TxReadOnly      = "read_only"
)

// TxManager выполняет функцию без настоящей транзакции и запоминает режим каждого вызова
type TxManager struct {
	mu    sync.Mutex
	Calls int
	Modes []string
}

func (m *TxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, TxReadCommitted, fn)
}

func (m *TxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, TxSerializable, fn)
}

func (m *TxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, TxReadOnly, fn)
}

func (m *TxManager) run(ctx context.Context, mode string, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	m.Calls++
	m.Modes = append(m.Modes, mode)
	m.mu.Unlock()
	return fn(ctx)
}
