package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Transaction runs operations in order. When one fails, the compensations
// registered for the operations that already ran are applied in reverse.
type Transaction struct {
	operations    []Operation
	compensations []Compensation
	log           *zap.Logger
}

type Operation struct {
	Name string
	Fn   func(context.Context) error
}

type Compensation struct {
	Name string
	Fn   func(context.Context) error
}

func NewTransaction(log *zap.Logger) *Transaction {
	return &Transaction{
		operations:    []Operation{},
		compensations: []Compensation{},
		log:           log,
	}
}

// AddStep registers an operation and its compensation; compensate may be nil.
func (t *Transaction) AddStep(name string, fn, compensate func(context.Context) error) {
	t.operations = append(t.operations, Operation{name, fn})
	t.compensations = append(t.compensations, Compensation{name, compensate})
}

func (t *Transaction) Execute(ctx context.Context) error {
	for i, op := range t.operations {
		if err := op.Fn(ctx); err != nil {
			t.rollback(ctx, i)
			return fmt.Errorf("operation '%s' failed: %w (rolled back %d operations)", op.Name, err, i)
		}
	}
	return nil
}

func (t *Transaction) rollback(ctx context.Context, failedAtIndex int) {
	for i := failedAtIndex - 1; i >= 0; i-- {
		comp := t.compensations[i]
		if comp.Fn == nil {
			continue
		}
		if err := comp.Fn(ctx); err != nil {
			t.log.Warn("compensation failed, state may be inconsistent",
				zap.String("step", comp.Name), zap.Error(err))
		}
	}
}
