package uowmock

import (
	"context"
	"errors"
	"testing"

	"loan-marketplace/internal/domain/loan"
	"loan-marketplace/internal/domain/uow"
	"loan-marketplace/internal/testutil/loanmock"
	"loan-marketplace/internal/testutil/reviewmock"
)

func TestUoW_WithinTx_Happy(t *testing.T) {
	ctx := context.Background()

	loans := &loanmock.Repo{}
	acts := &reviewmock.Repo{}
	repos := uow.Repos{Loans: loans, Actions: acts}

	innerCalled := false
	m := &UoW{
		WithinTxFn: func(gotCtx context.Context, fn func(r uow.Repos) error) error {
			if gotCtx != ctx {
				t.Fatalf("WithinTx: ctx mismatch")
			}
			return fn(repos)
		},
	}

	err := m.WithinTx(ctx, func(r uow.Repos) error {
		innerCalled = true
		if r.Loans != loans || r.Actions != acts {
			t.Fatalf("WithinTx: repos not forwarded correctly")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("WithinTx: unexpected err: %v", err)
	}
	if !innerCalled {
		t.Fatalf("WithinTx: inner fn not called")
	}
}

func TestUoW_Defaults_Unimplemented(t *testing.T) {
	ctx := context.Background()
	m := &UoW{}
	if err := m.WithinTx(ctx, func(uow.Repos) error { return nil }); !errors.Is(err, errUnimplemented) {
		t.Fatalf("WithinTx default: want errUnimplemented, got %v", err)
	}
	if err := m.WithinApplicationTx(ctx, 1, func(uow.Repos, *loan.Application) error { return nil }); !errors.Is(err, errUnimplemented) {
		t.Fatalf("WithinApplicationTx default: want errUnimplemented, got %v", err)
	}
}

func TestPassthrough_WithinApplicationTx(t *testing.T) {
	ctx := context.Background()
	lock := &loan.Application{ID: 7, Status: loan.StatusPending}
	loans := &loanmock.Repo{
		GetByIDForUpdateFn: func(_ context.Context, id uint64) (*loan.Application, error) {
			if id != 7 {
				t.Fatalf("id mismatch: %d", id)
			}
			return lock, nil
		},
	}
	m := Passthrough(uow.Repos{Loans: loans})

	var got *loan.Application
	if err := m.WithinApplicationTx(ctx, 7, func(_ uow.Repos, a *loan.Application) error {
		got = a
		return nil
	}); err != nil {
		t.Fatalf("WithinApplicationTx: %v", err)
	}
	if got != lock {
		t.Fatalf("application not forwarded: %+v", got)
	}

	sentinel := errors.New("stop")
	if err := m.WithinTx(ctx, func(uow.Repos) error { return sentinel }); !errors.Is(err, sentinel) {
		t.Fatalf("WithinTx: want %v, got %v", sentinel, err)
	}
}

func TestUoW_FluentSetters_And_Reset(t *testing.T) {
	m := New()
	if m.WithinTxFn != nil || m.WithinApplicationTxFn != nil {
		t.Fatalf("New should start with nil funcs")
	}

	m.WithWithinTx(func(context.Context, func(uow.Repos) error) error { return nil }).
		WithWithinApplicationTx(func(context.Context, uint64, func(uow.Repos, *loan.Application) error) error { return nil })

	if m.WithinTxFn == nil || m.WithinApplicationTxFn == nil {
		t.Fatalf("fluent setters didn't assign funcs")
	}

	m.Reset()
	if m.WithinTxFn != nil || m.WithinApplicationTxFn != nil {
		t.Fatalf("Reset should clear function fields")
	}
}
