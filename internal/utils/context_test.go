// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
)

func TestContextKeyString(t *testing.T) {
	if CallerCtxKey.String() != "caller" {
		t.Errorf("expected 'caller', got '%s'", CallerCtxKey.String())
	}
}

func TestGetCallerFromContext_Success(t *testing.T) {
	ctx := context.WithValue(context.Background(), CallerCtxKey, "tui")

	caller, ok := GetCallerFromContext(ctx)
	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if caller != "tui" {
		t.Errorf("expected caller=tui, got %s", caller)
	}
}

func TestGetCallerFromContext_Missing(t *testing.T) {
	if _, ok := GetCallerFromContext(context.Background()); ok {
		t.Error("expected ok=false for missing value")
	}
}

func TestGetCallerFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), CallerCtxKey, 42)

	if _, ok := GetCallerFromContext(ctx); ok {
		t.Error("expected ok=false for wrong type")
	}
}
