package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestStringFieldsSkipsEmptyPairs(t *testing.T) {
	t.Parallel()

	fields := StringFields(
		StringField{Key: "ai_provider", Value: "gemini"},
		StringField{Key: "  ", Value: "dropped"},
		StringField{Key: "ai_model", Value: "   "},
	)

	if len(fields) != 1 {
		t.Fatalf("expected 1 field, got %d", len(fields))
	}

	if fields[0].Key != "ai_provider" || fields[0].String != "gemini" {
		t.Fatalf("unexpected field: %+v", fields[0])
	}
}

func TestWithCommonFields(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.DebugLevel)
	log := WithCommonFields(zap.New(core), "gemini", "gemini-2.5-flash", "gemini-embedding-001")

	log.Info("test entry")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	ctx := entries[0].ContextMap()
	if ctx[FieldProvider] != "gemini" {
		t.Fatalf("unexpected provider field: %v", ctx[FieldProvider])
	}
	if ctx[FieldModel] != "gemini-2.5-flash" {
		t.Fatalf("unexpected model field: %v", ctx[FieldModel])
	}
	if ctx[FieldEmbeddingModel] != "gemini-embedding-001" {
		t.Fatalf("unexpected embedding model field: %v", ctx[FieldEmbeddingModel])
	}
}

func TestWithFieldsNilLogger(t *testing.T) {
	t.Parallel()

	if got := WithFields(nil); got == nil {
		t.Fatal("expected a usable logger for nil input")
	}
}
