package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"vibegraph/internal/adapters/filesystem"
	"vibegraph/internal/application/commands"
)

// BenchmarkParseCold benchmarks a full parse into an empty cache
func BenchmarkParseCold(b *testing.B) {
	notesPath := os.Getenv("VIBEGRAPH_BENCH_NOTES")
	if notesPath == "" {
		b.Skip("VIBEGRAPH_BENCH_NOTES not set")
	}

	tmpDir := b.TempDir()
	src := filesystem.NewSource(notesPath)

	b.ResetTimer()
	for b.Loop() {
		cache := NewCache(filepath.Join(tmpDir, "cold.db"))
		if err := cache.Open(notesPath); err != nil {
			b.Fatalf("failed to open cache: %v", err)
		}

		if _, err := commands.NewParseNotesCommand(src, cache, nil).Execute(context.Background()); err != nil {
			b.Fatalf("parse failed: %v", err)
		}

		if err := cache.Close(); err != nil {
			b.Fatalf("failed to close cache: %v", err)
		}
		if err := os.Remove(filepath.Join(tmpDir, "cold.db")); err != nil {
			b.Fatalf("failed to clean up: %v", err)
		}
	}
}

// BenchmarkParseWarm benchmarks a parse where every note is served from the cache
func BenchmarkParseWarm(b *testing.B) {
	notesPath := os.Getenv("VIBEGRAPH_BENCH_NOTES")
	if notesPath == "" {
		b.Skip("VIBEGRAPH_BENCH_NOTES not set")
	}

	src := filesystem.NewSource(notesPath)
	cache := NewCache(filepath.Join(b.TempDir(), "warm.db"))
	if err := cache.Open(notesPath); err != nil {
		b.Fatalf("failed to open cache: %v", err)
	}
	defer cache.Close()

	if _, err := commands.NewParseNotesCommand(src, cache, nil).Execute(context.Background()); err != nil {
		b.Fatalf("initial parse failed: %v", err)
	}

	b.ResetTimer()
	for b.Loop() {
		if _, err := commands.NewParseNotesCommand(src, cache, nil).Execute(context.Background()); err != nil {
			b.Fatalf("parse failed: %v", err)
		}
	}
}
