package benchmarks

import (
	"context"
	"os"
	"testing"

	"github.com/randalmurphal/tokens/pkg/tokens"
	"github.com/randalmurphal/tokens/pkg/tokens/snapshot"
)

func benchStore(b *testing.B) *tokens.Store {
	b.Helper()
	store := tokens.NewStore(tokens.WithDefaults(buildTree(20)), tokens.WithSessionID("bench"))
	_ = store.Init(context.Background())
	return store
}

// BenchmarkSaveSnapshot_Memory measures snapshot save to the in-memory store.
func BenchmarkSaveSnapshot_Memory(b *testing.B) {
	ctx := context.Background()
	store := benchStore(b)
	ss := snapshot.NewMemoryStore()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = store.SaveSnapshot(ctx, ss, "page")
	}
}

// BenchmarkSaveSnapshot_SQLite measures snapshot save to a file-backed SQLite store.
func BenchmarkSaveSnapshot_SQLite(b *testing.B) {
	ctx := context.Background()
	tmpFile, err := os.CreateTemp("", "tokens-bench-*.db")
	if err != nil {
		b.Fatal(err)
	}
	tmpFile.Close()
	defer os.Remove(tmpFile.Name())

	ss, err := snapshot.NewSQLiteStore(tmpFile.Name())
	if err != nil {
		b.Fatal(err)
	}
	defer ss.Close()

	store := benchStore(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = store.SaveSnapshot(ctx, ss, "page")
	}
}

// BenchmarkRestoreSnapshot_Memory measures snapshot restore from memory.
func BenchmarkRestoreSnapshot_Memory(b *testing.B) {
	ctx := context.Background()
	store := benchStore(b)
	ss := snapshot.NewMemoryStore()
	_ = store.SaveSnapshot(ctx, ss, "page")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = store.RestoreSnapshot(ctx, ss, "page")
	}
}
