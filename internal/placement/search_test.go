package placement

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"mediathek/internal/pipeline"
	"mediathek/internal/testsupport"
)

func TestFindGroupDirsMatchesAcrossNestedLevels(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	root := cfg.Paths.LibraryDir
	testsupport.WriteFile(t, filepath.Join(root, "Familie", "2024", "2024-02-16 Zermatt.m4v"), "movie")
	testsupport.WriteFile(t, filepath.Join(root, "Familie", "2024", "2024-02-16 Zermatt-fanart.jpg"), "image")
	testsupport.WriteFile(t, filepath.Join(root, "Familie", "2024", "2024-02-17 Heimreise.m4v"), "movie")

	dirs, err := findGroupDirs(context.Background(), root, "2024-02-16 Zermatt")
	if err != nil {
		t.Fatalf("findGroupDirs: %v", err)
	}
	want := filepath.Join(root, "Familie", "2024")
	if len(dirs) != 1 || dirs[0] != want {
		t.Fatalf("dirs = %v, want [%s]", dirs, want)
	}
}

func TestFindGroupDirsRejectsPrefixOnlyMatches(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	root := cfg.Paths.LibraryDir
	// Shares the prefix but is a longer title, so it belongs to another group.
	testsupport.WriteFile(t, filepath.Join(root, "2024", "2024-02-16 Zermatt Bergfahrt.m4v"), "movie")

	dirs, err := findGroupDirs(context.Background(), root, "2024-02-16 Zermatt")
	if err != nil {
		t.Fatalf("findGroupDirs: %v", err)
	}
	if len(dirs) != 0 {
		t.Fatalf("dirs = %v, want none", dirs)
	}
}

func TestFindGroupDirsReportsEveryDirectory(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	root := cfg.Paths.LibraryDir
	testsupport.WriteFile(t, filepath.Join(root, "A", "2024-02-16 Zermatt.m4v"), "movie")
	testsupport.WriteFile(t, filepath.Join(root, "B", "C", "2024-02-16 Zermatt.mov"), "movie")

	dirs, err := findGroupDirs(context.Background(), root, "2024-02-16 Zermatt")
	if err != nil {
		t.Fatalf("findGroupDirs: %v", err)
	}
	if len(dirs) != 2 {
		t.Fatalf("dirs = %v, want two directories", dirs)
	}
}

func TestFindGroupDirsCancelled(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := findGroupDirs(ctx, cfg.Paths.LibraryDir, "2024-02-16 Zermatt")
	if !errors.Is(err, pipeline.ErrIO) || !errors.Is(err, context.Canceled) {
		t.Fatalf("expected cancellation wrapped as io failure, got %v", err)
	}
}

func TestKeyedMutexSerializesSameKey(t *testing.T) {
	km := newKeyedMutex()
	var inside int
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			km.Lock("2024-02-16 X")
			defer km.Unlock("2024-02-16 X")
			inside++
			if inside != 1 {
				t.Error("two holders inside the same key's critical section")
			}
			inside--
		}()
	}
	wg.Wait()

	km.mu.Lock()
	defer km.mu.Unlock()
	if len(km.locks) != 0 {
		t.Fatalf("lock table not drained: %d entries", len(km.locks))
	}
}

func TestKeyedMutexIndependentKeys(t *testing.T) {
	km := newKeyedMutex()
	km.Lock("2024-02-16 X")
	done := make(chan struct{})
	go func() {
		km.Lock("2024-02-17 Y")
		km.Unlock("2024-02-17 Y")
		close(done)
	}()
	<-done
	km.Unlock("2024-02-16 X")
}
