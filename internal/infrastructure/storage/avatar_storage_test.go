package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFileAvatarStorage_StoreAndRemove(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileAvatarStorage(dir, "/uploads")
	if err != nil {
		t.Fatalf("new storage: %v", err)
	}

	url, err := store.Store(context.Background(), "photo.PNG", strings.NewReader("image-bytes"))
	if err != nil {
		t.Fatalf("store failed: %v", err)
	}
	if !strings.HasPrefix(url, "/uploads/") {
		t.Fatalf("unexpected url: %s", url)
	}
	if !strings.HasSuffix(url, ".png") {
		t.Fatalf("expected lowercased extension, got %s", url)
	}

	name := strings.TrimPrefix(url, "/uploads/")
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("read stored file: %v", err)
	}
	if string(data) != "image-bytes" {
		t.Fatalf("unexpected file content: %q", data)
	}

	if err := store.Remove(context.Background(), url); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, name)); !os.IsNotExist(err) {
		t.Fatalf("expected file to be gone, got %v", err)
	}
}

func TestFileAvatarStorage_Store_IgnoresOddExtensions(t *testing.T) {
	store, err := NewFileAvatarStorage(t.TempDir(), "/uploads")
	if err != nil {
		t.Fatalf("new storage: %v", err)
	}

	url, err := store.Store(context.Background(), "../../etc/passwd.%2e", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("store failed: %v", err)
	}
	if strings.Contains(url, "..") || strings.Contains(url, "%") {
		t.Fatalf("unexpected url: %s", url)
	}
}

func TestFileAvatarStorage_Remove_ForeignURL(t *testing.T) {
	store, err := NewFileAvatarStorage(t.TempDir(), "/uploads")
	if err != nil {
		t.Fatalf("new storage: %v", err)
	}

	// URLs outside the base prefix and dangling URLs are no-ops.
	if err := store.Remove(context.Background(), "https://elsewhere/avatar.png"); err != nil {
		t.Fatalf("foreign url: %v", err)
	}
	if err := store.Remove(context.Background(), "/uploads/missing.png"); err != nil {
		t.Fatalf("missing file: %v", err)
	}
}
