package main

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadJudgments(t *testing.T) {
	dir := t.TempDir()

	files := map[string]string{
		"Dataset101.txt": "R101 6146 0\nR101 9367 1\nR101 9393 1\n",
		"Dataset102.txt": "R102 22170 0\n",
		"notes.txt":      "ignore me\n",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	got, err := LoadJudgments(dir)
	if err != nil {
		t.Fatalf("LoadJudgments error: %v", err)
	}

	want := Judgments{
		"101": {"6146": 0, "9367": 1, "9393": 1},
		"102": {"22170": 0},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("LoadJudgments = %v; want %v", got, want)
	}
}

func TestLoadJudgmentsErrors(t *testing.T) {
	t.Run("empty directory", func(t *testing.T) {
		if _, err := LoadJudgments(t.TempDir()); err == nil {
			t.Error("expected an error for a directory without judgment files")
		}
	})

	t.Run("missing directory", func(t *testing.T) {
		if _, err := LoadJudgments(filepath.Join(t.TempDir(), "nope")); err == nil {
			t.Error("expected an error for a missing directory")
		}
	})

	t.Run("bad relevance label", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, "Dataset101.txt"), []byte("R101 6146 2\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadJudgments(dir); err == nil {
			t.Error("expected an error for a relevance label outside 0/1")
		}
	})

	t.Run("too few columns", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, "Dataset101.txt"), []byte("R101 6146\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadJudgments(dir); err == nil {
			t.Error("expected an error for a malformed line")
		}
	})
}
