package scanner

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for path, content := range files {
		fullPath := filepath.Join(root, path)
		if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
			t.Fatalf("Failed to create directory: %v", err)
		}
		if err := os.WriteFile(fullPath, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to create file: %v", err)
		}
	}
}

func scanPaths(t *testing.T, root string) map[string]bool {
	t.Helper()
	results, err := New(DefaultOptions()).Scan(root)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	found := make(map[string]bool)
	for _, f := range results {
		found[f.Path] = true
	}
	return found
}

func TestScannerScan(t *testing.T) {
	tmpDir := t.TempDir()
	writeFiles(t, tmpDir, map[string]string{
		"app.jsx":                  "var a = 1;",
		"index.js":                 "var b = 2;",
		"lib/util.mjs":             "export {}",
		"legacy/old.cjs":           "module.exports = {}",
		"README.md":                "# Test",
		"styles/main.css":          "body {}",
		".hidden/secret.js":        "var c = 3;",
		"node_modules/pkg/main.js": "module.exports = {}",
		"dist/bundle.js":           "var d = 4;",
		".git/hooks/pre-commit.js": "var e = 5;",
	})

	found := scanPaths(t, tmpDir)

	expected := []string{"app.jsx", "index.js", filepath.Join("lib", "util.mjs"), filepath.Join("legacy", "old.cjs")}
	if len(found) != len(expected) {
		t.Errorf("Scan found %d files, want %d: %v", len(found), len(expected), found)
	}
	for _, path := range expected {
		if !found[path] {
			t.Errorf("Scan should find %s", path)
		}
	}
	for _, path := range []string{"README.md", filepath.Join("node_modules", "pkg", "main.js"), filepath.Join("dist", "bundle.js")} {
		if found[path] {
			t.Errorf("Scan should not find %s", path)
		}
	}
}

func TestScannerIgnoreFile(t *testing.T) {
	tmpDir := t.TempDir()
	writeFiles(t, tmpDir, map[string]string{
		".jsxlintignore":   "# generated output\ngenerated/\n*.min.js\n!keep.min.js\n",
		"app.jsx":          "var a = 1;",
		"generated/gen.js": "var b = 2;",
		"bundle.min.js":    "var c = 3;",
		"keep.min.js":      "var d = 4;",
	})

	found := scanPaths(t, tmpDir)

	if !found["app.jsx"] {
		t.Error("app.jsx should be found")
	}
	if found[filepath.Join("generated", "gen.js")] {
		t.Error("generated/ should be ignored")
	}
	if found["bundle.min.js"] {
		t.Error("*.min.js should be ignored")
	}
	if !found["keep.min.js"] {
		t.Error("negated pattern should re-include keep.min.js")
	}
}

func TestScannerFileSizes(t *testing.T) {
	tmpDir := t.TempDir()
	writeFiles(t, tmpDir, map[string]string{"app.jsx": "var a = 1;"})

	results, err := Scan(tmpDir)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("Scan found %d files, want 1", len(results))
	}
	if results[0].Size != int64(len("var a = 1;")) {
		t.Errorf("Size = %d, want %d", results[0].Size, len("var a = 1;"))
	}
	if results[0].FullPath != filepath.Join(tmpDir, "app.jsx") {
		t.Errorf("FullPath = %q", results[0].FullPath)
	}
}

func TestScannerEmptyDirectory(t *testing.T) {
	results, err := Scan(t.TempDir())
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("Scan found %d files in empty dir", len(results))
	}
}
