package platform

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveImagePath(t *testing.T) {
	base := filepath.Join("data", "animals")

	tests := []struct {
		name      string
		imagePath string
		expected  string
	}{
		{"relative", "images/dolphin.jpg", filepath.Join(base, "images", "dolphin.jpg")},
		{"web root", "/images/ocean.jpg", filepath.Join(base, "images", "ocean.jpg")},
		{"empty", "", ""},
	}

	for _, test := range tests {
		result := ResolveImagePath(base, test.imagePath)
		if result != test.expected {
			t.Errorf("%s: ResolveImagePath(%q) = %q, expected %q", test.name, test.imagePath, result, test.expected)
		}
	}
}

func TestResolveImagePath_ExistingAbsolute(t *testing.T) {
	tempDir := t.TempDir()
	abs := filepath.Join(tempDir, "owl.png")
	if err := os.WriteFile(abs, []byte("png"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	result := ResolveImagePath("/elsewhere", abs)
	if result != abs {
		t.Errorf("Expected absolute path %s to be kept, got %s", abs, result)
	}
}

func TestResolveImagePath_EmptyBase(t *testing.T) {
	result := ResolveImagePath("", "images/lion.png")
	expected := filepath.Join("images", "lion.png")
	if result != expected {
		t.Errorf("Expected %s, got %s", expected, result)
	}
}

func TestIsSupportedImage(t *testing.T) {
	tests := []struct {
		path     string
		expected bool
	}{
		{"a.png", true},
		{"a.JPG", true},
		{"a.jpeg", true},
		{"a.svg", true},
		{"a.txt", false},
		{"noext", false},
	}

	for _, test := range tests {
		result := IsSupportedImage(test.path)
		if result != test.expected {
			t.Errorf("IsSupportedImage(%s) = %v, expected %v", test.path, result, test.expected)
		}
	}
}

func TestFileExists(t *testing.T) {
	tempDir := t.TempDir()
	file := filepath.Join(tempDir, "x.png")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	if !FileExists(file) {
		t.Error("Expected file to exist")
	}
	if FileExists(tempDir) {
		t.Error("Directory should not count as a file")
	}
	if FileExists(filepath.Join(tempDir, "missing.png")) {
		t.Error("Missing file should not exist")
	}
}

func TestImageResource(t *testing.T) {
	tempDir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(tempDir, "images"), 0755); err != nil {
		t.Fatalf("Failed to create dir: %v", err)
	}
	content := []byte("<svg xmlns=\"http://www.w3.org/2000/svg\"/>")
	if err := os.WriteFile(filepath.Join(tempDir, "images", "fish.svg"), content, 0644); err != nil {
		t.Fatalf("Failed to write image: %v", err)
	}

	res, err := ImageResource(tempDir, "/images/fish.svg")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if res.Name() != "fish.svg" {
		t.Errorf("Expected resource name fish.svg, got %s", res.Name())
	}
	if string(res.Content()) != string(content) {
		t.Error("Resource content does not match file content")
	}

	if _, err := ImageResource(tempDir, "images/missing.png"); err == nil {
		t.Error("Expected error for missing image")
	}
	if _, err := ImageResource(tempDir, "images/notes.txt"); err == nil {
		t.Error("Expected error for unsupported image type")
	}
	if _, err := ImageResource(tempDir, ""); err == nil {
		t.Error("Expected error for empty image path")
	}
}

func TestDataDir(t *testing.T) {
	dir := DataDir(filepath.Join("some", "where", "animals.yaml"))
	if filepath.Base(dir) != "where" {
		t.Errorf("Expected data dir to end with 'where', got %s", dir)
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("Expected absolute path, got %s", dir)
	}

	wd, _ := os.Getwd()
	if DataDir("") != wd {
		t.Errorf("Expected working directory %s for embedded dataset, got %s", wd, DataDir(""))
	}
}

func TestNewSeed(t *testing.T) {
	a, err := NewSeed()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	b, err := NewSeed()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if a == b {
		t.Error("Two seeds should practically never collide")
	}
}
