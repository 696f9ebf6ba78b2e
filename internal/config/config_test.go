package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/whale1510/recipectl/internal/recipe"
)

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.ImageDir != "assets/img/recipes" {
		t.Errorf("ImageDir = %q", cfg.ImageDir)
	}
	if cfg.DefaultDietary != recipe.DefaultDietary {
		t.Errorf("DefaultDietary = %q", cfg.DefaultDietary)
	}
	if cfg.IndexFile() != filepath.Join(dir, "index.html") {
		t.Errorf("IndexFile() = %q", cfg.IndexFile())
	}
	if cfg.RecipesIndexFile() != filepath.Join(dir, "recipes", "index.html") {
		t.Errorf("RecipesIndexFile() = %q", cfg.RecipesIndexFile())
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	confDir := filepath.Join(dir, ConfigDirName)
	if err := os.MkdirAll(confDir, 0o755); err != nil {
		t.Fatal(err)
	}
	yaml := "image-dir: static/img\ndefault-dietary: vegan\n"
	if err := os.WriteFile(filepath.Join(confDir, "config.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ImageDir != "static/img" {
		t.Errorf("ImageDir = %q, want static/img", cfg.ImageDir)
	}
	if cfg.DefaultDietary != "vegan" {
		t.Errorf("DefaultDietary = %q, want vegan", cfg.DefaultDietary)
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("RECIPECTL_IMAGE_DIR", "img/override")

	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ImageDir != "img/override" {
		t.Errorf("ImageDir = %q, want img/override", cfg.ImageDir)
	}
}

func TestRecipePaths(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	r := &recipe.Recipe{Slug: "kimchi-jjigae", Category: "main-dish", Image: "kimchi-jjigae.jpg"}
	if got, want := cfg.RecipeFile(r), filepath.Join(dir, "recipes", "main-dish", "kimchi-jjigae.html"); got != want {
		t.Errorf("RecipeFile = %q, want %q", got, want)
	}
	if got, want := cfg.ImageFile(r), filepath.Join(dir, "assets", "img", "recipes", "kimchi-jjigae.jpg"); got != want {
		t.Errorf("ImageFile = %q, want %q", got, want)
	}
}

func TestLoadBadYaml(t *testing.T) {
	dir := t.TempDir()
	confDir := filepath.Join(dir, ConfigDirName)
	if err := os.MkdirAll(confDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(confDir, "config.yaml"), []byte("image-dir: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(dir); err == nil {
		t.Error("expected error for malformed config.yaml")
	}
}
