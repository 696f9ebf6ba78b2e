// Package config loads recipectl settings for a site checkout.
//
// Settings live in <site>/.recipectl/config.yaml and can be overridden with
// RECIPECTL_* environment variables (RECIPECTL_IMAGE_DIR, ...). Everything
// has a default, so a site with no config file works unchanged.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/whale1510/recipectl/internal/recipe"
)

const (
	// ConfigDirName is the per-site directory holding config, template
	// overrides and the category overlay.
	ConfigDirName  = ".recipectl"
	configFileName = "config.yaml"
	envPrefix      = "RECIPECTL"
)

// Config holds the resolved settings for one run.
type Config struct {
	// SiteDir is the root of the site checkout.
	SiteDir string
	// ImageDir is the site-relative directory recipe images live in.
	ImageDir string
	// DefaultDietary is applied when no dietary tags are selected.
	DefaultDietary string
}

// Load resolves settings for the site at siteDir.
func Load(siteDir string) (*Config, error) {
	v := viper.New()
	v.SetDefault("image-dir", "assets/img/recipes")
	v.SetDefault("default-dietary", recipe.DefaultDietary)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	path := filepath.Join(siteDir, ConfigDirName, configFileName)
	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
	}

	return &Config{
		SiteDir:        siteDir,
		ImageDir:       v.GetString("image-dir"),
		DefaultDietary: v.GetString("default-dietary"),
	}, nil
}

// ConfigDir returns the site's .recipectl directory.
func (c *Config) ConfigDir() string {
	return filepath.Join(c.SiteDir, ConfigDirName)
}

// IndexFile returns the path of the site root index.
func (c *Config) IndexFile() string {
	return filepath.Join(c.SiteDir, "index.html")
}

// RecipesIndexFile returns the path of the recipes index.
func (c *Config) RecipesIndexFile() string {
	return filepath.Join(c.SiteDir, "recipes", "index.html")
}

// RecipeFile returns the path the detail page for r is written to.
func (c *Config) RecipeFile(r *recipe.Recipe) string {
	return filepath.Join(c.SiteDir, r.DetailPath())
}

// ImageFile returns the path the recipe's image is expected at.
func (c *Config) ImageFile(r *recipe.Recipe) string {
	return filepath.Join(c.SiteDir, filepath.FromSlash(c.ImageDir), r.Image)
}
