// Package recipe defines the recipe model and the category catalog used by
// recipectl. Categories map a URL slug to a display name and to the id of the
// section that holds that category's cards in recipes/index.html.
package recipe

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// Recipe holds everything collected for one run. It is built once from user
// input, rendered into the detail page and card templates, and discarded.
type Recipe struct {
	Name            string
	Slug            string
	Category        string
	CategoryDisplay string
	Description     string
	PrepMinutes     int
	CookMinutes     int
	Servings        string
	Image           string
	Ingredients     string // comma-separated, lowercase
	Dietary         string // comma-separated
}

// Time returns the split prep/cook label shown on the detail page.
func (r *Recipe) Time() string {
	return fmt.Sprintf("Prep %d min + Cook %d min", r.PrepMinutes, r.CookMinutes)
}

// TotalTime returns the combined time label shown on cards.
func (r *Recipe) TotalTime() string {
	return fmt.Sprintf("%d min", r.PrepMinutes+r.CookMinutes)
}

// DetailPath returns the site-relative path of the recipe's detail page.
func (r *Recipe) DetailPath() string {
	return filepath.Join("recipes", r.Category, r.Slug+".html")
}

// Validate checks the fields the pipeline cannot proceed without.
func (r *Recipe) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("recipe name is required")
	}
	if r.Slug == "" {
		return fmt.Errorf("recipe %q produced an empty slug", r.Name)
	}
	if r.PrepMinutes < 0 || r.CookMinutes < 0 {
		return fmt.Errorf("prep/cook minutes must not be negative")
	}
	return nil
}

// Category describes one recipe category on the site.
type Category struct {
	Slug      string `toml:"slug"`
	Display   string `toml:"display"`    // e.g. "Main Dish"
	SectionID string `toml:"section_id"` // section id in recipes/index.html
}

// BuiltinCategories are the categories the site ships with. Order matters:
// it is the order offered in the interactive select.
var BuiltinCategories = []Category{
	{Slug: "main-dish", Display: "Main Dish", SectionID: "main-dish-recipes"},
	{Slug: "side-dish", Display: "Side Dish", SectionID: "side-dish-recipes"},
	{Slug: "rice", Display: "Rice", SectionID: "rice-recipes"},
}

// DefaultCategory is used when the user gives no or an unknown choice.
var DefaultCategory = BuiltinCategories[0]

// DietaryOptions lists the tags offered in the multi-select.
var DietaryOptions = []string{
	"vegan",
	"halal",
	"gluten-free",
	"nut-free",
	"dairy-free",
	"shellfish-free",
}

// DefaultDietary is applied when no dietary tags are selected.
const DefaultDietary = "gluten-free,dairy-free,shellfish-free"

// FeaturedSectionID is the section on the site root index that every new
// recipe's card is added to, regardless of category.
const FeaturedSectionID = "featured-recipes-section"

const categoriesFileName = "categories.toml"

type userCategories struct {
	Categories []Category `toml:"categories"`
}

// LoadUserCategories reads extra categories from <configDir>/categories.toml
// if it exists. Returns nil with no error when the file is absent.
func LoadUserCategories(configDir string) ([]Category, error) {
	path := filepath.Join(configDir, categoriesFileName)
	data, err := os.ReadFile(path) // #nosec G304 -- path is constructed from the config dir
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", categoriesFileName, err)
	}

	var user userCategories
	if err := toml.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("parse %s: %w", categoriesFileName, err)
	}

	for _, c := range user.Categories {
		if c.Slug == "" || c.Display == "" || c.SectionID == "" {
			return nil, fmt.Errorf("%s: category needs slug, display and section_id (got %+v)", categoriesFileName, c)
		}
	}
	return user.Categories, nil
}

// Categories returns the builtin categories merged with any user-defined ones
// from configDir. A user category with a builtin slug overrides the builtin,
// keeping the builtin's position; new slugs are appended sorted by slug.
func Categories(configDir string) ([]Category, error) {
	user, err := LoadUserCategories(configDir)
	if err != nil {
		return nil, err
	}

	merged := make([]Category, len(BuiltinCategories))
	copy(merged, BuiltinCategories)

	bySlug := make(map[string]int, len(merged))
	for i, c := range merged {
		bySlug[c.Slug] = i
	}

	var extra []Category
	for _, c := range user {
		if i, ok := bySlug[c.Slug]; ok {
			merged[i] = c
		} else {
			extra = append(extra, c)
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i].Slug < extra[j].Slug })

	return append(merged, extra...), nil
}

// FindCategory looks a category up by slug. The second return is false when
// the slug is unknown.
func FindCategory(cats []Category, slug string) (Category, bool) {
	for _, c := range cats {
		if c.Slug == slug {
			return c, true
		}
	}
	return Category{}, false
}

// NormalizeList trims whitespace, drops empties, lowercases, and deduplicates
// a comma-separated list while preserving order.
func NormalizeList(s string) string {
	seen := make(map[string]struct{})
	var out []string
	for _, item := range strings.Split(s, ",") {
		item = strings.ToLower(strings.TrimSpace(item))
		if item == "" {
			continue
		}
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return strings.Join(out, ",")
}
