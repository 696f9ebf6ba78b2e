package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/net/html"

	"github.com/whale1510/recipectl/internal/config"
	"github.com/whale1510/recipectl/internal/recipe"
	"github.com/whale1510/recipectl/internal/ui"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that the site files can accept recipe cards",
	Long: `Parse the site's index files and verify the containers recipectl
splices cards into: index.html needs <section id="featured-recipes-section">
with a recipe-card-grid inside, and recipes/index.html needs one such section
per category. Files are never modified.

The add command itself matches these containers textually; doctor uses a real
HTML parser, so it also catches malformed markup the splice would misread.`,
	Run: func(cmd *cobra.Command, args []string) {
		runDoctor()
	},
}

func runDoctor() {
	cfg, err := config.Load(siteDir)
	if err != nil {
		FatalError("%v", err)
	}
	cats, err := recipe.Categories(cfg.ConfigDir())
	if err != nil {
		FatalError("%v", err)
	}

	failures := 0
	report := func(ok bool, format string, args ...interface{}) {
		msg := fmt.Sprintf(format, args...)
		if ok {
			fmt.Printf("%s %s\n", ui.Pass(ui.IconPass), msg)
		} else {
			failures++
			fmt.Printf("%s %s\n", ui.Fail(ui.IconFail), msg)
		}
	}

	fmt.Println(ui.Header("Site index"))
	checkGridSection(cfg.IndexFile(), recipe.FeaturedSectionID, report)

	fmt.Println()
	fmt.Println(ui.Header("Recipes index"))
	for _, cat := range cats {
		checkGridSection(cfg.RecipesIndexFile(), cat.SectionID, report)
	}

	fmt.Println()
	imageDir := filepath.Join(cfg.SiteDir, filepath.FromSlash(cfg.ImageDir))
	if info, err := os.Stat(imageDir); err != nil || !info.IsDir() {
		fmt.Printf("%s image dir %s missing (cards will reference absent images)\n", ui.Warn(ui.IconWarn), cfg.ImageDir)
	} else {
		fmt.Printf("%s image dir %s\n", ui.Pass(ui.IconPass), cfg.ImageDir)
	}

	if failures > 0 {
		fmt.Printf("\n%d check(s) failed\n", failures)
		os.Exit(1)
	}
	fmt.Println("\nAll checks passed")
}

// checkGridSection parses path and reports whether it holds a section with
// the given id containing a recipe-card-grid.
func checkGridSection(path, sectionID string, report func(bool, string, ...interface{})) {
	f, err := os.Open(path) // #nosec G304 -- site file under --site-dir
	if err != nil {
		report(false, "%s: %v", path, err)
		return
	}
	defer f.Close()

	doc, err := html.Parse(f)
	if err != nil {
		report(false, "%s: parse: %v", path, err)
		return
	}

	section := findElementByID(doc, "section", sectionID)
	if section == nil {
		report(false, "%s: no <section id=%q>", path, sectionID)
		return
	}
	if !hasCardGrid(section) {
		report(false, "%s: section #%s has no recipe-card-grid", path, sectionID)
		return
	}
	report(true, "%s: section #%s", path, sectionID)
}

// findElementByID walks the tree for an element with the given tag and id.
func findElementByID(n *html.Node, tag, id string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		for _, a := range n.Attr {
			if a.Key == "id" && a.Val == id {
				return n
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElementByID(c, tag, id); found != nil {
			return found
		}
	}
	return nil
}

// hasCardGrid reports whether n has a descendant div with the
// recipe-card-grid class.
func hasCardGrid(n *html.Node) bool {
	if n.Type == html.ElementNode && n.Data == "div" {
		for _, a := range n.Attr {
			if a.Key == "class" && hasClass(a.Val, "recipe-card-grid") {
				return true
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if hasCardGrid(c) {
			return true
		}
	}
	return false
}

func hasClass(attr, class string) bool {
	for _, c := range strings.Fields(attr) {
		if c == class {
			return true
		}
	}
	return false
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
