package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/net/html"
)

func parse(t *testing.T, s string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestFindElementByID(t *testing.T) {
	doc := parse(t, `<body>
		<section id="other"></section>
		<section id="featured-recipes-section" class="section"></section>
	</body>`)

	n := findElementByID(doc, "section", "featured-recipes-section")
	if n == nil {
		t.Fatal("section not found")
	}
	if n.Data != "section" {
		t.Errorf("found %q, want section", n.Data)
	}

	if findElementByID(doc, "section", "absent") != nil {
		t.Error("found a section that does not exist")
	}
	// The id must be on the right element type.
	if findElementByID(doc, "div", "featured-recipes-section") != nil {
		t.Error("id matched on wrong tag")
	}
}

func TestHasCardGrid(t *testing.T) {
	tests := []struct {
		name string
		html string
		want bool
	}{
		{"direct child", `<section id="s"><div class="recipe-card-grid"></div></section>`, true},
		{"nested", `<section id="s"><div class="wrap"><div class="recipe-card-grid"></div></div></section>`, true},
		{"multiple classes", `<section id="s"><div class="grid recipe-card-grid wide"></div></section>`, true},
		{"absent", `<section id="s"><div class="card-grid"></div></section>`, false},
		{"substring class does not count", `<section id="s"><div class="recipe-card-grid-extra"></div></section>`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := parse(t, tt.html)
			section := findElementByID(doc, "section", "s")
			if section == nil {
				t.Fatal("test markup broken")
			}
			if got := hasCardGrid(section); got != tt.want {
				t.Errorf("hasCardGrid = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCheckGridSection(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.html")
	bad := filepath.Join(dir, "bad.html")
	if err := os.WriteFile(good, []byte(indexPage), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(bad, []byte(`<section id="featured-recipes-section"><p>no grid</p></section>`), 0o644); err != nil {
		t.Fatal(err)
	}

	collect := func(path, id string) (bool, string) {
		var ok bool
		var msg string
		checkGridSection(path, id, func(pass bool, format string, args ...interface{}) {
			ok = pass
			msg = fmt.Sprintf(format, args...)
		})
		return ok, msg
	}

	if ok, msg := collect(good, "featured-recipes-section"); !ok {
		t.Errorf("good file failed: %s", msg)
	}
	if ok, _ := collect(good, "missing-section"); ok {
		t.Error("missing section reported as ok")
	}
	if ok, msg := collect(bad, "featured-recipes-section"); ok {
		t.Error("section without grid reported as ok")
	} else if !strings.Contains(msg, "recipe-card-grid") {
		t.Errorf("unexpected message: %s", msg)
	}
	if ok, _ := collect(filepath.Join(dir, "absent.html"), "x"); ok {
		t.Error("missing file reported as ok")
	}
}
