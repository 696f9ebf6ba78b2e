package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/whale1510/recipectl/internal/config"
	"github.com/whale1510/recipectl/internal/debug"
	"github.com/whale1510/recipectl/internal/recipe"
	"github.com/whale1510/recipectl/internal/render"
	"github.com/whale1510/recipectl/internal/sitefile"
	"github.com/whale1510/recipectl/internal/slug"
	"github.com/whale1510/recipectl/internal/ui"
)

var (
	addName        string
	addCategory    string
	addDescription string
	addPrep        int
	addCook        int
	addServings    string
	addImage       string
	addIngredients string
	addDietary     string
	addYes         bool
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new recipe to the site",
	Long: `Add a new recipe: write its detail page and splice its card into the
featured grid on index.html and the category grid on recipes/index.html.

Without flags (and with a terminal attached) an interactive form collects
the recipe fields:
  - Tab/Shift+Tab: Move between fields
  - Enter: Submit the form (on the last field or submit button)
  - Ctrl+C: Cancel and exit

With --name the same pipeline runs non-interactively from flags; pass --yes
to skip the confirmation.`,
	Run: func(cmd *cobra.Command, args []string) {
		runAdd()
	},
}

// addOptions carries the raw field values before defaults are applied.
type addOptions struct {
	Name        string
	Category    string
	Description string
	Prep        int
	Cook        int
	Servings    string
	Image       string
	Ingredients string
	Dietary     string
}

func runAdd() {
	cfg, err := config.Load(siteDir)
	if err != nil {
		FatalError("%v", err)
	}
	cats, err := recipe.Categories(cfg.ConfigDir())
	if err != nil {
		FatalError("%v", err)
	}

	interactive := addName == "" && ui.IsInteractive()

	var r *recipe.Recipe
	var cat recipe.Category
	if interactive {
		r, cat = collectForm(cfg, cats)
	} else {
		opts := addOptions{
			Name:        addName,
			Category:    addCategory,
			Description: addDescription,
			Prep:        addPrep,
			Cook:        addCook,
			Servings:    addServings,
			Image:       addImage,
			Ingredients: addIngredients,
			Dietary:     addDietary,
		}
		r, cat, err = buildRecipe(opts, cats, cfg.DefaultDietary)
		if err != nil {
			if errors.Is(err, errNameRequired) {
				FatalErrorWithHint("recipe name is required", "Pass --name, or run 'recipectl add' in a terminal for the interactive form")
			}
			FatalError("%v", err)
		}
	}

	printSummary(r)

	if !interactive && !addYes {
		if !ui.IsInteractive() {
			FatalErrorWithHint("confirmation required", "Re-run with --yes to create the recipe non-interactively")
		}
		var confirmed bool
		err := huh.NewConfirm().
			Title(fmt.Sprintf("Create %q?", r.Name)).
			Affirmative("Create").
			Negative("Cancel").
			Value(&confirmed).
			Run()
		if err != nil || !confirmed {
			fmt.Println("Cancelled.")
			return
		}
	}

	if err := runAddPipeline(cfg, render.Renderer{ConfigDir: cfg.ConfigDir()}, r, cat, os.Stdout); err != nil {
		FatalError("%v", err)
	}
}

var errNameRequired = errors.New("recipe name is required")

// buildRecipe applies defaults to opts and resolves the category, producing
// the Recipe the templates render. Used by the flag path directly and by the
// form path after collection.
func buildRecipe(opts addOptions, cats []recipe.Category, defaultDietary string) (*recipe.Recipe, recipe.Category, error) {
	name := strings.TrimSpace(opts.Name)
	if name == "" {
		return nil, recipe.Category{}, errNameRequired
	}

	s := slug.Make(name)
	if s == "" {
		return nil, recipe.Category{}, fmt.Errorf("recipe name %q produces an empty slug", name)
	}

	cat := recipe.DefaultCategory
	if opts.Category != "" {
		var ok bool
		cat, ok = recipe.FindCategory(cats, opts.Category)
		if !ok {
			var slugs []string
			for _, c := range cats {
				slugs = append(slugs, c.Slug)
			}
			return nil, recipe.Category{}, fmt.Errorf("unknown category %q (known: %s)", opts.Category, strings.Join(slugs, ", "))
		}
	}

	description := strings.TrimSpace(opts.Description)
	if description == "" {
		description = "Delicious Korean " + name
	}

	prep, cook := opts.Prep, opts.Cook
	if prep == 0 {
		prep = 10
	}
	if cook == 0 {
		cook = 20
	}
	if prep < 0 || cook < 0 {
		return nil, recipe.Category{}, fmt.Errorf("prep/cook minutes must not be negative")
	}

	servings := strings.TrimSpace(opts.Servings)
	if servings == "" {
		servings = "2"
	}

	image := strings.TrimSpace(opts.Image)
	if image == "" {
		image = s + ".jpg"
	}

	ingredients := recipe.NormalizeList(opts.Ingredients)
	if ingredients == "" {
		ingredients = "kimchi,tofu,garlic"
	}

	dietary := recipe.NormalizeList(opts.Dietary)
	if dietary == "" {
		dietary = defaultDietary
	}

	r := &recipe.Recipe{
		Name:            name,
		Slug:            s,
		Category:        cat.Slug,
		CategoryDisplay: cat.Display,
		Description:     description,
		PrepMinutes:     prep,
		CookMinutes:     cook,
		Servings:        servings,
		Image:           image,
		Ingredients:     ingredients,
		Dietary:         dietary,
	}
	if err := r.Validate(); err != nil {
		return nil, recipe.Category{}, err
	}
	return r, cat, nil
}

// collectForm gathers the recipe fields through an interactive form. Exits
// the process on cancellation.
func collectForm(cfg *config.Config, cats []recipe.Category) (*recipe.Recipe, recipe.Category) {
	var (
		name        string
		categorySel = recipe.DefaultCategory.Slug
		description string
		prepStr     string
		cookStr     string
		servings    string
		image       string
		ingredients string
		dietarySel  []string
		confirmed   bool
	)

	catOptions := make([]huh.Option[string], len(cats))
	for i, c := range cats {
		catOptions[i] = huh.NewOption(c.Display, c.Slug)
	}

	dietaryOptions := make([]huh.Option[string], len(recipe.DietaryOptions))
	for i, d := range recipe.DietaryOptions {
		dietaryOptions[i] = huh.NewOption(d, d)
	}

	numericOrEmpty := func(s string) error {
		if strings.TrimSpace(s) == "" {
			return nil
		}
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil || n < 0 {
			return fmt.Errorf("enter a number of minutes")
		}
		return nil
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Recipe name").
				Description("Shown as the page title and card heading (required)").
				Placeholder("e.g., Kimchi Jjigae").
				Value(&name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("recipe name is required")
					}
					return nil
				}),

			huh.NewSelect[string]().
				Title("Category").
				Description("Decides which grid on recipes/index.html gets the card").
				Options(catOptions...).
				Value(&categorySel),

			huh.NewInput().
				Title("Short description").
				Description("One sentence for the card (default: Delicious Korean <name>)").
				Value(&description),
		),

		huh.NewGroup(
			huh.NewInput().
				Title("Prep time (minutes)").
				Placeholder("10").
				Value(&prepStr).
				Validate(numericOrEmpty),

			huh.NewInput().
				Title("Cook time (minutes)").
				Placeholder("20").
				Value(&cookStr).
				Validate(numericOrEmpty),

			huh.NewInput().
				Title("Servings").
				Placeholder("2").
				Value(&servings),

			huh.NewInput().
				Title("Image filename").
				Description("In " + cfg.ImageDir + "/ (default: <slug>.jpg)").
				Value(&image),
		),

		huh.NewGroup(
			huh.NewInput().
				Title("Main ingredients").
				Description("Comma-separated (e.g., kimchi,pork,tofu)").
				Placeholder("kimchi,tofu,garlic").
				Value(&ingredients),

			huh.NewMultiSelect[string]().
				Title("Dietary types").
				Description("Select all that apply; empty keeps the house default").
				Options(dietaryOptions...).
				Value(&dietarySel),

			huh.NewConfirm().
				Title("Create this recipe?").
				Affirmative("Create").
				Negative("Cancel").
				Value(&confirmed),
		),
	).WithTheme(huh.ThemeDracula())

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Fprintln(os.Stderr, "Cancelled by user.")
			os.Exit(0)
		}
		FatalError("form error: %v", err)
	}
	if !confirmed {
		fmt.Println("Cancelled.")
		os.Exit(0)
	}

	opts := addOptions{
		Name:        name,
		Category:    categorySel,
		Description: description,
		Prep:        parseMinutes(prepStr),
		Cook:        parseMinutes(cookStr),
		Servings:    servings,
		Image:       image,
		Ingredients: ingredients,
		Dietary:     strings.Join(dietarySel, ","),
	}
	r, cat, err := buildRecipe(opts, cats, cfg.DefaultDietary)
	if err != nil {
		FatalError("%v", err)
	}
	return r, cat
}

// parseMinutes converts a validated form value; empty means "use default".
func parseMinutes(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

// runAddPipeline writes the detail page and patches both index files.
// Patch failures degrade to printed manual-insertion instructions; only
// render and detail-page write failures abort.
func runAddPipeline(cfg *config.Config, rn render.Renderer, r *recipe.Recipe, cat recipe.Category, out io.Writer) error {
	page, err := rn.DetailPage(r)
	if err != nil {
		return err
	}

	recipePath := cfg.RecipeFile(r)
	if err := os.MkdirAll(filepath.Dir(recipePath), 0o755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(recipePath), err)
	}
	if err := os.WriteFile(recipePath, []byte(page), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", recipePath, err)
	}
	fmt.Fprintf(out, "%s Created recipe page: %s\n", ui.Pass(ui.IconPass), recipePath)

	cardForIndex, err := rn.Card(r, true)
	if err != nil {
		return err
	}
	cardForRecipes, err := rn.Card(r, false)
	if err != nil {
		return err
	}

	patchInto(out, cfg.IndexFile(), cardForIndex, recipe.FeaturedSectionID)
	patchInto(out, cfg.RecipesIndexFile(), cardForRecipes, cat.SectionID)

	printNextSteps(out, cfg, r)
	return nil
}

// patchInto splices card into the grid of sectionID in path, degrading to
// manual-insertion instructions on any failure.
func patchInto(out io.Writer, path, card, sectionID string) {
	backup, err := sitefile.InsertCard(path, card, sectionID)
	if err != nil {
		WarnError("could not add card to %s (#%s): %v", path, sectionID, err)
		fmt.Fprintf(out, "\n  Copy this code into %s (#%s):\n", path, sectionID)
		fmt.Fprintln(out, "  "+strings.Repeat("-", 56))
		fmt.Fprint(out, card)
		return
	}
	fmt.Fprintf(out, "%s Added card to %s (#%s)\n", ui.Pass(ui.IconPass), path, sectionID)
	if backup != "" {
		debug.Logf("add: backup for %s at %s\n", path, backup)
	}
}

func printSummary(r *recipe.Recipe) {
	debug.PrintlnNormal()
	debug.PrintlnNormal(ui.Header("Recipe summary"))
	rows := []struct{ label, value string }{
		{"Name", r.Name},
		{"Slug", r.Slug},
		{"Category", fmt.Sprintf("%s (%s)", r.CategoryDisplay, r.Category)},
		{"Description", r.Description},
		{"Time", r.Time()},
		{"Total time", r.TotalTime()},
		{"Servings", r.Servings},
		{"Image", r.Image},
		{"Ingredients", r.Ingredients},
		{"Dietary", r.Dietary},
	}
	for _, row := range rows {
		debug.PrintNormal("  %-12s %s\n", row.label, row.value)
	}
	debug.PrintlnNormal()
}

func printNextSteps(out io.Writer, cfg *config.Config, r *recipe.Recipe) {
	if debug.IsQuiet() {
		return
	}

	green := color.New(color.FgGreen).SprintFunc()
	fmt.Fprintf(out, "\n%s Recipe %q added to the site.\n", green(ui.IconPass), r.Name)

	md := fmt.Sprintf(`## Next steps

1. Edit the recipe details in `+"`%s`"+`:
   replace the placeholder ingredients list, cooking steps and tips.
2. Make sure the image exists: `+"`%s`"+`
3. Preview the site and check `+"`%s`"+`

Backup files are written as `+"`<file>.backup_TIMESTAMP`"+`; prune them with
`+"`recipectl backups prune`"+` once everything looks right.
`, cfg.RecipeFile(r), cfg.ImageFile(r), r.DetailPath())
	fmt.Fprint(out, ui.RenderMarkdown(md))
}

func init() {
	addCmd.Flags().StringVarP(&addName, "name", "n", "", "Recipe name (skips the interactive form)")
	addCmd.Flags().StringVarP(&addCategory, "category", "c", "", "Category slug (default: main-dish)")
	addCmd.Flags().StringVar(&addDescription, "description", "", "Short description")
	addCmd.Flags().IntVar(&addPrep, "prep", 0, "Prep time in minutes (default 10)")
	addCmd.Flags().IntVar(&addCook, "cook", 0, "Cook time in minutes (default 20)")
	addCmd.Flags().StringVar(&addServings, "servings", "", "Servings (default 2)")
	addCmd.Flags().StringVar(&addImage, "image", "", "Image filename under the image dir (default <slug>.jpg)")
	addCmd.Flags().StringVar(&addIngredients, "ingredients", "", "Comma-separated main ingredients")
	addCmd.Flags().StringVar(&addDietary, "dietary", "", "Comma-separated dietary tags")
	addCmd.Flags().BoolVarP(&addYes, "yes", "y", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(addCmd)
}
