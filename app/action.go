package app

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/exec"
	"runtime"
	"time"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/simmer/internal/config"
	"github.com/ayoisaiah/simmer/internal/cooking"
	"github.com/ayoisaiah/simmer/internal/logging"
	"github.com/ayoisaiah/simmer/internal/notify"
	"github.com/ayoisaiah/simmer/internal/osutil"
	"github.com/ayoisaiah/simmer/internal/pathutil"
	"github.com/ayoisaiah/simmer/internal/recipe"
	"github.com/ayoisaiah/simmer/internal/static"
	"github.com/ayoisaiah/simmer/internal/timeutil"
	"github.com/ayoisaiah/simmer/internal/ui"
	"github.com/ayoisaiah/simmer/report"
	"github.com/ayoisaiah/simmer/store"
	"github.com/ayoisaiah/simmer/timer"
)

const (
	envUpdateNotifier = "SIMMER_UPDATE_NOTIFIER"
	envNoColor        = "NO_COLOR"
	envSimmerNoColor  = "SIMMER_NO_COLOR"

	logCloserKey = "log_closer"
)

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// checkForUpdates alerts the user if there is
// an updated version of Simmer from the one currently installed.
func checkForUpdates(app *cli.App) {
	spinner, _ := pterm.DefaultSpinner.Start("Checking for updates...")
	c := http.Client{Timeout: 10 * time.Second}

	resp, err := c.Get("https://github.com/ayoisaiah/simmer/releases/latest")
	if err != nil {
		pterm.Error.Println("HTTP Error: Failed to check for update")
		return
	}

	defer resp.Body.Close()

	var version string

	_, err = fmt.Sscanf(
		resp.Request.URL.String(),
		"https://github.com/ayoisaiah/simmer/releases/tag/%s",
		&version,
	)
	if err != nil {
		pterm.Error.Println("Failed to get latest version")
		return
	}

	if version == app.Version {
		text := pterm.Sprintf(
			"Congratulations, you are using the latest version of %s",
			app.Name,
		)
		spinner.Success(text)
	} else {
		pterm.Warning.Prefix = pterm.Prefix{
			Text:  "UPDATE AVAILABLE",
			Style: pterm.NewStyle(pterm.BgYellow, pterm.FgBlack),
		}
		pterm.Warning.Printfln("A new release of simmer is available: %s at %s", version, resp.Request.URL.String())
	}
}

// loadConfig reads the config file and applies command-line overrides. The
// first-run prompt is only shown for interactive commands.
func loadConfig(ctx *cli.Context, prompt bool) (*config.Config, error) {
	path := pathutil.ConfigFilePath()

	opts := []config.Option{
		config.WithViperConfig(path),
		config.WithCLIConfig(ctx),
	}

	if prompt {
		opts = append([]config.Option{config.WithPromptConfig(path)}, opts...)
	}

	cfg, err := config.New(opts...)
	if err != nil {
		return nil, err
	}

	ui.DarkTheme = cfg.Display.DarkTheme

	return cfg, nil
}

func openStore() (*store.Client, error) {
	return store.NewClient(pathutil.DBFilePath())
}

// resolveRef finds the recipe named by the first command argument.
func resolveRef(
	ctx *cli.Context,
	db store.DB,
	cfg *config.Config,
) (*recipe.Recipe, error) {
	ref := ctx.Args().First()
	if ref == "" {
		return nil, errRecipeRefRequired
	}

	order, err := recipe.ParseSort(cfg.List.Sort)
	if err != nil {
		return nil, err
	}

	return db.Resolve(ref, order)
}

// listOptions builds the listing filters from the config and command flags.
func listOptions(ctx *cli.Context, cfg *config.Config) (recipe.ListOptions, error) {
	var opts recipe.ListOptions

	order, err := recipe.ParseSort(cfg.List.Sort)
	if err != nil {
		return opts, err
	}

	difficulty, err := recipe.ParseDifficulty(ctx.String("difficulty"))
	if err != nil {
		return opts, err
	}

	opts.Sort = order
	opts.Difficulty = difficulty
	opts.Favorites = ctx.Bool("favorites")

	if since := ctx.String("since"); since != "" {
		opts.Since, err = timeutil.FromStr(since, time.Now())
		if err != nil {
			return opts, err
		}
	}

	return opts, nil
}

// notifiers assembles the event sinks enabled in cfg. The relay always comes
// first so the interface stays in step with the session.
func notifiers(
	cfg *config.Config,
	relay *timer.Relay,
	logger *slog.Logger,
) (notify.Multi, error) {
	sinks := notify.Multi{relay}

	if cfg.Notifications.Enabled {
		sinks = append(sinks, notify.NewDesktop(logger))
	}

	if cfg.Notifications.Sound {
		sinks = append(sinks, notify.NewBell(logger))
	}

	cmd, err := notify.NewCommand(cfg.Notifications.Cmd, logger)
	if err != nil {
		return nil, err
	}

	if cmd != nil {
		sinks = append(sinks, cmd)
	}

	return sinks, nil
}

// browse opens the interactive recipe browser. If start is set, that recipe
// is opened in the cooking view straight away.
func browse(ctx *cli.Context, cfg *config.Config, db *store.Client, start string) error {
	logger := slog.Default()
	relay := timer.NewRelay()

	sinks, err := notifiers(cfg, relay, logger)
	if err != nil {
		return err
	}

	ctrl := cooking.NewController(
		cooking.NewStore(cooking.SystemClock),
		db,
		cooking.WithDriver(cfg.Cooking.TickInterval),
		cooking.WithStopCooldown(cfg.Cooking.StopCooldown),
		cooking.WithLogger(logger),
		cooking.WithNotifier(sinks),
	)

	order, err := recipe.ParseSort(cfg.List.Sort)
	if err != nil {
		return err
	}

	t := timer.New(db, ctrl, relay, cfg, logger, timer.Options{
		Start:      start,
		StatusPath: pathutil.StatusFilePath(),
		Sort:       order,
		Debug:      ctx.Bool("debug"),
	})

	return t.Run(ctx.Context)
}

// defaultAction opens the recipe browser.
func defaultAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx, true)
	if err != nil {
		return err
	}

	db, err := openStore()
	if err != nil {
		return err
	}

	defer db.Close()

	return browse(ctx, cfg, db, "")
}

// cookAction handles the cook command which opens a recipe in the cooking
// view.
func cookAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx, true)
	if err != nil {
		return err
	}

	db, err := openStore()
	if err != nil {
		return err
	}

	defer db.Close()

	r, err := resolveRef(ctx, db, cfg)
	if err != nil {
		return err
	}

	return browse(ctx, cfg, db, r.ID)
}

// listAction handles the list command and prints a table of the saved
// recipes that match the filters.
func listAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx, false)
	if err != nil {
		return err
	}

	opts, err := listOptions(ctx, cfg)
	if err != nil {
		return err
	}

	db, err := openStore()
	if err != nil {
		return err
	}

	defer db.Close()

	all, err := db.List()
	if err != nil {
		return err
	}

	if ctx.Bool("json") {
		return writeJSON(os.Stdout, recipe.Filter(all, opts))
	}

	return listRecipes(os.Stdout, all, opts, cfg)
}

// showAction prints a single recipe.
func showAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx, false)
	if err != nil {
		return err
	}

	db, err := openStore()
	if err != nil {
		return err
	}

	defer db.Close()

	r, err := resolveRef(ctx, db, cfg)
	if err != nil {
		return err
	}

	if ctx.Bool("json") {
		return writeJSON(os.Stdout, r)
	}

	return printRecipe(os.Stdout, r)
}

// addAction imports every recipe in the file given by --file.
func addAction(ctx *cli.Context) error {
	path := ctx.String("file")

	recipes, err := readRecipes(path)
	if err != nil {
		return err
	}

	db, err := openStore()
	if err != nil {
		return err
	}

	defer db.Close()

	for _, r := range recipes {
		if err := db.Add(r); err != nil {
			return errAddRecipe.Fmt(r.Title).Wrap(err)
		}

		report.RecipeAdded(r)
	}

	return nil
}

// newAction handles the new command which asks for a recipe through an
// interactive form.
func newAction(ctx *cli.Context) error {
	if _, err := loadConfig(ctx, false); err != nil {
		return err
	}

	r, err := recipeForm()
	if err != nil {
		return err
	}

	db, err := openStore()
	if err != nil {
		return err
	}

	defer db.Close()

	if err := db.Add(r); err != nil {
		return errAddRecipe.Fmt(r.Title).Wrap(err)
	}

	report.RecipeAdded(r)

	return nil
}

// editAction replaces a saved recipe with the one in --file.
func editAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx, false)
	if err != nil {
		return err
	}

	recipes, err := readRecipes(ctx.String("file"))
	if err != nil {
		return err
	}

	db, err := openStore()
	if err != nil {
		return err
	}

	defer db.Close()

	existing, err := resolveRef(ctx, db, cfg)
	if err != nil {
		return err
	}

	r, err := editRecipe(db, existing, recipes, ctx.String("file"))
	if err != nil {
		return err
	}

	report.RecipeUpdated(r)

	return nil
}

// deleteAction handles the delete command. It asks for confirmation unless
// --yes is set.
func deleteAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx, false)
	if err != nil {
		return err
	}

	db, err := openStore()
	if err != nil {
		return err
	}

	defer db.Close()

	r, err := resolveRef(ctx, db, cfg)
	if err != nil {
		return err
	}

	return delRecipe(db, r, ctx.Bool("yes"))
}

// favoriteAction toggles the favourite flag of a recipe.
func favoriteAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx, false)
	if err != nil {
		return err
	}

	db, err := openStore()
	if err != nil {
		return err
	}

	defer db.Close()

	r, err := resolveRef(ctx, db, cfg)
	if err != nil {
		return err
	}

	r, err = db.ToggleFavorite(r.ID)
	if err != nil {
		return err
	}

	report.Favorite(r)

	return nil
}

// exportAction prints every saved recipe as JSON.
func exportAction(_ *cli.Context) error {
	db, err := openStore()
	if err != nil {
		return err
	}

	defer db.Close()

	recipes, err := db.List()
	if err != nil {
		return err
	}

	return writeJSON(os.Stdout, exportable(recipes))
}

// statusAction handles the status command and prints the status of the
// recipe being cooked in another terminal.
func statusAction(_ *cli.Context) error {
	return timer.ReportStatus(
		os.Stdout,
		pathutil.DBFilePath(),
		pathutil.StatusFilePath(),
	)
}

// editConfigAction handles the edit-config command which opens the simmer
// config file in the user's default text editor.
func editConfigAction(ctx *cli.Context) error {
	// creates the file with defaults if it does not exist yet
	if _, err := loadConfig(ctx, false); err != nil {
		return err
	}

	defaultEditor := "nano"

	if runtime.GOOS == osutil.Windows {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	cmd := exec.Command(editor, pathutil.ConfigFilePath())

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	// Override the default version printer
	oldVersionPrinter := cli.VersionPrinter
	cli.VersionPrinter = func(c *cli.Context) {
		oldVersionPrinter(c)
		fmt.Printf(
			"https://github.com/ayoisaiah/simmer/releases/%s\n",
			c.App.Version,
		)

		if _, found := os.LookupEnv(envUpdateNotifier); found {
			checkForUpdates(c.App)
		}
	}

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if SIMMER_NO_COLOR is set
	if _, exists := os.LookupEnv(envSimmerNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	if err := pathutil.Initialize(); err != nil {
		return err
	}

	closer, err := logging.Setup(logging.Options{
		Path:  pathutil.LogFilePath(),
		Debug: ctx.Bool("debug"),
	})
	if err != nil {
		return err
	}

	ctx.App.Metadata = map[string]any{logCloserKey: closer}

	// a missing icon only makes notifications plainer
	if err := static.Install(); err != nil {
		slog.Warn("unable to install static files", "error", err)
	}

	return nil
}

func afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctx.Context, "exiting simmer")

	if closer, ok := ctx.App.Metadata[logCloserKey].(io.Closer); ok {
		return closer.Close()
	}

	return nil
}
