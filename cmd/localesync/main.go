package main

import (
	"io"
	"os"
	"os/signal"
	"syscall"

	logging "github.com/ipfs/go-log/v2"
	"github.com/urfave/cli/v2"

	"localesync/internal/adapters/console"
	"localesync/internal/application"
	"localesync/internal/config"
	"localesync/internal/infrastructure/i18n"
	"localesync/internal/infrastructure/localefs"
	"localesync/internal/infrastructure/patchfile"
)

var log = logging.Logger("localesync")

func main() {
	app := newApp(os.Stdout)
	if err := app.Run(os.Args); err != nil {
		log.Errorf("❌ %v", err)
		os.Exit(1)
	}
}

func newApp(stdout io.Writer) *cli.App {
	return &cli.App{
		Name:  "localesync",
		Usage: "merge translation patches into per-language JSON locale files",
		Description: `localesync reads a patch file mapping language codes to dotted keys
   (insertImage.title = "...") and writes each key into <dir>/<lang>.json,
   creating nested objects as needed and keeping every other key.

   Every flag can also be set through the environment or a .env file:
   LOCALES_DIR, PATCH_FILE, LANGUAGES (comma separated), SORT_KEYS, DRY_RUN,
   UI_LOCALE, LOG_LEVEL. Flags win over the environment.

   The exit status is 1 when a language failed or a key was skipped.`,
		Writer: stdout,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:      "dir",
				Aliases:   []string{"d"},
				Usage:     "directory holding the <lang>.json locale files",
				TakesFile: true,
			},
			&cli.StringFlag{
				Name:      "patch",
				Aliases:   []string{"p"},
				Usage:     "patch file (.json or .toml)",
				TakesFile: true,
			},
			&cli.StringSliceFlag{
				Name:    "lang",
				Aliases: []string{"l"},
				Usage:   "language code to update, repeatable (default: every language in the patch file)",
			},
			&cli.BoolFlag{
				Name:  "sort-keys",
				Usage: "write object keys in lexical order instead of file order",
			},
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "merge and report without writing any file",
			},
			&cli.StringFlag{
				Name:  "ui-locale",
				Usage: "language of this tool's own messages (en, fr)",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "diagnostics level: debug, info, warn, error",
			},
		},
		Action: run,
	}
}

func run(cctx *cli.Context) error {
	cfg, err := config.Load(flagOptions(cctx)...)
	if err != nil {
		return err
	}
	if err := logging.SetLogLevel("*", cfg.LogLevel); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cctx.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	patches, err := patchfile.NewLoader(cfg.PatchFile).Load(ctx)
	if err != nil {
		return err
	}
	store, err := localefs.NewStore(cfg.LocalesDir, localefs.WithSortedKeys(cfg.SortKeys))
	if err != nil {
		return err
	}
	log.Debugw("configuration loaded", "dir", cfg.LocalesDir, "patch", cfg.PatchFile, "languages", cfg.Languages, "dry_run", cfg.DryRun)

	translator := i18n.NewTranslator(cfg.UILocale)
	reporter := console.NewReporter(cctx.App.Writer, translator, cfg.UILocale, cfg.DryRun)
	svc := application.NewSyncService(store, reporter, cfg.DryRun)

	summary, err := svc.Run(ctx, patches, cfg.Languages)
	if err != nil {
		return err
	}
	if !summary.OK() {
		return cli.Exit("", 1)
	}
	return nil
}

func flagOptions(cctx *cli.Context) []config.Option {
	var opts []config.Option
	if cctx.IsSet("dir") {
		opts = append(opts, config.WithLocalesDir(cctx.String("dir")))
	}
	if cctx.IsSet("patch") {
		opts = append(opts, config.WithPatchFile(cctx.String("patch")))
	}
	if cctx.IsSet("lang") {
		opts = append(opts, config.WithLanguages(cctx.StringSlice("lang")))
	}
	if cctx.IsSet("sort-keys") {
		opts = append(opts, config.WithSortKeys(cctx.Bool("sort-keys")))
	}
	if cctx.IsSet("dry-run") {
		opts = append(opts, config.WithDryRun(cctx.Bool("dry-run")))
	}
	if cctx.IsSet("ui-locale") {
		opts = append(opts, config.WithUILocale(cctx.String("ui-locale")))
	}
	if cctx.IsSet("log-level") {
		opts = append(opts, config.WithLogLevel(cctx.String("log-level")))
	}
	return opts
}
