// Package main implements the ForgeKit walkthrough command. It drives every
// construction strategy the framework provides (keyed registry, staged
// builder, shared instances, composed factory families) against the
// canonical pet and house fixtures and prints the resulting narration.
// Narration lines go to stdout; logs go to stderr.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/c360/forgekit/builder"
	"github.com/c360/forgekit/catalog"
	"github.com/c360/forgekit/family"
	"github.com/c360/forgekit/metric"
	"github.com/c360/forgekit/pkg/journal"
	"github.com/c360/forgekit/product"
	"github.com/c360/forgekit/registry"
	"github.com/c360/forgekit/singleton"
	"github.com/c360/forgekit/testutil"
)

// Build information constants
const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "forgekit-demo"
)

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	// Run application with proper error handling
	if err := run(); err != nil {
		slog.Error("Walkthrough failed", "error", err, "exit_code", 1)
		os.Exit(1)
	}
}

func run() error {
	// Parse and validate CLI flags
	cliCfg, shouldExit, err := initializeCLI()
	if shouldExit || err != nil {
		return err
	}

	// Load (or assemble) the catalog document
	doc, err := loadCatalog(cliCfg)
	if err != nil {
		return err
	}

	if cliCfg.Validate {
		slog.Info("Catalog is valid", "version", doc.Version, "families", len(doc.Families))
		return nil
	}

	// Wire the shared observability surface
	env, err := newDemoEnv(cliCfg)
	if err != nil {
		return err
	}

	// Materialize the composed families from the document
	composer, err := catalog.Build(doc, petBinder)
	if err != nil {
		return fmt.Errorf("materialize catalog: %w", err)
	}

	// Walk the construction strategies
	if err := runWalkthroughs(env, composer, doc); err != nil {
		return err
	}

	// Watch mode blocks until interrupted
	if cliCfg.Watch {
		if err := watchCatalog(context.Background(), cliCfg, env, doc); err != nil {
			return err
		}
	}

	reportActivity(env, cliCfg)
	return nil
}

// initializeCLI parses flags and sets up logging
func initializeCLI() (*CLIConfig, bool, error) {
	cliCfg := parseFlags()
	if err := validateFlags(cliCfg); err != nil {
		return nil, false, fmt.Errorf("invalid flags: %w", err)
	}

	if cliCfg.ShowVersion {
		fmt.Printf("%s version %s\n", appName, Version)
		return nil, true, nil
	}

	if cliCfg.ShowHelp {
		printHelp()
		return nil, true, nil
	}

	logger := setupLogger(cliCfg.LogLevel, cliCfg.LogFormat)
	slog.SetDefault(logger)

	slog.Info("Starting ForgeKit walkthrough",
		"version", Version,
		"build_time", BuildTime,
		"catalog_path", cliCfg.CatalogPath)

	return cliCfg, false, nil
}

// loadCatalog reads and schema-checks the catalog named on the command
// line, or assembles the built-in document when no file was given.
func loadCatalog(cliCfg *CLIConfig) (*catalog.Document, error) {
	if cliCfg.CatalogPath == "" {
		return builtinCatalog(), nil
	}

	format, err := catalog.FormatForPath(cliCfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("detect catalog format: %w", err)
	}

	data, err := os.ReadFile(cliCfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	if err := catalog.ValidateSchema(data, format); err != nil {
		return nil, fmt.Errorf("catalog schema: %w", err)
	}

	doc, err := catalog.Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("validate catalog: %w", err)
	}

	slog.Info("Catalog loaded",
		"path", cliCfg.CatalogPath,
		"version", doc.Version,
		"families", len(doc.Families))

	return doc, nil
}

// builtinCatalog assembles the walkthrough catalog in code: one friendly
// and one guard family, each stocking a dog and a cat at the default
// variant.
func builtinCatalog() *catalog.Document {
	return &catalog.Document{
		Version: "1.0.0",
		Families: []catalog.FamilySpec{
			{
				Name: "friendly",
				Kinds: []catalog.KindSpec{
					{Kind: "dog", Variants: []catalog.VariantSpec{{
						Key:         family.DefaultVariant,
						Description: "affectionate golden retriever",
						Version:     "1.0.0",
						Spec:        map[string]any{"species": "dog", "temperament": "friendly"},
					}}},
					{Kind: "cat", Variants: []catalog.VariantSpec{{
						Key:         family.DefaultVariant,
						Description: "affectionate persian",
						Version:     "1.0.0",
						Spec:        map[string]any{"species": "cat", "temperament": "friendly"},
					}}},
				},
			},
			{
				Name: "guard",
				Kinds: []catalog.KindSpec{
					{Kind: "dog", Variants: []catalog.VariantSpec{{
						Key:         family.DefaultVariant,
						Description: "watchful german shepherd",
						Version:     "1.0.0",
						Spec:        map[string]any{"species": "dog", "temperament": "guard"},
					}}},
					{Kind: "cat", Variants: []catalog.VariantSpec{{
						Key:         family.DefaultVariant,
						Description: "watchful siamese",
						Version:     "1.0.0",
						Spec:        map[string]any{"species": "cat", "temperament": "guard"},
					}}},
				},
			},
		},
	}
}

// petBinder maps a catalog variant onto the pet constructor selected by its
// species and temperament spec fields.
func petBinder(vs catalog.VariantSpec) (registry.Constructor[product.Product], error) {
	species, _ := vs.Spec["species"].(string)
	temperament, _ := vs.Spec["temperament"].(string)

	switch species + "/" + temperament {
	case "dog/friendly":
		return testutil.NewFriendlyDog, nil
	case "cat/friendly":
		return testutil.NewFriendlyCat, nil
	case "dog/guard":
		return testutil.NewGuardDog, nil
	case "cat/guard":
		return testutil.NewGuardCat, nil
	case "dog/plain":
		return testutil.NewDog, nil
	case "cat/plain":
		return testutil.NewCat, nil
	default:
		return nil, fmt.Errorf("no pet constructor for species %q temperament %q", species, temperament)
	}
}

// constructionEvent is one recorded construction operation, normalized
// across the strategy sources for the journal.
type constructionEvent struct {
	Source string    `json:"source"`
	Op     string    `json:"op"`
	Key    string    `json:"key"`
	At     time.Time `json:"at"`
}

// demoEnv carries the observability surface shared by every walkthrough:
// one metrics registry and one journal that every strategy observer feeds.
type demoEnv struct {
	metrics *metric.MetricsRegistry
	journal *journal.Journal[constructionEvent]
}

func newDemoEnv(cliCfg *CLIConfig) (*demoEnv, error) {
	metricsRegistry := metric.NewMetricsRegistry()

	constructionJournal, err := journal.New[constructionEvent](cliCfg.JournalSize,
		journal.WithMetrics[constructionEvent](metricsRegistry, "construction_journal"))
	if err != nil {
		return nil, fmt.Errorf("create construction journal: %w", err)
	}

	return &demoEnv{metrics: metricsRegistry, journal: constructionJournal}, nil
}

func (env *demoEnv) observeRegistry(source string) func(registry.Event) {
	return func(e registry.Event) {
		env.journal.Record(constructionEvent{Source: source, Op: e.Op, Key: e.Key, At: e.At})
	}
}

func (env *demoEnv) observeSingleton(source string) func(singleton.Event) {
	return func(e singleton.Event) {
		env.journal.Record(constructionEvent{Source: source, Op: e.Op, Key: e.Key, At: e.At})
	}
}

func (env *demoEnv) observeBuilder(source string) func(builder.Event) {
	return func(e builder.Event) {
		env.journal.Record(constructionEvent{Source: source, Op: e.Op, Key: e.BuildID, At: e.At})
	}
}

// runWalkthroughs drives each construction strategy in turn.
func runWalkthroughs(env *demoEnv, composer *family.Composer[product.Product], doc *catalog.Document) error {
	if err := demoFactoryMethod(env); err != nil {
		return fmt.Errorf("factory-method walkthrough: %w", err)
	}
	if err := demoBuilder(env); err != nil {
		return fmt.Errorf("builder walkthrough: %w", err)
	}
	if err := demoSingleton(env, doc); err != nil {
		return fmt.Errorf("singleton walkthrough: %w", err)
	}
	demoSharedState()
	if err := demoFamilies(env, composer); err != nil {
		return fmt.Errorf("family walkthrough: %w", err)
	}
	return nil
}

// demoFactoryMethod registers the plain pet constructors in a keyed
// registry, resolves each, and falls back to the default pet for a kind
// that was never stocked.
func demoFactoryMethod(env *demoEnv) error {
	slog.Info("Running factory-method walkthrough")

	pets := registry.New[product.Product](
		registry.WithObserver[product.Product](env.observeRegistry("registry")),
		registry.WithMetricsRegistry[product.Product](env.metrics, "pet_registry"),
	)

	if err := pets.RegisterFunc("dog", testutil.NewDog); err != nil {
		return err
	}
	if err := pets.RegisterFunc("cat", testutil.NewCat); err != nil {
		return err
	}

	for _, kind := range []string{"dog", "cat"} {
		pet, err := pets.Resolve(kind)
		if err != nil {
			return err
		}
		line, err := pet.Describe()
		if err != nil {
			return err
		}
		fmt.Printf("The pet says: %s\n", line)
	}

	// A kind that was never stocked falls back to the default pet
	fallback, err := pets.ResolveDefault("bird", testutil.DefaultPet())
	if err != nil {
		return err
	}
	line, err := fallback.Describe()
	if err != nil {
		return err
	}
	fmt.Printf("The pet says: %s\n", line)

	return nil
}

// demoBuilder stages the house: the basic parts come with the base value,
// the garage and swimming pool are applied as steps, and Build finalizes.
func demoBuilder(env *demoEnv) error {
	slog.Info("Running builder walkthrough")

	houseBuilder := builder.New(testutil.NewHouse(),
		builder.WithValidator(func(h testutil.House) error { return h.Validate() }),
		builder.WithObserver[testutil.House](env.observeBuilder("builder")),
		builder.WithMetricsRegistry[testutil.House](env.metrics),
	)

	house, err := houseBuilder.Apply(testutil.AddGarage, testutil.AddSwimmingPool).Build()
	if err != nil {
		return err
	}
	fmt.Println(house.String())

	if receipt, ok := houseBuilder.Receipt(); ok {
		slog.Debug("House finalized", "build_id", receipt.BuildID, "steps", receipt.Steps)
	}

	return nil
}

// demoSingleton shares one catalog store by identity: both accesses observe
// the same instance, and a reset hands out a fresh one.
func demoSingleton(env *demoEnv, doc *catalog.Document) error {
	slog.Info("Running singleton walkthrough")

	stores := singleton.New[*catalog.Store](
		singleton.WithObserver[*catalog.Store](env.observeSingleton("singleton")),
		singleton.WithMetricsRegistry[*catalog.Store](env.metrics),
	)

	if err := stores.Register("catalog-store", func() (*catalog.Store, error) {
		return catalog.NewStore(doc), nil
	}); err != nil {
		return err
	}

	first, err := stores.Get("catalog-store")
	if err != nil {
		return err
	}
	second, err := stores.Get("catalog-store")
	if err != nil {
		return err
	}
	fmt.Printf("catalog store shared by identity: %t\n", first == second)

	stores.Reset("catalog-store")
	fresh, err := stores.Get("catalog-store")
	if err != nil {
		return err
	}
	fmt.Printf("catalog store fresh after reset: %t\n", fresh != first)

	return nil
}

// demoSharedState issues two distinct handles over the protocols record;
// an update through either handle is visible through both.
func demoSharedState() {
	slog.Info("Running shared-state walkthrough")

	states := singleton.NewStateRegistry()
	first := states.HandleWith("protocols", map[string]any{"HTTP": "Hyper Text Transfer Protocol"})
	second := states.HandleWith("protocols", map[string]any{"SNMP": "Simple Network Management Protocol"})

	fmt.Println(first.String())
	fmt.Println(second.String())
	fmt.Printf("handles are distinct: %t\n", first != second)
}

// demoFamilies walks every composed family, creating each kind at the
// default variant. Selecting a different family swaps every product kind
// consistently.
func demoFamilies(env *demoEnv, composer *family.Composer[product.Product]) error {
	slog.Info("Running family walkthrough", "families", composer.Selectors())

	for _, selector := range composer.Selectors() {
		fam, err := composer.Family(selector)
		if err != nil {
			return err
		}
		for _, kind := range fam.Kinds() {
			pet, err := fam.Create(kind)
			if err != nil {
				return err
			}
			env.journal.Record(constructionEvent{
				Source: "family",
				Op:     "create",
				Key:    selector + "/" + kind,
				At:     time.Now(),
			})
			line, err := pet.Describe()
			if err != nil {
				return err
			}
			fmt.Println(line)
		}
	}

	return nil
}

// watchCatalog blocks until interrupted, replaying the family walkthrough
// each time the catalog file settles after a change. Invalid updates are
// logged and skipped; the last good catalog stays in effect.
func watchCatalog(ctx context.Context, cliCfg *CLIConfig, env *demoEnv, doc *catalog.Document) error {
	store := catalog.NewStore(doc)

	watcher, err := catalog.NewWatcher(cliCfg.CatalogPath, cliCfg.WatchDebounce)
	if err != nil {
		return fmt.Errorf("create catalog watcher: %w", err)
	}
	changes, err := watcher.Start()
	if err != nil {
		return fmt.Errorf("start catalog watcher: %w", err)
	}
	defer func() {
		if err := watcher.Stop(); err != nil {
			slog.Warn("Stopping catalog watcher", "error", err)
		}
	}()

	signalCtx, signalCancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer signalCancel()

	slog.Info("Watching catalog", "path", cliCfg.CatalogPath, "debounce", cliCfg.WatchDebounce)

	for {
		select {
		case <-signalCtx.Done():
			slog.Info("Received shutdown signal")
			return nil
		case <-changes:
			if err := reloadCatalog(cliCfg, env, store); err != nil {
				slog.Warn("Ignoring catalog update", "error", err)
			}
		}
	}
}

// reloadCatalog reloads the changed file, swaps it into the store when it
// validates, and replays the family walkthrough against the new document.
func reloadCatalog(cliCfg *CLIConfig, env *demoEnv, store *catalog.Store) error {
	doc, err := loadCatalog(cliCfg)
	if err != nil {
		return err
	}

	prev, err := store.Swap(doc)
	if err != nil {
		return err
	}
	slog.Info("Catalog updated", "previous_version", prev.Version, "version", doc.Version)

	composer, err := catalog.Build(doc, petBinder)
	if err != nil {
		return err
	}
	return demoFamilies(env, composer)
}

// reportActivity summarizes the journal and optionally dumps the metrics.
func reportActivity(env *demoEnv, cliCfg *CLIConfig) {
	stats := env.journal.Stats()
	slog.Info("Construction activity recorded",
		"recorded", stats.Recorded,
		"dropped", stats.Dropped,
		"retained", stats.Retained)

	for _, entry := range env.journal.Snapshot() {
		slog.Debug("Journal entry",
			"source", entry.Source,
			"op", entry.Op,
			"key", entry.Key,
			"at", entry.At)
	}

	if cliCfg.ShowMetrics {
		if err := env.metrics.WriteText(os.Stdout); err != nil {
			slog.Warn("Writing metrics", "error", err)
		}
	}
}

// printHelp prints help information
func printHelp() {
	printDetailedHelp()
}
