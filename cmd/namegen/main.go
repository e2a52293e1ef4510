// Command namegen spawns a population, assigns each agent a persistent
// generated name and prints how the name reads in each UI context.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/talgya/npcnames/internal/agents"
	"github.com/talgya/npcnames/internal/config"
	"github.com/talgya/npcnames/internal/display"
	"github.com/talgya/npcnames/internal/entropy"
	"github.com/talgya/npcnames/internal/naming"
	"github.com/talgya/npcnames/internal/persistence"
	"github.com/talgya/npcnames/internal/rules"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.Level(),
	}))
	slog.SetDefault(logger)

	runID := uuid.New()
	slog.Info("namegen starting", "run", runID, "definition", cfg.Definition, "seed", cfg.Seed)

	// ── Database ──────────────────────────────────────────────────────
	os.MkdirAll(filepath.Dir(cfg.DBPath), 0755)
	db, err := persistence.Open(cfg.DBPath)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	slog.Info("database opened", "path", cfg.DBPath)

	// ── Name Definitions ─────────────────────────────────────────────
	defs := rules.NewRegistry()
	if err := defs.Add(rules.Builtin()); err != nil {
		slog.Error("failed to load builtin definitions", "error", err)
		os.Exit(1)
	}
	if err := defs.LoadFromFile(cfg.RulesPath); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			slog.Error("failed to load rules", "path", cfg.RulesPath, "error", err)
			os.Exit(1)
		}
		slog.Info("no rules file, using builtin definitions", "path", cfg.RulesPath)
	}
	slog.Info("definitions ready", "ids", defs.IDs())

	// ── Formatting ───────────────────────────────────────────────────
	styles, err := display.ParseStyles(cfg.Styles)
	if err != nil {
		slog.Error("invalid NAMEGEN_STYLES", "error", err)
		os.Exit(1)
	}
	formatter := &display.Formatter{
		Styles:        styles,
		Enabled:       cfg.Enabled,
		Obscured:      cfg.Obscurity,
		Obscure:       cfg.Obscure,
		DisplayFormat: cfg.DisplayFormat,
	}

	manager, err := naming.NewManager(defs, db, entropy.FromSeed(cfg.Seed), formatter, cfg.CacheSize)
	if err != nil {
		slog.Error("failed to create name manager", "error", err)
		os.Exit(1)
	}

	// ── Population ───────────────────────────────────────────────────
	seed := cfg.Seed
	if seed == 0 {
		seed = entropy.CryptoSeed()
	}
	spawner := agents.NewSpawner(agents.SpawnConfig{
		Seed:               seed,
		Definition:         cfg.Definition,
		CreatureDefinition: cfg.CreatureDefinition,
		CreatureShare:      cfg.CreatureShare,
		KnownShare:         cfg.KnownShare,
	})
	if last, err := db.GetMeta("next_agent_id"); err == nil {
		if id, err := strconv.ParseUint(last, 10, 64); err == nil {
			spawner.SetNextID(agents.AgentID(id))
		}
	}

	population := spawner.SpawnPopulation(cfg.Count)
	minions := make([]*agents.Agent, 0, cfg.Minions)
	for _, owner := range population[:min(int(cfg.Minions), len(population))] {
		minions = append(minions, spawner.SpawnMinion(owner, cfg.CreatureDefinition))
	}
	population = append(population, minions...)

	start := time.Now()
	named := 0
	for _, a := range population {
		if _, err := manager.Components(a); err == nil {
			named++
		}
		if a.IsMinion() {
			slog.Info("minion",
				"id", a.ID,
				display.ContextCrosshair.String(), manager.Name(a, display.ContextCrosshair),
				display.ContextDialogue.String(), manager.Name(a, display.ContextDialogue),
			)
			continue
		}
		slog.Info("agent",
			"id", a.ID,
			"sex", a.Sex,
			"age", a.Age,
			display.ContextCrosshair.String(), manager.Name(a, display.ContextCrosshair),
			display.ContextSubtitles.String(), manager.Name(a, display.ContextSubtitles),
			display.ContextDialogue.String(), manager.Name(a, display.ContextDialogue),
		)
	}

	// ── Save ─────────────────────────────────────────────────────────
	pending := manager.Pending()
	if err := manager.Flush(); err != nil {
		slog.Error("failed to save names", "error", err)
		os.Exit(1)
	}
	if len(population) > 0 {
		next := population[len(population)-1].ID + 1
		if err := db.SaveMeta("next_agent_id", fmt.Sprintf("%d", next)); err != nil {
			slog.Error("failed to save metadata", "error", err)
		}
	}
	if err := db.SaveMeta("last_run", runID.String()); err != nil {
		slog.Error("failed to save metadata", "error", err)
	}

	total, _ := db.CountNames()
	slog.Info("namegen finished",
		"run", runID,
		"agents", humanize.Comma(int64(len(population))),
		"named", humanize.Comma(int64(named)),
		"saved", humanize.Comma(int64(pending)),
		"stored_total", humanize.Comma(int64(total)),
		"elapsed", time.Since(start).Round(time.Millisecond),
	)
}
