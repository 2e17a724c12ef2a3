// toneterminal-export is a thin harness around the preset serialization
// core: it reads a plugin-chain JSON file and writes the DAW-native preset
// artifact. The real application surface (web, auth, storage) lives outside
// this repository.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/evandayton762-tech/toneterminal/internal/models"
	"github.com/evandayton762-tech/toneterminal/internal/preset"
)

func main() {
	// ── Flags ───────────────────────────────────────────
	chainPath := flag.String("chain", "", "Path to a plugin-chain JSON file")
	dawOverride := flag.String("daw", "", "Override the chain's target DAW")
	outDir := flag.String("out", ".", "Directory to write the preset into")
	coverage := flag.String("coverage", "", "Print export coverage for a DAW name and exit")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	// ── Logger ──────────────────────────────────────────
	logLevel := slog.LevelInfo
	if *debug {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)

	registry := preset.NewRegistry()

	// ── Coverage lookup ─────────────────────────────────
	if *coverage != "" {
		cov := registry.ExporterCoverage(*coverage)
		out, err := json.MarshalIndent(cov, "", "  ")
		if err != nil {
			slog.Error("failed to encode coverage", "error", err)
			os.Exit(1)
		}
		fmt.Println(string(out))
		return
	}

	if *chainPath == "" {
		slog.Error("missing -chain (or -coverage)")
		flag.Usage()
		os.Exit(2)
	}

	// ── Chain ───────────────────────────────────────────
	raw, err := os.ReadFile(*chainPath)
	if err != nil {
		slog.Error("failed to read chain file", "path", *chainPath, "error", err)
		os.Exit(1)
	}
	var chain models.PluginChain
	if err := json.Unmarshal(raw, &chain); err != nil {
		slog.Error("failed to parse chain file", "path", *chainPath, "error", err)
		os.Exit(1)
	}
	if *dawOverride != "" {
		chain.DAW = *dawOverride
		chain.DawID = ""
	}

	// ── Serialize ───────────────────────────────────────
	out, err := registry.SerializePreset(chain)
	if err != nil {
		slog.Error("serialization failed", "daw", chain.DAW, "error", err)
		os.Exit(1)
	}

	dest := filepath.Join(*outDir, out.Filename)
	if err := os.WriteFile(dest, out.Data, 0o644); err != nil {
		slog.Error("failed to write preset", "path", dest, "error", err)
		os.Exit(1)
	}

	slog.Info("preset written",
		"path", dest,
		"mime", out.MIME,
		"serializer", out.SerializerID,
		"native", out.IsNative,
		"bytes", len(out.Data),
	)
}
