package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/appmeta/appmeta"
	"github.com/appmeta/appmeta/internal/config"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newInspectCmd() *cobra.Command {
	var format string
	var iconPath string
	var scratchDir string
	var asJSON bool
	var parallel int

	cmd := &cobra.Command{
		Use:   "inspect <file>...",
		Short: "Extract metadata from application packages",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			if iconPath != "" && len(args) > 1 {
				return fmt.Errorf("--icon accepts a single package, got %d", len(args))
			}

			override := appmeta.FormatUnknown
			if format != "" {
				f, ok := appmeta.ParseFormat(format)
				if !ok {
					return fmt.Errorf("unknown format %q (expected one of %v)", format, appmeta.Extensions())
				}
				override = f
			}

			scratch := scratchDir
			if scratch == "" {
				scratch = cfg.ScratchDir
			}

			limit := parallel
			if limit <= 0 {
				limit = cfg.MaxParallel
			}

			logger := newLogger(cfg.LogLevel)

			ctx := cmd.Context()
			results := make([]*appmeta.Metadata, len(args))
			errs := make([]error, len(args))

			g, gctx := errgroup.WithContext(ctx)
			g.SetLimit(min(len(args), limit))

			for i, path := range args {
				g.Go(func() error {
					stop := withSpinner(gctx, fmt.Sprintf("Inspecting %s...", filepath.Base(path)))
					results[i], errs[i] = appmeta.ParseContext(gctx, appmeta.Request{
						Path:       path,
						Format:     override,
						IconPath:   iconPath,
						ScratchDir: scratch,
					}, appmeta.WithLogger(logger))
					stop()
					return nil
				})
			}
			_ = g.Wait()

			if asJSON {
				return printJSON(args, results, errs)
			}

			fmt.Println()
			failed := 0
			for i, path := range args {
				if errs[i] != nil {
					failed++
					fmt.Printf("%s %s: %v\n", red("✗"), bold(filepath.Base(path)), errs[i])
					continue
				}
				fmt.Println(renderMetadata(path, results[i]))
			}

			if failed > 0 {
				return fmt.Errorf("failed to inspect %d package(s)", failed)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "Force the package format instead of using the extension")
	cmd.Flags().StringVar(&iconPath, "icon", "", "Write the app icon to this PNG path")
	cmd.Flags().StringVar(&scratchDir, "scratch-dir", "", "Root directory for staging workspaces")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print results as JSON")
	cmd.Flags().IntVar(&parallel, "parallel", 0, "Maximum concurrent extractions")
	return cmd
}

func renderMetadata(path string, md *appmeta.Metadata) string {
	name := md.Name
	if name == "" {
		name = filepath.Base(path)
	}

	head := bold(name)
	if md.Version != "" {
		head = fmt.Sprintf("%s%s%s", bold(name), bold("-"), bold(md.Version))
	}

	line := fmt.Sprintf("%s %s %s", green("✓"), head, dim("("+md.Format.String()+")"))
	if md.BundleID != "" {
		line += fmt.Sprintf("\n  %s %s", cyan("id:"), md.BundleID)
	}
	if md.Build != "" {
		line += fmt.Sprintf("\n  %s %s", cyan("build:"), md.Build)
	}
	if md.MinOSVersion != "" {
		line += fmt.Sprintf("\n  %s %s", cyan("min os:"), md.MinOSVersion)
	}
	line += fmt.Sprintf("\n  %s %s %s", cyan("size:"), humanize.Bytes(uint64(md.Size)), dim(shortDigest(md.SHA256)))
	if md.IconPath != "" {
		line += fmt.Sprintf("\n  %s %s", cyan("icon:"), md.IconPath)
	}
	return line
}

func shortDigest(sum string) string {
	if len(sum) > 12 {
		return sum[:12]
	}
	return sum
}

type inspectResult struct {
	Path     string            `json:"path"`
	Metadata *appmeta.Metadata `json:"metadata,omitempty"`
	Error    string            `json:"error,omitempty"`
}

func printJSON(paths []string, results []*appmeta.Metadata, errs []error) error {
	out := make([]inspectResult, len(paths))
	failed := 0
	for i, path := range paths {
		out[i] = inspectResult{Path: path, Metadata: results[i]}
		if errs[i] != nil {
			out[i].Error = errs[i].Error()
			failed++
		}
	}

	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(b))

	if failed > 0 {
		return fmt.Errorf("failed to inspect %d package(s)", failed)
	}
	return nil
}
