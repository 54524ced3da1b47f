package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/appmeta/appmeta"
	"github.com/appmeta/appmeta/internal/config"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func newIconCmd() *cobra.Command {
	var output string
	var format string

	cmd := &cobra.Command{
		Use:   "icon <file>",
		Short: "Extract the app icon as a PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			override := appmeta.FormatUnknown
			if format != "" {
				f, ok := appmeta.ParseFormat(format)
				if !ok {
					return fmt.Errorf("unknown format %q (expected one of %v)", format, appmeta.Extensions())
				}
				override = f
			}

			out := output
			if out == "" {
				out = defaultIconPath(args[0])
			}

			md, err := appmeta.ParseContext(cmd.Context(), appmeta.Request{
				Path:       args[0],
				Format:     override,
				IconPath:   out,
				ScratchDir: cfg.ScratchDir,
			}, appmeta.WithLogger(newLogger(cfg.LogLevel)))
			if err != nil {
				return err
			}

			if md.IconPath == "" {
				fmt.Printf("%s no icon found in %s\n", yellow("!"), bold(filepath.Base(args[0])))
				return nil
			}

			fi, err := os.Stat(md.IconPath)
			if err != nil {
				return err
			}

			fmt.Printf("%s %s %s\n", green("✓"), bold(md.IconPath), dim("("+humanize.Bytes(uint64(fi.Size()))+")"))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output PNG path (defaults to <package name>.png)")
	cmd.Flags().StringVar(&format, "format", "", "Force the package format instead of using the extension")
	return cmd
}

// defaultIconPath turns /downloads/Maps.ipa into Maps.png in the
// working directory.
func defaultIconPath(src string) string {
	base := filepath.Base(src)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".png"
}
