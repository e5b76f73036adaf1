package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/cristianadrielbraun/qrstudio/internal/config"
	"github.com/cristianadrielbraun/qrstudio/internal/export"
	"github.com/cristianadrielbraun/qrstudio/internal/logger"
	"github.com/cristianadrielbraun/qrstudio/internal/qrconfig"
	"github.com/cristianadrielbraun/qrstudio/internal/render"
)

var timeNow = time.Now

type renderOptions struct {
	content string
	format  string
	out     string
	logo    string
	set     []string
}

// newRenderCommand renders one QR code to a file without starting the
// server. Style fields are given as --set name=value.
func newRenderCommand(flags *config.Flags) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render [content]",
		Short: "Render a QR code to a file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.content = args[0]
			}
			return runRender(cmd, flags, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.content, "content", "", "text or URL to encode")
	f.StringVarP(&opts.format, "format", "f", "png", "output format: png, svg, webp or jpg")
	f.StringVarP(&opts.out, "out", "o", "", "output file (default qrcode-<millis>.<ext>)")
	f.StringVar(&opts.logo, "logo", "", "image placed in the center")
	f.StringArrayVar(&opts.set, "set", nil, "style field as name=value, repeatable")
	return cmd
}

func runRender(cmd *cobra.Command, flags *config.Flags, opts *renderOptions) error {
	conf, err := config.Load(*flags)
	if err != nil {
		return err
	}
	log := logger.New(conf)

	format, err := render.ParseFormat(opts.format)
	if err != nil {
		return err
	}

	cfg := qrconfig.Default()
	if opts.content != "" {
		cfg.Content = opts.content
	}
	for _, kv := range opts.set {
		name, value, ok := strings.Cut(kv, "=")
		if !ok {
			return fmt.Errorf("--set %q: expected name=value", kv)
		}
		if cfg, err = qrconfig.SetField(cfg, name, value); err != nil {
			return err
		}
	}

	var logo *render.Logo
	if opts.logo != "" {
		data, err := os.ReadFile(opts.logo)
		if err != nil {
			return fmt.Errorf("read logo: %w", err)
		}
		if logo, err = render.DecodeLogo(opts.logo, data); err != nil {
			return err
		}
	}

	data, err := render.Render(cmd.Context(), render.BuildSchema(cfg, logo), format)
	if err != nil {
		return err
	}

	out := opts.out
	if out == "" {
		out = export.FileName(timeNow()) + "." + format.Ext()
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}

	log.Debug().Str("file", out).Int("bytes", len(data)).Msg("rendered")
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}
