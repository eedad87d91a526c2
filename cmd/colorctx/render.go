package main

import (
	"fmt"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/vango-dev/colorctx/internal/config"
	"github.com/vango-dev/colorctx/internal/errors"
	"github.com/vango-dev/colorctx/pkg/demo"
	"github.com/vango-dev/colorctx/pkg/render"
)

func renderCmd() *cobra.Command {
	var (
		dir      string
		format   string
		clicks   []string
		contexts []string
		pretty   bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the demo once and print it",
		Long: `Render mounts the demo, applies the requested interactions in
order (all clicks, then all context menus), and prints the result.

Examples:
  colorctx render
  colorctx render --click green --context indigo
  colorctx render --format ansi`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(dir)
			if err != nil {
				return err
			}

			app := demo.New(
				demo.WithInitial(cfg.Initial),
				demo.WithSwatchSize(cfg.SwatchSize),
			)
			defer app.Unmount()

			for _, color := range clicks {
				if _, err := app.Activate("click", color); err != nil {
					return err
				}
			}
			for _, color := range contexts {
				if _, err := app.Activate("contextmenu", color); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			switch format {
			case "html":
				r := render.NewRenderer(render.RendererConfig{Pretty: pretty || cfg.Dev.Pretty})
				html, err := r.RenderToString(app.Render())
				if err != nil {
					return err
				}
				fmt.Fprintln(out, html)
			case "ansi":
				profile := termenv.NewOutput(out).EnvColorProfile()
				a := render.NewANSI(out, render.ANSIConfig{Profile: &profile})
				return a.Render(out, app.Render())
			default:
				return errors.New("E302").
					WithDetail(fmt.Sprintf("format %q", format)).
					WithSuggestion("Use --format html or --format ansi")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "config", "c", ".", "Directory containing colorctx.json")
	cmd.Flags().StringVarP(&format, "format", "f", "html", "Output format: html or ansi")
	cmd.Flags().StringSliceVar(&clicks, "click", nil, "Click the palette square for a color (repeatable)")
	cmd.Flags().StringSliceVar(&contexts, "context", nil, "Open the context menu on a palette square (repeatable)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent HTML output")

	return cmd
}
