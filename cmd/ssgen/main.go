package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/moonflower9/ssgen/internal/page"
	"github.com/moonflower9/ssgen/internal/staticcopy"
)

type buildOptions struct {
	static   string
	content  string
	template string
	out      string
	sanitize bool
	minify   bool
	attrs    string
}

var logLevel string

func main() {
	root := &cobra.Command{
		Use:           "ssgen",
		Short:         "Static site generator for markdown content",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logrus.ParseLevel(logLevel)
			if err != nil {
				return err
			}

			logrus.SetLevel(level)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log messages above specified level (trace, debug, info, warn, error, fatal or panic)")
	root.AddCommand(buildCommand())

	if err := root.Execute(); err != nil {
		logrus.Fatal(err)
	}
}

func buildCommand() *cobra.Command {
	opts := buildOptions{}
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the site into the output directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return build(opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.static, "static", "static", "Directory of static assets copied as is")
	flags.StringVar(&opts.content, "content", "content", "Directory of markdown pages")
	flags.StringVar(&opts.template, "template", "", "Page template file, a built-in template is used when empty")
	flags.StringVarP(&opts.out, "out", "o", "public", "Output directory, removed before building")
	flags.BoolVar(&opts.sanitize, "sanitize", false, "Sanitize rendered page content")
	flags.BoolVar(&opts.minify, "minify", false, "Minify generated pages")
	flags.StringVar(&opts.attrs, "attrs", "", "Attributes of the content root element, for example: class=content, id=main")

	return cmd
}

func build(opts buildOptions) error {
	template := page.DefaultTemplate
	if opts.template != "" {
		data, err := os.ReadFile(opts.template)
		if err != nil {
			return err
		}

		template = string(data)
	}

	logrus.WithField("dir", opts.out).Debug("Removing output directory")
	if err := os.RemoveAll(opts.out); err != nil {
		return err
	}

	if _, err := os.Stat(opts.static); err == nil {
		logrus.WithFields(logrus.Fields{"from": opts.static, "to": opts.out}).Info("Copying static files")
		if err := staticcopy.Copy(opts.static, opts.out); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	return page.GenerateDir(opts.content, template, opts.out, page.Options{Sanitize: opts.sanitize, Minify: opts.minify, Attrs: opts.attrs})
}
