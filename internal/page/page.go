// Package page turns markdown documents into complete html pages.
package page

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/html"

	"github.com/moonflower9/ssgen"
)

const DefaultTemplate = `<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>{{ Title }}</title>
<link href="/index.css" rel="stylesheet">
</head>
<body>
<article>{{ Content }}</article>
</body>
</html>
`

var ugcPolicy = bluemonday.UGCPolicy()
var stripPolicy = bluemonday.StrictPolicy()
var minifier = minify.New()

func init() {
	minifier.Add("text/html", &html.Minifier{KeepDocumentTags: true, KeepEndTags: true, KeepQuotes: true})
}

type Options struct {
	Sanitize bool // pass rendered content through a user generated content policy
	Minify   bool // minify the complete page
	Attrs    string // attributes of the content root, in key=value, ... form
}

// Generate renders markdown into the template. The template must contain the
// {{ Title }} and {{ Content }} placeholders, the title is the first h1 heading.
func Generate(w io.Writer, markdown, template string, opts Options) error {
	root, err := ssgen.MarkdownToHTML(markdown)
	if err != nil {
		return errors.Wrap(err, "parsing markdown")
	}

	if opts.Attrs != "" {
		if root.Props, err = ssgen.ParseProps(opts.Attrs); err != nil {
			return errors.Wrap(err, "parsing root attributes")
		}
	}

	var b strings.Builder
	if err := ssgen.Render(&b, root); err != nil {
		return errors.Wrap(err, "rendering markdown")
	}

	content := b.String()

	title, err := ssgen.Title(root)
	if err != nil {
		return err
	}

	if opts.Sanitize {
		content = ugcPolicy.Sanitize(content)
		title = stripPolicy.Sanitize(title)
	}

	doc := strings.ReplaceAll(template, "{{ Title }}", title)
	doc = strings.ReplaceAll(doc, "{{ Content }}", content)

	if opts.Minify {
		if doc, err = minifier.String("text/html", doc); err != nil {
			return errors.Wrap(err, "minifying page")
		}
	}

	_, err = io.WriteString(w, doc)
	return err
}

// GenerateFile renders the markdown file src into dst.
func GenerateFile(src, template, dst string, opts Options) error {
	logrus.WithFields(logrus.Fields{"from": src, "to": dst}).Info("Generating page")

	data, err := os.ReadFile(src)
	if err != nil {
		return errors.Wrapf(err, "reading %s", src)
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return errors.Wrapf(err, "creating directory for %s", dst)
	}

	out, err := os.Create(dst)
	if err != nil {
		return errors.Wrapf(err, "creating %s", dst)
	}

	if err := Generate(out, string(data), template, opts); err != nil {
		out.Close()
		return errors.Wrapf(err, "generating %s", src)
	}

	return errors.Wrapf(out.Close(), "closing %s", dst)
}

// GenerateDir generates a page for every markdown file below contentDir, at the
// same relative path below outDir with an .html extension.
func GenerateDir(contentDir, template, outDir string, opts Options) error {
	return filepath.WalkDir(contentDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() || filepath.Ext(path) != ".md" {
			return nil
		}

		rel, err := filepath.Rel(contentDir, path)
		if err != nil {
			return err
		}

		dst := filepath.Join(outDir, strings.TrimSuffix(rel, ".md")+".html")
		return GenerateFile(path, template, dst, opts)
	})
}
