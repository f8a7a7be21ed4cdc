package web

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"strconv"
	"time"

	"lurker/markup"

	"github.com/flosch/pongo2/v6"
	"github.com/labstack/echo/v4"
)

type fsLoader struct {
	fsys fs.FS
}

func (l fsLoader) Abs(base string, name string) string {
	return name
}

func (l fsLoader) Get(path string) (io.Reader, error) {
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(data), nil
}

// Renderer adapts a pongo2 template set to echo. In debug mode templates
// are re-read from disk on every render.
type Renderer struct {
	set   *pongo2.TemplateSet
	debug bool
}

func NewRenderer(dir string, fsys fs.FS, debug bool) *Renderer {
	var loader pongo2.TemplateLoader
	if debug {
		loader = pongo2.MustNewLocalFileSystemLoader(dir)
	} else {
		sub, err := fs.Sub(fsys, dir)
		if err != nil {
			panic(err)
		}
		loader = fsLoader{fsys: sub}
	}
	set := pongo2.NewSet("web", loader)
	set.Debug = debug
	return &Renderer{set: set, debug: debug}
}

func (r *Renderer) Render(w io.Writer, name string, data any, c echo.Context) error {
	ctx, ok := data.(pongo2.Context)
	if !ok {
		return fmt.Errorf("unexpected template data type %T", data)
	}

	var tpl *pongo2.Template
	var err error
	if r.debug {
		tpl, err = r.set.FromFile(name)
	} else {
		tpl, err = r.set.FromCache(name)
	}
	if err != nil {
		return fmt.Errorf("failed to load template %s: %w", name, err)
	}
	return tpl.ExecuteWriter(ctx, w)
}

func init() {
	// created_utc comes through as a float unix timestamp
	pongo2.RegisterFilter("timestamp",
		func(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
			seconds, err := strconv.ParseFloat(in.String(), 64)
			if err != nil {
				return pongo2.AsValue(""), nil
			}
			formatted := time.Unix(int64(seconds), 0).Format("2006-01-02 15:04:05")
			return pongo2.AsValue(formatted), nil
		})

	pongo2.RegisterFilter("format_content",
		func(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
			return pongo2.AsSafeValue(markup.FormatContent(in.String())), nil
		})
}
