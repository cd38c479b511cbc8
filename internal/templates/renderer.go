// Package templates resolves named HTML email templates from a directory and renders them.
package templates

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"strconv"

	lru "github.com/hashicorp/golang-lru"

	"github.com/sbilibin2017/paperplane-redeem/internal/logger"
)

// Extension is appended to a template name to find its file.
const Extension = ".html"

// ErrTemplateNotFound is returned when no file exists for a template name.
var ErrTemplateNotFound = errors.New("template not found")

// Renderer renders templates stored as <name>.html in one directory.
// Parsed templates are kept in an LRU cache.
type Renderer struct {
	fsys  fs.FS
	cache *lru.Cache
}

// NewRenderer creates a Renderer reading from dir and caching up to cacheSize parsed templates.
func NewRenderer(dir string, cacheSize int) (*Renderer, error) {
	return NewRendererFS(os.DirFS(dir), cacheSize)
}

// NewRendererFS is NewRenderer over an arbitrary file system.
func NewRendererFS(fsys fs.FS, cacheSize int) (*Renderer, error) {
	cache, err := lru.New(cacheSize)
	if err != nil {
		return nil, err
	}
	return &Renderer{fsys: fsys, cache: cache}, nil
}

// Render executes the named template with data. Referencing a key that data
// does not contain is an error.
func (r *Renderer) Render(name string, data map[string]any) (string, error) {
	tmpl, err := r.lookup(name)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}

func (r *Renderer) lookup(name string) (*template.Template, error) {
	if v, ok := r.cache.Get(name); ok {
		return v.(*template.Template), nil
	}

	path := name + Extension
	if !fs.ValidPath(path) {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
	}

	src, err := fs.ReadFile(r.fsys, path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
	}
	if err != nil {
		return nil, err
	}

	tmpl, err := template.New(name).
		Option("missingkey=error").
		Funcs(funcs).
		Parse(string(src))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}

	r.cache.Add(name, tmpl)
	logger.Log.Debugw("template parsed", "template", name, "path", path)
	return tmpl, nil
}

var funcs = template.FuncMap{
	"coins": coins,
}

// coins formats a coin amount without a trailing fraction for whole values.
func coins(v any) string {
	switch n := v.(type) {
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64)
	case int:
		return strconv.Itoa(n)
	case int64:
		return strconv.FormatInt(n, 10)
	case nil:
		return ""
	default:
		return fmt.Sprint(n)
	}
}
