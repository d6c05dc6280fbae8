package cli

import (
	"io"
	"os"
	"time"

	"github.com/julianstephens/habito/internal/storage"
	"github.com/julianstephens/habito/internal/validation"
)

type Context struct {
	Store     storage.Provider
	Validator *validation.Validator
	Out       io.Writer
	Now       func() time.Time
}

// NewContext wires a context around store and validator writing to stdout
func NewContext(store storage.Provider, v *validation.Validator) *Context {
	return &Context{
		Store:     store,
		Validator: v,
		Out:       os.Stdout,
		Now:       time.Now,
	}
}
