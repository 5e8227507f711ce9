package config

import (
	"iter"
	"os"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// Loader reads CUE files, each validated against a closed schema.
// Files are compiled once, on first use.
type Loader struct {
	getRoots func() ([]rootInfo, error)
}

type rootInfo struct {
	value cue.Value
	path  string
}

// NewLoader creates a loader over filePaths. Earlier files take
// precedence. An empty schemaSrc disables validation.
func NewLoader(filePaths []string, schemaSrc string) Loader {
	return Loader{
		getRoots: sync.OnceValues(func() (ret []rootInfo, err error) {
			ctx := cuecontext.New()

			var schema cue.Value
			if schemaSrc != "" {
				schema = ctx.CompileString("close({" + schemaSrc + "})")
				if err = schema.Err(); err != nil {
					return
				}
			}

			for _, filePath := range filePaths {
				var content []byte
				content, err = os.ReadFile(filePath)
				if err != nil {
					return
				}

				value := ctx.CompileBytes(content, cue.Filename(filePath))
				if err = value.Err(); err != nil {
					return
				}

				if schema.Exists() {
					if err = schema.Unify(value).Validate(cue.Concrete(true)); err != nil {
						return
					}
				}

				ret = append(ret, rootInfo{
					value: value,
					path:  filePath,
				})
			}

			return
		}),
	}
}

// Values iterates over the values at path in every file defining it.
func (l Loader) Values(path string) iter.Seq2[*cue.Value, error] {
	return func(yield func(*cue.Value, error) bool) {
		roots, err := l.getRoots()
		if err != nil {
			yield(nil, err)
			return
		}

		cuePath := cue.ParsePath(path)
		for _, info := range roots {
			value := info.value.LookupPath(cuePath)
			if value.Exists() {
				if !yield(&value, nil) {
					return
				}
			}
		}
	}
}

// AssignFirst decodes the first value found at path into target.
func (l Loader) AssignFirst(path string, target any) error {
	roots, err := l.getRoots()
	if err != nil {
		return err
	}

	cuePath := cue.ParsePath(path)
	for _, info := range roots {
		value := info.value.LookupPath(cuePath)
		if value.Exists() {
			return value.Decode(target)
		}
	}

	return ErrValueNotFound
}
