package toy

import (
	"embed"
	"io/fs"
)

//go:embed defs/*.toml defs/*.yaml
var builtinDefs embed.FS

// Builtin returns the definitions compiled into the binary.
func Builtin() fs.FS {
	sub, err := fs.Sub(builtinDefs, "defs")
	if err != nil {
		panic(err)
	}
	return sub
}
