package assets

import (
	"embed"
	"io/fs"
)

//go:embed all:templates
var embedded embed.FS

// Templates holds one directory per profile ("local", "prod") with the files
// copied into a new project.
func Templates() fs.FS {
	sub, err := fs.Sub(embedded, "templates")
	if err != nil {
		panic(err)
	}
	return sub
}
