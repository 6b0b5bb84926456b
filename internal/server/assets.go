package server

import (
	"embed"
	"strings"

	"github.com/gin-contrib/static"
)

//go:embed web/static
var webFS embed.FS

const staticPrefix = "/static"

// prefixedFS strips the URL prefix before the existence check, which the
// embedded file system does not do on its own. Directories are never served.
type prefixedFS struct {
	static.ServeFileSystem
}

func (p prefixedFS) Exists(prefix string, path string) bool {
	name := strings.TrimPrefix(path, prefix)
	if name == "" || strings.HasSuffix(name, "/") {
		return false
	}

	f, err := p.Open(name)
	if err != nil {
		return false
	}
	defer f.Close()

	info, err := f.Stat()
	return err == nil && !info.IsDir()
}

func assetFS(publicDir string) static.ServeFileSystem {
	if publicDir != "" {
		return static.LocalFile(publicDir, false)
	}
	return prefixedFS{static.EmbedFolder(webFS, "web/static")}
}
