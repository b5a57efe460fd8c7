// Package web serves the browser front-end.
package web

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/samber/lo"
	"github.com/spf13/afero"
	"youtube-downloader-web/filesystem"
)

//go:embed static
var static embed.FS

// FS returns the front-end files. When dir is set they are read, read-only,
// from that directory of the active filesystem backend instead of the
// embedded copy.
func FS(dir string) http.FileSystem {
	if dir != "" {
		return afero.NewHttpFs(afero.NewReadOnlyFs(afero.NewBasePathFs(filesystem.API().Fs, dir)))
	}
	return http.FS(lo.Must(fs.Sub(static, "static")))
}

// FileServer serves the files of FS(dir).
func FileServer(dir string) http.Handler {
	return http.FileServer(FS(dir))
}
