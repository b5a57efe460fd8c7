package main

import (
	"github.com/samber/lo"
	"youtube-downloader-web/cmd"
	"youtube-downloader-web/config"
	"youtube-downloader-web/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
