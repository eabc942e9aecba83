package main

import (
	"io"
	"strings"

	"github.com/coreos/pkg/capnslog"
	"github.com/ztrue/tracerr"
)

var plog = capnslog.NewPackageLogger("github.com/pontaoski/lox", "main")

func setupLogging(w io.Writer, level string) error {
	capnslog.SetFormatter(capnslog.NewPrettyFormatter(w, false))

	lvl, err := capnslog.ParseLevel(strings.ToUpper(level))
	if err != nil {
		return tracerr.Wrap(err)
	}
	capnslog.SetGlobalLogLevel(lvl)
	return nil
}
