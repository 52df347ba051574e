// Package main is the entry point for the propsnap CLI, which snaps objects
// in a scene file onto the nearest surface along a chosen axis.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/propsnap/internal/config"
	"github.com/Faultbox/propsnap/internal/logger"
	"github.com/Faultbox/propsnap/pkg/conform"
	"github.com/Faultbox/propsnap/pkg/scene"
	"github.com/Faultbox/propsnap/pkg/sceneio"
)

var (
	flagObjects = flag.String("objects", "", "Comma-separated object names to conform (default: all meshes)")
	flagOut     = flag.String("out", "", "Write the conformed scene to this path")
)

func main() {
	config.ParseFlags()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: propsnap [flags] <scene.yaml>")
		flag.PrintDefaults()
		os.Exit(2)
	}
	scenePath := flag.Arg(0)

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	opts, err := cfg.Options()
	if err != nil {
		logger.Error("invalid settings", zap.Error(err))
		os.Exit(1)
	}

	file, err := sceneio.ReadFile(scenePath)
	if err != nil {
		logger.Error("failed to read scene", zap.Error(err))
		os.Exit(1)
	}
	scn, err := file.Build()
	if err != nil {
		logger.Error("failed to build scene", zap.Error(err))
		os.Exit(1)
	}
	logger.Sugar.Infof("loaded %d objects from %s", len(scn.Objects()), scenePath)

	targets, err := selectTargets(scn, *flagObjects)
	if err != nil {
		logger.Error("bad selection", zap.Error(err))
		os.Exit(1)
	}

	conformer := conform.New(scn, logger.Log)
	report, err := conformer.Conform(targets, opts)
	if err != nil {
		logger.Error("conform failed", zap.Error(err))
		os.Exit(1)
	}

	for _, res := range report.Results {
		fmt.Printf("%-24s %s\n", res.Object, res.Status)
	}
	if report.Missed() > 0 {
		logger.Warn("some objects found no surface", zap.Int("missed", report.Missed()))
	}
	logger.Info("done",
		zap.Int("conformed", report.Conformed()),
		zap.Int("missed", report.Missed()),
		zap.Int("skipped", report.Skipped()))

	if *flagOut != "" {
		file.ApplyTransforms(scn)
		if err := file.Save(*flagOut); err != nil {
			logger.Error("failed to write scene", zap.Error(err))
			os.Exit(1)
		}
	}
}

// selectTargets resolves the -objects list, or returns every mesh object when
// no list was given.
func selectTargets(scn *scene.Scene, names string) ([]conform.Object, error) {
	var picked []*scene.Object
	if names == "" {
		picked = scn.Meshes()
	} else {
		for _, name := range strings.Split(names, ",") {
			name = strings.TrimSpace(name)
			obj := scn.Find(name)
			if obj == nil {
				return nil, fmt.Errorf("no object named %q in scene", name)
			}
			picked = append(picked, obj)
		}
	}

	targets := make([]conform.Object, len(picked))
	for i, obj := range picked {
		targets[i] = obj
	}
	return targets, nil
}
