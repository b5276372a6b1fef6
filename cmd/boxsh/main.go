// Command boxsh evaluates a box DSL script, validates the resulting scene and
// prints a JSON report.
//
//	boxsh [-config boxkit.yaml] [-mesh] [-e '(defbox "a" ...)'] < script.box
//	boxsh -scene scene.yaml
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/chazu/boxkit/pkg/config"
	"github.com/chazu/boxkit/pkg/engine"
	"github.com/chazu/boxkit/pkg/kernel"
	"github.com/chazu/boxkit/pkg/kernel/sdfx"
	"github.com/chazu/boxkit/pkg/logging"
	"github.com/chazu/boxkit/pkg/scene"
	"go.uber.org/zap"
)

// errFailed signals that the report was printed but contains errors.
var errFailed = errors.New("report has errors")

func main() {
	err := run(os.Args[1:], os.Stdin, os.Stdout)
	switch {
	case err == nil:
	case errors.Is(err, errFailed):
		os.Exit(1)
	default:
		fmt.Fprintln(os.Stderr, "boxsh:", err)
		os.Exit(2)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("boxsh", flag.ContinueOnError)
	configFlag := fs.String("config", "", "YAML config file")
	exprFlag := fs.String("e", "", "script to evaluate instead of reading stdin")
	sceneFlag := fs.String("scene", "", "YAML scene file to inspect instead of a script")
	meshFlag := fs.Bool("mesh", false, "tessellate 3D boxes into the report")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig(*configFlag)
	if err != nil {
		return err
	}
	log, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	var k kernel.Kernel
	if *meshFlag {
		k = sdfx.NewWithCells(cfg.Mesh.Cells)
	}
	app := NewApp(engine.NewEngine(engine.WithTimeout(cfg.Engine.Timeout), engine.WithLogger(log)), k, log)

	var report *Report
	if *sceneFlag != "" {
		s, err := loadScene(*sceneFlag)
		if err != nil {
			return err
		}
		report = app.Inspect(s)
	} else {
		source := *exprFlag
		if source == "" {
			b, err := io.ReadAll(stdin)
			if err != nil {
				return fmt.Errorf("read script: %w", err)
			}
			source = string(b)
		}
		report = app.Evaluate(source)
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	if report.Failed() {
		log.Debug("report has errors", zap.Int("errors", len(report.Errors)), zap.Int("findings", len(report.Findings)))
		return errFailed
	}
	return nil
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return config.LoadYAML(f)
}

func loadScene(path string) (*scene.Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return scene.LoadYAML(f)
}
