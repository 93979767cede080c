package cli

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/stackchart/pkg/buildinfo"
	"github.com/matzehuels/stackchart/pkg/cache"
	"github.com/matzehuels/stackchart/pkg/chart"
	"github.com/matzehuels/stackchart/pkg/dataset"
	"github.com/matzehuels/stackchart/pkg/sink"
)

// artifactTTL bounds how long a rendered file is reused.
const artifactTTL = 7 * 24 * time.Hour

// cacheFlags controls the render artifact cache.
type cacheFlags struct {
	noCache  bool
	cacheDir string
}

func (f *cacheFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "always rebuild instead of reusing cached output")
	cmd.Flags().StringVar(&f.cacheDir, "cache-dir", "", "cache directory (default: user cache dir)")
}

// openCache returns the file cache, falling back to a null cache when it is
// disabled or the directory cannot be created.
func openCache(logger *log.Logger, disabled bool, dir string) cache.Cache {
	if disabled {
		return cache.NewNullCache()
	}
	if dir == "" {
		d, err := cache.DefaultDir(appName)
		if err != nil {
			logger.Warnf("Cache disabled: %v", err)
			return cache.NewNullCache()
		}
		dir = d
	}
	c, err := cache.NewFileCache(dir)
	if err != nil {
		logger.Warnf("Cache disabled: %v", err)
		return cache.NewNullCache()
	}
	logger.Debugf("Using cache at %s", c.Dir())
	return c
}

// artifactKeys hashes the inputs shared by every format of one render and
// returns a function producing the per-format key. Keys include the build
// version, so an upgrade never serves output from an older binary.
func artifactKeys(coll dataset.Collection, sel dataset.Selection, kind chart.Kind, chartOpts chart.Options, opts *renderOpts) (func(sink.Format) string, error) {
	var data bytes.Buffer
	if err := dataset.Encode(&data, coll); err != nil {
		return nil, err
	}
	encoded, err := json.Marshal(chartOpts)
	if err != nil {
		return nil, err
	}
	dataHash := cache.Hash(data.Bytes())

	return func(f sink.Format) string {
		return cache.ArtifactKey(dataHash, cache.ArtifactOpts{
			Version:   buildinfo.Version,
			Kind:      string(kind),
			Selection: string(sel),
			Format:    string(f),
			At:        opts.at,
			Static:    opts.static && f == sink.FormatSVG,
			Options:   encoded,
		})
	}, nil
}
