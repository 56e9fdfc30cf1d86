// Package batch converts many shape files to interchange documents
// concurrently.
package batch

import (
	"bytes"
	"context"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/siegetools/dtsfile/dts"
	"github.com/siegetools/dtsfile/errors"
	"github.com/siegetools/dtsfile/internal/config"
	"github.com/siegetools/dtsfile/json"
	"go.uber.org/zap"
	"golang.org/x/crypto/blake2b"
)

// ProgressInterval is the period at which Run reports progress.
var ProgressInterval = 2 * time.Second

// Result holds the outcome of converting one file.
type Result struct {
	Path     string
	Output   string
	Version  uint32
	Meshes   int
	Success  bool
	Verified bool
	Error    string
	Warnings []string

	// Fingerprints of the source file and of the shape encoded again from the
	// written document.
	SourceHash  string
	EncodedHash string
}

// Run converts all files using a worker pool. Files not yet started when ctx
// is cancelled are reported with the context's error. A file is reported as
// failed without being converted when its output path is that of an earlier
// file.
func Run(ctx context.Context, cfg config.Config, files []string) []Result {
	total := len(files)
	results := make([]Result, total)
	var processed atomic.Int64

	dec := dts.Decoder{
		NoValidate:    cfg.NoValidate,
		LaxClassNames: cfg.LaxClassNames,
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}

	// Files whose document would overwrite that of an earlier file are not
	// converted.
	pending := make([]int, 0, total)
	owners := make(map[string]string, total)
	for i, path := range files {
		out := filepath.Clean(OutputPath(cfg, path))
		if owner, ok := owners[out]; ok {
			results[i] = Result{Path: path, Error: fmt.Sprintf("output %s is also written by %s", out, owner)}
			Logger().Warn("duplicate output", zap.String("path", path), zap.String("output", out), zap.String("owner", owner))
			continue
		}
		owners[out] = path
		pending = append(pending, i)
	}

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(ProgressInterval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					rate := float64(p) / time.Since(start).Seconds()
					Logger().Info("progress",
						zap.Int64("processed", p),
						zap.Int("total", total),
						zap.String("rate", fmt.Sprintf("%.1f files/sec", rate)),
					)
				}
			}
		}
	}()

	// Worker pool
	fileChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range fileChan {
				if err := ctx.Err(); err != nil {
					results[idx] = Result{Path: files[idx], Error: err.Error()}
				} else {
					results[idx] = processFile(cfg, dec, files[idx])
				}
				processed.Add(1)
			}
		}()
	}

	// Send work
	sent := 0
send:
	for ; sent < len(pending); sent++ {
		select {
		case fileChan <- pending[sent]:
		case <-ctx.Done():
			break send
		}
	}
	close(fileChan)

	wg.Wait()
	close(done)

	for _, i := range pending[sent:] {
		results[i] = Result{Path: files[i], Error: ctx.Err().Error()}
	}
	return results
}

// OutputPath returns the path of the document converted from path. Documents
// are written next to their source unless an output directory is configured.
func OutputPath(cfg config.Config, path string) string {
	name := path + cfg.OutputExt()
	if cfg.OutputDir == "" {
		return name
	}
	return filepath.Join(cfg.OutputDir, filepath.Base(name))
}

func fingerprint(b []byte) string {
	sum := blake2b.Sum256(b)
	return hex.EncodeToString(sum[:])
}

func processFile(cfg config.Config, dec dts.Decoder, path string) Result {
	result := Result{Path: path}
	log := Logger().With(zap.String("path", path))

	fail := func(err error) Result {
		result.Error = err.Error()
		log.Warn("conversion failed", zap.Error(err))
		return result
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return fail(err)
	}
	result.SourceHash = fingerprint(b)

	shape, warn, err := dec.Decode(b, 0)
	result.Warnings = errors.Lines(warn)
	if warn != nil {
		log.Warn("decode warning", zap.Error(warn))
	}
	if err != nil {
		return fail(err)
	}
	result.Version = shape.Version()
	result.Meshes = len(shape.MeshList())

	doc := json.ToDocument(shape)
	var data []byte
	if cfg.Compress {
		if data, err = json.EncodeCompressed(doc); err != nil {
			return fail(err)
		}
	} else {
		data = json.Encode(doc)
	}

	if cfg.Verify {
		if err := verify(data, b, shape.Version(), &result); err != nil {
			return fail(err)
		}
	}

	result.Output = OutputPath(cfg, path)
	if dir := filepath.Dir(result.Output); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fail(err)
		}
	}
	if err := os.WriteFile(result.Output, data, 0644); err != nil {
		return fail(err)
	}

	result.Success = true
	log.Debug("converted",
		zap.Uint32("version", result.Version),
		zap.Int("meshes", result.Meshes),
		zap.String("output", result.Output),
	)
	return result
}

// verify decodes data as a document, encodes the resulting shape, and checks
// that the encoded bytes begin the source.
func verify(data, source []byte, version uint32, result *Result) error {
	shape, err := json.Unmarshal(data, version)
	if err != nil {
		return fmt.Errorf("verify: %w", err)
	}
	var buf bytes.Buffer
	if err := (dts.Encoder{}).Encode(&buf, shape); err != nil {
		return fmt.Errorf("verify: %w", err)
	}
	result.EncodedHash = fingerprint(buf.Bytes())
	if !bytes.HasPrefix(source, buf.Bytes()) {
		return fmt.Errorf("verify: encoded shape differs from source")
	}
	result.Verified = true
	return nil
}
