// Package output persists the token and function catalogs.
package output

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"wgslspec/internal/config"
	"wgslspec/internal/wgsl"
)

// File names without extension.
const (
	TokensName    = "tokens"
	FunctionsName = "functions"
)

// Ext returns the file extension for format, including the dot.
func Ext(format string) string {
	switch format {
	case config.FormatMsgpack:
		return ".msgpack"
	case config.FormatYAML:
		return ".yaml"
	default:
		return ".json"
	}
}

// Encode serializes v in format. JSON is indented by two spaces and ends
// with a newline.
func Encode(format string, v any) ([]byte, error) {
	switch format {
	case config.FormatJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case config.FormatMsgpack:
		return msgpack.Marshal(v)
	case config.FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("%w %q", config.ErrUnknownFormat, format)
	}
}

// Decode is the inverse of Encode.
func Decode(format string, data []byte, v any) error {
	switch format {
	case config.FormatJSON:
		return json.Unmarshal(data, v)
	case config.FormatMsgpack:
		return msgpack.Unmarshal(data, v)
	case config.FormatYAML:
		return yaml.Unmarshal(data, v)
	default:
		return fmt.Errorf("%w %q", config.ErrUnknownFormat, format)
	}
}

// FormatOf guesses the format from a file extension.
func FormatOf(path string) (string, error) {
	return config.ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
}

// Write stores both catalogs in dir, concurrently, and returns the paths
// written. Each file is replaced atomically.
func Write(ctx context.Context, dir, format string, tokens wgsl.TokenCatalog, functions wgsl.FunctionCatalog) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output dir: %w", err)
	}
	records := []struct {
		name string
		v    any
	}{
		{TokensName, tokens},
		{FunctionsName, functions},
	}
	paths := make([]string, len(records))

	g, gctx := errgroup.WithContext(ctx)
	for i, rec := range records {
		path := filepath.Join(dir, rec.name+Ext(format))
		paths[i] = path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			data, err := Encode(format, rec.v)
			if err != nil {
				return fmt.Errorf("encode %s: %w", rec.name, err)
			}
			return writeAtomic(path, data)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}

// ReadFunctions loads a function catalog written by Write.
func ReadFunctions(path string) (wgsl.FunctionCatalog, error) {
	var cat wgsl.FunctionCatalog
	format, err := FormatOf(path)
	if err != nil {
		return cat, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cat, err
	}
	if err := Decode(format, data, &cat); err != nil {
		return cat, fmt.Errorf("%s: %w", path, err)
	}
	return cat, nil
}

func writeAtomic(path string, data []byte) (err error) {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = f.Close()           //nolint:errcheck
			_ = os.Remove(f.Name()) //nolint:errcheck
		}
	}()
	if _, err = f.Write(data); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	if err = os.Chmod(f.Name(), 0o644); err != nil {
		return err
	}
	return os.Rename(f.Name(), path)
}
