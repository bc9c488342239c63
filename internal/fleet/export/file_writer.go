package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	pkgApp "github.com/mateusmacedo/go-fleetseed/pkg/application"
)

// FileWriter grava documentos e scripts em um diretório.
type FileWriter struct {
	dir    string
	logger pkgApp.AppLogger
}

func NewFileWriter(dir string, logger pkgApp.AppLogger) *FileWriter {
	return &FileWriter{dir: dir, logger: logger}
}

// WriteDocuments grava <dir>/<Name>.json para cada documento e devolve os caminhos.
func (w *FileWriter) WriteDocuments(ctx context.Context, documents []Document) ([]string, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		pkgApp.LogError(ctx, w.logger, "failed to create output directory", err, map[string]interface{}{"dir": w.dir})
		return nil, fmt.Errorf("create %s: %w", w.dir, err)
	}

	paths := make([]string, 0, len(documents))
	for _, doc := range documents {
		path := filepath.Join(w.dir, doc.Name+".json")
		if err := os.WriteFile(path, doc.Body, 0o644); err != nil {
			pkgApp.LogError(ctx, w.logger, "failed to write document", err, map[string]interface{}{"path": path})
			return nil, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}

	pkgApp.LogInfo(ctx, w.logger, "documents written", map[string]interface{}{
		"dir":   w.dir,
		"count": len(paths),
	})
	return paths, nil
}

func (w *FileWriter) WriteScript(ctx context.Context, name, script string) (string, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		pkgApp.LogError(ctx, w.logger, "failed to create output directory", err, map[string]interface{}{"dir": w.dir})
		return "", fmt.Errorf("create %s: %w", w.dir, err)
	}

	path := filepath.Join(w.dir, name)
	if err := os.WriteFile(path, []byte(script), 0o644); err != nil {
		pkgApp.LogError(ctx, w.logger, "failed to write script", err, map[string]interface{}{"path": path})
		return "", fmt.Errorf("write %s: %w", path, err)
	}

	pkgApp.LogInfo(ctx, w.logger, "script written", map[string]interface{}{"path": path})
	return path, nil
}
