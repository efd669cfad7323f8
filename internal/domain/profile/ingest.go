package profile

import (
	"context"
	"encoding/base64"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/exp/slog"
	"golang.org/x/sync/errgroup"
)

// FileReader - примитив чтения локального файла, выбранного пользователем
type FileReader interface {
	ReadFile(ctx context.Context, path string) ([]byte, error)
}

type OSFileReader struct{}

func (OSFileReader) ReadFile(_ context.Context, path string) ([]byte, error) {
	return os.ReadFile(path)
}

type IngestRequest struct {
	Name            string
	Description     string
	CertificatePath string
	PhotoPaths      []string
}

type Ingestor struct {
	reader FileReader
	log    *slog.Logger
}

func NewIngestor(reader FileReader, log *slog.Logger) *Ingestor {
	return &Ingestor{reader: reader, log: log}
}

// Ingest собирает профиль: сертификат и все фото читаются параллельно,
// профиль создается только после завершения всех чтений. Порядок фото -
// порядок выбора файлов. Ошибка чтения любого файла прерывает сборку
// целиком, имя файла попадает в ошибку.
func (i *Ingestor) Ingest(ctx context.Context, req IngestRequest) (*Profile, error) {
	name := strings.TrimSpace(req.Name)
	description := strings.TrimSpace(req.Description)
	if name == "" || description == "" {
		return nil, fmt.Errorf("%w: name and description are required", ErrInvalidInput)
	}

	p := &Profile{
		Name:        name,
		Description: description,
		Photos:      make([]FileRecord, len(req.PhotoPaths)),
	}

	g, ctx := errgroup.WithContext(ctx)

	if req.CertificatePath != "" {
		g.Go(func() error {
			rec, err := i.readRecord(ctx, req.CertificatePath)
			if err != nil {
				return err
			}
			p.Certificate = rec
			return nil
		})
	}

	for idx, path := range req.PhotoPaths {
		idx, path := idx, path
		g.Go(func() error {
			rec, err := i.readRecord(ctx, path)
			if err != nil {
				return err
			}
			// Каждое чтение пишет в свой слот, порядок выбора сохраняется
			p.Photos[idx] = *rec
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	i.log.Debug("profile ingested",
		"name", name,
		"photos", len(p.Photos),
		"certificate", p.Certificate != nil,
	)

	return p, nil
}

func (i *Ingestor) readRecord(ctx context.Context, path string) (*FileRecord, error) {
	data, err := i.reader.ReadFile(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFileRead, filepath.Base(path), err)
	}

	return &FileRecord{
		Filename: filepath.Base(path),
		Data:     DataURL(filepath.Base(path), data),
	}, nil
}

// DataURL кодирует содержимое файла в data-URL.
// Тип определяется по расширению, при неудаче - по содержимому.
func DataURL(filename string, data []byte) string {
	mimeType := mime.TypeByExtension(filepath.Ext(filename))
	if mimeType == "" {
		mimeType = http.DetectContentType(data)
	}
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}
