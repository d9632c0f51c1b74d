package job

import (
	"path/filepath"
	"slices"
	"strings"
	"sync"

	apperrors "github.com/darkkaiser/process-server/internal/pkg/errors"
	"github.com/iancoleman/strcase"
)

// Catalog 작업 종류 이름으로 Definition을 조회하는 레지스트리입니다.
type Catalog struct {
	mu          sync.RWMutex
	definitions map[string]Definition
}

// NewCatalog 주어진 정의들로 카탈로그를 생성합니다.
func NewCatalog(defs ...Definition) (*Catalog, error) {
	c := &Catalog{definitions: make(map[string]Definition, len(defs))}
	for _, def := range defs {
		if err := c.Register(def); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// DefaultCatalog 기본 제공 작업(countdown, maintenance_reindex)이 등록된 카탈로그를 반환합니다.
//
// checksumRoot가 지정되면 해당 디렉터리 아래의 파일만 읽을 수 있는 file_checksum 작업도 등록합니다.
// 비어 있으면 file_checksum은 지원하지 않는 작업 종류가 됩니다.
func DefaultCatalog(checksumRoot string) (*Catalog, error) {
	defs := []Definition{
		countdownDefinition(),
		maintenanceReindexDefinition(),
	}

	if checksumRoot != "" {
		root, err := filepath.Abs(checksumRoot)
		if err != nil {
			return nil, apperrors.Wrapf(err, apperrors.InvalidInput, "체크섬 기준 디렉터리 경로가 올바르지 않습니다: '%s'", checksumRoot)
		}
		defs = append(defs, fileChecksumDefinition(root))
	}

	return NewCatalog(defs...)
}

// NormalizeKind 작업 종류 이름을 snake_case로 정규화합니다.
// 예: "FileChecksum", "file-checksum", "fileChecksum" -> "file_checksum"
func NormalizeKind(kind string) string {
	return strcase.ToSnake(strings.TrimSpace(kind))
}

// Register 작업 정의를 등록합니다. 이미 같은 이름이 있으면 Conflict 에러를 반환합니다.
func (c *Catalog) Register(def Definition) error {
	kind := NormalizeKind(def.Kind)
	if kind == "" {
		return apperrors.New(apperrors.InvalidInput, "작업 종류 이름은 비워둘 수 없습니다")
	}
	if def.New == nil {
		return apperrors.Newf(apperrors.InvalidInput, "작업 생성 함수가 없습니다 (kind=%s)", kind)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.definitions[kind]; exists {
		return apperrors.Newf(apperrors.Conflict, "이미 등록된 작업 종류입니다 (kind=%s)", kind)
	}

	def.Kind = kind
	c.definitions[kind] = def

	return nil
}

// Lookup 정규화된 이름으로 작업 정의를 조회합니다.
func (c *Catalog) Lookup(kind string) (Definition, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	def, ok := c.definitions[NormalizeKind(kind)]
	return def, ok
}

// Kinds 등록된 작업 종류 이름을 정렬하여 반환합니다.
func (c *Catalog) Kinds() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	kinds := make([]string, 0, len(c.definitions))
	for kind := range c.definitions {
		kinds = append(kinds, kind)
	}
	slices.Sort(kinds)

	return kinds
}
