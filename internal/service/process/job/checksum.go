package job

import (
	"context"
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"hash"
	"io"
	"os"
	"path/filepath"
	"strings"

	apperrors "github.com/darkkaiser/process-server/internal/pkg/errors"
)

const (
	KindFileChecksum = "file_checksum"

	checksumChunkSize = 64 * 1024
)

var hashers = map[string]func() hash.Hash{
	"sha256": sha256.New,
	"sha1":   sha1.New,
	"md5":    md5.New,
}

// ChecksumResult 파일 체크섬 작업의 결과입니다.
type ChecksumResult struct {
	Path      string `json:"path"`
	Algorithm string `json:"algorithm"`
	Sum       string `json:"sum"`
	Size      int64  `json:"size"`
}

func (r ChecksumResult) String() string {
	return fmt.Sprintf("%s:%s (%s, %d bytes)", r.Algorithm, r.Sum, r.Path, r.Size)
}

type checksumParams struct {
	Path      string `json:"path"`
	Algorithm string `json:"algorithm"`
}

// fileChecksum 기준 디렉터리(root) 아래의 파일을 청크 단위로 읽어 해시를 계산하는 작업입니다.
// 읽은 바이트 수가 진행률이 됩니다.
type fileChecksum struct {
	root      string
	name      string
	algorithm string
	newHash   func() hash.Hash
}

// fileChecksumDefinition root 아래의 파일만 접근할 수 있는 file_checksum 작업 정의를 반환합니다.
// root는 절대 경로여야 합니다.
func fileChecksumDefinition(root string) Definition {
	return Definition{
		Kind:               KindFileChecksum,
		Description:        "기준 디렉터리 아래 파일의 체크섬(sha256, sha1, md5)을 계산합니다",
		CancellableByOwner: true,
		New: func(raw json.RawMessage) (Job, error) {
			return newFileChecksum(root, raw)
		},
	}
}

func newFileChecksum(root string, raw json.RawMessage) (Job, error) {
	params := checksumParams{Algorithm: "sha256"}
	if err := decodeParams(raw, &params); err != nil {
		return nil, err
	}

	name, err := resolveInRoot(root, params.Path)
	if err != nil {
		return nil, err
	}

	algorithm := strings.ToLower(strings.TrimSpace(params.Algorithm))
	newHash, ok := hashers[algorithm]
	if !ok {
		return nil, apperrors.Newf(apperrors.InvalidInput, "지원하지 않는 체크섬 알고리즘입니다: '%s' (sha256, sha1, md5)", algorithm)
	}

	r, err := os.OpenRoot(root)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.Unavailable, "체크섬 기준 디렉터리를 열 수 없습니다")
	}
	defer r.Close()

	// 심볼릭 링크로 기준 디렉터리 밖을 가리키는 경우도 os.Root가 거부한다.
	info, err := r.Stat(name)
	if err != nil {
		return nil, apperrors.Newf(apperrors.InvalidInput, "체크섬을 계산할 파일을 찾을 수 없습니다: '%s'", params.Path)
	}
	if !info.Mode().IsRegular() {
		return nil, apperrors.Newf(apperrors.InvalidInput, "체크섬은 일반 파일에 대해서만 계산할 수 있습니다: '%s'", params.Path)
	}

	return &fileChecksum{root: root, name: name, algorithm: algorithm, newHash: newHash}, nil
}

// resolveInRoot 요청 경로를 root 기준 상대 경로로 변환합니다.
// 절대 경로는 root 아래에 있을 때만 허용하며, root 밖으로 벗어나는 경로는 InvalidInput입니다.
func resolveInRoot(root, path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", apperrors.New(apperrors.InvalidInput, "file_checksum 작업에는 path 파라미터가 필요합니다")
	}

	name := path
	if filepath.IsAbs(path) {
		rel, err := filepath.Rel(root, filepath.Clean(path))
		if err != nil {
			return "", apperrors.Newf(apperrors.InvalidInput, "허용된 디렉터리 밖의 경로입니다: '%s'", path)
		}
		name = rel
	}

	name = filepath.Clean(name)
	if name == "." || !filepath.IsLocal(name) {
		return "", apperrors.Newf(apperrors.InvalidInput, "허용된 디렉터리 밖의 경로입니다: '%s'", path)
	}

	return name, nil
}

func (f *fileChecksum) Run(ctx context.Context, progress ProgressReporter) (any, error) {
	r, err := os.OpenRoot(f.root)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	file, err := r.Open(f.name)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, err
	}
	size := info.Size()

	h := f.newHash()
	buf := make([]byte, checksumChunkSize)

	var read int64
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		n, err := file.Read(buf)
		if n > 0 {
			h.Write(buf[:n])
			read += int64(n)
			if err := progress.RecordProgress(read, size); err != nil {
				return nil, err
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
	}

	return ChecksumResult{
		Path:      f.name,
		Algorithm: f.algorithm,
		Sum:       hex.EncodeToString(h.Sum(nil)),
		Size:      read,
	}, nil
}
