// Package storage 키 하나에 JSON 값 하나를 저장하는 파일 기반 저장소와,
// 이를 이용한 로컬 상품 목록 저장소(catalog.LocalEntryRepository 구현체)를 제공합니다.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/darkkaiser/catalog-server/pkg/concurrency"
	applog "github.com/darkkaiser/catalog-server/pkg/log"
)

const component = "catalog.storage"

// DefaultDataDir 디렉토리를 지정하지 않았을 때 사용하는 저장 디렉토리입니다.
const DefaultDataDir = "data"

// tempFilePattern 원자적 쓰기 중에 만들어지는 임시 파일의 이름 패턴입니다.
const tempFilePattern = "catalog-*.tmp"

// staleTempFileAge 이보다 오래된 임시 파일은 비정상 종료의 잔재로 보고 삭제합니다.
const staleTempFileAge = time.Hour

// FileStore 키마다 하나의 JSON 파일을 사용하는 저장소입니다.
//
// [파일 구조]
//   - catalog-{key}-{hash}.json: 키에 저장된 값
//   - catalog-*.tmp: 저장 중 생성되는 임시 파일
//
// 같은 키에 대한 읽기와 쓰기는 KeyedMutex로 직렬화되며, 쓰기는 임시 파일 → fsync → rename 순서로 원자적으로 수행됩니다.
type FileStore struct {
	baseDir string

	locks *concurrency.KeyedMutex[string]
}

// NewFileStore 저장 디렉토리를 준비하고 이전 실행에서 남은 임시 파일을 정리한 FileStore를 생성합니다.
// dir이 비어있으면 DefaultDataDir을 사용합니다.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		dir = DefaultDataDir
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, NewErrDirectoryAccessFailed(err, dir)
	}
	if err := os.MkdirAll(absDir, 0755); err != nil {
		return nil, NewErrDirectoryAccessFailed(err, absDir)
	}

	s := &FileStore{
		baseDir: absDir,
		locks:   concurrency.NewKeyedMutex[string](),
	}
	s.cleanupStaleTempFiles()

	return s, nil
}

// Dir 저장 디렉토리의 절대 경로를 반환합니다.
func (s *FileStore) Dir() string {
	return s.baseDir
}

func (s *FileStore) cleanupStaleTempFiles() {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"dir":   s.baseDir,
			"error": err,
		}).Warn("임시 파일 정리 중단: 디렉토리 조회 실패")

		return
	}

	threshold := time.Now().Add(-staleTempFileAge)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if matched, _ := filepath.Match(tempFilePattern, entry.Name()); !matched {
			continue
		}

		info, err := entry.Info()
		if err != nil || info.ModTime().After(threshold) {
			continue
		}

		fullPath := filepath.Join(s.baseDir, entry.Name())
		if err := os.Remove(fullPath); err != nil {
			applog.WithComponentAndFields(component, applog.Fields{
				"file":  fullPath,
				"error": err,
			}).Warn("임시 파일 삭제 실패")
			continue
		}

		applog.WithComponentAndFields(component, applog.Fields{
			"file": fullPath,
		}).Info("임시 파일 삭제 완료: 이전 실행 잔존 파일 정리")
	}
}

// Load key에 저장된 JSON 값을 v에 읽어옵니다.
//
// 값이 없으면 ErrKeyNotFound, JSON이 손상되었으면 ParsingFailed 유형의 에러를 반환합니다.
func (s *FileStore) Load(ctx context.Context, key string, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := s.resolvePath(key)
	if err != nil {
		return err
	}

	var data []byte
	err = s.locks.WithLock(strings.ToLower(path), func() error {
		var readErr error
		data, readErr = os.ReadFile(path)
		if readErr != nil {
			if errors.Is(readErr, fs.ErrNotExist) {
				return ErrKeyNotFound
			}
			return NewErrReadFailed(readErr, key)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := json.Unmarshal(data, v); err != nil {
		return NewErrCorruptData(err, key)
	}

	return nil
}

// Save v를 JSON으로 직렬화하여 key에 원자적으로 저장합니다. 기존 값은 통째로 교체됩니다.
func (s *FileStore) Save(ctx context.Context, key string, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := s.resolvePath(key)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(v, "", "\t")
	if err != nil {
		return NewErrMarshalFailed(err, key)
	}

	return s.locks.WithLock(strings.ToLower(path), func() error {
		return writeAtomic(path, data)
	})
}

// resolvePath 키에 해당하는 파일 경로를 만들고, 저장 디렉토리를 벗어나지 않는지 확인합니다.
func (s *FileStore) resolvePath(key string) (string, error) {
	if strings.TrimSpace(key) == "" {
		return "", ErrEmptyKey
	}

	cleanPath := filepath.Clean(filepath.Join(s.baseDir, keyFilename(key)))

	rel, err := filepath.Rel(s.baseDir, cleanPath)
	if err != nil || strings.HasPrefix(rel, "..") {
		applog.WithComponentAndFields(component, applog.Fields{
			"key":      key,
			"base_dir": s.baseDir,
			"path":     cleanPath,
		}).Error("파일 경로 생성 차단: 경로 이탈 시도 감지")

		return "", ErrPathTraversalDetected
	}

	return cleanPath, nil
}

// writeAtomic 같은 디렉토리의 임시 파일에 쓰고 fsync한 뒤 rename으로 교체합니다.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)

	if err := os.MkdirAll(dir, 0755); err != nil {
		return NewErrWriteFailed(err, "디렉토리 생성")
	}

	tmpFile, err := os.CreateTemp(dir, tempFilePattern)
	if err != nil {
		return NewErrWriteFailed(err, "임시 파일 생성")
	}
	tmpPath := tmpFile.Name()

	// Windows에서는 열린 파일을 삭제할 수 없으므로 Close가 Remove보다 먼저 실행되어야 합니다.
	defer os.Remove(tmpPath)
	defer tmpFile.Close()

	if _, err := tmpFile.Write(data); err != nil {
		return NewErrWriteFailed(err, "파일 쓰기")
	}
	if err := tmpFile.Sync(); err != nil {
		return NewErrWriteFailed(err, "디스크 동기화")
	}
	if err := tmpFile.Close(); err != nil {
		return NewErrWriteFailed(err, "파일 닫기")
	}
	if err := renameWithRetry(tmpPath, path); err != nil {
		return NewErrWriteFailed(err, "파일 이름 변경")
	}

	// 디렉토리 엔트리 동기화 실패는 무시합니다.
	if dirFile, err := os.Open(dir); err == nil {
		_ = dirFile.Sync()
		dirFile.Close()
	}

	return nil
}

// renameWithRetry 백신, 인덱서 등이 파일을 잠시 잡고 있는 Windows 환경을 위해 rename을 몇 차례 재시도합니다.
func renameWithRetry(oldPath, newPath string) error {
	const maxRetries = 5
	const retryDelay = 10 * time.Millisecond

	var lastErr error
	for range maxRetries {
		err := os.Rename(oldPath, newPath)
		if err == nil {
			return nil
		}

		lastErr = err
		time.Sleep(retryDelay)
	}

	return lastErr
}
