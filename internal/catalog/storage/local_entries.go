package storage

import (
	"context"

	"github.com/darkkaiser/catalog-server/internal/catalog"
	apperrors "github.com/darkkaiser/catalog-server/internal/pkg/errors"
	applog "github.com/darkkaiser/catalog-server/pkg/log"
)

// DefaultLocalEntriesKey 로컬 상품 목록이 저장되는 기본 키입니다.
const DefaultLocalEntriesKey = "seller-products"

// LocalEntries 로컬 상품 목록 전체를 FileStore의 키 하나에 JSON 배열로 저장합니다.
type LocalEntries struct {
	store *FileStore
	key   string
}

var _ catalog.LocalEntryRepository = (*LocalEntries)(nil)

// NewLocalEntries key에 로컬 상품 목록을 저장하는 저장소를 생성합니다. key가 비어있으면 DefaultLocalEntriesKey를 사용합니다.
func NewLocalEntries(store *FileStore, key string) *LocalEntries {
	if store == nil {
		panic("FileStore는 필수입니다")
	}
	if key == "" {
		key = DefaultLocalEntriesKey
	}

	return &LocalEntries{store: store, key: key}
}

// Load 저장된 로컬 상품 목록을 반환합니다.
//
// 값이 없거나 손상된 경우 빈 목록을 반환하며, 손상된 경우에는 경고 로그를 남깁니다.
// 그 밖의 읽기 실패(권한 등)만 에러로 반환합니다.
func (r *LocalEntries) Load(ctx context.Context) ([]catalog.Entry, error) {
	var entries []catalog.Entry

	err := r.store.Load(ctx, r.key, &entries)
	switch {
	case err == nil:
		return entries, nil

	case apperrors.Is(err, apperrors.NotFound):
		return nil, nil

	case apperrors.Is(err, apperrors.ParsingFailed):
		applog.WithComponentAndFields(component, applog.Fields{
			"key":   r.key,
			"error": err,
		}).Warn("저장된 로컬 상품 목록이 손상되어 빈 목록으로 대체합니다")

		return nil, nil

	default:
		return nil, err
	}
}

// Save 로컬 상품 목록 전체를 저장합니다.
func (r *LocalEntries) Save(ctx context.Context, entries []catalog.Entry) error {
	if entries == nil {
		entries = []catalog.Entry{}
	}
	return r.store.Save(ctx, r.key, entries)
}
