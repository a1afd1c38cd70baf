package main

import (
	"github.com/darkkaiser/catalog-server/internal/catalog"
	"github.com/darkkaiser/catalog-server/internal/catalog/pagination"
	"github.com/darkkaiser/catalog-server/internal/catalog/remote"
	"github.com/darkkaiser/catalog-server/internal/catalog/storage"
	"github.com/darkkaiser/catalog-server/internal/config"
	"github.com/darkkaiser/catalog-server/internal/pkg/fetcher"
)

// components serve와 browse가 함께 사용하는 카탈로그 구성 요소입니다.
type components struct {
	store  *catalog.Store
	loader *pagination.Controller
}

// newComponents 설정에 따라 파일 저장소, 원격 클라이언트, Store, Pagination Controller를 조립합니다.
func newComponents(appConfig *config.AppConfig) (*components, error) {
	fileStore, err := storage.NewFileStore(appConfig.Catalog.DataDir)
	if err != nil {
		return nil, err
	}

	store := catalog.NewStore(storage.NewLocalEntries(fileStore, appConfig.Catalog.StorageKey))

	f := fetcher.NewFromConfig(fetcher.Config{
		Timeout:       appConfig.Catalog.Timeout(),
		MaxRetries:    appConfig.HTTPRetry.MaxRetries,
		MinRetryDelay: appConfig.HTTPRetry.Delay(),
		MaxBytes:      appConfig.Catalog.MaxResponseBytes,
	})

	client, err := remote.NewClient(appConfig.Catalog.Endpoint, f)
	if err != nil {
		return nil, err
	}

	return &components{
		store:  store,
		loader: pagination.New(store, client, pagination.WithPageSize(appConfig.Catalog.PageSize)),
	}, nil
}
