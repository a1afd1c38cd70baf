package constants

// 헬스체크 및 시스템 상태 관련 상수입니다.
const (
	// HealthStatusHealthy 헬스체크 상태: 정상
	HealthStatusHealthy = "healthy"

	// HealthStatusDegraded 헬스체크 상태: 일부 기능 저하 (요청은 계속 처리됨)
	HealthStatusDegraded = "degraded"

	// DependencyLocalStorage 외부 의존성 ID: 로컬 상품 저장소
	DependencyLocalStorage = "local_storage"

	// DependencyRemoteCatalog 외부 의존성 ID: 원격 상품 API
	DependencyRemoteCatalog = "remote_catalog"

	MsgDepStatusHealthy         = "정상 작동 중"
	MsgDepStatusNoMorePages     = "더 가져올 페이지가 없거나 마지막 요청이 실패했습니다"
	MsgDepStatusPersistFailed   = "마지막 로컬 상품 저장에 실패했습니다"
	MsgDepStatusRemoteNotLoaded = "원격 상품을 아직 불러오지 못했습니다"
)
