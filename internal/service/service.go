// Package service 애플리케이션을 구성하는 장기 실행 서비스의 공통 생명주기를 정의합니다.
package service

import (
	"context"
	"sync"
)

// Service Start로 시작되어 serviceStopCtx가 취소되면 종료되는 서비스입니다.
//
// 호출자는 Start 전에 serviceStopWG.Add(1)을 수행하며, 서비스는 완전히 종료된 뒤 Done을 호출해야 합니다.
type Service interface {
	Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error
}
