package handler

import (
	"github.com/darkkaiser/catalog-server/internal/service/api/constants"
	"github.com/darkkaiser/catalog-server/internal/service/api/httputil"
)

var (
	// ErrInvalidBody 요청 본문을 JSON으로 해석할 수 없을 때 반환하는 에러입니다.
	ErrInvalidBody = httputil.NewBadRequestError(constants.ErrMsgBadRequestInvalidBody)
)
