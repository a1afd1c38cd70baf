// Package docs 카탈로그 API의 Swagger 문서를 등록합니다.
//
// 핸들러의 swag 주석(@Summary, @Router 등)과 같은 내용을 유지해야 하며, 주석을 변경하면
// swag init -g cmd/catalog-server/main.go 로 다시 생성할 수 있습니다.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "DarkKaiser",
            "url": "https://github.com/DarkKaiser"
        },
        "license": {
            "name": "MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/v1/catalog/categories": {
            "get": {
                "description": "지금까지 발견된 카테고리 목록을 \"all\"을 맨 앞에 붙여 반환합니다.",
                "produces": ["application/json"],
                "tags": ["Catalog"],
                "summary": "카테고리 목록 조회",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/response.CategoriesResponse"}
                    }
                }
            }
        },
        "/api/v1/catalog/filter": {
            "put": {
                "description": "검색어와 카테고리 필터를 변경합니다. 생략된 항목은 현재 값을 유지합니다.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Catalog"],
                "summary": "검색어/카테고리 변경",
                "parameters": [
                    {
                        "description": "필터 조건",
                        "name": "filter",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/request.FilterRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/response.FilterResponse"}
                    },
                    "400": {
                        "description": "잘못된 요청",
                        "schema": {"$ref": "#/definitions/response.ErrorResponse"}
                    }
                }
            }
        },
        "/api/v1/catalog/load-more": {
            "post": {
                "description": "다음 원격 페이지를 요청하고 완료될 때까지 기다립니다.\n\n이미 요청이 진행 중이거나 더 가져올 페이지가 없으면 started=false로 응답합니다.\n원격 요청 실패는 에러 응답이 아니라 hasMore=false로 나타납니다.",
                "produces": ["application/json"],
                "tags": ["Pagination"],
                "summary": "다음 페이지 요청",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/response.PaginationResponse"}
                    }
                }
            }
        },
        "/api/v1/catalog/products": {
            "get": {
                "description": "현재 화면 상태(필터링/정렬된 상품 목록 포함)를 반환합니다.\n\n전달된 쿼리 파라미터는 조회 전에 현재 조건으로 반영됩니다. sort는 정렬 기준 목록 전체를 교체하며,\n빈 값(sort=)은 정렬 기준을 모두 해제합니다. 잘못된 sort 값이면 어떤 조건도 바꾸지 않고 400으로 응답합니다.",
                "produces": ["application/json"],
                "tags": ["Catalog"],
                "summary": "상품 목록 조회",
                "parameters": [
                    {
                        "type": "string",
                        "description": "제목 검색어 (대소문자 무시)",
                        "name": "search",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "카테고리 (all 또는 빈 값이면 전체)",
                        "name": "category",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "example": "price:desc,name:asc",
                        "description": "정렬 기준 목록",
                        "name": "sort",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "현재 화면 상태",
                        "schema": {"$ref": "#/definitions/catalog.Snapshot"}
                    },
                    "400": {
                        "description": "잘못된 정렬 기준",
                        "schema": {"$ref": "#/definitions/response.ErrorResponse"}
                    }
                }
            },
            "post": {
                "description": "판매자가 입력한 상품을 검증하여 로컬 상품 목록 맨 앞에 추가합니다.\n\n파일 저장에 실패해도 상품은 목록에 남으므로 201로 응답하고 persist 필드로 저장 결과를 알립니다.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Catalog"],
                "summary": "로컬 상품 등록",
                "parameters": [
                    {
                        "description": "등록할 상품 정보",
                        "name": "product",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/catalog.EntryDraft"}
                    }
                ],
                "responses": {
                    "201": {
                        "description": "등록 성공",
                        "schema": {"$ref": "#/definitions/response.CreateProductResponse"}
                    },
                    "400": {
                        "description": "검증 실패 (제목 누락, 0.01 미만 가격 등)",
                        "schema": {"$ref": "#/definitions/response.ErrorResponse"}
                    },
                    "415": {
                        "description": "JSON이 아닌 요청 본문",
                        "schema": {"$ref": "#/definitions/response.ErrorResponse"}
                    }
                }
            }
        },
        "/api/v1/catalog/refresh": {
            "post": {
                "description": "원격 목록을 첫 페이지부터 다시 불러옵니다. 이전 실패로 멈춘 페이지네이션도 다시 시작됩니다.",
                "produces": ["application/json"],
                "tags": ["Pagination"],
                "summary": "첫 페이지부터 다시 요청",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/response.PaginationResponse"}
                    }
                }
            }
        },
        "/api/v1/catalog/sort": {
            "post": {
                "description": "정렬 기준을 추가합니다. 같은 필드의 기준이 있으면 그 자리에서 교체합니다.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Sort"],
                "summary": "정렬 기준 추가/변경",
                "parameters": [
                    {
                        "description": "정렬 기준",
                        "name": "criterion",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/request.SortRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/response.SortResponse"}
                    },
                    "400": {
                        "description": "지원하지 않는 필드 또는 방향",
                        "schema": {"$ref": "#/definitions/response.ErrorResponse"}
                    }
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["Sort"],
                "summary": "정렬 기준 전체 해제",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/response.SortResponse"}
                    }
                }
            }
        },
        "/api/v1/catalog/sort/{field}": {
            "delete": {
                "description": "필드의 정렬 기준을 제거합니다. 없는 기준이면 아무 일도 하지 않습니다.",
                "produces": ["application/json"],
                "tags": ["Sort"],
                "summary": "정렬 기준 제거",
                "parameters": [
                    {
                        "enum": ["price", "name", "stock", "rating"],
                        "type": "string",
                        "description": "정렬 필드",
                        "name": "field",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/response.SortResponse"}
                    },
                    "400": {
                        "description": "지원하지 않는 필드",
                        "schema": {"$ref": "#/definitions/response.ErrorResponse"}
                    }
                }
            },
            "patch": {
                "description": "필드의 정렬 방향을 뒤집습니다. 없는 기준이면 아무 일도 하지 않습니다.",
                "produces": ["application/json"],
                "tags": ["Sort"],
                "summary": "정렬 방향 전환",
                "parameters": [
                    {
                        "enum": ["price", "name", "stock", "rating"],
                        "type": "string",
                        "description": "정렬 필드",
                        "name": "field",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/response.SortResponse"}
                    },
                    "400": {
                        "description": "지원하지 않는 필드",
                        "schema": {"$ref": "#/definitions/response.ErrorResponse"}
                    }
                }
            }
        },
        "/health": {
            "get": {
                "description": "서버와 의존성(로컬 저장소, 원격 카탈로그)의 상태를 반환합니다.\n\n로컬 저장 실패나 원격 페이지 요청 실패는 요청 처리를 막지 않으므로 항상 200으로 응답하고,\n전체 상태를 degraded로 표시합니다.",
                "produces": ["application/json"],
                "tags": ["System"],
                "summary": "서버 상태 확인",
                "responses": {
                    "200": {
                        "description": "서버 상태",
                        "schema": {"$ref": "#/definitions/system.HealthResponse"}
                    }
                }
            }
        },
        "/version": {
            "get": {
                "description": "서버의 빌드 정보(버전, 커밋, 빌드 날짜, Go 버전)를 반환합니다.",
                "produces": ["application/json"],
                "tags": ["System"],
                "summary": "서버 버전 정보 조회",
                "responses": {
                    "200": {
                        "description": "버전 정보",
                        "schema": {"$ref": "#/definitions/system.VersionResponse"}
                    }
                }
            }
        }
    },
    "definitions": {
        "catalog.Entry": {
            "type": "object",
            "properties": {
                "brand": {"type": "string"},
                "category": {"type": "string"},
                "description": {"type": "string"},
                "discountPercentage": {"type": "number"},
                "id": {"type": "integer"},
                "images": {"type": "array", "items": {"type": "string"}},
                "isNew": {"description": "사용자가 직접 등록한 로컬 상품이면 true입니다.", "type": "boolean"},
                "price": {"type": "number", "example": 549},
                "rating": {"type": "number"},
                "stock": {"type": "integer"},
                "thumbnail": {"type": "string"},
                "title": {"type": "string"}
            }
        },
        "catalog.EntryDraft": {
            "type": "object",
            "required": ["category", "title"],
            "properties": {
                "category": {"type": "string", "example": "kitchen"},
                "price": {"type": "number", "minimum": 0.01, "example": 12.5},
                "stock": {"type": "integer", "minimum": 0, "example": 3},
                "thumbnail": {"type": "string"},
                "title": {"type": "string", "maxLength": 100, "example": "Handmade Mug"}
            }
        },
        "catalog.PersistStatus": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "persisted": {"type": "boolean"}
            }
        },
        "catalog.Snapshot": {
            "type": "object",
            "properties": {
                "categories": {"type": "array", "items": {"type": "string"}},
                "hasMore": {"type": "boolean"},
                "lastPersist": {"$ref": "#/definitions/catalog.PersistStatus"},
                "loading": {"type": "boolean"},
                "localCount": {"type": "integer"},
                "products": {"type": "array", "items": {"$ref": "#/definitions/catalog.Entry"}},
                "remoteCount": {"type": "integer"},
                "searchTerm": {"type": "string"},
                "selectedCategory": {"type": "string"},
                "sortOptions": {"type": "array", "items": {"$ref": "#/definitions/catalog.SortCriterion"}},
                "sortSummary": {"type": "string", "example": "Price ↓"}
            }
        },
        "catalog.SortCriterion": {
            "type": "object",
            "properties": {
                "direction": {"type": "string", "enum": ["asc", "desc"]},
                "field": {"type": "string", "enum": ["price", "name", "stock", "rating"]},
                "label": {"type": "string", "example": "Price ↓"}
            }
        },
        "request.FilterRequest": {
            "type": "object",
            "properties": {
                "category": {"type": "string", "maxLength": 100},
                "search": {"type": "string", "maxLength": 200}
            }
        },
        "request.SortRequest": {
            "type": "object",
            "required": ["field"],
            "properties": {
                "direction": {"description": "정렬 방향 (asc, desc). 생략하면 asc입니다.", "type": "string", "enum": ["asc", "desc"]},
                "field": {"description": "정렬 필드 (price, name, stock, rating)", "type": "string"}
            }
        },
        "response.CategoriesResponse": {
            "type": "object",
            "properties": {
                "categories": {"type": "array", "items": {"type": "string"}}
            }
        },
        "response.CreateProductResponse": {
            "type": "object",
            "properties": {
                "persist": {"$ref": "#/definitions/catalog.PersistStatus"},
                "product": {"$ref": "#/definitions/catalog.Entry"}
            }
        },
        "response.ErrorResponse": {
            "type": "object",
            "properties": {
                "message": {"description": "에러 메시지", "type": "string"},
                "result_code": {"description": "HTTP 상태 코드 (예: 400, 404, 500)", "type": "integer"}
            }
        },
        "response.FilterResponse": {
            "type": "object",
            "properties": {
                "searchTerm": {"type": "string"},
                "selectedCategory": {"type": "string"}
            }
        },
        "response.PaginationResponse": {
            "type": "object",
            "properties": {
                "hasMore": {"type": "boolean"},
                "loading": {"type": "boolean"},
                "remoteCount": {"type": "integer"},
                "started": {"description": "페이지 요청이 실제로 수행되었는지 여부", "type": "boolean"}
            }
        },
        "response.SortResponse": {
            "type": "object",
            "properties": {
                "sortOptions": {"type": "array", "items": {"$ref": "#/definitions/catalog.SortCriterion"}},
                "sortSummary": {"type": "string"}
            }
        },
        "system.DependencyStatus": {
            "type": "object",
            "properties": {
                "message": {"description": "상태 상세 정보 또는 에러 메시지", "type": "string"},
                "status": {"description": "헬스체크 상태: healthy, degraded", "type": "string"}
            }
        },
        "system.HealthResponse": {
            "type": "object",
            "properties": {
                "dependencies": {
                    "description": "외부 의존성별 헬스체크 결과 (키: 의존성 이름)",
                    "type": "object",
                    "additionalProperties": {"$ref": "#/definitions/system.DependencyStatus"}
                },
                "status": {"description": "전체 헬스체크 상태: healthy, degraded", "type": "string"},
                "uptime": {"description": "서버 가동 시간(초)", "type": "integer"}
            }
        },
        "system.VersionResponse": {
            "type": "object",
            "properties": {
                "build_date": {"type": "string"},
                "build_number": {"type": "string"},
                "commit": {"type": "string"},
                "dirty_build": {"type": "boolean"},
                "go_version": {"type": "string"},
                "version": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo Swagger 문서의 기본 정보입니다. 실행 시점에 Host, Version 등을 바꿀 수 있습니다.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Catalog Server API",
	Description:      "원격 상품 카탈로그와 로컬 등록 상품을 함께 탐색하는 서버의 REST API입니다.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
