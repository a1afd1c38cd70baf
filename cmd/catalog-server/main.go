package main

import (
	"context"
	"fmt"
	"os"

	"github.com/darkkaiser/catalog-server/internal/config"
	"github.com/darkkaiser/catalog-server/internal/pkg/version"
	"github.com/spf13/cobra"
)

const banner = `
   ____      _        _                 ____
  / ___|__ _| |_ __ _| | ___   __ _    / ___|  ___ _ ____   _____ _ __
 | |   / _' | __/ _' | |/ _ \ / _' |   \___ \ / _ \ '__\ \ / / _ \ '__|
 | |__| (_| | || (_| | | (_) | (_| |    ___) |  __/ |   \ V /  __/ |
  \____\__,_|\__\__,_|_|\___/ \__, |   |____/ \___|_|    \_/ \___|_|
                              |___/                              %s
                                                        developed by DarkKaiser
--------------------------------------------------------------------------------
`

// rootOptions 모든 하위 명령이 공유하는 플래그입니다.
type rootOptions struct {
	configFile string
}

// @title Catalog Server API
// @version 1.0.0
// @description 원격 상품 카탈로그와 로컬 등록 상품을 함께 탐색하는 서버의 REST API입니다.
// @description
// @description ## 주요 기능
// @description - 검색어/카테고리 필터와 다중 정렬 기준을 적용한 상품 목록 조회
// @description - 원격 카탈로그의 무한 스크롤 페이지 요청
// @description - 판매자 상품 등록 및 로컬 파일 저장

// @contact.name DarkKaiser
// @contact.url https://github.com/DarkKaiser

// @license.name MIT

// @BasePath /
func main() {
	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		// 로거 초기화 전에 실패할 수 있으므로 표준 에러에 출력
		fmt.Fprintf(os.Stderr, "[FATAL] %v\n", err)
		os.Exit(1)
	}
}

// newRootCommand 하위 명령 없이 실행하면 serve와 같이 동작합니다.
func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           config.AppName,
		Short:         "상품 카탈로그 서버",
		Long:          "원격 상품 API의 목록과 판매자가 등록한 로컬 상품을 합쳐 검색, 필터, 다중 정렬이 가능한 카탈로그를 제공합니다.",
		Version:       version.Get().String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configFile, "config", config.DefaultFilename, "설정 파일 경로")
	cmd.SetVersionTemplate(config.AppName + " {{.Version}}\n")

	cmd.AddCommand(newServeCommand(opts))
	cmd.AddCommand(newBrowseCommand(opts))

	return cmd
}
