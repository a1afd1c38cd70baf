package main

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/darkkaiser/catalog-server/internal/catalog"
	"github.com/darkkaiser/catalog-server/internal/config"
	apperrors "github.com/darkkaiser/catalog-server/internal/pkg/errors"
	"github.com/darkkaiser/catalog-server/internal/pkg/mark"
	applog "github.com/darkkaiser/catalog-server/pkg/log"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

type browseOptions struct {
	search   string
	category string
	sort     string
	pages    int
}

func newBrowseCommand(root *rootOptions) *cobra.Command {
	opts := browseOptions{}

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "로컬 상품과 원격 상품을 불러와 표로 출력합니다",
		Example: `  catalog-server browse --pages 3 --category smartphones --sort price:desc
  catalog-server browse --search phone --sort rating:desc,name:asc`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			appConfig, err := config.LoadWithFile(root.configFile)
			if err != nil {
				return fmt.Errorf("환경설정 로드 실패: %w", err)
			}

			// 표 출력과 섞이지 않도록 로그는 파일에만 기록합니다.
			logCloser, err := applog.Setup(applog.NewProductionOptions(config.AppName))
			if err != nil {
				return fmt.Errorf("로그 시스템 초기화 실패: %w", err)
			}
			defer logCloser.Close()

			return runBrowse(cmd.Context(), cmd.OutOrStdout(), appConfig, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.search, "search", "", "제목 검색어 (대소문자 무시)")
	flags.StringVar(&opts.category, "category", catalog.AllCategories, "카테고리 (all은 전체)")
	flags.StringVar(&opts.sort, "sort", "", `정렬 기준 (예: "price:desc,name:asc")`)
	flags.IntVar(&opts.pages, "pages", 1, "불러올 원격 페이지 수")

	return cmd
}

// runBrowse 로컬 상품 목록과 원격 페이지를 pages개까지 불러온 뒤, 조건을 적용한 목록을 w에 출력합니다.
func runBrowse(ctx context.Context, w io.Writer, appConfig *config.AppConfig, opts browseOptions) error {
	criteria, err := catalog.ParseSortCriteria(opts.sort)
	if err != nil {
		return err
	}
	if opts.pages < 0 {
		return apperrors.Newf(apperrors.InvalidInput, "pages는 0 이상이어야 합니다 (현재값: %d)", opts.pages)
	}

	c, err := newComponents(appConfig)
	if err != nil {
		return err
	}

	c.store.LoadLocalEntries(ctx)
	for range opts.pages {
		if !c.loader.LoadMore(ctx) {
			break
		}
	}

	c.store.SetSearchTerm(opts.search)
	c.store.SetSelectedCategory(opts.category)
	c.store.ReplaceSortCriteria(criteria)

	return renderTable(w, c.store.Snapshot())
}

func renderTable(w io.Writer, s catalog.Snapshot) error {
	table := tablewriter.NewTable(w)
	table.Header("ID", "Title", "Category", "Price", "Stock", "Rating")

	for _, e := range s.Entries {
		title := e.Title + mark.Join(map[mark.Mark]bool{
			mark.New:     e.IsLocal(),
			mark.SoldOut: e.Stock == 0,
		})

		if err := table.Append(
			strconv.FormatInt(e.ID, 10),
			title,
			e.Category,
			catalog.FormatPrice(e.Price),
			strconv.Itoa(e.Stock),
			strconv.FormatFloat(e.Rating, 'f', 1, 64),
		); err != nil {
			return err
		}
	}

	if err := table.Render(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "%d개 표시 (로컬 %d, 원격 %d) | %s | 추가 페이지: %t\n",
		len(s.Entries), s.LocalCount, s.RemoteCount, s.SortSummary, s.HasMore)
	return err
}
