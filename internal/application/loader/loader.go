// Package loader 从CSV批量导入图书目录
//
// 每行在独立事务中处理：作者、分类按名字get-or-create，图书按全部标量字段get-or-create，
// 没有库存时创建owned=available=随机1..5的库存。坏行跳过并记录日志，不中断导入。
// 导入数据不经过图书写规则校验。
package loader

import (
	"context"
	"encoding/csv"
	"io"
	"math/rand/v2"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/xiebiao/library/internal/domain/author"
	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/internal/domain/genre"
	"github.com/xiebiao/library/pkg/metrics"
)

// 新建库存的随机册数范围
const (
	minCopies = 1
	maxCopies = 5
)

// Report 导入结果
type Report struct {
	Rows    int `json:"rows"`
	Loaded  int `json:"loaded"`
	Skipped int `json:"skipped"`
}

// Service 批量导入
type Service struct {
	tx          book.TxManager
	books       book.Repository
	inventories book.InventoryRepository
	authors     author.Repository
	genres      genre.Repository
	logger      *zap.Logger
	copies      func() int
}

// NewService 创建导入服务
func NewService(
	tx book.TxManager,
	books book.Repository,
	inventories book.InventoryRepository,
	authors author.Repository,
	genres genre.Repository,
	logger *zap.Logger,
) *Service {
	return &Service{
		tx:          tx,
		books:       books,
		inventories: inventories,
		authors:     authors,
		genres:      genres,
		logger:      logger,
		copies:      func() int { return minCopies + rand.IntN(maxCopies-minCopies+1) },
	}
}

// LoadFile 打开文件并导入
func (s *Service) LoadFile(ctx context.Context, path string) (*Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()
	return s.Load(ctx, f)
}

// Load 逐行导入，只有表头无法读取时返回错误
func (s *Service) Load(ctx context.Context, r io.Reader) (*Report, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	first, err := reader.Read()
	if err != nil {
		return nil, errors.Wrap(err, "read header")
	}
	h, err := parseHeader(first)
	if err != nil {
		return nil, err
	}

	report := &Report{}
	for {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		report.Rows++
		line := recordLine(reader, err)

		if err == nil {
			err = s.loadRecord(ctx, h, record)
		}
		if err != nil {
			report.Skipped++
			metrics.RecordLoaderRow("skipped")
			s.logger.Warn("跳过无法导入的行", zap.Int("line", line), zap.Error(err))
			continue
		}
		report.Loaded++
		metrics.RecordLoaderRow("loaded")
	}

	s.logger.Info("导入完成",
		zap.Int("rows", report.Rows),
		zap.Int("loaded", report.Loaded),
		zap.Int("skipped", report.Skipped),
	)
	return report, nil
}

// recordLine 当前记录所在行号
// 解析失败时reader没有字段位置(FieldPos会panic)，行号取自ParseError
func recordLine(reader *csv.Reader, readErr error) int {
	if readErr != nil {
		var pe *csv.ParseError
		if errors.As(readErr, &pe) {
			return pe.StartLine
		}
		return 0
	}
	line, _ := reader.FieldPos(0)
	return line
}

func (s *Service) loadRecord(ctx context.Context, h header, record []string) error {
	parsed, err := h.parseRow(record)
	if err != nil {
		return err
	}
	return s.tx.Transaction(ctx, func(ctx context.Context) error {
		return s.store(ctx, parsed)
	})
}

func (s *Service) store(ctx context.Context, r *row) error {
	authorIDs := make([]uint, 0, len(r.authors))
	for _, name := range r.authors {
		a, _, err := s.authors.GetOrCreate(ctx, name)
		if err != nil {
			return errors.Wrapf(err, "author %q", name)
		}
		authorIDs = append(authorIDs, a.ID)
	}

	genreIDs := make([]uint, 0, len(r.genres))
	for _, name := range r.genres {
		if err := genre.ValidateName(name); err != nil {
			return errors.Wrapf(err, "genre %q", name)
		}
		g, _, err := s.genres.GetOrCreate(ctx, name)
		if err != nil {
			return errors.Wrapf(err, "genre %q", name)
		}
		genreIDs = append(genreIDs, g.ID)
	}

	if _, err := s.books.GetOrCreate(ctx, r.book); err != nil {
		return errors.Wrapf(err, "book %q", r.book.Title)
	}
	if err := s.books.AttachAuthors(ctx, r.book.ID, authorIDs); err != nil {
		return err
	}
	if err := s.books.AttachGenres(ctx, r.book.ID, genreIDs); err != nil {
		return err
	}

	_, err := s.inventories.FindByBookID(ctx, r.book.ID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, book.ErrInventoryNotFound) {
		return err
	}
	copies := s.copies()
	return s.inventories.Create(ctx, &book.Inventory{BookID: r.book.ID, Owned: copies, Available: copies})
}
