package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"huffzip_go/internal/model"
	"huffzip_go/internal/repo"
	"huffzip_go/pkg/huffcodec"
	"huffzip_go/pkg/logger"
)

var ErrEmptyFile = errors.New("file is empty")

type Result struct {
	Job      *model.Job
	FileName string
	Data     []byte
}

type ZipService struct {
	repo   repo.JobRepo
	logger logger.Logger
	now    func() time.Time
}

func NewZipService(r repo.JobRepo, l logger.Logger) *ZipService {
	return &ZipService{repo: r, logger: l.With("zip"), now: time.Now}
}

func (s *ZipService) Compress(ctx context.Context, fileName string, data []byte) (*Result, error) {
	return s.run(ctx, model.OpCompress, fileName, data, huffcodec.Compress, CompressedFileName)
}

func (s *ZipService) Decompress(ctx context.Context, fileName string, data []byte) (*Result, error) {
	return s.run(ctx, model.OpDecompress, fileName, data, huffcodec.Decompress, OriginalFileName)
}

func (s *ZipService) run(
	ctx context.Context,
	op model.Op,
	fileName string,
	data []byte,
	codec func([]byte) ([]byte, error),
	rename func(string) string,
) (*Result, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFile
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := s.now()
	job := &model.Job{
		ID:        uuid.NewString(),
		Op:        op,
		FileName:  fileName,
		InputSize: int64(len(data)),
		CreatedAt: start.UTC(),
	}
	out, err := codec(data)
	job.DurationMs = s.now().Sub(start).Milliseconds()

	if err != nil {
		job.Error = err.Error()
		s.logger.Errorf("%s %q (%d bytes) failed: %v", op, fileName, len(data), err)
		s.record(ctx, job)
		return nil, err
	}

	job.OutputName = rename(fileName)
	job.OutputSize = int64(len(out))
	s.logger.Infof("%s %q -> %q: %d -> %d bytes in %dms", op, fileName, job.OutputName, job.InputSize, job.OutputSize, job.DurationMs)
	s.record(ctx, job)
	return &Result{Job: job, FileName: job.OutputName, Data: out}, nil
}

// 기록 실패는 요청을 실패시키지 않아요.
func (s *ZipService) record(ctx context.Context, j *model.Job) {
	if err := s.repo.Save(ctx, j); err != nil {
		s.logger.Warnf("save job %s: %v", j.ID, err)
	}
}

func (s *ZipService) Job(ctx context.Context, id string) (*model.Job, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ZipService) Jobs(ctx context.Context) ([]*model.Job, error) {
	return s.repo.List(ctx)
}
