package repo

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"huffzip_go/internal/model"
)

func exerciseJobRepo(t *testing.T, r JobRepo) {
	t.Helper()
	ctx := context.Background()
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	jobs := []*model.Job{
		{ID: "job-a", Op: model.OpCompress, FileName: "a.txt", OutputName: "a.txt.huff", InputSize: 10, OutputSize: 30, CreatedAt: base},
		{ID: "job-b", Op: model.OpDecompress, FileName: "a.txt.huff", OutputName: "a.txt", InputSize: 30, OutputSize: 10, CreatedAt: base.Add(time.Minute)},
		{ID: "job-c", Op: model.OpDecompress, FileName: "junk", InputSize: 3, Error: "malformed", CreatedAt: base.Add(2 * time.Minute)},
	}
	for _, j := range jobs {
		if err := r.Save(ctx, j); err != nil {
			t.Fatalf("Save(%s): %v", j.ID, err)
		}
	}

	got, err := r.FindByID(ctx, "job-b")
	if err != nil {
		t.Fatal(err)
	}
	if got.Op != model.OpDecompress || got.OutputName != "a.txt" || got.InputSize != 30 {
		t.Fatalf("FindByID = %+v", got)
	}

	if _, err := r.FindByID(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("FindByID(missing) err = %v", err)
	}

	list, err := r.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) < 3 || list[0].ID != "job-c" || list[1].ID != "job-b" || list[2].ID != "job-a" {
		ids := make([]string, len(list))
		for i, j := range list {
			ids[i] = j.ID
		}
		t.Fatalf("List order = %v", ids)
	}
}

func TestJobRepoInMemory(t *testing.T) {
	exerciseJobRepo(t, NewJobRepoInMemory())
}

func TestJobRepoInMemoryCopies(t *testing.T) {
	r := NewJobRepoInMemory()
	ctx := context.Background()
	j := &model.Job{ID: "x", FileName: "before"}
	_ = r.Save(ctx, j)
	j.FileName = "after"
	got, _ := r.FindByID(ctx, "x")
	if got.FileName != "before" {
		t.Fatalf("stored job aliased caller's value: %q", got.FileName)
	}
}

// TEST_DATABASE_URL 이 있을 때만 실행
func TestJobRepoPG(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	ctx := context.Background()
	pool, err := Open(ctx, dsn)
	if err != nil {
		t.Fatal(err)
	}
	defer pool.Close()
	if err := Migrate(ctx, pool); err != nil {
		t.Fatal(err)
	}
	if _, err := pool.Exec(ctx, `DELETE FROM jobs WHERE id LIKE 'job-%'`); err != nil {
		t.Fatal(err)
	}
	exerciseJobRepo(t, NewJobRepoPG(pool))
}
