package service

import (
	"context"
	"io"
	"learning_assistant_backend/internal/analysis"
	"learning_assistant_backend/internal/chatbot"
	"learning_assistant_backend/internal/model"
	"learning_assistant_backend/internal/util"
	"strings"
	"sync"
)

type fakeStore struct {
	mu        sync.Mutex
	records   []model.PerformanceRecord
	createErr error
	latestErr error
}

func (f *fakeStore) Create(ctx context.Context, record *model.PerformanceRecord) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.records = append(f.records, *record)
	return nil
}

func (f *fakeStore) CreateBatch(ctx context.Context, records []model.PerformanceRecord) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.records = append(f.records, records...)
	return nil
}

func (f *fakeStore) Count(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.records)), nil
}

func (f *fakeStore) ListByStudent(ctx context.Context, studentID string) ([]model.PerformanceRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.PerformanceRecord
	for _, r := range f.records {
		if r.StudentID == studentID {
			out = append(out, r)
		}
	}
	return out, nil
}

// Latest assumes records were appended in time order.
func (f *fakeStore) Latest(ctx context.Context, studentID, subject string) (*model.PerformanceRecord, error) {
	if f.latestErr != nil {
		return nil, f.latestErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := len(f.records) - 1; i >= 0; i-- {
		r := f.records[i]
		if r.StudentID == studentID && (subject == "" || r.Subject == subject) {
			return &r, nil
		}
	}
	return nil, nil
}

type fakeSnapshots struct {
	data   map[string]*chatbot.Context
	setErr error
}

func newFakeSnapshots() *fakeSnapshots {
	return &fakeSnapshots{data: map[string]*chatbot.Context{}}
}

func (f *fakeSnapshots) Set(ctx context.Context, studentID string, snapshot *chatbot.Context) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.data[studentID] = snapshot
	return nil
}

func (f *fakeSnapshots) Get(ctx context.Context, studentID string) (*chatbot.Context, error) {
	return f.data[studentID], nil
}

type memProvider struct {
	files map[string]string
}

func (p *memProvider) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	body, ok := p.files[name]
	if !ok {
		return nil, util.ErrDatasetNotFound
	}
	return io.NopCloser(strings.NewReader(body)), nil
}

func (p *memProvider) Location(name string) string {
	return "mem://" + name
}

func testTables() *analysis.Tables {
	return analysis.NewTables(
		analysis.NewVocabulary([]string{"Mathematics", "Science", "English"}),
		analysis.DefaultWeights())
}

func ptr(v float64) *float64 {
	return &v
}
