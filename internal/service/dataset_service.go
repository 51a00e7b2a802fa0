package service

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"learning_assistant_backend/internal/analysis"
	"learning_assistant_backend/internal/config"
	"learning_assistant_backend/internal/model"
	"learning_assistant_backend/pkg/logger"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

// DatasetRow is one row of the training corpus.
type DatasetRow struct {
	StudentID  string
	Subject    string
	QuizScore  float64
	Attendance float64
	Level      *analysis.PerformanceLevel
}

var requiredColumns = []string{"student_id", "subject", "quiz_score", "attendance"}

// ParseDataset reads the corpus CSV. Columns are located by header name, so
// their order is free and extra columns are ignored. Rows that fail to parse
// are counted in skipped rather than aborting the load.
func ParseDataset(r io.Reader) (rows []DatasetRow, skipped int, err error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, 0, nil
		}
		return nil, 0, err
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, 0, fmt.Errorf("dataset is missing column %q", name)
		}
	}
	levelCol, hasLevel := cols["performance_level"]

	field := func(rec []string, i int) string {
		if i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	for {
		rec, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				skipped++
				continue
			}
			return nil, skipped, err
		}

		row := DatasetRow{
			StudentID: strings.ToUpper(field(rec, cols["student_id"])),
			Subject:   field(rec, cols["subject"]),
		}
		quiz, qerr := strconv.ParseFloat(field(rec, cols["quiz_score"]), 64)
		att, aerr := strconv.ParseFloat(field(rec, cols["attendance"]), 64)
		if row.StudentID == "" || row.Subject == "" || qerr != nil || aerr != nil {
			skipped++
			continue
		}
		row.QuizScore, row.Attendance = quiz, att

		if hasLevel {
			if l, err := analysis.ParseLevel(field(rec, levelCol)); err == nil {
				row.Level = &l
			}
		}
		rows = append(rows, row)
	}
	return rows, skipped, nil
}

// DatasetStats describes the corpus the process started with.
type DatasetStats struct {
	Location    string               `json:"location"`
	Loaded      bool                 `json:"loaded"`
	Rows        int                  `json:"rows"`
	Skipped     int                  `json:"skipped"`
	Subjects    []string             `json:"subjects"`
	Seeded      int                  `json:"seeded"`
	Agreement   *analysis.Evaluation `json:"agreement,omitempty"`
	FallbackErr string               `json:"fallback_reason,omitempty"`
}

type DatasetService struct {
	Provider DatasetProvider
	Records  PerformanceStore
	Config   config.DatasetConfig
	Weights  analysis.Weights
	now      func() time.Time
}

func NewDatasetService(provider DatasetProvider, records PerformanceStore, cfg config.DatasetConfig, weights analysis.Weights) *DatasetService {
	return &DatasetService{
		Provider: provider,
		Records:  records,
		Config:   cfg,
		Weights:  weights,
		now:      time.Now,
	}
}

// Load builds the process-wide tables from the corpus. It never fails: an
// unreadable corpus falls back to the configured default subjects.
func (s *DatasetService) Load(ctx context.Context) (*analysis.Tables, DatasetStats) {
	stats := DatasetStats{Location: s.Provider.Location(s.Config.Object)}

	rows, skipped, err := s.read(ctx)
	if err != nil || len(rows) == 0 {
		if err == nil {
			err = errors.New("dataset has no usable rows")
		}
		stats.FallbackErr = err.Error()
		logger.Log.Warn("Training dataset unavailable, using default subjects",
			zap.String("location", stats.Location),
			zap.Strings("subjects", s.Config.DefaultSubjects),
			zap.Error(err))
		tables := analysis.NewTables(analysis.NewVocabulary(s.Config.DefaultSubjects), s.Weights)
		stats.Subjects = tables.Vocabulary.Subjects()
		return tables, stats
	}

	subjects := make([]string, 0, len(rows))
	labelled := make([]analysis.LabelledRow, 0, len(rows))
	for _, r := range rows {
		subjects = append(subjects, r.Subject)
		labelled = append(labelled, analysis.LabelledRow{
			Subject:    r.Subject,
			QuizScore:  r.QuizScore,
			Attendance: r.Attendance,
			Level:      r.Level,
		})
	}
	tables := analysis.NewTables(analysis.NewVocabulary(subjects), s.Weights)

	stats.Loaded = true
	stats.Rows = len(rows)
	stats.Skipped = skipped
	stats.Subjects = tables.Vocabulary.Subjects()

	ev := analysis.Evaluate(analysis.NewRuleClassifier(s.Weights), tables.Vocabulary, labelled)
	if ev.Labelled > 0 {
		stats.Agreement = &ev
		logger.Log.Info("Classifier agreement with labelled corpus",
			zap.Int("labelled", ev.Labelled),
			zap.Int("agreed", ev.Agreed),
			zap.Float64("agreement", ev.Agreement))
	}

	logger.Log.Info("Training dataset loaded",
		zap.String("location", stats.Location),
		zap.Int("rows", stats.Rows),
		zap.Int("skipped", skipped),
		zap.Int("subjects", tables.Vocabulary.Len()))

	if s.Config.SeedHistory {
		stats.Seeded = s.seed(ctx, rows)
	}
	return tables, stats
}

func (s *DatasetService) read(ctx context.Context) ([]DatasetRow, int, error) {
	rc, err := s.Provider.Open(ctx, s.Config.Object)
	if err != nil {
		return nil, 0, err
	}
	defer rc.Close()
	return ParseDataset(rc)
}

// seed copies the corpus into history once, when the table is still empty.
func (s *DatasetService) seed(ctx context.Context, rows []DatasetRow) int {
	if s.Records == nil {
		return 0
	}
	count, err := s.Records.Count(ctx)
	if err != nil {
		logger.Log.Error("Failed to count performance records", zap.Error(err))
		return 0
	}
	if count > 0 {
		return 0
	}

	at := s.now()
	records := make([]model.PerformanceRecord, 0, len(rows))
	for _, r := range rows {
		rec := model.PerformanceRecord{
			StudentID:  r.StudentID,
			Subject:    r.Subject,
			QuizScore:  r.QuizScore,
			Attendance: r.Attendance,
			Source:     model.SourceDataset,
			RecordedAt: at,
		}
		if r.Level != nil {
			rec.PerformanceLevel = r.Level.String()
		}
		records = append(records, rec)
	}
	if err := s.Records.CreateBatch(ctx, records); err != nil {
		logger.Log.Error("Failed to seed performance history", zap.Error(err))
		return 0
	}
	logger.Log.Info("Seeded performance history from dataset", zap.Int("records", len(records)))
	return len(records)
}
