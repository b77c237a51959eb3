package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/san-kum/attractor/internal/dynamo"
)

const (
	metadataFile = "metadata.json"
	traceFile    = "trace.csv"
)

// Store keeps one directory per offline render run.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// RunMetadata describes an exported artifact.
type RunMetadata struct {
	ID          string        `json:"id"`
	Kind        string        `json:"kind"`
	Artifact    string        `json:"artifact"`
	Preset      string        `json:"preset"`
	Pattern     string        `json:"pattern"`
	Base        dynamo.Params `json:"base"`
	Final       dynamo.Params `json:"final"`
	Timestamp   time.Time     `json:"timestamp"`
	Seed        int64         `json:"seed"`
	Frames      int           `json:"frames"`
	FPS         int           `json:"fps"`
	Width       int           `json:"width"`
	Height      int           `json:"height"`
	Points      int           `json:"points"`
	FadeOpacity float64       `json:"fade_opacity"`
	Phase       float64       `json:"phase"`
}

// TraceRow is the per-frame record of a run.
type TraceRow struct {
	Frame  int
	Phase  float64
	Params dynamo.Params
	Drawn  int
	Culled int
}

var traceHeader = []string{"frame", "phase", "a", "b", "c", "d", "drawn", "culled"}

// NewRun reserves a run directory and returns its id and path.
func (s *Store) NewRun(kind, preset string) (string, string, error) {
	runID := fmt.Sprintf("%s_%s_%d", kind, slug(preset), time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", "", err
	}
	return runID, runDir, nil
}

// Save writes the metadata sidecar and the frame trace of a run.
func (s *Store) Save(meta RunMetadata, trace []TraceRow) error {
	if meta.ID == "" {
		return fmt.Errorf("%w: run id is empty", dynamo.ErrInvalidConfig)
	}
	runDir := filepath.Join(s.baseDir, meta.ID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return err
	}

	metaFile, err := os.Create(filepath.Join(runDir, metadataFile))
	if err != nil {
		return err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return err
	}

	csvFile, err := os.Create(filepath.Join(runDir, traceFile))
	if err != nil {
		return err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	if err := w.Write(traceHeader); err != nil {
		return err
	}
	for _, r := range trace {
		row := []string{
			strconv.Itoa(r.Frame),
			formatFloat(r.Phase),
			formatFloat(r.Params.A),
			formatFloat(r.Params.B),
			formatFloat(r.Params.C),
			formatFloat(r.Params.D),
			strconv.Itoa(r.Drawn),
			strconv.Itoa(r.Culled),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// List returns every readable run, newest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.After(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

func (s *Store) LoadTrace(runID string) ([]TraceRow, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, traceFile))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []TraceRow{}, nil
	}

	rows := make([]TraceRow, 0, len(records)-1)
	for i, rec := range records[1:] {
		if len(rec) != len(traceHeader) {
			return nil, fmt.Errorf("trace line %d: want %d fields, got %d", i+2, len(traceHeader), len(rec))
		}
		var r TraceRow
		var nums [5]float64
		for j := range nums {
			if nums[j], err = strconv.ParseFloat(rec[j+1], 64); err != nil {
				return nil, fmt.Errorf("trace line %d: %w", i+2, err)
			}
		}
		if r.Frame, err = strconv.Atoi(rec[0]); err != nil {
			return nil, fmt.Errorf("trace line %d: %w", i+2, err)
		}
		if r.Drawn, err = strconv.Atoi(rec[6]); err != nil {
			return nil, fmt.Errorf("trace line %d: %w", i+2, err)
		}
		if r.Culled, err = strconv.Atoi(rec[7]); err != nil {
			return nil, fmt.Errorf("trace line %d: %w", i+2, err)
		}
		r.Phase = nums[0]
		r.Params = dynamo.Params{A: nums[1], B: nums[2], C: nums[3], D: nums[4]}
		rows = append(rows, r)
	}
	return rows, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

func slug(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteByte('-')
		}
	}
	if b.Len() == 0 {
		return "run"
	}
	return b.String()
}
