package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"
)

var ErrNoSamples = errors.New("storage: run has no samples")

const (
	metadataFile = "metadata.json"
	samplesFile  = "samples.csv"
)

var sampleHeader = []string{"tick", "x", "y", "vx", "vy", "width", "height", "freq", "r", "g", "b", "visible"}

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID           string             `json:"id"`
	Preset       string             `json:"preset,omitempty"`
	Timestamp    time.Time          `json:"timestamp"`
	Ticks        int                `json:"ticks"`
	Width        int                `json:"width"`
	Height       int                `json:"height"`
	TickInterval string             `json:"tick_interval"`
	Script       []string           `json:"script,omitempty"`
	StopReason   string             `json:"stop_reason"`
	Metrics      map[string]float64 `json:"metrics"`
}

// Save writes a run directory and returns its id. The id is taken from
// meta.ID when set.
func (s *Store) Save(meta RunMetadata, samples []Sample) (string, error) {
	if meta.Timestamp.IsZero() {
		meta.Timestamp = time.Now()
	}
	if meta.ID == "" {
		meta.ID = fmt.Sprintf("run_%d", meta.Timestamp.UnixNano())
	}
	meta.Ticks = len(samples)
	runDir := filepath.Join(s.baseDir, meta.ID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	metaFile, err := os.Create(filepath.Join(runDir, metadataFile))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", fmt.Errorf("encode metadata: %w", err)
	}

	csvFile, err := os.Create(filepath.Join(runDir, samplesFile))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	if err := w.Write(sampleHeader); err != nil {
		return "", err
	}
	for _, sm := range samples {
		if err := w.Write(sm.record()); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("write samples: %w", err)
	}

	return meta.ID, nil
}

// List returns every readable run, oldest first.
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

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("decode metadata %s: %w", runID, err)
	}

	return &meta, nil
}

func (s *Store) LoadSamples(runID string) ([]Sample, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, samplesFile))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = len(sampleHeader)

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read samples %s: %w", runID, err)
	}
	if len(records) < 2 {
		return nil, ErrNoSamples
	}

	samples := make([]Sample, 0, len(records)-1)
	for i, rec := range records[1:] {
		sm, err := parseSample(rec)
		if err != nil {
			return nil, fmt.Errorf("sample row %d: %w", i+1, err)
		}
		samples = append(samples, sm)
	}
	return samples, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
