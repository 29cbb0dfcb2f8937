package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/amaren/dynlab/internal/basin"
)

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
	ID         string      `json:"id"`
	Model      string      `json:"model"`
	Timestamp  time.Time   `json:"timestamp"`
	Integrator string      `json:"integrator"`
	XMin       float64     `json:"xmin"`
	XMax       float64     `json:"xmax"`
	YMin       float64     `json:"ymin"`
	YMax       float64     `json:"ymax"`
	Delta      float64     `json:"delta"`
	TMax       float64     `json:"tmax"`
	MaxDist    float64     `json:"maxdist"`
	Attractors [][]float64 `json:"attractors"`
	NX         int         `json:"nx"`
	NY         int         `json:"ny"`
	Counts     []int       `json:"counts"`
}

// Save writes one basin run: metadata.json plus raster.csv with
// i,j,label triples. Returns the run ID.
func (s *Store) Save(model, integrator string, cfg basin.Config, raster *basin.Raster) (string, error) {
	runID := fmt.Sprintf("%s_%d", model, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	attractors := make([][]float64, 0, len(cfg.Attractors))
	for _, a := range cfg.Attractors {
		attractors = append(attractors, []float64{a.X, a.Y})
	}

	meta := RunMetadata{
		ID:         runID,
		Model:      model,
		Timestamp:  time.Now(),
		Integrator: integrator,
		XMin:       cfg.Region.XMin,
		XMax:       cfg.Region.XMax,
		YMin:       cfg.Region.YMin,
		YMax:       cfg.Region.YMax,
		Delta:      cfg.Delta,
		TMax:       cfg.TMax,
		MaxDist:    cfg.MaxDist,
		Attractors: attractors,
		NX:         raster.NX,
		NY:         raster.NY,
		Counts:     raster.Counts(),
	}

	metaPath := filepath.Join(runDir, "metadata.json")
	metaFile, err := os.Create(metaPath)
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvPath := filepath.Join(runDir, "raster.csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"i", "j", "label"}); err != nil {
		return "", err
	}
	for i := 0; i < raster.NX; i++ {
		for j := 0; j < raster.NY; j++ {
			row := []string{
				strconv.Itoa(i),
				strconv.Itoa(j),
				strconv.Itoa(raster.At(i, j)),
			}
			if err := w.Write(row); err != nil {
				return "", err
			}
		}
	}

	return runID, nil
}

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

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	metaPath := filepath.Join(s.baseDir, runID, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

func (s *Store) LoadRaster(runID string) (*basin.Raster, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, err
	}
	if meta.NX <= 0 || meta.NY <= 0 {
		return nil, fmt.Errorf("run %s: bad raster dimensions %dx%d", runID, meta.NX, meta.NY)
	}

	csvPath := filepath.Join(s.baseDir, runID, "raster.csv")
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	raster := basin.NewRaster(meta.NX, meta.NY)
	for idx, record := range records {
		if idx == 0 || len(record) < 3 {
			continue
		}
		i, err1 := strconv.Atoi(record[0])
		j, err2 := strconv.Atoi(record[1])
		label, err3 := strconv.Atoi(record[2])
		if err1 != nil || err2 != nil || err3 != nil {
			continue
		}
		if i < 0 || i >= meta.NX || j < 0 || j >= meta.NY {
			continue
		}
		raster.Set(i, j, label)
	}

	return raster, nil
}
