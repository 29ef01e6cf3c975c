// Package storage persists completed runs as a per-run directory with
// a metadata.json and a states.csv trajectory.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/nwatters01/spriteworld-physics/internal/body"
	"github.com/nwatters01/spriteworld-physics/internal/sim"
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
	ID        string             `json:"id"`
	Scene     string             `json:"scene"`
	Timestamp time.Time          `json:"timestamp"`
	Seed      int64              `json:"seed"`
	Dt        float64            `json:"dt"`
	Substeps  int                `json:"substeps"`
	Steps     int                `json:"steps"`
	NumBodies int                `json:"num_bodies"`
	Metrics   map[string]float64 `json:"metrics"`
}

// Save writes a run directory and returns the generated run ID.
func (s *Store) Save(scene string, dt float64, substeps int, seed int64, result *sim.Result) (string, error) {
	runID := fmt.Sprintf("%s_%d", scene, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	numBodies := 0
	if len(result.States) > 0 {
		numBodies = len(result.States[0])
	}

	meta := RunMetadata{
		ID:        runID,
		Scene:     scene,
		Timestamp: time.Now(),
		Seed:      seed,
		Dt:        dt,
		Substeps:  substeps,
		Steps:     result.StepsTaken,
		NumBodies: numBodies,
		Metrics:   result.Metrics,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "states.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if len(result.States) == 0 {
		return runID, nil
	}

	header := []string{"time"}
	for i := 0; i < numBodies; i++ {
		header = append(header,
			fmt.Sprintf("x%d", i), fmt.Sprintf("y%d", i),
			fmt.Sprintf("vx%d", i), fmt.Sprintf("vy%d", i))
	}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for i, states := range result.States {
		row := []string{formatFloat(result.Times[i])}
		for _, b := range states {
			row = append(row,
				formatFloat(b.Position.X), formatFloat(b.Position.Y),
				formatFloat(b.Velocity.X), formatFloat(b.Velocity.Y))
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
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
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadStates reads the stored trajectory back as body snapshots. Only
// kinematic state round-trips; mass and radius live in the scene
// config, not the trajectory.
func (s *Store) LoadStates(runID string) ([][]body.Body, []float64, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "states.csv"))
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}

	if len(records) < 2 {
		return [][]body.Body{}, []float64{}, nil
	}

	numBodies := (len(records[0]) - 1) / 4
	times := make([]float64, 0, len(records)-1)
	states := make([][]body.Body, 0, len(records)-1)

	for _, record := range records[1:] {
		if len(record) != 1+numBodies*4 {
			return nil, nil, fmt.Errorf("storage: malformed row in %s/states.csv", runID)
		}

		t, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			return nil, nil, err
		}

		bodies := make([]body.Body, numBodies)
		for i := 0; i < numBodies; i++ {
			vals := [4]float64{}
			for k := 0; k < 4; k++ {
				v, err := strconv.ParseFloat(record[1+i*4+k], 64)
				if err != nil {
					return nil, nil, err
				}
				vals[k] = v
			}
			bodies[i] = body.Body{Index: i}
			bodies[i].Position.X, bodies[i].Position.Y = vals[0], vals[1]
			bodies[i].Velocity.X, bodies[i].Velocity.Y = vals[2], vals[3]
		}

		times = append(times, t)
		states = append(states, bodies)
	}

	return states, times, nil
}
