package metrics

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/klauspost/compress/zstd"
)

type AgentRecord struct {
	ID         int
	Kind       string
	Strategy   string
	Depth      int
	Goroutines int
	Heuristic  string
}

type GameRecord struct {
	ID     int
	Agent1 int // AgentRecord.ID playing robot 0
	Agent2 int // AgentRecord.ID playing robot 1
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates <root>/<name>/<timestamp> to hold one experiment's records.
func NewWriter(root, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteAgentRecords(records []AgentRecord) error {
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			record.Kind,
			record.Strategy,
			strconv.Itoa(record.Depth),
			strconv.Itoa(record.Goroutines),
			record.Heuristic,
		})
	}
	header := []string{"id", "kind", "strategy", "depth", "goroutines", "heuristic"}
	return w.writeCSV("agent_configs.csv", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Agent1),
			strconv.Itoa(record.Agent2),
			strconv.Itoa(record.StartingRobot),
			strconv.Itoa(record.Winner),
			strconv.Itoa(record.Credits[0]),
			strconv.Itoa(record.Credits[1]),
			strconv.Itoa(record.TotalMoves),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
		})
	}
	header := []string{"id", "agent1", "agent2", "starting_robot", "winner", "credit1", "credit2", "total_moves", "start_time", "end_time", "duration"}
	return w.writeCSV("game_records.csv", header, rows)
}

func (w *Writer) writeCSV(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	err = writer.WriteAll(rows)
	if err != nil {
		return fmt.Errorf("failed to write %s rows: %w", name, err)
	}
	return nil
}

// WriteMoveRecords stores one JSON line per move, zstd compressed.
func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	path := filepath.Join(w.baseDir, "move_records.jsonl.zst")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create move records file: %w", err)
	}
	defer f.Close()

	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		return fmt.Errorf("failed to create move records encoder: %w", err)
	}
	buf := bufio.NewWriterSize(enc, 128*1024)
	encoder := json.NewEncoder(buf)

	for _, record := range records {
		if err := encoder.Encode(record); err != nil {
			_ = enc.Close()
			return fmt.Errorf("failed to write move record: %w", err)
		}
	}
	if err := buf.Flush(); err != nil {
		_ = enc.Close()
		return fmt.Errorf("failed to flush move records: %w", err)
	}
	return enc.Close()
}

// ReadMoveRecords decodes a file written by WriteMoveRecords.
func ReadMoveRecords(path string) ([]MoveRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("failed to create move records decoder: %w", err)
	}
	defer dec.Close()

	var records []MoveRecord
	decoder := json.NewDecoder(dec)
	for decoder.More() {
		var record MoveRecord
		if err := decoder.Decode(&record); err != nil {
			return records, fmt.Errorf("failed to read move record %d: %w", len(records)+1, err)
		}
		records = append(records, record)
	}
	return records, nil
}
