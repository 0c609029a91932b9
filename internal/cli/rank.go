package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"jobmatch_backend/internal/algorithms"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// jobFile - работа в том же виде, что отдает API
type jobFile struct {
	ID             string   `json:"id"`
	SkillsRequired []string `json:"skills_required"`
	Location       string   `json:"location"`
}

// workerFile - исполнитель в виде ответа GET /workers
type workerFile struct {
	ID            string   `json:"id"`
	UserID        string   `json:"user_id"`
	Skills        []string `json:"skills"`
	Experience    int      `json:"experience"`
	Location      string   `json:"location"`
	Contact       string   `json:"contact"`
	ProfilePicURL *string  `json:"profile_pic_url"`
	Profiles      struct {
		FullName string `json:"full_name"`
	} `json:"profiles"`
	Reviews []struct {
		Rating int `json:"rating"`
	} `json:"reviews"`
}

// rankedRow - строка вывода rank
type rankedRow struct {
	Rank       int                       `json:"rank"`
	WorkerID   string                    `json:"worker_id"`
	FullName   string                    `json:"full_name"`
	MatchScore int                       `json:"matchScore"`
	Breakdown  algorithms.ScoreBreakdown `json:"breakdown"`
}

func newRankCmd(opts *options) *cobra.Command {
	var jobPath, workersPath string

	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Rank workers against a job from JSON files",
		Long: `Rank scores every worker in --workers against the job in --job and
prints the top candidates with the per-component breakdown.

Examples:
  matchctl rank --job job.json --workers workers.json
  matchctl rank --job job.json --workers workers.json -o json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			job, err := readJob(jobPath)
			if err != nil {
				return err
			}
			pool, err := readWorkers(workersPath)
			if err != nil {
				return err
			}

			rows := rankRows(job, pool)
			return writeRows(cmd.OutOrStdout(), opts.outputFmt, rows)
		},
	}

	cmd.Flags().StringVar(&jobPath, "job", "", "path to job JSON")
	cmd.Flags().StringVar(&workersPath, "workers", "", "path to workers JSON array (or {\"workers\": [...]})")
	_ = cmd.MarkFlagRequired("job")
	_ = cmd.MarkFlagRequired("workers")
	return cmd
}

func readJob(path string) (algorithms.JobDescriptor, error) {
	var jf jobFile
	if err := readJSON(path, &jf); err != nil {
		return algorithms.JobDescriptor{}, err
	}
	return algorithms.JobDescriptor{
		ID:       jf.ID,
		Skills:   jf.SkillsRequired,
		Location: jf.Location,
	}, nil
}

func readWorkers(path string) ([]algorithms.WorkerDescriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var files []workerFile
	if err := json.Unmarshal(data, &files); err != nil {
		// ответ GET /workers целиком
		var wrapped struct {
			Workers []workerFile `json:"workers"`
		}
		if errWrapped := json.Unmarshal(data, &wrapped); errWrapped != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		files = wrapped.Workers
	}

	pool := make([]algorithms.WorkerDescriptor, 0, len(files))
	for _, f := range files {
		ratings := make([]int, 0, len(f.Reviews))
		for _, r := range f.Reviews {
			ratings = append(ratings, r.Rating)
		}
		pool = append(pool, algorithms.WorkerDescriptor{
			ID:            f.ID,
			UserID:        f.UserID,
			Skills:        f.Skills,
			Location:      f.Location,
			Experience:    f.Experience,
			Ratings:       ratings,
			Contact:       f.Contact,
			ProfilePicURL: f.ProfilePicURL,
			FullName:      f.Profiles.FullName,
		})
	}
	return pool, nil
}

func readJSON(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

func rankRows(job algorithms.JobDescriptor, pool []algorithms.WorkerDescriptor) []rankedRow {
	ranked := algorithms.Rank(job, pool)

	rows := make([]rankedRow, 0, len(ranked))
	for i, r := range ranked {
		rows = append(rows, rankedRow{
			Rank:       i + 1,
			WorkerID:   r.ID,
			FullName:   r.FullName,
			MatchScore: r.MatchScore,
			Breakdown:  algorithms.Breakdown(job, r.WorkerDescriptor),
		})
	}
	return rows
}

func writeRows(w io.Writer, format string, rows []rankedRow) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	case "table", "":
		return rowsTable(w, rows)
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}

func rowsTable(w io.Writer, rows []rankedRow) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, "No workers to rank.")
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header("#", "Worker", "Name", "Skills", "Location", "Experience", "Reputation", "Score")
	for _, r := range rows {
		err := table.Append([]string{
			strconv.Itoa(r.Rank),
			r.WorkerID,
			strings.TrimSpace(r.FullName),
			strconv.Itoa(r.Breakdown.Skills),
			strconv.Itoa(r.Breakdown.Location),
			strconv.Itoa(r.Breakdown.Experience),
			strconv.Itoa(r.Breakdown.Reputation),
			strconv.Itoa(r.MatchScore),
		})
		if err != nil {
			return err
		}
	}
	return table.Render()
}
