package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"getmovies/dynamodb"
	"getmovies/movie"
	"getmovies/pkg/config"
)

// movieseed bulk-creates movie documents from a CSV file with a
// title,rating,genres header row.
func main() {
	var (
		csvPath string
		limit   int
	)

	flag.StringVar(&csvPath, "csv", "movies.csv", "Path to the movies CSV file")
	flag.IntVar(&limit, "limit", 0, "Limit number of rows to import (0 = all)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("load config failed", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	client, err := dynamodb.NewClient(ctx, dynamodb.Options{
		Region:       cfg.DocumentStore.Region,
		Endpoint:     cfg.DocumentStore.Endpoint,
		AccessKey:    cfg.DocumentStore.AccessKey,
		SecretKey:    cfg.DocumentStore.SecretKey,
		SessionToken: cfg.DocumentStore.SessionToken,
	})
	if err != nil {
		slog.Error("cannot open document store client", "error", err)
		os.Exit(1)
	}

	repo := dynamodb.NewMovieRepository(client, cfg.DocumentStore.MoviesTable)

	count, err := importMovies(ctx, repo, csvPath, limit)
	if err != nil {
		slog.Error("import failed", "error", err)
		os.Exit(1)
	}

	slog.Info("import completed", "rows", count)
}

func importMovies(ctx context.Context, repo movie.Repository, csvPath string, limit int) (int, error) {
	f, err := os.Open(csvPath)
	if err != nil {
		return 0, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read header: %w", err)
	}
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[name] = i
	}
	titleCol, ok := columns["title"]
	if !ok {
		return 0, fmt.Errorf("csv is missing a title column")
	}

	count := 0
	for {
		if limit > 0 && count >= limit {
			break
		}

		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return count, fmt.Errorf("read row: %w", err)
		}
		if titleCol >= len(record) {
			continue
		}

		fields := map[string]interface{}{
			"title": record[titleCol],
		}
		if col, ok := columns["rating"]; ok && col < len(record) {
			if rating, err := strconv.ParseFloat(record[col], 64); err == nil {
				fields["rating"] = rating
			}
		}
		if col, ok := columns["genres"]; ok && col < len(record) {
			fields["genres"] = record[col]
		}

		if _, err := repo.Create(ctx, fields); err != nil {
			return count, fmt.Errorf("create movie %q: %w", record[titleCol], err)
		}
		count++
	}

	return count, nil
}
