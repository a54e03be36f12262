package dynamodb

import (
	"context"

	"getmovies/movie"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// MovieRepository implements movie.Repository on top of a DynamoDB table.
type MovieRepository struct {
	client *dynamodb.Client
	table  string
}

func NewMovieRepository(client *dynamodb.Client, table string) *MovieRepository {
	return &MovieRepository{
		client: client,
		table:  table,
	}
}

func (r *MovieRepository) List(ctx context.Context) ([]movie.Movie, error) {
	docs, err := listDocuments(ctx, r.client, r.table)
	if err != nil {
		return nil, err
	}
	return toMovies(docs), nil
}

func (r *MovieRepository) ListOrdered(ctx context.Context, field string, descending bool) ([]movie.Movie, error) {
	docs, err := listDocuments(ctx, r.client, r.table)
	if err != nil {
		return nil, err
	}
	sortDocuments(docs, field, descending)
	return toMovies(docs), nil
}

func (r *MovieRepository) Create(ctx context.Context, fields map[string]interface{}) (string, error) {
	return createDocument(ctx, r.client, r.table, fields)
}

func (r *MovieRepository) Merge(ctx context.Context, id string, fields map[string]interface{}) error {
	return mergeDocument(ctx, r.client, r.table, id, fields)
}

func (r *MovieRepository) Delete(ctx context.Context, id string) error {
	return deleteDocument(ctx, r.client, r.table, id)
}

func toMovies(docs []document) []movie.Movie {
	movies := make([]movie.Movie, len(docs))
	for i, doc := range docs {
		movies[i] = movie.Movie{
			ID:     doc.id,
			Fields: doc.fields,
		}
	}
	return movies
}
