package dynamodb

import (
	"context"

	"getmovies/actor"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// ActorRepository implements actor.Repository. Actors are read-only through
// the API, so only listing is wired.
type ActorRepository struct {
	client *dynamodb.Client
	table  string
}

func NewActorRepository(client *dynamodb.Client, table string) *ActorRepository {
	return &ActorRepository{
		client: client,
		table:  table,
	}
}

func (r *ActorRepository) List(ctx context.Context) ([]actor.Actor, error) {
	docs, err := listDocuments(ctx, r.client, r.table)
	if err != nil {
		return nil, err
	}

	actors := make([]actor.Actor, len(docs))
	for i, doc := range docs {
		actors[i] = actor.Actor{
			ID:     doc.id,
			Fields: doc.fields,
		}
	}
	return actors, nil
}
