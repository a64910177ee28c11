package mongodb

import (
	"context"
	"errors"
	"fmt"

	"tronefilms/movie"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MovieDocument is the stored shape of a movie. Optional fields use
// omitempty so absent values stay absent in the collection. Extra catches
// every other stored field so reads return the whole document.
type MovieDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Title     string             `bson:"title"`
	Year      looseInt           `bson:"year"`
	Plot      *string            `bson:"plot,omitempty"`
	Genres    []string           `bson:"genres,omitempty"`
	Runtime   *int               `bson:"runtime,omitempty"`
	Cast      []string           `bson:"cast,omitempty"`
	Poster    *string            `bson:"poster,omitempty"`
	Languages []string           `bson:"languages,omitempty"`
	Directors []string           `bson:"directors,omitempty"`
	Released  optionalString     `bson:"released,omitempty"`
	Countries []string           `bson:"countries,omitempty"`
	Fullplot  *string            `bson:"fullplot,omitempty"`
	Rated     *string            `bson:"rated,omitempty"`

	Extra bson.M `bson:",inline"`
}

// MovieRepository implements movie.Repository on one collection.
type MovieRepository struct {
	collection *mongo.Collection
}

func NewMovieRepository(db *Database, collection string) *MovieRepository {
	return &MovieRepository{collection: db.Collection(collection)}
}

// FindByTitle implements [movie.Repository].
func (r *MovieRepository) FindByTitle(ctx context.Context, title string) (*movie.Movie, error) {
	var doc MovieDocument
	err := r.collection.FindOne(ctx, bson.M{"title": title}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("mongodb: find movie: %w", err)
	}

	m := toDomainMovie(doc)
	return &m, nil
}

// DeleteByTitle implements [movie.Repository].
func (r *MovieRepository) DeleteByTitle(ctx context.Context, title string) (int64, error) {
	res, err := r.collection.DeleteOne(ctx, bson.M{"title": title})
	if err != nil {
		return 0, fmt.Errorf("mongodb: delete movie: %w", err)
	}
	return res.DeletedCount, nil
}

// Insert implements [movie.Repository].
func (r *MovieRepository) Insert(ctx context.Context, m movie.Movie) (string, error) {
	res, err := r.collection.InsertOne(ctx, toMovieDocument(m))
	if err != nil {
		if errors.Is(err, mongo.ErrUnacknowledgedWrite) {
			return "", movie.ErrNotAcknowledged
		}
		return "", fmt.Errorf("mongodb: insert movie: %w", err)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("mongodb: unexpected inserted id type %T", res.InsertedID)
	}
	return id.Hex(), nil
}

// InsertMany stores movies in one unordered batch and returns how many were
// written. Used by the seed tool.
func (r *MovieRepository) InsertMany(ctx context.Context, movies []movie.Movie) (int, error) {
	if len(movies) == 0 {
		return 0, nil
	}

	docs := make([]interface{}, len(movies))
	for i, m := range movies {
		docs[i] = toMovieDocument(m)
	}

	res, err := r.collection.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))
	if err != nil {
		return 0, fmt.Errorf("mongodb: insert movies: %w", err)
	}
	return len(res.InsertedIDs), nil
}

// EnsureIndexes creates the lookup indexes. Titles are not unique.
func (r *MovieRepository) EnsureIndexes(ctx context.Context) ([]string, error) {
	models := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "title", Value: 1}},
			Options: options.Index().SetName("title_1"),
		},
		{
			Keys:    bson.D{{Key: "year", Value: -1}},
			Options: options.Index().SetName("year_-1"),
		},
	}

	names, err := r.collection.Indexes().CreateMany(ctx, models)
	if err != nil {
		return nil, fmt.Errorf("mongodb: create indexes: %w", err)
	}
	return names, nil
}

func toDomainMovie(doc MovieDocument) movie.Movie {
	m := movie.Movie{
		Title:     doc.Title,
		Year:      int(doc.Year),
		Plot:      doc.Plot,
		Genres:    doc.Genres,
		Runtime:   doc.Runtime,
		Cast:      doc.Cast,
		Poster:    doc.Poster,
		Languages: doc.Languages,
		Directors: doc.Directors,
		Countries: doc.Countries,
		Released:  doc.Released.Ptr(),
		Fullplot:  doc.Fullplot,
		Rated:     doc.Rated,
	}
	if !doc.ID.IsZero() {
		m.ID = doc.ID.Hex()
	}
	if len(doc.Extra) > 0 {
		m.Extra = plainMap(doc.Extra)
	}
	return m
}

func toMovieDocument(m movie.Movie) MovieDocument {
	doc := MovieDocument{
		Title:     m.Title,
		Year:      looseInt(m.Year),
		Plot:      m.Plot,
		Genres:    m.Genres,
		Runtime:   m.Runtime,
		Cast:      m.Cast,
		Poster:    m.Poster,
		Languages: m.Languages,
		Directors: m.Directors,
		Countries: m.Countries,
		Released:  newOptionalString(m.Released),
		Fullplot:  m.Fullplot,
		Rated:     m.Rated,
	}
	return doc
}
