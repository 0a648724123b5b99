package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hobbie/hobbie-backend/internal/core/domain"
)

const (
	hobbiesCollection   = "hobbies"
	favoritesCollection = "favorites"
)

// HobbyRepository stores hobbies and the per-user saved list.
type HobbyRepository struct {
	hobbies   *mongo.Collection
	favorites *mongo.Collection
}

func NewHobbyRepository(db *mongo.Database) *HobbyRepository {
	return &HobbyRepository{
		hobbies:   db.Collection(hobbiesCollection),
		favorites: db.Collection(favoritesCollection),
	}
}

type hobbyDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Slogan      string             `bson:"slogan,omitempty"`
	Intro       string             `bson:"intro,omitempty"`
	Description string             `bson:"description,omitempty"`
	Category    string             `bson:"category"`
	Location    string             `bson:"location"`
	Creator     string             `bson:"creator"`
	ImageKey    string             `bson:"image_key,omitempty"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

type favoriteDocument struct {
	Username  string    `bson:"username"`
	HobbyID   string    `bson:"hobby_id"`
	CreatedAt time.Time `bson:"created_at"`
}

func toHobbyDocument(h *domain.Hobby) hobbyDocument {
	return hobbyDocument{
		Name:        h.Name,
		Slogan:      h.Slogan,
		Intro:       h.Intro,
		Description: h.Description,
		Category:    h.Category,
		Location:    h.Location,
		Creator:     h.Creator,
		ImageKey:    h.ImageKey,
		CreatedAt:   h.CreatedAt.UTC(),
		UpdatedAt:   h.UpdatedAt.UTC(),
	}
}

func (d hobbyDocument) toDomain() *domain.Hobby {
	return &domain.Hobby{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Slogan:      d.Slogan,
		Intro:       d.Intro,
		Description: d.Description,
		Category:    d.Category,
		Location:    d.Location,
		Creator:     d.Creator,
		ImageKey:    d.ImageKey,
		CreatedAt:   d.CreatedAt.UTC(),
		UpdatedAt:   d.UpdatedAt.UTC(),
	}
}

func (r *HobbyRepository) Create(ctx context.Context, h *domain.Hobby) (*domain.Hobby, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := toHobbyDocument(h)
	res, err := r.hobbies.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert hobby: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		doc.ID = oid
	}
	return doc.toDomain(), nil
}

func (r *HobbyRepository) FindByID(ctx context.Context, id string) (*domain.Hobby, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrHobbyNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc hobbyDocument
	if err := r.hobbies.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrHobbyNotFound
		}
		return nil, fmt.Errorf("find hobby: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *HobbyRepository) Update(ctx context.Context, h *domain.Hobby) error {
	oid, err := primitive.ObjectIDFromHex(h.ID)
	if err != nil {
		return domain.ErrHobbyNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := toHobbyDocument(h)
	doc.ID = oid
	res, err := r.hobbies.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		return fmt.Errorf("replace hobby: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrHobbyNotFound
	}
	return nil
}

// Delete removes the hobby and every saved-list entry pointing at it.
func (r *HobbyRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrHobbyNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.hobbies.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete hobby: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrHobbyNotFound
	}
	if _, err := r.favorites.DeleteMany(ctx, bson.M{"hobby_id": id}); err != nil {
		return fmt.Errorf("delete favorites: %w", err)
	}
	return nil
}

func (r *HobbyRepository) AddFavorite(ctx context.Context, username, hobbyID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.favorites.InsertOne(ctx, favoriteDocument{
		Username:  username,
		HobbyID:   hobbyID,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrAlreadySaved
		}
		return fmt.Errorf("insert favorite: %w", err)
	}
	return nil
}

func (r *HobbyRepository) RemoveFavorite(ctx context.Context, username, hobbyID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.favorites.DeleteOne(ctx, bson.M{"username": username, "hobby_id": hobbyID})
	if err != nil {
		return fmt.Errorf("delete favorite: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotSaved
	}
	return nil
}

func (r *HobbyRepository) IsFavorite(ctx context.Context, username, hobbyID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.favorites.CountDocuments(ctx, bson.M{"username": username, "hobby_id": hobbyID})
	if err != nil {
		return false, fmt.Errorf("count favorites: %w", err)
	}
	return n > 0, nil
}

// ListFavorites returns the saved hobbies of username, newest save first.
func (r *HobbyRepository) ListFavorites(ctx context.Context, username string) ([]*domain.Hobby, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.favorites.Find(ctx, bson.M{"username": username}, opts)
	if err != nil {
		return nil, fmt.Errorf("find favorites: %w", err)
	}
	var favs []favoriteDocument
	if err := cur.All(ctx, &favs); err != nil {
		return nil, fmt.Errorf("decode favorites: %w", err)
	}
	if len(favs) == 0 {
		return []*domain.Hobby{}, nil
	}

	ids := make([]primitive.ObjectID, 0, len(favs))
	for _, f := range favs {
		if oid, err := primitive.ObjectIDFromHex(f.HobbyID); err == nil {
			ids = append(ids, oid)
		}
	}

	cur, err = r.hobbies.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("find hobbies: %w", err)
	}
	var docs []hobbyDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode hobbies: %w", err)
	}

	byID := make(map[string]*domain.Hobby, len(docs))
	for _, d := range docs {
		byID[d.ID.Hex()] = d.toDomain()
	}
	out := make([]*domain.Hobby, 0, len(docs))
	for _, f := range favs {
		if h, ok := byID[f.HobbyID]; ok {
			out = append(out, h)
		}
	}
	return out, nil
}

// EnsureIndexes creates the creator lookup index and the unique
// (username, hobby_id) index that backs the saved list.
func (r *HobbyRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	if _, err := r.hobbies.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "creator", Value: 1}},
	}); err != nil {
		return err
	}

	_, err := r.favorites.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}, {Key: "hobby_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "hobby_id", Value: 1}}},
	})
	return err
}
