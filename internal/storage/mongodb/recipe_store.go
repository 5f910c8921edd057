// Package mongodb persists saved recipes in MongoDB.
package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/davidbz/saucier/internal/domain"
	"github.com/davidbz/saucier/internal/observability"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
	indexTimeout     = 10 * time.Second
)

var _ domain.RecipeStore = (*RecipeStore)(nil)

type ingredientDocument struct {
	Ingredient string `bson:"ingredient"`
	Amount     string `bson:"amount"`
	Unit       string `bson:"unit,omitempty"`
}

type nutritionDocument struct {
	Calories float64 `bson:"calories"`
	Protein  float64 `bson:"protein"`
	Carbs    float64 `bson:"carbs"`
	Fat      float64 `bson:"fat"`
	Fiber    float64 `bson:"fiber"`
}

type recipeDocument struct {
	ID           string               `bson:"_id"`
	Name         string               `bson:"name"`
	Cuisine      string               `bson:"cuisine,omitempty"`
	Ingredients  []ingredientDocument `bson:"ingredients"`
	Instructions []string             `bson:"instructions"`
	Nutrition    nutritionDocument    `bson:"nutrition"`
	PrepTime     int                  `bson:"prepTime"`
	CookTime     int                  `bson:"cookTime"`
	Servings     int                  `bson:"servings"`
	Difficulty   string               `bson:"difficulty"`
	Tags         []string             `bson:"tags,omitempty"`
	CreatedAt    time.Time            `bson:"createdAt"`
}

// RecipeStore implements domain.RecipeStore.
type RecipeStore struct {
	client     *mongo.Client
	collection *mongo.Collection
	now        func() time.Time
}

// Connect opens the client, checks it with a ping and prepares the
// collection indexes.
func Connect(ctx context.Context, cfg Config) (*RecipeStore, error) {
	if cfg.URI == "" {
		return nil, errors.New("mongo URI is required")
	}

	client, err := mongo.Connect(options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	store := NewRecipeStore(client.Database(cfg.Database).Collection(cfg.Collection))
	store.client = client

	indexCtx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	_, err = store.collection.Indexes().CreateOne(indexCtx, mongo.IndexModel{
		Keys: bson.D{{Key: "createdAt", Value: -1}},
	})
	if err != nil {
		// The index may already exist with other options.
		observability.FromContext(ctx).Warn("failed to create recipe index",
			observability.Error(err))
	}

	return store, nil
}

// NewRecipeStore wraps an existing collection.
func NewRecipeStore(collection *mongo.Collection) *RecipeStore {
	return &RecipeStore{collection: collection, now: time.Now}
}

// Save validates and inserts recipe under a fresh id.
func (s *RecipeStore) Save(ctx context.Context, recipe *domain.Recipe) (*domain.StoredRecipe, error) {
	if err := recipe.Validate(); err != nil {
		return nil, fmt.Errorf("invalid recipe: %w", err)
	}

	stored := &domain.StoredRecipe{
		ID:        uuid.NewString(),
		Recipe:    *recipe,
		CreatedAt: s.now().UTC().Truncate(time.Millisecond),
	}

	if _, err := s.collection.InsertOne(ctx, toDocument(stored)); err != nil {
		return nil, fmt.Errorf("failed to insert recipe: %w", err)
	}

	return stored, nil
}

// Get returns domain.ErrRecipeNotFound for unknown ids.
func (s *RecipeStore) Get(ctx context.Context, id string) (*domain.StoredRecipe, error) {
	var doc recipeDocument

	err := s.collection.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, fmt.Errorf("failed to find recipe: %w", err)
	}

	return fromDocument(&doc), nil
}

// List returns the most recently saved recipes first.
func (s *RecipeStore) List(ctx context.Context, limit int) ([]*domain.StoredRecipe, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(clampLimit(limit)))

	cursor, err := s.collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []recipeDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode recipes: %w", err)
	}

	recipes := make([]*domain.StoredRecipe, 0, len(docs))
	for i := range docs {
		recipes = append(recipes, fromDocument(&docs[i]))
	}

	return recipes, nil
}

// Close disconnects a store created with Connect.
func (s *RecipeStore) Close(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	return s.client.Disconnect(ctx)
}

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return defaultListLimit
	case limit > maxListLimit:
		return maxListLimit
	default:
		return limit
	}
}

func toDocument(s *domain.StoredRecipe) *recipeDocument {
	r := s.Recipe

	ingredients := make([]ingredientDocument, len(r.Ingredients))
	for i, ing := range r.Ingredients {
		ingredients[i] = ingredientDocument(ing)
	}

	return &recipeDocument{
		ID:           s.ID,
		Name:         r.Name,
		Cuisine:      r.Cuisine,
		Ingredients:  ingredients,
		Instructions: r.Instructions,
		Nutrition:    nutritionDocument(r.Nutrition),
		PrepTime:     r.PrepTime,
		CookTime:     r.CookTime,
		Servings:     r.Servings,
		Difficulty:   string(r.Difficulty),
		Tags:         r.Tags,
		CreatedAt:    s.CreatedAt,
	}
}

func fromDocument(doc *recipeDocument) *domain.StoredRecipe {
	ingredients := make([]domain.Ingredient, len(doc.Ingredients))
	for i, ing := range doc.Ingredients {
		ingredients[i] = domain.Ingredient(ing)
	}

	return &domain.StoredRecipe{
		ID: doc.ID,
		Recipe: domain.Recipe{
			Name:         doc.Name,
			Cuisine:      doc.Cuisine,
			Ingredients:  ingredients,
			Instructions: doc.Instructions,
			Nutrition:    domain.Nutrition(doc.Nutrition),
			PrepTime:     doc.PrepTime,
			CookTime:     doc.CookTime,
			Servings:     doc.Servings,
			Difficulty:   domain.ParseDifficulty(doc.Difficulty),
			Tags:         doc.Tags,
		},
		CreatedAt: doc.CreatedAt.UTC(),
	}
}
