package services

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"opsdesk/pagination"
	"opsdesk/repositories"
)

var (
	ErrInvalidID = errors.New("invalid id")
	ErrNotFound  = errors.New("not found")
)

// Lister is satisfied by every repository in opsdesk/repositories.
type Lister[T any] interface {
	List(ctx context.Context, raw map[string]string) (pagination.Result[T], error)
}

// Getter loads a single document by ObjectID.
type Getter[T any] interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*T, error)
}

// Store is a Lister that can also load single documents.
type Store[T any] interface {
	Lister[T]
	Getter[T]
}

func list[T any](ctx context.Context, op string, l Lister[T], raw map[string]string) (pagination.Result[T], error) {
	res, err := l.List(ctx, raw)
	if err != nil {
		return pagination.Result[T]{}, fmt.Errorf("%s: %w", op, err)
	}
	return res, nil
}

func getByHex[T any](ctx context.Context, op string, g Getter[T], hexID string) (*T, error) {
	id, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		return nil, ErrInvalidID
	}
	doc, err := g.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNotFound
		}
		if errors.Is(err, context.Canceled) || errors.Is(ctx.Err(), context.Canceled) {
			return nil, fmt.Errorf("%s: %w: %w", op, pagination.ErrCancelled, err)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return doc, nil
}
