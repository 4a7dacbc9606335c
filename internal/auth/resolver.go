package auth

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/school-service/internal/domain"
	"github.com/spec-kit/school-service/internal/repository"
)

// ErrUnauthorized is the uniform failure for principal resolution. Expired
// token, bad signature, and unknown subject all collapse into it.
var ErrUnauthorized = errors.New("unauthorized")

// Resolver turns bearer tokens into authenticated principals.
type Resolver struct {
	tokens   *TokenManager
	students repository.StudentRepository
}

// NewResolver constructs a resolver over the token manager and student store.
func NewResolver(tokens *TokenManager, students repository.StudentRepository) *Resolver {
	return &Resolver{tokens: tokens, students: students}
}

// Resolve validates the bearer token and loads the principal it names.
// Idempotent and side-effect free.
func (r *Resolver) Resolve(ctx context.Context, bearerToken string) (*domain.Student, error) {
	if bearerToken == "" {
		return nil, ErrUnauthorized
	}

	claims, err := r.tokens.Decode(bearerToken)
	if err != nil {
		return nil, ErrUnauthorized
	}
	if claims.Subject == "" {
		return nil, ErrUnauthorized
	}

	student, err := r.students.GetByEmail(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}
	return student, nil
}

// ResolveActive resolves the principal and will additionally reject
// disabled accounts once the roster model grows an active flag.
func (r *Resolver) ResolveActive(ctx context.Context, bearerToken string) (*domain.Student, error) {
	return r.Resolve(ctx, bearerToken)
}
