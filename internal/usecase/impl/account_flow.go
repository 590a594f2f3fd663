// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"

	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// credentialFlow factors the token lifecycle shared by the user and
// seller services: issuing a pair, rotating it on refresh, and dropping
// the stored credential on logout. The type parameter is the principal
// entity; the accessor funcs bridge its fields without reflection.
type credentialFlow[E any] struct {
	tokens service.TokenService

	id            func(*E) uuid.UUID
	email         func(*E) string
	phone         func(*E) string
	storedRefresh func(*E) *string

	// find loads the principal inside the current transaction.
	find func(ctx context.Context, f repository.RepositoryFactory, id uuid.UUID) (*E, error)
	// saveRefresh persists only the refresh credential column; nil clears it.
	saveRefresh func(ctx context.Context, f repository.RepositoryFactory, id uuid.UUID, token *string) error
	// notFound is the repository's sentinel for a missing principal.
	notFound error
}

// tokenPair is a freshly signed access/refresh credential pair.
type tokenPair struct {
	access  string
	refresh string
}

// issueAndPersist signs a new pair and stores the refresh credential as
// the single active value for the account.
func (flow *credentialFlow[E]) issueAndPersist(ctx context.Context, f repository.RepositoryFactory, account *E) (*tokenPair, error) {
	accountID := flow.id(account)

	access, err := flow.tokens.GenerateAccessToken(accountID, flow.email(account), flow.phone(account))
	if err != nil {
		return nil, domainerrors.ErrTokenGenerationFailed.WrapMessage("failed to sign access token")
	}

	refresh, err := flow.tokens.GenerateRefreshToken(accountID)
	if err != nil {
		return nil, domainerrors.ErrTokenGenerationFailed.WrapMessage("failed to sign refresh token")
	}

	if err := flow.saveRefresh(ctx, f, accountID, &refresh); err != nil {
		return nil, errors.Wrap(err, "failed to persist refresh token")
	}

	return &tokenPair{access: access, refresh: refresh}, nil
}

// rotate verifies a presented refresh credential and exchanges it for a
// new pair. Any mismatch with the stored value, including a previously
// rotated-out credential being replayed, fails with Unauthorized.
func (flow *credentialFlow[E]) rotate(ctx context.Context, txManager repository.TransactionManager, presented string) (*tokenPair, error) {
	claims, err := flow.tokens.ValidateRefreshToken(presented)
	if err != nil {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	var pair *tokenPair
	err = txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		account, err := flow.find(ctx, f, claims.AccountID)
		if err != nil {
			if errors.Is(err, flow.notFound) {
				return domainerrors.ErrRefreshTokenInvalid
			}

			return errors.Wrap(err, "failed to load account for refresh")
		}

		stored := flow.storedRefresh(account)
		if stored == nil || *stored != presented {
			return domainerrors.ErrRefreshTokenInvalid
		}

		pair, err = flow.issueAndPersist(ctx, f, account)

		return err
	})
	if err != nil {
		return nil, err
	}

	return pair, nil
}

// dropRefresh clears the stored refresh credential. Clearing an already
// cleared credential succeeds, which keeps logout idempotent.
func (flow *credentialFlow[E]) dropRefresh(ctx context.Context, txManager repository.TransactionManager, accountID uuid.UUID) error {
	return txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := flow.saveRefresh(ctx, f, accountID, nil); err != nil {
			if errors.Is(err, flow.notFound) {
				return domainerrors.ErrInvalidToken
			}

			return errors.Wrap(err, "failed to clear refresh token")
		}

		return nil
	})
}
