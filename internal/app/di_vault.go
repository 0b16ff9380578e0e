package app

import (
	"context"
	"fmt"

	vaultDomain "github.com/allisson/tenantvault/internal/vault/domain"
	vaultRepository "github.com/allisson/tenantvault/internal/vault/repository"
	vaultService "github.com/allisson/tenantvault/internal/vault/service"
	vaultUsecase "github.com/allisson/tenantvault/internal/vault/usecase"
)

// keyAlgorithm validates and returns the configured AEAD algorithm.
func (c *Container) keyAlgorithm() (vaultDomain.Algorithm, error) {
	switch vaultDomain.Algorithm(c.config.KeyAlgorithm) {
	case vaultDomain.AESGCM:
		return vaultDomain.AESGCM, nil
	case vaultDomain.ChaCha20:
		return vaultDomain.ChaCha20, nil
	default:
		return "", fmt.Errorf("unsupported key algorithm: %s", c.config.KeyAlgorithm)
	}
}

// KeyRepository returns the encryption key repository instance.
func (c *Container) KeyRepository() (vaultService.KeyRepository, error) {
	c.keyRepoInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			c.initErrors["keyRepo"] = fmt.Errorf("failed to get database for key repository: %w", err)
			return
		}

		switch c.config.DBDriver {
		case "mysql":
			c.keyRepo = vaultRepository.NewMySQLKeyRepository(db)
		case "postgres":
			c.keyRepo = vaultRepository.NewPostgreSQLKeyRepository(db)
		default:
			c.initErrors["keyRepo"] = fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
		}
	})
	if err, exists := c.initErrors["keyRepo"]; exists {
		return nil, err
	}
	return c.keyRepo, nil
}

// AuditRecordRepository returns the audit record repository instance.
func (c *Container) AuditRecordRepository() (vaultUsecase.AuditRecordRepository, error) {
	c.auditRecordRepoInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			c.initErrors["auditRecordRepo"] = fmt.Errorf("failed to get database for audit record repository: %w", err)
			return
		}

		switch c.config.DBDriver {
		case "mysql":
			c.auditRecordRepo = vaultRepository.NewMySQLAuditRecordRepository(db)
		case "postgres":
			c.auditRecordRepo = vaultRepository.NewPostgreSQLAuditRecordRepository(db)
		default:
			c.initErrors["auditRecordRepo"] = fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
		}
	})
	if err, exists := c.initErrors["auditRecordRepo"]; exists {
		return nil, err
	}
	return c.auditRecordRepo, nil
}

// MasterKeeper returns the keeper wrapping key material at rest.
func (c *Container) MasterKeeper(ctx context.Context) (vaultService.MasterKeeper, error) {
	c.masterKeeperInit.Do(func() {
		if c.config.MasterKeyURI == "" {
			c.initErrors["masterKeeper"] = fmt.Errorf("MASTER_KEY_URI is required")
			return
		}
		keeper, err := vaultService.OpenMasterKeeper(ctx, c.config.MasterKeyURI)
		if err != nil {
			c.initErrors["masterKeeper"] = err
			return
		}
		c.masterKeeper = keeper
	})
	if err, exists := c.initErrors["masterKeeper"]; exists {
		return nil, err
	}
	return c.masterKeeper, nil
}

// KeyManager returns the key manager service instance.
func (c *Container) KeyManager() (*vaultService.KeyManagerService, error) {
	c.keyManagerInit.Do(func() {
		repo, err := c.KeyRepository()
		if err != nil {
			c.initErrors["keyManager"] = err
			return
		}

		keeper, err := c.MasterKeeper(context.Background())
		if err != nil {
			c.initErrors["keyManager"] = err
			return
		}

		algorithm, err := c.keyAlgorithm()
		if err != nil {
			c.initErrors["keyManager"] = err
			return
		}

		c.keyManager = vaultService.NewKeyManagerService(
			repo,
			keeper,
			algorithm,
			c.config.KeyExpiry,
			c.Logger(),
		)
	})
	if err, exists := c.initErrors["keyManager"]; exists {
		return nil, err
	}
	return c.keyManager, nil
}

// TokenCipher returns the token cipher service instance.
func (c *Container) TokenCipher() (vaultService.TokenCipher, error) {
	c.tokenCipherInit.Do(func() {
		keyManager, err := c.KeyManager()
		if err != nil {
			c.initErrors["tokenCipher"] = err
			return
		}

		algorithm, err := c.keyAlgorithm()
		if err != nil {
			c.initErrors["tokenCipher"] = err
			return
		}

		c.tokenCipher = vaultService.NewTokenCipherService(
			keyManager,
			vaultService.NewAEADManager(),
			algorithm,
		)
	})
	if err, exists := c.initErrors["tokenCipher"]; exists {
		return nil, err
	}
	return c.tokenCipher, nil
}

// SecretService returns the audited secret service with metrics.
func (c *Container) SecretService() (vaultUsecase.SecretService, error) {
	c.secretServiceInit.Do(func() {
		cipher, err := c.TokenCipher()
		if err != nil {
			c.initErrors["secretService"] = err
			return
		}

		auditRepo, err := c.AuditRecordRepository()
		if err != nil {
			c.initErrors["secretService"] = err
			return
		}

		bm, err := c.BusinessMetrics()
		if err != nil {
			c.initErrors["secretService"] = err
			return
		}

		service := vaultUsecase.NewAuditedSecretService(cipher, auditRepo, bm, c.Logger())
		c.secretService = vaultUsecase.NewSecretServiceWithMetrics(service, bm)
	})
	if err, exists := c.initErrors["secretService"]; exists {
		return nil, err
	}
	return c.secretService, nil
}

// KeyService returns the key lifecycle service with metrics.
func (c *Container) KeyService() (vaultUsecase.KeyService, error) {
	c.keyServiceInit.Do(func() {
		keyManager, err := c.KeyManager()
		if err != nil {
			c.initErrors["keyService"] = err
			return
		}

		auditRepo, err := c.AuditRecordRepository()
		if err != nil {
			c.initErrors["keyService"] = err
			return
		}

		bm, err := c.BusinessMetrics()
		if err != nil {
			c.initErrors["keyService"] = err
			return
		}

		service := vaultUsecase.NewKeyService(keyManager, auditRepo, bm, c.Logger())
		c.keyService = vaultUsecase.NewKeyServiceWithMetrics(service, bm)
	})
	if err, exists := c.initErrors["keyService"]; exists {
		return nil, err
	}
	return c.keyService, nil
}

// AuditRecordUseCase returns the audit record query use case.
func (c *Container) AuditRecordUseCase() (vaultUsecase.AuditRecordUseCase, error) {
	c.auditUseCaseInit.Do(func() {
		auditRepo, err := c.AuditRecordRepository()
		if err != nil {
			c.initErrors["auditUseCase"] = err
			return
		}
		c.auditUseCase = vaultUsecase.NewAuditRecordUseCase(auditRepo)
	})
	if err, exists := c.initErrors["auditUseCase"]; exists {
		return nil, err
	}
	return c.auditUseCase, nil
}
