package app

import (
	"fmt"

	tenantRepository "github.com/allisson/tenantvault/internal/tenant/repository"
	tenantUsecase "github.com/allisson/tenantvault/internal/tenant/usecase"
)

// TenantRepository returns the tenant repository instance.
func (c *Container) TenantRepository() (tenantUsecase.TenantRepository, error) {
	c.tenantRepoInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			c.initErrors["tenantRepo"] = fmt.Errorf("failed to get database for tenant repository: %w", err)
			return
		}

		switch c.config.DBDriver {
		case "mysql":
			c.tenantRepo = tenantRepository.NewMySQLTenantRepository(db)
		case "postgres":
			c.tenantRepo = tenantRepository.NewPostgreSQLTenantRepository(db)
		default:
			c.initErrors["tenantRepo"] = fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
		}
	})
	if err, exists := c.initErrors["tenantRepo"]; exists {
		return nil, err
	}
	return c.tenantRepo, nil
}

// TenantUseCase returns the tenant use case with metrics.
func (c *Container) TenantUseCase() (tenantUsecase.TenantUseCase, error) {
	c.tenantUseCaseInit.Do(func() {
		txManager, err := c.TxManager()
		if err != nil {
			c.initErrors["tenantUseCase"] = err
			return
		}

		repo, err := c.TenantRepository()
		if err != nil {
			c.initErrors["tenantUseCase"] = err
			return
		}

		secretService, err := c.SecretService()
		if err != nil {
			c.initErrors["tenantUseCase"] = err
			return
		}

		bm, err := c.BusinessMetrics()
		if err != nil {
			c.initErrors["tenantUseCase"] = err
			return
		}

		useCase := tenantUsecase.NewTenantUseCase(txManager, repo, secretService, c.Logger())
		c.tenantUseCase = tenantUsecase.NewTenantUseCaseWithMetrics(useCase, bm)
	})
	if err, exists := c.initErrors["tenantUseCase"]; exists {
		return nil, err
	}
	return c.tenantUseCase, nil
}
