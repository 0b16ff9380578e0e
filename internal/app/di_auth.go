package app

import (
	"fmt"

	authRepository "github.com/allisson/tenantvault/internal/auth/repository"
	authService "github.com/allisson/tenantvault/internal/auth/service"
	authUsecase "github.com/allisson/tenantvault/internal/auth/usecase"
)

// ClientRepository returns the API client repository instance.
func (c *Container) ClientRepository() (authUsecase.ClientRepository, error) {
	c.clientRepoInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			c.initErrors["clientRepo"] = fmt.Errorf("failed to get database for client repository: %w", err)
			return
		}

		switch c.config.DBDriver {
		case "mysql":
			c.clientRepo = authRepository.NewMySQLClientRepository(db)
		case "postgres":
			c.clientRepo = authRepository.NewPostgreSQLClientRepository(db)
		default:
			c.initErrors["clientRepo"] = fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
		}
	})
	if err, exists := c.initErrors["clientRepo"]; exists {
		return nil, err
	}
	return c.clientRepo, nil
}

// ClientUseCase returns the API client use case.
func (c *Container) ClientUseCase() (authUsecase.ClientUseCase, error) {
	c.clientUseCaseInit.Do(func() {
		repo, err := c.ClientRepository()
		if err != nil {
			c.initErrors["clientUseCase"] = err
			return
		}
		c.clientUseCase = authUsecase.NewClientUseCase(repo, authService.NewSecretService(), c.Logger())
	})
	if err, exists := c.initErrors["clientUseCase"]; exists {
		return nil, err
	}
	return c.clientUseCase, nil
}
