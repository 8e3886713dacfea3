package cli

import (
	"fmt"

	"tredgate-loans/internal/config"
	"tredgate-loans/internal/infrastructure/store"
	auditUC "tredgate-loans/internal/usecase/audit"
	loanUC "tredgate-loans/internal/usecase/loan"
)

type services struct {
	Loans *loanUC.Usecase
	Audit *auditUC.Usecase
}

func newServices(cfg *config.Config) (*services, error) {
	s, err := openStore(cfg)
	if err != nil {
		return nil, err
	}
	return &services{
		Loans: loanUC.NewUsecase(s),
		Audit: auditUC.NewUsecase(s),
	}, nil
}

func openStore(cfg *config.Config) (store.Store, error) {
	switch cfg.StoreBackend {
	case config.BackendRedis:
		rdb, err := store.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
		if err != nil {
			return nil, fmt.Errorf("open redis store: %w", err)
		}
		return store.NewRedisStore(rdb), nil
	case config.BackendSQLite:
		s, err := store.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite store: %w", err)
		}
		return s, nil
	default:
		return store.NewFileStore(cfg.DataDir), nil
	}
}
