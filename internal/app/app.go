package app

import (
	"fmt"

	"teaching_platform_backend/internal/config"
	"teaching_platform_backend/internal/fixture"
	"teaching_platform_backend/internal/model"
	"teaching_platform_backend/internal/repository"
	"teaching_platform_backend/internal/service"
	"teaching_platform_backend/pkg/kvstore"
	"teaching_platform_backend/pkg/logger"

	"go.uber.org/zap"
)

// App 聚合存储、仓库和服务的依赖，命令层只通过它访问业务逻辑
type App struct {
	Config *config.Config
	KV     kvstore.Store

	ReportRepo *repository.ReportRepository
	ErrorRepo  *repository.ErrorLogRepository
	AgentRepo  *repository.AgentRepository

	ReportService *service.ReportService
	ErrorService  *service.ErrorLogService
	AgentService  *service.AgentService
}

func New(cfg *config.Config) (*App, error) {
	kv, err := openStore(cfg)
	if err != nil {
		return nil, err
	}

	reportRepo := repository.NewReportRepository(kv)
	errorRepo := repository.NewErrorLogRepository(kv)
	agentRepo := repository.NewAgentRepository(kv)

	reportSvc := service.NewReportService(reportRepo)
	errorSvc := service.NewErrorLogService(errorRepo)
	agentSvc := service.NewAgentService(agentRepo)

	// 错题本变更后同步学习报告的雷达图和薄弱维度
	errorSvc.Subscribe(func(doc model.ErrorLog) {
		if err := reportSvc.SyncFromErrorLog(doc); err != nil {
			logger.Log.Error("错题数据同步学习报告失败", zap.Error(err))
		}
	})

	a := &App{
		Config:        cfg,
		KV:            kv,
		ReportRepo:    reportRepo,
		ErrorRepo:     errorRepo,
		AgentRepo:     agentRepo,
		ReportService: reportSvc,
		ErrorService:  errorSvc,
		AgentService:  agentSvc,
	}

	if cfg.Seed.OnStart {
		if err := a.Seed(); err != nil {
			kv.Close()
			return nil, err
		}
	}
	return a, nil
}

func openStore(cfg *config.Config) (kvstore.Store, error) {
	switch cfg.Storage.Backend {
	case "memory":
		return kvstore.NewMemoryStore(), nil
	case "file":
		return kvstore.NewFileStore(cfg.Storage.DataDir)
	case "bolt", "":
		return kvstore.NewBoltStore(cfg.Storage.BoltPath)
	case "redis":
		return kvstore.NewRedisStore(kvstore.RedisOptions{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Prefix:   cfg.Redis.Prefix,
		})
	default:
		return nil, fmt.Errorf("不支持的存储后端: %s", cfg.Storage.Backend)
	}
}

// Seed 只补种缺失的数据，已有数据一律不动
func (a *App) Seed() error {
	if !a.ReportRepo.Exists() {
		if err := a.ReportRepo.Save(fixture.DefaultLearningReport()); err != nil {
			return err
		}
		logger.Log.Info("已写入学习报告初始数据")
	}
	if !a.ErrorRepo.Exists() {
		if err := a.ErrorRepo.Save(fixture.DefaultErrorLog()); err != nil {
			return err
		}
		logger.Log.Info("已写入错题本初始数据")
	}
	if !a.AgentRepo.HasAgents() {
		if err := a.AgentRepo.SaveAgents(fixture.SeedAgents()); err != nil {
			return err
		}
		if err := a.AgentRepo.SaveStatistics(fixture.SeedStatistics()); err != nil {
			return err
		}
		if err := a.AgentRepo.SaveComments(fixture.SeedComments()); err != nil {
			return err
		}
		if err := a.AgentRepo.SaveUsageRecords(fixture.SeedUsageRecords()); err != nil {
			return err
		}
		logger.Log.Info("已写入智能体初始数据")
	}
	return nil
}

func (a *App) Close() error {
	return a.KV.Close()
}
