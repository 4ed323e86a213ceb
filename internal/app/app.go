package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"crewboard/internal/config"
	dom "crewboard/internal/domain"
	"crewboard/internal/repo"
	"crewboard/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type App struct {
	cfg     config.Config
	log     *zap.Logger
	router  *gin.Engine
	watcher *storeWatcher
}

func New(cfg config.Config, log *zap.Logger) (*App, error) {
	a := &App{cfg: cfg, log: log}

	if err := os.MkdirAll(cfg.Store.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("store dir: %w", err)
	}

	usersFile := store.NewFile[repo.UserDocument](filepath.Join(cfg.Store.Dir, cfg.Store.UsersFile), log)
	checklistsFile := store.NewFile[[]dom.Checklist](filepath.Join(cfg.Store.Dir, cfg.Store.ChecklistsFile), log)
	feedbacksFile := store.NewFile[[]dom.Feedback](filepath.Join(cfg.Store.Dir, cfg.Store.FeedbacksFile), log)

	users := repo.NewFileUserRepo(usersFile)
	checklists := repo.NewFileChecklistRepo(checklistsFile)
	feedbacks := repo.NewFileFeedbackRepo(feedbacksFile)

	if cfg.Store.Watch {
		w, err := watchStoreDir(log, cfg.Store.Dir, map[string]reloader{
			cfg.Store.UsersFile:      users,
			cfg.Store.ChecklistsFile: checklists,
			cfg.Store.FeedbacksFile:  feedbacks,
		})
		if err != nil {
			return nil, fmt.Errorf("store watcher: %w", err)
		}
		a.watcher = w
	}

	a.router = newRouter(cfg, log, users, checklists, feedbacks)
	return a, nil
}

func (a *App) Router() *gin.Engine {
	return a.router
}

func (a *App) Close(ctx context.Context) error {
	_ = ctx
	if a.watcher != nil {
		return a.watcher.Close()
	}
	return nil
}

func newRouter(cfg config.Config, log *zap.Logger, users repo.UserRepo, checklists repo.ChecklistRepo, feedbacks repo.FeedbackRepo) *gin.Engine {
	if cfg.App.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(requestLogger(log), gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS", "HEAD"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", "Cookie"},
		ExposeHeaders: []string{"Content-Length", "Content-Type"},
		MaxAge:        12 * time.Hour,
	}))

	Setup(r, cfg, users, checklists, feedbacks)
	return r
}
