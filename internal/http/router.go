package api

import (
	"database/sql"
	"log"
	stdhttp "net/http"

	"github.com/gin-gonic/gin"

	"crudkit/internal/app"
	"crudkit/internal/auth"
	intconfig "crudkit/internal/config"
	h "crudkit/internal/http/handlers"
	"crudkit/internal/http/middleware"
	"crudkit/internal/hooks"
	"crudkit/internal/models"
	"crudkit/internal/repositories"
	"crudkit/internal/services"
)

// NewRouter assembles the gin engine: middleware chain, system endpoints,
// and one CRUD pipeline per entity. Hook registration happens here, once,
// at startup.
func NewRouter(env intconfig.Env, db *sql.DB) *gin.Engine {
	tokens := auth.TokenConfig{Secret: []byte(env.JWTSecret), TTL: env.JWTTTL}
	accessor := auth.ContextAccessor{}

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(),
		gin.Recovery(),
		middleware.CORS(env.CORSOrigins),
		middleware.Authenticate(tokens),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	taskRepo := repositories.NewSQLRepository[*models.Task](db, models.TaskMapper{}, models.TaskFilters{})
	accountRepo := repositories.NewSQLRepository[*models.Account](db, models.AccountMapper{}, nil)

	taskHooks := &services.EntityHooks[*models.Task]{
		Access: hooks.NewAccessValidatorService[*models.Task](
			hooks.SignedInAccessValidator[*models.Task]{Accessor: accessor},
		),
		State: hooks.NewStateValidatorService[*models.Task](
			repositories.ConcurrencyStampValidator[*models.Task]{Repo: taskRepo, Name: models.TaskName},
		),
		Before: hooks.NewBeforeHookService[*models.Task](
			repositories.ConcurrencyStampHook[*models.Task]{},
		),
	}

	accountHooks := &services.EntityHooks[*models.Account]{
		Access: hooks.NewAccessValidatorService[*models.Account](
			hooks.RoleAccessValidator[*models.Account]{Accessor: accessor, Role: "admin"},
		),
		State: hooks.NewStateValidatorService[*models.Account](
			repositories.ConcurrencyStampValidator[*models.Account]{Repo: accountRepo, Name: models.AccountName},
		),
		Before: hooks.NewBeforeHookService[*models.Account](
			repositories.ConcurrencyStampHook[*models.Account]{},
		),
	}

	reportHooks := &services.EntityHooks[[]byte]{
		Access: hooks.NewAccessValidatorService[[]byte](
			hooks.SignedInAccessValidator[[]byte]{Accessor: accessor},
		),
	}

	system := &h.SystemController{DB: db}
	authCtl := &h.AuthController{
		Login:    &app.LoginProcessor{DB: db, Tokens: tokens},
		Register: &app.RegisterProcessor{DB: db, Accounts: accountRepo},
	}
	tasks := h.NewEntityController(taskRepo, models.TaskName, taskHooks, func() *models.Task { return &models.Task{} })
	accounts := h.NewEntityController(accountRepo, models.AccountName, accountHooks, func() *models.Account { return &models.Account{} })
	reports := &h.ReportController{
		Report: &app.TaskReportProcessor{Tasks: taskRepo},
		Hooks:  reportHooks,
	}

	api := r.Group("/api")
	{
		system.Mount(api)
		authCtl.Mount(api.Group("/auth"))
		tasks.Mount(api.Group("/tasks"))
		accounts.Mount(api.Group("/accounts"))
		reports.Mount(api.Group("/reports"))
	}

	return r
}
