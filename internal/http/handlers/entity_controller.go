package handlers

import (
	"github.com/gin-gonic/gin"

	"crudkit/internal/domain"
	"crudkit/internal/repositories"
	"crudkit/internal/services"
)

// EntityController exposes one entity type's CRUD pipeline over HTTP. The
// repository and hook registrations are long-lived; the notification sink
// is created fresh for every request so notifications never leak between
// callers.
type EntityController[T domain.Entity] struct {
	Repo  repositories.Repository[T]
	Name  domain.EntityName
	Hooks *services.EntityHooks[T]
	New   func() T
}

func NewEntityController[T domain.Entity](repo repositories.Repository[T], name domain.EntityName, hooks *services.EntityHooks[T], factory func() T) *EntityController[T] {
	return &EntityController[T]{Repo: repo, Name: name, Hooks: hooks, New: factory}
}

// Mount registers the CRUD routes on the given group.
func (ctl *EntityController[T]) Mount(g *gin.RouterGroup) {
	g.GET("", ctl.List)
	g.GET("/:id", ctl.Get)
	g.POST("", ctl.Create)
	g.PUT("/:id", ctl.Update)
	g.DELETE("/:id", ctl.Delete)
}

func (ctl *EntityController[T]) List(c *gin.Context) {
	notifier := domain.NewCollector()
	reader := services.NewReader(ctl.Repo, ctl.Name, ctl.Hooks, notifier)
	res := reader.ReadAll(c.Request.Context(), BindFilter(c))
	WriteResult(c, res, notifier)
}

func (ctl *EntityController[T]) Get(c *gin.Context) {
	id, ok := ParseID(c)
	if !ok {
		return
	}

	notifier := domain.NewCollector()
	reader := services.NewReader(ctl.Repo, ctl.Name, ctl.Hooks, notifier)
	res := reader.Read(c.Request.Context(), id, domain.WithIncludes(c.QueryArray("include")...))
	WriteResult(c, res, notifier)
}

func (ctl *EntityController[T]) Create(c *gin.Context) {
	entity := ctl.New()
	if err := c.ShouldBindJSON(entity); err != nil {
		notifier := domain.NewCollector()
		notifier.Error(domain.MsgBadRequest)
		WriteResult(c, domain.Fail[any](domain.Unprocessable, domain.MsgBadRequest), notifier)
		return
	}

	notifier := domain.NewCollector()
	writer := services.NewWriter(ctl.Repo, ctl.Name, ctl.Hooks, notifier)
	res := writer.Create(c.Request.Context(), entity)
	WriteResult(c, res, notifier)
}

func (ctl *EntityController[T]) Update(c *gin.Context) {
	id, ok := ParseID(c)
	if !ok {
		return
	}

	entity := ctl.New()
	if err := c.ShouldBindJSON(entity); err != nil {
		notifier := domain.NewCollector()
		notifier.Error(domain.MsgBadRequest)
		WriteResult(c, domain.Fail[any](domain.Unprocessable, domain.MsgBadRequest), notifier)
		return
	}
	entity.SetID(id)

	notifier := domain.NewCollector()
	writer := services.NewWriter(ctl.Repo, ctl.Name, ctl.Hooks, notifier)
	res := writer.Update(c.Request.Context(), entity)
	WriteResult(c, res, notifier)
}

func (ctl *EntityController[T]) Delete(c *gin.Context) {
	id, ok := ParseID(c)
	if !ok {
		return
	}

	notifier := domain.NewCollector()
	deleter := services.NewDeleter(ctl.Repo, ctl.Name, ctl.Hooks, notifier)
	res := deleter.Delete(c.Request.Context(), id)
	WriteResult(c, res, notifier)
}
