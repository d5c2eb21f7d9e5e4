package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/AFCVentura/Bookstore/internal/entities"
)

const entityGenre = "genre"

// GenresController serves the genre pages and their JSON equivalents.
type GenresController struct {
	responder
	store GenreStore
	audit AuditLogger
}

func NewGenresController(store GenreStore, auditLogger AuditLogger, flash FlashStore) *GenresController {
	return &GenresController{
		responder: responder{flash: flash},
		store:     store,
		audit:     auditOrNop(auditLogger),
	}
}

// RegisterRoutes mounts the genre routes on router.
func (gc *GenresController) RegisterRoutes(router gin.IRouter) {
	router.GET("/genres", gc.Index)
	router.GET("/genres/new", gc.New)
	router.POST("/genres", gc.Create)
	router.GET("/genres/:id", gc.Details)
	router.GET("/genres/:id/edit", gc.Edit)
	router.POST("/genres/:id/edit", gc.Update)
	router.GET("/genres/:id/delete", gc.ConfirmDelete)
	router.POST("/genres/:id/delete", gc.Delete)
}

// Index lists every genre.
// GET /genres
func (gc *GenresController) Index(c *gin.Context) {
	genres, err := gc.store.FindAll(dbSession(c))
	if err != nil {
		gc.internalError(c, err, "list genres")
		return
	}
	gc.show(c, http.StatusOK, "genres_index",
		gin.H{"genres": genres, "count": len(genres)},
		gin.H{"Genres": genres})
}

// New renders an empty genre form.
// GET /genres/new
func (gc *GenresController) New(c *gin.Context) {
	gc.page(c, http.StatusOK, "genres_form", gin.H{"Genre": entities.Genre{}})
}

// Create stores a new genre.
// POST /genres
func (gc *GenresController) Create(c *gin.Context) {
	var form genreForm
	if err := c.ShouldBind(&form); err != nil {
		gc.formError(c, "genres_form", gin.H{"Genre": form.entity()}, err)
		return
	}

	genre := form.entity()
	err := gc.store.Insert(dbSession(c), &genre)
	gc.audit.LogCreate(c.Request.Context(), auditOrigin(c), entityGenre, genre.ID, err)
	if err != nil {
		gc.repositoryError(c, err, "")
		return
	}
	gc.done(c, http.StatusCreated, genre, "/genres", "Genre created")
}

// Details shows a genre and its books.
// GET /genres/:id
func (gc *GenresController) Details(c *gin.Context) {
	gc.showGenre(c, "genres_details", true)
}

// Edit renders the form for an existing genre.
// GET /genres/:id/edit
func (gc *GenresController) Edit(c *gin.Context) {
	gc.showGenre(c, "genres_form", false)
}

// ConfirmDelete asks for confirmation before deleting a genre.
// GET /genres/:id/delete
func (gc *GenresController) ConfirmDelete(c *gin.Context) {
	gc.showGenre(c, "genres_delete", true)
}

func (gc *GenresController) showGenre(c *gin.Context, template string, eager bool) {
	id, ok := gc.parseIDParam(c, "id")
	if !ok {
		return
	}

	find := gc.store.FindByID
	if eager {
		find = gc.store.FindByIDEager
	}
	genre, err := find(dbSession(c), id)
	if err != nil {
		gc.internalError(c, err, "find genre")
		return
	}
	if genre == nil {
		gc.fail(c, http.StatusNotFound, CodeNotFound, msgIDNotFound)
		return
	}
	gc.show(c, http.StatusOK, template, genre, gin.H{"Genre": genre})
}

// Update overwrites a genre with the posted form.
// POST /genres/:id/edit
func (gc *GenresController) Update(c *gin.Context) {
	id, ok := gc.parseIDParam(c, "id")
	if !ok {
		return
	}

	var form genreForm
	if err := c.ShouldBind(&form); err != nil {
		gc.formError(c, "genres_form", gin.H{"Genre": form.entity()}, err)
		return
	}
	if form.ID != id {
		gc.fail(c, http.StatusBadRequest, CodeInvalidRequest, msgIDMismatch)
		return
	}

	genre := form.entity()
	err := gc.store.Update(dbSession(c), &genre)
	gc.audit.LogUpdate(c.Request.Context(), auditOrigin(c), entityGenre, id, err)
	if err != nil {
		gc.repositoryError(c, err, "")
		return
	}
	gc.done(c, http.StatusOK, genre, "/genres/"+strconv.FormatUint(uint64(id), 10), "Genre updated")
}

// Delete removes a genre. A genre that still has books is kept.
// POST /genres/:id/delete
func (gc *GenresController) Delete(c *gin.Context) {
	id, ok := gc.parseIDParam(c, "id")
	if !ok {
		return
	}

	err := gc.store.Remove(dbSession(c), id)
	gc.audit.LogDelete(c.Request.Context(), auditOrigin(c), entityGenre, id, err)
	if err != nil {
		gc.repositoryError(c, err, "Can't delete this genre because it still has books")
		return
	}
	gc.done(c, http.StatusOK, SuccessResponse{Message: "Genre deleted"}, "/genres", "Genre deleted")
}
