package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/AFCVentura/Bookstore/internal/entities"
)

const entityBook = "book"

// BooksController serves the book pages and their JSON equivalents.
type BooksController struct {
	responder
	store  BookStore
	genres GenreLister
	audit  AuditLogger
}

func NewBooksController(store BookStore, genres GenreLister, auditLogger AuditLogger, flash FlashStore) *BooksController {
	return &BooksController{
		responder: responder{flash: flash},
		store:     store,
		genres:    genres,
		audit:     auditOrNop(auditLogger),
	}
}

// RegisterRoutes mounts the book routes on router.
func (bc *BooksController) RegisterRoutes(router gin.IRouter) {
	router.GET("/books", bc.Index)
	router.GET("/books/new", bc.New)
	router.POST("/books", bc.Create)
	router.GET("/books/:id", bc.Details)
	router.GET("/books/:id/edit", bc.Edit)
	router.POST("/books/:id/edit", bc.Update)
	router.GET("/books/:id/delete", bc.ConfirmDelete)
	router.POST("/books/:id/delete", bc.Delete)
}

// Index lists every book with its genre.
// GET /books
func (bc *BooksController) Index(c *gin.Context) {
	books, err := bc.store.FindAll(dbSession(c))
	if err != nil {
		bc.internalError(c, err, "list books")
		return
	}
	bc.show(c, http.StatusOK, "books_index",
		gin.H{"books": books, "count": len(books)},
		gin.H{"Books": books})
}

// formData loads the genre picker; it responds itself on failure.
func (bc *BooksController) formData(c *gin.Context, book entities.Book) (gin.H, bool) {
	genres, err := bc.genres.FindAll(dbSession(c))
	if err != nil {
		bc.internalError(c, err, "list genres")
		return nil, false
	}
	return gin.H{"Book": book, "Genres": genres}, true
}

// New renders an empty book form.
// GET /books/new
func (bc *BooksController) New(c *gin.Context) {
	data, ok := bc.formData(c, entities.Book{})
	if !ok {
		return
	}
	bc.page(c, http.StatusOK, "books_form", data)
}

// Create stores a new book.
// POST /books
func (bc *BooksController) Create(c *gin.Context) {
	var form bookForm
	if err := c.ShouldBind(&form); err != nil {
		bc.rejectForm(c, form, err)
		return
	}

	if !bc.genreExists(c, form.GenreID) {
		return
	}

	book := form.entity()
	err := bc.store.Insert(dbSession(c), &book)
	bc.audit.LogCreate(c.Request.Context(), auditOrigin(c), entityBook, book.ID, err)
	if err != nil {
		bc.repositoryError(c, err, "")
		return
	}
	bc.done(c, http.StatusCreated, book, "/books", "Book created")
}

// genreExists rejects a form naming a genre the store does not hold.
func (bc *BooksController) genreExists(c *gin.Context, id uint) bool {
	genre, err := bc.genres.FindByID(dbSession(c), id)
	if err != nil {
		bc.internalError(c, err, "find genre")
		return false
	}
	if genre == nil {
		bc.fail(c, http.StatusBadRequest, CodeInvalidRequest, "unknown genre")
		return false
	}
	return true
}

func (bc *BooksController) rejectForm(c *gin.Context, form bookForm, err error) {
	if wantsJSON(c) {
		bc.formError(c, "books_form", gin.H{}, err)
		return
	}
	data, ok := bc.formData(c, form.entity())
	if !ok {
		return
	}
	bc.formError(c, "books_form", data, err)
}

// Details shows a book and its genre.
// GET /books/:id
func (bc *BooksController) Details(c *gin.Context) {
	if book, ok := bc.findBook(c); ok {
		bc.show(c, http.StatusOK, "books_details", book, gin.H{"Book": book})
	}
}

// Edit renders the form for an existing book.
// GET /books/:id/edit
func (bc *BooksController) Edit(c *gin.Context) {
	book, ok := bc.findBook(c)
	if !ok {
		return
	}
	if wantsJSON(c) {
		c.JSON(http.StatusOK, book)
		return
	}
	data, ok := bc.formData(c, *book)
	if !ok {
		return
	}
	bc.page(c, http.StatusOK, "books_form", data)
}

// ConfirmDelete asks for confirmation before deleting a book.
// GET /books/:id/delete
func (bc *BooksController) ConfirmDelete(c *gin.Context) {
	if book, ok := bc.findBook(c); ok {
		bc.show(c, http.StatusOK, "books_delete", book, gin.H{"Book": book})
	}
}

func (bc *BooksController) findBook(c *gin.Context) (*entities.Book, bool) {
	id, ok := bc.parseIDParam(c, "id")
	if !ok {
		return nil, false
	}
	book, err := bc.store.FindByID(dbSession(c), id)
	if err != nil {
		bc.internalError(c, err, "find book")
		return nil, false
	}
	if book == nil {
		bc.fail(c, http.StatusNotFound, CodeNotFound, msgIDNotFound)
		return nil, false
	}
	return book, true
}

// Update overwrites a book with the posted form.
// POST /books/:id/edit
func (bc *BooksController) Update(c *gin.Context) {
	id, ok := bc.parseIDParam(c, "id")
	if !ok {
		return
	}

	var form bookForm
	if err := c.ShouldBind(&form); err != nil {
		bc.rejectForm(c, form, err)
		return
	}
	if form.ID != id {
		bc.fail(c, http.StatusBadRequest, CodeInvalidRequest, msgIDMismatch)
		return
	}

	if !bc.genreExists(c, form.GenreID) {
		return
	}

	book := form.entity()
	err := bc.store.Update(dbSession(c), &book)
	bc.audit.LogUpdate(c.Request.Context(), auditOrigin(c), entityBook, id, err)
	if err != nil {
		bc.repositoryError(c, err, "")
		return
	}
	bc.done(c, http.StatusOK, book, "/books/"+strconv.FormatUint(uint64(id), 10), "Book updated")
}

// Delete removes a book. A book that appears in a sale is kept.
// POST /books/:id/delete
func (bc *BooksController) Delete(c *gin.Context) {
	id, ok := bc.parseIDParam(c, "id")
	if !ok {
		return
	}

	err := bc.store.Remove(dbSession(c), id)
	bc.audit.LogDelete(c.Request.Context(), auditOrigin(c), entityBook, id, err)
	if err != nil {
		bc.repositoryError(c, err, "Can't delete this book because it appears in sales")
		return
	}
	bc.done(c, http.StatusOK, SuccessResponse{Message: "Book deleted"}, "/books", "Book deleted")
}
